package ports

import (
	"context"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los sistemas de control de versiones.
type VCSClient interface {
	// FindOpenPullRequest busca un PR abierto con el mismo par head/base.
	// Retorna nil si no existe.
	FindOpenPullRequest(ctx context.Context, head, base string) (*models.PullRequest, error)
	// CompareBranches obtiene los commits y archivos faltantes entre base y head.
	CompareBranches(ctx context.Context, base, head string) (models.BranchDiff, error)
	// CreatePullRequest crea un PR en el proveedor y retorna el PR creado.
	CreatePullRequest(ctx context.Context, pr models.NewPullRequest) (*models.PullRequest, error)
	// AddLabels agrega etiquetas a un PR existente.
	AddLabels(ctx context.Context, prNumber int, labels []string) error
	// RequestReviewers solicita revisores para un PR existente.
	RequestReviewers(ctx context.Context, prNumber int, reviewers []string) error
}
