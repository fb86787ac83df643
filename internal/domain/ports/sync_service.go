package ports

import (
	"context"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
)

// SyncService define la interfaz del pipeline de sincronización de ramas.
type SyncService interface {
	Sync(ctx context.Context, progress func(models.ProgressEvent)) (models.SyncResult, error)
}
