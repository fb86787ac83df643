package ports

import (
	"context"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
)

// RiskSummarizer genera un análisis de riesgo en texto libre para los commits
// faltantes entre ramas. Cualquier fallo degrada a "sin sección de IA":
// el pipeline nunca falla por esta interfaz.
type RiskSummarizer interface {
	SummarizeRisk(ctx context.Context, diff models.BranchDiff) (string, error)
}
