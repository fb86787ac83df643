package models

// ProgressType identifica un evento de progreso del pipeline.
type ProgressType string

const (
	ProgressGuardCheck   ProgressType = "guard_check"
	ProgressComparing    ProgressType = "comparing"
	ProgressCommitsFound ProgressType = "commits_found"
	ProgressAIAnalyzing  ProgressType = "ai_analyzing"
	ProgressAIDegraded   ProgressType = "ai_degraded"
	ProgressPublishing   ProgressType = "publishing"
)

type (
	// ProgressData lleva los datos asociados a un evento de progreso.
	ProgressData struct {
		Base  string
		Head  string
		Count int
	}

	// ProgressEvent notifica el avance del pipeline a la capa de presentación.
	ProgressEvent struct {
		Type ProgressType
		Data *ProgressData
	}
)
