package models

// SyncOutcome identifica la salida del pipeline de sincronización.
// Todas las salidas que no son errores de red son exitosas (exit code 0).
type SyncOutcome string

const (
	// OutcomeDuplicate indica que ya existe un PR abierto para head/base.
	OutcomeDuplicate SyncOutcome = "duplicate"
	// OutcomeUpToDate indica que no hay commits faltantes entre las ramas.
	OutcomeUpToDate SyncOutcome = "up_to_date"
	// OutcomeDryRun indica que el reporte se generó pero no se publicó.
	OutcomeDryRun SyncOutcome = "dry_run"
	// OutcomeCreated indica que el PR fue creado en el proveedor.
	OutcomeCreated SyncOutcome = "created"
)

type (
	// BestEffort registra el resultado de un paso que nunca propaga su error.
	// El fallo queda visible en el tipo en vez de escondido en un catch.
	BestEffort struct {
		Step string
		Err  error
	}

	// SyncResult es el resultado de una invocación del pipeline.
	SyncResult struct {
		Outcome     SyncOutcome
		Report      *SyncReport
		PR          *PullRequest
		Annotations []BestEffort
	}
)

// Failed indica si el paso best-effort terminó con error.
func (b BestEffort) Failed() bool {
	return b.Err != nil
}
