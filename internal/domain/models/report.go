package models

type (
	// SyncReport es el reporte renderizado para el cuerpo del PR de sincronización.
	// Se construye una sola vez y se consume una sola vez por el publicador.
	SyncReport struct {
		Title       string
		Body        string
		CommitCount int
		FileCount   int
	}
)

// WithAISection retorna una copia del reporte con la sección de IA agregada
// al final del cuerpo. El reporte original no se modifica.
func (r SyncReport) WithAISection(insights string) SyncReport {
	if insights == "" {
		return r
	}
	out := r
	out.Body = r.Body + "\n\n## 🤖 AI Review Insights\n" + insights
	return out
}
