package models

import "strings"

type (
	// Commit representa un commit faltante entre las ramas comparadas.
	Commit struct {
		SHA     string
		Message string
		Author  string
	}

	// FileChange representa un archivo afectado por los commits faltantes.
	FileChange struct {
		Path      string
		Additions int
		Deletions int
	}

	// BranchDiff contiene el resultado del compare entre base y head,
	// en el orden que devuelve la plataforma.
	BranchDiff struct {
		Commits []Commit
		Files   []FileChange
	}
)

// Empty indica que no hay commits faltantes entre las ramas.
func (d BranchDiff) Empty() bool {
	return len(d.Commits) == 0
}

// FirstMessageLine retorna la primera línea del mensaje del commit.
func (c Commit) FirstMessageLine() string {
	if idx := strings.IndexByte(c.Message, '\n'); idx >= 0 {
		return c.Message[:idx]
	}
	return c.Message
}

// ShortSHA retorna el hash abreviado a 7 caracteres.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}
