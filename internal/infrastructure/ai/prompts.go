package ai

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
)

const riskPromptTemplate = `You are a release engineer.

Analyze the missing commits between branches.

COMMITS:
%s

FILES:
%s

Provide:
1. Type of fixes
2. Risk level
3. Reviewer focus areas`

// BuildRiskPrompt arma el prompt de análisis de riesgo reduciendo el diff a
// una línea por commit (primera línea del mensaje) y una línea por archivo.
func BuildRiskPrompt(diff models.BranchDiff) string {
	commitLines := make([]string, len(diff.Commits))
	for i, commit := range diff.Commits {
		commitLines[i] = fmt.Sprintf("- %s", commit.FirstMessageLine())
	}

	fileLines := make([]string, len(diff.Files))
	for i, file := range diff.Files {
		fileLines[i] = fmt.Sprintf("- %s", file.Path)
	}

	return fmt.Sprintf(riskPromptTemplate,
		strings.Join(commitLines, "\n"),
		strings.Join(fileLines, "\n"))
}
