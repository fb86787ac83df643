package services

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
)

const reportFooter = "_Auto-generated backport analysis._"

// BuildSyncReport renderiza el reporte del PR de sincronización. Es una
// función pura: mismo diff, mismo texto, byte por byte. No reordena las
// secuencias que entrega la plataforma.
func BuildSyncReport(head, base string, diff models.BranchDiff) models.SyncReport {
	lines := make([]string, 0, len(diff.Commits)+len(diff.Files)+7)

	lines = append(lines, "## 🔍 Missing Fix Analysis\n")
	lines = append(lines, fmt.Sprintf("**Source:** `%s`", head))
	lines = append(lines, fmt.Sprintf("**Target:** `%s`", base))
	lines = append(lines, fmt.Sprintf("**Commits:** %d\n", len(diff.Commits)))

	lines = append(lines, "### 📌 Commit Summary")
	for _, commit := range diff.Commits {
		lines = append(lines, fmt.Sprintf("- `%s` – %s _(by %s)_",
			commit.ShortSHA(), commit.FirstMessageLine(), commit.Author))
	}

	lines = append(lines, "\n### 🗂 Files Impacted")
	for _, file := range diff.Files {
		lines = append(lines, fmt.Sprintf("- `%s` (+%d / -%d)",
			file.Path, file.Additions, file.Deletions))
	}

	lines = append(lines, "\n---\n"+reportFooter)

	return models.SyncReport{
		Title:       fmt.Sprintf("sync %s → %s", head, base),
		Body:        strings.Join(lines, "\n"),
		CommitCount: len(diff.Commits),
		FileCount:   len(diff.Files),
	}
}
