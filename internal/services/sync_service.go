package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/Tomas-vilte/MateSync/internal/logger"
)

// Etiquetas y revisores fijos que se aplican a cada PR de sincronización.
var (
	backportLabels    = []string{"auto-backport", "needs-review"}
	backportReviewers = []string{"team-lead", "release-owner"}
)

// syncVCSClient defines the methods needed by SyncService from a VCS provider.
type syncVCSClient interface {
	FindOpenPullRequest(ctx context.Context, head, base string) (*models.PullRequest, error)
	CompareBranches(ctx context.Context, base, head string) (models.BranchDiff, error)
	CreatePullRequest(ctx context.Context, pr models.NewPullRequest) (*models.PullRequest, error)
	AddLabels(ctx context.Context, prNumber int, labels []string) error
	RequestReviewers(ctx context.Context, prNumber int, reviewers []string) error
}

// riskSummarizer defines the methods needed by SyncService from an AI provider.
type riskSummarizer interface {
	SummarizeRisk(ctx context.Context, diff models.BranchDiff) (string, error)
}

type SyncService struct {
	vcsClient  syncVCSClient
	summarizer riskSummarizer
	config     *config.Config
}

type SyncOption func(*SyncService)

func WithSyncVCSClient(vcs syncVCSClient) SyncOption {
	return func(s *SyncService) {
		s.vcsClient = vcs
	}
}

func WithRiskSummarizer(summarizer riskSummarizer) SyncOption {
	return func(s *SyncService) {
		s.summarizer = summarizer
	}
}

func WithSyncConfig(cfg *config.Config) SyncOption {
	return func(s *SyncService) {
		s.config = cfg
	}
}

func NewSyncService(opts ...SyncOption) *SyncService {
	s := &SyncService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync ejecuta el pipeline completo: guard de duplicados, compare de ramas,
// construcción del reporte, análisis de IA opcional, publicación y anotación
// best-effort. Crea a lo sumo un PR por invocación.
func (s *SyncService) Sync(ctx context.Context, progress func(models.ProgressEvent)) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	head := s.config.Sync.HeadBranch
	base := s.config.Sync.BaseBranch

	log.Info("starting branch sync",
		"head", head,
		"base", base,
		"dry_run", s.config.Sync.DryRun,
		"ai_enabled", s.config.AI.Enabled)

	emit(progress, models.ProgressEvent{Type: models.ProgressGuardCheck})

	existing, err := s.vcsClient.FindOpenPullRequest(ctx, head, base)
	if err != nil {
		log.Error("duplicate guard failed", "error", err)
		return models.SyncResult{}, fmt.Errorf("error verificando PRs abiertos: %w", err)
	}

	if existing != nil {
		log.Info("open PR already exists, nothing to do",
			"pr_number", existing.Number,
			"url", existing.HTMLURL)
		return models.SyncResult{Outcome: models.OutcomeDuplicate, PR: existing}, nil
	}

	emit(progress, models.ProgressEvent{
		Type: models.ProgressComparing,
		Data: &models.ProgressData{Base: base, Head: head},
	})

	diff, err := s.vcsClient.CompareBranches(ctx, base, head)
	if err != nil {
		log.Error("branch compare failed", "error", err)
		return models.SyncResult{}, err
	}

	if diff.Empty() {
		log.Info("branches already in sync")
		return models.SyncResult{Outcome: models.OutcomeUpToDate}, nil
	}

	emit(progress, models.ProgressEvent{
		Type: models.ProgressCommitsFound,
		Data: &models.ProgressData{Count: len(diff.Commits)},
	})

	report := BuildSyncReport(head, base, diff)

	if s.config.AI.Enabled {
		report = s.appendRiskAnalysis(ctx, diff, report, progress)
	}

	if s.config.Sync.DryRun {
		log.Info("dry-run mode, skipping PR creation")
		return models.SyncResult{Outcome: models.OutcomeDryRun, Report: &report}, nil
	}

	emit(progress, models.ProgressEvent{Type: models.ProgressPublishing})

	pr, err := s.vcsClient.CreatePullRequest(ctx, models.NewPullRequest{
		Title:               report.Title,
		Head:                head,
		Base:                base,
		Body:                report.Body,
		MaintainerCanModify: true,
	})
	if err != nil {
		log.Error("PR creation failed", "error", err)
		return models.SyncResult{}, err
	}

	log.Info("PR created",
		"pr_number", pr.Number,
		"url", pr.HTMLURL)

	annotations := s.annotate(ctx, pr.Number)

	return models.SyncResult{
		Outcome:     models.OutcomeCreated,
		Report:      &report,
		PR:          pr,
		Annotations: annotations,
	}, nil
}

// appendRiskAnalysis agrega la sección de IA al reporte. Cualquier fallo
// degrada a "sin sección": el reporte original se retorna intacto.
func (s *SyncService) appendRiskAnalysis(ctx context.Context, diff models.BranchDiff, report models.SyncReport, progress func(models.ProgressEvent)) models.SyncReport {
	log := logger.FromContext(ctx)

	if s.summarizer == nil {
		log.Warn("AI enabled but no summarizer available, skipping risk analysis")
		emit(progress, models.ProgressEvent{Type: models.ProgressAIDegraded})
		return report
	}

	emit(progress, models.ProgressEvent{Type: models.ProgressAIAnalyzing})

	insights, err := s.summarizer.SummarizeRisk(ctx, diff)
	if err != nil {
		log.Warn("risk analysis failed, continuing without AI section", "error", err)
		emit(progress, models.ProgressEvent{Type: models.ProgressAIDegraded})
		return report
	}

	return report.WithAISection(insights)
}

// annotate aplica etiquetas y solicita revisores. Ambos pasos son
// best-effort: el error queda registrado en el resultado pero nunca se
// propaga ni afecta el exit code.
func (s *SyncService) annotate(ctx context.Context, prNumber int) []models.BestEffort {
	log := logger.FromContext(ctx)

	annotations := []models.BestEffort{
		{Step: "labels", Err: s.vcsClient.AddLabels(ctx, prNumber, backportLabels)},
		{Step: "reviewers", Err: s.vcsClient.RequestReviewers(ctx, prNumber, backportReviewers)},
	}

	for _, annotation := range annotations {
		if annotation.Failed() {
			log.Debug("best-effort annotation failed",
				"step", annotation.Step,
				"error", annotation.Err)
		}
	}

	return annotations
}

func emit(progress func(models.ProgressEvent), event models.ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
