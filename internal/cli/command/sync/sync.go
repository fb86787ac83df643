package sync

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateSync/internal/ui"
	"github.com/urfave/cli/v3"
)

type SyncCommandFactory struct {
	container *di.Container
}

func NewSyncCommandFactory(container *di.Container) *SyncCommandFactory {
	return &SyncCommandFactory{
		container: container,
	}
}

func (f *SyncCommandFactory) CreateCommand(t *i18n.Translations, baseCfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("sync_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   t.GetMessage("flag.dry_run_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "enable-ai",
				Aliases: []string{"a"},
				Usage:   t.GetMessage("flag.enable_ai_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			runCfg := *baseCfg
			if cmd.Bool("dry-run") {
				runCfg.Sync.DryRun = true
			}
			if cmd.Bool("enable-ai") {
				runCfg.AI.Enabled = true
			}

			syncService, err := f.container.SyncServiceFor(ctx, &runCfg)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.sync_failed", 0, nil), err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.guard_check", 0, nil))
			spinner.Start()

			result, err := syncService.Sync(ctx, func(event models.ProgressEvent) {
				reportProgress(spinner, t, event)
			})
			if err != nil {
				spinner.Error(t.GetMessage("error.sync_failed", 0, nil))
				return err
			}

			printOutcome(spinner, t, result)
			return nil
		},
	}
}

func reportProgress(spinner *ui.SmartSpinner, t *i18n.Translations, event models.ProgressEvent) {
	switch event.Type {
	case models.ProgressGuardCheck:
		spinner.UpdateMessage(t.GetMessage("ui.guard_check", 0, nil))
	case models.ProgressComparing:
		spinner.Log(t.GetMessage("ui.comparing", 0, map[string]interface{}{
			"Base": event.Data.Base,
			"Head": event.Data.Head,
		}))
	case models.ProgressCommitsFound:
		spinner.Log(t.GetMessage("ui.commits_found", event.Data.Count, map[string]interface{}{
			"Count": event.Data.Count,
		}))
	case models.ProgressAIAnalyzing:
		spinner.UpdateMessage(t.GetMessage("ui.ai_analyzing", 0, nil))
	case models.ProgressAIDegraded:
		spinner.Warning(t.GetMessage("warning.ai_unavailable", 0, nil))
		spinner.Start()
	case models.ProgressPublishing:
		spinner.UpdateMessage(t.GetMessage("ui.publishing", 0, nil))
	}
}

func printOutcome(spinner *ui.SmartSpinner, t *i18n.Translations, result models.SyncResult) {
	switch result.Outcome {
	case models.OutcomeDuplicate:
		spinner.Warning(t.GetMessage("sync.pr_exists", 0, nil))
	case models.OutcomeUpToDate:
		spinner.Success(t.GetMessage("sync.up_to_date", 0, nil))
	case models.OutcomeDryRun:
		spinner.Stop()
		ui.PrintSectionBanner(t.GetMessage("sync.dry_run_header", 0, nil))
		fmt.Printf("PR Title: %s\n", result.Report.Title)
		fmt.Printf("PR Body:\n%s\n", result.Report.Body)
	case models.OutcomeCreated:
		spinner.Success(t.GetMessage("sync.pr_created", 0, map[string]interface{}{
			"URL": result.PR.HTMLURL,
		}))
	default:
		spinner.Stop()
	}
}
