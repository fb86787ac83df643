package doctor

import (
	"context"
	"os"

	cfg "github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateSync/internal/ui"
	"github.com/urfave/cli/v3"
)

type DoctorCommandFactory struct {
	container *di.Container
}

func NewDoctorCommandFactory(container *di.Container) *DoctorCommandFactory {
	return &DoctorCommandFactory{
		container: container,
	}
}

// CreateCommand crea el comando doctor, que valida la configuración cargada
// y la disponibilidad de los proveedores sin tocar la red.
func (f *DoctorCommandFactory) CreateCommand(t *i18n.Translations, appCfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: t.GetMessage("doctor_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ui.PrintInfo(t.GetMessage("doctor.checking", 0, nil))

			vcsFactory, err := f.container.GetVCSRegistry().Get(appCfg.VCS.Provider)
			if err != nil {
				ui.PrintError(os.Stdout, err.Error())
				return err
			}
			if err := vcsFactory.ValidateConfig(appCfg); err != nil {
				ui.PrintError(os.Stdout, err.Error())
				return err
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.vcs_ok", 0, map[string]interface{}{
				"Provider": appCfg.VCS.Provider,
				"Owner":    appCfg.VCS.Owner,
				"Repo":     appCfg.VCS.Repo,
			}))

			ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.branches", 0, map[string]interface{}{
				"Head": appCfg.Sync.HeadBranch,
				"Base": appCfg.Sync.BaseBranch,
			}))

			if !appCfg.AI.Enabled {
				ui.PrintInfo(t.GetMessage("doctor.ai_disabled", 0, nil))
			} else {
				f.checkAIProvider(t, appCfg)
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.done", 0, nil))
			return nil
		},
	}
}

// checkAIProvider valida el proveedor de IA activo. Un proveedor inutilizable
// es una advertencia, no un error: el pipeline degrada a "sin IA".
func (f *DoctorCommandFactory) checkAIProvider(t *i18n.Translations, appCfg *cfg.Config) {
	provider := string(appCfg.AI.ActiveProvider)

	aiFactory, err := f.container.GetAIRegistry().Get(provider)
	if err != nil {
		ui.PrintWarning(t.GetMessage("doctor.ai_misconfigured", 0, map[string]interface{}{
			"Provider": provider,
			"Reason":   err.Error(),
		}))
		return
	}

	if err := aiFactory.ValidateConfig(appCfg); err != nil {
		ui.PrintWarning(t.GetMessage("doctor.ai_misconfigured", 0, map[string]interface{}{
			"Provider": provider,
			"Reason":   err.Error(),
		}))
		return
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.ai_ok", 0, map[string]interface{}{
		"Provider": provider,
		"Model":    string(appCfg.AI.Model),
	}))
}
