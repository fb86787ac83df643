package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/Tomas-vilte/MateSync/internal/cli/command/doctor"
	syncCmd "github.com/Tomas-vilte/MateSync/internal/cli/command/sync"
	"github.com/Tomas-vilte/MateSync/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/ai/openai"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateSync/internal/logger"
	"github.com/Tomas-vilte/MateSync/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	debug := strings.EqualFold(os.Getenv("MATE_SYNC_DEBUG"), "true")
	logger.Initialize(debug, debug)

	cfgApp, err := cfg.LoadConfig()
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider("openai", openai.NewOpenAIProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}

	if err := container.RegisterAIProvider("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	if err := container.RegisterVCSProvider("github", github.NewGitHubProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor de GitHub: %v", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("sync", syncCmd.NewSyncCommandFactory(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'sync': %v", err)
	}

	if err := registerCommand.Register("doctor", doctor.NewDoctorCommandFactory(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'doctor': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "mate-sync",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
