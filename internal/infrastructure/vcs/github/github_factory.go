package github

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
)

// GitHubProviderFactory implementa VCSProviderFactory para GitHub
type GitHubProviderFactory struct{}

// NewGitHubProviderFactory crea una nueva factory para GitHub
func NewGitHubProviderFactory() *GitHubProviderFactory {
	return &GitHubProviderFactory{}
}

// CreateClient crea un cliente GitHub
func (f *GitHubProviderFactory) CreateClient(
	_ context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.VCSClient, error) {
	return NewGitHubClient(cfg.VCS.Owner, cfg.VCS.Repo, cfg.VCS.Token, trans), nil
}

// ValidateConfig valida la configuración de GitHub
func (f *GitHubProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.VCS.Token == "" {
		return fmt.Errorf("token de github necesario")
	}
	if cfg.VCS.Owner == "" || cfg.VCS.Repo == "" {
		return fmt.Errorf("owner y repo de github necesarios")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GitHubProviderFactory) Name() string {
	return "github"
}
