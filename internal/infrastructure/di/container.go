package di

import (
	"context"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateSync/internal/infrastructure/ai/registry"
	vcsregistry "github.com/Tomas-vilte/MateSync/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateSync/internal/logger"
	"github.com/Tomas-vilte/MateSync/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	aiRegistry  *airegistry.AIProviderRegistry
	vcsRegistry *vcsregistry.VCSProviderRegistry
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   airegistry.NewAIProviderRegistry(),
		vcsRegistry:  vcsregistry.NewVCSProviderRegistry(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(name string, factory airegistry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// RegisterVCSProvider registra un proveedor VCS
func (c *Container) RegisterVCSProvider(name string, factory vcsregistry.VCSProviderFactory) error {
	return c.vcsRegistry.Register(name, factory)
}

// GetAIRegistry retorna el registro de proveedores de IA
func (c *Container) GetAIRegistry() *airegistry.AIProviderRegistry {
	return c.aiRegistry
}

// GetVCSRegistry retorna el registro de proveedores VCS
func (c *Container) GetVCSRegistry() *vcsregistry.VCSProviderRegistry {
	return c.vcsRegistry
}

// GetConfig retorna la configuración cargada
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetVCSClient crea el cliente del proveedor VCS activo
func (c *Container) GetVCSClient(ctx context.Context) (ports.VCSClient, error) {
	return c.vcsRegistry.CreateClientFromConfig(ctx, c.config, c.translations)
}

// GetRiskSummarizer crea el servicio de IA del proveedor activo. Retorna un
// error si el proveedor no está registrado o su configuración es inválida.
func (c *Container) GetRiskSummarizer(ctx context.Context, cfg *config.Config) (ports.RiskSummarizer, error) {
	factory, err := c.aiRegistry.Get(string(cfg.AI.ActiveProvider))
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return factory.CreateRiskSummarizer(ctx, cfg, c.translations)
}

// SyncServiceFor construye el pipeline de sincronización con la configuración
// dada (la base más los overrides de flags). Un fallo creando el summarizer
// degrada a "sin IA" en vez de abortar.
func (c *Container) SyncServiceFor(ctx context.Context, cfg *config.Config) (ports.SyncService, error) {
	vcsClient, err := c.vcsRegistry.CreateClientFromConfig(ctx, cfg, c.translations)
	if err != nil {
		return nil, err
	}

	var summarizer ports.RiskSummarizer
	if cfg.AI.Enabled {
		summarizer, err = c.GetRiskSummarizer(ctx, cfg)
		if err != nil {
			logger.Warn(ctx, "AI summarizer unavailable, continuing without it", "error", err)
			summarizer = nil
		}
	}

	opts := []services.SyncOption{
		services.WithSyncVCSClient(vcsClient),
		services.WithSyncConfig(cfg),
	}
	if summarizer != nil {
		opts = append(opts, services.WithRiskSummarizer(summarizer))
	}

	return services.NewSyncService(opts...), nil
}
