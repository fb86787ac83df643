package openai

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
)

// OpenAIProviderFactory implementa AIProviderFactory para OpenAI
type OpenAIProviderFactory struct{}

// NewOpenAIProviderFactory crea una nueva factory para OpenAI
func NewOpenAIProviderFactory() *OpenAIProviderFactory {
	return &OpenAIProviderFactory{}
}

// CreateRiskSummarizer crea el servicio de análisis de riesgo de OpenAI
func (f *OpenAIProviderFactory) CreateRiskSummarizer(
	_ context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.RiskSummarizer, error) {
	return NewRiskSummarizer(cfg, trans)
}

// ValidateConfig valida la configuración de OpenAI
func (f *OpenAIProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.AI.APIKeys[config.AIOpenAI] == "" {
		return fmt.Errorf("openai API key es requerida")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *OpenAIProviderFactory) Name() string {
	return "openai"
}
