package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
)

// GeminiProviderFactory implementa AIProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateRiskSummarizer crea el servicio de análisis de riesgo de Gemini
func (f *GeminiProviderFactory) CreateRiskSummarizer(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.RiskSummarizer, error) {
	return NewRiskSummarizer(ctx, cfg, trans)
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.AI.APIKeys[config.AIGemini] == "" {
		return fmt.Errorf("gemini API key es requerida")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}
