package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/ai"
	"google.golang.org/genai"
)

var _ ports.RiskSummarizer = (*RiskSummarizer)(nil)

type RiskSummarizer struct {
	client *genai.Client
	config *config.Config
	trans  *i18n.Translations
}

func NewRiskSummarizer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*RiskSummarizer, error) {
	apiKey := cfg.AI.APIKeys[config.AIGemini]
	if apiKey == "" {
		msg := trans.GetMessage("error.missing_api_key", 0, map[string]interface{}{"Provider": "gemini"})
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		msg := trans.GetMessage("error.ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &RiskSummarizer{
		client: client,
		config: cfg,
		trans:  trans,
	}, nil
}

// SummarizeRisk envía el prompt de análisis de riesgo a Gemini y retorna la
// respuesta en texto libre.
func (s *RiskSummarizer) SummarizeRisk(ctx context.Context, diff models.BranchDiff) (string, error) {
	prompt := ai.BuildRiskPrompt(diff)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(2048),
	}

	resp, err := s.client.Models.GenerateContent(ctx, string(s.config.AI.Model), genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("error al generar el análisis de riesgo: %w", err)
	}

	responseText := strings.TrimSpace(formatResponse(resp))
	if responseText == "" {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}

	return responseText, nil
}
