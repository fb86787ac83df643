package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/Tomas-vilte/MateSync/internal/infrastructure/ai"
	"github.com/sashabaranov/go-openai"
)

var _ ports.RiskSummarizer = (*RiskSummarizer)(nil)

// chatCompletionClient es el subconjunto del cliente de OpenAI que usa el summarizer.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type RiskSummarizer struct {
	client chatCompletionClient
	config *config.Config
	trans  *i18n.Translations
}

func NewRiskSummarizer(cfg *config.Config, trans *i18n.Translations) (*RiskSummarizer, error) {
	apiKey := cfg.AI.APIKeys[config.AIOpenAI]
	if apiKey == "" {
		msg := trans.GetMessage("error.missing_api_key", 0, map[string]interface{}{"Provider": "openai"})
		return nil, fmt.Errorf("%s", msg)
	}

	return &RiskSummarizer{
		client: openai.NewClient(apiKey),
		config: cfg,
		trans:  trans,
	}, nil
}

func NewRiskSummarizerWithClient(client chatCompletionClient, cfg *config.Config, trans *i18n.Translations) *RiskSummarizer {
	return &RiskSummarizer{
		client: client,
		config: cfg,
		trans:  trans,
	}
}

// SummarizeRisk envía el prompt de análisis de riesgo al endpoint de chat
// completion y retorna la respuesta en texto libre.
func (s *RiskSummarizer) SummarizeRisk(ctx context.Context, diff models.BranchDiff) (string, error) {
	prompt := ai.BuildRiskPrompt(diff)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: string(s.config.AI.Model),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("error al generar el análisis de riesgo: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}

	return content, nil
}
