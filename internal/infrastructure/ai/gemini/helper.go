package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// formatResponse formatea la respuesta de la API de Gemini en una cadena.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					formattedContent.WriteString(part.Text)
				}
			}
		}
	}
	return formattedContent.String()
}

func float32Ptr(f float32) *float32 {
	return &f
}
