package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// GeminiGenerator implements Generator using Google Gemini.
type GeminiGenerator struct {
	apiKey    string
	modelName string
}

// NewGeminiGenerator creates a new Gemini generator. An empty API key leaves
// it unavailable.
func NewGeminiGenerator(apiKey, modelName string) *GeminiGenerator {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiGenerator{apiKey: apiKey, modelName: modelName}
}

// IsAvailable checks if the generator is configured.
func (g *GeminiGenerator) IsAvailable() bool {
	return g != nil && g.apiKey != ""
}

// Generate sends the rendered prompt to Gemini and returns its text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	if !g.IsAvailable() {
		return "", fmt.Errorf("gemini generator is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(prompt)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return responseText(resp)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
