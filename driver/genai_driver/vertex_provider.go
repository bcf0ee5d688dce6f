package genai_driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"gameshub/config"
)

// VertexProvider calls Gemini through Vertex AI, or the Gemini API when only
// an API key is configured.
type VertexProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewVertexProvider(ctx context.Context, cfg config.GenAIConfig) (*VertexProvider, error) {
	clientConfig := &genai.ClientConfig{}
	if cfg.VertexProject != "" {
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = cfg.VertexProject
		clientConfig.Location = cfg.VertexLocation
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = cfg.GeminiAPIKey
	}

	return newVertexProvider(ctx, clientConfig, cfg.Model, cfg.Temperature)
}

func newVertexProvider(ctx context.Context, clientConfig *genai.ClientConfig, model string, temperature float64) (*VertexProvider, error) {
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &VertexProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (p *VertexProvider) Name() string  { return ProviderVertex }
func (p *VertexProvider) Model() string { return p.model }

func (p *VertexProvider) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(p.temperature),
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("genai returned an empty response")
	}
	return text, nil
}
