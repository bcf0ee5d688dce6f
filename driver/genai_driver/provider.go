// Package genai_driver turns article text into validated game payloads.
package genai_driver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gameshub/config"
)

const (
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// Provider sends one prompt and returns the raw model reply, expected to be JSON.
type Provider interface {
	Name() string
	Model() string
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
}

// NewProvider builds the configured provider. It returns nil for "none".
func NewProvider(ctx context.Context, cfg config.GenAIConfig) (Provider, error) {
	switch cfg.Provider {
	case ProviderVertex:
		p, err := NewVertexProvider(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOpenAI:
		key := cfg.OpenAIAPIKey
		if key == "" && cfg.OpenAIKeyFile != "" {
			raw, err := os.ReadFile(cfg.OpenAIKeyFile)
			if err != nil {
				return nil, fmt.Errorf("read openai key file: %w", err)
			}
			key = strings.TrimSpace(string(raw))
		}
		return NewOpenAIProvider(cfg.OpenAIBaseURL, key, cfg.Model, cfg.Temperature, cfg.Timeout), nil
	case ProviderNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown genai provider %q", cfg.Provider)
}
