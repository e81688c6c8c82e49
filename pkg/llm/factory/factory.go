package factory

import (
	"context"
	"fmt"

	"ai-counsellor-be/pkg/llm"
	"ai-counsellor-be/pkg/llm/gemini"
	"ai-counsellor-be/pkg/llm/groq"
	"ai-counsellor-be/pkg/llm/ollama"
)

type Config struct {
	Provider string // ollama | gemini | groq | auto
	Model    string

	OllamaBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
}

func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "ollama":
		return newOllama(cfg), nil
	case "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey, firstNonEmpty(cfg.GeminiModel, cfg.Model))
	case "groq":
		return groq.NewGroqProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, firstNonEmpty(cfg.GroqModel, cfg.Model)), nil
	case "auto", "":
		return newAuto(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// newAuto chains every provider that has credentials: gemini, then groq, then ollama
// when a base URL is set.
func newAuto(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	var chain []llm.Named
	if cfg.GeminiAPIKey != "" {
		p, err := gemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		chain = append(chain, llm.Named{Name: "gemini", Provider: p})
	}
	if cfg.GroqAPIKey != "" {
		chain = append(chain, llm.Named{Name: "groq", Provider: groq.NewGroqProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)})
	}
	if cfg.OllamaBaseURL != "" {
		chain = append(chain, llm.Named{Name: "ollama", Provider: newOllama(cfg)})
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("auto LLM provider: no provider configured")
	}
	return llm.NewFallbackProvider(chain...), nil
}

func newOllama(cfg Config) llm.LLMProvider {
	return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
