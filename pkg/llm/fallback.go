package llm

import (
	"context"
	"errors"
	"fmt"
)

// Named pairs a provider with the label used in errors.
type Named struct {
	Name     string
	Provider LLMProvider
}

// FallbackProvider asks each provider in order and returns the first success.
type FallbackProvider struct {
	providers []Named
}

var _ LLMProvider = &FallbackProvider{}

func NewFallbackProvider(providers ...Named) *FallbackProvider {
	return &FallbackProvider{providers: providers}
}

func (f *FallbackProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	if len(f.providers) == 0 {
		return "", errors.New("no LLM provider configured")
	}

	var errs []error
	for _, p := range f.providers {
		out, err := p.Provider.Chat(ctx, history, options...)
		if err == nil {
			return out, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}

func (f *FallbackProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return f.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, options...)
}
