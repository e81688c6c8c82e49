package proposal

import (
	"context"
	"errors"
	"testing"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/prompt"
	"ai-counsellor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	reply   string
	err     error
	history []llm.Message
	opts    *llm.Options
}

func (s *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.history = history
	s.opts = llm.NewOptions(0, options...)
	return s.reply, s.err
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, options...)
}

func input() Input {
	return Input{
		Snapshot: advising.NewSnapshot(&entity.Profile{OnboardingCompleted: true}, nil, nil),
		Message:  "what next?",
	}
}

func TestLLMProposer_Propose(t *testing.T) {
	provider := &scriptedProvider{reply: `{"reply":"Shortlist a few first.","actions":[]}`}
	p := NewLLMProposer(provider, prompt.NewBuilder(3))

	got, err := p.Propose(context.Background(), input())
	require.NoError(t, err)
	assert.Equal(t, "Shortlist a few first.", got.Reply)
	assert.Empty(t, got.Actions)

	assert.True(t, provider.opts.JSON)
	assert.Equal(t, 0.2, provider.opts.Temperature)
	require.NotEmpty(t, provider.history)
	assert.Equal(t, llm.RoleSystem, provider.history[0].Role)
}

func TestLLMProposer_ProviderFailure(t *testing.T) {
	p := NewLLMProposer(&scriptedProvider{err: errors.New("connection refused")}, prompt.NewBuilder(3))

	_, err := p.Propose(context.Background(), input())
	assert.ErrorIs(t, err, advising.ErrGenerationUnavailable)
}

func TestLLMProposer_Unparseable(t *testing.T) {
	p := NewLLMProposer(&scriptedProvider{reply: "I'm warming up"}, prompt.NewBuilder(3))

	_, err := p.Propose(context.Background(), input())
	assert.ErrorIs(t, err, advising.ErrGenerationUnavailable)
	assert.Equal(t, "GENERATION_UNAVAILABLE", advising.CodeOf(err))
}
