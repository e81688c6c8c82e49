// Package proposal obtains a reply and candidate actions from the language model. Its
// output is untrusted data: candidates are decoded and validated by the caller.
package proposal

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/action"
	"ai-counsellor-be/pkg/advising/prompt"
	"ai-counsellor-be/pkg/advising/recommend"
	"ai-counsellor-be/pkg/llm"
)

type Input struct {
	History    []*entity.ConversationMessage
	Snapshot   *advising.Snapshot
	Candidates []recommend.Candidate
	Message    string
}

type Proposal struct {
	Reply   string
	Actions []action.Candidate
}

type Proposer interface {
	// Propose fails with advising.ErrGenerationUnavailable when the model cannot be
	// reached or its output cannot be parsed.
	Propose(ctx context.Context, in Input) (*Proposal, error)
}

type LLMProposer struct {
	provider llm.LLMProvider
	builder  *prompt.Builder
	opts     []llm.Option
}

var _ Proposer = &LLMProposer{}

func NewLLMProposer(provider llm.LLMProvider, builder *prompt.Builder, opts ...llm.Option) *LLMProposer {
	base := []llm.Option{llm.WithTemperature(0.2), llm.WithJSONResponse()}
	return &LLMProposer{
		provider: provider,
		builder:  builder,
		opts:     append(base, opts...),
	}
}

func (p *LLMProposer) Propose(ctx context.Context, in Input) (*Proposal, error) {
	const op = "proposal.Propose"

	msgs, err := p.builder.Messages(in.History, in.Snapshot, in.Candidates, in.Message)
	if err != nil {
		return nil, advising.Wrap(advising.ErrGenerationUnavailable, op, err)
	}

	raw, err := p.provider.Chat(ctx, msgs, p.opts...)
	if err != nil {
		return nil, advising.Wrap(advising.ErrGenerationUnavailable, op, err)
	}

	proposal, err := Parse(raw)
	if err != nil {
		return nil, advising.Wrap(advising.ErrGenerationUnavailable, op, fmt.Errorf("unparseable model output: %w", err))
	}
	return proposal, nil
}
