package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-counsellor-be/internal/config"
	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/pkg/turnlock"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/action"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/notify"
	"ai-counsellor-be/pkg/advising/proposal"
	"ai-counsellor-be/pkg/advising/recommend"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	promptCandidateLimit = 25
	onboardingSuffix     = "\n\n(Please complete onboarding first.)"
	auditPageSize        = 100
)

var tracer = otel.Tracer("ai-counsellor-be/internal/service")

type ICounsellorService interface {
	SendMessage(ctx context.Context, studentId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, studentId uuid.UUID) ([]dto.ConversationMessageResponse, error)
	GetActions(ctx context.Context, studentId uuid.UUID) ([]dto.ActionAuditResponse, error)
}

type counsellorService struct {
	uowFactory unitofwork.RepositoryFactory
	proposer   proposal.Proposer
	executor   *executor.Executor
	locker     turnlock.Locker
	catalog    *memory.CatalogCache
	scorer     *recommend.Scorer
	audit      IPublisherService
	events     notify.Publisher
	logger     logger.ILogger
	cfg        config.AdvisingConfig
}

func NewCounsellorService(
	uowFactory unitofwork.RepositoryFactory,
	proposer proposal.Proposer,
	executor *executor.Executor,
	locker turnlock.Locker,
	catalog *memory.CatalogCache,
	scorer *recommend.Scorer,
	audit IPublisherService,
	events notify.Publisher,
	logger logger.ILogger,
	cfg config.AdvisingConfig,
) ICounsellorService {
	if events == nil {
		events = notify.Nop()
	}
	return &counsellorService{
		uowFactory: uowFactory,
		proposer:   proposer,
		executor:   executor,
		locker:     locker,
		catalog:    catalog,
		scorer:     scorer,
		audit:      audit,
		events:     events,
		logger:     logger,
		cfg:        cfg,
	}
}

// SendMessage runs one conversational turn. Turns of the same student never overlap.
// Cancelling ctx is clean until generation returns; from then on the turn runs detached
// and is bounded only by the execution timeout.
func (s *counsellorService) SendMessage(ctx context.Context, studentId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	ctx, span := tracer.Start(ctx, "counsellor.SendMessage", trace.WithAttributes(
		attribute.String("user.id", studentId.String()),
	))
	defer span.End()

	release, err := s.locker.Acquire(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("acquire turn lock: %w", err)
	}
	defer release()

	input, err := s.prepare(ctx, studentId, req.Message)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	proposed, err := s.propose(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation unavailable")
		return nil, err
	}

	turnId := uuid.New()
	execCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ExecutionTimeout)
	defer cancel()

	records, execErr := s.execute(execCtx, studentId, proposed.Actions)
	if execErr != nil {
		// Applied actions stay applied; they are still audited.
		s.publishTurn(execCtx, turnId, studentId, input.Snapshot.Stage, records)
		span.RecordError(execErr)
		span.SetStatus(codes.Error, "execution timeout")
		return nil, execErr
	}

	snap, err := loadSnapshot(execCtx, s.uowFactory.NewUnitOfWork(execCtx), studentId)
	if err != nil {
		return nil, err
	}

	reply := proposed.Reply
	if len(proposed.Actions) > 0 && !input.Snapshot.Onboarded() {
		reply += onboardingSuffix
	}

	if err := s.appendTurn(execCtx, studentId, req.Message, reply); err != nil {
		return nil, err
	}

	s.publishTurn(execCtx, turnId, studentId, snap.Stage, records)
	span.SetAttributes(
		attribute.Int("turn.actions", len(records)),
		attribute.Int("turn.stage", int(snap.Stage)),
	)

	return &dto.SendMessageResponse{
		TurnId:   turnId,
		Reply:    reply,
		Actions:  records,
		Snapshot: toSnapshotResponse(snap),
	}, nil
}

// prepare loads the snapshot, the recent history and, once onboarded, the top scored
// universities for the prompt.
func (s *counsellorService) prepare(ctx context.Context, studentId uuid.UUID, message string) (proposal.Input, error) {
	ctx, span := tracer.Start(ctx, "counsellor.prepare")
	defer span.End()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	snap, err := loadSnapshot(ctx, uow, studentId)
	if err != nil {
		return proposal.Input{}, err
	}
	history, err := uow.ConversationRepository().FindRecentByUser(ctx, studentId, s.cfg.HistoryWindow)
	if err != nil {
		return proposal.Input{}, fmt.Errorf("load history: %w", err)
	}

	var candidates []recommend.Candidate
	if snap.Onboarded() {
		scored, err := scoreCandidates(ctx, uow, s.catalog, s.scorer, snap.Profile)
		if err != nil {
			return proposal.Input{}, err
		}
		candidates = recommend.Top(scored, promptCandidateLimit)
	}

	return proposal.Input{
		History:    history,
		Snapshot:   snap,
		Candidates: candidates,
		Message:    message,
	}, nil
}

func (s *counsellorService) propose(ctx context.Context, input proposal.Input) (*proposal.Proposal, error) {
	ctx, span := tracer.Start(ctx, "counsellor.propose")
	defer span.End()

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	proposed, err := s.proposer.Propose(genCtx, input)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, advising.ErrGenerationUnavailable) {
			err = advising.Wrap(advising.ErrGenerationUnavailable, "counsellor.propose", err)
		}
		s.logger.Warn("COUNSELLOR", "Generation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	// Cancelled while the model answered: nothing has been applied yet.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return proposed, nil
}

// execute decodes and applies candidates strictly in order. Every candidate yields one
// record. Only an expired execution deadline stops the loop.
func (s *counsellorService) execute(ctx context.Context, studentId uuid.UUID, candidates []action.Candidate) ([]dto.ActionRecord, error) {
	ctx, span := tracer.Start(ctx, "counsellor.execute", trace.WithAttributes(
		attribute.Int("actions.proposed", len(candidates)),
	))
	defer span.End()

	records := make([]dto.ActionRecord, 0, len(candidates))
	for i, c := range candidates {
		record := dto.ActionRecord{Type: c.Type, Args: c.Args}
		if record.Args == nil {
			record.Args = map[string]interface{}{}
		}

		if i >= s.cfg.MaxActionsPerTurn {
			record.Error = actionError(advising.Newf(advising.ErrInvalidAction, "counsellor.execute",
				"action limit exceeded: at most %d actions per turn", s.cfg.MaxActionsPerTurn))
			records = append(records, record)
			continue
		}

		a, err := action.Decode(c)
		if err != nil {
			record.Error = actionError(err)
			records = append(records, record)
			continue
		}

		if ctx.Err() != nil {
			return records, advising.Wrap(advising.ErrExecutionTimeout, "counsellor.execute", ctx.Err())
		}

		outcome, err := s.executor.Apply(ctx, studentId, a)
		if errors.Is(err, advising.ErrExecutionTimeout) {
			return records, err
		}
		if err != nil {
			record.Error = actionError(err)
			if advising.CodeOf(err) == "INTERNAL" {
				s.logger.Error("COUNSELLOR", "Action failed", map[string]interface{}{
					"user_id": studentId,
					"type":    c.Type,
					"error":   err.Error(),
				})
			}
		} else {
			record.Args = a.Args()
			record.Result = outcome.Result
		}
		records = append(records, record)
	}
	return records, nil
}

func actionError(err error) *dto.ActionError {
	return &dto.ActionError{
		Code:    advising.CodeOf(err),
		Message: advising.MessageOf(err),
	}
}

// appendTurn stores the user message and the reply together.
func (s *counsellorService) appendTurn(ctx context.Context, studentId uuid.UUID, message, reply string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	for _, m := range []*entity.ConversationMessage{
		{UserId: studentId, Role: entity.ConversationRoleUser, Content: message},
		{UserId: studentId, Role: entity.ConversationRoleAssistant, Content: reply},
	} {
		if err := uow.ConversationRepository().Append(ctx, m); err != nil {
			return fmt.Errorf("append conversation: %w", err)
		}
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *counsellorService) publishTurn(ctx context.Context, turnId, studentId uuid.UUID, stage advising.Stage, records []dto.ActionRecord) {
	failed := 0
	for _, r := range records {
		if r.Failed() {
			failed++
		}
	}
	s.events.TurnCompleted(ctx, studentId, turnId, int(stage), len(records), failed)

	if s.audit == nil || len(records) == 0 {
		return
	}
	payload, err := json.Marshal(dto.TurnCompletedMessage{
		TurnId:     turnId,
		UserId:     studentId,
		Stage:      int(stage),
		Actions:    records,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("COUNSELLOR", "Failed to encode audit message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.audit.Publish(ctx, payload); err != nil {
		s.logger.Error("COUNSELLOR", "Failed to publish audit message", map[string]interface{}{
			"turn_id": turnId,
			"error":   err.Error(),
		})
	}
}

func (s *counsellorService) GetHistory(ctx context.Context, studentId uuid.UUID) ([]dto.ConversationMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ConversationRepository().FindAllByUser(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	res := make([]dto.ConversationMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageResponse(m))
	}
	return res, nil
}

func (s *counsellorService) GetActions(ctx context.Context, studentId uuid.UUID) ([]dto.ActionAuditResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	audits, err := uow.ActionAuditRepository().FindRecentByUser(ctx, studentId, auditPageSize)
	if err != nil {
		return nil, fmt.Errorf("load action audits: %w", err)
	}

	res := make([]dto.ActionAuditResponse, 0, len(audits))
	for _, a := range audits {
		res = append(res, toAuditResponse(a))
	}
	return res, nil
}
