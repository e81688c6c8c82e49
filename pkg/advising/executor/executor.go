// Package executor applies one validated action in its own transaction.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/action"
	"ai-counsellor-be/pkg/advising/guard"
	"ai-counsellor-be/pkg/advising/notify"

	"github.com/google/uuid"
)

// Outcome is the committed result of one action.
type Outcome struct {
	Action action.Action
	Result map[string]interface{}
}

type options struct {
	taskSource entity.TaskSource
}

type Option func(*options)

// WithTaskSource overrides the source recorded on tasks created by CreateTask.
// The assistant path leaves it at ai.
func WithTaskSource(source entity.TaskSource) Option {
	return func(o *options) { o.taskSource = source }
}

type Executor struct {
	uowFactory unitofwork.RepositoryFactory
	events     notify.Publisher
	logger     logger.ILogger
	now        func() time.Time
}

func New(uowFactory unitofwork.RepositoryFactory, events notify.Publisher, logger logger.ILogger) *Executor {
	if events == nil {
		events = notify.Nop()
	}
	return &Executor{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

// Apply runs a inside one transaction: commit on success, rollback on any error.
// The student's profile row is locked first so concurrent writers for the same student
// queue behind each other.
func (e *Executor) Apply(ctx context.Context, studentID uuid.UUID, a action.Action, opts ...Option) (*Outcome, error) {
	const op = "executor.Apply"

	if a == nil {
		return nil, advising.Newf(advising.ErrInvalidAction, op, "no action")
	}
	o := options{taskSource: entity.TaskSourceAI}
	for _, opt := range opts {
		opt(&o)
	}

	outcome, after, err := e.apply(ctx, studentID, a, o)
	if err != nil {
		if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, advising.Wrap(advising.ErrExecutionTimeout, op, err)
		}
		return nil, err
	}

	after(context.WithoutCancel(ctx))
	return outcome, nil
}

func (e *Executor) apply(ctx context.Context, studentID uuid.UUID, a action.Action, o options) (*Outcome, func(context.Context), error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().FindByUserIdForUpdate(ctx, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock profile: %w", err)
	}
	if advising.Resolve(profile, nil, nil) == advising.StageOnboarding {
		return nil, nil, advising.Newf(advising.ErrOnboardingIncomplete, string(a.Type()), "complete onboarding first")
	}

	var (
		result map[string]interface{}
		after  func(context.Context)
	)

	switch a := a.(type) {
	case action.Shortlist:
		t, err := guard.Shortlist(ctx, uow, studentID, a.UniversityID)
		if err != nil {
			return nil, nil, err
		}
		result = transitionResult(t)
		after = func(ctx context.Context) {
			if t.Changed {
				e.events.UniversityShortlisted(ctx, studentID, t.Entry.UniversityId)
			}
		}
	case action.Lock:
		t, err := guard.Lock(ctx, uow, studentID, a.UniversityID)
		if err != nil {
			return nil, nil, err
		}
		result = transitionResult(t)
		after = e.afterLock(studentID, t)
	case action.LockRecentShortlisted:
		t, err := guard.LockMostRecent(ctx, uow, studentID)
		if err != nil {
			return nil, nil, err
		}
		result = transitionResult(t)
		after = e.afterLock(studentID, t)
	case action.Unlock:
		t, err := guard.Unlock(ctx, uow, studentID, a.UniversityID)
		if err != nil {
			return nil, nil, err
		}
		result = transitionResult(t)
		after = func(ctx context.Context) {
			if t.Changed {
				e.events.UniversityUnlocked(ctx, studentID, t.Entry.UniversityId)
			}
		}
	case action.CreateTask:
		task := &entity.Task{
			UserId: studentID,
			Title:  a.Title,
			Status: entity.TaskStatusPending,
			Source: o.taskSource,
		}
		if err := uow.TaskRepository().Create(ctx, task); err != nil {
			return nil, nil, fmt.Errorf("create task: %w", err)
		}
		result = taskResult(task)
		after = func(ctx context.Context) {
			e.events.TaskCreated(ctx, studentID, task.Id, string(task.Source))
		}
	case action.CompleteTask:
		task, err := uow.TaskRepository().FindOwned(ctx, studentID, a.TaskID)
		if err != nil {
			return nil, nil, fmt.Errorf("load task: %w", err)
		}
		if task == nil {
			return nil, nil, advising.Newf(advising.ErrNotFound, string(a.Type()), "task %s not found", a.TaskID)
		}
		if task.Status == entity.TaskStatusDone {
			return nil, nil, advising.Newf(advising.ErrAlreadyDone, string(a.Type()), "task %s is already done", a.TaskID)
		}
		completedAt := e.now()
		task.Status = entity.TaskStatusDone
		task.CompletedAt = &completedAt
		if err := uow.TaskRepository().Update(ctx, task); err != nil {
			return nil, nil, fmt.Errorf("complete task: %w", err)
		}
		result = taskResult(task)
		after = func(ctx context.Context) {
			e.events.TaskCompleted(ctx, studentID, task.Id)
		}
	default:
		return nil, nil, advising.Newf(advising.ErrInvalidAction, "executor.Apply", "unsupported action %T", a)
	}

	if err := uow.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	e.logger.Info("ADVISING", "Action applied", map[string]interface{}{
		"user_id": studentID,
		"type":    string(a.Type()),
	})
	return &Outcome{Action: a, Result: result}, after, nil
}

func (e *Executor) afterLock(studentID uuid.UUID, t *guard.Transition) func(context.Context) {
	return func(ctx context.Context) {
		if !t.Changed {
			return
		}
		demoted := make([]uuid.UUID, 0, len(t.Demoted))
		for _, d := range t.Demoted {
			demoted = append(demoted, d.UniversityId)
		}
		e.events.UniversityLocked(ctx, studentID, t.Entry.UniversityId, demoted, len(t.TasksCreated))
	}
}

func transitionResult(t *guard.Transition) map[string]interface{} {
	result := map[string]interface{}{
		"universityId": t.Entry.UniversityId.String(),
		"status":       string(t.Entry.Status),
		"changed":      t.Changed,
		"message":      t.Message,
	}
	if t.Entry.University != nil {
		result["universityName"] = t.Entry.University.Name
	}
	if len(t.TasksCreated) > 0 {
		result["tasksCreated"] = len(t.TasksCreated)
	}
	if len(t.Demoted) > 0 {
		ids := make([]string, 0, len(t.Demoted))
		for _, d := range t.Demoted {
			ids = append(ids, d.UniversityId.String())
		}
		result["demoted"] = ids
	}
	return result
}

func taskResult(task *entity.Task) map[string]interface{} {
	return map[string]interface{}{
		"taskId": task.Id.String(),
		"title":  task.Title,
		"status": string(task.Status),
	}
}
