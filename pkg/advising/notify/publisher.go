// Package notify emits advising domain events after a mutation has committed.
package notify

import (
	"context"

	"ai-counsellor-be/internal/pkg/logger"
	pkgEvents "ai-counsellor-be/pkg/events"

	"github.com/google/uuid"
)

const (
	UniversityShortlisted = "UNIVERSITY_SHORTLISTED"
	UniversityLocked      = "UNIVERSITY_LOCKED"
	UniversityUnlocked    = "UNIVERSITY_UNLOCKED"
	TaskCreated           = "TASK_CREATED"
	TaskCompleted         = "TASK_COMPLETED"
	TurnCompleted         = "TURN_COMPLETED"
)

// EventSink is the transport. *nats.Publisher satisfies it.
type EventSink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// Publisher abstracts advising event publishing. Publishing is best effort: failures are
// logged and never reach the caller.
type Publisher interface {
	UniversityShortlisted(ctx context.Context, studentID, universityID uuid.UUID)
	UniversityLocked(ctx context.Context, studentID, universityID uuid.UUID, demoted []uuid.UUID, tasksCreated int)
	UniversityUnlocked(ctx context.Context, studentID, universityID uuid.UUID)
	TaskCreated(ctx context.Context, studentID, taskID uuid.UUID, source string)
	TaskCompleted(ctx context.Context, studentID, taskID uuid.UUID)
	TurnCompleted(ctx context.Context, studentID, turnID uuid.UUID, stage int, actions, failed int)
}

type sinkPublisher struct {
	sink   EventSink
	logger logger.ILogger
}

// NewPublisher wraps a sink. A nil sink gives a publisher that drops every event.
func NewPublisher(sink EventSink, logger logger.ILogger) Publisher {
	return &sinkPublisher{sink: sink, logger: logger}
}

// Nop drops every event.
func Nop() Publisher {
	return &sinkPublisher{}
}

func (p *sinkPublisher) UniversityShortlisted(ctx context.Context, studentID, universityID uuid.UUID) {
	p.emit(ctx, UniversityShortlisted, map[string]interface{}{
		"user_id":       studentID,
		"university_id": universityID,
	})
}

func (p *sinkPublisher) UniversityLocked(ctx context.Context, studentID, universityID uuid.UUID, demoted []uuid.UUID, tasksCreated int) {
	p.emit(ctx, UniversityLocked, map[string]interface{}{
		"user_id":       studentID,
		"university_id": universityID,
		"demoted":       demoted,
		"tasks_created": tasksCreated,
	})
}

func (p *sinkPublisher) UniversityUnlocked(ctx context.Context, studentID, universityID uuid.UUID) {
	p.emit(ctx, UniversityUnlocked, map[string]interface{}{
		"user_id":       studentID,
		"university_id": universityID,
	})
}

func (p *sinkPublisher) TaskCreated(ctx context.Context, studentID, taskID uuid.UUID, source string) {
	p.emit(ctx, TaskCreated, map[string]interface{}{
		"user_id": studentID,
		"task_id": taskID,
		"source":  source,
	})
}

func (p *sinkPublisher) TaskCompleted(ctx context.Context, studentID, taskID uuid.UUID) {
	p.emit(ctx, TaskCompleted, map[string]interface{}{
		"user_id": studentID,
		"task_id": taskID,
	})
}

func (p *sinkPublisher) TurnCompleted(ctx context.Context, studentID, turnID uuid.UUID, stage int, actions, failed int) {
	p.emit(ctx, TurnCompleted, map[string]interface{}{
		"user_id": studentID,
		"turn_id": turnID,
		"stage":   stage,
		"actions": actions,
		"failed":  failed,
	})
}

func (p *sinkPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Publish(ctx, pkgEvents.New(eventType, data)); err != nil && p.logger != nil {
		p.logger.Error("ADVISING", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
