package service

import (
	"context"
	"encoding/json"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IConsumerService persists the action records of completed turns for audit.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Consume subscribes and processes messages until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TurnCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("AUDIT", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	audits := make([]*entity.ActionAudit, 0, len(payload.Actions))
	for i, record := range payload.Actions {
		audit := &entity.ActionAudit{
			UserId:    payload.UserId,
			TurnId:    payload.TurnId,
			Position:  i,
			Type:      record.Type,
			Args:      record.Args,
			Result:    record.Result,
			CreatedAt: payload.OccurredAt,
		}
		if record.Error != nil {
			audit.ErrorCode = record.Error.Code
			audit.ErrorMessage = record.Error.Message
		}
		audits = append(audits, audit)
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActionAuditRepository().CreateBatch(ctx, audits); err != nil {
		cs.logger.Error("AUDIT", "Failed to store action audits", map[string]interface{}{
			"turn_id": payload.TurnId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Debug("AUDIT", "Stored action audits", map[string]interface{}{
		"turn_id": payload.TurnId,
		"actions": len(audits),
	})
	msg.Ack()
}
