package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

// ConversationRepository is append-only.
type ConversationRepository interface {
	Append(ctx context.Context, message *entity.ConversationMessage) error
	// FindRecentByUser returns the last limit messages in chronological order.
	FindRecentByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ConversationMessage, error)
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ConversationMessage, error)
}
