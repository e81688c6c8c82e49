package memory

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type conversationRepository struct {
	db access
}

func (r *conversationRepository) Append(ctx context.Context, message *entity.ConversationMessage) error {
	return r.db.write(ctx, func(d *dataset) error {
		if message.Id == uuid.Nil {
			message.Id = uuid.New()
		}
		if message.CreatedAt.IsZero() {
			message.CreatedAt = r.db.now()
		}
		d.messages = append(d.messages, *message)
		return nil
	})
}

func (r *conversationRepository) FindRecentByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ConversationMessage, error) {
	all, _ := r.FindAllByUser(ctx, userId)
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (r *conversationRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ConversationMessage, error) {
	result := []*entity.ConversationMessage{}
	r.db.read(func(d *dataset) {
		for _, m := range d.messages {
			if m.UserId == userId {
				result = append(result, &m)
			}
		}
	})
	return result, nil
}
