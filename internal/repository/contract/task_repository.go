package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	// FindOwned returns nil, nil when the task does not exist or belongs to someone else.
	FindOwned(ctx context.Context, userId, taskId uuid.UUID) (*entity.Task, error)
	// FindAllByUser returns tasks oldest first.
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Task, error)
	FindAllByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) ([]*entity.Task, error)
}
