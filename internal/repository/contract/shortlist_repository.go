package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type ShortlistRepository interface {
	Create(ctx context.Context, entry *entity.ShortlistEntry) error
	Update(ctx context.Context, entry *entity.ShortlistEntry) error
	FindByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) (*entity.ShortlistEntry, error)
	// FindAllByUser returns entries oldest first with the university preloaded.
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ShortlistEntry, error)
	FindAllByUserAndStatus(ctx context.Context, userId uuid.UUID, status entity.ShortlistStatus) ([]*entity.ShortlistEntry, error)
}
