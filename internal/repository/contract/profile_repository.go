package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// FindByUserId returns nil, nil when the student has no profile yet.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	// FindByUserIdForUpdate also locks the row until the surrounding transaction ends.
	// It serializes all writers of one student.
	FindByUserIdForUpdate(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}
