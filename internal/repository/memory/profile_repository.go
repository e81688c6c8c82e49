package memory

import (
	"context"
	"slices"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type profileRepository struct {
	db access
}

func (r *profileRepository) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	var found *entity.Profile
	r.db.read(func(d *dataset) {
		if p, ok := d.profiles[userId]; ok {
			found = copyProfile(p)
		}
	})
	return found, nil
}

// FindByUserIdForUpdate needs no extra locking: an open transaction already holds the
// store semaphore.
func (r *profileRepository) FindByUserIdForUpdate(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.FindByUserId(ctx, userId)
}

func (r *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	return r.db.write(ctx, func(d *dataset) error {
		now := r.db.now()
		stored := *copyProfile(*profile)
		if existing, ok := d.profiles[profile.UserId]; ok {
			stored.CreatedAt = existing.CreatedAt
		} else if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.UpdatedAt = &now
		d.profiles[profile.UserId] = stored
		*profile = *copyProfile(stored)
		return nil
	})
}

func copyProfile(p entity.Profile) *entity.Profile {
	p.PreferredCountries = slices.Clone(p.PreferredCountries)
	return &p
}
