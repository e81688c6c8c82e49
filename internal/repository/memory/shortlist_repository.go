package memory

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type shortlistRepository struct {
	db access
}

func (r *shortlistRepository) Create(ctx context.Context, entry *entity.ShortlistEntry) error {
	return r.db.write(ctx, func(d *dataset) error {
		for _, e := range d.shortlist {
			if e.UserId == entry.UserId && e.UniversityId == entry.UniversityId {
				return ErrDuplicate
			}
		}
		if entry.Id == uuid.Nil {
			entry.Id = uuid.New()
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = r.db.now()
		}
		stored := *entry
		stored.University = nil
		d.shortlist = append(d.shortlist, stored)
		return nil
	})
}

func (r *shortlistRepository) Update(ctx context.Context, entry *entity.ShortlistEntry) error {
	return r.db.write(ctx, func(d *dataset) error {
		for i, e := range d.shortlist {
			if e.Id != entry.Id {
				continue
			}
			now := r.db.now()
			entry.UpdatedAt = &now
			stored := *entry
			stored.University = nil
			d.shortlist[i] = stored
			return nil
		}
		return fmt.Errorf("shortlist entry %s not found", entry.Id)
	})
}

func (r *shortlistRepository) FindByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) (*entity.ShortlistEntry, error) {
	var found *entity.ShortlistEntry
	r.db.read(func(d *dataset) {
		for _, e := range d.shortlist {
			if e.UserId == userId && e.UniversityId == universityId {
				found = withUniversity(d, e)
				return
			}
		}
	})
	return found, nil
}

func (r *shortlistRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ShortlistEntry, error) {
	return r.findAll(func(e entity.ShortlistEntry) bool {
		return e.UserId == userId
	}), nil
}

func (r *shortlistRepository) FindAllByUserAndStatus(ctx context.Context, userId uuid.UUID, status entity.ShortlistStatus) ([]*entity.ShortlistEntry, error) {
	return r.findAll(func(e entity.ShortlistEntry) bool {
		return e.UserId == userId && e.Status == status
	}), nil
}

func (r *shortlistRepository) findAll(match func(entity.ShortlistEntry) bool) []*entity.ShortlistEntry {
	result := []*entity.ShortlistEntry{}
	r.db.read(func(d *dataset) {
		for _, e := range d.shortlist {
			if match(e) {
				result = append(result, withUniversity(d, e))
			}
		}
	})
	return result
}

func withUniversity(d *dataset, e entity.ShortlistEntry) *entity.ShortlistEntry {
	e.University = findUniversity(d, e.UniversityId)
	return &e
}
