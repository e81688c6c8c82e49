package memory

import (
	"context"
	"slices"
	"strings"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type universityRepository struct {
	db access
}

func (r *universityRepository) Create(ctx context.Context, university *entity.University) error {
	return r.db.write(ctx, func(d *dataset) error {
		for _, u := range d.universities {
			if strings.EqualFold(u.Name, university.Name) && strings.EqualFold(u.Country, university.Country) {
				return ErrDuplicate
			}
		}
		if university.Id == uuid.Nil {
			university.Id = uuid.New()
		}
		if university.CreatedAt.IsZero() {
			university.CreatedAt = r.db.now()
		}
		d.universities = append(d.universities, *university)
		return nil
	})
}

func (r *universityRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.University, error) {
	var found *entity.University
	r.db.read(func(d *dataset) {
		found = findUniversity(d, id)
	})
	return found, nil
}

func (r *universityRepository) FindByCountries(ctx context.Context, countries []string) ([]*entity.University, error) {
	result := []*entity.University{}
	r.db.read(func(d *dataset) {
		for _, u := range d.universities {
			if len(countries) > 0 && !slices.Contains(countries, u.Country) {
				continue
			}
			result = append(result, &u)
		}
	})
	slices.SortStableFunc(result, func(a, b *entity.University) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}

func (r *universityRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	r.db.read(func(d *dataset) {
		n = int64(len(d.universities))
	})
	return n, nil
}

func findUniversity(d *dataset, id uuid.UUID) *entity.University {
	for _, u := range d.universities {
		if u.Id == id {
			return &u
		}
	}
	return nil
}
