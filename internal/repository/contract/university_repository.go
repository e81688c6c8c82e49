package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type UniversityRepository interface {
	Create(ctx context.Context, university *entity.University) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.University, error)
	// FindByCountries returns the whole catalog when countries is empty.
	FindByCountries(ctx context.Context, countries []string) ([]*entity.University, error)
	Count(ctx context.Context) (int64, error)
}
