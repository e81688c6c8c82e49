package implementation

import (
	"context"
	"errors"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/mapper"
	"ai-counsellor-be/internal/model"
	"ai-counsellor-be/internal/repository/contract"
	"ai-counsellor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UniversityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UniversityMapper
}

func NewUniversityRepository(db *gorm.DB) contract.UniversityRepository {
	return &UniversityRepositoryImpl{
		db:     db,
		mapper: mapper.NewUniversityMapper(),
	}
}

func (r *UniversityRepositoryImpl) Create(ctx context.Context, university *entity.University) error {
	m := r.mapper.ToModel(university)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*university = *r.mapper.ToEntity(m)
	return nil
}

func (r *UniversityRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.University, error) {
	var m model.University
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UniversityRepositoryImpl) FindByCountries(ctx context.Context, countries []string) ([]*entity.University, error) {
	var models []*model.University
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByCountries{Countries: countries},
		specification.OrderBy{Field: "name"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UniversityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.University{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
