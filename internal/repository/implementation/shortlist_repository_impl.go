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

type ShortlistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShortlistMapper
}

func NewShortlistRepository(db *gorm.DB) contract.ShortlistRepository {
	return &ShortlistRepositoryImpl{
		db:     db,
		mapper: mapper.NewShortlistMapper(),
	}
}

func (r *ShortlistRepositoryImpl) Create(ctx context.Context, entry *entity.ShortlistEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Omit("University").Create(m).Error; err != nil {
		return err
	}
	university := entry.University
	*entry = *r.mapper.ToEntity(m)
	entry.University = university
	return nil
}

func (r *ShortlistRepositoryImpl) Update(ctx context.Context, entry *entity.ShortlistEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Omit("University").Save(m).Error; err != nil {
		return err
	}
	university := entry.University
	*entry = *r.mapper.ToEntity(m)
	entry.University = university
	return nil
}

func (r *ShortlistRepositoryImpl) FindByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) (*entity.ShortlistEntry, error) {
	var m model.UserUniversity
	query := applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.ByUniversityID{UniversityID: universityId},
		specification.WithUniversity{},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShortlistRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ShortlistEntry, error) {
	return r.findAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.WithUniversity{},
		specification.OrderBy{Field: "created_at"},
	)
}

func (r *ShortlistRepositoryImpl) FindAllByUserAndStatus(ctx context.Context, userId uuid.UUID, status entity.ShortlistStatus) ([]*entity.ShortlistEntry, error) {
	return r.findAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(status)},
		specification.WithUniversity{},
		specification.OrderBy{Field: "created_at"},
	)
}

func (r *ShortlistRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ShortlistEntry, error) {
	var models []*model.UserUniversity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
