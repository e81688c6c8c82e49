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

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, specification.UserOwnedBy{UserID: userId})
}

func (r *ProfileRepositoryImpl) FindByUserIdForUpdate(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, specification.UserOwnedBy{UserID: userId}, specification.ForUpdate{})
}

func (r *ProfileRepositoryImpl) Save(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.UserProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
