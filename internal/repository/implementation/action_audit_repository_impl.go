package implementation

import (
	"context"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/mapper"
	"ai-counsellor-be/internal/model"
	"ai-counsellor-be/internal/repository/contract"
	"ai-counsellor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionAuditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActionAuditMapper
}

func NewActionAuditRepository(db *gorm.DB) contract.ActionAuditRepository {
	return &ActionAuditRepositoryImpl{
		db:     db,
		mapper: mapper.NewActionAuditMapper(),
	}
}

func (r *ActionAuditRepositoryImpl) CreateBatch(ctx context.Context, audits []*entity.ActionAudit) error {
	if len(audits) == 0 {
		return nil
	}
	models := make([]*model.AiActionAudit, 0, len(audits))
	for _, a := range audits {
		m, err := r.mapper.ToModel(a)
		if err != nil {
			return err
		}
		models = append(models, m)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ActionAuditRepositoryImpl) FindRecentByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ActionAudit, error) {
	var models []*model.AiActionAudit
	query := applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "position"},
		specification.Pagination{Limit: limit},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
