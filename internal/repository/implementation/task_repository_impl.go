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

type TaskRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaskMapper
}

func NewTaskRepository(db *gorm.DB) contract.TaskRepository {
	return &TaskRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaskMapper(),
	}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entity.Task) error {
	m := r.mapper.ToModel(task)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*task = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entity.Task) error {
	m := r.mapper.ToModel(task)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*task = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaskRepositoryImpl) FindOwned(ctx context.Context, userId, taskId uuid.UUID) (*entity.Task, error) {
	var m model.UserTask
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: taskId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TaskRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Task, error) {
	return r.findAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
}

func (r *TaskRepositoryImpl) FindAllByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) ([]*entity.Task, error) {
	return r.findAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByUniversityID{UniversityID: universityId},
		specification.OrderBy{Field: "created_at"},
	)
}

func (r *TaskRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	var models []*model.UserTask
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
