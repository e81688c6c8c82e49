package memory

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type taskRepository struct {
	db access
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.write(ctx, func(d *dataset) error {
		if task.Id == uuid.Nil {
			task.Id = uuid.New()
		}
		if task.Status == "" {
			task.Status = entity.TaskStatusPending
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = r.db.now()
		}
		d.tasks = append(d.tasks, *task)
		return nil
	})
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.write(ctx, func(d *dataset) error {
		for i, t := range d.tasks {
			if t.Id == task.Id {
				d.tasks[i] = *task
				return nil
			}
		}
		return fmt.Errorf("task %s not found", task.Id)
	})
}

func (r *taskRepository) FindOwned(ctx context.Context, userId, taskId uuid.UUID) (*entity.Task, error) {
	var found *entity.Task
	r.db.read(func(d *dataset) {
		for _, t := range d.tasks {
			if t.Id == taskId && t.UserId == userId {
				found = &t
				return
			}
		}
	})
	return found, nil
}

func (r *taskRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Task, error) {
	return r.findAll(func(t entity.Task) bool {
		return t.UserId == userId
	}), nil
}

func (r *taskRepository) FindAllByUserAndUniversity(ctx context.Context, userId, universityId uuid.UUID) ([]*entity.Task, error) {
	return r.findAll(func(t entity.Task) bool {
		return t.UserId == userId && t.UniversityId != nil && *t.UniversityId == universityId
	}), nil
}

func (r *taskRepository) findAll(match func(entity.Task) bool) []*entity.Task {
	result := []*entity.Task{}
	r.db.read(func(d *dataset) {
		for _, t := range d.tasks {
			if match(t) {
				result = append(result, &t)
			}
		}
	})
	return result
}
