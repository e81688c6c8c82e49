package mapper

import (
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.UserTask) *entity.Task {
	if t == nil {
		return nil
	}
	return &entity.Task{
		Id:           t.Id,
		UserId:       t.UserId,
		UniversityId: t.UniversityId,
		Title:        t.Title,
		Status:       entity.TaskStatus(t.Status),
		Source:       entity.TaskSource(t.Source),
		CreatedAt:    t.CreatedAt,
		CompletedAt:  t.CompletedAt,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.UserTask {
	if t == nil {
		return nil
	}
	return &model.UserTask{
		Id:           t.Id,
		UserId:       t.UserId,
		UniversityId: t.UniversityId,
		Title:        t.Title,
		Status:       string(t.Status),
		Source:       string(t.Source),
		CreatedAt:    t.CreatedAt,
		CompletedAt:  t.CompletedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.UserTask) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
