package mapper

import (
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"
)

type UniversityMapper struct{}

func NewUniversityMapper() *UniversityMapper {
	return &UniversityMapper{}
}

func (m *UniversityMapper) ToEntity(u *model.University) *entity.University {
	if u == nil {
		return nil
	}
	return &entity.University{
		Id:            u.Id,
		Name:          u.Name,
		Country:       u.Country,
		Degree:        u.Degree,
		Field:         u.Field,
		YearlyCostUsd: u.YearlyCostUsd,
		MinGpa:        u.MinGpa,
		Difficulty:    u.Difficulty,
		CreatedAt:     u.CreatedAt,
	}
}

func (m *UniversityMapper) ToModel(u *entity.University) *model.University {
	if u == nil {
		return nil
	}
	return &model.University{
		Id:            u.Id,
		Name:          u.Name,
		Country:       u.Country,
		Degree:        u.Degree,
		Field:         u.Field,
		YearlyCostUsd: u.YearlyCostUsd,
		MinGpa:        u.MinGpa,
		Difficulty:    u.Difficulty,
		CreatedAt:     u.CreatedAt,
	}
}

func (m *UniversityMapper) ToEntities(universities []*model.University) []*entity.University {
	entities := make([]*entity.University, len(universities))
	for i, u := range universities {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
