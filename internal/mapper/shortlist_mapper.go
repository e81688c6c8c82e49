package mapper

import (
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"
)

type ShortlistMapper struct {
	universities *UniversityMapper
}

func NewShortlistMapper() *ShortlistMapper {
	return &ShortlistMapper{universities: NewUniversityMapper()}
}

func (m *ShortlistMapper) ToEntity(u *model.UserUniversity) *entity.ShortlistEntry {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.ShortlistEntry{
		Id:           u.Id,
		UserId:       u.UserId,
		UniversityId: u.UniversityId,
		Status:       entity.ShortlistStatus(u.Status),
		LockedAt:     u.LockedAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
		University:   m.universities.ToEntity(u.University),
	}
}

// ToModel leaves the association empty so Save never writes the catalog row.
func (m *ShortlistMapper) ToModel(e *entity.ShortlistEntry) *model.UserUniversity {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.UserUniversity{
		Id:           e.Id,
		UserId:       e.UserId,
		UniversityId: e.UniversityId,
		Status:       string(e.Status),
		LockedAt:     e.LockedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ShortlistMapper) ToEntities(rows []*model.UserUniversity) []*entity.ShortlistEntry {
	entities := make([]*entity.ShortlistEntry, len(rows))
	for i, r := range rows {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
