package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserOwnedBy restricts rows to one student.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByUniversityID struct {
	UniversityID uuid.UUID
}

func (s ByUniversityID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("university_id = ?", s.UniversityID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCountries struct {
	Countries []string
}

func (s ByCountries) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Countries) == 0 {
		return db
	}
	return db.Where("country IN ?", s.Countries)
}

// WithUniversity preloads the catalog row of a shortlist entry.
type WithUniversity struct{}

func (s WithUniversity) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("University")
}

// ForUpdate takes a row lock for the rest of the surrounding transaction.
type ForUpdate struct{}

func (s ForUpdate) Apply(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
