package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShortlistStatus string

const (
	ShortlistStatusRecommended ShortlistStatus = "recommended"
	ShortlistStatusShortlisted ShortlistStatus = "shortlisted"
	ShortlistStatusLocked      ShortlistStatus = "locked"
)

// ShortlistEntry relates a student to a university. Status only changes through the
// commitment guard.
type ShortlistEntry struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	UniversityId uuid.UUID
	Status       ShortlistStatus
	LockedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Populated by repositories that preload the catalog row.
	University *University
}
