package model

import (
	"time"

	"github.com/google/uuid"
)

type UserUniversity struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_university"`
	UniversityId uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_university"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	LockedAt     *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	University *University `gorm:"foreignKey:UniversityId"`
}

func (UserUniversity) TableName() string {
	return "user_universities"
}
