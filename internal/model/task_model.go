package model

import (
	"time"

	"github.com/google/uuid"
)

type UserTask struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	UniversityId *uuid.UUID `gorm:"type:uuid;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"`
	Source       string     `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	CompletedAt  *time.Time `gorm:"type:timestamptz"`
}

func (UserTask) TableName() string {
	return "user_tasks"
}
