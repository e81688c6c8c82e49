package model

import (
	"time"

	"github.com/google/uuid"
)

type University struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_university_name_country"`
	Country       string    `gorm:"type:varchar(100);not null;index;uniqueIndex:idx_university_name_country"`
	Degree        string    `gorm:"type:varchar(100)"`
	Field         string    `gorm:"type:varchar(255)"`
	YearlyCostUsd int       `gorm:"not null"`
	MinGpa        *float64  `gorm:"type:numeric(3,2)"`
	Difficulty    string    `gorm:"type:varchar(20);not null;default:'medium'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (University) TableName() string {
	return "universities"
}
