package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AiActionAudit struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	TurnId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position     int            `gorm:"not null"`
	Type         string         `gorm:"type:varchar(50);not null"`
	Args         datatypes.JSON `gorm:"type:jsonb"`
	Result       datatypes.JSON `gorm:"type:jsonb"`
	ErrorCode    string         `gorm:"type:varchar(50)"`
	ErrorMessage string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (AiActionAudit) TableName() string {
	return "ai_action_audits"
}
