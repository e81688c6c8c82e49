package model

import (
	"time"

	"github.com/google/uuid"
)

type AiMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_ai_messages_user_created"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_ai_messages_user_created"`
}

func (AiMessage) TableName() string {
	return "ai_messages"
}
