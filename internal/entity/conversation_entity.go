package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConversationRoleUser      = "user"
	ConversationRoleAssistant = "assistant"
)

type ConversationMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
