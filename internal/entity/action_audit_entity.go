package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionAudit is the persisted copy of one action record of a turn. It is written after
// the fact and never consulted when applying new actions.
type ActionAudit struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	TurnId       uuid.UUID
	Position     int
	Type         string
	Args         map[string]interface{}
	Result       map[string]interface{}
	ErrorCode    string
	ErrorMessage string
	CreatedAt    time.Time
}
