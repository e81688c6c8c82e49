package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ActionError is the per-action failure carried inside an ActionRecord.
type ActionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionRecord reports one proposed action of a turn. Exactly one of Result and Error is set.
type ActionRecord struct {
	Type   string                 `json:"type"`
	Args   map[string]interface{} `json:"args"`
	Result map[string]interface{} `json:"result,omitempty"`
	Error  *ActionError           `json:"error,omitempty"`
}

func (r ActionRecord) Failed() bool {
	return r.Error != nil
}

type SendMessageResponse struct {
	TurnId   uuid.UUID         `json:"turn_id"`
	Reply    string            `json:"reply"`
	Actions  []ActionRecord    `json:"actions"`
	Snapshot *SnapshotResponse `json:"snapshot"`
}

type ConversationMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ActionAuditResponse struct {
	Id        uuid.UUID              `json:"id"`
	TurnId    uuid.UUID              `json:"turn_id"`
	Position  int                    `json:"position"`
	Type      string                 `json:"type"`
	Args      map[string]interface{} `json:"args"`
	Result    map[string]interface{} `json:"result,omitempty"`
	Error     *ActionError           `json:"error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// TurnCompletedMessage is published on the audit topic after every completed turn.
type TurnCompletedMessage struct {
	TurnId     uuid.UUID      `json:"turn_id"`
	UserId     uuid.UUID      `json:"user_id"`
	Stage      int            `json:"stage"`
	Actions    []ActionRecord `json:"actions"`
	OccurredAt time.Time      `json:"occurred_at"`
}
