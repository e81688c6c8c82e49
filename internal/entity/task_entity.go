package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

type TaskSource string

const (
	TaskSourceSystem TaskSource = "system"
	TaskSourceAI     TaskSource = "ai"
	TaskSourceManual TaskSource = "manual"
)

type Task struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	UniversityId *uuid.UUID // set for generated application tasks
	Title        string
	Status       TaskStatus
	Source       TaskSource
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
