package dto

import (
	"time"

	"github.com/google/uuid"
)

type TaskResponse struct {
	Id           uuid.UUID  `json:"id"`
	UniversityId *uuid.UUID `json:"university_id"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}
