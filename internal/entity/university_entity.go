package entity

import (
	"time"

	"github.com/google/uuid"
)

type University struct {
	Id            uuid.UUID
	Name          string
	Country       string
	Degree        string
	Field         string
	YearlyCostUsd int
	MinGpa        *float64
	Difficulty    string // low | medium | high
	CreatedAt     time.Time
}
