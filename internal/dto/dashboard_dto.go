package dto

import (
	"time"

	"github.com/google/uuid"
)

type SnapshotResponse struct {
	Stage     int                 `json:"stage"`
	StageName string              `json:"stage_name"`
	Profile   *ProfileResponse    `json:"profile"`
	Shortlist []ShortlistResponse `json:"shortlist"`
	Tasks     []TaskResponse      `json:"tasks"`
}

type StageResponse struct {
	Stage     int    `json:"stage"`
	StageName string `json:"stage_name"`
}

type ShortlistResponse struct {
	Id           uuid.UUID           `json:"id"`
	UniversityId uuid.UUID           `json:"university_id"`
	University   *UniversityResponse `json:"university,omitempty"`
	Status       string              `json:"status"`
	LockedAt     *time.Time          `json:"locked_at"`
	CreatedAt    time.Time           `json:"created_at"`
}

type UniversityResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	Degree        string    `json:"degree"`
	Field         string    `json:"field"`
	YearlyCostUsd int       `json:"yearly_cost_usd"`
	MinGpa        *float64  `json:"min_gpa"`
	Difficulty    string    `json:"difficulty"`
}

type UniversityCandidateResponse struct {
	UniversityResponse
	Bucket           string `json:"bucket"`
	AcceptanceChance string `json:"acceptance_chance"`
	RiskLevel        string `json:"risk_level"`
	Reason           string `json:"reason"`
}

// ShortlistActionResponse is returned by the manual shortlist, lock and unlock endpoints.
type ShortlistActionResponse struct {
	Result   map[string]interface{} `json:"result"`
	Snapshot *SnapshotResponse      `json:"snapshot"`
}
