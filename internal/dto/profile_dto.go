package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserId              uuid.UUID  `json:"user_id"`
	EducationLevel      string     `json:"education_level"`
	Major               string     `json:"major"`
	GradYear            *int       `json:"grad_year"`
	Gpa                 *float64   `json:"gpa"`
	IntendedDegree      string     `json:"intended_degree"`
	FieldOfStudy        string     `json:"field_of_study"`
	IntakeYear          *int       `json:"intake_year"`
	PreferredCountries  []string   `json:"preferred_countries"`
	BudgetPerYear       *int       `json:"budget_per_year"`
	FundingPlan         string     `json:"funding_plan"`
	IeltsStatus         string     `json:"ielts_status"`
	GreStatus           string     `json:"gre_status"`
	SopStatus           string     `json:"sop_status"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

// UpdateProfileRequest replaces every form field. Onboarding completion is not part of it.
type UpdateProfileRequest struct {
	EducationLevel     string   `json:"education_level" validate:"max=100"`
	Major              string   `json:"major" validate:"max=100"`
	GradYear           *int     `json:"grad_year" validate:"omitempty,min=1950,max=2100"`
	Gpa                *float64 `json:"gpa" validate:"omitempty,min=0,max=10"`
	IntendedDegree     string   `json:"intended_degree" validate:"max=100"`
	FieldOfStudy       string   `json:"field_of_study" validate:"max=100"`
	IntakeYear         *int     `json:"intake_year" validate:"omitempty,min=1950,max=2100"`
	PreferredCountries []string `json:"preferred_countries" validate:"max=20,dive,max=100"`
	BudgetPerYear      *int     `json:"budget_per_year" validate:"omitempty,min=0"`
	FundingPlan        string   `json:"funding_plan" validate:"max=100"`
	IeltsStatus        string   `json:"ielts_status" validate:"max=50"`
	GreStatus          string   `json:"gre_status" validate:"max=50"`
	SopStatus          string   `json:"sop_status" validate:"max=50"`
}
