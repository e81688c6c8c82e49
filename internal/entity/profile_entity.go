package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserId uuid.UUID

	EducationLevel string
	Major          string
	GradYear       *int
	Gpa            *float64

	IntendedDegree     string
	FieldOfStudy       string
	IntakeYear         *int
	PreferredCountries []string

	BudgetPerYear *int
	FundingPlan   string

	IeltsStatus string
	GreStatus   string
	SopStatus   string

	OnboardingCompleted bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
