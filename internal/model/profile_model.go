package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfile struct {
	UserId uuid.UUID `gorm:"type:uuid;primaryKey"`

	EducationLevel string   `gorm:"type:varchar(100)"`
	Major          string   `gorm:"type:varchar(255)"`
	GradYear       *int     `gorm:"type:int"`
	Gpa            *float64 `gorm:"type:numeric(3,2)"`

	IntendedDegree     string                       `gorm:"type:varchar(100)"`
	FieldOfStudy       string                       `gorm:"type:varchar(255)"`
	IntakeYear         *int                         `gorm:"type:int"`
	PreferredCountries datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	BudgetPerYear *int   `gorm:"type:int"`
	FundingPlan   string `gorm:"type:varchar(100)"`

	IeltsStatus string `gorm:"type:varchar(50)"`
	GreStatus   string `gorm:"type:varchar(50)"`
	SopStatus   string `gorm:"type:varchar(50)"`

	OnboardingCompleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
