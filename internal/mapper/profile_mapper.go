package mapper

import (
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.UserProfile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	countries := make([]string, len(p.PreferredCountries))
	copy(countries, p.PreferredCountries)

	return &entity.Profile{
		UserId:              p.UserId,
		EducationLevel:      p.EducationLevel,
		Major:               p.Major,
		GradYear:            p.GradYear,
		Gpa:                 p.Gpa,
		IntendedDegree:      p.IntendedDegree,
		FieldOfStudy:        p.FieldOfStudy,
		IntakeYear:          p.IntakeYear,
		PreferredCountries:  countries,
		BudgetPerYear:       p.BudgetPerYear,
		FundingPlan:         p.FundingPlan,
		IeltsStatus:         p.IeltsStatus,
		GreStatus:           p.GreStatus,
		SopStatus:           p.SopStatus,
		OnboardingCompleted: p.OnboardingCompleted,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.UserProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProfile{
		UserId:              p.UserId,
		EducationLevel:      p.EducationLevel,
		Major:               p.Major,
		GradYear:            p.GradYear,
		Gpa:                 p.Gpa,
		IntendedDegree:      p.IntendedDegree,
		FieldOfStudy:        p.FieldOfStudy,
		IntakeYear:          p.IntakeYear,
		PreferredCountries:  datatypes.NewJSONSlice(p.PreferredCountries),
		BudgetPerYear:       p.BudgetPerYear,
		FundingPlan:         p.FundingPlan,
		IeltsStatus:         p.IeltsStatus,
		GreStatus:           p.GreStatus,
		SopStatus:           p.SopStatus,
		OnboardingCompleted: p.OnboardingCompleted,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}
