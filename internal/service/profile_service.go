package service

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	Get(ctx context.Context, studentId uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, studentId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	CompleteOnboarding(ctx context.Context, studentId uuid.UUID) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Get returns the student's profile, creating an empty one on first access.
func (s *profileService) Get(ctx context.Context, studentId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		return toProfileResponse(profile), nil
	}

	profile, err = s.mutate(ctx, studentId, func(*entity.Profile) {})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) Update(ctx context.Context, studentId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.mutate(ctx, studentId, func(p *entity.Profile) {
		p.EducationLevel = req.EducationLevel
		p.Major = req.Major
		p.GradYear = req.GradYear
		p.Gpa = req.Gpa
		p.IntendedDegree = req.IntendedDegree
		p.FieldOfStudy = req.FieldOfStudy
		p.IntakeYear = req.IntakeYear
		p.PreferredCountries = req.PreferredCountries
		p.BudgetPerYear = req.BudgetPerYear
		p.FundingPlan = req.FundingPlan
		p.IeltsStatus = req.IeltsStatus
		p.GreStatus = req.GreStatus
		p.SopStatus = req.SopStatus
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("PROFILE", "Profile updated", map[string]interface{}{"user_id": studentId})
	return toProfileResponse(profile), nil
}

// CompleteOnboarding is idempotent. Completion is never reverted by later updates.
func (s *profileService) CompleteOnboarding(ctx context.Context, studentId uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.mutate(ctx, studentId, func(p *entity.Profile) {
		p.OnboardingCompleted = true
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("PROFILE", "Onboarding completed", map[string]interface{}{"user_id": studentId})
	return toProfileResponse(profile), nil
}

// mutate applies fn to the locked profile row, creating the row when missing.
func (s *profileService) mutate(ctx context.Context, studentId uuid.UUID, fn func(p *entity.Profile)) (*entity.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().FindByUserIdForUpdate(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("lock profile: %w", err)
	}
	if profile == nil {
		profile = &entity.Profile{UserId: studentId}
	}

	onboarded := profile.OnboardingCompleted
	fn(profile)
	profile.OnboardingCompleted = profile.OnboardingCompleted || onboarded

	if err := uow.ProfileRepository().Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return profile, nil
}
