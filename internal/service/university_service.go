package service

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/action"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/recommend"

	"github.com/google/uuid"
)

type IUniversityService interface {
	Discover(ctx context.Context, studentId uuid.UUID) ([]dto.UniversityCandidateResponse, error)
	GetShortlist(ctx context.Context, studentId uuid.UUID) ([]dto.ShortlistResponse, error)
	Shortlist(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error)
	Lock(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error)
	Unlock(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error)
}

type universityService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    *memory.CatalogCache
	scorer     *recommend.Scorer
	executor   *executor.Executor
}

func NewUniversityService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *memory.CatalogCache,
	scorer *recommend.Scorer,
	executor *executor.Executor,
) IUniversityService {
	return &universityService{
		uowFactory: uowFactory,
		catalog:    catalog,
		scorer:     scorer,
		executor:   executor,
	}
}

func (s *universityService) Discover(ctx context.Context, studentId uuid.UUID) ([]dto.UniversityCandidateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	candidates, err := scoreCandidates(ctx, uow, s.catalog, s.scorer, profile)
	if err != nil {
		return nil, err
	}

	res := make([]dto.UniversityCandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, toCandidateResponse(c))
	}
	return res, nil
}

func (s *universityService) GetShortlist(ctx context.Context, studentId uuid.UUID) ([]dto.ShortlistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.ShortlistRepository().FindAllByUser(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load shortlist: %w", err)
	}

	res := make([]dto.ShortlistResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, toShortlistResponse(e))
	}
	return res, nil
}

func (s *universityService) Shortlist(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error) {
	return s.apply(ctx, studentId, action.Shortlist{UniversityID: universityId})
}

func (s *universityService) Lock(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error) {
	return s.apply(ctx, studentId, action.Lock{UniversityID: universityId})
}

func (s *universityService) Unlock(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error) {
	return s.apply(ctx, studentId, action.Unlock{UniversityID: universityId})
}

// apply runs a manual action through the same executor the assistant uses.
func (s *universityService) apply(ctx context.Context, studentId uuid.UUID, a action.Action) (*dto.ShortlistActionResponse, error) {
	outcome, err := s.executor.Apply(ctx, studentId, a)
	if err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, s.uowFactory.NewUnitOfWork(ctx), studentId)
	if err != nil {
		return nil, err
	}
	return &dto.ShortlistActionResponse{
		Result:   outcome.Result,
		Snapshot: toSnapshotResponse(snap),
	}, nil
}

// scoreCandidates ranks the catalog of the student's preferred countries.
func scoreCandidates(ctx context.Context, uow unitofwork.UnitOfWork, catalog *memory.CatalogCache, scorer *recommend.Scorer, profile *entity.Profile) ([]recommend.Candidate, error) {
	if profile == nil || !profile.OnboardingCompleted {
		return nil, advising.Newf(advising.ErrOnboardingIncomplete, "universities.Discover", "complete onboarding to see recommendations")
	}
	universities, err := catalog.FindByCountries(ctx, uow.UniversityRepository(), profile.PreferredCountries)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return scorer.Score(profile, universities)
}
