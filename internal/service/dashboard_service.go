package service

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"

	"github.com/google/uuid"
)

type IDashboardService interface {
	Snapshot(ctx context.Context, studentId uuid.UUID) (*dto.SnapshotResponse, error)
	Stage(ctx context.Context, studentId uuid.UUID) (*dto.StageResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{uowFactory: uowFactory}
}

func (s *dashboardService) Snapshot(ctx context.Context, studentId uuid.UUID) (*dto.SnapshotResponse, error) {
	snap, err := loadSnapshot(ctx, s.uowFactory.NewUnitOfWork(ctx), studentId)
	if err != nil {
		return nil, err
	}
	return toSnapshotResponse(snap), nil
}

func (s *dashboardService) Stage(ctx context.Context, studentId uuid.UUID) (*dto.StageResponse, error) {
	snap, err := loadSnapshot(ctx, s.uowFactory.NewUnitOfWork(ctx), studentId)
	if err != nil {
		return nil, err
	}
	return &dto.StageResponse{Stage: int(snap.Stage), StageName: snap.Stage.String()}, nil
}

// loadSnapshot reads the student's entities and derives the stage from them.
func loadSnapshot(ctx context.Context, uow unitofwork.UnitOfWork, studentId uuid.UUID) (*advising.Snapshot, error) {
	profile, err := uow.ProfileRepository().FindByUserId(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	shortlist, err := uow.ShortlistRepository().FindAllByUser(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load shortlist: %w", err)
	}
	tasks, err := uow.TaskRepository().FindAllByUser(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return advising.NewSnapshot(profile, shortlist, tasks), nil
}
