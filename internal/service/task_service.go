package service

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising/action"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/notify"
	"ai-counsellor-be/pkg/advising/taskgen"

	"github.com/google/uuid"
)

type ITaskService interface {
	GetAll(ctx context.Context, studentId uuid.UUID) ([]dto.TaskResponse, error)
	Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GenerateReadiness(ctx context.Context, studentId uuid.UUID) ([]dto.TaskResponse, error)
	Complete(ctx context.Context, studentId, taskId uuid.UUID) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
	executor   *executor.Executor
	events     notify.Publisher
	logger     logger.ILogger
}

func NewTaskService(
	uowFactory unitofwork.RepositoryFactory,
	executor *executor.Executor,
	events notify.Publisher,
	logger logger.ILogger,
) ITaskService {
	if events == nil {
		events = notify.Nop()
	}
	return &taskService{
		uowFactory: uowFactory,
		executor:   executor,
		events:     events,
		logger:     logger,
	}
}

func (s *taskService) GetAll(ctx context.Context, studentId uuid.UUID) ([]dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.TaskRepository().FindAllByUser(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	res := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, toTaskResponse(t))
	}
	return res, nil
}

func (s *taskService) Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	outcome, err := s.executor.Apply(ctx, studentId, action.CreateTask{Title: req.Title}, executor.WithTaskSource(entity.TaskSourceManual))
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, studentId, outcome)
}

func (s *taskService) Complete(ctx context.Context, studentId, taskId uuid.UUID) (*dto.TaskResponse, error) {
	outcome, err := s.executor.Apply(ctx, studentId, action.CompleteTask{TaskID: taskId})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, studentId, outcome)
}

// GenerateReadiness adds the exam and planning checklist derived from the profile.
func (s *taskService) GenerateReadiness(ctx context.Context, studentId uuid.UUID) ([]dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.ProfileRepository().FindByUserIdForUpdate(ctx, studentId)
	if err != nil {
		return nil, fmt.Errorf("lock profile: %w", err)
	}
	created, err := taskgen.GenerateReadiness(ctx, uow, profile)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	afterCtx := context.WithoutCancel(ctx)
	res := make([]dto.TaskResponse, 0, len(created))
	for _, t := range created {
		s.events.TaskCreated(afterCtx, studentId, t.Id, string(t.Source))
		res = append(res, toTaskResponse(t))
	}

	s.logger.Info("TASK", "Readiness tasks generated", map[string]interface{}{
		"user_id": studentId,
		"created": len(created),
	})
	return res, nil
}

func (s *taskService) reload(ctx context.Context, studentId uuid.UUID, outcome *executor.Outcome) (*dto.TaskResponse, error) {
	raw, _ := outcome.Result["taskId"].(string)
	taskId, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("executor returned task id %q: %w", raw, err)
	}

	task, err := s.uowFactory.NewUnitOfWork(ctx).TaskRepository().FindOwned(ctx, studentId, taskId)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s vanished after commit", taskId)
	}
	res := toTaskResponse(task)
	return &res, nil
}
