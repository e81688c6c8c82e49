package taskgen

import (
	"context"
	"testing"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/pkg/advising"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(tasks []*entity.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestGenerate_CreatesChecklistOnce(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)
	studentID := uuid.New()
	uni := &entity.University{Id: uuid.New(), Name: "ETH Zurich", Country: "Switzerland"}

	created, err := Generate(ctx, uow, studentID, uni)
	require.NoError(t, err)
	assert.Equal(t, ApplicationTitles, titles(created))
	for _, task := range created {
		assert.Equal(t, entity.TaskSourceSystem, task.Source)
		assert.Equal(t, entity.TaskStatusPending, task.Status)
		require.NotNil(t, task.UniversityId)
		assert.Equal(t, uni.Id, *task.UniversityId)
	}

	again, err := Generate(ctx, uow, studentID, uni)
	require.NoError(t, err)
	assert.Empty(t, again)

	all, err := uow.TaskRepository().FindAllByUser(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, all, len(ApplicationTitles))
}

func TestGenerate_SkipsExistingTitleCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)
	studentID := uuid.New()
	uni := &entity.University{Id: uuid.New(), Name: "UBC", Country: "Canada"}

	require.NoError(t, uow.TaskRepository().Create(ctx, &entity.Task{
		UserId: studentID, UniversityId: &uni.Id, Title: "draft sop", Source: entity.TaskSourceSystem,
	}))

	created, err := Generate(ctx, uow, studentID, uni)
	require.NoError(t, err)
	assert.Equal(t, []string{"Request transcripts", "Request recommendation letters", "Submit application"}, titles(created))
}

func TestGenerate_ScopedPerUniversity(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)
	studentID := uuid.New()

	_, err := Generate(ctx, uow, studentID, &entity.University{Id: uuid.New()})
	require.NoError(t, err)
	created, err := Generate(ctx, uow, studentID, &entity.University{Id: uuid.New()})
	require.NoError(t, err)
	assert.Len(t, created, len(ApplicationTitles))
}

func TestReadinessTitles(t *testing.T) {
	ready := &entity.Profile{IeltsStatus: "completed", GreStatus: "Completed", SopStatus: "ready"}
	assert.Equal(t, []string{titleFinalizeShortlist, titleCostPlan}, ReadinessTitles(ready))

	fresh := &entity.Profile{GreStatus: "Not started", SopStatus: "draft"}
	assert.Equal(t, []string{titleFinalizeShortlist, titleCostPlan, titleLanguageExam, titleGraduateExam}, ReadinessTitles(fresh))
}

func TestGenerateReadiness(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)
	profile := &entity.Profile{UserId: uuid.New(), OnboardingCompleted: true, IeltsStatus: "done", GreStatus: "done"}

	created, err := GenerateReadiness(ctx, uow, profile)
	require.NoError(t, err)
	assert.Equal(t, []string{titleFinalizeShortlist, titleCostPlan, titleSop}, titles(created))
	for _, task := range created {
		assert.Nil(t, task.UniversityId)
	}

	again, err := GenerateReadiness(ctx, uow, profile)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestGenerateReadiness_RequiresOnboarding(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)

	_, err := GenerateReadiness(ctx, uow, &entity.Profile{UserId: uuid.New()})
	assert.ErrorIs(t, err, advising.ErrOnboardingIncomplete)

	_, err = GenerateReadiness(ctx, uow, nil)
	assert.ErrorIs(t, err, advising.ErrOnboardingIncomplete)
}
