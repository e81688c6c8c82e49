package service

import (
	"testing"
	"time"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/advisingtest"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/recommend"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	profile    IProfileService
	university IUniversityService
	task       ITaskService
	dashboard  IDashboardService
}

func newServices(f *advisingtest.Fixture) services {
	log := logger.NewNopLogger()
	exec := executor.New(f.Factory, nil, log)
	return services{
		profile:    NewProfileService(f.Factory, log),
		university: NewUniversityService(f.Factory, memory.NewCatalogCache(time.Minute), recommend.NewScorer(), exec),
		task:       NewTaskService(f.Factory, exec, nil, log),
		dashboard:  NewDashboardService(f.Factory),
	}
}

func stageOf(t *testing.T, f *advisingtest.Fixture, s services) advising.Stage {
	t.Helper()
	res, err := s.dashboard.Stage(f.Ctx, f.Student)
	require.NoError(t, err)
	return advising.Stage(res.Stage)
}

func systemTasks(t *testing.T, f *advisingtest.Fixture) []*entity.Task {
	t.Helper()
	var out []*entity.Task
	for _, task := range f.Tasks(t) {
		if task.Source == entity.TaskSourceSystem {
			out = append(out, task)
		}
	}
	return out
}

// A student walks from onboarding to applying and back through the manual endpoints.
func TestScenario_FreshStudentToApplying(t *testing.T) {
	f := advisingtest.New(t, false)
	s := newServices(f)
	u1 := f.Universities[2].Id

	assert.Equal(t, advising.StageOnboarding, stageOf(t, f, s))

	_, err := s.profile.CompleteOnboarding(f.Ctx, f.Student)
	require.NoError(t, err)
	assert.Equal(t, advising.StageDiscovering, stageOf(t, f, s))

	_, err = s.university.Shortlist(f.Ctx, f.Student, u1)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.Status(t, u1))
	// Any shortlisted entry without a lock puts the student in finalizing.
	assert.Equal(t, advising.StageFinalizing, stageOf(t, f, s))

	res, err := s.university.Lock(f.Ctx, f.Student, u1)
	require.NoError(t, err)
	assert.Equal(t, int(advising.StageApplying), res.Snapshot.Stage)
	assert.Equal(t, entity.ShortlistStatusLocked, f.Status(t, u1))
	tasks := systemTasks(t, f)
	require.Len(t, tasks, 4)
	for _, task := range tasks {
		assert.Equal(t, entity.TaskStatusPending, task.Status)
	}

	_, err = s.university.Unlock(f.Ctx, f.Student, u1)
	require.NoError(t, err)
	assert.Equal(t, advising.StageFinalizing, stageOf(t, f, s))
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.Status(t, u1))
	assert.Len(t, systemTasks(t, f), 4)

	_, err = s.university.Lock(f.Ctx, f.Student, u1)
	require.NoError(t, err)
	assert.Len(t, systemTasks(t, f), 4)
}

func TestProfile_UpdateNeverResetsOnboarding(t *testing.T) {
	f := advisingtest.New(t, true)
	s := newServices(f)

	gpa := 3.9
	res, err := s.profile.Update(f.Ctx, f.Student, &dto.UpdateProfileRequest{
		Major:              "Data Science",
		Gpa:                &gpa,
		PreferredCountries: []string{"Germany"},
	})
	require.NoError(t, err)

	assert.True(t, res.OnboardingCompleted)
	assert.Equal(t, "Data Science", res.Major)
	assert.Equal(t, []string{"Germany"}, res.PreferredCountries)
}

func TestProfile_GetCreatesEmptyProfile(t *testing.T) {
	f := advisingtest.New(t, false)
	s := newServices(f)
	newcomer := uuid.New()

	res, err := s.profile.Get(f.Ctx, newcomer)
	require.NoError(t, err)
	assert.Equal(t, newcomer, res.UserId)
	assert.False(t, res.OnboardingCompleted)
	assert.Equal(t, []string{}, res.PreferredCountries)

	again, err := s.profile.Get(f.Ctx, newcomer)
	require.NoError(t, err)
	assert.Equal(t, res.CreatedAt, again.CreatedAt)
}

func TestUniversity_Discover(t *testing.T) {
	f := advisingtest.New(t, true)
	s := newServices(f)

	res, err := s.university.Discover(f.Ctx, f.Student)
	require.NoError(t, err)

	require.NotEmpty(t, res)
	assert.Equal(t, "DREAM", res[0].Bucket)
	assert.Equal(t, "University of Toronto", res[0].Name)
	for _, c := range res {
		assert.NotEqual(t, "United Kingdom", c.Country)
	}
}

func TestUniversity_DiscoverRequiresOnboarding(t *testing.T) {
	f := advisingtest.New(t, false)
	s := newServices(f)

	_, err := s.university.Discover(f.Ctx, f.Student)
	assert.ErrorIs(t, err, advising.ErrOnboardingIncomplete)
}

func TestTask_ManualCreateAndComplete(t *testing.T) {
	f := advisingtest.New(t, true)
	s := newServices(f)

	created, err := s.task.Create(f.Ctx, f.Student, &dto.CreateTaskRequest{Title: "Call the embassy"})
	require.NoError(t, err)
	assert.Equal(t, "manual", created.Source)
	assert.Equal(t, "pending", created.Status)

	done, err := s.task.Complete(f.Ctx, f.Student, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "done", done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = s.task.Complete(f.Ctx, f.Student, created.Id)
	assert.ErrorIs(t, err, advising.ErrAlreadyDone)
}

func TestTask_GenerateReadinessIsIdempotent(t *testing.T) {
	f := advisingtest.New(t, true)
	s := newServices(f)

	first, err := s.task.GenerateReadiness(f.Ctx, f.Student)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.task.GenerateReadiness(f.Ctx, f.Student)
	require.NoError(t, err)
	assert.Empty(t, second)

	all, err := s.task.GetAll(f.Ctx, f.Student)
	require.NoError(t, err)
	assert.Len(t, all, len(first))
}
