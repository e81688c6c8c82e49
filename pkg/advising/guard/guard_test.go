package guard

import (
	"context"
	"testing"
	"time"

	"ai-counsellor-be/internal/entity"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/pkg/advising"
	"ai-counsellor-be/pkg/advising/taskgen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx     context.Context
	uow     unitofwork.UnitOfWork
	student uuid.UUID
	u1, u2  *entity.University
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	uow := memory.NewRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)
	f := &fixture{
		ctx:     ctx,
		uow:     uow,
		student: uuid.New(),
		u1:      &entity.University{Name: "University of Toronto", Country: "Canada", YearlyCostUsd: 45000},
		u2:      &entity.University{Name: "TU Delft", Country: "Netherlands", YearlyCostUsd: 20000},
	}
	require.NoError(t, uow.UniversityRepository().Create(ctx, f.u1))
	require.NoError(t, uow.UniversityRepository().Create(ctx, f.u2))
	return f
}

func (f *fixture) status(t *testing.T, universityID uuid.UUID) entity.ShortlistStatus {
	t.Helper()
	e, err := f.uow.ShortlistRepository().FindByUserAndUniversity(f.ctx, f.student, universityID)
	require.NoError(t, err)
	if e == nil {
		return ""
	}
	return e.Status
}

func (f *fixture) lockedCount(t *testing.T) int {
	t.Helper()
	locked, err := f.uow.ShortlistRepository().FindAllByUserAndStatus(f.ctx, f.student, entity.ShortlistStatusLocked)
	require.NoError(t, err)
	return len(locked)
}

func TestShortlist(t *testing.T) {
	f := newFixture(t)

	tr, err := Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.True(t, tr.Changed)
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.status(t, f.u1.Id))

	tr, err = Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.False(t, tr.Changed)

	_, err = Shortlist(f.ctx, f.uow, f.student, uuid.New())
	assert.ErrorIs(t, err, advising.ErrNotFound)
}

func TestShortlist_PromotesRecommendation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uow.ShortlistRepository().Create(f.ctx, &entity.ShortlistEntry{
		UserId: f.student, UniversityId: f.u1.Id, Status: entity.ShortlistStatusRecommended,
	}))

	tr, err := Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.True(t, tr.Changed)
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.status(t, f.u1.Id))
}

func TestShortlist_LockedStaysLocked(t *testing.T) {
	f := newFixture(t)
	_, err := Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	_, err = Lock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)

	tr, err := Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.False(t, tr.Changed)
	assert.Equal(t, entity.ShortlistStatusLocked, f.status(t, f.u1.Id))
}

func TestLock_RequiresShortlist(t *testing.T) {
	f := newFixture(t)

	_, err := Lock(f.ctx, f.uow, f.student, f.u1.Id)
	assert.ErrorIs(t, err, advising.ErrNotShortlisted)
	assert.Equal(t, "NOT_SHORTLISTED", advising.CodeOf(err))

	require.NoError(t, f.uow.ShortlistRepository().Create(f.ctx, &entity.ShortlistEntry{
		UserId: f.student, UniversityId: f.u2.Id, Status: entity.ShortlistStatusRecommended,
	}))
	_, err = Lock(f.ctx, f.uow, f.student, f.u2.Id)
	assert.ErrorIs(t, err, advising.ErrNotShortlisted)
	assert.Zero(t, f.lockedCount(t))
}

func TestLock_GeneratesTasksOnce(t *testing.T) {
	f := newFixture(t)
	_, err := Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)

	tr, err := Lock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.True(t, tr.Changed)
	assert.Len(t, tr.TasksCreated, len(taskgen.ApplicationTitles))
	require.NotNil(t, tr.Entry.LockedAt)

	tr, err = Lock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.False(t, tr.Changed)
	assert.Empty(t, tr.TasksCreated)

	tasks, err := f.uow.TaskRepository().FindAllByUser(f.ctx, f.student)
	require.NoError(t, err)
	assert.Len(t, tasks, len(taskgen.ApplicationTitles))
}

func TestLock_DemotesPreviousLock(t *testing.T) {
	f := newFixture(t)
	for _, u := range []*entity.University{f.u1, f.u2} {
		_, err := Shortlist(f.ctx, f.uow, f.student, u.Id)
		require.NoError(t, err)
	}

	_, err := Lock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	tr, err := Lock(f.ctx, f.uow, f.student, f.u2.Id)
	require.NoError(t, err)

	require.Len(t, tr.Demoted, 1)
	assert.Equal(t, f.u1.Id, tr.Demoted[0].UniversityId)
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.status(t, f.u1.Id))
	assert.Equal(t, entity.ShortlistStatusLocked, f.status(t, f.u2.Id))
	assert.Equal(t, 1, f.lockedCount(t))
}

func TestUnlock(t *testing.T) {
	f := newFixture(t)

	_, err := Unlock(f.ctx, f.uow, f.student, f.u1.Id)
	assert.ErrorIs(t, err, advising.ErrNotLocked)

	_, err = Shortlist(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	tr, err := Unlock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.False(t, tr.Changed)

	_, err = Lock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	tr, err = Unlock(f.ctx, f.uow, f.student, f.u1.Id)
	require.NoError(t, err)
	assert.True(t, tr.Changed)
	assert.Nil(t, tr.Entry.LockedAt)
	assert.Equal(t, entity.ShortlistStatusShortlisted, f.status(t, f.u1.Id))

	tasks, err := f.uow.TaskRepository().FindAllByUser(f.ctx, f.student)
	require.NoError(t, err)
	assert.Len(t, tasks, len(taskgen.ApplicationTitles), "unlock keeps generated tasks")
}

func TestLockMostRecent(t *testing.T) {
	f := newFixture(t)

	_, err := LockMostRecent(f.ctx, f.uow, f.student)
	assert.ErrorIs(t, err, advising.ErrNotShortlisted)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.uow.ShortlistRepository().Create(f.ctx, &entity.ShortlistEntry{
		UserId: f.student, UniversityId: f.u2.Id, Status: entity.ShortlistStatusShortlisted, CreatedAt: base.Add(time.Hour),
	}))
	require.NoError(t, f.uow.ShortlistRepository().Create(f.ctx, &entity.ShortlistEntry{
		UserId: f.student, UniversityId: f.u1.Id, Status: entity.ShortlistStatusShortlisted, CreatedAt: base,
	}))

	tr, err := LockMostRecent(f.ctx, f.uow, f.student)
	require.NoError(t, err)
	assert.Equal(t, f.u2.Id, tr.Entry.UniversityId)
	assert.Equal(t, entity.ShortlistStatusLocked, f.status(t, f.u2.Id))
	assert.Len(t, tr.TasksCreated, len(taskgen.ApplicationTitles))
}
