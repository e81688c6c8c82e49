package memory

import (
	"context"
	"testing"
	"time"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitPublishesWrites(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	userId := uuid.New()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ProfileRepository().Save(ctx, &entity.Profile{UserId: userId, Major: "CS"}))

	outside, err := factory.NewUnitOfWork(ctx).ProfileRepository().FindByUserId(ctx, userId)
	require.NoError(t, err)
	assert.Nil(t, outside, "uncommitted write must not be visible")

	require.NoError(t, uow.Commit())

	got, err := factory.NewUnitOfWork(ctx).ProfileRepository().FindByUserId(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CS", got.Major)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	userId := uuid.New()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TaskRepository().Create(ctx, &entity.Task{UserId: userId, Title: "Draft SOP"}))
	require.NoError(t, uow.Rollback())
	assert.NoError(t, uow.Rollback(), "second rollback is a no-op")

	tasks, err := factory.NewUnitOfWork(ctx).TaskRepository().FindAllByUser(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUnitOfWork_BeginWaitsForOpenTransaction(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())

	first := factory.NewUnitOfWork(ctx)
	require.NoError(t, first.Begin(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := factory.NewUnitOfWork(ctx).Begin(waitCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Commit())
	second := factory.NewUnitOfWork(ctx)
	require.NoError(t, second.Begin(ctx))
	require.NoError(t, second.Rollback())
}

func TestShortlistRepository_UniqueAndPreload(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx)
	userId := uuid.New()

	uni := &entity.University{Name: "TU Munich", Country: "Germany", YearlyCostUsd: 3000}
	require.NoError(t, uow.UniversityRepository().Create(ctx, uni))

	entry := &entity.ShortlistEntry{UserId: userId, UniversityId: uni.Id, Status: entity.ShortlistStatusShortlisted}
	require.NoError(t, uow.ShortlistRepository().Create(ctx, entry))
	assert.NotEqual(t, uuid.Nil, entry.Id)

	dup := &entity.ShortlistEntry{UserId: userId, UniversityId: uni.Id, Status: entity.ShortlistStatusRecommended}
	assert.ErrorIs(t, uow.ShortlistRepository().Create(ctx, dup), ErrDuplicate)

	got, err := uow.ShortlistRepository().FindByUserAndUniversity(ctx, userId, uni.Id)
	require.NoError(t, err)
	require.NotNil(t, got.University)
	assert.Equal(t, "TU Munich", got.University.Name)

	locked, err := uow.ShortlistRepository().FindAllByUserAndStatus(ctx, userId, entity.ShortlistStatusLocked)
	require.NoError(t, err)
	assert.Empty(t, locked)
}

func TestConversationRepository_FindRecentIsChronological(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx).ConversationRepository()
	userId := uuid.New()

	for _, content := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Append(ctx, &entity.ConversationMessage{UserId: userId, Role: entity.ConversationRoleUser, Content: content}))
	}
	require.NoError(t, repo.Append(ctx, &entity.ConversationMessage{UserId: uuid.New(), Role: entity.ConversationRoleUser, Content: "other"}))

	recent, err := repo.FindRecentByUser(ctx, userId, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].Content)
	assert.Equal(t, "three", recent[1].Content)
}

func TestActionAuditRepository_NewestTurnFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx).ActionAuditRepository()
	userId := uuid.New()
	older, newer := uuid.New(), uuid.New()

	require.NoError(t, repo.CreateBatch(ctx, []*entity.ActionAudit{
		{UserId: userId, TurnId: older, Position: 0, Type: "shortlist"},
		{UserId: userId, TurnId: older, Position: 1, Type: "lock"},
	}))
	require.NoError(t, repo.CreateBatch(ctx, []*entity.ActionAudit{
		{UserId: userId, TurnId: newer, Position: 0, Type: "create_task"},
	}))

	got, err := repo.FindRecentByUser(ctx, userId, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "create_task", got[0].Type)
	assert.Equal(t, "shortlist", got[1].Type)
	assert.Equal(t, "lock", got[2].Type)
}

func TestCatalogCache(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.UniversityRepository()
	require.NoError(t, repo.Create(ctx, &entity.University{Name: "A", Country: "Canada"}))
	require.NoError(t, repo.Create(ctx, &entity.University{Name: "B", Country: "Germany"}))

	cache := NewCatalogCache(time.Minute)

	got, err := cache.FindByCountries(ctx, repo, []string{"Germany", "Canada"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, repo.Create(ctx, &entity.University{Name: "C", Country: "Canada"}))

	cached, err := cache.FindByCountries(ctx, repo, []string{"Canada", "Germany"})
	require.NoError(t, err)
	assert.Len(t, cached, 2, "same country set in another order hits the cache")

	cache.Flush()
	fresh, err := cache.FindByCountries(ctx, repo, []string{"Canada", "Germany"})
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}
