package database

import (
	"context"
	"testing"

	"ai-counsellor-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog_OnlyIntoEmptyTable(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())

	n, err := SeedCatalog(ctx, factory, DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCatalog()), n)

	n, err = SeedCatalog(ctx, factory, DefaultCatalog())
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := factory.NewUnitOfWork(ctx).UniversityRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCatalog())), count)
}
