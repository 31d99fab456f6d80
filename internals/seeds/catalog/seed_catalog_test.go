package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modulku_backend/internals/features/catalog/repository"
)

func TestSeedDefaultCatalog(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, SeedDefaultCatalog(context.Background(), store))

	mods, subs, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, mods, 4)
	require.Len(t, subs, 2)

	assert.Equal(t, "computer science", mods[0].ModuleName)
	assert.Equal(t, 0, mods[3].ModuleStatus)
	assert.Equal(t, "database management", subs[0].SubmoduleName)
	assert.Equal(t, 2, subs[1].SubmoduleModuleID)
}

func TestSeedCatalogFromJSONRejectsGarbage(t *testing.T) {
	store := repository.NewMemoryStore()
	err := SeedCatalogFromJSON(context.Background(), store, []byte(`{"modules":`))
	assert.Error(t, err)

	n, _, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
