package repository

import (
	"context"
	"sync"
	"testing"

	"productivity_api/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListMemoryRepository()
	l := sampleList(t, "user-1")

	_, err := repo.Create(ctx, l)
	require.NoError(t, err)
	_, err = repo.Create(ctx, l)
	assert.ErrorIs(t, err, ErrShoppingListExists)

	t.Run("reads are isolated copies", func(t *testing.T) {
		got, err := repo.GetByID(ctx, l.ID)
		require.NoError(t, err)
		items := got.Items.All()
		_, err = got.ToggleItem(items[1].ID, repoTime)
		require.NoError(t, err)

		again, err := repo.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, again.CompletedItems())
	})

	t.Run("replace bumps the version", func(t *testing.T) {
		got, err := repo.GetByID(ctx, l.ID)
		require.NoError(t, err)
		got.Name = "Renamed"

		stored, err := repo.Replace(ctx, got)
		require.NoError(t, err)
		assert.Equal(t, got.Version+1, stored.Version)

		_, err = repo.Replace(ctx, got)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("list by owner", func(t *testing.T) {
		_, err := repo.Create(ctx, sampleList(t, "user-2"))
		require.NoError(t, err)
		lists, err := repo.ListByOwnerID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, "Renamed", lists[0].Name)
	})

	t.Run("delete is version checked", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, l.ID, 1), interfaces.ErrVersionConflict)
		require.NoError(t, repo.Delete(ctx, l.ID, 2))
		got, err := repo.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "", got.ID)
	})
}

func TestShoppingListMemoryRepository_ConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListMemoryRepository()
	l := sampleList(t, "user-1")
	_, err := repo.Create(ctx, l)
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	results := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Replace(ctx, l)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		}
	}
	assert.Equal(t, 1, wins)
}
