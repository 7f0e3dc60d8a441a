package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeItems returns a list with items A (completed), B and C.
func threeItems(t *testing.T) (ShoppingList, []string) {
	t.Helper()
	l, err := NewShoppingList("user-1", ListInput{
		Name: "Bulk",
		Items: []ItemInput{
			{Name: "A", EstimatedPrice: f64(1), Completed: true},
			{Name: "B", EstimatedPrice: f64(2)},
			{Name: "C", EstimatedPrice: f64(3)},
		},
	}, baseTime)
	require.NoError(t, err)
	items := l.Items.All()
	return l, []string{items[0].ID, items[1].ID, items[2].ID}
}

func TestApplyBulk(t *testing.T) {
	t.Run("complete counts only changed items and skips unknown ids", func(t *testing.T) {
		l, ids := threeItems(t)
		require.NoError(t, l.RemoveItem(ids[1], baseTime))
		a, _ := l.Items.Get(ids[0])
		aCompletedAt := *a.CompletedAt

		later := baseTime.Add(time.Minute)
		n, err := l.ApplyBulk(BulkRequest{Action: BulkActionComplete, ItemIDs: ids}, later)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		a, _ = l.Items.Get(ids[0])
		c, _ := l.Items.Get(ids[2])
		assert.Equal(t, aCompletedAt, *a.CompletedAt)
		assert.True(t, c.Completed)
		assert.Equal(t, later, *c.CompletedAt)
		assert.Equal(t, ListStatusCompleted, l.Status)
	})

	t.Run("uncomplete", func(t *testing.T) {
		l, ids := threeItems(t)
		n, err := l.ApplyBulk(BulkRequest{Action: BulkActionUncomplete, ItemIDs: ids}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 0, l.CompletedItems())
	})

	t.Run("delete keeps the order of the rest and recomputes totals", func(t *testing.T) {
		l, ids := threeItems(t)
		n, err := l.ApplyBulk(BulkRequest{Action: BulkActionDelete, ItemIDs: []string{ids[1], "missing", ids[1]}}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		rest := l.Items.All()
		require.Len(t, rest, 2)
		assert.Equal(t, "A", rest[0].Name)
		assert.Equal(t, "C", rest[1].Name)
		assert.Equal(t, 4.0, l.TotalEstimatedCost)
	})

	t.Run("update applies the same patch to every target", func(t *testing.T) {
		l, ids := threeItems(t)
		priority := PriorityHigh
		n, err := l.ApplyBulk(BulkRequest{
			Action:  BulkActionUpdate,
			ItemIDs: ids[:2],
			Patch:   &ItemPatch{Priority: &priority, Quantity: f64(2)},
		}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		items := l.Items.All()
		assert.Equal(t, PriorityHigh, items[0].Priority)
		assert.Equal(t, PriorityHigh, items[1].Priority)
		assert.Equal(t, PriorityMedium, items[2].Priority)
		assert.Equal(t, 2+4+3.0, l.TotalEstimatedCost)
	})

	t.Run("invalid update patch changes nothing", func(t *testing.T) {
		l, ids := threeItems(t)
		before := l.Clone()
		n, err := l.ApplyBulk(BulkRequest{
			Action:  BulkActionUpdate,
			ItemIDs: ids,
			Patch:   &ItemPatch{Quantity: f64(5000)},
		}, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 0, n)
		assert.Equal(t, before.Items.All(), l.Items.All())
	})

	t.Run("request validation", func(t *testing.T) {
		tests := []struct {
			name  string
			req   BulkRequest
			field string
		}{
			{"unknown action", BulkRequest{Action: "explode", ItemIDs: []string{"x"}}, "action"},
			{"no ids", BulkRequest{Action: BulkActionComplete}, "item_ids"},
			{"only blank ids", BulkRequest{Action: BulkActionComplete, ItemIDs: []string{" ", ""}}, "item_ids"},
			{"update without patch", BulkRequest{Action: BulkActionUpdate, ItemIDs: []string{"x"}}, "update_data"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l, _ := threeItems(t)
				_, err := l.ApplyBulk(tt.req, baseTime)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.field, verr.Fields[0].Field)
			})
		}
	})

	t.Run("update with an empty patch touches every target", func(t *testing.T) {
		l, ids := threeItems(t)
		before := l.Clone()
		later := baseTime.Add(time.Minute)

		n, err := l.ApplyBulk(BulkRequest{Action: BulkActionUpdate, ItemIDs: ids[:2], Patch: &ItemPatch{}}, later)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		for i, it := range l.Items.All() {
			old := before.Items.All()[i]
			assert.Equal(t, old.Name, it.Name)
			assert.Equal(t, old.Completed, it.Completed)
			if i < 2 {
				assert.Equal(t, later, it.UpdatedAt)
			}
		}
	})

	t.Run("archived list keeps its status", func(t *testing.T) {
		l, ids := threeItems(t)
		l.Archive(baseTime)
		_, err := l.ApplyBulk(BulkRequest{Action: BulkActionComplete, ItemIDs: ids}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, ListStatusArchived, l.Status)
		assert.Equal(t, 3, l.CompletedItems())
	})
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, uniqueIDs([]string{" b", "a", "", "b", "a "}))
	assert.Empty(t, uniqueIDs(nil))
}
