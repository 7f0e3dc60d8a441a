package entities

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func groceries(t *testing.T) ShoppingList {
	t.Helper()
	l, err := NewShoppingList("user-1", ListInput{
		Name:  "Groceries",
		Items: []ItemInput{{Name: "Milk", Quantity: f64(2), Unit: UnitLiter, EstimatedPrice: f64(3)}},
	}, baseTime)
	require.NoError(t, err)
	return l
}

func firstItem(t *testing.T, l *ShoppingList) ShoppingItem {
	t.Helper()
	items := l.Items.All()
	require.NotEmpty(t, items)
	return items[0]
}

func TestNewShoppingList(t *testing.T) {
	t.Run("groceries scenario", func(t *testing.T) {
		l := groceries(t)
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, "user-1", l.OwnerID)
		assert.Equal(t, 6.0, l.TotalEstimatedCost)
		assert.Equal(t, 0.0, l.TotalActualCost)
		assert.Equal(t, ListStatusActive, l.Status)
		assert.Nil(t, l.CompletedAt)
		assert.Equal(t, int64(1), l.Version)
		assert.Equal(t, ColorBlue, l.Color)
		assert.Equal(t, ListCategoryWeekly, l.Category)
	})

	t.Run("item defaults", func(t *testing.T) {
		l, err := NewShoppingList("user-1", ListInput{Name: "x", Items: []ItemInput{{Name: " Bread "}}}, baseTime)
		require.NoError(t, err)
		it := firstItem(t, &l)
		assert.Equal(t, "Bread", it.Name)
		assert.Equal(t, 1.0, it.Quantity)
		assert.Equal(t, UnitPiece, it.Unit)
		assert.Equal(t, ItemCategoryOther, it.Category)
		assert.Equal(t, PriorityMedium, it.Priority)
		assert.Nil(t, it.ActualPrice)
		assert.False(t, it.Completed)
	})

	t.Run("created with every item completed starts completed", func(t *testing.T) {
		l, err := NewShoppingList("user-1", ListInput{Name: "x", Items: []ItemInput{{Name: "a", Completed: true}}}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, ListStatusCompleted, l.Status)
		require.NotNil(t, l.CompletedAt)
		assert.NotNil(t, firstItem(t, &l).CompletedAt)
	})

	t.Run("validation reports every failing field", func(t *testing.T) {
		_, err := NewShoppingList("", ListInput{
			Name:        "   ",
			Description: strings.Repeat("d", MaxListDescriptionLength+1),
			Budget:      f64(-1),
			Color:       "teal",
			Items:       []ItemInput{{Name: "", Quantity: f64(0), Unit: "cup"}},
		}, baseTime)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		fields := map[string]bool{}
		for _, f := range verr.Fields {
			fields[f.Field] = true
		}
		for _, want := range []string{"owner_id", "name", "description", "budget", "color", "items[0].name", "items[0].quantity", "items[0].unit"} {
			assert.True(t, fields[want], "expected field %s in %v", want, verr.Fields)
		}
	})

	t.Run("name length", func(t *testing.T) {
		_, err := NewShoppingList("user-1", ListInput{Name: strings.Repeat("n", MaxListNameLength+1)}, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = NewShoppingList("user-1", ListInput{Name: strings.Repeat("n", MaxListNameLength)}, baseTime)
		assert.NoError(t, err)
	})
}

func TestShoppingList_ItemLifecycle(t *testing.T) {
	t.Run("toggle completes the list and adding an item reopens it", func(t *testing.T) {
		l := groceries(t)
		milk := firstItem(t, &l)

		toggled, err := l.ToggleItem(milk.ID, baseTime.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, toggled.Completed)
		require.NotNil(t, toggled.CompletedAt)
		assert.Equal(t, ListStatusCompleted, l.Status)
		require.NotNil(t, l.CompletedAt)
		assert.Equal(t, baseTime.Add(time.Minute), *l.CompletedAt)

		_, err = l.AddItem(ItemInput{Name: "Eggs"}, baseTime.Add(2*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, ListStatusActive, l.Status)
		assert.Nil(t, l.CompletedAt)
		assert.Equal(t, 2, l.TotalItems())
	})

	t.Run("toggle twice restores state and re-completion refreshes completedAt", func(t *testing.T) {
		l := groceries(t)
		id := firstItem(t, &l).ID

		first, err := l.ToggleItem(id, baseTime.Add(time.Minute))
		require.NoError(t, err)
		_, err = l.ToggleItem(id, baseTime.Add(2*time.Minute))
		require.NoError(t, err)

		it, _ := l.Items.Get(id)
		assert.False(t, it.Completed)
		assert.Nil(t, it.CompletedAt)
		assert.Equal(t, ListStatusActive, l.Status)

		again, err := l.ToggleItem(id, baseTime.Add(3*time.Minute))
		require.NoError(t, err)
		require.NotNil(t, again.CompletedAt)
		assert.True(t, again.CompletedAt.After(*first.CompletedAt))
	})

	t.Run("unknown item ids", func(t *testing.T) {
		l := groceries(t)
		_, err := l.ToggleItem("missing", baseTime)
		assert.ErrorIs(t, err, ErrItemNotFound)
		_, err = l.UpdateItem("missing", ItemPatch{Name: strPtr("x")}, baseTime)
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.ErrorIs(t, l.RemoveItem("missing", baseTime), ErrItemNotFound)
	})

	t.Run("add item requires a name", func(t *testing.T) {
		l := groceries(t)
		_, err := l.AddItem(ItemInput{Name: "  "}, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 1, l.TotalItems())
	})

	t.Run("update merges and recomputes totals", func(t *testing.T) {
		l := groceries(t)
		id := firstItem(t, &l).ID

		updated, err := l.UpdateItem(id, ItemPatch{Quantity: f64(3), ActualPrice: f64(2.5)}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, 3.0, updated.Quantity)
		assert.Equal(t, "Milk", updated.Name)
		assert.Equal(t, 9.0, l.TotalEstimatedCost)
		assert.Equal(t, 7.5, l.TotalActualCost)
	})

	t.Run("rejected update leaves the item untouched", func(t *testing.T) {
		l := groceries(t)
		id := firstItem(t, &l).ID

		_, err := l.UpdateItem(id, ItemPatch{Name: strPtr("Oat milk"), Quantity: f64(1000)}, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
		it, _ := l.Items.Get(id)
		assert.Equal(t, "Milk", it.Name)
		assert.Equal(t, 2.0, it.Quantity)
	})

	t.Run("update completed flag keeps completedAt consistent", func(t *testing.T) {
		l := groceries(t)
		id := firstItem(t, &l).ID

		it, err := l.UpdateItem(id, ItemPatch{Completed: boolPtr(true)}, baseTime)
		require.NoError(t, err)
		assert.NotNil(t, it.CompletedAt)
		assert.Equal(t, ListStatusCompleted, l.Status)

		it, err = l.UpdateItem(id, ItemPatch{Completed: boolPtr(false)}, baseTime)
		require.NoError(t, err)
		assert.Nil(t, it.CompletedAt)
		assert.Equal(t, ListStatusActive, l.Status)
	})

	t.Run("removing the last incomplete item completes the list", func(t *testing.T) {
		l := groceries(t)
		milk := firstItem(t, &l)
		eggs, err := l.AddItem(ItemInput{Name: "Eggs"}, baseTime)
		require.NoError(t, err)
		_, err = l.ToggleItem(milk.ID, baseTime)
		require.NoError(t, err)
		assert.Equal(t, ListStatusActive, l.Status)

		require.NoError(t, l.RemoveItem(eggs.ID, baseTime))
		assert.Equal(t, ListStatusCompleted, l.Status)

		require.NoError(t, l.RemoveItem(milk.ID, baseTime))
		assert.Equal(t, ListStatusActive, l.Status)
		assert.Nil(t, l.CompletedAt)
		assert.Equal(t, 0.0, l.TotalEstimatedCost)
	})
}

func TestShoppingList_Archive(t *testing.T) {
	l := groceries(t)
	id := firstItem(t, &l).ID
	_, err := l.ToggleItem(id, baseTime)
	require.NoError(t, err)
	require.Equal(t, ListStatusCompleted, l.Status)

	l.Archive(baseTime)
	assert.Equal(t, ListStatusArchived, l.Status)
	assert.Nil(t, l.CompletedAt)

	l.Archive(baseTime)
	assert.Equal(t, ListStatusArchived, l.Status)

	_, err = l.ToggleItem(id, baseTime)
	require.NoError(t, err)
	_, err = l.UpdateItem(id, ItemPatch{EstimatedPrice: f64(4)}, baseTime)
	require.NoError(t, err)
	assert.Equal(t, ListStatusArchived, l.Status)
	assert.Equal(t, 8.0, l.TotalEstimatedCost)

	_, err = l.ToggleItem(id, baseTime)
	require.NoError(t, err)
	l.Reactivate(baseTime.Add(time.Hour))
	assert.Equal(t, ListStatusCompleted, l.Status)
	require.NotNil(t, l.CompletedAt)
}

func TestShoppingList_ApplyPatch(t *testing.T) {
	t.Run("updates list fields", func(t *testing.T) {
		l := groceries(t)
		due := baseTime.Add(48 * time.Hour)
		color := ColorGreen
		err := l.ApplyPatch(ListPatch{Name: strPtr("Weekend"), Budget: f64(50), Color: &color, DueDate: &due}, baseTime)
		require.NoError(t, err)
		assert.Equal(t, "Weekend", l.Name)
		assert.Equal(t, 50.0, *l.Budget)
		assert.Equal(t, ColorGreen, l.Color)
		assert.Equal(t, due, *l.DueDate)
		assert.Equal(t, "user-1", l.OwnerID)
	})

	t.Run("rejects derived status and bad fields without changes", func(t *testing.T) {
		l := groceries(t)
		completed := ListStatusCompleted
		err := l.ApplyPatch(ListPatch{Name: strPtr(""), Status: &completed}, baseTime)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 2)
		assert.Equal(t, "Groceries", l.Name)
	})

	t.Run("status archived and active", func(t *testing.T) {
		l := groceries(t)
		archived, active := ListStatusArchived, ListStatusActive
		require.NoError(t, l.ApplyPatch(ListPatch{Status: &archived}, baseTime))
		assert.Equal(t, ListStatusArchived, l.Status)
		require.NoError(t, l.ApplyPatch(ListPatch{Status: &active}, baseTime))
		assert.Equal(t, ListStatusActive, l.Status)
	})
}

func TestShoppingList_Duplicate(t *testing.T) {
	l := groceries(t)
	_, err := l.AddItem(ItemInput{Name: "Coffee", Quantity: f64(1), EstimatedPrice: f64(7.99), ActualPrice: f64(8.49), Notes: "beans"}, baseTime)
	require.NoError(t, err)
	for _, it := range l.Items.All() {
		_, err := l.ToggleItem(it.ID, baseTime)
		require.NoError(t, err)
	}
	l.Budget = f64(40)
	due := baseTime.Add(-24 * time.Hour)
	l.DueDate = &due
	l.Archive(baseTime)

	dup := l.Duplicate(baseTime.Add(time.Hour))

	assert.NotEqual(t, l.ID, dup.ID)
	assert.Equal(t, "Groceries (Copy)", dup.Name)
	assert.Equal(t, l.OwnerID, dup.OwnerID)
	assert.Equal(t, ListStatusActive, dup.Status)
	assert.Nil(t, dup.CompletedAt)
	assert.Equal(t, 40.0, *dup.Budget)
	assert.Nil(t, dup.DueDate)
	assert.False(t, dup.IsOverdue(baseTime.Add(time.Hour)))
	assert.Equal(t, 0.0, dup.TotalActualCost)
	assert.Equal(t, l.TotalEstimatedCost, dup.TotalEstimatedCost)

	src, copied := l.Items.All(), dup.Items.All()
	require.Len(t, copied, len(src))
	for i := range src {
		assert.NotEqual(t, src[i].ID, copied[i].ID)
		assert.Equal(t, src[i].Name, copied[i].Name)
		assert.Equal(t, src[i].Quantity, copied[i].Quantity)
		assert.Equal(t, src[i].Unit, copied[i].Unit)
		assert.Equal(t, src[i].EstimatedPrice, copied[i].EstimatedPrice)
		assert.Equal(t, src[i].Notes, copied[i].Notes)
		assert.False(t, copied[i].Completed)
		assert.Nil(t, copied[i].CompletedAt)
		assert.Nil(t, copied[i].ActualPrice)
	}

	t.Run("long names stay within bounds", func(t *testing.T) {
		long := l
		long.Name = strings.Repeat("x", MaxListNameLength)
		dup := long.Duplicate(baseTime)
		assert.LessOrEqual(t, len([]rune(dup.Name)), MaxListNameLength)
		assert.True(t, strings.HasSuffix(dup.Name, "(Copy)"))
	})
}

func TestShoppingList_Clone(t *testing.T) {
	l := groceries(t)
	clone := l.Clone()
	id := firstItem(t, &l).ID

	_, err := clone.ToggleItem(id, baseTime)
	require.NoError(t, err)

	it, _ := l.Items.Get(id)
	assert.False(t, it.Completed)
	assert.Equal(t, ListStatusActive, l.Status)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
