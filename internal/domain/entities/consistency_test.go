package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	done := ShoppingItem{Completed: true}
	open := ShoppingItem{}

	tests := []struct {
		name    string
		current ListStatus
		items   []ShoppingItem
		want    ListStatus
	}{
		{"empty list stays active", ListStatusActive, nil, ListStatusActive},
		{"empty completed list reopens", ListStatusCompleted, nil, ListStatusActive},
		{"all completed", ListStatusActive, []ShoppingItem{done, done}, ListStatusCompleted},
		{"one pending", ListStatusCompleted, []ShoppingItem{done, open}, ListStatusActive},
		{"archived is sticky", ListStatusArchived, []ShoppingItem{done}, ListStatusArchived},
		{"archived with pending items", ListStatusArchived, []ShoppingItem{open}, ListStatusArchived},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatus(tt.current, tt.items))
		})
	}
}

func TestCosts(t *testing.T) {
	t.Run("sums avoid float drift", func(t *testing.T) {
		items := []ShoppingItem{
			{Quantity: 3, EstimatedPrice: 0.1},
			{Quantity: 1, EstimatedPrice: 0.2},
		}
		assert.Equal(t, 0.5, EstimatedCost(items))
	})

	t.Run("rounded to cents", func(t *testing.T) {
		items := []ShoppingItem{{Quantity: 0.333, EstimatedPrice: 1.5}}
		assert.Equal(t, 0.5, EstimatedCost(items))
	})

	t.Run("actual cost only counts priced items", func(t *testing.T) {
		items := []ShoppingItem{
			{Quantity: 2, EstimatedPrice: 3, ActualPrice: f64(2.75)},
			{Quantity: 4, EstimatedPrice: 1},
		}
		assert.Equal(t, 10.0, EstimatedCost(items))
		assert.Equal(t, 5.5, ActualCost(items))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, EstimatedCost(nil))
		assert.Equal(t, 0.0, ActualCost(nil))
	})
}

func TestRecompute(t *testing.T) {
	t.Run("repairs item completion timestamps", func(t *testing.T) {
		stale := baseTime.Add(-time.Hour)
		l := ShoppingList{
			Status: ListStatusActive,
			Items: NewItemCollection(
				ShoppingItem{ID: "a", Quantity: 1, Completed: true},
				ShoppingItem{ID: "b", Quantity: 1, CompletedAt: &stale},
			),
		}
		l.Recompute(baseTime)

		a, _ := l.Items.Get("a")
		b, _ := l.Items.Get("b")
		assert.Equal(t, baseTime, *a.CompletedAt)
		assert.Nil(t, b.CompletedAt)
		assert.Equal(t, ListStatusActive, l.Status)
		assert.Nil(t, l.CompletedAt)
	})

	t.Run("keeps completedAt while the list stays completed", func(t *testing.T) {
		l := ShoppingList{
			Status: ListStatusActive,
			Items:  NewItemCollection(ShoppingItem{ID: "a", Quantity: 1, Completed: true}),
		}
		l.Recompute(baseTime)
		first := *l.CompletedAt

		l.Recompute(baseTime.Add(time.Hour))
		assert.Equal(t, ListStatusCompleted, l.Status)
		assert.Equal(t, first, *l.CompletedAt)
	})

	t.Run("completed list without timestamp gets one", func(t *testing.T) {
		l := ShoppingList{
			Status: ListStatusCompleted,
			Items:  NewItemCollection(ShoppingItem{ID: "a", Quantity: 1, Completed: true}),
		}
		l.Recompute(baseTime)
		assert.NotNil(t, l.CompletedAt)
	})
}

func TestBudgetStatus(t *testing.T) {
	withSpend := func(budget *float64, estimated float64, actual *float64) ShoppingList {
		l, err := NewShoppingList("user-1", ListInput{
			Name:   "Budgeted",
			Budget: budget,
			Items:  []ItemInput{{Name: "thing", EstimatedPrice: f64(estimated), ActualPrice: actual}},
		}, baseTime)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return l
	}

	tests := []struct {
		name      string
		budget    *float64
		estimated float64
		actual    *float64
		want      BudgetStatus
	}{
		{"no budget", nil, 50, nil, BudgetStatusNone},
		{"zero budget", f64(0), 50, nil, BudgetStatusNone},
		{"within", f64(100), 80, nil, BudgetStatusWithinBudget},
		{"approaching", f64(100), 85, nil, BudgetStatusApproachingLimit},
		{"exactly at budget", f64(100), 100, nil, BudgetStatusApproachingLimit},
		{"over", f64(100), 120, nil, BudgetStatusOverBudget},
		{"actual price takes precedence", f64(100), 50, f64(120), BudgetStatusOverBudget},
		{"actual under estimate", f64(100), 120, f64(70), BudgetStatusWithinBudget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := withSpend(tt.budget, tt.estimated, tt.actual)
			assert.Equal(t, tt.want, l.BudgetStatus())
		})
	}
}

func TestDerivedCounters(t *testing.T) {
	l, err := NewShoppingList("user-1", ListInput{
		Name: "Counts",
		Items: []ItemInput{
			{Name: "a", Completed: true},
			{Name: "b"},
			{Name: "c"},
		},
	}, baseTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assert.Equal(t, 3, l.TotalItems())
	assert.Equal(t, 1, l.CompletedItems())
	assert.Equal(t, 2, l.PendingItems())
	assert.Equal(t, 33, l.CompletionPercentage())

	empty := ShoppingList{}
	assert.Equal(t, 0, empty.CompletionPercentage())
}

func TestIsOverdue(t *testing.T) {
	past := baseTime.Add(-time.Hour)
	future := baseTime.Add(time.Hour)

	assert.False(t, (&ShoppingList{Status: ListStatusActive}).IsOverdue(baseTime))
	assert.True(t, (&ShoppingList{Status: ListStatusActive, DueDate: &past}).IsOverdue(baseTime))
	assert.False(t, (&ShoppingList{Status: ListStatusActive, DueDate: &future}).IsOverdue(baseTime))
	assert.False(t, (&ShoppingList{Status: ListStatusCompleted, DueDate: &past}).IsOverdue(baseTime))
	assert.True(t, (&ShoppingList{Status: ListStatusArchived, DueDate: &past}).IsOverdue(baseTime))
}
