package entities

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	budgetWarnPercent = decimal.NewFromInt(80)
	budgetFullPercent = decimal.NewFromInt(100)
)

// Derived values are computed on read and never stored.

func (l *ShoppingList) TotalItems() int { return l.Items.Len() }

func (l *ShoppingList) CompletedItems() int {
	n := 0
	for _, it := range l.Items.items {
		if it.Completed {
			n++
		}
	}
	return n
}

func (l *ShoppingList) PendingItems() int { return l.TotalItems() - l.CompletedItems() }

// CompletionPercentage is round(100 × completed / total), 0 for an empty list.
func (l *ShoppingList) CompletionPercentage() int {
	total := l.TotalItems()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(l.CompletedItems()) * 100 / float64(total)))
}

// BudgetStatus compares spending against the budget. Spending is the actual
// cost once any item has an actual price recorded, the estimate otherwise.
// A missing or zero budget yields BudgetStatusNone.
func (l *ShoppingList) BudgetStatus() BudgetStatus {
	if l.Budget == nil || *l.Budget <= 0 {
		return BudgetStatusNone
	}

	spent := l.TotalEstimatedCost
	if l.hasActualPrices() {
		spent = l.TotalActualCost
	}
	percent := decimal.NewFromFloat(spent).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromFloat(*l.Budget))

	switch {
	case percent.LessThanOrEqual(budgetWarnPercent):
		return BudgetStatusWithinBudget
	case percent.LessThanOrEqual(budgetFullPercent):
		return BudgetStatusApproachingLimit
	default:
		return BudgetStatusOverBudget
	}
}

// IsOverdue reports whether the due date has passed on a list that is not completed.
func (l *ShoppingList) IsOverdue(now time.Time) bool {
	if l.DueDate == nil || l.Status == ListStatusCompleted {
		return false
	}
	return now.After(*l.DueDate)
}

func (l *ShoppingList) hasActualPrices() bool {
	for _, it := range l.Items.items {
		if it.ActualPrice != nil {
			return true
		}
	}
	return false
}
