package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recompute restores every derived field of the aggregate. It is the single
// consistency pass run at the end of each mutating method and by bulk
// processing; persistence never recomputes on its own.
func (l *ShoppingList) Recompute(now time.Time) {
	items := l.Items.items
	for i := range items {
		normalizeItemCompletion(&items[i], now)
	}

	l.TotalEstimatedCost = EstimatedCost(items)
	l.TotalActualCost = ActualCost(items)

	next := NextStatus(l.Status, items)
	switch next {
	case ListStatusCompleted:
		if l.Status != ListStatusCompleted || l.CompletedAt == nil {
			t := now
			l.CompletedAt = &t
		}
	default:
		l.CompletedAt = nil
	}
	l.Status = next
}

// NextStatus is the list state machine. Archived is sticky; otherwise a list
// is completed exactly when it has items and all of them are completed.
func NextStatus(current ListStatus, items []ShoppingItem) ListStatus {
	if current == ListStatusArchived {
		return ListStatusArchived
	}
	if len(items) > 0 && allCompleted(items) {
		return ListStatusCompleted
	}
	return ListStatusActive
}

// EstimatedCost is Σ estimatedPrice × quantity, rounded to cents.
func EstimatedCost(items []ShoppingItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(lineCost(it.EstimatedPrice, it.Quantity))
	}
	return roundMoney(total)
}

// ActualCost sums actualPrice × quantity over items that have an actual price.
func ActualCost(items []ShoppingItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		if it.ActualPrice == nil {
			continue
		}
		total = total.Add(lineCost(*it.ActualPrice, it.Quantity))
	}
	return roundMoney(total)
}

func normalizeItemCompletion(it *ShoppingItem, now time.Time) {
	if it.Completed {
		if it.CompletedAt == nil {
			t := now
			it.CompletedAt = &t
		}
		return
	}
	it.CompletedAt = nil
}

func allCompleted(items []ShoppingItem) bool {
	for _, it := range items {
		if !it.Completed {
			return false
		}
	}
	return true
}

func lineCost(price, quantity float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(quantity))
}

func roundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
