package response

import (
	"encoding/json"
	"testing"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase"
)

func TestFromShoppingList(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	budget, qty, price := 10.0, 3.0, 3.0
	l, err := entities.NewShoppingList("user-1", entities.ListInput{
		Name:    "Groceries",
		Budget:  &budget,
		DueDate: &due,
		Items: []entities.ItemInput{
			{Name: "Milk", Quantity: &qty, EstimatedPrice: &price, Completed: true},
			{Name: "Bread"},
		},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromShoppingList(l, now)
	if res.TotalItems != 2 || res.CompletedItems != 1 || res.PendingItems != 1 || res.CompletionPercentage != 50 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if res.BudgetStatus == nil || *res.BudgetStatus != "approaching_limit" {
		t.Fatalf("expected approaching_limit, got %v", res.BudgetStatus)
	}
	if !res.IsOverdue {
		t.Fatalf("expected overdue list")
	}
	if len(res.Items) != 2 || res.Items[0].CompletedAt == nil || res.Items[1].CompletedAt != nil {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.TotalEstimatedCost != 9 {
		t.Fatalf("expected total 9, got %v", res.TotalEstimatedCost)
	}
}

func TestFromShoppingList_NoBudgetRendersNull(t *testing.T) {
	l, err := entities.NewShoppingList("user-1", entities.ListInput{Name: "Empty"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(FromShoppingList(l, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := body["budget_status"]; !ok || v != nil {
		t.Fatalf("expected budget_status null, got %v", v)
	}
	if items, ok := body["items"].([]interface{}); !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", body["items"])
	}
}

func TestFromListPage(t *testing.T) {
	res := FromListPage(usecase.ListPage{Lists: []entities.ShoppingList{}, TotalCount: 41, Page: 3, Limit: 20, TotalPages: 3}, time.Now())
	if res.Count != 0 || res.TotalCount != 41 || res.Pagination.TotalPages != 3 || res.Data == nil {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromStats(t *testing.T) {
	res := FromStats(usecase.OwnerStats{TotalLists: 2, TotalSpent: 12.5, CompletionRate: 40})
	if res.TotalLists != 2 || res.TotalSpent != 12.5 || res.CompletionRate != 40 || res.CategoryBreakdown == nil {
		t.Fatalf("unexpected stats: %+v", res)
	}
}
