package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"productivity_api/internal/domain/entities"
)

func TestCreateShoppingListRequest_ToListInput(t *testing.T) {
	var r CreateShoppingListRequest
	body := `{"name":"Groceries","color":" green ","due_date":"2026-10-05T10:00:00Z",
		"items":[{"name":"Milk","quantity":2,"unit":"liter","estimated_price":3,"category":"dairy"}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := r.ToListInput()
	if in.Name != "Groceries" || in.Color != entities.ColorGreen || in.DueDate == nil {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || *in.Items[0].Quantity != 2 || in.Items[0].Unit != entities.UnitLiter || in.Items[0].Category != entities.ItemCategoryDairy {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if in.Items[0].ActualPrice != nil {
		t.Fatalf("expected no actual price")
	}
}

func TestUpdateShoppingListRequest_ToListPatch(t *testing.T) {
	var r UpdateShoppingListRequest
	if err := json.Unmarshal([]byte(`{"status":"archived","budget":50,"owner_id":"someone-else"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToListPatch()
	if p.Status == nil || *p.Status != entities.ListStatusArchived {
		t.Fatalf("expected archived status, got %+v", p.Status)
	}
	if p.Budget == nil || *p.Budget != 50 {
		t.Fatalf("expected budget 50")
	}
	if p.Name != nil || p.Color != nil || p.Category != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", p)
	}
}

func TestBulkItemsRequest_ToBulkRequest(t *testing.T) {
	t.Run("update carries the patch", func(t *testing.T) {
		var r BulkItemsRequest
		if err := json.Unmarshal([]byte(`{"action":"Update","item_ids":["a","b"],"update_data":{"priority":"high"}}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := r.ToBulkRequest()
		if req.Action != entities.BulkActionUpdate || len(req.ItemIDs) != 2 {
			t.Fatalf("unexpected request: %+v", req)
		}
		if req.Patch == nil || req.Patch.Priority == nil || *req.Patch.Priority != entities.PriorityHigh {
			t.Fatalf("expected priority patch, got %+v", req.Patch)
		}
	})

	t.Run("no update data", func(t *testing.T) {
		req := BulkItemsRequest{Action: "complete", ItemIDs: []string{"a"}}.ToBulkRequest()
		if req.Patch != nil {
			t.Fatalf("expected nil patch")
		}
	})
}

func TestListShoppingListsQuery_ToListQuery(t *testing.T) {
	q := ListShoppingListsQuery{Status: "active", SortBy: " name ", SortOrder: "asc", Page: 2, Limit: 10}.ToListQuery()
	if q.SortBy != "name" || q.Page != 2 || q.Limit != 10 || q.Status != "active" {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestAnalyticsQuery_ToRange(t *testing.T) {
	t.Run("empty bounds", func(t *testing.T) {
		from, to, err := AnalyticsQuery{}.ToRange()
		if err != nil || from != nil || to != nil {
			t.Fatalf("expected open range, got %v %v %v", from, to, err)
		}
	})

	t.Run("date and timestamp", func(t *testing.T) {
		from, to, err := AnalyticsQuery{StartDate: "2026-10-01", EndDate: "2026-10-31T23:59:59Z"}.ToRange()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start: %v", from)
		}
		if !to.Equal(time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)) {
			t.Fatalf("unexpected end: %v", to)
		}
	})

	t.Run("bad dates name both fields", func(t *testing.T) {
		_, _, err := AnalyticsQuery{StartDate: "yesterday", EndDate: "10/31/2026"}.ToRange()
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(verr.Fields) != 2 || verr.Fields[0].Field != "startDate" || verr.Fields[1].Field != "endDate" {
			t.Fatalf("unexpected fields: %+v", verr.Fields)
		}
	})
}
