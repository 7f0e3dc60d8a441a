package request

import (
	"strings"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase"
)

// ItemRequest is the body of POST /shopping/:id/items and one entry of the
// items array on list creation.
type ItemRequest struct {
	Name           string   `json:"name" binding:"required"`
	Quantity       *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit           string   `json:"unit"`
	EstimatedPrice *float64 `json:"estimated_price" binding:"omitempty,gte=0"`
	ActualPrice    *float64 `json:"actual_price" binding:"omitempty,gte=0"`
	Category       string   `json:"category"`
	Priority       string   `json:"priority"`
	Notes          string   `json:"notes"`
	Completed      bool     `json:"completed"`
}

func (r ItemRequest) ToItemInput() entities.ItemInput {
	return entities.ItemInput{
		Name:           r.Name,
		Quantity:       r.Quantity,
		Unit:           entities.ItemUnit(strings.TrimSpace(r.Unit)),
		EstimatedPrice: r.EstimatedPrice,
		ActualPrice:    r.ActualPrice,
		Category:       entities.ItemCategory(strings.TrimSpace(r.Category)),
		Priority:       entities.ItemPriority(strings.TrimSpace(r.Priority)),
		Notes:          r.Notes,
		Completed:      r.Completed,
	}
}

type CreateShoppingListRequest struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Budget      *float64      `json:"budget" binding:"omitempty,gte=0"`
	Color       string        `json:"color"`
	Category    string        `json:"category"`
	DueDate     *time.Time    `json:"due_date"`
	Items       []ItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r CreateShoppingListRequest) ToListInput() entities.ListInput {
	items := make([]entities.ItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToItemInput())
	}
	return entities.ListInput{
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget,
		Color:       entities.ListColor(strings.TrimSpace(r.Color)),
		Category:    entities.ListCategory(strings.TrimSpace(r.Category)),
		DueDate:     r.DueDate,
		Items:       items,
	}
}

// UpdateShoppingListRequest changes list-level fields only; owner and items
// are not part of the payload.
type UpdateShoppingListRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Budget      *float64   `json:"budget" binding:"omitempty,gte=0"`
	Color       *string    `json:"color"`
	Category    *string    `json:"category"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status"`
}

func (r UpdateShoppingListRequest) ToListPatch() entities.ListPatch {
	p := entities.ListPatch{
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget,
		DueDate:     r.DueDate,
	}
	if r.Color != nil {
		c := entities.ListColor(strings.TrimSpace(*r.Color))
		p.Color = &c
	}
	if r.Category != nil {
		c := entities.ListCategory(strings.TrimSpace(*r.Category))
		p.Category = &c
	}
	if r.Status != nil {
		s := entities.ListStatus(strings.TrimSpace(*r.Status))
		p.Status = &s
	}
	return p
}

type UpdateItemRequest struct {
	Name           *string  `json:"name"`
	Quantity       *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit           *string  `json:"unit"`
	EstimatedPrice *float64 `json:"estimated_price" binding:"omitempty,gte=0"`
	ActualPrice    *float64 `json:"actual_price" binding:"omitempty,gte=0"`
	Category       *string  `json:"category"`
	Priority       *string  `json:"priority"`
	Notes          *string  `json:"notes"`
	Completed      *bool    `json:"completed"`
}

func (r UpdateItemRequest) ToItemPatch() entities.ItemPatch {
	p := entities.ItemPatch{
		Name:           r.Name,
		Quantity:       r.Quantity,
		EstimatedPrice: r.EstimatedPrice,
		ActualPrice:    r.ActualPrice,
		Notes:          r.Notes,
		Completed:      r.Completed,
	}
	if r.Unit != nil {
		u := entities.ItemUnit(strings.TrimSpace(*r.Unit))
		p.Unit = &u
	}
	if r.Category != nil {
		c := entities.ItemCategory(strings.TrimSpace(*r.Category))
		p.Category = &c
	}
	if r.Priority != nil {
		pr := entities.ItemPriority(strings.TrimSpace(*r.Priority))
		p.Priority = &pr
	}
	return p
}

type BulkItemsRequest struct {
	Action     string             `json:"action" binding:"required"`
	ItemIDs    []string           `json:"item_ids"`
	UpdateData *UpdateItemRequest `json:"update_data" binding:"omitempty"`
}

func (r BulkItemsRequest) ToBulkRequest() entities.BulkRequest {
	req := entities.BulkRequest{
		Action:  entities.BulkAction(strings.ToLower(strings.TrimSpace(r.Action))),
		ItemIDs: r.ItemIDs,
	}
	if r.UpdateData != nil {
		p := r.UpdateData.ToItemPatch()
		req.Patch = &p
	}
	return req
}

// ListShoppingListsQuery binds GET /shopping query parameters.
type ListShoppingListsQuery struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

func (q ListShoppingListsQuery) ToListQuery() usecase.ListQuery {
	return usecase.ListQuery{
		Status:    q.Status,
		Category:  q.Category,
		SortBy:    usecase.SortField(strings.TrimSpace(q.SortBy)),
		SortOrder: strings.TrimSpace(q.SortOrder),
		Page:      q.Page,
		Limit:     q.Limit,
	}
}

type RecentQuery struct {
	Limit int `form:"limit"`
}

// AnalyticsQuery binds GET /shopping/analytics. Dates are RFC 3339 or
// YYYY-MM-DD (midnight UTC).
type AnalyticsQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q AnalyticsQuery) ToRange() (from, to *time.Time, err error) {
	var fields []entities.FieldError
	from, ok := parseQueryDate(q.StartDate)
	if !ok {
		fields = append(fields, entities.FieldError{Field: "startDate", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD"})
	}
	to, ok = parseQueryDate(q.EndDate)
	if !ok {
		fields = append(fields, entities.FieldError{Field: "endDate", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD"})
	}
	if len(fields) > 0 {
		return nil, nil, entities.NewValidationError(fields...)
	}
	return from, to, nil
}

func parseQueryDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}
