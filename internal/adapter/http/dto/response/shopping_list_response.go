package response

import (
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase"
)

type ShoppingItemResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	EstimatedPrice float64    `json:"estimated_price"`
	ActualPrice    *float64   `json:"actual_price"`
	Category       string     `json:"category"`
	Priority       string     `json:"priority"`
	Notes          string     `json:"notes"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ShoppingListResponse is the stored aggregate plus the derived read-only
// fields. budget_status is null when the list has no budget.
type ShoppingListResponse struct {
	ID                   string                 `json:"id"`
	OwnerID              string                 `json:"owner_id"`
	Name                 string                 `json:"name"`
	Description          string                 `json:"description"`
	Items                []ShoppingItemResponse `json:"items"`
	Status               string                 `json:"status"`
	Budget               *float64               `json:"budget"`
	TotalEstimatedCost   float64                `json:"total_estimated_cost"`
	TotalActualCost      float64                `json:"total_actual_cost"`
	Color                string                 `json:"color"`
	Category             string                 `json:"category"`
	DueDate              *time.Time             `json:"due_date"`
	CompletedAt          *time.Time             `json:"completed_at"`
	Version              int64                  `json:"version"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
	TotalItems           int                    `json:"total_items"`
	CompletedItems       int                    `json:"completed_items"`
	PendingItems         int                    `json:"pending_items"`
	CompletionPercentage int                    `json:"completion_percentage"`
	BudgetStatus         *string                `json:"budget_status"`
	IsOverdue            bool                   `json:"is_overdue"`
}

func FromShoppingItem(it entities.ShoppingItem) ShoppingItemResponse {
	return ShoppingItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Quantity:       it.Quantity,
		Unit:           string(it.Unit),
		EstimatedPrice: it.EstimatedPrice,
		ActualPrice:    it.ActualPrice,
		Category:       string(it.Category),
		Priority:       string(it.Priority),
		Notes:          it.Notes,
		Completed:      it.Completed,
		CompletedAt:    it.CompletedAt,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

// FromShoppingList renders l; now is used for is_overdue.
func FromShoppingList(l entities.ShoppingList, now time.Time) ShoppingListResponse {
	src := l.Items.All()
	items := make([]ShoppingItemResponse, 0, len(src))
	for _, it := range src {
		items = append(items, FromShoppingItem(it))
	}

	var budgetStatus *string
	if s := l.BudgetStatus(); s != entities.BudgetStatusNone {
		v := string(s)
		budgetStatus = &v
	}

	return ShoppingListResponse{
		ID:                   l.ID,
		OwnerID:              l.OwnerID,
		Name:                 l.Name,
		Description:          l.Description,
		Items:                items,
		Status:               string(l.Status),
		Budget:               l.Budget,
		TotalEstimatedCost:   l.TotalEstimatedCost,
		TotalActualCost:      l.TotalActualCost,
		Color:                string(l.Color),
		Category:             string(l.Category),
		DueDate:              l.DueDate,
		CompletedAt:          l.CompletedAt,
		Version:              l.Version,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
		TotalItems:           l.TotalItems(),
		CompletedItems:       l.CompletedItems(),
		PendingItems:         l.PendingItems(),
		CompletionPercentage: l.CompletionPercentage(),
		BudgetStatus:         budgetStatus,
		IsOverdue:            l.IsOverdue(now),
	}
}

func FromShoppingLists(lists []entities.ShoppingList, now time.Time) []ShoppingListResponse {
	out := make([]ShoppingListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, FromShoppingList(l, now))
	}
	return out
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type ShoppingListPageResponse struct {
	Data       []ShoppingListResponse `json:"data"`
	Count      int                    `json:"count"`
	TotalCount int                    `json:"total_count"`
	Pagination PaginationResponse     `json:"pagination"`
}

func FromListPage(p usecase.ListPage, now time.Time) ShoppingListPageResponse {
	data := FromShoppingLists(p.Lists, now)
	return ShoppingListPageResponse{
		Data:       data,
		Count:      len(data),
		TotalCount: p.TotalCount,
		Pagination: PaginationResponse{Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages},
	}
}

type BulkItemsResponse struct {
	ShoppingList ShoppingListResponse `json:"shopping_list"`
	UpdatedCount int                  `json:"updated_count"`
}

func FromBulkResult(l entities.ShoppingList, updated int, now time.Time) BulkItemsResponse {
	return BulkItemsResponse{ShoppingList: FromShoppingList(l, now), UpdatedCount: updated}
}

type StatsResponse struct {
	TotalLists        int                     `json:"total_lists"`
	ActiveLists       int                     `json:"active_lists"`
	CompletedLists    int                     `json:"completed_lists"`
	ArchivedLists     int                     `json:"archived_lists"`
	TotalItems        int                     `json:"total_items"`
	CompletedItems    int                     `json:"completed_items"`
	TotalSpent        float64                 `json:"total_spent"`
	CategoryBreakdown []usecase.CategoryCount `json:"category_breakdown"`
	CompletionRate    int                     `json:"completion_rate"`
}

func FromStats(s usecase.OwnerStats) StatsResponse {
	breakdown := s.CategoryBreakdown
	if breakdown == nil {
		breakdown = []usecase.CategoryCount{}
	}
	return StatsResponse{
		TotalLists:        s.TotalLists,
		ActiveLists:       s.ActiveLists,
		CompletedLists:    s.CompletedLists,
		ArchivedLists:     s.ArchivedLists,
		TotalItems:        s.TotalItems,
		CompletedItems:    s.CompletedItems,
		TotalSpent:        s.TotalSpent,
		CategoryBreakdown: breakdown,
		CompletionRate:    s.CompletionRate,
	}
}

type CategoryAnalyticsResponse struct {
	Category           string  `json:"category"`
	ItemCount          int     `json:"item_count"`
	TotalEstimatedCost float64 `json:"total_estimated_cost"`
	TotalActualCost    float64 `json:"total_actual_cost"`
	CompletedItems     int     `json:"completed_items"`
	CompletionRate     float64 `json:"completion_rate"`
}

type AnalyticsResponse struct {
	Data []CategoryAnalyticsResponse `json:"data"`
}

func FromAnalytics(categories []usecase.CategoryAnalytics) AnalyticsResponse {
	data := make([]CategoryAnalyticsResponse, 0, len(categories))
	for _, c := range categories {
		data = append(data, CategoryAnalyticsResponse{
			Category:           string(c.Category),
			ItemCount:          c.ItemCount,
			TotalEstimatedCost: c.TotalEstimatedCost,
			TotalActualCost:    c.TotalActualCost,
			CompletedItems:     c.CompletedItems,
			CompletionRate:     c.CompletionRate,
		})
	}
	return AnalyticsResponse{Data: data}
}
