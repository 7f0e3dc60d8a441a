package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"productivity_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit   = 20
	MaxPageLimit       = 100
	DefaultRecentLimit = 3
	filterAll          = "all"
)

type SortField string

const (
	SortByCreatedAt          SortField = "createdAt"
	SortByUpdatedAt          SortField = "updatedAt"
	SortByName               SortField = "name"
	SortByDueDate            SortField = "dueDate"
	SortByTotalEstimatedCost SortField = "totalEstimatedCost"
)

// ListQuery filters and pages the lists of one owner. Empty or "all" filters
// match everything; zero values fall back to createdAt desc, page 1, limit 20.
type ListQuery struct {
	Status    string
	Category  string
	SortBy    SortField
	SortOrder string
	Page      int
	Limit     int
}

type ListPage struct {
	Lists      []entities.ShoppingList
	TotalCount int
	Page       int
	Limit      int
	TotalPages int
}

type CategoryCount struct {
	Category entities.ItemCategory `json:"category"`
	Count    int                   `json:"count"`
}

// OwnerStats aggregates every list of one owner.
type OwnerStats struct {
	TotalLists        int
	ActiveLists       int
	CompletedLists    int
	ArchivedLists     int
	TotalItems        int
	CompletedItems    int
	TotalSpent        float64
	CategoryBreakdown []CategoryCount
	CompletionRate    int
}

func (u *ShoppingListUseCase) List(ctx context.Context, ownerID string, q ListQuery) (ListPage, error) {
	ctx, span := u.startSpan(ctx, "List", "")
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return ListPage{}, err
	}
	q, err = q.normalized()
	if err != nil {
		return ListPage{}, err
	}

	all, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		recordError(span, err)
		u.log.Error("failed to list shopping lists", "owner_id", ownerID, "error", err)
		return ListPage{}, err
	}

	filtered := make([]entities.ShoppingList, 0, len(all))
	for _, l := range all {
		if q.matches(l) {
			filtered = append(filtered, l)
		}
	}
	sortLists(filtered, q.SortBy, q.SortOrder == "asc")

	page := ListPage{
		TotalCount: len(filtered),
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int(math.Ceil(float64(len(filtered)) / float64(q.Limit))),
	}
	start := (q.Page - 1) * q.Limit
	if start < len(filtered) {
		end := min(start+q.Limit, len(filtered))
		page.Lists = filtered[start:end]
	} else {
		page.Lists = []entities.ShoppingList{}
	}
	return page, nil
}

// Recent returns the most recently updated active or completed lists.
func (u *ShoppingListUseCase) Recent(ctx context.Context, ownerID string, limit int) ([]entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, "Recent", "")
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxPageLimit)

	all, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	out := make([]entities.ShoppingList, 0, limit)
	for _, l := range all {
		if l.Status != entities.ListStatusArchived {
			out = append(out, l)
		}
	}
	sortLists(out, SortByUpdatedAt, false)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (u *ShoppingListUseCase) Stats(ctx context.Context, ownerID string) (OwnerStats, error) {
	ctx, span := u.startSpan(ctx, "Stats", "")
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return OwnerStats{}, err
	}
	all, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		recordError(span, err)
		return OwnerStats{}, err
	}
	return computeStats(all), nil
}

func computeStats(lists []entities.ShoppingList) OwnerStats {
	var s OwnerStats
	spent := decimal.Zero
	counts := map[entities.ItemCategory]int{}

	for i := range lists {
		l := &lists[i]
		s.TotalLists++
		switch l.Status {
		case entities.ListStatusActive:
			s.ActiveLists++
		case entities.ListStatusCompleted:
			s.CompletedLists++
		case entities.ListStatusArchived:
			s.ArchivedLists++
		}
		s.TotalItems += l.TotalItems()
		s.CompletedItems += l.CompletedItems()
		spent = spent.Add(decimal.NewFromFloat(l.TotalActualCost))
		for _, it := range l.Items.All() {
			counts[it.Category]++
		}
	}

	s.TotalSpent = spent.Round(2).InexactFloat64()
	if s.TotalItems > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedItems) * 100 / float64(s.TotalItems)))
	}
	s.CategoryBreakdown = make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		s.CategoryBreakdown = append(s.CategoryBreakdown, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(s.CategoryBreakdown, func(i, j int) bool {
		a, b := s.CategoryBreakdown[i], s.CategoryBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	return s
}

// CategoryAnalytics summarizes the items of one item category.
type CategoryAnalytics struct {
	Category           entities.ItemCategory
	ItemCount          int
	TotalEstimatedCost float64
	TotalActualCost    float64
	CompletedItems     int
	CompletionRate     float64
}

// Analytics groups the owner's items by item category. Only lists created
// within [from, to] are counted; a nil bound is open.
func (u *ShoppingListUseCase) Analytics(ctx context.Context, ownerID string, from, to *time.Time) ([]CategoryAnalytics, error) {
	ctx, span := u.startSpan(ctx, "Analytics", "")
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, entities.NewValidationError(entities.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	all, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return computeAnalytics(all, from, to), nil
}

type categoryTotals struct {
	items     int
	completed int
	estimated decimal.Decimal
	actual    decimal.Decimal
}

func computeAnalytics(lists []entities.ShoppingList, from, to *time.Time) []CategoryAnalytics {
	totals := map[entities.ItemCategory]*categoryTotals{}
	for i := range lists {
		l := &lists[i]
		if from != nil && l.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && l.CreatedAt.After(*to) {
			continue
		}
		for _, it := range l.Items.All() {
			t, ok := totals[it.Category]
			if !ok {
				t = &categoryTotals{estimated: decimal.Zero, actual: decimal.Zero}
				totals[it.Category] = t
			}
			t.items++
			if it.Completed {
				t.completed++
			}
			qty := decimal.NewFromFloat(it.Quantity)
			t.estimated = t.estimated.Add(decimal.NewFromFloat(it.EstimatedPrice).Mul(qty))
			if it.ActualPrice != nil {
				t.actual = t.actual.Add(decimal.NewFromFloat(*it.ActualPrice).Mul(qty))
			}
		}
	}

	out := make([]CategoryAnalytics, 0, len(totals))
	for c, t := range totals {
		rate := decimal.NewFromInt(int64(t.completed)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(t.items)))
		out = append(out, CategoryAnalytics{
			Category:           c,
			ItemCount:          t.items,
			TotalEstimatedCost: t.estimated.Round(2).InexactFloat64(),
			TotalActualCost:    t.actual.Round(2).InexactFloat64(),
			CompletedItems:     t.completed,
			CompletionRate:     rate.Round(1).InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemCount != out[j].ItemCount {
			return out[i].ItemCount > out[j].ItemCount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (q ListQuery) normalized() (ListQuery, error) {
	var fields []entities.FieldError
	q.Status = strings.TrimSpace(q.Status)
	q.Category = strings.TrimSpace(q.Category)

	if q.Status != "" && q.Status != filterAll && !entities.ListStatus(q.Status).Valid() {
		fields = append(fields, entities.FieldError{Field: "status", Message: fmt.Sprintf("unsupported status %q", q.Status)})
	}
	if q.Category != "" && q.Category != filterAll && !entities.ListCategory(q.Category).Valid() {
		fields = append(fields, entities.FieldError{Field: "category", Message: fmt.Sprintf("unsupported category %q", q.Category)})
	}
	switch q.SortBy {
	case "":
		q.SortBy = SortByCreatedAt
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByDueDate, SortByTotalEstimatedCost:
	default:
		fields = append(fields, entities.FieldError{Field: "sortBy", Message: fmt.Sprintf("unsupported sort field %q", q.SortBy)})
	}
	switch strings.ToLower(q.SortOrder) {
	case "":
		q.SortOrder = "desc"
	case "asc", "desc":
		q.SortOrder = strings.ToLower(q.SortOrder)
	default:
		fields = append(fields, entities.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		fields = append(fields, entities.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if q.Limit == 0 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit < 1 || q.Limit > MaxPageLimit {
		fields = append(fields, entities.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxPageLimit)})
	}

	if len(fields) > 0 {
		return ListQuery{}, entities.NewValidationError(fields...)
	}
	return q, nil
}

func (q ListQuery) matches(l entities.ShoppingList) bool {
	if q.Status != "" && q.Status != filterAll && string(l.Status) != q.Status {
		return false
	}
	if q.Category != "" && q.Category != filterAll && string(l.Category) != q.Category {
		return false
	}
	return true
}

// sortLists is stable with the list id as final tie-breaker. Lists without a
// due date sort after those with one in either direction.
func sortLists(lists []entities.ShoppingList, by SortField, asc bool) {
	compare := func(a, b *entities.ShoppingList) int {
		switch by {
		case SortByUpdatedAt:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		case SortByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByTotalEstimatedCost:
			return decimal.NewFromFloat(a.TotalEstimatedCost).Cmp(decimal.NewFromFloat(b.TotalEstimatedCost))
		case SortByDueDate:
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				if asc {
					return 1
				}
				return -1
			case b.DueDate == nil:
				if asc {
					return -1
				}
				return 1
			}
			return a.DueDate.Compare(*b.DueDate)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	sort.SliceStable(lists, func(i, j int) bool {
		c := compare(&lists[i], &lists[j])
		if c == 0 {
			c = strings.Compare(lists[i].ID, lists[j].ID)
		}
		if asc {
			return c < 0
		}
		return c > 0
	})
}
