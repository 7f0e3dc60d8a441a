package entities

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxItemNameLength  = 100
	MaxItemNotesLength = 200
	MinItemQuantity    = 0.1
	MaxItemQuantity    = 999
	DefaultQuantity    = 1
)

// ShoppingItem is one line of a shopping list. It has no lifecycle of its own:
// it is created, changed and removed only through its ShoppingList.
//
// Invariant: CompletedAt != nil iff Completed.
type ShoppingItem struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Quantity       float64      `json:"quantity"`
	Unit           ItemUnit     `json:"unit"`
	EstimatedPrice float64      `json:"estimated_price"`
	ActualPrice    *float64     `json:"actual_price,omitempty"`
	Category       ItemCategory `json:"category"`
	Priority       ItemPriority `json:"priority"`
	Notes          string       `json:"notes,omitempty"`
	Completed      bool         `json:"completed"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ItemInput carries the caller-supplied fields of a new item. Nil pointers and
// empty enums fall back to the documented defaults.
type ItemInput struct {
	Name           string
	Quantity       *float64
	Unit           ItemUnit
	EstimatedPrice *float64
	ActualPrice    *float64
	Category       ItemCategory
	Priority       ItemPriority
	Notes          string
	Completed      bool
}

// ItemPatch holds the fields to merge into an existing item. Nil means "leave as is".
type ItemPatch struct {
	Name           *string
	Quantity       *float64
	Unit           *ItemUnit
	EstimatedPrice *float64
	ActualPrice    *float64
	Category       *ItemCategory
	Priority       *ItemPriority
	Notes          *string
	Completed      *bool
}

func newShoppingItem(in ItemInput, now time.Time) ShoppingItem {
	it := ShoppingItem{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		Quantity:       DefaultQuantity,
		Unit:           UnitPiece,
		EstimatedPrice: 0,
		ActualPrice:    copyFloat(in.ActualPrice),
		Category:       ItemCategoryOther,
		Priority:       PriorityMedium,
		Notes:          strings.TrimSpace(in.Notes),
		Completed:      in.Completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Unit != "" {
		it.Unit = in.Unit
	}
	if in.EstimatedPrice != nil {
		it.EstimatedPrice = *in.EstimatedPrice
	}
	if in.Category != "" {
		it.Category = in.Category
	}
	if in.Priority != "" {
		it.Priority = in.Priority
	}
	return it
}

// merged returns a copy of it with the patch applied. It does not validate.
func (p ItemPatch) merged(it ShoppingItem) ShoppingItem {
	out := it
	if p.Name != nil {
		out.Name = strings.TrimSpace(*p.Name)
	}
	if p.Quantity != nil {
		out.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		out.Unit = *p.Unit
	}
	if p.EstimatedPrice != nil {
		out.EstimatedPrice = *p.EstimatedPrice
	}
	if p.ActualPrice != nil {
		out.ActualPrice = copyFloat(p.ActualPrice)
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Notes != nil {
		out.Notes = strings.TrimSpace(*p.Notes)
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}

func validateItem(it ShoppingItem, prefix string, errs *fieldErrors) {
	field := func(name string) string { return prefix + name }

	switch n := utf8.RuneCountInString(it.Name); {
	case n == 0:
		errs.add(field("name"), "is required")
	case n > MaxItemNameLength:
		errs.add(field("name"), fmt.Sprintf("must be at most %d characters", MaxItemNameLength))
	}
	if it.Quantity < MinItemQuantity || it.Quantity > MaxItemQuantity {
		errs.add(field("quantity"), fmt.Sprintf("must be between %g and %d", MinItemQuantity, MaxItemQuantity))
	}
	if !it.Unit.Valid() {
		errs.add(field("unit"), fmt.Sprintf("unsupported unit %q", it.Unit))
	}
	if it.EstimatedPrice < 0 {
		errs.add(field("estimated_price"), "must not be negative")
	}
	if it.ActualPrice != nil && *it.ActualPrice < 0 {
		errs.add(field("actual_price"), "must not be negative")
	}
	if !it.Category.Valid() {
		errs.add(field("category"), fmt.Sprintf("unsupported category %q", it.Category))
	}
	if !it.Priority.Valid() {
		errs.add(field("priority"), fmt.Sprintf("unsupported priority %q", it.Priority))
	}
	if utf8.RuneCountInString(it.Notes) > MaxItemNotesLength {
		errs.add(field("notes"), fmt.Sprintf("must be at most %d characters", MaxItemNotesLength))
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
