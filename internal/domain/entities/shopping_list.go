package entities

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxListNameLength        = 100
	MaxListDescriptionLength = 500
	duplicateSuffix          = " (Copy)"
)

// ShoppingList is the aggregate root: the list plus its embedded items are
// loaded, mutated and stored as one document.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id
//
// Invariants, restored by Recompute at the end of every mutating method:
//   - TotalEstimatedCost / TotalActualCost equal the rounded item sums.
//   - CompletedAt != nil iff Status == completed.
//   - unless archived, Status == completed iff items are non-empty and all completed.
//
// Version is the optimistic concurrency token; writes are conditional on it.
type ShoppingList struct {
	ID                 string         `json:"id"`
	OwnerID            string         `json:"owner_id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Items              ItemCollection `json:"items"`
	Status             ListStatus     `json:"status"`
	Budget             *float64       `json:"budget,omitempty"`
	TotalEstimatedCost float64        `json:"total_estimated_cost"`
	TotalActualCost    float64        `json:"total_actual_cost"`
	Color              ListColor      `json:"color"`
	Category           ListCategory   `json:"category"`
	DueDate            *time.Time     `json:"due_date,omitempty"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty"`
	Version            int64          `json:"version"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ListInput carries the caller-supplied fields of a new list.
type ListInput struct {
	Name        string
	Description string
	Budget      *float64
	Color       ListColor
	Category    ListCategory
	DueDate     *time.Time
	Items       []ItemInput
}

// ListPatch holds list-level fields to change. Owner and items are not patchable.
//
// Status accepts "archived" (same as Archive) and "active" (explicit
// reactivation of an archived list). "completed" is derived and rejected.
type ListPatch struct {
	Name        *string
	Description *string
	Budget      *float64
	Color       *ListColor
	Category    *ListCategory
	DueDate     *time.Time
	Status      *ListStatus
}

// NewShoppingList validates the input and builds an active list with version 1.
func NewShoppingList(ownerID string, in ListInput, now time.Time) (ShoppingList, error) {
	var errs fieldErrors
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		errs.add("owner_id", "is required")
	}

	l := ShoppingList{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Status:      ListStatusActive,
		Budget:      copyFloat(in.Budget),
		Color:       ColorBlue,
		Category:    ListCategoryWeekly,
		DueDate:     copyTime(in.DueDate),
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Color != "" {
		l.Color = in.Color
	}
	if in.Category != "" {
		l.Category = in.Category
	}
	validateListFields(l, &errs)

	items := make([]ShoppingItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		it := newShoppingItem(itemIn, now)
		validateItem(it, fmt.Sprintf("items[%d].", i), &errs)
		items = append(items, it)
	}
	if err := errs.err(); err != nil {
		return ShoppingList{}, err
	}

	l.Items = NewItemCollection(items...)
	l.Recompute(now)
	return l, nil
}

// AddItem appends a validated item to the end of the list.
func (l *ShoppingList) AddItem(in ItemInput, now time.Time) (ShoppingItem, error) {
	it := newShoppingItem(in, now)
	var errs fieldErrors
	validateItem(it, "", &errs)
	if err := errs.err(); err != nil {
		return ShoppingItem{}, err
	}
	l.Items.Append(it)
	l.Recompute(now)
	stored, _ := l.Items.Get(it.ID)
	return cloneItem(*stored), nil
}

// UpdateItem merges patch into the item. The merged item is validated before
// anything is written back.
func (l *ShoppingList) UpdateItem(itemID string, patch ItemPatch, now time.Time) (ShoppingItem, error) {
	current, ok := l.Items.Get(itemID)
	if !ok {
		return ShoppingItem{}, ErrItemNotFound
	}
	next := patch.merged(*current)
	var errs fieldErrors
	validateItem(next, "", &errs)
	if err := errs.err(); err != nil {
		return ShoppingItem{}, err
	}
	next.UpdatedAt = now
	*current = next
	l.Recompute(now)
	return cloneItem(*current), nil
}

func (l *ShoppingList) RemoveItem(itemID string, now time.Time) error {
	if !l.Items.Remove(itemID) {
		return ErrItemNotFound
	}
	l.Recompute(now)
	return nil
}

// ToggleItem flips the completion flag. Completing again always stamps a fresh
// CompletedAt.
func (l *ShoppingList) ToggleItem(itemID string, now time.Time) (ShoppingItem, error) {
	it, ok := l.Items.Get(itemID)
	if !ok {
		return ShoppingItem{}, ErrItemNotFound
	}
	setCompletion(it, !it.Completed, now)
	l.Recompute(now)
	return cloneItem(*it), nil
}

// Archive is idempotent. Archived lists keep their totals up to date but never
// change status on their own.
func (l *ShoppingList) Archive(now time.Time) {
	l.Status = ListStatusArchived
	l.Recompute(now)
}

// Reactivate moves an archived list back into the automatic lifecycle.
func (l *ShoppingList) Reactivate(now time.Time) {
	if l.Status == ListStatusArchived {
		l.Status = ListStatusActive
	}
	l.Recompute(now)
}

// ApplyPatch validates the merged list fields and then applies them.
func (l *ShoppingList) ApplyPatch(p ListPatch, now time.Time) error {
	next := *l
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		next.Description = strings.TrimSpace(*p.Description)
	}
	if p.Budget != nil {
		next.Budget = copyFloat(p.Budget)
	}
	if p.Color != nil {
		next.Color = *p.Color
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.DueDate != nil {
		next.DueDate = copyTime(p.DueDate)
	}

	var errs fieldErrors
	validateListFields(next, &errs)
	if p.Status != nil {
		switch *p.Status {
		case ListStatusActive, ListStatusArchived:
		case ListStatusCompleted:
			errs.add("status", "completed is derived from the items and cannot be set")
		default:
			errs.add("status", fmt.Sprintf("unsupported status %q", *p.Status))
		}
	}
	if err := errs.err(); err != nil {
		return err
	}

	l.Name = next.Name
	l.Description = next.Description
	l.Budget = next.Budget
	l.Color = next.Color
	l.Category = next.Category
	l.DueDate = next.DueDate

	if p.Status != nil {
		switch *p.Status {
		case ListStatusArchived:
			l.Archive(now)
			return nil
		case ListStatusActive:
			l.Reactivate(now)
			return nil
		}
	}
	l.Recompute(now)
	return nil
}

// Duplicate returns a fresh active list owned by the same user with every item
// reset to "not purchased". The due date is not carried over.
func (l *ShoppingList) Duplicate(now time.Time) ShoppingList {
	items := make([]ShoppingItem, 0, l.Items.Len())
	for _, src := range l.Items.All() {
		items = append(items, ShoppingItem{
			ID:             uuid.NewString(),
			Name:           src.Name,
			Quantity:       src.Quantity,
			Unit:           src.Unit,
			EstimatedPrice: src.EstimatedPrice,
			Category:       src.Category,
			Priority:       src.Priority,
			Notes:          src.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	dup := ShoppingList{
		ID:          uuid.NewString(),
		OwnerID:     l.OwnerID,
		Name:        duplicateName(l.Name),
		Description: l.Description,
		Items:       NewItemCollection(items...),
		Status:      ListStatusActive,
		Budget:      copyFloat(l.Budget),
		Color:       l.Color,
		Category:    l.Category,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	dup.Recompute(now)
	return dup
}

// Clone returns a deep copy, safe to mutate independently.
func (l ShoppingList) Clone() ShoppingList {
	out := l
	out.Items = l.Items.Clone()
	out.Budget = copyFloat(l.Budget)
	out.DueDate = copyTime(l.DueDate)
	out.CompletedAt = copyTime(l.CompletedAt)
	return out
}

func validateListFields(l ShoppingList, errs *fieldErrors) {
	switch n := utf8.RuneCountInString(l.Name); {
	case n == 0:
		errs.add("name", "is required")
	case n > MaxListNameLength:
		errs.add("name", fmt.Sprintf("must be at most %d characters", MaxListNameLength))
	}
	if utf8.RuneCountInString(l.Description) > MaxListDescriptionLength {
		errs.add("description", fmt.Sprintf("must be at most %d characters", MaxListDescriptionLength))
	}
	if l.Budget != nil && *l.Budget < 0 {
		errs.add("budget", "must not be negative")
	}
	if !l.Color.Valid() {
		errs.add("color", fmt.Sprintf("unsupported color %q", l.Color))
	}
	if !l.Category.Valid() {
		errs.add("category", fmt.Sprintf("unsupported category %q", l.Category))
	}
}

func duplicateName(name string) string {
	maxBase := MaxListNameLength - utf8.RuneCountInString(duplicateSuffix)
	runes := []rune(name)
	if len(runes) > maxBase {
		name = strings.TrimSpace(string(runes[:maxBase]))
	}
	return name + duplicateSuffix
}

func setCompletion(it *ShoppingItem, completed bool, now time.Time) {
	it.Completed = completed
	if completed {
		t := now
		it.CompletedAt = &t
	} else {
		it.CompletedAt = nil
	}
	it.UpdatedAt = now
}
