package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase/interfaces"
)

// ShoppingListMemoryRepository keeps aggregates in process memory with the
// same version semantics as the DynamoDB repository. Used with
// STORAGE_DRIVER=memory and in tests.
type ShoppingListMemoryRepository struct {
	mu    sync.Mutex
	lists map[string]entities.ShoppingList
	now   func() time.Time
}

var _ interfaces.IShoppingListRepository = (*ShoppingListMemoryRepository)(nil)

func NewShoppingListMemoryRepository() *ShoppingListMemoryRepository {
	return &ShoppingListMemoryRepository{
		lists: make(map[string]entities.ShoppingList),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *ShoppingListMemoryRepository) Create(_ context.Context, l entities.ShoppingList) (entities.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists[l.ID]; ok {
		return entities.ShoppingList{}, ErrShoppingListExists
	}
	r.lists[l.ID] = l.Clone()
	return l.Clone(), nil
}

func (r *ShoppingListMemoryRepository) GetByID(_ context.Context, id string) (entities.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[id]
	if !ok {
		return entities.ShoppingList{}, nil
	}
	return l.Clone(), nil
}

// ListByOwnerID returns the owner's lists ordered by id.
func (r *ShoppingListMemoryRepository) ListByOwnerID(_ context.Context, ownerID string) ([]entities.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []entities.ShoppingList{}
	for _, l := range r.lists {
		if l.OwnerID == ownerID {
			out = append(out, l.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ShoppingListMemoryRepository) Replace(_ context.Context, l entities.ShoppingList) (entities.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.lists[l.ID]
	if !ok || stored.Version != l.Version {
		return entities.ShoppingList{}, interfaces.ErrVersionConflict
	}
	next := l.Clone()
	next.Version = l.Version + 1
	next.UpdatedAt = r.now()
	r.lists[l.ID] = next
	return next.Clone(), nil
}

func (r *ShoppingListMemoryRepository) Delete(_ context.Context, id string, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.lists[id]
	if !ok || stored.Version != expectedVersion {
		return interfaces.ErrVersionConflict
	}
	delete(r.lists, id)
	return nil
}
