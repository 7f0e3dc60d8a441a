package interfaces

import (
	"context"
	"errors"

	"productivity_api/internal/domain/entities"
)

// ErrVersionConflict is returned by Replace and Delete when the stored version
// no longer matches the one the caller loaded.
var ErrVersionConflict = errors.New("shopping list version conflict")

// IShoppingListRepository persists whole ShoppingList aggregates.
//
// Lookups return a zero ShoppingList (ID == "") when nothing is stored under
// the id. Writes never recompute derived fields; the aggregate is stored as given.
//   - Create fails if the id already exists.
//   - Replace stores l only if the stored version still equals l.Version, and
//     returns the stored aggregate with Version incremented and UpdatedAt set.
//   - Delete removes the list only if the stored version equals expectedVersion.

type IShoppingListRepository interface {
	Create(ctx context.Context, l entities.ShoppingList) (entities.ShoppingList, error)
	GetByID(ctx context.Context, id string) (entities.ShoppingList, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.ShoppingList, error)
	Replace(ctx context.Context, l entities.ShoppingList) (entities.ShoppingList, error)
	Delete(ctx context.Context, id string, expectedVersion int64) error
}
