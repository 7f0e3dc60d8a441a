package interfaces

import (
	"context"

	"productivity_api/internal/domain/entities"
)

// IShoppingListEventPublisher announces committed changes to other clients.
type IShoppingListEventPublisher interface {
	Publish(ctx context.Context, event entities.ShoppingListEvent) error
}
