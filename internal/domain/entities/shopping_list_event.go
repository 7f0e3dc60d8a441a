package entities

import "time"

type ShoppingListEventType string

const (
	EventShoppingListCreated      ShoppingListEventType = "shopping_list.created"
	EventShoppingListUpdated      ShoppingListEventType = "shopping_list.updated"
	EventShoppingListDeleted      ShoppingListEventType = "shopping_list.deleted"
	EventShoppingListArchived     ShoppingListEventType = "shopping_list.archived"
	EventShoppingListDuplicated   ShoppingListEventType = "shopping_list.duplicated"
	EventShoppingListItemsBulkSet ShoppingListEventType = "shopping_list.items_bulk_updated"
)

// ShoppingListEvent is published after a successful write so other clients of
// the same user can refresh.
type ShoppingListEvent struct {
	Type       ShoppingListEventType `json:"type"`
	ListID     string                `json:"list_id"`
	OwnerID    string                `json:"owner_id"`
	Version    int64                 `json:"version"`
	Affected   int                   `json:"affected,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}

func NewShoppingListEvent(t ShoppingListEventType, l ShoppingList, now time.Time) ShoppingListEvent {
	return ShoppingListEvent{
		Type:       t,
		ListID:     l.ID,
		OwnerID:    l.OwnerID,
		Version:    l.Version,
		OccurredAt: now,
	}
}
