package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/infrastructure/logger"
	"productivity_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrItemNotFound         = entities.ErrItemNotFound
	ErrInvalidListID        = errors.New("invalid shopping list id")
	ErrInvalidItemID        = errors.New("invalid item id")
	ErrInvalidOwnerID       = errors.New("invalid owner id")
	ErrShoppingListConflict = errors.New("shopping list was modified concurrently, retry the request")
)

const DefaultConflictRetries = 3

// IShoppingListUseCase exposes the shopping list operations of one user.
//
// Every listID/itemID operation verifies ownership; a list owned by somebody
// else is reported as ErrShoppingListNotFound. Item-level operations return
// the whole updated aggregate.

type IShoppingListUseCase interface {
	Create(ctx context.Context, ownerID string, in entities.ListInput) (entities.ShoppingList, error)
	GetByID(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error)
	List(ctx context.Context, ownerID string, q ListQuery) (ListPage, error)
	Recent(ctx context.Context, ownerID string, limit int) ([]entities.ShoppingList, error)
	Stats(ctx context.Context, ownerID string) (OwnerStats, error)
	Analytics(ctx context.Context, ownerID string, from, to *time.Time) ([]CategoryAnalytics, error)
	UpdateList(ctx context.Context, ownerID, listID string, patch entities.ListPatch) (entities.ShoppingList, error)
	Delete(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error)
	AddItem(ctx context.Context, ownerID, listID string, in entities.ItemInput) (entities.ShoppingList, error)
	UpdateItem(ctx context.Context, ownerID, listID, itemID string, patch entities.ItemPatch) (entities.ShoppingList, error)
	ToggleItem(ctx context.Context, ownerID, listID, itemID string) (entities.ShoppingList, error)
	RemoveItem(ctx context.Context, ownerID, listID, itemID string) (entities.ShoppingList, error)
	BulkUpdateItems(ctx context.Context, ownerID, listID string, req entities.BulkRequest) (entities.ShoppingList, int, error)
	Archive(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error)
	Duplicate(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error)
}

type ShoppingListUseCase struct {
	repo      interfaces.IShoppingListRepository
	publisher interfaces.IShoppingListEventPublisher
	log       *logger.Logger
	tracer    trace.Tracer
	retries   int
	now       func() time.Time
}

var _ IShoppingListUseCase = (*ShoppingListUseCase)(nil)

// NewShoppingListUseCase wires the use case. publisher and log may be nil.
// conflictRetries is the number of extra attempts after a version conflict.
func NewShoppingListUseCase(repo interfaces.IShoppingListRepository, publisher interfaces.IShoppingListEventPublisher, log *logger.Logger, conflictRetries int) *ShoppingListUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	if conflictRetries < 0 {
		conflictRetries = 0
	}
	return &ShoppingListUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log,
		tracer:    otel.Tracer("productivity_api/internal/usecase"),
		retries:   conflictRetries,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// mutation changes a loaded aggregate in place. It may run more than once
// when a concurrent write wins, so it must only depend on its arguments.
type mutation func(l *entities.ShoppingList, now time.Time) error

func (u *ShoppingListUseCase) Create(ctx context.Context, ownerID string, in entities.ListInput) (entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, "Create", "")
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	log := u.log.With("op", "create", "owner_id", ownerID)

	now := u.now()
	l, err := entities.NewShoppingList(ownerID, in, now)
	if err != nil {
		log.Debug("shopping list rejected", "error", err)
		return entities.ShoppingList{}, err
	}

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		recordError(span, err)
		log.Error("failed to create shopping list", "error", err)
		return entities.ShoppingList{}, err
	}
	log.Info("shopping list created", "list_id", created.ID, "items", created.TotalItems())
	u.publish(ctx, entities.NewShoppingListEvent(entities.EventShoppingListCreated, created, now))
	return created, nil
}

func (u *ShoppingListUseCase) GetByID(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, "GetByID", listID)
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	listID, err = normalizeID(listID, ErrInvalidListID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	l, err := u.load(ctx, ownerID, listID)
	if err != nil {
		recordError(span, err)
	}
	return l, err
}

func (u *ShoppingListUseCase) UpdateList(ctx context.Context, ownerID, listID string, patch entities.ListPatch) (entities.ShoppingList, error) {
	evt := entities.EventShoppingListUpdated
	if patch.Status != nil && *patch.Status == entities.ListStatusArchived {
		evt = entities.EventShoppingListArchived
	}
	return u.mutateAndPublish(ctx, "UpdateList", ownerID, listID, evt, func(l *entities.ShoppingList, now time.Time) error {
		return l.ApplyPatch(patch, now)
	})
}

func (u *ShoppingListUseCase) AddItem(ctx context.Context, ownerID, listID string, in entities.ItemInput) (entities.ShoppingList, error) {
	return u.mutateAndPublish(ctx, "AddItem", ownerID, listID, entities.EventShoppingListUpdated, func(l *entities.ShoppingList, now time.Time) error {
		_, err := l.AddItem(in, now)
		return err
	})
}

func (u *ShoppingListUseCase) UpdateItem(ctx context.Context, ownerID, listID, itemID string, patch entities.ItemPatch) (entities.ShoppingList, error) {
	itemID, err := normalizeID(itemID, ErrInvalidItemID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	return u.mutateAndPublish(ctx, "UpdateItem", ownerID, listID, entities.EventShoppingListUpdated, func(l *entities.ShoppingList, now time.Time) error {
		_, err := l.UpdateItem(itemID, patch, now)
		return err
	})
}

func (u *ShoppingListUseCase) ToggleItem(ctx context.Context, ownerID, listID, itemID string) (entities.ShoppingList, error) {
	itemID, err := normalizeID(itemID, ErrInvalidItemID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	return u.mutateAndPublish(ctx, "ToggleItem", ownerID, listID, entities.EventShoppingListUpdated, func(l *entities.ShoppingList, now time.Time) error {
		_, err := l.ToggleItem(itemID, now)
		return err
	})
}

func (u *ShoppingListUseCase) RemoveItem(ctx context.Context, ownerID, listID, itemID string) (entities.ShoppingList, error) {
	itemID, err := normalizeID(itemID, ErrInvalidItemID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	return u.mutateAndPublish(ctx, "RemoveItem", ownerID, listID, entities.EventShoppingListUpdated, func(l *entities.ShoppingList, now time.Time) error {
		return l.RemoveItem(itemID, now)
	})
}

// BulkUpdateItems applies one action to several items in a single write and
// returns the updated list with the number of items actually changed.
func (u *ShoppingListUseCase) BulkUpdateItems(ctx context.Context, ownerID, listID string, req entities.BulkRequest) (entities.ShoppingList, int, error) {
	affected := 0
	stored, err := u.mutate(ctx, "BulkUpdateItems", ownerID, listID, func(l *entities.ShoppingList, now time.Time) error {
		n, err := l.ApplyBulk(req, now)
		affected = n
		return err
	})
	if err != nil {
		return entities.ShoppingList{}, 0, err
	}
	evt := entities.NewShoppingListEvent(entities.EventShoppingListItemsBulkSet, stored, stored.UpdatedAt)
	evt.Affected = affected
	u.publish(ctx, evt)
	return stored, affected, nil
}

func (u *ShoppingListUseCase) Archive(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error) {
	return u.mutateAndPublish(ctx, "Archive", ownerID, listID, entities.EventShoppingListArchived, func(l *entities.ShoppingList, now time.Time) error {
		l.Archive(now)
		return nil
	})
}

// Duplicate stores a fresh copy of the list, with every item reset, under a new id.
func (u *ShoppingListUseCase) Duplicate(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, "Duplicate", listID)
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	listID, err = normalizeID(listID, ErrInvalidListID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	log := u.log.With("op", "duplicate", "owner_id", ownerID, "list_id", listID)

	src, err := u.load(ctx, ownerID, listID)
	if err != nil {
		recordError(span, err)
		return entities.ShoppingList{}, err
	}

	now := u.now()
	created, err := u.repo.Create(ctx, src.Duplicate(now))
	if err != nil {
		recordError(span, err)
		log.Error("failed to store duplicated shopping list", "error", err)
		return entities.ShoppingList{}, err
	}
	log.Info("shopping list duplicated", "new_list_id", created.ID)
	u.publish(ctx, entities.NewShoppingListEvent(entities.EventShoppingListDuplicated, created, now))
	return created, nil
}

// Delete removes the list and returns what was stored.
func (u *ShoppingListUseCase) Delete(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, "Delete", listID)
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	listID, err = normalizeID(listID, ErrInvalidListID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	log := u.log.With("op", "delete", "owner_id", ownerID, "list_id", listID)

	for attempt := 0; ; attempt++ {
		current, err := u.load(ctx, ownerID, listID)
		if err != nil {
			recordError(span, err)
			return entities.ShoppingList{}, err
		}

		err = u.repo.Delete(ctx, listID, current.Version)
		switch {
		case err == nil:
			log.Info("shopping list deleted", "version", current.Version)
			u.publish(ctx, entities.NewShoppingListEvent(entities.EventShoppingListDeleted, current, u.now()))
			return current, nil
		case !errors.Is(err, interfaces.ErrVersionConflict):
			recordError(span, err)
			log.Error("failed to delete shopping list", "error", err)
			return entities.ShoppingList{}, err
		case attempt >= u.retries:
			recordError(span, ErrShoppingListConflict)
			log.Warn("giving up after version conflicts", "attempts", attempt+1)
			return entities.ShoppingList{}, ErrShoppingListConflict
		}
		log.Debug("version conflict, reloading", "attempt", attempt+1)
	}
}

func (u *ShoppingListUseCase) mutateAndPublish(ctx context.Context, op, ownerID, listID string, evt entities.ShoppingListEventType, fn mutation) (entities.ShoppingList, error) {
	stored, err := u.mutate(ctx, op, ownerID, listID, fn)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	u.publish(ctx, entities.NewShoppingListEvent(evt, stored, stored.UpdatedAt))
	return stored, nil
}

// mutate runs load, fn, conditional replace. A version conflict reloads the
// list and runs fn again on the fresh copy, at most u.retries more times.
func (u *ShoppingListUseCase) mutate(ctx context.Context, op, ownerID, listID string, fn mutation) (entities.ShoppingList, error) {
	ctx, span := u.startSpan(ctx, op, listID)
	defer span.End()

	ownerID, err := normalizeOwnerID(ownerID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	listID, err = normalizeID(listID, ErrInvalidListID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	log := u.log.With("op", op, "owner_id", ownerID, "list_id", listID)

	for attempt := 0; ; attempt++ {
		current, err := u.load(ctx, ownerID, listID)
		if err != nil {
			recordError(span, err)
			return entities.ShoppingList{}, err
		}

		next := current.Clone()
		if err := fn(&next, u.now()); err != nil {
			log.Debug("mutation rejected", "error", err)
			return entities.ShoppingList{}, err
		}

		stored, err := u.repo.Replace(ctx, next)
		switch {
		case err == nil:
			span.SetAttributes(attribute.Int64("list.version", stored.Version), attribute.Int("list.attempts", attempt+1))
			log.Info("shopping list updated", "version", stored.Version, "status", stored.Status)
			return stored, nil
		case !errors.Is(err, interfaces.ErrVersionConflict):
			recordError(span, err)
			log.Error("failed to store shopping list", "error", err)
			return entities.ShoppingList{}, err
		case attempt >= u.retries:
			recordError(span, ErrShoppingListConflict)
			log.Warn("giving up after version conflicts", "attempts", attempt+1)
			return entities.ShoppingList{}, ErrShoppingListConflict
		}
		log.Debug("version conflict, reloading", "attempt", attempt+1, "loaded_version", current.Version)
	}
}

func (u *ShoppingListUseCase) load(ctx context.Context, ownerID, listID string) (entities.ShoppingList, error) {
	l, err := u.repo.GetByID(ctx, listID)
	if err != nil {
		return entities.ShoppingList{}, err
	}
	if l.ID == "" || l.OwnerID != ownerID {
		return entities.ShoppingList{}, ErrShoppingListNotFound
	}
	return l, nil
}

// publish never fails the request; the write is already committed.
func (u *ShoppingListUseCase) publish(ctx context.Context, evt entities.ShoppingListEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, evt); err != nil {
		u.log.Warn("failed to publish shopping list event", "type", evt.Type, "list_id", evt.ListID, "error", err)
	}
}

func (u *ShoppingListUseCase) startSpan(ctx context.Context, op, listID string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("shopping.op", op)}
	if listID != "" {
		attrs = append(attrs, attribute.String("list.id", strings.TrimSpace(listID)))
	}
	return u.tracer.Start(ctx, "ShoppingListUseCase."+op, trace.WithAttributes(attrs...))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func normalizeOwnerID(ownerID string) (string, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", ErrInvalidOwnerID
	}
	return ownerID, nil
}

// normalizeID trims id and requires a UUID; malformed ids are rejected before
// any lookup.
func normalizeID(id string, invalid error) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", invalid
	}
	return id, nil
}
