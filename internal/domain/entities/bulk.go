package entities

import (
	"fmt"
	"strings"
	"time"
)

type BulkAction string

const (
	BulkActionComplete   BulkAction = "complete"
	BulkActionUncomplete BulkAction = "uncomplete"
	BulkActionDelete     BulkAction = "delete"
	BulkActionUpdate     BulkAction = "update"
)

func (a BulkAction) Valid() bool {
	switch a {
	case BulkActionComplete, BulkActionUncomplete, BulkActionDelete, BulkActionUpdate:
		return true
	}
	return false
}

// BulkRequest applies one action to several items of the same list.
// Patch is required for BulkActionUpdate and ignored otherwise.
type BulkRequest struct {
	Action  BulkAction
	ItemIDs []string
	Patch   *ItemPatch
}

// ApplyBulk runs the request against the list as one unit and returns how
// many items were actually changed.
//
// Ids are handled in request order; unknown ids are skipped and repeated ids
// count once. complete/uncomplete do not count items already in the target
// state; update counts every matched item, even for an empty patch. Everything that can be rejected is checked before the first item is
// touched, then Recompute runs once at the end.
func (l *ShoppingList) ApplyBulk(req BulkRequest, now time.Time) (int, error) {
	ids := uniqueIDs(req.ItemIDs)

	var errs fieldErrors
	if !req.Action.Valid() {
		errs.add("action", fmt.Sprintf("unsupported action %q, allowed: complete, uncomplete, delete, update", req.Action))
	}
	if len(ids) == 0 {
		errs.add("item_ids", "at least one item id is required")
	}
	if req.Action == BulkActionUpdate && req.Patch == nil {
		errs.add("update_data", "is required for update action")
	}
	if err := errs.err(); err != nil {
		return 0, err
	}
	if req.Action == BulkActionUpdate {
		if err := l.validateBulkPatch(ids, *req.Patch); err != nil {
			return 0, err
		}
	}

	affected := 0
	for _, id := range ids {
		if req.Action == BulkActionDelete {
			if l.Items.Remove(id) {
				affected++
			}
			continue
		}

		it, ok := l.Items.Get(id)
		if !ok {
			continue
		}
		switch req.Action {
		case BulkActionComplete:
			if !it.Completed {
				setCompletion(it, true, now)
				affected++
			}
		case BulkActionUncomplete:
			if it.Completed {
				setCompletion(it, false, now)
				affected++
			}
		case BulkActionUpdate:
			next := req.Patch.merged(*it)
			next.UpdatedAt = now
			*it = next
			affected++
		}
	}

	l.Recompute(now)
	return affected, nil
}

// validateBulkPatch checks the patch against every targeted item so a batch
// is never applied halfway.
func (l *ShoppingList) validateBulkPatch(ids []string, patch ItemPatch) error {
	var errs fieldErrors
	for _, id := range ids {
		it, ok := l.Items.Get(id)
		if !ok {
			continue
		}
		validateItem(patch.merged(*it), fmt.Sprintf("items[%s].", id), &errs)
	}
	return errs.err()
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
