// File: /services/reconciler.go
package services

import (
	"tripjournal-api/apperrors"
)

// ChildRepository is the slice of repository behavior reconciliation
// needs. The location and route repositories both satisfy it.
type ChildRepository[E any] interface {
	Create(child *E) error
	UpdateByID(id string, patch map[string]interface{}) (*E, error)
	DeleteMany(ids []string) error
}

// ChildPatch targets an existing child by id with a column patch.
type ChildPatch struct {
	ID    string
	Patch map[string]interface{}
}

// DesiredChild is one submitted item in a reconciliation request.
// Exactly one of the two fields is set: Update for an item that should
// patch an existing child, Create for a brand new one.
type DesiredChild[E any] struct {
	Update *ChildPatch
	Create *E
}

// ReconcileChildren diffs a story's persisted child set against the
// full desired set submitted by the caller. Children whose ids are
// absent from the desired set are deleted in one bulk statement,
// desired items carrying an id are patched, and id-less items are
// created. The result is the updated children followed by the created
// ones; callers must not rely on array position for identity.
//
// An update targeting an id that no longer exists is dropped without
// failing the batch: the client raced a concurrent delete and the row
// it wanted to touch is gone either way. Any other repository error
// aborts the remaining work and propagates; already-applied writes are
// not rolled back.
func ReconcileChildren[E any](repo ChildRepository[E], existing []string, desired []DesiredChild[E]) ([]E, error) {
	desiredIDs := make(map[string]bool, len(desired))
	for _, d := range desired {
		if d.Update != nil {
			desiredIDs[d.Update.ID] = true
		}
	}

	var toDelete []string
	for _, id := range existing {
		if !desiredIDs[id] {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := repo.DeleteMany(toDelete); err != nil {
			return nil, err
		}
	}

	result := make([]E, 0, len(desired))
	for _, d := range desired {
		if d.Update == nil {
			continue
		}
		updated, err := repo.UpdateByID(d.Update.ID, d.Update.Patch)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		result = append(result, *updated)
	}

	for _, d := range desired {
		if d.Create == nil {
			continue
		}
		if err := repo.Create(d.Create); err != nil {
			return nil, err
		}
		result = append(result, *d.Create)
	}

	return result, nil
}
