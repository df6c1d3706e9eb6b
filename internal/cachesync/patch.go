package cachesync

import (
	"context"
	"fmt"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
)

// PatchFunc applies one side effect of a mutation to the store. Patches are
// total: an absent target entry is a legal input and makes the patch a no-op.
type PatchFunc func(ctx context.Context, store cache.Store, m Mutation) error

func record[E entity.Record](rec entity.Record, m Mutation) (E, error) {
	typed, ok := rec.(E)
	if !ok {
		var zero E
		return zero, fmt.Errorf("cachesync: %s %s carries %T, want %T", m.Entity, m.Action, rec, zero)
	}
	return typed, nil
}

// appendOwn appends the created record to its entity's flat list.
// Always append, never prepend, so the resulting order is deterministic.
func appendOwn[E entity.Record]() PatchFunc {
	return func(ctx context.Context, store cache.Store, m Mutation) error {
		rec, err := record[E](m.After, m)
		if err != nil {
			return err
		}
		return cache.UpdateList(ctx, store, cache.ListKey(m.Entity), func(items []E) []E {
			return append(items, rec)
		})
	}
}

// replaceOwn swaps the matching-id element for the updated record. Every
// other element is carried over unchanged.
func replaceOwn[E entity.Record]() PatchFunc {
	return func(ctx context.Context, store cache.Store, m Mutation) error {
		rec, err := record[E](m.After, m)
		if err != nil {
			return err
		}
		id := rec.RecordID()
		return cache.UpdateList(ctx, store, cache.ListKey(m.Entity), func(items []E) []E {
			out := make([]E, len(items))
			copy(out, items)
			for i := range out {
				if out[i].RecordID() == id {
					out[i] = rec
				}
			}
			return out
		})
	}
}

// removeOwn drops the deleted id from its entity's flat list.
func removeOwn[E entity.Record]() PatchFunc {
	return func(ctx context.Context, store cache.Store, m Mutation) error {
		id := m.Before.RecordID()
		return cache.UpdateList(ctx, store, cache.ListKey(m.Entity), func(items []E) []E {
			out := make([]E, 0, len(items))
			for _, item := range items {
				if item.RecordID() != id {
					out = append(out, item)
				}
			}
			return out
		})
	}
}

// patchParent rewrites the one element of the target collection whose id
// matches parentID, leaving all siblings untouched.
func patchParent[P entity.Record](targetEntity string, parentID func(m Mutation) string, apply func(parent P, m Mutation) P) PatchFunc {
	return func(ctx context.Context, store cache.Store, m Mutation) error {
		id := parentID(m)
		return cache.UpdateList(ctx, store, cache.ListKey(targetEntity), func(items []P) []P {
			out := make([]P, len(items))
			copy(out, items)
			for i := range out {
				if out[i].RecordID() == id {
					out[i] = apply(out[i], m)
				}
			}
			return out
		})
	}
}

// invalidateEntity drops every cached entry of the target entity. The cheap
// strategy for rules where deriving the exact patch is error-prone; the next
// read refetches.
func invalidateEntity(targetEntity string) PatchFunc {
	return func(ctx context.Context, store cache.Store, _ Mutation) error {
		return store.InvalidateEntity(ctx, targetEntity)
	}
}

// invalidateVariants drops the preload/select variants of the mutated entity
// after its base list entry has been patched; the variants would otherwise go
// stale with no patch targeting them.
func invalidateVariants() PatchFunc {
	return func(ctx context.Context, store cache.Store, m Mutation) error {
		return store.InvalidateVariants(ctx, m.Entity)
	}
}
