// Package cache is the session collection cache: the last successful envelope
// per query key, mirrored from the records service. Entries are best-effort
// copies; every write goes through Set/Update so readers only ever see whole
// envelopes, and Update on an absent entry is a no-op rather than an error.
package cache

import (
	"context"
	"encoding/json"

	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
)

// Store holds raw JSON envelopes addressed by Key.
type Store interface {
	// Get returns the stored envelope bytes, or ok=false if the key was
	// never set or has been invalidated.
	Get(ctx context.Context, key Key) (raw []byte, ok bool, err error)

	// Set unconditionally overwrites the entry.
	Set(ctx context.Context, key Key, raw []byte) error

	// Update applies fn to the current value and stores the result. When the
	// entry is absent fn is not called and no entry is created.
	Update(ctx context.Context, key Key, fn func(raw []byte) ([]byte, error)) error

	// Invalidate drops the entry so the next read misses.
	Invalidate(ctx context.Context, key Key) error

	// InvalidateEntity drops every entry of one entity, including
	// preload/select variants.
	InvalidateEntity(ctx context.Context, entity string) error

	// InvalidateVariants drops the preload/select variants of one entity
	// but leaves the base list entry alone. Used after the base entry has
	// just been patched in place.
	InvalidateVariants(ctx context.Context, entity string) error
}

// GetList reads and decodes a cached collection envelope.
func GetList[E any](ctx context.Context, s Store, key Key) (*envelope.Envelope[[]E], bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var env envelope.Envelope[[]E]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, err
	}
	return &env, true, nil
}

// SetList encodes and stores a collection envelope.
func SetList[E any](ctx context.Context, s Store, key Key, env *envelope.Envelope[[]E]) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// UpdateList applies a collection transform to a cached envelope. fn receives
// the decoded data slice and returns the replacement; the rest of the envelope
// is preserved. Absent entries are left absent.
func UpdateList[E any](ctx context.Context, s Store, key Key, fn func(items []E) []E) error {
	return s.Update(ctx, key, func(raw []byte) ([]byte, error) {
		var env envelope.Envelope[[]E]
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, err
		}
		env.Data = fn(env.Data)
		return json.Marshal(env)
	})
}
