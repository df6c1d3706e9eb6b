// Package collection implements the fetch/mutate cycle shared by every
// records screen: serve lists from the session cache, fall through to the
// records service on a miss, and after every confirmed mutation hand the
// result to the cachesync engine before replying.
package collection

import (
	"context"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/cachesync"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/logger"
	"github.com/rs/zerolog"
)

type Service[E entity.Record] struct {
	entityType string
	resource   *upstream.Resource[E]
	store      cache.Store
	syncer     *cachesync.Engine
	log        zerolog.Logger
}

func NewService[E entity.Record](entityType string, resource *upstream.Resource[E], store cache.Store, syncer *cachesync.Engine) *Service[E] {
	return &Service[E]{
		entityType: entityType,
		resource:   resource,
		store:      store,
		syncer:     syncer,
		log:        logger.Get().With().Str("collection", entityType).Logger(),
	}
}

// List serves the collection from the cache when present, otherwise fetches
// upstream and stores the envelope under the exact query key. A cache backend
// error degrades to a plain fetch.
func (s *Service[E]) List(ctx context.Context, opts upstream.ListOptions) ([]E, error) {
	key := cache.Key{Entity: s.entityType, Preload: opts.Preload, Select: opts.Select}

	env, ok, err := cache.GetList[E](ctx, s.store, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("cache read failed, fetching upstream")
	}
	if ok {
		return env.Data, nil
	}

	env, err = s.resource.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := cache.SetList(ctx, s.store, key, env); err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("cache write failed")
	}
	return env.Data, nil
}

// Cached returns the flat list when it is in the cache, without fetching.
func (s *Service[E]) Cached(ctx context.Context) ([]E, bool) {
	env, ok, err := cache.GetList[E](ctx, s.store, cache.ListKey(s.entityType))
	if err != nil || !ok {
		return nil, false
	}
	return env.Data, true
}

// Find looks the record up in the cached flat list. It never fetches; a miss
// simply reports the prior state as unknown.
func (s *Service[E]) Find(ctx context.Context, id string) (E, bool) {
	var zero E
	items, ok := s.Cached(ctx)
	if !ok {
		return zero, false
	}
	for _, rec := range items {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	return zero, false
}

// Create posts the payload and, on confirmation, runs the patch rules with
// the authoritative record the server returned.
func (s *Service[E]) Create(ctx context.Context, body any) (E, error) {
	var zero E
	env, err := s.resource.Create(ctx, body)
	if err != nil {
		return zero, err
	}
	if err := s.syncer.Apply(ctx, cachesync.Created(s.entityType, env.Data)); err != nil {
		s.log.Warn().Err(err).Msg("cache sync incomplete after create")
	}
	return env.Data, nil
}

// Update puts the payload and patches with the updated record. The prior
// state comes from the cached flat list when it is there; rules that need it
// and do not get it fall back to invalidation.
func (s *Service[E]) Update(ctx context.Context, id string, body any) (E, error) {
	var zero E
	var before entity.Record
	if prior, ok := s.Find(ctx, id); ok {
		before = prior
	}

	env, err := s.resource.Update(ctx, id, body)
	if err != nil {
		return zero, err
	}
	if err := s.syncer.Apply(ctx, cachesync.Updated(s.entityType, before, env.Data)); err != nil {
		s.log.Warn().Err(err).Msg("cache sync incomplete after update")
	}
	return env.Data, nil
}

// Delete removes the record upstream, then patches using the cached prior
// record, or just its id when the list was never fetched.
func (s *Service[E]) Delete(ctx context.Context, id string) error {
	var before entity.Record = cachesync.Ref(id)
	known := false
	if prior, ok := s.Find(ctx, id); ok {
		before = prior
		known = true
	}

	if err := s.resource.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.syncer.Apply(ctx, cachesync.Deleted(s.entityType, before, known)); err != nil {
		s.log.Warn().Err(err).Msg("cache sync incomplete after delete")
	}
	return nil
}
