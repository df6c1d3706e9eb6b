package cachesync

import (
	"context"
	"errors"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/pkg/logger"
	"github.com/rs/zerolog"
)

// Engine looks up and runs the patch rules for each confirmed mutation.
// Callers invoke Apply synchronously after the success response and before
// replying to the dashboard; the engine never talks to the records service.
type Engine struct {
	store cache.Store
	rules map[ruleKey][]PatchFunc
	log   zerolog.Logger
}

func NewEngine(store cache.Store) *Engine {
	return &Engine{
		store: store,
		rules: defaultRules(),
		log:   logger.Get(),
	}
}

// Apply runs every rule registered for the mutation, in table order. A patch
// hitting an absent entry is a no-op; a patch failing (redis backend) is
// logged, the remaining patches still run, and the joined error is returned.
func (e *Engine) Apply(ctx context.Context, m Mutation) error {
	patches, ok := e.rules[ruleKey{Entity: m.Entity, Action: m.Action}]
	if !ok {
		e.log.Warn().Str("entity", m.Entity).Str("action", string(m.Action)).
			Msg("no cache rules registered for mutation")
		return nil
	}

	var errs []error
	for _, patch := range patches {
		if err := patch(ctx, e.store, m); err != nil {
			e.log.Error().Err(err).Str("entity", m.Entity).Str("action", string(m.Action)).
				Msg("cache patch failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
