// Package refresh periodically drops every cached collection so embedded
// counts that slipped past the patch rules cannot outlive one sweep interval.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/pkg/logger"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

var allEntities = []string{
	entity.TypeDepartment,
	entity.TypeInstructor,
	entity.TypeStudent,
	entity.TypeClass,
	entity.TypeSubject,
	entity.TypeAssignment,
	entity.TypeRegistration,
}

type Sweeper struct {
	store cache.Store
	cron  *cron.Cron
	log   zerolog.Logger
}

func NewSweeper(store cache.Store) *Sweeper {
	return &Sweeper{
		store: store,
		cron:  cron.New(),
		log:   logger.Get(),
	}
}

// Start schedules the sweep. Interval must be positive.
func (s *Sweeper) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", interval)
	}
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	ctx := context.Background()
	for _, name := range allEntities {
		if err := s.store.InvalidateEntity(ctx, name); err != nil {
			s.log.Error().Err(err).Str("entity", name).Msg("cache refresh sweep failed")
		}
	}
	s.log.Debug().Msg("cache refresh sweep completed")
}
