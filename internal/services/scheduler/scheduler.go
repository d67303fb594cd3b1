// Package scheduler runs daily store maintenance: pruning daily records
// past the retention window and compacting the value log.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/common"
	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
	"github.com/ternarybob/specula/internal/services/history"
	"github.com/ternarybob/specula/internal/storage/badger"
)

// Scheduler handles periodic storage maintenance
type Scheduler struct {
	storage interfaces.HistoryStorage
	db      *badger.BadgerDB
	cron    *cron.Cron
	logger  arbor.ILogger
}

// NewScheduler creates a new maintenance scheduler
func NewScheduler(storage interfaces.HistoryStorage, db *badger.BadgerDB, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		storage: storage,
		db:      db,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
	}
}

// Start begins scheduled maintenance. Schedule uses the six-field cron
// format with a seconds column.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		// Default: daily at 06:30, after overnight sessions close
		schedule = "0 30 6 * * *"
	}

	_, err := s.cron.AddFunc(schedule, func() {
		s.runMaintenance()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", schedule).
		Msg("Maintenance scheduler started")

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("Maintenance scheduler stopped")
}

// RunNow triggers an immediate maintenance run
func (s *Scheduler) RunNow() {
	s.logger.Info().Msg("Triggering immediate maintenance run")
	go s.runMaintenance()
}

func (s *Scheduler) runMaintenance() {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := common.GetStackTrace()
			s.logger.Error().
				Str("panic", fmt.Sprintf("%v", r)).
				Str("stack", stackTrace).
				Msg("Maintenance run panicked - writing crash file")
			common.WriteCrashFile(r, stackTrace)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.logger.Info().Msg("Starting scheduled maintenance")

	cutoff := time.Now().AddDate(0, 0, -history.RetentionDays).Format(models.DateLayout)
	removed, err := s.storage.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("cutoff", cutoff).
			Msg("Scheduled history pruning failed")
	}

	s.db.RunGC()

	s.logger.Info().
		Int("pruned", removed).
		Str("cutoff", cutoff).
		Msg("Scheduled maintenance completed")
}
