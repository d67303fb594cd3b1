package badger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
)

// HistoryStorage implements the HistoryStorage interface for Badger.
// Records are keyed by calendar-date string, so a second write for the
// same date updates in place. The mutex serializes the read-modify-write
// cycle so a scheduled run overlapping a manual refresh cannot observe a
// partially written store.
type HistoryStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
	mu     sync.Mutex
}

// NewHistoryStorage creates a new HistoryStorage instance
func NewHistoryStorage(db *BadgerDB, logger arbor.ILogger) interfaces.HistoryStorage {
	return &HistoryStorage{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts or updates the record for its date.
func (s *HistoryStorage) Upsert(ctx context.Context, record *models.DailyRecord) (bool, error) {
	if record == nil {
		return false, fmt.Errorf("record must not be nil")
	}
	if record.Day().IsZero() {
		return false, fmt.Errorf("invalid record date %q", record.Date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing models.DailyRecord
	err := s.db.Store().Get(record.Date, &existing)
	isNew := err == badgerhold.ErrNotFound
	if err != nil && err != badgerhold.ErrNotFound {
		return false, fmt.Errorf("failed to check record existence: %w", err)
	}

	record.UpdatedAt = time.Now()
	if err := s.db.Store().Upsert(record.Date, record); err != nil {
		return false, fmt.Errorf("failed to upsert daily record: %w", err)
	}

	return isNew, nil
}

// Get retrieves the record for a date.
func (s *HistoryStorage) Get(ctx context.Context, date string) (*models.DailyRecord, error) {
	var record models.DailyRecord
	err := s.db.Store().Get(date, &record)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily record: %w", err)
	}
	return &record, nil
}

// List returns all records sorted by date ascending.
func (s *HistoryStorage) List(ctx context.Context) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := s.db.Store().Find(&records, badgerhold.Where("Date").Ne("").SortBy("Date"))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily records: %w", err)
	}
	return records, nil
}

// ListRange returns records with from <= date < to, sorted ascending.
// Date strings sort lexically in chronological order.
func (s *HistoryStorage) ListRange(ctx context.Context, from, to string) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := s.db.Store().Find(&records,
		badgerhold.Where("Date").Ge(from).And("Date").Lt(to).SortBy("Date"))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily records in range: %w", err)
	}
	return records, nil
}

// DeleteBefore removes all records dated strictly before the cutoff.
func (s *HistoryStorage) DeleteBefore(ctx context.Context, cutoff string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stale []models.DailyRecord
	err := s.db.Store().Find(&stale, badgerhold.Where("Date").Lt(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to find stale records: %w", err)
	}

	removed := 0
	for _, record := range stale {
		if err := s.db.Store().Delete(record.Date, &models.DailyRecord{}); err != nil {
			s.logger.Warn().Str("date", record.Date).Err(err).Msg("Failed to delete stale daily record")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Debug().
			Int("count", removed).
			Str("cutoff", cutoff).
			Msg("Pruned daily records past retention")
	}

	return removed, nil
}

// Count returns the total number of stored records.
func (s *HistoryStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.DailyRecord{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count daily records: %w", err)
	}
	return int(count), nil
}
