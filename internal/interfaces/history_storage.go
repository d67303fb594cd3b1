package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/specula/internal/models"
)

// ErrRecordNotFound is returned when no daily record exists for a date
var ErrRecordNotFound = errors.New("daily record not found")

// HistoryStorage defines persistence operations for daily observation records.
// One record per calendar date; writes for an existing date update in place.
type HistoryStorage interface {
	// Upsert inserts or updates the record for its date.
	// Returns true if a new record was created, false if an existing one was updated.
	Upsert(ctx context.Context, record *models.DailyRecord) (bool, error)

	// Get retrieves the record for a date (DateLayout format), ErrRecordNotFound if absent.
	Get(ctx context.Context, date string) (*models.DailyRecord, error)

	// List returns all records sorted by date ascending.
	List(ctx context.Context) ([]models.DailyRecord, error)

	// ListRange returns records with from <= date < to, sorted by date ascending.
	ListRange(ctx context.Context, from, to string) ([]models.DailyRecord, error)

	// DeleteBefore removes all records dated strictly before the cutoff date.
	// Returns the number of records removed.
	DeleteBefore(ctx context.Context, cutoff string) (int, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)
}
