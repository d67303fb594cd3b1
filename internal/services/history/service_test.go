package history

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
)

// memStorage is an in-memory HistoryStorage for service-level tests.
type memStorage struct {
	records map[string]models.DailyRecord
}

func newMemStorage() *memStorage {
	return &memStorage{records: make(map[string]models.DailyRecord)}
}

func (m *memStorage) Upsert(ctx context.Context, record *models.DailyRecord) (bool, error) {
	_, exists := m.records[record.Date]
	record.UpdatedAt = time.Now()
	m.records[record.Date] = *record
	return !exists, nil
}

func (m *memStorage) Get(ctx context.Context, date string) (*models.DailyRecord, error) {
	record, ok := m.records[date]
	if !ok {
		return nil, interfaces.ErrRecordNotFound
	}
	return &record, nil
}

func (m *memStorage) List(ctx context.Context) ([]models.DailyRecord, error) {
	out := make([]models.DailyRecord, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *memStorage) ListRange(ctx context.Context, from, to string) ([]models.DailyRecord, error) {
	all, _ := m.List(ctx)
	out := make([]models.DailyRecord, 0, len(all))
	for _, record := range all {
		if record.Date >= from && record.Date < to {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memStorage) DeleteBefore(ctx context.Context, cutoff string) (int, error) {
	removed := 0
	for date := range m.records {
		if date < cutoff {
			delete(m.records, date)
			removed++
		}
	}
	return removed, nil
}

func (m *memStorage) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

func newTestService(storage interfaces.HistoryStorage, now time.Time) *Service {
	svc := NewService(storage, arbor.NewLogger())
	svc.now = func() time.Time { return now }
	return svc
}

func dateOffset(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(models.DateLayout)
}

func TestAddDailyRecord_UpsertsAndPrunes(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	svc := newTestService(storage, now)

	// A stale record outside the retention window
	stale := &models.DailyRecord{Date: dateOffset(now, -RetentionDays-1), TotalScore: 1}
	_, err := storage.Upsert(ctx, stale)
	require.NoError(t, err)

	err = svc.AddDailyRecord(ctx,
		models.AggregateScores{TotalScore: 2.5, NewsCount: 10},
		models.BatchRatios{ZeroRatio: 40, Plus2Ratio: 30, Minus2Ratio: 10, MacroRatio: 20})
	require.NoError(t, err)

	count, err := storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "stale record should be pruned on insert")

	today, err := storage.Get(ctx, now.Format(models.DateLayout))
	require.NoError(t, err)
	assert.Equal(t, 2.5, today.TotalScore)
	assert.Equal(t, 10, today.NewsCount)
	assert.Equal(t, 40.0, today.ZeroRatio)

	// A second write for the same day updates in place
	err = svc.AddDailyRecord(ctx,
		models.AggregateScores{TotalScore: -1, NewsCount: 3},
		models.BatchRatios{})
	require.NoError(t, err)

	count, err = storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	today, err = storage.Get(ctx, now.Format(models.DateLayout))
	require.NoError(t, err)
	assert.Equal(t, -1.0, today.TotalScore)
}

func TestGetLastNDays_ExcludesToday(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	svc := newTestService(storage, now)

	for _, offset := range []int{-8, -3, -1, 0} {
		_, err := storage.Upsert(ctx, &models.DailyRecord{Date: dateOffset(now, offset), TotalScore: float64(offset)})
		require.NoError(t, err)
	}

	records, err := svc.GetLastNDays(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, dateOffset(now, -3), records[0].Date)
	assert.Equal(t, dateOffset(now, -1), records[1].Date)
}

func TestGet7DayComparison(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	svc := newTestService(storage, now)

	// No history yet
	comparison, err := svc.Get7DayComparison(ctx,
		models.AggregateScores{TotalScore: 1},
		models.BatchRatios{ZeroRatio: 50})
	require.NoError(t, err)
	assert.False(t, comparison.HasHistory)
	assert.Equal(t, 0, comparison.DaysCount)

	records := []models.DailyRecord{
		{Date: dateOffset(now, -3), TotalScore: 2, ZeroRatio: 50, Plus2Ratio: 20, Minus2Ratio: 10},
		{Date: dateOffset(now, -2), TotalScore: 3, ZeroRatio: 40, Plus2Ratio: 30, Minus2Ratio: 5},
		{Date: dateOffset(now, -1), TotalScore: 2, ZeroRatio: 45, Plus2Ratio: 25, Minus2Ratio: 15},
	}
	for i := range records {
		_, err := storage.Upsert(ctx, &records[i])
		require.NoError(t, err)
	}

	comparison, err = svc.Get7DayComparison(ctx,
		models.AggregateScores{TotalScore: 1.5},
		models.BatchRatios{ZeroRatio: 60, Plus2Ratio: 10, Minus2Ratio: 20})
	require.NoError(t, err)

	assert.True(t, comparison.HasHistory)
	assert.Equal(t, 3, comparison.DaysCount)
	assert.Equal(t, 2.33, comparison.AvgTotalScore)
	assert.Equal(t, 45.0, comparison.AvgZeroRatio)
	assert.Equal(t, 25.0, comparison.AvgPlus2Ratio)
	assert.Equal(t, 10.0, comparison.AvgMinus2Ratio)
	assert.Equal(t, 1.5, comparison.CurrentTotalScore)
	assert.Equal(t, 60.0, comparison.CurrentZeroRatio)
}

func TestConsecutiveHighZeroDays(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []models.DailyRecord
		want    int
	}{
		{
			name: "unbroken run excluding today",
			records: []models.DailyRecord{
				{Date: dateOffset(now, -3), ZeroRatio: 60},
				{Date: dateOffset(now, -2), ZeroRatio: 85},
				{Date: dateOffset(now, -1), ZeroRatio: 90},
				{Date: dateOffset(now, 0), ZeroRatio: 95},
			},
			want: 2,
		},
		{
			name: "threshold is strict",
			records: []models.DailyRecord{
				{Date: dateOffset(now, -2), ZeroRatio: 80},
				{Date: dateOffset(now, -1), ZeroRatio: 81},
			},
			want: 1,
		},
		{
			name: "calendar gaps do not break the run",
			records: []models.DailyRecord{
				{Date: dateOffset(now, -10), ZeroRatio: 85},
				{Date: dateOffset(now, -1), ZeroRatio: 90},
			},
			want: 2,
		},
		{
			name:    "no records",
			records: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemStorage()
			svc := newTestService(storage, now)
			for i := range tt.records {
				_, err := storage.Upsert(ctx, &tt.records[i])
				require.NoError(t, err)
			}

			got, err := svc.ConsecutiveHighZeroDays(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
