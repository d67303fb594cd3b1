package models

import (
	"encoding/gob"
	"time"
)

func init() {
	// Register persisted types with gob for BadgerDB serialization
	gob.Register(DailyRecord{})
	gob.Register([]DailyRecord{})
}

// DateLayout is the calendar-date key format used throughout the
// history store. Lexical order equals chronological order.
const DateLayout = "2006-01-02"

// DailyRecord is the one-per-calendar-day observation snapshot owned by
// the history store. The Date string is the storage key; writes for an
// existing date update in place.
type DailyRecord struct {
	Date        string    `json:"date" badgerhold:"key"`
	TotalScore  float64   `json:"total_score"`
	ZeroRatio   float64   `json:"zero_ratio"`
	Plus2Ratio  float64   `json:"plus2_ratio"`
	Minus2Ratio float64   `json:"minus2_ratio"`
	NewsCount   int       `json:"news_count"`
	MacroRatio  float64   `json:"macro_ratio"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Day parses the record date. A record written by this system always
// parses; the zero time is returned for a malformed date.
func (r DailyRecord) Day() time.Time {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
