package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
	"github.com/ternarybob/specula/internal/services/history"
)

// HistoryHandler handles HTTP requests for daily history
type HistoryHandler struct {
	historyService *history.Service
	storage        interfaces.HistoryStorage
	logger         arbor.ILogger
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyService *history.Service, storage interfaces.HistoryStorage, logger arbor.ILogger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		storage:        storage,
		logger:         logger,
	}
}

// ListHandler handles GET /api/history. The optional days parameter
// bounds how far back records are returned; today's record is included
// when present.
func (h *HistoryHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	days := GetIntParam(r, "days", history.RetentionDays)
	if days <= 0 || days > history.RetentionDays {
		days = history.RetentionDays
	}

	records, err := h.storage.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list daily history")
		WriteError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days).Format(models.DateLayout)
	filtered := make([]models.DailyRecord, 0, len(records))
	for _, record := range records {
		if record.Date >= cutoff {
			filtered = append(filtered, record)
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"records": filtered,
		"count":   len(filtered),
		"days":    days,
	})
}

// ComparisonHandler handles GET /api/history/comparison. The current
// side of the comparison is today's recorded aggregate; without a run
// recorded today there is nothing to compare.
func (h *HistoryHandler) ComparisonHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	today := time.Now().Format(models.DateLayout)
	record, err := h.storage.Get(r.Context(), today)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		WriteError(w, http.StatusNotFound, "No analysis recorded today")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load today's record")
		WriteError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	aggregate := models.AggregateScores{
		TotalScore: record.TotalScore,
		NewsCount:  record.NewsCount,
	}
	ratios := models.BatchRatios{
		ZeroRatio:   record.ZeroRatio,
		Plus2Ratio:  record.Plus2Ratio,
		Minus2Ratio: record.Minus2Ratio,
		MacroRatio:  record.MacroRatio,
	}

	comparison, err := h.historyService.Get7DayComparison(r.Context(), aggregate, ratios)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to build history comparison")
		WriteError(w, http.StatusInternalServerError, "Failed to build comparison")
		return
	}

	WriteJSON(w, http.StatusOK, comparison)
}
