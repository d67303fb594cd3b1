package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/common"
	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/services/alerts"
)

// StatusHandler handles HTTP requests for application status
type StatusHandler struct {
	storage   interfaces.HistoryStorage
	alertDet  *alerts.Detector
	startedAt time.Time
	logger    arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(storage interfaces.HistoryStorage, alertDet *alerts.Detector, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		storage:   storage,
		alertDet:  alertDet,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// GetStatusHandler handles GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	recordCount, err := h.storage.Count(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count daily records")
		recordCount = -1
	}

	status := map[string]interface{}{
		"status":          "running",
		"version":         common.GetVersion(),
		"uptime":          time.Since(h.startedAt).Round(time.Second).String(),
		"history_records": recordCount,
		"score_entries":   h.alertDet.HistoryLen(),
	}

	if ma, ok := h.alertDet.GetMovingAverage(alerts.MAWindow); ok {
		status["moving_average"] = ma
	}

	WriteJSON(w, http.StatusOK, status)
}
