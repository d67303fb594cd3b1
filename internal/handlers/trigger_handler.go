package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
	"github.com/ternarybob/specula/internal/services/triggers"
)

// TriggerHandler handles HTTP requests for trigger rule previews
type TriggerHandler struct {
	detector *triggers.Detector
	logger   arbor.ILogger
}

// NewTriggerHandler creates a new TriggerHandler
func NewTriggerHandler(detector *triggers.Detector, logger arbor.ILogger) *TriggerHandler {
	return &TriggerHandler{
		detector: detector,
		logger:   logger,
	}
}

// PreviewHandler handles GET /api/triggers/preview. It evaluates the
// trigger rules against supplied ratios without reading or writing any
// persisted state, so callers can explore the thresholds.
func (h *TriggerHandler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	ratios := models.BatchRatios{
		ZeroRatio:   GetFloatParam(r, "zero_ratio", 0),
		Plus2Ratio:  GetFloatParam(r, "plus2_ratio", 0),
		Minus2Ratio: GetFloatParam(r, "minus2_ratio", 0),
		MacroRatio:  GetFloatParam(r, "macro_ratio", 0),
	}
	highZeroDays := GetIntParam(r, "high_zero_days", 0)

	fired := h.detector.Detect(ratios, highZeroDays)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ratios":         ratios,
		"high_zero_days": highZeroDays,
		"triggers":       fired,
		"fired_count":    len(fired),
	})
}
