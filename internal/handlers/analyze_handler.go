package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
	"github.com/ternarybob/specula/internal/services/analysis"
)

// AnalyzeRequest is the request schema for an observation run.
type AnalyzeRequest struct {
	Items []AnalyzeItem `json:"items" validate:"omitempty,dive"`
}

// AnalyzeItem is one submitted news item. Origin defaults to domestic
// when omitted; text may be empty, in which case the item is skipped
// rather than rejecting the whole batch.
type AnalyzeItem struct {
	Text     string            `json:"text"`
	Origin   string            `json:"origin" validate:"omitempty,oneof=domestic foreign"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AnalyzeHandler handles HTTP requests for analysis runs
type AnalyzeHandler struct {
	analysisService *analysis.Service
	validate        *validator.Validate
	logger          arbor.ILogger
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(analysisService *analysis.Service, logger arbor.ILogger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		validate:        validator.New(),
		logger:          logger,
	}
}

// AnalyzeHandler handles POST /api/analyze
func (h *AnalyzeHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	items := make([]models.NewsItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.NewsItem{
			Text:     item.Text,
			Origin:   models.Origin(item.Origin),
			Metadata: item.Metadata,
		})
	}

	result, err := h.analysisService.Analyze(r.Context(), items)
	if err != nil {
		h.logger.Error().Err(err).Msg("Analysis run failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
