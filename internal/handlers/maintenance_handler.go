package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/services/scheduler"
)

// MaintenanceHandler handles HTTP requests for storage maintenance
type MaintenanceHandler struct {
	scheduler *scheduler.Scheduler
	logger    arbor.ILogger
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(sched *scheduler.Scheduler, logger arbor.ILogger) *MaintenanceHandler {
	return &MaintenanceHandler{
		scheduler: sched,
		logger:    logger,
	}
}

// RunHandler handles POST /api/maintenance/run. Maintenance runs in the
// background; the response only acknowledges that it was started.
func (h *MaintenanceHandler) RunHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	h.scheduler.RunNow()

	WriteSuccess(w, "Maintenance run started")
}
