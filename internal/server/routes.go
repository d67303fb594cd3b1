package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Analysis
	mux.HandleFunc("/api/analyze", s.app.AnalyzeHandler.AnalyzeHandler) // POST - run observation pipeline

	// API routes - History
	mux.HandleFunc("/api/history", s.app.HistoryHandler.ListHandler)                  // GET - daily records
	mux.HandleFunc("/api/history/comparison", s.app.HistoryHandler.ComparisonHandler) // GET - trailing 7-day comparison

	// API routes - Triggers
	mux.HandleFunc("/api/triggers/preview", s.app.TriggerHandler.PreviewHandler) // GET - dry-run trigger rules

	// API routes - System
	mux.HandleFunc("/api/maintenance/run", s.app.MaintenanceHandler.RunHandler) // POST - immediate prune + GC
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
