package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/common"
	"github.com/ternarybob/specula/internal/handlers"
	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/services/alerts"
	"github.com/ternarybob/specula/internal/services/analysis"
	"github.com/ternarybob/specula/internal/services/classifier"
	"github.com/ternarybob/specula/internal/services/history"
	"github.com/ternarybob/specula/internal/services/macro"
	"github.com/ternarybob/specula/internal/services/political"
	"github.com/ternarybob/specula/internal/services/scheduler"
	"github.com/ternarybob/specula/internal/services/scorer"
	"github.com/ternarybob/specula/internal/services/triggers"
	"github.com/ternarybob/specula/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	DB             *badger.BadgerDB
	HistoryStorage interfaces.HistoryStorage

	// Pipeline services
	Classifier        interfaces.Classifier
	ScorerService     *scorer.Service
	MacroObserver     *macro.Observer
	PoliticalDetector *political.Detector
	AlertDetector     *alerts.Detector
	TriggerDetector   *triggers.Detector
	HistoryService    *history.Service
	AnalysisService   *analysis.Service

	// Maintenance
	Scheduler *scheduler.Scheduler

	// HTTP handlers
	APIHandler         *handlers.APIHandler
	AnalyzeHandler     *handlers.AnalyzeHandler
	HistoryHandler     *handlers.HistoryHandler
	TriggerHandler     *handlers.TriggerHandler
	StatusHandler      *handlers.StatusHandler
	MaintenanceHandler *handlers.MaintenanceHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	db, err := badger.NewBadgerDB(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.DB = db
	app.HistoryStorage = badger.NewHistoryStorage(db, logger)

	app.Classifier = classifier.NewService(classifier.DefaultKeywords(), logger)
	app.ScorerService = scorer.NewService(scorer.DefaultScoreKeywords(), logger)
	app.MacroObserver = macro.NewObserver(logger)
	app.PoliticalDetector = political.NewDetector(logger)
	app.AlertDetector = alerts.NewDetector(logger)
	app.TriggerDetector = triggers.NewDetector(logger)
	app.HistoryService = history.NewService(app.HistoryStorage, logger)

	app.AnalysisService = analysis.NewService(
		app.Classifier,
		app.ScorerService,
		app.MacroObserver,
		app.PoliticalDetector,
		app.AlertDetector,
		app.TriggerDetector,
		app.HistoryService,
		logger,
	)

	// Restore alert continuity from persisted history
	if err := app.AnalysisService.SeedAlertHistory(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed alert history, starting empty")
	}

	app.Scheduler = scheduler.NewScheduler(app.HistoryStorage, app.DB, logger)

	app.APIHandler = handlers.NewAPIHandler()
	app.AnalyzeHandler = handlers.NewAnalyzeHandler(app.AnalysisService, logger)
	app.HistoryHandler = handlers.NewHistoryHandler(app.HistoryService, app.HistoryStorage, logger)
	app.TriggerHandler = handlers.NewTriggerHandler(app.TriggerDetector, logger)
	app.StatusHandler = handlers.NewStatusHandler(app.HistoryStorage, app.AlertDetector, logger)
	app.MaintenanceHandler = handlers.NewMaintenanceHandler(app.Scheduler, logger)

	logger.Info().Msg("Application initialized")

	return app, nil
}

// StartScheduler starts the maintenance scheduler when enabled.
func (a *App) StartScheduler() error {
	if !a.Config.Scheduler.Enabled {
		a.Logger.Info().Msg("Maintenance scheduler disabled by configuration")
		return nil
	}
	return a.Scheduler.Start(a.Config.Scheduler.Schedule)
}

// Close releases application resources in reverse initialization order.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	a.Logger.Info().Msg("Application closed")
	return nil
}
