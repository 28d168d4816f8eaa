package cli

import (
	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/application"
	"github.com/moimlab/schedsync/internal/schedule/infrastructure/memory"
	"github.com/moimlab/schedsync/pkg/config"
	"github.com/moimlab/schedsync/pkg/observability"
)

// App holds the CLI application dependencies.
type App struct {
	Config *config.Config

	// Sync is the view-model every schedule command goes through.
	Sync *application.SyncService

	// MockStore is nil when talking to the real services.
	MockStore *memory.Store

	Health  *observability.HealthRegistry
	Metrics *observability.InMemoryMetrics

	// CurrentOwnerID scopes every command and query.
	CurrentOwnerID uuid.UUID
}

// NewApp creates a new CLI application with the provided dependencies.
func NewApp(cfg *config.Config, sync *application.SyncService, store *memory.Store, health *observability.HealthRegistry, metrics *observability.InMemoryMetrics) *App {
	return &App{
		Config:    cfg,
		Sync:      sync,
		MockStore: store,
		Health:    health,
		Metrics:   metrics,
	}
}

// SetCurrentOwnerID updates the current owner ID.
func (a *App) SetCurrentOwnerID(id uuid.UUID) {
	a.CurrentOwnerID = id
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
