// Package app wires configuration, logging, and the schedule ports into a
// single container shared by every CLI command.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/application"
	"github.com/moimlab/schedsync/internal/schedule/domain"
	"github.com/moimlab/schedsync/internal/schedule/infrastructure/memory"
	"github.com/moimlab/schedsync/internal/schedule/infrastructure/rest"
	"github.com/moimlab/schedsync/pkg/config"
	"github.com/moimlab/schedsync/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.InMemoryMetrics

	// OwnerID scopes every command and query in this session.
	OwnerID uuid.UUID

	// BaseAddress is the resolved service host, empty in mock mode.
	BaseAddress string

	// Ports. Selected once at startup from SCHEDSYNC_USE_MOCK; commands
	// and queries always point at the same backend kind.
	Commands domain.CommandPort
	Queries  domain.QueryPort

	// MockStore is the shared in-memory state behind both ports. Nil when
	// talking to the real services.
	MockStore *memory.Store

	Health *observability.HealthRegistry
	Sync   *application.SyncService
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	ownerID, err := uuid.Parse(cfg.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", cfg.OwnerID, err)
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		OwnerID: ownerID,
		Health:  observability.NewHealthRegistry(),
	}

	if cfg.UseMock {
		store := memory.NewStore(memory.Fixtures(ownerID))
		c.MockStore = store
		c.Commands = memory.NewCommandClient(store, cfg.MockLatency)
		c.Queries = memory.NewQueryClient(store, cfg.MockLatency)
		c.Health.Register(domain.ServiceCommand, observability.MockHealthChecker(domain.ServiceCommand))
		c.Health.Register(domain.ServiceQuery, observability.MockHealthChecker(domain.ServiceQuery))
		logger.Info("using in-memory schedule services",
			"latency", cfg.MockLatency,
			"seed", store.Len(),
		)
	} else {
		c.BaseAddress = ResolveBaseAddress(cfg.DefaultHost, logger)
		commandURL := fmt.Sprintf("%s:%d", c.BaseAddress, cfg.CommandPort)
		queryURL := fmt.Sprintf("%s:%d", c.BaseAddress, cfg.QueryPort)

		commands := rest.NewCommandClient(commandURL, cfg.HTTPTimeout, logger)
		queries := rest.NewQueryClient(queryURL, cfg.HTTPTimeout, logger)
		c.Commands = commands
		c.Queries = queries
		c.Health.Register(domain.ServiceCommand, observability.ServiceHealthChecker(domain.ServiceCommand, commands.Ping))
		c.Health.Register(domain.ServiceQuery, observability.ServiceHealthChecker(domain.ServiceQuery, queries.Ping))
		logger.Info("using remote schedule services",
			"command_url", commandURL,
			"query_url", queryURL,
		)
	}

	c.Sync = application.NewSyncService(c.Commands, c.Queries, ownerID, cfg.RefreshDelay, logger).
		WithMetrics(c.Metrics)

	return c, nil
}

// Close releases all resources.
func (c *Container) Close() {
	if c.Sync != nil {
		c.Sync.Close()
	}
	c.Logger.Debug("container closed")
}
