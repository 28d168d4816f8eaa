package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moimlab/schedsync/internal/schedule/infrastructure/memory"
	"github.com/moimlab/schedsync/internal/schedule/infrastructure/rest"
	"github.com/moimlab/schedsync/pkg/config"
	"github.com/moimlab/schedsync/pkg/observability"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:       "development",
		OwnerID:      "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		UseMock:      true,
		DefaultHost:  "192.168.0.41",
		CommandPort:  8081,
		QueryPort:    8082,
		HTTPTimeout:  time.Second,
		MockLatency:  time.Millisecond,
		RefreshDelay: 10 * time.Millisecond,
		PageSize:     20,
	}
}

func TestNewContainerMockMode(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(), observability.NewLogger(observability.LogConfig{Level: observability.LogLevelError}))
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.MockStore)
	assert.IsType(t, &memory.CommandClient{}, c.Commands)
	assert.IsType(t, &memory.QueryClient{}, c.Queries)
	assert.Empty(t, c.BaseAddress)
	assert.Positive(t, c.MockStore.Len())
	require.NotNil(t, c.Sync)
	assert.Equal(t, c.OwnerID, c.Sync.OwnerID())
}

func TestNewContainerRemoteMode(t *testing.T) {
	cfg := testConfig()
	cfg.UseMock = false

	c, err := NewContainer(context.Background(), cfg, observability.NewLogger(observability.LogConfig{Level: observability.LogLevelError}))
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.MockStore)
	assert.IsType(t, &rest.CommandClient{}, c.Commands)
	assert.IsType(t, &rest.QueryClient{}, c.Queries)
	assert.True(t, strings.HasPrefix(c.BaseAddress, "http://"))
}

func TestNewContainerRejectsBadOwnerID(t *testing.T) {
	cfg := testConfig()
	cfg.OwnerID = "not-a-uuid"

	_, err := NewContainer(context.Background(), cfg, observability.NewLogger(observability.LogConfig{Level: observability.LogLevelError}))
	assert.Error(t, err)
}

func TestContainerHealthChecksMockMode(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(), observability.NewLogger(observability.LogConfig{Level: observability.LogLevelError}))
	require.NoError(t, err)
	defer c.Close()

	health := c.Health.GetOverallHealth(context.Background())
	assert.Equal(t, observability.HealthStatusHealthy, health.Status)
	assert.Len(t, health.Checks, 2)
}
