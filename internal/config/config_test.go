package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("API_KEYS", " key-a , key-b")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10000.0, cfg.DefaultRadiusMeters)
	assert.Equal(t, 16, cfg.MaxCandidates)
	assert.Equal(t, 2*time.Second, cfg.IndexRefreshInterval)
	assert.False(t, cfg.AuditClaimConflicts)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKeys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("DISPATCH_DEFAULT_RADIUS_METERS", "2500.5")
	t.Setenv("DISPATCH_MAX_CANDIDATES", "4")
	t.Setenv("AUDIT_CLAIM_CONFLICTS", "true")
	t.Setenv("HEARTBEAT_TTL", "90s")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("STATIONS_FILE", "/etc/dispatch/stations.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, 2500.5, cfg.DefaultRadiusMeters)
	assert.Equal(t, 4, cfg.MaxCandidates)
	assert.True(t, cfg.AuditClaimConflicts)
	assert.Equal(t, 90*time.Second, cfg.HeartbeatTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "/etc/dispatch/stations.json", cfg.StationsFile)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			StorageBackend:       StorageMemory,
			DefaultRadiusMeters:  10000,
			MaxCandidates:        16,
			IndexRefreshInterval: time.Second,
		}
	}
	require.NoError(t, base().Validate())

	cfg := base()
	cfg.StorageBackend = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MaxCandidates = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DefaultRadiusMeters = -1
	assert.Error(t, cfg.Validate())
}
