package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/grubdash/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.True(t, cfg.Store.Seed)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, config.ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRUBDASH_PRIMARY__ENV", "production")
	t.Setenv("GRUBDASH_SERVER__PORT", "8080")
	t.Setenv("GRUBDASH_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("GRUBDASH_STORE__FAKE_DISHES", "3")
	t.Setenv("GRUBDASH_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("GRUBDASH_OBSERVABILITY__HEALTH_CHECKS__TIMEOUT", "2s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 3, cfg.Store.FakeDishes)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grubdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "7000"
  rate_limit: 5
store:
  seed: false
`), 0o600))

	t.Setenv(config.ConfigFileEnv, path)
	t.Setenv("GRUBDASH_SERVER__PORT", "7100")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.False(t, cfg.Store.Seed)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("GRUBDASH_STORE__DRIVER", "mongo")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestValidate_PostgresNeedsDatabase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Store.Driver = config.StoreDriverPostgres

	require.Error(t, cfg.Validate())

	cfg.Database = &config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "app", Password: "app", Name: "grubdash",
		SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 300, ConnMaxIdleTime: 60,
	}
	require.NoError(t, cfg.Validate())
}

func TestObservabilityValidate(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	require.NoError(t, obs.Validate())

	obs.Logging.Level = "verbose"
	require.Error(t, obs.Validate())

	obs.Logging.Level = ""
	obs.Environment = "development"
	assert.Equal(t, "debug", obs.GetLogLevel())

	obs.Logging.Format = "xml"
	require.Error(t, obs.Validate())
}
