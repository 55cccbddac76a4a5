// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// optionally layered on top of a YAML file, loads them into structured
// Go types, and validates that required values are present so they can
// be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

/*
	Key mapping:
	- Env vars are read using the prefix GRUBDASH_
	- Keys are lowercased and the prefix is removed
	- A double underscore separates nesting levels
	  e.g. GRUBDASH_SERVER__PORT -> server.port -> Config.Server.Port
	- Values of list keys are comma separated
	  e.g. GRUBDASH_SERVER__CORS_ALLOWED_ORIGINS=http://a,http://b

	GRUBDASH_CONFIG_FILE may point at a YAML file. It is loaded first, so
	env vars always win.
*/

const (
	// EnvPrefix is the prefix every config env var carries.
	EnvPrefix = "GRUBDASH_"

	// ConfigFileEnv names the env var holding an optional YAML config path.
	ConfigFileEnv = EnvPrefix + "CONFIG_FILE"

	// ServiceName labels logs and traces.
	ServiceName = "grubdash"
)

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Database is a pointer because it only matters for the postgres store
// driver. Observability is a pointer because it is optional; defaults
// are injected when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store" validate:"required"`
	Database      *DatabaseConfig      `koanf:"database" validate:"-"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

// StoreConfig selects and prepares the record store.
type StoreConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory postgres"`

	// Seed loads the bundled fixture dishes and orders into an empty store.
	Seed bool `koanf:"seed"`

	// FakeDishes adds that many generated dishes on top of the fixtures.
	FakeDishes int `koanf:"fake_dishes" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DefaultConfig returns a configuration that runs locally with the
// in-memory store and no external dependencies.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateBurst:          20,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
			Seed:   true,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from the environment (and the optional
// YAML file), validates it, applies defaults, and returns the result.
//
// Behavior summary:
//   - Starts from DefaultConfig
//   - Loads the YAML file named by GRUBDASH_CONFIG_FILE, if set
//   - Loads env vars with prefix GRUBDASH_
//   - Unmarshals on top of the defaults
//   - Validates struct tags, then the store and observability blocks
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites keys that are present, so the defaults
	// survive for everything the environment does not mention.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the cross-block rules tags cannot express.
//
// It also fills in the observability block when it is missing.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Store.Driver == StoreDriverPostgres {
		if c.Database == nil {
			return fmt.Errorf("database config is required for store driver %q", StoreDriverPostgres)
		}
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces agree on naming.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// envKeyValue maps GRUBDASH_SERVER__PORT=5000 to ("server.port", "5000")
// and splits comma separated values into lists.
func envKeyValue(key, value string) (string, interface{}) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(strings.ReplaceAll(key, "__", "."))

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}

	return key, value
}
