// Package appconfig loads the solver service's runtime configuration from
// environment variables, an optional config file, and built-in defaults.
package appconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the solver service.
type Config struct {
	ServerAddr string        `mapstructure:"server_addr"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	Database   DatabaseConfig `mapstructure:"database"`
	Solver     SolverConfig   `mapstructure:"solver"`
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN builds the libpq connection string from the individual fields.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// SolverConfig holds solver-related process settings. DefaultNumWorkers sets
// the worker process's task concurrency; DefaultTimeLimitSeconds is loaded but
// not read. A request that omits its time limit or worker count gets
// solver.Solve's own defaults, not these values.
type SolverConfig struct {
	DefaultTimeLimitSeconds int `mapstructure:"default_time_limit_seconds"`
	DefaultNumWorkers       int `mapstructure:"default_num_workers"`
}

// Load reads configuration from SOLVER_-prefixed environment variables, an
// optional ./config/solver.yaml file, and falls back to defaults suited to
// local development.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SOLVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("solver")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/solver")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "solver")
	v.SetDefault("database.password", "devpassword")
	v.SetDefault("database.database", "solver")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("solver.default_time_limit_seconds", 30)
	v.SetDefault("solver.default_num_workers", 4)
}
