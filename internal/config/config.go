// Package config loads reservationd's configuration the way the
// original service resolves it (§6): an explicit path from
// $RESERVATION_CONFIG, else the first of a fixed search path to exist,
// parsed as YAML with environment variable overrides layered on top —
// adapted from the teacher's config/config.go (same viper.SetDefault +
// viper.GetX() idiom), with the search-path/env-var resolution order
// from original_source/service/src/main.rs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envReplacer maps "server.port" to the SERVER_PORT segment viper
// expects after SetEnvPrefix, the same dot-to-underscore mapping the
// teacher relies on implicitly via its flat env-var keys.
var envReplacer = strings.NewReplacer(".", "_")

// Config holds every setting reservationd needs to start.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

// ServerConfig holds the gRPC and ancillary HTTP listen settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	HTTPPort        int           `mapstructure:"http_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the gRPC listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HTTPAddr returns the ancillary HTTP listen address in host:port form.
func (s ServerConfig) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HTTPPort)
}

// DatabaseConfig holds PostgreSQL connection settings, mirroring the
// original's abi::DbConfig (host/port/user/password/dbname/
// max_connections).
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConnections  int32         `mapstructure:"max_connections"`
	MinConnections  int32         `mapstructure:"min_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// RedisConfig holds the filter-page cache's Redis connection settings.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	// Enabled lets an operator run without the filter-page cache at
	// all; Filter then always falls through to PostgreSQL.
	Enabled bool `mapstructure:"enabled"`
}

// Addr returns the Redis address in host:port form.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// envConfigVar names the environment variable that, when set, names an
// explicit config file path to use instead of searching searchPaths.
const envConfigVar = "RESERVATION_CONFIG"

// searchPaths lists the files probed in order when envConfigVar is
// unset, matching original_source/service/src/main.rs exactly (current
// directory, then the user's config directory, then /etc).
func searchPaths() []string {
	var paths []string
	paths = append(paths, "reservation.yml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reservation.yml"))
	}
	paths = append(paths, filepath.Join("/etc", "reservation.yml"))
	return paths
}

// resolvePath picks the config file to load: $RESERVATION_CONFIG if
// set, else the first existing entry in searchPaths.
func resolvePath() (string, error) {
	if p := os.Getenv(envConfigVar); p != "" {
		return p, nil
	}
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: no config file found (set %s or place one at %v)",
		envConfigVar, searchPaths())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "reservation")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "reservation")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.min_connections", 1)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "15m")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 50)
}

// Load resolves and parses the config file, with environment variables
// of the form RESERVATION_SERVER_PORT, RESERVATION_DATABASE_HOST, etc.
// overriding any value the file sets.
func Load() (*Config, error) {
	path, err := resolvePath()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("reservation")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
