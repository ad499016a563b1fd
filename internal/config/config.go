// Package config loads the world-server configuration from YAML,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentSource selects where mob and area content comes from.
const (
	ContentSourceData     = "data"     // built-in Go literal tables
	ContentSourceDatabase = "database" // mob_defs / world_areas tables
)

// WorldServer holds all configuration for the world server.
type WorldServer struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Content
	ContentSource string `yaml:"content_source"` // "data" or "database"
	AreaFile      string `yaml:"area_file"`      // optional YAML area override

	// Database (used when content_source is "database")
	Database DatabaseConfig `yaml:"database"`

	// Spawner
	RespawnEnabled      bool `yaml:"respawn_enabled"`
	DefaultRespawnDelay int  `yaml:"default_respawn_delay"` // seconds

	// Template cache
	CacheMaxSize int `yaml:"cache_max_size"`
	CacheTTL     int `yaml:"cache_ttl"` // seconds
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultWorldServer returns WorldServer config with sensible defaults.
func DefaultWorldServer() WorldServer {
	return WorldServer{
		LogLevel:            "info",
		ContentSource:       ContentSourceData,
		RespawnEnabled:      true,
		DefaultRespawnDelay: 300,
		CacheMaxSize:        256,
		CacheTTL:            600,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "hyperscape",
			Password: "hyperscape",
			DBName:   "hyperscape",
			SSLMode:  "disable",
		},
	}
}

// LoadWorldServer loads world server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadWorldServer(path string) (WorldServer, error) {
	cfg := DefaultWorldServer()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
