package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration.
type Config struct {
	Server  ServerConfig
	Engine  EngineConfig
	Render  RenderConfig
	Logging LogConfig
}

// ServerConfig holds control API configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// EngineConfig holds content-engine capability and sandbox configuration.
type EngineConfig struct {
	// LocalFileURL enables native file:// handling; when off, local sources
	// carry the legacy http://absolute/ prefix.
	LocalFileURL bool `envconfig:"ENGINE_LOCAL_FILE_URL" default:"true"`

	// SharedTexture enables shared-texture frame delivery with external
	// frame pacing for non-custom frame rates.
	SharedTexture bool `envconfig:"ENGINE_SHARED_TEXTURE" default:"false"`

	// ScriptTimeout bounds page script execution per call.
	ScriptTimeout time.Duration `envconfig:"ENGINE_SCRIPT_TIMEOUT" default:"5s"`
}

// RenderConfig holds the host render loop configuration.
type RenderConfig struct {
	FrameRate int `envconfig:"RENDER_FPS" default:"60"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Engine: EngineConfig{
			LocalFileURL:  true,
			SharedTexture: false,
			ScriptTimeout: 5 * time.Second,
		},
		Render: RenderConfig{
			FrameRate: 60,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
