package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8090" {
		t.Errorf("expected default port 8090, got %s", cfg.Server.Port)
	}
	if !cfg.Engine.LocalFileURL {
		t.Error("expected local file URL capability on by default")
	}
	if cfg.Engine.SharedTexture {
		t.Error("expected shared texture off by default")
	}
	if cfg.Engine.ScriptTimeout != 5*time.Second {
		t.Errorf("expected 5s script timeout, got %v", cfg.Engine.ScriptTimeout)
	}
	if cfg.Render.FrameRate != 60 {
		t.Errorf("expected 60 fps render loop, got %d", cfg.Render.FrameRate)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9099")
	t.Setenv("ENGINE_SHARED_TEXTURE", "true")
	t.Setenv("ENGINE_SCRIPT_TIMEOUT", "250ms")
	t.Setenv("RENDER_FPS", "144")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "9099" {
		t.Errorf("expected port 9099, got %s", cfg.Server.Port)
	}
	if !cfg.Engine.SharedTexture {
		t.Error("expected shared texture enabled")
	}
	if cfg.Engine.ScriptTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms script timeout, got %v", cfg.Engine.ScriptTimeout)
	}
	if cfg.Render.FrameRate != 144 {
		t.Errorf("expected 144 fps, got %d", cfg.Render.FrameRate)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadOrDefaultNeverNil(t *testing.T) {
	cfg := LoadOrDefault()
	if cfg == nil {
		t.Fatal("LoadOrDefault returned nil")
	}
}

func TestDefaultMatchesLoadDefaults(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *Default() != *loaded {
		t.Errorf("Default() = %+v, Load() defaults = %+v", Default(), loaded)
	}
}
