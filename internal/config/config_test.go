package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "file" {
		t.Errorf("Source = %q, want file", cfg.Source)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", cfg.Debounce)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SOURCE", "sqlite")
	t.Setenv("DB_PATH", "/tmp/orders.db")
	t.Setenv("DEBOUNCE", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "sqlite" || cfg.DBPath != "/tmp/orders.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Debounce)
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("SOURCE", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown source")
	}
}
