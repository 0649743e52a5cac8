package database

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Expected port 5432, got %d", cfg.Port)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("Expected max conns 25, got %d", cfg.MaxConns)
	}
	if cfg.MinConns != 5 {
		t.Errorf("Expected min conns 5, got %d", cfg.MinConns)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
	if cfg.ConnectTimeout != 5*time.Second {
		t.Errorf("Expected connect timeout 5s, got %v", cfg.ConnectTimeout)
	}
}

func TestPostgresConfig_NormalizeFillsZeroFields(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "pw",
		Database: "tourbase",
		SSLMode:  "require",
	}

	cfg.normalize()

	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
	if cfg.RetryInterval != 1*time.Second {
		t.Errorf("Expected retry interval 1s, got %v", cfg.RetryInterval)
	}
	if cfg.ConnectTimeout != 5*time.Second {
		t.Errorf("Expected connect timeout 5s, got %v", cfg.ConnectTimeout)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("Expected max conns 25, got %d", cfg.MaxConns)
	}
	// Connection coordinates are never touched
	if cfg.Host != "db.internal" || cfg.SSLMode != "require" {
		t.Errorf("normalize modified connection coordinates: %+v", cfg)
	}
}

func TestPostgresConfig_NormalizeKeepsExplicitValues(t *testing.T) {
	cfg := &PostgresConfig{
		MaxConns:      100,
		MaxRetries:    10,
		RetryInterval: 250 * time.Millisecond,
	}

	cfg.normalize()

	if cfg.MaxConns != 100 {
		t.Errorf("Expected max conns 100, got %d", cfg.MaxConns)
	}
	if cfg.MaxRetries != 10 {
		t.Errorf("Expected max retries 10, got %d", cfg.MaxRetries)
	}
	if cfg.RetryInterval != 250*time.Millisecond {
		t.Errorf("Expected retry interval 250ms, got %v", cfg.RetryInterval)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "pw",
		Database: "tourbase",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	for _, part := range []string{"host=db.internal", "port=5433", "user=app", "dbname=tourbase", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}
