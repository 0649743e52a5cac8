package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG", "APP_BASE_URL",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT",
		"KAFKA_BROKERS",
		"JWT_SECRET",
		"CRON_SECRET",
		"EMAIL_FROM_ADDRESS", "EMAIL_BATCH_SIZE",
		"PUSH_APP_ID", "PUSH_KEY", "PUSH_SECRET", "PUSH_CLUSTER",
		"LOCALE_SUPPORTED", "LOCALE_DEFAULT", "LOCALE_BASELINE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "tourbase" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "tourbase")
	}
	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want %d", cfg.Redis.Port, 6379)
	}
	if cfg.Cron.Secret != "" {
		t.Errorf("Cron.Secret = %q, want empty", cfg.Cron.Secret)
	}
	if cfg.Kafka.Enabled() {
		t.Error("Kafka.Enabled() = true with no brokers configured")
	}
	if cfg.Locale.Default != "en" {
		t.Errorf("Locale.Default = %q, want %q", cfg.Locale.Default, "en")
	}
	if len(cfg.Locale.Supported) != 7 {
		t.Errorf("len(Locale.Supported) = %d, want 7", len(cfg.Locale.Supported))
	}
}

func TestLoad_WithEnvOverride(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_NAME", "test-app")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("CRON_SECRET", "s3cret")
	os.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "test-app")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Cron.Secret != "s3cret" {
		t.Errorf("Cron.Secret = %q, want %q", cfg.Cron.Secret, "s3cret")
	}
	if !cfg.Kafka.Enabled() {
		t.Error("Kafka.Enabled() = false, want true")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "broker2:9092" {
		t.Errorf("Kafka.Brokers = %v, want two trimmed brokers", cfg.Kafka.Brokers)
	}
}

func TestValidate_DefaultLocaleMustBeSupported(t *testing.T) {
	clearEnv(t)
	os.Setenv("LOCALE_DEFAULT", "xx")
	defer clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with unsupported default locale, want error")
	}
}

func TestValidate_ProductionRejectsDefaultJWTSecret(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENVIRONMENT", "production")
	defer clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with default JWT secret in production, want error")
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.example.com", Port: 5432, User: "app",
		Password: "pw", DBName: "tourbase", SSLMode: "require",
	}
	want := "host=db.example.com port=5432 user=app password=pw dbname=tourbase sslmode=require"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.example.com", Port: 6380}
	if got := r.Addr(); got != "cache.example.com:6380" {
		t.Errorf("Addr() = %q, want %q", got, "cache.example.com:6380")
	}
}
