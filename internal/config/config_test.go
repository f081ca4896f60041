package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFakeCredentials(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service-account.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatalf("write fake credentials: %v", err)
	}
	return path
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_CREDENTIALS", writeFakeCredentials(t))
	t.Setenv("FIREBASE_DATABASE_URL", "https://example-rtdb.firebasedatabase.app/")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MotorID != "motor01" {
		t.Fatalf("default motor id = %q", cfg.MotorID)
	}
	if cfg.UpdateInterval != 5*time.Second {
		t.Fatalf("default interval = %v", cfg.UpdateInterval)
	}
	if cfg.BackfillPoints != 500 {
		t.Fatalf("default backfill points = %d", cfg.BackfillPoints)
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS", "")
	t.Setenv("FIREBASE_DATABASE_URL", "https://example-rtdb.firebasedatabase.app/")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when FIREBASE_CREDENTIALS is unset")
	}
}

func TestLoadRequiresCredentialsFileOnDisk(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS", "/nonexistent/key.json")
	t.Setenv("FIREBASE_DATABASE_URL", "https://example-rtdb.firebasedatabase.app/")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when credentials file is missing")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS", writeFakeCredentials(t))
	t.Setenv("FIREBASE_DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when FIREBASE_DATABASE_URL is unset")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MOTOR_ID", "motor07")
	t.Setenv("UPDATE_INTERVAL", "2s")
	t.Setenv("BACKFILL_POINTS", "250")
	t.Setenv("RANDOM_SEED", "1234")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MotorID != "motor07" || cfg.UpdateInterval != 2*time.Second || cfg.BackfillPoints != 250 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Seed() != 1234 {
		t.Fatalf("seed = %d, want 1234", cfg.Seed())
	}
}

func TestLoadRejectsNonPositiveBackfill(t *testing.T) {
	setRequired(t)
	t.Setenv("BACKFILL_POINTS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for BACKFILL_POINTS=0")
	}
}

func TestSeedFallsBackToClock(t *testing.T) {
	cfg := &Config{RandomSeed: 0}
	if cfg.Seed() == 0 {
		t.Fatal("unseeded config should produce a time-based seed")
	}
}
