// Package config tests for environment-based configuration loading.
package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_PORT", "DATA_DIR", "BACKUP_CRON", "BACKUP_DIR", "BACKUP_RETENTION", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Server.Port)
	}
	if cfg.Store.DataDir != "./data" {
		t.Errorf("DataDir = %q, want ./data", cfg.Store.DataDir)
	}
	if cfg.Backup.CronSchedule != "" {
		t.Errorf("CronSchedule = %q, want empty (backups disabled)", cfg.Backup.CronSchedule)
	}
	if cfg.Backup.Dir != "./backups" {
		t.Errorf("Backup.Dir = %q, want ./backups", cfg.Backup.Dir)
	}
	if cfg.Backup.RetentionCount != 10 {
		t.Errorf("RetentionCount = %d, want 10", cfg.Backup.RetentionCount)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9999")
	t.Setenv("DATA_DIR", "/tmp/labstock")
	t.Setenv("BACKUP_CRON", "0 3 * * *")
	t.Setenv("BACKUP_RETENTION", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Store.DataDir != "/tmp/labstock" {
		t.Errorf("DataDir = %q, want /tmp/labstock", cfg.Store.DataDir)
	}
	if cfg.Backup.CronSchedule != "0 3 * * *" {
		t.Errorf("CronSchedule = %q, want 0 3 * * *", cfg.Backup.CronSchedule)
	}
	if cfg.Backup.RetentionCount != 3 {
		t.Errorf("RetentionCount = %d, want 3", cfg.Backup.RetentionCount)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsBadRetention(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKUP_RETENTION", "three")

	if _, err := Load(""); err == nil {
		t.Error("Load should reject a non-numeric BACKUP_RETENTION")
	}
}
