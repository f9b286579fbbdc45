package database

import (
	"io/fs"
	"strings"
	"testing"

	"dailybudget/internal/config"
	"dailybudget/internal/logger"
	"dailybudget/internal/models"
)

func init() {
	logger.Init("test")
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	if len(ups) == 0 {
		t.Fatal("expected embedded migrations")
	}
	for name := range ups {
		if !downs[name] {
			t.Errorf("migration %s has no down file", name)
		}
	}
}

func TestSQLiteManagerMigrates(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: "file:dbmanager?mode=memory&cache=shared"}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	for _, table := range []any{&models.User{}, &models.Expense{}, &models.Budget{}, &models.AuditLog{}} {
		if !m.DB().Migrator().HasTable(table) {
			t.Errorf("expected table for %T", table)
		}
	}
}

func TestNewManagerRejectsUnknownDriver(t *testing.T) {
	if _, err := NewManager(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("expected error")
	}
}
