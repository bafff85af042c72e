package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/kdimtricp/reelmatch/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := NewDB(ctx, Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "fetchlog.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migrator := NewMigrator(db)
	if err := migrator.Initialize(); err != nil {
		t.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	migrator := NewMigrator(db)

	version, err := migrator.Version(ctx)
	if err != nil {
		t.Fatalf("Failed to get database version: %v", err)
	}
	if version < 1 {
		t.Errorf("Expected database version >= 1, got %d", version)
	}

	var tableName string
	err = db.Conn().QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='fetch_log'").Scan(&tableName)
	if err != nil {
		t.Fatalf("fetch_log table was not created: %v", err)
	}

	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("Failed to run migrations again: %v", err)
	}
	again, err := migrator.Version(ctx)
	if err != nil {
		t.Fatalf("Failed to get database version: %v", err)
	}
	if again != version {
		t.Errorf("Version changed on re-run: %d -> %d", version, again)
	}
}

func TestFetchLogRepository_RecordAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFetchLogRepository(db)
	ctx := context.Background()

	older := models.NewFetchLogEntry("req-1", "te", "ok", 20, 120*time.Millisecond, nil)
	older.FetchedAt = time.Now().UTC().Add(-time.Minute)
	newer := models.NewFetchLogEntry("req-2", "hi", "unavailable", 0, 3*time.Second, errors.New("status 401"))

	for _, e := range []*models.FetchLogEntry{older, newer} {
		if err := repo.RecordFetch(ctx, e); err != nil {
			t.Fatalf("RecordFetch failed: %v", err)
		}
	}

	entries, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != newer.ID {
		t.Errorf("Expected newest entry first, got %s", entries[0].RequestID)
	}
	if entries[0].Error != "status 401" || entries[0].LatencyMS != 3000 || entries[0].Outcome != "unavailable" {
		t.Errorf("Unexpected entry: %+v", entries[0])
	}
	if entries[1].RecordCount != 20 || entries[1].Language != "te" {
		t.Errorf("Unexpected entry: %+v", entries[1])
	}

	limited, err := repo.ListRecent(ctx, 1)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %d entries", len(limited))
	}
}

func TestFetchLogRepository_EmptyList(t *testing.T) {
	repo := NewFetchLogRepository(setupTestDB(t))

	entries, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", entries)
	}
}

func TestNewDB_UnsupportedType(t *testing.T) {
	if _, err := NewDB(context.Background(), Config{Type: "mysql"}); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestRebind(t *testing.T) {
	pg := &DB{dbType: "postgres"}
	if got := pg.rebind("a = ? AND b = ?"); got != "a = $1 AND b = $2" {
		t.Errorf("postgres rebind = %q", got)
	}
	lite := &DB{dbType: "sqlite"}
	if got := lite.rebind("a = ?"); got != "a = ?" {
		t.Errorf("sqlite rebind = %q", got)
	}
}
