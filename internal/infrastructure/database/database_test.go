package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// openTestDB opens a database in a temp directory.
func openTestDB(t *testing.T, cfg Config) *DB {
	t.Helper()

	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), "test.db")
	}

	db, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestOpen(t *testing.T) {
	t.Run("creates database file and directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		db := openTestDB(t, Config{Path: path, WALMode: true, BusyTimeout: 5})

		if db.Path() != path {
			t.Errorf("Path() = %q, want %q", db.Path(), path)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("database file not created: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("file permissions = %o, want 0600", perm)
		}
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		db := openTestDB(t, Config{BusyTimeout: 1})
		ctx := context.Background()

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE parents (id INTEGER PRIMARY KEY) STRICT;
			CREATE TABLE children (
				id INTEGER PRIMARY KEY,
				parent_id INTEGER NOT NULL,
				FOREIGN KEY (parent_id) REFERENCES parents(id)
			) STRICT;
		`); err != nil {
			t.Fatalf("creating tables: %v", err)
		}

		_, err := db.ExecContext(ctx, "INSERT INTO children (parent_id) VALUES (99)")
		if err == nil {
			t.Error("orphan insert succeeded, foreign keys not enforced")
		}
	})

	t.Run("without WAL mode", func(t *testing.T) {
		db := openTestDB(t, Config{WALMode: false, BusyTimeout: 1})
		if err := db.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() error = %v", err)
		}
	})
}

func TestDB_HealthCheck(t *testing.T) {
	db := openTestDB(t, Config{BusyTimeout: 1})

	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	db.Close()
	if err := db.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() on closed database expected error, got nil")
	}
}

func TestDB_Close(t *testing.T) {
	db := openTestDB(t, Config{BusyTimeout: 1})

	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Second close is safe
	if err := db.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestDB_BeginTx(t *testing.T) {
	db := openTestDB(t, Config{BusyTimeout: 1})
	ctx := context.Background()

	if _, err := db.ExecContext(ctx,
		"CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL) STRICT",
	); err != nil {
		t.Fatalf("creating table: %v", err)
	}

	t.Run("commit persists", func(t *testing.T) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("BeginTx() error = %v", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('kept')"); err != nil {
			t.Fatalf("insert in tx: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}

		var count int
		if err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM items WHERE name = 'kept'").Scan(&count); err != nil {
			t.Fatalf("counting items: %v", err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})

	t.Run("rollback discards", func(t *testing.T) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("BeginTx() error = %v", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('dropped')"); err != nil {
			t.Fatalf("insert in tx: %v", err)
		}
		if err := tx.Rollback(); err != nil {
			t.Fatalf("Rollback() error = %v", err)
		}

		var count int
		if err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM items WHERE name = 'dropped'").Scan(&count); err != nil {
			t.Fatalf("counting items: %v", err)
		}
		if count != 0 {
			t.Errorf("count = %d, want 0", count)
		}
	})
}
