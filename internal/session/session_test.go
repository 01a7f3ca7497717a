package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates an in-memory SQLite database with the session schema
// and the dependent tables needed to observe cascading deletes.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE sessions (
			id INTEGER PRIMARY KEY,
			session_key TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE TABLE endpoint_types (
			id INTEGER PRIMARY KEY,
			session_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			device_type_code INTEGER,
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
		) STRICT;

		CREATE TABLE endpoints (
			id INTEGER PRIMARY KEY,
			session_id INTEGER NOT NULL,
			endpoint_identifier INTEGER NOT NULL,
			endpoint_type_id INTEGER NOT NULL,
			profile INTEGER NOT NULL,
			network_identifier INTEGER NOT NULL DEFAULT 0,
			device_version INTEGER NOT NULL DEFAULT 1,
			device_identifier INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE,
			FOREIGN KEY (endpoint_type_id) REFERENCES endpoint_types(id) ON DELETE CASCADE,
			UNIQUE (session_id, endpoint_identifier)
		) STRICT;
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	s, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.ID == 0 {
		t.Error("ID not assigned")
	}
	if s.Key == "" {
		t.Error("Key not generated")
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	// Keys are unique per session
	other, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if other.Key == s.Key {
		t.Errorf("duplicate session key %q", s.Key)
	}
}

func TestRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("returns existing session", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if got.Key != created.Key {
			t.Errorf("Key = %q, want %q", got.Key, created.Key)
		}
		if !got.CreatedAt.Equal(created.CreatedAt.Truncate(time.Second)) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
		}
	})

	t.Run("returns ErrSessionNotFound for unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("GetByID() error = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestRepository_GetByKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByKey(ctx, created.Key)
	if err != nil {
		t.Fatalf("GetByKey() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}

	if _, err := repo.GetByKey(ctx, "no-such-key"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetByKey() error = %v, want ErrSessionNotFound", err)
	}
}

func TestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		sessions, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(sessions) != 0 {
			t.Errorf("List() returned %d sessions, want 0", len(sessions))
		}
	})

	t.Run("lists sessions oldest first", func(t *testing.T) {
		first, _ := repo.Create(ctx)
		second, _ := repo.Create(ctx)

		sessions, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(sessions) != 2 {
			t.Fatalf("List() returned %d sessions, want 2", len(sessions))
		}
		if sessions[0].ID != first.ID || sessions[1].ID != second.ID {
			t.Errorf("List() order = [%d, %d], want [%d, %d]",
				sessions[0].ID, sessions[1].ID, first.ID, second.ID)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Seed dependent rows to observe the cascade
	etResult, err := db.Exec(
		"INSERT INTO endpoint_types (session_id, name) VALUES (?, ?)",
		created.ID, "Light")
	if err != nil {
		t.Fatalf("seeding endpoint type: %v", err)
	}
	etID, _ := etResult.LastInsertId()
	if _, err := db.Exec(`
		INSERT INTO endpoints (session_id, endpoint_identifier, endpoint_type_id, profile)
		VALUES (?, 1, ?, 260)`,
		created.ID, etID); err != nil {
		t.Fatalf("seeding endpoint: %v", err)
	}

	t.Run("deletes session and cascades", func(t *testing.T) {
		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("GetByID() after delete error = %v, want ErrSessionNotFound", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM endpoints").Scan(&count); err != nil {
			t.Fatalf("counting endpoints: %v", err)
		}
		if count != 0 {
			t.Errorf("endpoint count after cascade = %d, want 0", count)
		}
	})

	t.Run("returns ErrSessionNotFound for unknown id", func(t *testing.T) {
		if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Delete() error = %v, want ErrSessionNotFound", err)
		}
	})
}
