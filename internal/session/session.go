package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one configuration workspace. Endpoint types and endpoints
// belong to exactly one session; deleting the session cascades to them in
// the store.
type Session struct {
	// ID is the internal row id, referenced by endpoints and endpoint types.
	ID int64

	// Key is the opaque UUID handed to connecting tools.
	Key string

	// CreatedAt is when the session was created (UTC).
	CreatedAt time.Time
}

// ErrSessionNotFound is returned when a session id or key does not exist.
var ErrSessionNotFound = errors.New("session: not found")

// Repository provides session persistence over a shared database handle.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a session repository.
// The db parameter should be an open SQLite connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new session with a freshly generated UUID key.
func (r *Repository) Create(ctx context.Context) (*Session, error) {
	key := uuid.NewString()
	createdAt := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (session_key, created_at) VALUES (?, ?)",
		key,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted session id: %w", err)
	}

	return &Session{ID: id, Key: key, CreatedAt: createdAt}, nil
}

// GetByID retrieves a session by its row id.
// Returns ErrSessionNotFound if the session does not exist.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, session_key, created_at FROM sessions WHERE id = ?", id)
	return scanSession(row)
}

// GetByKey retrieves a session by its UUID key.
// Returns ErrSessionNotFound if the key does not exist.
func (r *Repository) GetByKey(ctx context.Context, key string) (*Session, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, session_key, created_at FROM sessions WHERE session_key = ?", key)
	return scanSession(row)
}

// List retrieves all sessions, oldest first.
func (r *Repository) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, session_key, created_at FROM sessions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// Delete removes a session by id. The store cascades the delete to the
// session's endpoint types and endpoints.
// Returns ErrSessionNotFound if the session does not exist.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession maps a session row into a Session record.
func scanSession(scanner rowScanner) (*Session, error) {
	var s Session
	var createdAt string

	if err := scanner.Scan(&s.ID, &s.Key, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return &s, nil
}
