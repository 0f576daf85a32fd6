package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository persists sessions in the same database as the entity
// stores. The backing table is created on first use, and expired rows are
// pruned on a fixed interval.
type SessionRepository struct {
	db       *Connection
	logger   *logger.Logger
	done     chan struct{}
	stopOnce sync.Once
}

func NewSessionRepository(ctx context.Context, db *Connection, pruneInterval time.Duration, logger *logger.Logger) (*SessionRepository, error) {
	query := `CREATE TABLE IF NOT EXISTS sessions (
			  id TEXT PRIMARY KEY,
			  user_id BIGINT NOT NULL,
			  expires_at TIMESTAMPTZ NOT NULL,
			  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			  )`

	if _, err := db.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	r := &SessionRepository{
		db:     db,
		logger: logger,
		done:   make(chan struct{}),
	}
	go r.prune(pruneInterval)

	return r, nil
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, session.ID, session.UserID, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (model.Session, error) {
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1`

	var session model.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.Expired(time.Now()) {
		return model.Session{}, model.ErrSessionExpired
	}

	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Stop terminates the pruning loop. Safe to call more than once.
func (r *SessionRepository) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *SessionRepository) prune(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
			cancel()
			if err != nil {
				r.logger.Error("failed to prune sessions", "error", err)
			}
		}
	}
}
