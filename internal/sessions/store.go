// Package sessions keeps the login sessions in the sessions table of the application's database.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Store implements scs.Store. Expired sessions are never returned, even before the cleanup loop deletes them.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{
		db:  sqlx.NewDb(db, "sqlite3"),
		now: time.Now,
	}
}

func (s *Store) Find(token string) ([]byte, bool, error) {
	var b []byte
	err := s.db.Get(&b, `SELECT data FROM sessions WHERE token = ? AND expiry > ?`, token, s.now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Save(token string, b []byte, expiry time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (token, data, expiry) VALUES (?, ?, ?)
		ON CONFLICT (token) DO UPDATE SET data = excluded.data, expiry = excluded.expiry`,
		token, b, expiry.Unix())
	return err
}

func (s *Store) Delete(token string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteExpired removes every expired session and returns how many there were.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expiry <= ?`, s.now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Cleanup deletes expired sessions every interval until ctx is done.
func (s *Store) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.DeleteExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("failed to delete expired sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int64("count", n).Msg("deleted expired sessions")
			}
		}
	}
}
