package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/config"
	"github.com/sidereusnuntius/magazine/internal/db"
)

const DriverName = "sqlite3"

type dbImpl struct {
	Config config.Configuration
	db     *sqlx.DB
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     sqlx.NewDb(d, DriverName),
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors. Errors that already are one of the db package's sentinels are returned unchanged.
func (d *dbImpl) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrConflict), errors.Is(err, db.ErrInternal):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return db.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation(sqliteErr)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("referenced row %w", db.ErrNotFound)
		}
	}

	log.Error().Err(err).Msg("database error")
	return fmt.Errorf("%w: %s", db.ErrInternal, err)
}

// uniqueViolation maps the column named in sqlite's "UNIQUE constraint failed: table.column" message to the
// matching sentinel.
func uniqueViolation(err sqlite3.Error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return db.ErrUsernameTaken
	case strings.Contains(msg, "authors.nickname"):
		return db.ErrNicknameTaken
	case strings.Contains(msg, "authors.user_id"):
		return db.ErrAuthorExists
	default:
		return fmt.Errorf("%w: %s", db.ErrConflict, msg)
	}
}

// WithTx runs f inside a transaction, which is committed if f returns nil and rolled back otherwise. With the
// _txlock=immediate connection parameter the write lock is taken when the transaction begins.
func (d *dbImpl) WithTx(ctx context.Context, f func(tx *sqlx.Tx) error) (err error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = d.HandleError(f(tx))
	return
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		Valid:  s != "",
		String: s,
	}
}
