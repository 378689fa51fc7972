// The init package contains functions that setup required dependencies such as the SQLite database.
package initialization

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// SetupDB applies all remaining migrations found in folder. A database that is already up to date is not an error.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Str("folder", folder).Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database schema is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}

	version, _, _ := mig.Version()
	log.Info().Uint("version", version).Msg("migrations applied")
	return nil
}

// OpenDB opens the sqlite database and checks that it is reachable.
func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
