package db

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"locket-admin/db/migrations"
)

// MigratePostgres brings the Postgres database at addr to migrations.Version.
func MigratePostgres(addr string) error {
	return Migrate(migrations.Postgres, "postgres", addr)
}

// MigrateSQLite brings the SQLite file at path to migrations.Version.
func MigrateSQLite(path string) error {
	return Migrate(migrations.SQLite, "sqlite", "sqlite3://"+path)
}

// Migrate applies the up migrations found in dir of fsys to the database
// at dsn. A database left dirty by a failed migration is reported rather
// than migrated further.
func Migrate(fsys fs.FS, dir, dsn string) error {
	driver, err := iofs.New(fsys, dir)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
