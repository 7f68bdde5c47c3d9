package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mesa-ledger/db/migrations"
)

// MigrationResult reports the schema version found before Migrate ran and
// the version it left behind. From is zero on an empty database.
type MigrationResult struct {
	From uint
	To   uint
}

// Applied reports whether any migration ran.
func (r MigrationResult) Applied() bool { return r.From != r.To }

// Migrate brings the ledger schema at addr up to migrations.Version. A
// dirty database, or one already ahead of this build, is refused.
func Migrate(addr string) (MigrationResult, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return MigrationResult{}, err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return MigrationResult{}, err
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationResult{}, err
	}
	if err = checkVersion(from, dirty); err != nil {
		return MigrationResult{From: from, To: from}, err
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationResult{From: from, To: from}, err
	}
	return MigrationResult{From: from, To: migrations.Version}, nil
}

func checkVersion(current uint, dirty bool) error {
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", current)
	}
	if current > migrations.Version {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, migrations.Version)
	}
	return nil
}
