package migrations

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var sqlFS embed.FS

type Migrator struct {
	m *migrate.Migrate
}

// New opens a migrator against the postgres database at dsn using the
// embedded schema.
func New(dsn string) (*Migrator, error) {
	src, err := iofs.New(sqlFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}
	m.Log = migrateLogger{}

	return &Migrator{m: m}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Migrator) Up() error {
	err := r.m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}

// Down rolls back the given number of migrations.
func (r *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}
	err := r.m.Steps(-steps)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "roll back %d migrations", steps)
	}
	return nil
}

// Version returns 0 when no migration has been applied yet.
func (r *Migrator) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (r *Migrator) Close() error {
	srcErr, dbErr := r.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	log.Info().Str("evt.name", "migrate.progress").Msgf(format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
