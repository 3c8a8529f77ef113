package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator runs the SQL files under a directory against a postgres URL.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(dsn, dir string, log *zap.Logger) (*Migrator, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), dsn)
	if err != nil {
		return nil, fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = &migrateLogger{log: log.Sugar()}

	return &Migrator{m: m}, nil
}

// Up applies pending migrations; already current is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (mg *Migrator) Down(steps int) error {
	if steps < 1 {
		steps = 1
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down %d: %w", steps, err)
	}
	return nil
}

// Version returns 0 when no migration has been applied yet.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (mg *Migrator) Force(version int) error {
	return mg.m.Force(version)
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	log *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Infof(format, v...)
}

func (l *migrateLogger) Verbose() bool { return false }
