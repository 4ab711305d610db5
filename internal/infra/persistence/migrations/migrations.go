// Package migrations embeds the schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

// Source returns the migration files rooted at their directory.
func Source() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	return sub, nil
}

// Migrator applies the embedded migrations to one database.
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator builds a goose provider over db.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	source, err := Source()
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, source)
	if err != nil {
		return nil, errors.Wrap(err, "create goose provider")
	}

	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.Up(ctx)

	return results, errors.Wrap(err, "apply migrations")
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	result, err := m.provider.Down(ctx)

	return result, errors.Wrap(err, "roll back migration")
}

// Status lists every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)

	return statuses, errors.Wrap(err, "read migration status")
}
