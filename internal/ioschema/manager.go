// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/udbase/udb/pkg/config"
	"github.com/udbase/udb/pkg/db"
	"github.com/udbase/udb/pkg/lifecycle"
	"github.com/udbase/udb/pkg/schema"
	udbapp "github.com/udbase/udb/pkg/udb"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM
// AutoMigrate, adds secondary indexes and records the schema
// version.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	if err := m.autoMigrate(); err != nil {
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		return err
	}

	return m.recordVersion(ctx, "initial schema")
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate. Safe to run multiple times.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	if err := m.autoMigrate(); err != nil {
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		return err
	}

	return m.recordVersion(ctx, "migration")
}

// autoMigrate opens a GORM session over the existing pgx pool
// and runs AutoMigrate for all models.
func (m *manager) autoMigrate() error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}

// createIndexes applies the secondary indexes declared by the
// models. Uses IF NOT EXISTS so repeated runs are safe.
func (m *manager) createIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, model := range schema.Tables() {
		for _, idx := range model.IndexDDL() {
			q := idempotentIndexSQL(idx)
			if _, err := pool.Exec(ctx, q); err != nil {
				return IndexError(model.TableName(), err)
			}
		}
	}

	return nil
}

// recordVersion inserts the application version into
// schema_versions. Re-running the same version is a no-op.
func (m *manager) recordVersion(
	ctx context.Context,
	description string,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	q := `
		INSERT INTO schema_versions (version, description, applied_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (version) DO NOTHING
	`

	if _, err := pool.Exec(ctx, q, udbapp.Version, description); err != nil {
		return VersionError(udbapp.Version, err)
	}

	return nil
}
