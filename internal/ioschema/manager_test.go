package ioschema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/internal/iodb"
	"github.com/udbase/udb/internal/ioschema"
	"github.com/udbase/udb/internal/iotesting"
)

// Note: These are integration tests that require PostgreSQL.
// See operator_test.go in internal/iodb for configuration
// instructions. Skip with: go test -short

// TestManager_Create verifies schema creation end-to-end.
func TestManager_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Should connect to database")
	defer op.Close()

	// Clean up any existing tables first
	_ = op.DropAllTables(ctx)

	sm := ioschema.NewManager(op)
	err = sm.Create(ctx, cfg)
	require.NoError(t, err, "Schema creation should succeed")

	expectedTables := []string{
		"users",
		"sessions",
		"audit_events",
		"schema_versions",
	}

	for _, table := range expectedTables {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err,
			"Should be able to check table existence for %s", table)
		assert.True(t, exists,
			"Table %s should exist after schema creation", table)
	}

	// Schema version should be recorded
	count, err := op.RowCount(ctx, "schema_versions")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count,
		"Create should record exactly one schema version")

	// Clean up
	err = op.DropAllTables(ctx)
	assert.NoError(t, err, "Should be able to drop tables after test")
}

// TestManager_Migrate_Idempotent verifies that repeated runs are safe.
func TestManager_Migrate_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err)
	defer op.Close()

	_ = op.DropAllTables(ctx)

	sm := ioschema.NewManager(op)

	err = sm.Create(ctx, cfg)
	require.NoError(t, err, "First schema creation should succeed")

	// Migrate over the existing schema must not fail
	err = sm.Migrate(ctx, cfg)
	require.NoError(t, err, "Migrate should be idempotent")

	err = sm.Migrate(ctx, cfg)
	require.NoError(t, err, "Repeated migrate should be idempotent")

	exists, err := op.TableExists(ctx, "users")
	require.NoError(t, err)
	assert.True(t, exists, "users table should exist after migrations")

	_ = op.DropAllTables(ctx)
}

// TestManager_NotConnected verifies error without connection.
func TestManager_NotConnected(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	sm := ioschema.NewManager(op)

	err := sm.Create(ctx, cfg)
	assert.Error(t, err, "Create should fail without connection")

	err = sm.Migrate(ctx, cfg)
	assert.Error(t, err, "Migrate should fail without connection")
}
