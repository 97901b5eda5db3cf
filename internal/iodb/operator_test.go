package iodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/internal/iodb"
	"github.com/udbase/udb/internal/iotesting"
)

// Note: These are integration tests that require PostgreSQL.
//
// Configuration is loaded using the full config system:
//   1. Environment variables (UDB_DATABASE_*)
//   2. Config file (~/.config/udb/config.yaml)
//   3. Built-in defaults (postgres/postgres/udb_test)
//
// The database name is always forced to "udb_test" for safety.
//
// Option: Use Docker with default credentials:
//   docker run -d --name udb-test -e POSTGRES_PASSWORD=postgres \
//     -p 5432:5432 postgres:16
//
// Skip these tests without a database using:
//   go test -short

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err, "Connect should succeed with valid config")

	defer op.Close()

	// Verify connection works by checking if we can query tables
	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err, "Should be able to execute commands after Connect")
	assert.False(t, exists)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(ctx, cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	// All operations should fail before Connect
	_, err := op.TableExists(ctx, "users")
	assert.Error(t, err, "TableExists should fail without connection")

	_, err = op.HasTables(ctx)
	assert.Error(t, err, "HasTables should fail without connection")

	err = op.DropAllTables(ctx)
	assert.Error(t, err, "DropAllTables should fail without connection")

	_, err = op.RowCount(ctx, "users")
	assert.Error(t, err, "RowCount should fail without connection")

	// Close without Connect is a no-op
	assert.NoError(t, op.Close())
}

func TestPgxOperator_TableExists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	// Clean up any existing test table
	_, _ = op.Pool().Exec(ctx, "DROP TABLE IF EXISTS test_table_exists CASCADE")

	// Table should not exist initially
	exists, err := op.TableExists(ctx, "test_table_exists")
	require.NoError(t, err)
	assert.False(t, exists, "Table should not exist initially")

	// Create table
	_, err = op.Pool().Exec(ctx,
		"CREATE TABLE test_table_exists (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)

	// Table should now exist
	exists, err = op.TableExists(ctx, "test_table_exists")
	require.NoError(t, err)
	assert.True(t, exists, "Table should exist after creation")

	// Clean up
	_, err = op.Pool().Exec(ctx, "DROP TABLE test_table_exists CASCADE")
	assert.NoError(t, err)
}

func TestPgxOperator_RowCount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	_, _ = op.Pool().Exec(ctx, "DROP TABLE IF EXISTS test_row_count CASCADE")
	_, err = op.Pool().Exec(ctx,
		"CREATE TABLE test_row_count (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)

	count, err := op.RowCount(ctx, "test_row_count")
	require.NoError(t, err)
	assert.Zero(t, count, "New table should be empty")

	_, err = op.Pool().Exec(ctx,
		"INSERT INTO test_row_count DEFAULT VALUES")
	require.NoError(t, err)

	count, err = op.RowCount(ctx, "test_row_count")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = op.Pool().Exec(ctx, "DROP TABLE test_row_count CASCADE")
	assert.NoError(t, err)
}

func TestPgxOperator_DropAllTables(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	_, err = op.Pool().Exec(ctx,
		"CREATE TABLE IF NOT EXISTS test_drop_me (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)

	err = op.DropAllTables(ctx)
	require.NoError(t, err)

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, hasTables, "Database should have no tables after drop")
}
