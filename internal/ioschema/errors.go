package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/udbase/udb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue
  - GORM driver problem

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Invalid schema definitions

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Review schema model definitions
  3. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// IndexError creates an error for secondary index creation
// failures.
func IndexError(table string, err error) error {
	msg := "Cannot create indexes for table <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create indexes for %s: %w", table, err),
	}
}

// VersionError creates an error for schema version recording
// failures.
func VersionError(version string, err error) error {
	msg := "Cannot record schema version <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaVersionError,
		Msg:  msg,
		Vars: []any{version},
		Err:  fmt.Errorf("failed to record schema version %s: %w", version, err),
	}
}
