package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/udbase/udb/pkg/errcode"
)

// NotConnectedError creates an error for seeding attempted before
// Connect.
func NotConnectedError() error {
	msg := "Seeding attempted without a database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("operator is not connected"),
	}
}

// FileNotFoundError creates an error for a missing seed file.
func FileNotFoundError(path string, err error) error {
	msg := `Seed file <em>%s</em> does not exist

<em>How to fix:</em>
  Provide a SQLite file with a <em>users</em> table:
  <em>udb seed --file /path/to/users.sqlite</em>`

	return &gn.Error{
		Code: errcode.SeedFileNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("seed file %s: %w", path, err),
	}
}

// FileReadError creates an error for an unreadable seed file.
func FileReadError(path string, err error) error {
	msg := `Could not read seed file <em>%s</em>

The file must be a SQLite database with a <em>users</em> table
containing <em>email</em>, <em>username</em>, <em>birthdate</em>
and <em>city</em> columns.`

	return &gn.Error{
		Code: errcode.SeedFileReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("read seed file %s: %w", path, err),
	}
}

// RowError creates an error for a seed row that would violate the
// account constraints.
func RowError(key string, err error) error {
	msg := "Seed row <em>%s</em> is not a valid user account"

	return &gn.Error{
		Code: errcode.SeedRowError,
		Msg:  msg,
		Vars: []any{key},
		Err:  fmt.Errorf("seed row %s: %w", key, err),
	}
}

// TruncateError creates an error for a failed truncate before
// seeding.
func TruncateError(err error) error {
	msg := "Could not truncate account tables before seeding"

	return &gn.Error{
		Code: errcode.SeedTruncateError,
		Msg:  msg,
		Err:  fmt.Errorf("truncate: %w", err),
	}
}

// CopyError creates an error for a failed bulk insert.
func CopyError(err error) error {
	msg := `Bulk insert of users failed

<em>Possible causes:</em>
  - Duplicate emails between the seed file and existing rows
  - The users table is missing (run <em>udb create</em> first)`

	return &gn.Error{
		Code: errcode.SeedCopyError,
		Msg:  msg,
		Err:  fmt.Errorf("copy users: %w", err),
	}
}
