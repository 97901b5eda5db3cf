package ioverify

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/udbase/udb/pkg/errcode"
)

// NotConnectedError creates an error for when verification is
// attempted without database connection.
func NotConnectedError() error {
	msg := "Verification attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ColumnsQueryError creates an error for information_schema
// query failures.
func ColumnsQueryError(table string, err error) error {
	msg := "Cannot read column catalog for table <em>%s</em>"

	return &gn.Error{
		Code: errcode.VerifyColumnsQueryError,
		Msg:  msg,
		Vars: []any{table},
		Err: fmt.Errorf("failed to query columns of %s: %w",
			table, err),
	}
}

// FixtureError creates an error for unusable expected-schema
// fixture files.
func FixtureError(path string, err error) error {
	msg := `Cannot use schema fixture <em>%s</em>

<em>How to fix:</em>
  1. Check the file exists and is readable
  2. The fixture must map table names to column lists:
     users:
       - name: email
         data_type: character varying
         max_length: 255
         not_null: true`

	return &gn.Error{
		Code: errcode.VerifyFixtureError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to load fixture %s: %w", path, err),
	}
}

// UnknownTableError creates an error for a --table filter entry
// that names no known table.
func UnknownTableError(table string) error {
	msg := "Table <em>%s</em> is not part of the schema"

	return &gn.Error{
		Code: errcode.VerifyFixtureError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("unknown table %s", table),
	}
}

// ProbeTxError creates an error for probe transaction failures.
func ProbeTxError(probeName string, err error) error {
	msg := "Cannot open transaction for probe <em>%s</em>"

	return &gn.Error{
		Code: errcode.VerifyProbeTxError,
		Msg:  msg,
		Vars: []any{probeName},
		Err: fmt.Errorf("failed to begin probe transaction %q: %w",
			probeName, err),
	}
}
