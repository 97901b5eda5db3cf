package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBRowCountError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaVersionError

	// Verify errors
	VerifyColumnsQueryError
	VerifyFixtureError
	VerifyProbeTxError
	VerifyFailedError

	// Seed errors
	SeedFileNotFoundError
	SeedFileReadError
	SeedRowError
	SeedCopyError
	SeedTruncateError
)
