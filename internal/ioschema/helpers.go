package ioschema

import "strings"

// idempotentIndexSQL rewrites a CREATE INDEX statement so repeated
// schema runs do not fail on existing indexes.
func idempotentIndexSQL(ddl string) string {
	if strings.Contains(ddl, "IF NOT EXISTS") {
		return ddl
	}
	return strings.Replace(ddl,
		"CREATE INDEX ", "CREATE INDEX IF NOT EXISTS ", 1)
}
