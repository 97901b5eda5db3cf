package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/pkg/schema"
)

// TestUserTableDDL tests DDL generation for the User model
func TestUserTableDDL(t *testing.T) {
	u := schema.User{}
	ddl := u.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE users")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should have email with uniqueness and shape check
	assert.Contains(t, ddl, "email VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, ddl, "position('@' in email) > 1")

	// Should have username with minimum length check
	assert.Contains(t, ddl, "username VARCHAR(50) NOT NULL")
	assert.Contains(t, ddl, "char_length(username) >= 3")

	// Should have birthdate range check
	assert.Contains(t, ddl, "birthdate DATE")
	assert.Contains(t, ddl, "birthdate > '1900-01-01'")

	// Should have city with length limit
	assert.Contains(t, ddl, "city VARCHAR(100)")

	// Should have created_at with default
	assert.Contains(t, ddl, "created_at TIMESTAMP NOT NULL DEFAULT NOW()")
}

// TestUserTableName tests TableName method
func TestUserTableName(t *testing.T) {
	u := schema.User{}
	assert.Equal(t, "users", u.TableName())
}

// TestUserIndexDDL tests index generation for the User model
func TestUserIndexDDL(t *testing.T) {
	u := schema.User{}
	indexes := u.IndexDDL()

	// Should return indexes
	require.NotEmpty(t, indexes, "User should have secondary indexes")

	// Convert to single string for easier searching
	allIndexes := strings.Join(indexes, "\n")

	// Should have indexes on username and city
	assert.Contains(t, allIndexes, "users(username)")
	assert.Contains(t, allIndexes, "users(city)")
}

// TestSessionTableDDL tests DDL generation for the Session model
func TestSessionTableDDL(t *testing.T) {
	s := schema.Session{}
	ddl := s.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE sessions")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should reference the owning user
	assert.Contains(t, ddl, "user_id UUID NOT NULL")

	// Should have token with length limit
	assert.Contains(t, ddl, "token VARCHAR(64) NOT NULL")

	// Should have expiry check
	assert.Contains(t, ddl, "expires_at > created_at")
}

// TestAuditEventTableDDL tests DDL generation for the AuditEvent model
func TestAuditEventTableDDL(t *testing.T) {
	ae := schema.AuditEvent{}
	ddl := ae.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE audit_events")

	// Should have growing integer primary key
	assert.Contains(t, ddl, "id BIGSERIAL PRIMARY KEY")

	// Should require a non-empty action
	assert.Contains(t, ddl, "action VARCHAR(50) NOT NULL")
	assert.Contains(t, ddl, "char_length(action) > 0")

	// Should have payload field
	assert.Contains(t, ddl, "payload TEXT")
}

// TestSchemaVersionTableDDL tests DDL generation for SchemaVersion model
func TestSchemaVersionTableDDL(t *testing.T) {
	sv := schema.SchemaVersion{}
	ddl := sv.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE schema_versions")

	// Should have version as primary key (TEXT type)
	assert.Contains(t, ddl, "version TEXT PRIMARY KEY")

	// Should have timestamp field
	assert.Contains(t, ddl, "applied_at TIMESTAMP DEFAULT NOW()")
}

// TestAllModelsImplementDDLGenerator tests that all models implement
// the DDLGenerator interface
func TestAllModelsImplementDDLGenerator(t *testing.T) {
	for _, model := range schema.Tables() {
		// Each model should return valid DDL
		ddl := model.TableDDL()
		assert.NotEmpty(t, ddl, "TableDDL should return non-empty string")
		assert.Contains(t, ddl, "CREATE TABLE", "DDL should contain CREATE TABLE")

		// Each model should return a table name
		tableName := model.TableName()
		assert.NotEmpty(t, tableName, "TableName should return non-empty string")

		// IndexDDL should return a slice (may be empty for some models)
		indexes := model.IndexDDL()
		assert.NotNil(t, indexes, "IndexDDL should return non-nil slice")
	}
}
