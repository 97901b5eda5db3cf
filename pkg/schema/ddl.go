package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// User DDL methods
func (u User) TableDDL() string {
	return generateDDL(u, "users")
}

func (u User) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_users_username ON users(username);",
		"CREATE INDEX idx_users_city ON users(city);",
	}
}

func (u User) TableName() string {
	return "users"
}

// Session DDL methods
func (s Session) TableDDL() string {
	return generateDDL(s, "sessions")
}

func (s Session) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_sessions_user_id ON sessions(user_id);",
		"CREATE INDEX idx_sessions_expires_at ON sessions(expires_at);",
	}
}

func (s Session) TableName() string {
	return "sessions"
}

// AuditEvent DDL methods
func (ae AuditEvent) TableDDL() string {
	return generateDDL(ae, "audit_events")
}

func (ae AuditEvent) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_audit_events_user_id ON audit_events(user_id);",
		"CREATE INDEX idx_audit_events_created_at ON audit_events(created_at);",
	}
}

func (ae AuditEvent) TableName() string {
	return "audit_events"
}

// SchemaVersion DDL methods
func (sv SchemaVersion) TableDDL() string {
	return generateDDL(sv, "schema_versions")
}

func (sv SchemaVersion) IndexDDL() []string {
	return []string{}
}

func (sv SchemaVersion) TableName() string {
	return "schema_versions"
}
