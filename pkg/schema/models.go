// Package schema provides database schema models for UDb.
// The same struct tags drive DDL generation and the expected-schema
// fixture used by verification, so the two cannot drift apart.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// User is an account record. Data-integrity rules live in the database:
// check constraints guard email shape, username length and birthdate
// range, and the column types carry the length limits.
type User struct {
	// ID is UUID v5 generated from the email address.
	ID string `db:"id" ddl:"UUID PRIMARY KEY" gorm:"type:uuid;primaryKey"`

	// Email is the unique sign-in address. The check constraint requires
	// at least one character before the '@'.
	Email string `db:"email" ddl:"VARCHAR(255) NOT NULL UNIQUE CHECK (position('@' in email) > 1)" gorm:"type:varchar(255);not null;uniqueIndex:users_email_key;check:users_email_chk,position('@' in email) > 1"`

	// Username is the public handle, at least three characters long.
	Username string `db:"username" ddl:"VARCHAR(50) NOT NULL CHECK (char_length(username) >= 3)" gorm:"type:varchar(50);not null;check:users_username_chk,char_length(username) >= 3"`

	// Birthdate is optional; when present it must be after 1900-01-01.
	Birthdate sql.NullTime `db:"birthdate" ddl:"DATE CHECK (birthdate > '1900-01-01')" gorm:"type:date;check:users_birthdate_chk,birthdate > '1900-01-01'"`

	// City is an optional free-form location.
	City sql.NullString `db:"city" ddl:"VARCHAR(100)" gorm:"type:varchar(100)"`

	// CreatedAt records when the account was created.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL DEFAULT NOW()" gorm:"type:timestamp;not null;default:now()"`

	// UpdatedAt records the last modification, if any.
	UpdatedAt sql.NullTime `db:"updated_at" ddl:"TIMESTAMP" gorm:"type:timestamp"`
}

// Session is an authentication session bound to a user.
type Session struct {
	// ID is a random UUID assigned at login.
	ID string `db:"id" ddl:"UUID PRIMARY KEY" gorm:"type:uuid;primaryKey"`

	// UserID refers to the owning user record.
	UserID string `db:"user_id" ddl:"UUID NOT NULL" gorm:"type:uuid;not null"`

	// Token is an opaque session token.
	Token string `db:"token" ddl:"VARCHAR(64) NOT NULL" gorm:"type:varchar(64);not null"`

	// CreatedAt is when the session started.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL DEFAULT NOW()" gorm:"type:timestamp;not null;default:now()"`

	// ExpiresAt must be after CreatedAt.
	ExpiresAt time.Time `db:"expires_at" ddl:"TIMESTAMP NOT NULL CHECK (expires_at > created_at)" gorm:"type:timestamp;not null;check:sessions_expiry_chk,expires_at > created_at"`
}

// AuditEvent is an append-only record of account activity.
type AuditEvent struct {
	// ID is a monotonically growing identifier.
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY" gorm:"type:bigserial;primaryKey"`

	// UserID refers to the user the event belongs to, if any.
	UserID sql.NullString `db:"user_id" ddl:"UUID" gorm:"type:uuid"`

	// Action names what happened ('login', 'email_change', etc).
	Action string `db:"action" ddl:"VARCHAR(50) NOT NULL CHECK (char_length(action) > 0)" gorm:"type:varchar(50);not null;check:audit_events_action_chk,char_length(action) > 0"`

	// Payload holds optional JSON-encoded event details.
	Payload sql.NullString `db:"payload" ddl:"TEXT" gorm:"type:text"`

	// CreatedAt is when the event was recorded.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL DEFAULT NOW()" gorm:"type:timestamp;not null;default:now()"`
}

// SchemaVersion tracks database schema migrations.
type SchemaVersion struct {
	Version     string    `db:"version" ddl:"TEXT PRIMARY KEY" gorm:"type:text;primaryKey"`
	Description string    `db:"description" ddl:"TEXT" gorm:"type:text"`
	AppliedAt   time.Time `db:"applied_at" ddl:"TIMESTAMP DEFAULT NOW()" gorm:"type:timestamp;default:now()"`
}
