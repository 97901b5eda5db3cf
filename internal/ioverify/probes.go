package ioverify

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/udbase/udb/pkg/verify"
)

// PostgreSQL SQLSTATE codes the probes assert on.
const (
	codeNotNull     = "23502"
	codeUnique      = "23505"
	codeCheck       = "23514"
	codeStringTrunc = "22001"
)

// probe is one constraint check: a statement that the database must
// reject (or, when wantCode is empty, accept) while the surrounding
// transaction is rolled back.
type probe struct {
	name  string
	table string
	sql   string
	args  []any

	// wantCode is the expected SQLSTATE; empty means the statement
	// must succeed.
	wantCode string

	// wantConstraint is the constraint name the error must carry;
	// empty skips the name comparison (length violations carry none).
	wantConstraint string
}

// probes returns the constraint suite. Emails embed a fresh UUID so
// control probes never collide with committed rows; every statement
// runs inside a rolled-back transaction.
func probes() []probe {
	validEmail := func() string {
		return fmt.Sprintf("probe-%s@example.com", uuid.NewString())
	}

	return []probe{
		{
			name:  "users accepts a fully valid row",
			table: "users",
			sql: `INSERT INTO users (id, email, username, birthdate, city, created_at)
				VALUES ($1, $2, $3, '1988-04-12', 'Amsterdam', NOW())`,
			args: []any{uuid.NewString(), validEmail(), "valid_user"},
		},
		{
			name:  "users rejects email without @",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, $3, NOW())`,
			args:           []any{uuid.NewString(), "not-an-email", "someone"},
			wantCode:       codeCheck,
			wantConstraint: "users_email_chk",
		},
		{
			name:  "users rejects email with empty local part",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, $3, NOW())`,
			args:           []any{uuid.NewString(), "@example.com", "someone"},
			wantCode:       codeCheck,
			wantConstraint: "users_email_chk",
		},
		{
			name:  "users rejects NULL email",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, NULL, $2, NOW())`,
			args:     []any{uuid.NewString(), "someone"},
			wantCode: codeNotNull,
		},
		{
			name:  "users rejects duplicate email",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, $3, NOW()), ($4, $2, $5, NOW())`,
			args: []any{
				uuid.NewString(), validEmail(), "first_user",
				uuid.NewString(), "second_user",
			},
			wantCode:       codeUnique,
			wantConstraint: "users_email_key",
		},
		{
			name:  "users rejects short username",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, $3, NOW())`,
			args:           []any{uuid.NewString(), validEmail(), "ab"},
			wantCode:       codeCheck,
			wantConstraint: "users_username_chk",
		},
		{
			name:  "users rejects NULL username",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, NULL, NOW())`,
			args:     []any{uuid.NewString(), validEmail()},
			wantCode: codeNotNull,
		},
		{
			name:  "users rejects oversized username",
			table: "users",
			sql: `INSERT INTO users (id, email, username, created_at)
				VALUES ($1, $2, $3, NOW())`,
			args: []any{
				uuid.NewString(), validEmail(),
				"a_very_long_username_that_overflows_fifty_characters",
			},
			wantCode: codeStringTrunc,
		},
		{
			name:  "users rejects oversized city",
			table: "users",
			sql: `INSERT INTO users (id, email, username, city, created_at)
				VALUES ($1, $2, $3, repeat('x', 101), NOW())`,
			args:     []any{uuid.NewString(), validEmail(), "someone"},
			wantCode: codeStringTrunc,
		},
		{
			name:  "users rejects pre-1900 birthdate",
			table: "users",
			sql: `INSERT INTO users (id, email, username, birthdate, created_at)
				VALUES ($1, $2, $3, '1850-06-01', NOW())`,
			args:           []any{uuid.NewString(), validEmail(), "someone"},
			wantCode:       codeCheck,
			wantConstraint: "users_birthdate_chk",
		},
		{
			name:  "sessions rejects expiry before creation",
			table: "sessions",
			sql: `INSERT INTO sessions (id, user_id, token, created_at, expires_at)
				VALUES ($1, $2, $3, NOW(), NOW() - INTERVAL '1 hour')`,
			args: []any{
				uuid.NewString(), uuid.NewString(), "deadbeef",
			},
			wantCode:       codeCheck,
			wantConstraint: "sessions_expiry_chk",
		},
		{
			name:  "sessions rejects NULL token",
			table: "sessions",
			sql: `INSERT INTO sessions (id, user_id, token, expires_at)
				VALUES ($1, $2, NULL, NOW() + INTERVAL '1 hour')`,
			args:     []any{uuid.NewString(), uuid.NewString()},
			wantCode: codeNotNull,
		},
		{
			name:  "audit_events rejects empty action",
			table: "audit_events",
			sql: `INSERT INTO audit_events (user_id, action, created_at)
				VALUES ($1, '', NOW())`,
			args:           []any{uuid.NewString()},
			wantCode:       codeCheck,
			wantConstraint: "audit_events_action_chk",
		},
		{
			name:  "audit_events rejects NULL action",
			table: "audit_events",
			sql: `INSERT INTO audit_events (user_id, action, created_at)
				VALUES ($1, NULL, NOW())`,
			args:     []any{uuid.NewString()},
			wantCode: codeNotNull,
		},
	}
}

// classifyProbe turns the execution outcome of a probe into a result.
func classifyProbe(p probe, execErr error) verify.ProbeResult {
	res := verify.ProbeResult{
		Name:       p.name,
		Table:      p.table,
		Constraint: p.wantConstraint,
	}

	// Control probe: the statement must succeed.
	if p.wantCode == "" {
		if execErr == nil {
			res.Passed = true
			return res
		}
		res.Detail = fmt.Sprintf(
			"valid statement was rejected: %v", execErr)
		return res
	}

	if execErr == nil {
		res.Detail = fmt.Sprintf(
			"statement succeeded, expected SQLSTATE %s", p.wantCode)
		return res
	}

	var pgErr *pgconn.PgError
	if !errors.As(execErr, &pgErr) {
		res.Detail = fmt.Sprintf(
			"expected SQLSTATE %s, got non-database error: %v",
			p.wantCode, execErr)
		return res
	}

	if pgErr.Code != p.wantCode {
		res.Detail = fmt.Sprintf(
			"expected SQLSTATE %s, got %s: %s",
			p.wantCode, pgErr.Code, pgErr.Message)
		return res
	}

	if p.wantConstraint != "" && pgErr.ConstraintName != p.wantConstraint {
		res.Detail = fmt.Sprintf(
			"expected constraint %s, got %q",
			p.wantConstraint, pgErr.ConstraintName)
		return res
	}

	res.Passed = true
	return res
}
