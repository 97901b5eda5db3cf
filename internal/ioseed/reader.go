package ioseed

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// userRecord holds one user row read from a seed file.
type userRecord struct {
	ID        string
	Email     string
	Username  string
	Birthdate sql.NullTime
	City      sql.NullString
	CreatedAt time.Time
}

// accountNamespace makes seed IDs deterministic: the same email
// always maps to the same UUID, so re-seeding is idempotent.
var accountNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("udbase.org"))

// readUsers reads all user rows from a SQLite seed file.
//
// The seed file must contain a `users` table with at least the
// email and username columns; birthdate and city are optional.
func readUsers(path string) ([]userRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, FileNotFoundError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, FileReadError(path, err)
	}
	defer db.Close()

	q := `
SELECT email, username, birthdate, city
	FROM users
	ORDER BY email`
	rows, err := db.Query(q)
	if err != nil {
		return nil, FileReadError(path, err)
	}
	defer rows.Close()

	var res []userRecord
	now := time.Now().UTC()
	for rows.Next() {
		var email, username string
		var birthdate, city sql.NullString
		err = rows.Scan(&email, &username, &birthdate, &city)
		if err != nil {
			return nil, RowError(path, err)
		}

		rec, err := makeUser(email, username, birthdate, city, now)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, FileReadError(path, err)
	}

	return res, nil
}

// makeUser validates one seed row and assigns its deterministic ID.
// Rows that would violate the users table constraints are rejected
// here with a row number-free message, so a bad seed file fails
// before any data reaches PostgreSQL.
func makeUser(
	email, username string,
	birthdate, city sql.NullString,
	now time.Time,
) (userRecord, error) {
	var res userRecord

	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if !strings.Contains(email, "@") || strings.Index(email, "@") < 1 {
		return res, RowError(email, fmt.Errorf("invalid email %q", email))
	}
	if len(username) < 3 || len(username) > 50 {
		return res, RowError(email,
			fmt.Errorf("invalid username %q", username))
	}

	res = userRecord{
		ID:        uuid.NewSHA1(accountNamespace, []byte(email)).String(),
		Email:     email,
		Username:  username,
		CreatedAt: now,
	}

	if birthdate.Valid && birthdate.String != "" {
		t, err := time.Parse("2006-01-02", birthdate.String)
		if err != nil {
			return res, RowError(email,
				fmt.Errorf("invalid birthdate %q: %w", birthdate.String, err))
		}
		res.Birthdate = sql.NullTime{Time: t, Valid: true}
	}
	if city.Valid && strings.TrimSpace(city.String) != "" {
		res.City = sql.NullString{
			String: strings.TrimSpace(city.String),
			Valid:  true,
		}
	}

	return res, nil
}
