package ioseed

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/pkg/errcode"
	_ "modernc.org/sqlite"
)

// writeSeedFile creates a SQLite seed file with the given user rows.
func writeSeedFile(t *testing.T, rows [][4]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE users (
	email TEXT,
	username TEXT,
	birthdate TEXT,
	city TEXT
)`)
	require.NoError(t, err)

	for _, r := range rows {
		_, err = db.Exec(
			"INSERT INTO users (email, username, birthdate, city) VALUES (?, ?, ?, ?)",
			r[0], r[1], r[2], r[3],
		)
		require.NoError(t, err)
	}
	return path
}

func TestReadUsers(t *testing.T) {
	path := writeSeedFile(t, [][4]any{
		{"ada@example.com", "ada", "1991-12-10", "London"},
		{"blaise@example.com", "blaise", nil, nil},
	})

	users, err := readUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "ada@example.com", users[0].Email)
	assert.Equal(t, "ada", users[0].Username)
	assert.True(t, users[0].Birthdate.Valid)
	assert.Equal(t, 1991, users[0].Birthdate.Time.Year())
	assert.Equal(t, "London", users[0].City.String)

	assert.Equal(t, "blaise@example.com", users[1].Email)
	assert.False(t, users[1].Birthdate.Valid)
	assert.False(t, users[1].City.Valid)
}

func TestReadUsers_DeterministicIDs(t *testing.T) {
	path := writeSeedFile(t, [][4]any{
		{"ada@example.com", "ada", nil, nil},
	})

	first, err := readUsers(path)
	require.NoError(t, err)
	second, err := readUsers(path)
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID,
		"Same email should always map to the same ID")
	assert.NotEmpty(t, first[0].ID)
}

func TestReadUsers_MissingFile(t *testing.T) {
	_, err := readUsers("/no/such/file.sqlite")
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SeedFileNotFoundError, gnErr.Code)
}

func TestReadUsers_BadRows(t *testing.T) {
	tests := []struct {
		msg  string
		row  [4]any
	}{
		{"email without @", [4]any{"not-an-email", "ada", nil, nil}},
		{"email starting with @", [4]any{"@example.com", "ada", nil, nil}},
		{"short username", [4]any{"ada@example.com", "ab", nil, nil}},
		{"bad birthdate", [4]any{"ada@example.com", "ada", "12/10/1991", nil}},
	}

	for _, v := range tests {
		path := writeSeedFile(t, [][4]any{v.row})
		_, err := readUsers(path)
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr, v.msg)
		assert.Equal(t, errcode.SeedRowError, gnErr.Code, v.msg)
	}
}

func TestMakeUser_TrimsWhitespace(t *testing.T) {
	rec, err := makeUser(
		" ada@example.com ", " ada ",
		sql.NullString{}, sql.NullString{String: " London ", Valid: true},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", rec.Email)
	assert.Equal(t, "ada", rec.Username)
	assert.Equal(t, "London", rec.City.String)
}
