package ioseed

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/jackc/pgx/v5"
	"github.com/udbase/udb/pkg/config"
	"github.com/udbase/udb/pkg/db"
	"github.com/udbase/udb/pkg/lifecycle"
)

type seeder struct {
	operator db.Operator
}

// NewSeeder creates a Seeder that bulk-loads user accounts from a
// SQLite seed file into PostgreSQL.
func NewSeeder(op db.Operator) lifecycle.Seeder {
	return &seeder{operator: op}
}

// Seed reads users from the configured seed file and inserts them
// with pgx CopyFrom. Returns the number of rows written.
func (s *seeder) Seed(
	ctx context.Context,
	cfg *config.Config,
) (int64, error) {
	if s.operator == nil || s.operator.Pool() == nil {
		return 0, NotConnectedError()
	}

	users, err := readUsers(cfg.Seed.File)
	if err != nil {
		return 0, err
	}
	slog.Info("Read seed file",
		"file", cfg.Seed.File, "users", len(users))

	if cfg.Seed.Truncate {
		err = s.truncate(ctx)
		if err != nil {
			return 0, err
		}
	}

	total, err := s.copyUsers(ctx, users, cfg)
	if err != nil {
		return 0, err
	}

	slog.Info("Seeding complete", "inserted", total)
	return total, nil
}

// truncate removes existing account data. Sessions and audit events
// reference users, so they go too.
func (s *seeder) truncate(ctx context.Context) error {
	pool := s.operator.Pool()
	q := "TRUNCATE TABLE sessions, audit_events, users"
	_, err := pool.Exec(ctx, q)
	if err != nil {
		return TruncateError(err)
	}
	slog.Info("Truncated account tables")
	return nil
}

func (s *seeder) copyUsers(
	ctx context.Context,
	users []userRecord,
	cfg *config.Config,
) (int64, error) {
	if len(users) == 0 {
		slog.Info("No users to seed")
		return 0, nil
	}

	pool := s.operator.Pool()
	batchSize := cfg.Database.BatchSize
	if batchSize == 0 {
		batchSize = 10000
	}

	columns := []string{
		"id", "email", "username", "birthdate", "city", "created_at",
	}
	var total int64

	bar := newProgressBar(len(users), "Seeding users: ")
	defer bar.Finish()

	for i := 0; i < len(users); i += batchSize {
		end := i + batchSize
		if end > len(users) {
			end = len(users)
		}
		batch := users[i:end]

		rows := make([][]any, len(batch))
		for j, u := range batch {
			rows[j] = []any{
				u.ID,
				u.Email,
				u.Username,
				u.Birthdate,
				u.City,
				u.CreatedAt,
			}
		}

		copyCount, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{"users"},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return total, CopyError(err)
		}

		total += copyCount
		bar.Add(len(batch))
	}

	slog.Info("Copied users",
		"rows", humanize.Comma(total))
	return total, nil
}
