package lifecycle

import (
	"context"

	"github.com/udbase/udb/pkg/config"
)

// Seeder defines the interface for importing sample user records.
// Records come from a SQLite file and are bulk-inserted into
// PostgreSQL in batches.
type Seeder interface {
	// Seed reads user records from cfg.Seed.File and inserts them.
	// Returns the number of inserted rows.
	Seed(ctx context.Context, cfg *config.Config) (int64, error)
}
