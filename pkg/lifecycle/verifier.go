package lifecycle

import (
	"context"

	"github.com/udbase/udb/pkg/config"
	"github.com/udbase/udb/pkg/verify"
)

// Verifier defines the interface for schema and constraint verification.
//
// Verification has two phases:
//   - column checks: read information_schema and compare against the
//     expected-schema fixture derived from the models
//   - constraint probes: issue statements that must violate declared
//     constraints and assert the database rejects them with the right
//     SQLSTATE and constraint name
//
// Verification is read-only: probe statements run inside transactions
// that are always rolled back.
type Verifier interface {
	// Verify runs all checks and returns the report. The returned
	// error covers infrastructure failures only; a failing check is
	// reported through the Report, not the error.
	Verify(ctx context.Context, cfg *config.Config) (*verify.Report, error)
}
