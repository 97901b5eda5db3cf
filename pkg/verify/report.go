// Package verify provides the result types of schema verification.
// The types are pure data; internal/ioverify fills them in.
package verify

import (
	"fmt"
	"time"

	"github.com/gnames/gnfmt"
)

// ColumnIssue describes one mismatch between an expected column and
// what information_schema reports.
type ColumnIssue struct {
	// Table and Column locate the mismatch.
	Table  string
	Column string

	// Field names the compared attribute ('data_type', 'max_length',
	// 'nullable').
	Field string

	// Want and Got hold the expected and reported values.
	Want string
	Got  string
}

// TableResult aggregates column checks for one table.
type TableResult struct {
	// Table is the verified table name.
	Table string

	// Checked is the number of expected columns that were compared.
	Checked int

	// Missing lists expected columns absent from the database.
	Missing []string

	// Issues lists attribute mismatches on present columns.
	Issues []ColumnIssue
}

// OK reports whether the table passed all column checks.
func (tr TableResult) OK() bool {
	return len(tr.Missing) == 0 && len(tr.Issues) == 0
}

// ProbeResult records the outcome of one constraint probe. A probe
// passes when the database rejects (or, for control probes, accepts)
// the statement exactly as declared.
type ProbeResult struct {
	// Name identifies the probe ('users email without @', ...).
	Name string

	// Table is the probed table.
	Table string

	// Constraint is the constraint name the database was expected to
	// report, empty for probes matched on SQLSTATE alone.
	Constraint string

	// Passed is true when the outcome matched the expectation.
	Passed bool

	// Detail explains a failure; empty on success.
	Detail string
}

// Report is the complete verification outcome.
type Report struct {
	// Database is the name of the verified database.
	Database string

	// Tables holds per-table column check results.
	Tables []TableResult

	// Probes holds constraint probe results.
	Probes []ProbeResult

	// Duration is the wall-clock time of the verification run.
	Duration time.Duration
}

// OK reports whether every check and probe passed.
func (r *Report) OK() bool {
	for _, tr := range r.Tables {
		if !tr.OK() {
			return false
		}
	}
	for _, pr := range r.Probes {
		if !pr.Passed {
			return false
		}
	}
	return true
}

// FailureCount returns the number of failed checks and probes.
func (r *Report) FailureCount() int {
	var res int
	for _, tr := range r.Tables {
		res += len(tr.Missing) + len(tr.Issues)
	}
	for _, pr := range r.Probes {
		if !pr.Passed {
			res++
		}
	}
	return res
}

// Summary returns a one-line human-readable outcome.
func (r *Report) Summary() string {
	var cols int
	for _, tr := range r.Tables {
		cols += tr.Checked
	}

	status := "PASS"
	if !r.OK() {
		status = fmt.Sprintf("FAIL (%d problems)", r.FailureCount())
	}

	return fmt.Sprintf(
		"%s: %d tables, %d columns, %d probes in %s",
		status, len(r.Tables), cols, len(r.Probes),
		gnfmt.TimeString(r.Duration.Seconds()),
	)
}
