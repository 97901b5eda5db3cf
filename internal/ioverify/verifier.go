// Package ioverify implements the Verifier interface. It compares the
// live database against the expected schema and probes the declared
// data-integrity constraints. This is an impure I/O package; the pure
// expectations live in pkg/schema, the result types in pkg/verify.
package ioverify

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/udbase/udb/pkg/config"
	"github.com/udbase/udb/pkg/db"
	"github.com/udbase/udb/pkg/lifecycle"
	"github.com/udbase/udb/pkg/schema"
	"github.com/udbase/udb/pkg/verify"
	"golang.org/x/sync/errgroup"
)

// verifier implements the lifecycle.Verifier interface.
type verifier struct {
	operator db.Operator
}

// NewVerifier creates a new Verifier.
func NewVerifier(op db.Operator) lifecycle.Verifier {
	return &verifier{operator: op}
}

// Verify runs column checks for every table concurrently, then the
// constraint probes sequentially. Probe statements run inside
// transactions that are always rolled back, so verification leaves
// no data behind.
func (v *verifier) Verify(
	ctx context.Context,
	cfg *config.Config,
) (*verify.Report, error) {
	if v.operator == nil || v.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	start := time.Now()

	expected := schema.ExpectedSchema()
	if cfg.Verify.FixtureFile != "" {
		data, err := os.ReadFile(cfg.Verify.FixtureFile)
		if err != nil {
			return nil, FixtureError(cfg.Verify.FixtureFile, err)
		}
		if err := schema.ApplyFixture(expected, data); err != nil {
			return nil, FixtureError(cfg.Verify.FixtureFile, err)
		}
	}

	tables, err := selectTables(expected, cfg.Verify.Tables)
	if err != nil {
		return nil, err
	}

	report := &verify.Report{
		Database: cfg.Database.Database,
		Tables:   make([]verify.TableResult, len(tables)),
	}

	// Column checks are read-only and independent per table.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)

	for i, table := range tables {
		g.Go(func() error {
			res, err := v.verifyTable(gCtx, table, expected[table])
			if err != nil {
				return err
			}
			report.Tables[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Constraint probes mutate inside rolled-back transactions and
	// run sequentially over the shared pool.
	if !cfg.Verify.SkipProbes {
		verified := make(map[string]bool, len(tables))
		for _, t := range tables {
			verified[t] = true
		}

		for _, p := range probes() {
			if !verified[p.table] {
				continue
			}
			res, err := v.runProbe(ctx, p)
			if err != nil {
				return nil, err
			}
			if !res.Passed {
				slog.Warn("Constraint probe failed",
					"probe", res.Name, "detail", res.Detail)
			}
			report.Probes = append(report.Probes, res)
		}
	}

	report.Duration = time.Since(start)
	slog.Info("Verification finished",
		"database", report.Database,
		"tables", len(report.Tables),
		"probes", len(report.Probes),
		"failures", report.FailureCount(),
	)

	return report, nil
}

// verifyTable checks one table's columns against expectations.
// A table missing entirely reports all expected columns as missing.
func (v *verifier) verifyTable(
	ctx context.Context,
	table string,
	expected []schema.ExpectedColumn,
) (verify.TableResult, error) {
	exists, err := v.operator.TableExists(ctx, table)
	if err != nil {
		return verify.TableResult{}, err
	}

	if !exists {
		res := verify.TableResult{Table: table}
		for _, col := range expected {
			res.Missing = append(res.Missing, col.Name)
		}
		return res, nil
	}

	actual, err := fetchColumns(ctx, v.operator.Pool(), table)
	if err != nil {
		return verify.TableResult{}, err
	}

	return compareColumns(table, expected, actual), nil
}

// runProbe executes one probe inside its own transaction and rolls
// it back regardless of the outcome.
func (v *verifier) runProbe(
	ctx context.Context,
	p probe,
) (verify.ProbeResult, error) {
	tx, err := v.operator.Pool().Begin(ctx)
	if err != nil {
		return verify.ProbeResult{}, ProbeTxError(p.name, err)
	}

	_, execErr := tx.Exec(ctx, p.sql, p.args...)
	_ = tx.Rollback(ctx)

	return classifyProbe(p, execErr), nil
}

// selectTables picks and orders the tables to verify. An unknown name
// in the filter is an error rather than a silent no-op.
func selectTables(
	expected map[string][]schema.ExpectedColumn,
	filter []string,
) ([]string, error) {
	if len(filter) == 0 {
		tables := make([]string, 0, len(expected))
		for t := range expected {
			tables = append(tables, t)
		}
		slices.Sort(tables)
		return tables, nil
	}

	var tables []string
	for _, t := range filter {
		if _, ok := expected[t]; !ok {
			return nil, UnknownTableError(t)
		}
		tables = append(tables, t)
	}
	slices.Sort(tables)
	return slices.Compact(tables), nil
}
