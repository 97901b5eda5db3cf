/*
Copyright © 2025 UDbase Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/udbase/udb/internal/iodb"
	"github.com/udbase/udb/internal/ioverify"
	"github.com/udbase/udb/pkg/config"
	"github.com/udbase/udb/pkg/verify"
)

// getVerifyCmd returns the verify command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getVerifyCmd() *cobra.Command {
	var (
		fixtureFile string
		tables      []string
		skipProbes  bool
	)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify database schema and constraints",
		Long: `Verify checks the live database against the expected schema.

This command:
  1. Compares every expected column (name, type, length, nullability)
     with what information_schema reports
  2. Probes check, not-null and unique constraints with violating
     statements inside transactions that are always rolled back

The database is left exactly as it was found. The command exits with
a non-zero status when any check or probe fails, so it can gate
deployments in CI.

Examples:
  udb verify
  udb verify --table users
  udb verify --fixture expected.yaml
  udb verify --skip-probes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update([]config.Option{
				config.OptVerifyFixtureFile(fixtureFile),
				config.OptVerifyTables(tables),
				config.OptVerifySkipProbes(skipProbes),
			})
			return runVerify(cmd, args)
		},
	}

	verifyCmd.Flags().StringVar(&fixtureFile, "fixture", "",
		"YAML file with expected-schema overrides")
	verifyCmd.Flags().StringSliceVarP(&tables, "table", "t", nil,
		"verify only the given tables (repeatable)")
	verifyCmd.Flags().BoolVar(&skipProbes, "skip-probes", false,
		"skip constraint probes, run column checks only")

	return verifyCmd
}

func runVerify(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Verifying database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	v := ioverify.NewVerifier(op)
	report, err := v.Verify(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printReport(report)

	if !report.OK() {
		return errors.New("verification failed")
	}
	return nil
}

// printReport writes the verification outcome to the terminal,
// failures first.
func printReport(report *verify.Report) {
	for _, tr := range report.Tables {
		if tr.OK() {
			gn.Info("Table <em>%s</em>: %d columns OK",
				tr.Table, tr.Checked)
			continue
		}
		for _, col := range tr.Missing {
			gn.Warn("Table <em>%s</em>: column <em>%s</em> is missing",
				tr.Table, col)
		}
		for _, issue := range tr.Issues {
			gn.Warn(
				"Table <em>%s</em>: column <em>%s</em> %s: want %s, got %s",
				issue.Table, issue.Column, issue.Field,
				issue.Want, issue.Got,
			)
		}
	}

	for _, pr := range report.Probes {
		if pr.Passed {
			continue
		}
		gn.Warn("Probe <em>%s</em> failed: %s", pr.Name, pr.Detail)
	}

	if report.OK() {
		gn.Info("\n%s", report.Summary())
	} else {
		gn.Warn("\n%s", report.Summary())
	}
}
