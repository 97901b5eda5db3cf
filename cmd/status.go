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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/udbase/udb/internal/iodb"
	"github.com/udbase/udb/pkg/db"
	"github.com/udbase/udb/pkg/schema"
)

// getStatusCmd returns the status command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getStatusCmd() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show database tables, row counts and schema version",
		Long: `Status reports the state of the UDbase database.

For every managed table it shows whether the table exists and how
many rows it holds, followed by the latest recorded schema version.

Examples:
  udb status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, args)
		},
	}

	return statusCmd
}

func runStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	for _, model := range schema.Tables() {
		table := model.TableName()
		exists, err := op.TableExists(ctx, table)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if !exists {
			gn.Warn("  %-16s missing", table)
			continue
		}

		count, err := op.RowCount(ctx, table)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("  %-16s %s rows", table, humanize.Comma(count))
	}

	version, appliedAt, err := latestVersion(ctx, op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if version == "" {
		gn.Warn("\nNo schema version recorded. Run 'udb create'.")
		return nil
	}

	gn.Info("\nSchema version: <em>%s</em> (applied %s)",
		version, humanize.Time(appliedAt))
	return nil
}

// latestVersion reads the newest row of schema_versions. Returns
// empty version when the table does not exist or holds no rows.
func latestVersion(
	ctx context.Context,
	op db.Operator,
) (string, time.Time, error) {
	var version string
	var appliedAt time.Time

	exists, err := op.TableExists(ctx, "schema_versions")
	if err != nil || !exists {
		return "", appliedAt, err
	}

	q := `
SELECT version, applied_at
	FROM schema_versions
	ORDER BY applied_at DESC
	LIMIT 1`
	err = op.Pool().QueryRow(ctx, q).Scan(&version, &appliedAt)
	if err != nil {
		// No rows means the schema was never recorded.
		return "", appliedAt, nil
	}

	return version, appliedAt, nil
}
