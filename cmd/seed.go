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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/udbase/udb/internal/iodb"
	"github.com/udbase/udb/internal/ioseed"
	"github.com/udbase/udb/pkg/config"
)

// getSeedCmd returns the seed command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSeedCmd() *cobra.Command {
	var (
		seedFile string
		truncate bool
	)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load user accounts from a SQLite file",
		Long: `Seed bulk-loads user accounts into the users table.

The seed file is a SQLite database with a users table holding email,
username, birthdate and city columns. Rows are validated before any
data reaches PostgreSQL, account IDs are derived from emails so
re-seeding the same file is reproducible.

Use --truncate to replace existing accounts instead of adding to them.

Examples:
  udb seed --file accounts.sqlite
  udb seed --file accounts.sqlite --truncate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update([]config.Option{
				config.OptSeedFile(seedFile),
				config.OptSeedTruncate(truncate),
			})
			return runSeed(cmd, args)
		},
	}

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "",
		"SQLite file with user accounts (required)")
	seedCmd.Flags().BoolVar(&truncate, "truncate", false,
		"remove existing accounts before seeding")
	_ = seedCmd.MarkFlagRequired("file")

	return seedCmd
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Seeding database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	s := ioseed.NewSeeder(op)
	n, err := s.Seed(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Inserted <em>%s</em> user accounts", humanize.Comma(n))
	return nil
}
