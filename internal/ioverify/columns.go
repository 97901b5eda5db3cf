package ioverify

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udbase/udb/pkg/schema"
	"github.com/udbase/udb/pkg/verify"
)

// columnInfo mirrors one row of information_schema.columns.
type columnInfo struct {
	Name      string
	DataType  string
	MaxLength int
	Nullable  bool
}

// fetchColumns reads the column catalog of one table.
func fetchColumns(
	ctx context.Context,
	pool *pgxpool.Pool,
	table string,
) ([]columnInfo, error) {
	query := `
		SELECT column_name, data_type, is_nullable,
			COALESCE(character_maximum_length, 0)
		FROM information_schema.columns
		WHERE table_schema = 'public'
		AND table_name = $1
		ORDER BY ordinal_position
	`

	rows, err := pool.Query(ctx, query, table)
	if err != nil {
		return nil, ColumnsQueryError(table, err)
	}
	defer rows.Close()

	var res []columnInfo
	for rows.Next() {
		var col columnInfo
		var nullable string
		err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.MaxLength)
		if err != nil {
			return nil, ColumnsQueryError(table, err)
		}
		col.Nullable = nullable == "YES"
		res = append(res, col)
	}

	if err := rows.Err(); err != nil {
		return nil, ColumnsQueryError(table, err)
	}

	return res, nil
}

// compareColumns checks reported columns against expectations.
// Extra columns in the database are tolerated; missing columns and
// attribute mismatches are reported.
func compareColumns(
	table string,
	expected []schema.ExpectedColumn,
	actual []columnInfo,
) verify.TableResult {
	res := verify.TableResult{Table: table}

	byName := make(map[string]columnInfo, len(actual))
	for _, col := range actual {
		byName[col.Name] = col
	}

	for _, want := range expected {
		got, ok := byName[want.Name]
		if !ok {
			res.Missing = append(res.Missing, want.Name)
			continue
		}
		res.Checked++

		if got.DataType != want.DataType {
			res.Issues = append(res.Issues, verify.ColumnIssue{
				Table:  table,
				Column: want.Name,
				Field:  "data_type",
				Want:   want.DataType,
				Got:    got.DataType,
			})
		}

		if want.MaxLength > 0 && got.MaxLength != want.MaxLength {
			res.Issues = append(res.Issues, verify.ColumnIssue{
				Table:  table,
				Column: want.Name,
				Field:  "max_length",
				Want:   strconv.Itoa(want.MaxLength),
				Got:    strconv.Itoa(got.MaxLength),
			})
		}

		if got.Nullable == want.NotNull {
			nullability := func(notNull bool) string {
				if notNull {
					return "NOT NULL"
				}
				return "NULL"
			}
			res.Issues = append(res.Issues, verify.ColumnIssue{
				Table:  table,
				Column: want.Name,
				Field:  "nullable",
				Want:   nullability(want.NotNull),
				Got:    nullability(!got.Nullable),
			})
		}
	}

	return res
}
