package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpectedColumn describes what information_schema should report for a
// single column. It is derived from the same ddl tags that generate the
// CREATE TABLE statements.
type ExpectedColumn struct {
	// Name is the column name.
	Name string `yaml:"name"`

	// DataType matches information_schema.columns.data_type
	// ('character varying', 'uuid', 'timestamp without time zone', ...).
	DataType string `yaml:"data_type"`

	// MaxLength is character_maximum_length for varchar columns,
	// zero for types without a length limit.
	MaxLength int `yaml:"max_length,omitempty"`

	// NotNull is true when the column rejects NULL values.
	NotNull bool `yaml:"not_null,omitempty"`
}

// ExpectedColumns derives the expected column list for a model from its
// db and ddl struct tags.
func ExpectedColumns(model DDLGenerator) []ExpectedColumn {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []ExpectedColumn
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag == "" || ddlTag == "" {
			continue
		}
		res = append(res, parseDDL(dbTag, ddlTag))
	}
	return res
}

// ExpectedSchema returns expectations for every table of the schema,
// keyed by table name.
func ExpectedSchema() map[string][]ExpectedColumn {
	res := make(map[string][]ExpectedColumn)
	for _, model := range Tables() {
		res[model.TableName()] = ExpectedColumns(model)
	}
	return res
}

// ApplyFixture overrides the derived expectations with entries from a
// YAML fixture. The fixture maps table names to full column lists; a
// table present in the fixture replaces the derived list wholesale.
func ApplyFixture(
	expected map[string][]ExpectedColumn,
	fixture []byte,
) error {
	var overrides map[string][]ExpectedColumn
	if err := yaml.Unmarshal(fixture, &overrides); err != nil {
		return fmt.Errorf("cannot parse schema fixture: %w", err)
	}

	for table, cols := range overrides {
		if len(cols) == 0 {
			return fmt.Errorf(
				"schema fixture has no columns for table %q", table)
		}
		expected[table] = cols
	}
	return nil
}

// parseDDL converts one ddl tag into an expectation. The tag starts
// with the SQL type; constraint clauses follow.
func parseDDL(column, ddl string) ExpectedColumn {
	res := ExpectedColumn{Name: column}

	upper := strings.ToUpper(ddl)
	typeToken := strings.Fields(upper)[0]

	switch {
	case strings.HasPrefix(typeToken, "VARCHAR"):
		res.DataType = "character varying"
		res.MaxLength = varcharLength(typeToken)
	case typeToken == "TEXT":
		res.DataType = "text"
	case typeToken == "UUID":
		res.DataType = "uuid"
	case typeToken == "DATE":
		res.DataType = "date"
	case typeToken == "TIMESTAMP":
		res.DataType = "timestamp without time zone"
	case typeToken == "SMALLINT":
		res.DataType = "smallint"
	case typeToken == "INT", typeToken == "INTEGER", typeToken == "SERIAL":
		res.DataType = "integer"
	case typeToken == "BIGINT", typeToken == "BIGSERIAL":
		res.DataType = "bigint"
	case typeToken == "BOOLEAN":
		res.DataType = "boolean"
	default:
		res.DataType = strings.ToLower(typeToken)
	}

	if strings.Contains(upper, "NOT NULL") ||
		strings.Contains(upper, "PRIMARY KEY") {
		res.NotNull = true
	}

	return res
}

// varcharLength extracts n from 'VARCHAR(n)'.
func varcharLength(token string) int {
	open := strings.Index(token, "(")
	end := strings.Index(token, ")")
	if open < 0 || end < open {
		return 0
	}
	n, err := strconv.Atoi(token[open+1 : end])
	if err != nil {
		return 0
	}
	return n
}
