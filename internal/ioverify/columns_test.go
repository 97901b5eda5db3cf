package ioverify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/pkg/schema"
)

// TestCompareColumns_Match verifies a clean comparison.
func TestCompareColumns_Match(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "id", DataType: "uuid", NotNull: true},
		{Name: "email", DataType: "character varying",
			MaxLength: 255, NotNull: true},
		{Name: "city", DataType: "character varying", MaxLength: 100},
	}
	actual := []columnInfo{
		{Name: "id", DataType: "uuid", Nullable: false},
		{Name: "email", DataType: "character varying",
			MaxLength: 255, Nullable: false},
		{Name: "city", DataType: "character varying",
			MaxLength: 100, Nullable: true},
	}

	res := compareColumns("users", expected, actual)

	assert.True(t, res.OK(), "matching schema should pass")
	assert.Equal(t, 3, res.Checked)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Issues)
}

// TestCompareColumns_Missing verifies missing column detection.
func TestCompareColumns_Missing(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "id", DataType: "uuid", NotNull: true},
		{Name: "city", DataType: "character varying", MaxLength: 100},
	}
	actual := []columnInfo{
		{Name: "id", DataType: "uuid", Nullable: false},
	}

	res := compareColumns("users", expected, actual)

	assert.False(t, res.OK())
	assert.Equal(t, []string{"city"}, res.Missing)
	assert.Equal(t, 1, res.Checked,
		"only present columns count as checked")
}

// TestCompareColumns_TypeMismatch verifies data type comparison.
func TestCompareColumns_TypeMismatch(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "birthdate", DataType: "date"},
	}
	actual := []columnInfo{
		{Name: "birthdate", DataType: "timestamp without time zone",
			Nullable: true},
	}

	res := compareColumns("users", expected, actual)

	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]
	assert.Equal(t, "data_type", issue.Field)
	assert.Equal(t, "date", issue.Want)
	assert.Equal(t, "timestamp without time zone", issue.Got)
}

// TestCompareColumns_LengthMismatch verifies varchar limit comparison.
func TestCompareColumns_LengthMismatch(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "username", DataType: "character varying",
			MaxLength: 50, NotNull: true},
	}
	actual := []columnInfo{
		{Name: "username", DataType: "character varying",
			MaxLength: 60, Nullable: false},
	}

	res := compareColumns("users", expected, actual)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "max_length", res.Issues[0].Field)
	assert.Equal(t, "50", res.Issues[0].Want)
	assert.Equal(t, "60", res.Issues[0].Got)
}

// TestCompareColumns_Nullability verifies NOT NULL comparison in
// both directions.
func TestCompareColumns_Nullability(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "email", DataType: "character varying",
			MaxLength: 255, NotNull: true},
		{Name: "city", DataType: "character varying", MaxLength: 100},
	}
	actual := []columnInfo{
		// email lost its NOT NULL; city gained one
		{Name: "email", DataType: "character varying",
			MaxLength: 255, Nullable: true},
		{Name: "city", DataType: "character varying",
			MaxLength: 100, Nullable: false},
	}

	res := compareColumns("users", expected, actual)

	require.Len(t, res.Issues, 2)
	assert.Equal(t, "nullable", res.Issues[0].Field)
	assert.Equal(t, "NOT NULL", res.Issues[0].Want)
	assert.Equal(t, "NULL", res.Issues[0].Got)
	assert.Equal(t, "NULL", res.Issues[1].Want)
	assert.Equal(t, "NOT NULL", res.Issues[1].Got)
}

// TestCompareColumns_ExtraColumnsTolerated verifies extra database
// columns do not fail verification.
func TestCompareColumns_ExtraColumnsTolerated(t *testing.T) {
	expected := []schema.ExpectedColumn{
		{Name: "id", DataType: "uuid", NotNull: true},
	}
	actual := []columnInfo{
		{Name: "id", DataType: "uuid", Nullable: false},
		{Name: "legacy_flag", DataType: "boolean", Nullable: true},
	}

	res := compareColumns("users", expected, actual)
	assert.True(t, res.OK(), "extra columns are not an error")
}

// TestSelectTables verifies table selection and filtering.
func TestSelectTables(t *testing.T) {
	expected := schema.ExpectedSchema()

	tables, err := selectTables(expected, nil)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"audit_events", "schema_versions", "sessions", "users"},
		tables, "all tables sorted by name")

	tables, err = selectTables(expected, []string{"users", "sessions"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions", "users"}, tables)

	_, err = selectTables(expected, []string{"no_such_table"})
	assert.Error(t, err, "unknown table in filter should be rejected")
}
