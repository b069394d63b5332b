package arrowadapter

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/tablekit"
)

func buildTable(t *testing.T) arrow.Table {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
	}, nil)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"bob", "ada"}, nil)
	b.Field(1).(*array.StringBuilder).AppendNull()
	b.Field(2).(*array.Float64Builder).AppendValues([]float64{2.5, 0, 9.1}, []bool{true, false, true})
	b.Field(3).(*array.BooleanBuilder).AppendValues([]bool{true, false, true}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	t.Cleanup(tbl.Release)
	return tbl
}

func TestFromTable(t *testing.T) {
	t.Run("NilTable", func(t *testing.T) {
		_, _, err := FromTable(nil)
		assert.ErrorIs(t, err, ErrNilTable)
	})

	t.Run("MaterializesRows", func(t *testing.T) {
		rows, cols, err := FromTable(buildTable(t))
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Len(t, cols, 4)

		assert.Equal(t, int64(1), rows[0]["id"])
		assert.Equal(t, "bob", rows[0]["name"])
		assert.Equal(t, 2.5, rows[0]["score"])
		assert.Equal(t, true, rows[0]["active"])

		// Null cells materialize as nil.
		assert.Nil(t, rows[1]["score"])
		assert.Nil(t, rows[2]["name"])
	})

	t.Run("ColumnsFollowSchema", func(t *testing.T) {
		_, cols, err := FromTable(buildTable(t))
		require.NoError(t, err)
		keys := make([]string, len(cols))
		for i, c := range cols {
			keys[i] = c.Key
			assert.True(t, c.Sortable)
		}
		assert.Equal(t, []string{"id", "name", "score", "active"}, keys)
	})
}

func TestPipelineOverArrowRows(t *testing.T) {
	rows, cols, err := FromTable(buildTable(t))
	require.NoError(t, err)

	tbl, err := tablekit.New(
		func(r Row) int64 { return r["id"].(int64) },
		cols,
	)
	require.NoError(t, err)
	tbl.SetRows(rows)

	// Null scores sort below every defined value.
	require.NoError(t, tbl.SortBy("score"))
	v := tbl.View()
	require.Len(t, v.Rows, 3)
	assert.Equal(t, int64(2), v.Rows[0]["id"])
	assert.Equal(t, int64(1), v.Rows[1]["id"])
	assert.Equal(t, int64(3), v.Rows[2]["id"])

	// Free-text search scans the materialized map values.
	tbl.ResetSort()
	tbl.SetQuery("ada")
	v = tbl.View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, int64(2), v.Rows[0]["id"])

	tbl.Toggle(2)
	assert.True(t, tbl.IsSelected(2))
}
