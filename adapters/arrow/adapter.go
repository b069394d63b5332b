// Package arrowadapter feeds Apache Arrow tables into tablekit.
//
// Arrow is a common interchange format for tabular data (Parquet readers,
// Delta Sharing clients, database drivers). The adapter materializes an
// arrow.Table into generic rows and derives column descriptors from the
// schema, so the full search/sort/page/selection pipeline works on Arrow
// data without the caller writing per-type extraction code.
package arrowadapter

import (
	"errors"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/tablekit/tablekit"
)

// ErrNilTable is returned when the source table is nil.
var ErrNilTable = errors.New("arrow table is nil")

// Row is one materialized Arrow row: column name -> Go value. Null cells are
// nil, which the default comparator orders below all defined values.
type Row map[string]any

// Columns derives tablekit column descriptors from an Arrow schema. Every
// column is sortable; callers can adjust the returned slice.
func Columns(schema *arrow.Schema) []tablekit.Column[Row] {
	fields := schema.Fields()
	cols := make([]tablekit.Column[Row], len(fields))
	for i, f := range fields {
		cols[i] = tablekit.Column[Row]{Key: f.Name, Sortable: true}
	}
	return cols
}

// FromTable materializes an Arrow table into rows plus column descriptors.
// The table is read in chunks; it is not retained and may be released by the
// caller afterwards.
func FromTable(t arrow.Table) ([]Row, []tablekit.Column[Row], error) {
	if t == nil {
		return nil, nil, ErrNilTable
	}

	schema := t.Schema()
	fields := schema.Fields()
	rows := make([]Row, 0, t.NumRows())

	tr := array.NewTableReader(t, 1024)
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		n := int(rec.NumRows())
		for r := 0; r < n; r++ {
			row := make(Row, len(fields))
			for c := range fields {
				row[fields[c].Name] = cellValue(rec.Column(c), r)
			}
			rows = append(rows, row)
		}
	}

	return rows, Columns(schema), nil
}

// cellValue extracts a native Go value from an Arrow array at pos.
// Unhandled types fall back to their string rendering.
func cellValue(col arrow.Array, pos int) any {
	if col.IsNull(pos) {
		return nil
	}

	switch col.DataType().ID() {
	case arrow.BOOL:
		return col.(*array.Boolean).Value(pos)
	case arrow.INT8:
		return col.(*array.Int8).Value(pos)
	case arrow.INT16:
		return col.(*array.Int16).Value(pos)
	case arrow.INT32:
		return col.(*array.Int32).Value(pos)
	case arrow.INT64:
		return col.(*array.Int64).Value(pos)
	case arrow.UINT8:
		return col.(*array.Uint8).Value(pos)
	case arrow.UINT16:
		return col.(*array.Uint16).Value(pos)
	case arrow.UINT32:
		return col.(*array.Uint32).Value(pos)
	case arrow.UINT64:
		return col.(*array.Uint64).Value(pos)
	case arrow.FLOAT16:
		return col.(*array.Float16).Value(pos).Float32()
	case arrow.FLOAT32:
		return col.(*array.Float32).Value(pos)
	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos)
	case arrow.STRING:
		return col.(*array.String).Value(pos)
	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)
	case arrow.BINARY:
		return col.(*array.Binary).Value(pos)
	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime()
	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime()
	case arrow.TIMESTAMP:
		dt := col.DataType().(*arrow.TimestampType)
		return col.(*array.Timestamp).Value(pos).ToTime(dt.Unit)
	case arrow.DECIMAL128:
		dt := col.DataType().(*arrow.Decimal128Type)
		return col.(*array.Decimal128).Value(pos).ToFloat64(dt.Scale)
	default:
		return col.ValueStr(pos)
	}
}
