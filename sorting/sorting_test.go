package sorting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Name  string
	Group string
}

func testItems() []item {
	return []item{
		{ID: 1, Name: "b", Group: "x"},
		{ID: 2, Name: "a", Group: "y"},
		{ID: 3, Name: "c", Group: "x"},
		{ID: 4, Name: "a", Group: "z"},
	}
}

func byName(a, b item) int {
	return strings.Compare(a.Name, b.Name)
}

func ids(rows []item) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
	assert.Equal(t, "unknown(7)", Direction(7).String())
}

func TestStateCycle(t *testing.T) {
	t.Run("SameColumn", func(t *testing.T) {
		s := State{}
		s = s.Cycle("name")
		assert.Equal(t, State{Key: "name", Direction: Ascending}, s)
		s = s.Cycle("name")
		assert.Equal(t, State{Key: "name", Direction: Descending}, s)
		s = s.Cycle("name")
		assert.Equal(t, State{}, s)
		assert.False(t, s.IsSorted())
	})

	t.Run("DifferentColumnResetsToAscending", func(t *testing.T) {
		s := State{Key: "name", Direction: Descending}
		s = s.Cycle("age")
		assert.Equal(t, State{Key: "age", Direction: Ascending}, s)
	})
}

func TestApply(t *testing.T) {
	t.Run("Ascending", func(t *testing.T) {
		got := Apply(testItems(), byName, Ascending)
		assert.Equal(t, []int{2, 4, 1, 3}, ids(got))
	})

	t.Run("NoneIsIdentity", func(t *testing.T) {
		rows := testItems()
		got := Apply(rows, byName, None)
		assert.Same(t, &rows[0], &got[0])
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		rows := testItems()
		Apply(rows, byName, Ascending)
		assert.Equal(t, []int{1, 2, 3, 4}, ids(rows))
	})

	t.Run("Stability", func(t *testing.T) {
		byGroup := func(a, b item) int { return strings.Compare(a.Group, b.Group) }
		got := Apply(testItems(), byGroup, Ascending)
		// Group "x" holds IDs 1 and 3; they keep their input order.
		assert.Equal(t, []int{1, 3, 2, 4}, ids(got))
	})

	t.Run("DescendingKeepsAscendingTieOrder", func(t *testing.T) {
		// IDs 2 and 4 tie on "a" and must appear in their ascending relative
		// order (2 before 4) even when descending.
		got := Apply(testItems(), byName, Descending)
		assert.Equal(t, []int{3, 1, 2, 4}, ids(got))
	})
}

func TestFieldComparator(t *testing.T) {
	t.Run("StructField", func(t *testing.T) {
		cmp := FieldComparator[item]("Name")
		got := Apply(testItems(), cmp, Ascending)
		assert.Equal(t, []int{2, 4, 1, 3}, ids(got))
	})

	t.Run("MissingValuesSortBelowDefined", func(t *testing.T) {
		rows := []map[string]any{
			{"id": 1, "score": 5},
			{"id": 2},
			{"id": 3, "score": 1},
		}
		cmp := FieldComparator[map[string]any]("score")
		got := Apply(rows, cmp, Ascending)
		require.Len(t, got, 3)
		assert.Equal(t, 2, got[0]["id"])
		assert.Equal(t, 3, got[1]["id"])
		assert.Equal(t, 1, got[2]["id"])
	})
}

func TestCompareValues(t *testing.T) {
	t.Run("Numbers", func(t *testing.T) {
		assert.Negative(t, CompareValues(1, 2))
		assert.Positive(t, CompareValues(2.5, 2))
		assert.Zero(t, CompareValues(2, 2.0))
		assert.Negative(t, CompareValues(int8(3), uint64(4)))
	})

	t.Run("Strings", func(t *testing.T) {
		assert.Negative(t, CompareValues("a", "b"))
		assert.Zero(t, CompareValues("a", "a"))
	})

	t.Run("Bools", func(t *testing.T) {
		assert.Negative(t, CompareValues(false, true))
		assert.Positive(t, CompareValues(true, false))
		assert.Zero(t, CompareValues(true, true))
	})

	t.Run("Times", func(t *testing.T) {
		early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		late := early.Add(time.Hour)
		assert.Negative(t, CompareValues(early, late))
		assert.Zero(t, CompareValues(early, early))
	})

	t.Run("NilBelowEverything", func(t *testing.T) {
		assert.Negative(t, CompareValues(nil, 0))
		assert.Positive(t, CompareValues("", nil))
		assert.Zero(t, CompareValues(nil, nil))
	})

	t.Run("MixedKindsFallBackToText", func(t *testing.T) {
		assert.Zero(t, CompareValues("1", 1))
	})
}
