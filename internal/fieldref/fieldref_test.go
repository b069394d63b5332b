package fieldref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      int
	Name    string
	balance float64 // unexported, invisible to lookups
}

func TestLookup(t *testing.T) {
	row := account{ID: 7, Name: "ada", balance: 12.5}

	t.Run("StructField", func(t *testing.T) {
		v, ok := Lookup(row, "Name")
		require.True(t, ok)
		assert.Equal(t, "ada", v)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		v, ok := Lookup(row, "name")
		require.True(t, ok)
		assert.Equal(t, "ada", v)

		v, ok = Lookup(row, "ID")
		require.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, ok := Lookup(row, "email")
		assert.False(t, ok)
	})

	t.Run("UnexportedFieldIsInvisible", func(t *testing.T) {
		_, ok := Lookup(row, "balance")
		assert.False(t, ok)
	})

	t.Run("PointerToStruct", func(t *testing.T) {
		v, ok := Lookup(&row, "id")
		require.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("NilPointer", func(t *testing.T) {
		var p *account
		_, ok := Lookup(p, "id")
		assert.False(t, ok)
	})

	t.Run("StringKeyedMap", func(t *testing.T) {
		m := map[string]any{"city": "Tokyo"}
		v, ok := Lookup(m, "city")
		require.True(t, ok)
		assert.Equal(t, "Tokyo", v)

		// Map keys match exactly, unlike struct fields.
		_, ok = Lookup(m, "City")
		assert.False(t, ok)
	})

	t.Run("NonStringKeyedMap", func(t *testing.T) {
		_, ok := Lookup(map[int]string{1: "x"}, "1")
		assert.False(t, ok)
	})

	t.Run("ScalarRow", func(t *testing.T) {
		_, ok := Lookup(42, "anything")
		assert.False(t, ok)
	})
}

func TestFields(t *testing.T) {
	t.Run("StructExportedInOrder", func(t *testing.T) {
		got := Fields(account{ID: 7, Name: "ada", balance: 12.5})
		assert.Equal(t, []any{7, "ada"}, got)
	})

	t.Run("MapValues", func(t *testing.T) {
		got := Fields(map[string]any{"a": 1, "b": 2})
		assert.ElementsMatch(t, []any{1, 2}, got)
	})

	t.Run("ScalarYieldsItself", func(t *testing.T) {
		assert.Equal(t, []any{"hello"}, Fields("hello"))
	})

	t.Run("NilPointer", func(t *testing.T) {
		var p *account
		assert.Nil(t, Fields(p))
	})
}
