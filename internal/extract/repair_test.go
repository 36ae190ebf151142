package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairMissingComma(t *testing.T) {
	chunk := `{
"name": "Santiago DC1"
"city": "Santiago"
}`
	obj, ok := Repair(chunk)
	require.True(t, ok)
	assert.Equal(t, "Santiago DC1", obj["name"])
	assert.Equal(t, "Santiago", obj["city"])
}

func TestRepairUnquotedValue(t *testing.T) {
	obj, ok := Repair(`{"name": Santiago DC1, "city": "Santiago"}`)
	require.True(t, ok)
	assert.Equal(t, "Santiago DC1", obj["name"])
}

func TestRepairUnquotedKey(t *testing.T) {
	obj, ok := Repair(`{name: Santiago DC1, city: Valparaiso}`)
	require.True(t, ok)
	assert.Equal(t, "Santiago DC1", obj["name"])
	assert.Equal(t, "Valparaiso", obj["city"])
}

func TestRepairJSStyleFallback(t *testing.T) {
	// Trailing comma survives the textual substitutions; jsonrepair picks
	// it up.
	obj, ok := Repair(`{"name": "X", "city": "Y",}`)
	require.True(t, ok)
	assert.Equal(t, "X", obj["name"])
	assert.Equal(t, "Y", obj["city"])
}

func TestRepairGivesUp(t *testing.T) {
	t.Run("free text", func(t *testing.T) {
		_, ok := Repair("not an object at all")
		assert.False(t, ok)
	})

	t.Run("non-object value", func(t *testing.T) {
		_, ok := Repair(`[1, 2, 3]`)
		assert.False(t, ok)
	})
}
