package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmbeddedJSON(t *testing.T) {
	t.Run("var assignment with semicolon", func(t *testing.T) {
		raw, err := ExtractEmbeddedJSON(`var datos = {"type": "FeatureCollection", "features": []};`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type": "FeatureCollection", "features": []}`, string(raw))
	})

	t.Run("precision survives re-marshal", func(t *testing.T) {
		raw, err := ExtractEmbeddedJSON(`var x = {"lon": -73.1799999912345};`)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "-73.1799999912345")
	})

	t.Run("js notation repaired", func(t *testing.T) {
		raw, err := ExtractEmbeddedJSON(`var datos = {name: 'fibra', tramos: [1, 2,],};`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "fibra", "tramos": [1, 2]}`, string(raw))
	})

	t.Run("no object literal", func(t *testing.T) {
		_, err := ExtractEmbeddedJSON(`var x = [1, 2, 3];`)
		assert.Error(t, err)
	})

	t.Run("plain text", func(t *testing.T) {
		_, err := ExtractEmbeddedJSON("no braces here")
		assert.Error(t, err)
	})
}

func TestRenderMap(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "datos.js")
	output := filepath.Join(dir, "mapa.html")
	js := `var datos = {"type": "FeatureCollection", "features": [
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-73.18, -39.1]}, "properties": {"name": "tramo 1"}}
]};`
	require.NoError(t, os.WriteFile(input, []byte(js), 0644))

	view := MapView{Title: "Mapa", LayerName: "fibra", CenterLat: -39.1, CenterLon: -73.18, Zoom: 12}
	require.NoError(t, RenderMap(input, output, view))

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), "leaflet.js")
	assert.Contains(t, string(page), "FeatureCollection")
	assert.Contains(t, string(page), "tramo 1")
}

func TestRenderMapMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := RenderMap(filepath.Join(dir, "nope.js"), filepath.Join(dir, "out.html"), MapView{Zoom: 12})
	assert.Error(t, err)
}
