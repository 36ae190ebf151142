package main

import (
	"testing"

	"github.com/geoandes/datacenter-geo/internal/config"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestResolveViewDefaults(t *testing.T) {
	view := resolveView(nil, &Options{})

	assert.Equal(t, "Mapa", view.Title)
	assert.Equal(t, "fibra óptica", view.LayerName)
	assert.Equal(t, -39.1, view.CenterLat)
	assert.Equal(t, -73.18, view.CenterLon)
	assert.Equal(t, 12, view.Zoom)
}

func TestResolveViewConfigOverridesDefaults(t *testing.T) {
	cfg := &config.Config{Map: config.Map{
		Title:     "Centros de datos",
		Layer:     "centros",
		CenterLat: floatPtr(-33.45),
		CenterLon: floatPtr(-70.67),
		Zoom:      intPtr(10),
	}}

	view := resolveView(cfg, &Options{})

	assert.Equal(t, "Centros de datos", view.Title)
	assert.Equal(t, "centros", view.LayerName)
	assert.Equal(t, -33.45, view.CenterLat)
	assert.Equal(t, -70.67, view.CenterLon)
	assert.Equal(t, 10, view.Zoom)
}

func TestResolveViewFlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{Map: config.Map{
		CenterLat: floatPtr(-33.45),
		CenterLon: floatPtr(-70.67),
		Zoom:      intPtr(10),
	}}
	opts := &Options{
		CenterLat: floatPtr(-36.82),
		CenterLon: floatPtr(-73.05),
		Zoom:      intPtr(14),
	}

	view := resolveView(cfg, opts)

	assert.Equal(t, -36.82, view.CenterLat)
	assert.Equal(t, -73.05, view.CenterLon)
	assert.Equal(t, 14, view.Zoom)
}

func TestResolveViewZeroValuesHonored(t *testing.T) {
	t.Run("configured equator center", func(t *testing.T) {
		cfg := &config.Config{Map: config.Map{
			CenterLat: floatPtr(0),
			CenterLon: floatPtr(0),
			Zoom:      intPtr(0),
		}}

		view := resolveView(cfg, &Options{})

		assert.Equal(t, 0.0, view.CenterLat)
		assert.Equal(t, 0.0, view.CenterLon)
		assert.Equal(t, 0, view.Zoom)
	})

	t.Run("zero flags", func(t *testing.T) {
		opts := &Options{
			CenterLat: floatPtr(0),
			CenterLon: floatPtr(0),
			Zoom:      intPtr(0),
		}

		view := resolveView(nil, opts)

		assert.Equal(t, 0.0, view.CenterLat)
		assert.Equal(t, 0.0, view.CenterLon)
		assert.Equal(t, 0, view.Zoom)
	})
}
