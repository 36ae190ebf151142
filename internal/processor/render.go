package processor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/geoandes/datacenter-geo/internal/extract"

	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// MapView describes the initial viewport and labels of a rendered map.
type MapView struct {
	Title     string
	LayerName string
	CenterLat float64
	CenterLon float64
	Zoom      int
}

const mapTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
	maxZoom: 19,
	attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
var overlay = L.geoJSON({{.GeoJSON}}).addTo(map);
L.control.layers(null, {"{{.LayerName}}": overlay}).addTo(map);
</script>
</body>
</html>
`

// RenderMap extracts the JSON literal embedded in a JavaScript source file
// and writes a self-contained Leaflet page showing it.
func RenderMap(inputPath, outputPath string, view MapView) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	geojson, err := ExtractEmbeddedJSON(string(data))
	if err != nil {
		return fmt.Errorf("extract embedded JSON: %w", err)
	}
	log.Info().Str("path", inputPath).Int("bytes", len(geojson)).Msg("Embedded JSON extracted")

	tmpl, err := template.New("map").Parse(mapTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	page := struct {
		MapView
		GeoJSON string
	}{view, string(geojson)}
	if err := tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)

	final, err := m.String("text/html", buf.String())
	if err != nil {
		return fmt.Errorf("minify page: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(final), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().Str("path", outputPath).Int("bytes", len(final)).Msg("Map page written")
	return nil
}

// ExtractEmbeddedJSON pulls the first JSON object literal out of JavaScript
// source like "var datos = {...};". JS-flavored notation goes through
// jsonrepair before giving up. The literal is re-marshaled compact, with
// numbers kept textual.
func ExtractEmbeddedJSON(content string) (json.RawMessage, error) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return nil, errors.New("no object literal found")
	}

	literal := strings.TrimSpace(content[start:])
	literal = strings.TrimSuffix(literal, ";")

	doc, err := extract.Decode(literal)
	if err != nil {
		fixed, repairErr := jsonrepair.JSONRepair(literal)
		if repairErr != nil {
			return nil, fmt.Errorf("parse object literal: %w", err)
		}
		if doc, err = extract.Decode(fixed); err != nil {
			return nil, fmt.Errorf("parse repaired literal: %w", err)
		}
	}

	if _, ok := doc.(map[string]interface{}); !ok {
		return nil, errors.New("embedded literal is not an object")
	}

	return json.Marshal(doc)
}
