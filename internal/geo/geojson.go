// Package geo handles GeoJSON data structures, coordinate validation and
// coordinate order disambiguation.
package geo

import "encoding/json"

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry represents the point geometry of a feature. Coordinates are kept
// as json.Number so the textual precision of the source document survives a
// round trip untouched.
type Geometry struct {
	Type        string        `json:"type" yaml:"type"`
	Coordinates []json.Number `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// NewFeatureCollection returns an empty collection ready to append to.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}
