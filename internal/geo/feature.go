package geo

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrInvalidShape marks candidates that are not Feature-typed objects.
	ErrInvalidShape = errors.New("candidate is not a Feature object")
	// ErrNoCoordinates marks candidates without any resolvable coordinate pair.
	ErrNoCoordinates = errors.New("no valid coordinates found")
)

// Validate converts a raw extracted candidate into a canonical point Feature.
// Candidates that are not Feature-shaped objects or that lack a resolvable
// coordinate pair are rejected as a whole, never partially emitted.
func (r Region) Validate(candidate interface{}) (Feature, error) {
	obj, ok := candidate.(map[string]interface{})
	if !ok {
		return Feature{}, ErrInvalidShape
	}
	if t, _ := obj["type"].(string); t != "Feature" {
		return Feature{}, ErrInvalidShape
	}

	geometry, _ := obj["geometry"].(map[string]interface{})
	properties, _ := obj["properties"].(map[string]interface{})

	coords, ok := r.Resolve(geometry, properties)
	if !ok {
		return Feature{}, ErrNoCoordinates
	}

	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []json.Number{coords.Lon, coords.Lat},
		},
		Properties: normalizeProperties(properties),
	}, nil
}

// normalizeProperties drops the coordinate fields consumed by the resolver
// and every empty value, trimming string values on the way through.
func normalizeProperties(properties map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(properties))
	for key, value := range properties {
		if key == "latitude" || key == "longitude" || key == "coordinates" {
			continue
		}
		switch v := value.(type) {
		case nil:
			continue
		case string:
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			cleaned[key] = v
		default:
			cleaned[key] = value
		}
	}
	return cleaned
}
