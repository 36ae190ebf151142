package geo

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Alternate property names probed when neither explicit latitude/longitude
// fields nor a usable coordinates array are present. Order matters.
var (
	latFields = []string{"lat", "latitude", "y", "LAT", "LATITUDE"}
	lonFields = []string{"lon", "lng", "longitude", "x", "LON", "LONGITUDE", "LNG"}
)

// Coordinates carries one resolved longitude/latitude pair. Both values keep
// the exact textual representation they had in the source document.
type Coordinates struct {
	Lon json.Number
	Lat json.Number
}

// Resolve determines the authoritative (lon, lat) pair for a candidate from
// its geometry and properties. Sources are tried in fixed priority order:
// explicit latitude/longitude properties, a two-element coordinates array
// from the geometry, then alternate property names. The boolean is false
// when no source yields a valid pair.
func (r Region) Resolve(geometry, properties map[string]interface{}) (Coordinates, bool) {
	// Explicit latitude/longitude fields win.
	if latRaw, okLat := properties["latitude"]; okLat {
		if lonRaw, okLon := properties["longitude"]; okLon {
			lat, latVal, okLat := asNumber(latRaw)
			lon, lonVal, okLon := asNumber(lonRaw)
			if okLat && okLon && ValidCoordinate(latVal, lonVal) {
				return Coordinates{Lon: lon, Lat: lat}, true
			}
		}
	}

	if pair, ok := geometry["coordinates"].([]interface{}); ok && len(pair) == 2 {
		if c, ok := r.orient(pair[0], pair[1]); ok {
			return c, true
		}
	}

	// Some sources spell the coordinate fields differently.
	lat, latVal, okLat := firstNumber(properties, latFields)
	lon, lonVal, okLon := firstNumber(properties, lonFields)
	if okLat && okLon && ValidCoordinate(latVal, lonVal) {
		return Coordinates{Lon: lon, Lat: lat}, true
	}

	return Coordinates{}, false
}

// orient decides which element of a coordinate pair is the longitude. The
// orientation whose point falls inside the region wins, which corrects pairs
// written [lat, lon] even when both orientations are globally valid. If
// neither orientation hits the region, plain global validity decides and the
// original orientation is preferred.
func (r Region) orient(a, b interface{}) (Coordinates, bool) {
	aNum, aVal, okA := asNumber(a)
	bNum, bVal, okB := asNumber(b)
	if !okA || !okB {
		return Coordinates{}, false
	}

	switch {
	case r.Contains(bVal, aVal): // [lon, lat] as GeoJSON expects
		return Coordinates{Lon: aNum, Lat: bNum}, true
	case r.Contains(aVal, bVal): // [lat, lon], swapped in the source
		return Coordinates{Lon: bNum, Lat: aNum}, true
	case ValidCoordinate(bVal, aVal):
		return Coordinates{Lon: aNum, Lat: bNum}, true
	case ValidCoordinate(aVal, bVal):
		return Coordinates{Lon: bNum, Lat: aNum}, true
	}

	return Coordinates{}, false
}

// firstNumber returns the first key from the priority list whose value
// parses as a number.
func firstNumber(properties map[string]interface{}, keys []string) (json.Number, float64, bool) {
	for _, key := range keys {
		raw, ok := properties[key]
		if !ok {
			continue
		}
		if num, val, ok := asNumber(raw); ok {
			return num, val, true
		}
	}
	return "", 0, false
}

// asNumber converts a raw value into its textual number form plus the float
// used for range checks. Strings are accepted because the repair heuristic
// quotes numeric values it touches.
func asNumber(raw interface{}) (json.Number, float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		val, err := v.Float64()
		if err != nil {
			return "", 0, false
		}
		return v, val, true
	case string:
		s := strings.TrimSpace(v)
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", 0, false
		}
		return json.Number(s), val, true
	case float64:
		// Only reachable for values decoded without UseNumber.
		return json.Number(strconv.FormatFloat(v, 'f', -1, 64)), v, true
	case int:
		return json.Number(strconv.Itoa(v)), float64(v), true
	}
	return "", 0, false
}
