package geo

import "github.com/paulmach/orb"

// Region is a latitude/longitude bounding box used to disambiguate coordinate
// order when both orientations of a pair are numerically plausible.
type Region struct {
	Bound orb.Bound
}

// Chile covers the mainland plus Easter Island and the southern islands:
// latitude -56..-17, longitude -109..-66.
var Chile = NewRegion(-56, -17, -109, -66)

// World covers the full valid WGS84 coordinate ranges.
var World = NewRegion(-90, 90, -180, 180)

// NewRegion builds a region from latitude and longitude extents.
func NewRegion(minLat, maxLat, minLon, maxLon float64) Region {
	return Region{Bound: orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}}
}

// Contains reports whether the point lies inside the region, bounds inclusive.
func (r Region) Contains(lat, lon float64) bool {
	return r.Bound.Contains(orb.Point{lon, lat})
}

// ValidCoordinate reports whether the pair is a plausible global coordinate.
func ValidCoordinate(lat, lon float64) bool {
	return World.Contains(lat, lon)
}
