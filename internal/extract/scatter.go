package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var sectionRe = regexp.MustCompile(`\n\s*\n`)

// Field patterns probed per section when no structured object survived the
// earlier strategies. Order fixes the probe sequence, not the output.
var scatterFields = []struct {
	key string
	re  *regexp.Regexp
}{
	{"name", regexp.MustCompile(`(?i)"name"\s*:\s*"([^"]*)"`)},
	{"company_name", regexp.MustCompile(`(?i)"company_name"\s*:\s*"([^"]*)"`)},
	{"address", regexp.MustCompile(`(?i)"address"\s*:\s*"([^"]*)"`)},
	{"city", regexp.MustCompile(`(?i)"city"\s*:\s*"([^"]*)"`)},
	{"state", regexp.MustCompile(`(?i)"state"\s*:\s*"([^"]*)"`)},
	{"country", regexp.MustCompile(`(?i)"country"\s*:\s*"([^"]*)"`)},
	{"latitude", regexp.MustCompile(`(?i)"latitude"\s*:\s*([0-9.-]+)`)},
	{"longitude", regexp.MustCompile(`(?i)"longitude"\s*:\s*([0-9.-]+)`)},
	{"coordinates", regexp.MustCompile(`(?i)"coordinates"\s*:\s*\[([^\]]+)\]`)},
}

// scanFields splits the text on blank-line boundaries and rebuilds records
// from whatever known fields each section still carries. Only sections that
// yield a name produce a candidate. Records are pre-wrapped in Feature shape
// so they run through the same validator as structured candidates.
func scanFields(content string) []interface{} {
	var candidates []interface{}

	for _, section := range sectionRe.Split(content, -1) {
		if !strings.Contains(section, "name") && !strings.Contains(section, "coordinates") {
			continue
		}

		record := make(map[string]interface{})
		for _, field := range scatterFields {
			match := field.re.FindStringSubmatch(section)
			if match == nil {
				continue
			}
			switch field.key {
			case "latitude", "longitude":
				record[field.key] = json.Number(match[1])
			case "coordinates":
				if pair, ok := parseCoordinatePair(match[1]); ok {
					record[field.key] = pair
				}
			default:
				record[field.key] = match[1]
			}
		}

		if _, ok := record["name"]; !ok {
			continue
		}

		log.Debug().Int("fields", len(record)).Msg("Record rebuilt from scattered fields")
		candidates = append(candidates, wrapRecord(record))
	}

	return candidates
}

// parseCoordinatePair splits the inside of a bracketed array into exactly two
// numbers, kept textual.
func parseCoordinatePair(s string) ([]interface{}, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, false
	}

	pair := make([]interface{}, 0, 2)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if _, err := strconv.ParseFloat(part, 64); err != nil {
			return nil, false
		}
		pair = append(pair, json.Number(part))
	}
	return pair, true
}

// wrapRecord lifts a flat record into Feature shape. The coordinate fields
// stay in place: the resolver consumes them from either the geometry or the
// properties, and the normalizer strips them from the final output.
func wrapRecord(record map[string]interface{}) map[string]interface{} {
	geometry := map[string]interface{}{"type": "Point"}
	if coords, ok := record["coordinates"]; ok {
		geometry["coordinates"] = coords
	}

	return map[string]interface{}{
		"type":       "Feature",
		"geometry":   geometry,
		"properties": record,
	}
}
