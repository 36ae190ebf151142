// Package extract recovers Feature-like records from possibly malformed text.
// Extraction strategies run in fixed priority order and the first one that
// produces at least one candidate wins: full document parse, brace-balanced
// line accumulation, Feature pattern scan, per-field scatter extraction.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// featureRe matches a JSON object containing "type": "Feature", allowing one
// level of nested braces for the geometry and properties objects.
var featureRe = regexp.MustCompile(`\{[^{}]*"type"\s*:\s*"Feature"[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)

// Candidates extracts Feature candidates from raw text. The returned values
// are untyped; the geo validator decides what survives.
func Candidates(content string) []interface{} {
	if candidates := parseDocument(content); len(candidates) > 0 {
		return candidates
	}

	candidates := scanBalanced(content)
	if len(candidates) == 0 {
		candidates = scanPattern(content)
	}
	if len(candidates) == 0 {
		log.Debug().Msg("Structured extraction produced nothing, scanning for scattered fields")
		candidates = scanFields(content)
	}

	return candidates
}

// parseDocument handles input that is already a whole JSON document: a
// FeatureCollection, a bare array of features, or a single Feature object.
func parseDocument(content string) []interface{} {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil
	}

	parsed, err := Decode(trimmed)
	if err != nil {
		log.Debug().Err(err).Msg("Full document parse failed, trying other strategies")
		return nil
	}

	switch doc := parsed.(type) {
	case map[string]interface{}:
		if features, ok := doc["features"].([]interface{}); ok {
			return features
		}
		if t, _ := doc["type"].(string); t == "Feature" {
			return []interface{}{doc}
		}
	case []interface{}:
		return doc
	}

	return nil
}

// scanBalanced accumulates non-blank lines until the running count of opening
// minus closing braces returns to zero, then parses the buffer as one object.
// A failed parse goes through the repair heuristic; the buffer is reset
// either way so one broken object cannot poison the rest of the document.
func scanBalanced(content string) []interface{} {
	var candidates []interface{}
	var buf strings.Builder
	depth := 0

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth != 0 {
			continue
		}

		chunk := strings.TrimSpace(buf.String())
		if parsed, err := Decode(chunk); err == nil {
			candidates = append(candidates, parsed)
		} else if repaired, ok := Repair(chunk); ok {
			candidates = append(candidates, repaired)
		} else {
			log.Debug().Str("chunk", truncate(chunk, 80)).Msg("Unparseable chunk dropped")
		}
		buf.Reset()
	}

	return candidates
}

// scanPattern pulls Feature-shaped substrings out of text whose lines never
// balance, for example a document with a broken outer wrapper.
func scanPattern(content string) []interface{} {
	var candidates []interface{}
	for _, match := range featureRe.FindAllString(content, -1) {
		if parsed, err := Decode(match); err == nil {
			candidates = append(candidates, parsed)
		} else if repaired, ok := Repair(match); ok {
			candidates = append(candidates, repaired)
		} else {
			log.Debug().Str("match", truncate(match, 80)).Msg("Unparseable Feature block dropped")
		}
	}
	return candidates
}

// Decode parses s as exactly one JSON value. Numbers stay textual
// (json.Number) so coordinate precision is never reformatted, and trailing
// data is an error so concatenated objects are not silently truncated.
func Decode(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func decodeObject(s string) (map[string]interface{}, error) {
	v, err := Decode(s)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.New("not a JSON object")
	}
	return obj, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
