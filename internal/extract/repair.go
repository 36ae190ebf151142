package extract

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	// A quoted value ending one line with a quote opening the next is a
	// missing comma.
	missingCommaRe = regexp.MustCompile(`"\s*\n\s*"`)
	// Unquoted scalar value between a colon and a comma or closing brace.
	unquotedValueRe = regexp.MustCompile(`:\s*([^",\[{\s][^",\[}]*[^",\[}\s])\s*([,}])`)
	// Bare identifier used as an object key.
	unquotedKeyRe = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
)

// Repair applies one pass of textual fixes to a near-JSON chunk and parses
// the result. The substitutions are blunt: they can quote numbers into
// strings and mangle exotic but valid JSON, so callers treat the outcome as
// a best-effort candidate, not truth. Returns ok=false if the chunk stays
// unparseable.
func Repair(chunk string) (map[string]interface{}, bool) {
	cleaned := strings.TrimSpace(chunk)
	cleaned = missingCommaRe.ReplaceAllString(cleaned, "\",\n\"")
	cleaned = unquotedValueRe.ReplaceAllString(cleaned, `: "${1}"${2}`)
	cleaned = unquotedKeyRe.ReplaceAllString(cleaned, `"${1}":`)

	if obj, err := decodeObject(cleaned); err == nil {
		return obj, true
	}

	// Last resort for object-like chunks: jsonrepair understands JS-style
	// notation (single quotes, trailing commas, comments). Restricted to
	// chunks opening with a brace so free text still falls through to the
	// scatter strategy.
	if !strings.HasPrefix(cleaned, "{") {
		return nil, false
	}
	fixed, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return nil, false
	}
	obj, err := decodeObject(fixed)
	if err != nil {
		return nil, false
	}
	return obj, true
}
