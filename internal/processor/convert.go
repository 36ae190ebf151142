// Package processor wires extraction, validation and output together for the
// command-line tools.
package processor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/geoandes/datacenter-geo/internal/extract"
	"github.com/geoandes/datacenter-geo/internal/geo"

	"github.com/rs/zerolog/log"
)

// Convert reads a text document, recovers every Feature it can and writes a
// pretty-printed FeatureCollection. Per-candidate failures are logged and
// skipped; only a missing input file or a failed write aborts the run.
func Convert(inputPath, outputPath string, region geo.Region) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Info().Str("path", inputPath).Int("bytes", len(data)).Msg("Input file read")

	candidates := extract.Candidates(string(data))
	log.Info().Int("candidates", len(candidates)).Msg("Extraction finished")

	fc := geo.NewFeatureCollection()
	for i, candidate := range candidates {
		feature, err := region.Validate(candidate)
		if err != nil {
			log.Warn().Err(err).Int("candidate", i+1).Msg("Candidate dropped")
			continue
		}
		fc.Features = append(fc.Features, feature)
		log.Debug().Int("candidate", i+1).Msg("Candidate accepted")
	}

	if err := saveGeoJSON(outputPath, fc); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Int("features", len(fc.Features)).
		Str("path", outputPath).
		Msg("Conversion finished")
	return nil
}

// saveGeoJSON writes the collection with two-space indentation.
func saveGeoJSON(path string, fc *geo.FeatureCollection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		_ = f.Close()
		return err
	}

	// We care about write errors on close
	return f.Close()
}
