package main

import (
	"os"

	"github.com/geoandes/datacenter-geo/internal/config"
	"github.com/geoandes/datacenter-geo/internal/geo"
	"github.com/geoandes/datacenter-geo/internal/logger"
	"github.com/geoandes/datacenter-geo/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to optional configuration file"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Input text file (default: data.txt)"`
		Output string `positional-arg-name:"output" description:"Output GeoJSON file (default: datacenters_chile.geojson)"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	input := opts.Args.Input
	if input == "" {
		input = "data.txt"
	}
	output := opts.Args.Output
	if output == "" {
		output = "datacenters_chile.geojson"
	}

	region := geo.Chile
	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if cfg.Region != nil {
			region = geo.NewRegion(cfg.Region.MinLat, cfg.Region.MaxLat, cfg.Region.MinLon, cfg.Region.MaxLon)
			log.Info().
				Float64("min_lat", cfg.Region.MinLat).
				Float64("max_lat", cfg.Region.MaxLat).
				Float64("min_lon", cfg.Region.MinLon).
				Float64("max_lon", cfg.Region.MaxLon).
				Msg("Using region override from config")
		}
	}

	log.Info().Str("input", input).Str("output", output).Msg("Starting conversion")

	if err := processor.Convert(input, output, region); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}
