package main

import (
	"os"

	"github.com/geoandes/datacenter-geo/internal/config"
	"github.com/geoandes/datacenter-geo/internal/logger"
	"github.com/geoandes/datacenter-geo/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string   `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to optional configuration file"`
	CenterLat  *float64 `long:"center-lat" description:"Initial map center latitude (default: -39.1)"`
	CenterLon  *float64 `long:"center-lon" description:"Initial map center longitude (default: -73.18)"`
	Zoom       *int     `short:"z" long:"zoom" description:"Initial zoom level (default: 12)"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"JavaScript file with an embedded JSON object (default: datos.js)"`
		Output string `positional-arg-name:"output" description:"Output HTML file (default: mapa.html)"`
	} `positional-args:"yes"`
}

// resolveView layers the viewport sources: compiled defaults, then the
// optional config file, then explicit flags.
func resolveView(cfg *config.Config, opts *Options) processor.MapView {
	view := processor.MapView{
		Title:     "Mapa",
		LayerName: "fibra óptica",
		CenterLat: -39.1,
		CenterLon: -73.18,
		Zoom:      12,
	}

	if cfg != nil {
		if cfg.Map.Title != "" {
			view.Title = cfg.Map.Title
		}
		if cfg.Map.Layer != "" {
			view.LayerName = cfg.Map.Layer
		}
		if cfg.Map.CenterLat != nil {
			view.CenterLat = *cfg.Map.CenterLat
		}
		if cfg.Map.CenterLon != nil {
			view.CenterLon = *cfg.Map.CenterLon
		}
		if cfg.Map.Zoom != nil {
			view.Zoom = *cfg.Map.Zoom
		}
	}

	if opts.CenterLat != nil {
		view.CenterLat = *opts.CenterLat
	}
	if opts.CenterLon != nil {
		view.CenterLon = *opts.CenterLon
	}
	if opts.Zoom != nil {
		view.Zoom = *opts.Zoom
	}

	return view
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
		input = "datos.js"
	}
	output := opts.Args.Output
	if output == "" {
		output = "mapa.html"
	}

	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = loaded
	}
	view := resolveView(cfg, &opts)

	log.Info().
		Str("input", input).
		Str("output", output).
		Float64("center_lat", view.CenterLat).
		Float64("center_lon", view.CenterLon).
		Int("zoom", view.Zoom).
		Msg("Starting map rendering")

	if err := processor.RenderMap(input, output, view); err != nil {
		log.Fatal().Err(err).Msg("Map rendering failed")
	}
}
