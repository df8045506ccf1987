package main

import (
	"context"
	"flag"
	"os"

	"github.com/drakos74/free-means/client/file"
	"github.com/drakos74/free-means/infra/config"
	means "github.com/drakos74/free-means/internal"
	fmath "github.com/drakos74/free-means/internal/math"
	"github.com/drakos74/free-means/internal/metrics"
	"github.com/drakos74/free-means/internal/report"
	jsonstore "github.com/drakos74/free-means/internal/storage/file/json"
	"github.com/drakos74/free-means/user/local"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	key   = "kmeans"
	table = "runs"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	configPath := flag.String("config", "", "config file (.json or .toml)")
	data := flag.String("data", "", "dataset file, overrides the config")
	seed := flag.Int64("seed", 0, "seed for the initial centroids, 0 picks a new one per run")
	epsilon := flag.Float64("epsilon", 0, "sse delta at which a run converges")
	debug := flag.Bool("debug", false, "log every iteration")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		if err := config.Load(*configPath, &cfg); err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	} else if config.Exists(key) {
		config.MustLoad(key, &cfg)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *data
		case "seed":
			cfg.Seed = *seed
		case "epsilon":
			cfg.Epsilon = *epsilon
		}
	})

	if cfg.Metrics > 0 {
		metrics.Serve(cfg.Metrics)
	}

	engine := means.NewEngine(file.NewSource(cfg.Data), cfg.KMeans()).
		WithSeed(cfg.Seed)
	if cfg.Output != "" {
		engine.WithStore(jsonstore.NewJsonBlob(cfg.Output, table, true))
	}

	opts := report.Options{
		Members:   cfg.Members,
		Plot:      cfg.Plot,
		Precision: fmath.DefaultPrecision,
	}

	log.Info().
		Str("data", cfg.Data).
		Float64("epsilon", cfg.Epsilon).
		Int64("seed", cfg.Seed).
		Msg("starting k-means console")

	console := local.NewConsole(os.Stdin, os.Stdout)
	err := console.Run(context.Background(), func(k int) error {
		r, err := engine.Run(k)
		if err != nil {
			return err
		}
		return report.Format(os.Stdout, r, opts)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}
