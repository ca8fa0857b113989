package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/safari-for-safety/roadkill-api/internal/importer"
	"github.com/safari-for-safety/roadkill-api/internal/migrations"
	"github.com/safari-for-safety/roadkill-api/pkg/config"
	"github.com/safari-for-safety/roadkill-api/pkg/database"
	"github.com/safari-for-safety/roadkill-api/pkg/logger"
)

const usage = `usage: importer [-file path] <dataset>

datasets:
  incidents   official roadkill incident CSV
  animals     per-species national totals CSV
  weather     daily station observation CSV
  regions     derive region centroids from the incident CSV
  stats       rebuild pre-aggregated stats from the animal CSV
  all         incidents, animals, weather, regions, stats in order
`

func main() {
	file := flag.String("file", "", "override the configured CSV path")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dataset := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := migrations.Apply(db); err != nil {
		logr.Sugar().Fatalw("failed to apply migrations", "error", err)
	}

	im := importer.New(db, logr)
	ctx := context.Background()

	pick := func(configured string) string {
		if *file != "" {
			return *file
		}
		return configured
	}

	run := func(name string, fn func() error) {
		logr.Sugar().Infow("running import", "dataset", name)
		if err := fn(); err != nil {
			logr.Sugar().Fatalw("import failed", "dataset", name, "error", err)
		}
	}

	switch dataset {
	case "incidents":
		run(dataset, func() error {
			_, err := im.ImportIncidents(ctx, pick(cfg.Import.IncidentsCSV))
			return err
		})
	case "animals":
		run(dataset, func() error {
			_, err := im.ImportAnimalStats(ctx, pick(cfg.Import.AnimalsCSV))
			return err
		})
	case "weather":
		run(dataset, func() error {
			_, err := im.ImportWeather(ctx, pick(cfg.Import.WeatherCSV))
			return err
		})
	case "regions":
		run(dataset, func() error {
			_, err := im.ImportRegions(ctx, pick(cfg.Import.IncidentsCSV))
			return err
		})
	case "stats":
		run(dataset, func() error {
			_, err := im.ImportStats(ctx, pick(cfg.Import.AnimalsCSV))
			return err
		})
	case "all":
		run("incidents", func() error {
			_, err := im.ImportIncidents(ctx, cfg.Import.IncidentsCSV)
			return err
		})
		run("animals", func() error {
			_, err := im.ImportAnimalStats(ctx, cfg.Import.AnimalsCSV)
			return err
		})
		run("weather", func() error {
			_, err := im.ImportWeather(ctx, cfg.Import.WeatherCSV)
			return err
		})
		run("regions", func() error {
			_, err := im.ImportRegions(ctx, cfg.Import.IncidentsCSV)
			return err
		})
		run("stats", func() error {
			_, err := im.ImportStats(ctx, cfg.Import.AnimalsCSV)
			return err
		})
	default:
		flag.Usage()
		os.Exit(2)
	}

	logr.Info("import completed")
}
