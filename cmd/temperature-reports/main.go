package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/temperature-reports/internal/application"
	"github.com/diwise/temperature-reports/internal/observations"
)

var (
	inputFile  string
	reportsArg string
	orderArg   string
	limit      int
	countOnly  bool
)

type config struct {
	input     string
	reports   string
	ordering  string
	limit     string
	countOnly bool
}

func main() {
	flag.StringVar(&inputFile, "input", "", "file containing the temperature observations")
	flag.StringVar(&reportsArg, "reports", "", "reports to print: all, extremes or averages")
	flag.StringVar(&orderArg, "ordering", "", "station extremes ordering: legacy or numeric")
	flag.IntVar(&limit, "limit", -1, "maximum number of observations to load, 0 for no limit")
	flag.BoolVar(&countOnly, "count", false, "only print the number of observations in the input")
	flag.Parse()

	serviceName := "temperature-reports"
	serviceVersion := buildinfo.SourceVersion()
	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)

	cfg := config{
		input:     inputFile,
		reports:   reportsArg,
		ordering:  orderArg,
		countOnly: countOnly,
	}

	if cfg.input == "" {
		cfg.input = env.GetVariableOrDefault(log, "OBSERVATIONS_FILE", "")
	}
	if cfg.reports == "" {
		cfg.reports = env.GetVariableOrDefault(log, "REPORTS", "all")
	}
	if cfg.ordering == "" {
		cfg.ordering = env.GetVariableOrDefault(log, "EXTREMES_ORDERING", "legacy")
	}
	if limit < 0 {
		cfg.limit = env.GetVariableOrDefault(log, "OBSERVATIONS_LIMIT", "0")
	} else {
		cfg.limit = strconv.Itoa(limit)
	}

	err := run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reports")
		cleanup()
		os.Exit(1)
	}

	cleanup()
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	log := logging.GetFromContext(ctx)

	if cfg.input == "" {
		return errors.New("no input file, set -input or OBSERVATIONS_FILE")
	}

	if cfg.countOnly {
		count, err := observations.CountFile(ctx, cfg.input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, count)
		return err
	}

	maxObservations, err := strconv.Atoi(cfg.limit)
	if err != nil {
		return fmt.Errorf("invalid observations limit %q: %w", cfg.limit, err)
	}

	reports, err := application.ParseReports(cfg.reports)
	if err != nil {
		return err
	}

	ordering, err := application.ParseOrdering(cfg.ordering)
	if err != nil {
		return err
	}

	log.Info().Str("input", cfg.input).Str("ordering", ordering.String()).Int("limit", maxObservations).Msg("generating reports")

	app := application.New(func(ctx context.Context) ([]application.Observation, error) {
		return observations.LoadFile(ctx, cfg.input, maxObservations)
	})

	return app.Report(ctx, w, reports, ordering)
}
