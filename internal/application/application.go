package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("temperature-reports/application")

type Application interface {
	ReportStationExtremes(ctx context.Context, w io.Writer, ordering Ordering) error
	ReportDailyAverages(ctx context.Context, w io.Writer) error
	Report(ctx context.Context, w io.Writer, reports Reports, ordering Ordering) error
}

// LoadFunc supplies the observations a report is computed from.
type LoadFunc func(ctx context.Context) ([]Observation, error)

type Reports int

const (
	ReportExtremes Reports = 1 << iota
	ReportAverages

	ReportAll = ReportExtremes | ReportAverages
)

func ParseReports(s string) (Reports, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ReportAll, nil
	case "extremes":
		return ReportExtremes, nil
	case "averages":
		return ReportAverages, nil
	default:
		return 0, fmt.Errorf("invalid reports %q (allowed: all, extremes, averages)", s)
	}
}

type app struct {
	load LoadFunc
}

func New(load LoadFunc) Application {
	return &app{
		load: load,
	}
}

func (a app) ReportStationExtremes(ctx context.Context, w io.Writer, ordering Ordering) error {
	return a.Report(ctx, w, ReportExtremes, ordering)
}

func (a app) ReportDailyAverages(ctx context.Context, w io.Writer) error {
	return a.Report(ctx, w, ReportAverages, OrderingLegacy)
}

func (a app) Report(ctx context.Context, w io.Writer, reports Reports, ordering Ordering) error {
	log := logging.GetFromContext(ctx)

	if reports&ReportAll == 0 {
		return errors.New("no reports selected")
	}

	observations, err := a.loadObservations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load observations")
		return err
	}

	log.Info().Msgf("loaded %d observations", len(observations))

	if reports&ReportExtremes != 0 {
		err = writeStationExtremes(ctx, w, observations, ordering)
		if err != nil {
			log.Error().Err(err).Msg("failed to write station extremes")
			return err
		}
	}

	if reports&ReportAverages != 0 {
		err = writeDailyAverages(ctx, w, observations)
		if err != nil {
			log.Error().Err(err).Msg("failed to write daily averages")
			return err
		}
	}

	return nil
}

func (a app) loadObservations(ctx context.Context) (observations []Observation, err error) {
	ctx, span := tracer.Start(ctx, "load-observations")
	defer func() { endSpan(span, err) }()

	observations, err = a.load(ctx)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("observations", len(observations)))

	return observations, nil
}

func writeStationExtremes(ctx context.Context, w io.Writer, observations []Observation, ordering Ordering) (err error) {
	_, span := tracer.Start(ctx, "station-extremes")
	defer func() { endSpan(span, err) }()

	extremes := ComputeStationExtremesWithOrdering(observations, ordering)

	span.SetAttributes(
		attribute.String("ordering", ordering.String()),
		attribute.Int("stations", len(extremes)),
	)

	log := logging.GetFromContext(ctx)
	log.Debug().
		Str("ordering", ordering.String()).
		Int("stations", len(extremes)).
		Msg("computed station extremes")

	return WriteStationExtremes(w, extremes)
}

func writeDailyAverages(ctx context.Context, w io.Writer, observations []Observation) (err error) {
	_, span := tracer.Start(ctx, "daily-averages")
	defer func() { endSpan(span, err) }()

	averages := ComputeDailyAverages(observations)

	span.SetAttributes(attribute.Int("days", len(averages)))

	log := logging.GetFromContext(ctx)
	log.Debug().
		Int("days", len(averages)).
		Msg("computed daily averages")

	return WriteDailyAverages(w, averages)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
