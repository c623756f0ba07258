package application

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

type Ordering int

const (
	// OrderingLegacy reproduces the historical report output. An observation
	// precedes another if any of its date, time or temperature components is
	// smaller, each component compared on its own.
	OrderingLegacy Ordering = iota
	// OrderingNumeric selects the coldest and warmest observation, resolving
	// equal temperatures to the chronologically earliest observation.
	OrderingNumeric
)

func (o Ordering) String() string {
	switch o {
	case OrderingLegacy:
		return "legacy"
	case OrderingNumeric:
		return "numeric"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return OrderingLegacy, nil
	case "numeric":
		return OrderingNumeric, nil
	default:
		return OrderingLegacy, fmt.Errorf("invalid ordering %q (allowed: legacy, numeric)", s)
	}
}

type extremePair struct {
	min *Observation
	max *Observation
}

// ComputeStationExtremes returns the extreme observations per station using
// OrderingLegacy, ascending by station id.
func ComputeStationExtremes(observations []Observation) []StationExtreme {
	return ComputeStationExtremesWithOrdering(observations, OrderingLegacy)
}

func ComputeStationExtremesWithOrdering(observations []Observation, ordering Ordering) []StationExtreme {
	if len(observations) == 0 {
		return []StationExtreme{}
	}

	update := updateLegacy
	if ordering == OrderingNumeric {
		update = updateNumeric
	}

	extremes := make(map[int]*extremePair)

	for i := range observations {
		o := &observations[i]

		p, ok := extremes[o.StationID]
		if !ok {
			extremes[o.StationID] = &extremePair{min: o, max: o}
			continue
		}

		update(p, o)
	}

	ids := maps.Keys(extremes)
	slices.Sort(ids)

	result := make([]StationExtreme, 0, len(ids))
	for _, id := range ids {
		p := extremes[id]
		result = append(result, StationExtreme{
			StationID: id,
			Min:       p.min,
			Max:       p.max,
		})
	}

	return result
}

func updateLegacy(p *extremePair, o *Observation) {
	if precedes(o, p.min) {
		p.min = o
	}
	if !precedes(o, p.max) {
		p.max = o
	}
}

func updateNumeric(p *extremePair, o *Observation) {
	if o.Temperature < p.min.Temperature ||
		(o.Temperature == p.min.Temperature && earlier(o, p.min)) {
		p.min = o
	}
	if o.Temperature > p.max.Temperature ||
		(o.Temperature == p.max.Temperature && earlier(o, p.max)) {
		p.max = o
	}
}

// precedes is deliberately not lexicographic, see OrderingLegacy.
func precedes(a, b *Observation) bool {
	return a.Date.Year < b.Date.Year ||
		a.Date.Month < b.Date.Month ||
		a.Date.Day < b.Date.Day ||
		a.Hour < b.Hour ||
		a.Minute < b.Minute ||
		a.Temperature < b.Temperature
}

// earlier reports whether a was observed strictly before b.
func earlier(a, b *Observation) bool {
	if a.Date.Key() != b.Date.Key() {
		return a.Date.Key() < b.Date.Key()
	}
	if a.Hour != b.Hour {
		return a.Hour < b.Hour
	}
	return a.Minute < b.Minute
}
