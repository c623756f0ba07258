package application

import (
	"errors"
	"fmt"
)

const (
	MinStationID = 1
	MaxStationID = 250
)

var ErrOutOfRange = errors.New("observation out of range")

type Date struct {
	Year  int
	Month int
	Day   int
}

// Key returns a totally ordered scalar for the date, year*10000 + month*100 + day.
func (d Date) Key() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

type Observation struct {
	Date        Date
	Hour        int
	Minute      int
	StationID   int
	Temperature float64
}

// Validate checks the documented input ranges. Years are not checked.
func (o Observation) Validate() error {
	if o.Date.Month < 1 || o.Date.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrOutOfRange, o.Date.Month)
	}
	if o.Date.Day < 1 || o.Date.Day > 31 {
		return fmt.Errorf("%w: day %d", ErrOutOfRange, o.Date.Day)
	}
	if o.StationID < MinStationID || o.StationID > MaxStationID {
		return fmt.Errorf("%w: station id %d", ErrOutOfRange, o.StationID)
	}
	return nil
}

// StationExtreme holds the extreme observations of a single station. Min and
// Max point into the slice the extremes were computed from.
type StationExtreme struct {
	StationID int
	Min       *Observation
	Max       *Observation
}

type DailyAverage struct {
	Date         Date
	Mean         float64
	Observations int
}
