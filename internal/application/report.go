package application

import (
	"bufio"
	"fmt"
	"io"
)

const (
	extremeLineFormat = "Station %d: Minimum = %.2f degrees (%04d-%02d-%02d %02d:%02d), Maximum = %.2f degrees (%04d-%02d-%02d %02d:%02d)\n"
	averageLineFormat = "%04d %02d %02d %.1f\n"
)

func WriteStationExtremes(w io.Writer, extremes []StationExtreme) error {
	bw := bufio.NewWriter(w)

	for _, e := range extremes {
		_, err := fmt.Fprintf(bw, extremeLineFormat,
			e.StationID,
			e.Min.Temperature, e.Min.Date.Year, e.Min.Date.Month, e.Min.Date.Day, e.Min.Hour, e.Min.Minute,
			e.Max.Temperature, e.Max.Date.Year, e.Max.Date.Month, e.Max.Date.Day, e.Max.Hour, e.Max.Minute,
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

func WriteDailyAverages(w io.Writer, averages []DailyAverage) error {
	bw := bufio.NewWriter(w)

	for _, a := range averages {
		_, err := fmt.Fprintf(bw, averageLineFormat, a.Date.Year, a.Date.Month, a.Date.Day, a.Mean)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
