package observations

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/temperature-reports/internal/application"
)

var ErrSourceUnavailable = errors.New("observation source unavailable")

// fields per record: year month day hour minute station_id temperature
const fieldsPerRecord = 7

type decoder struct {
	scanner *bufio.Scanner
	fields  [fieldsPerRecord]string
}

func newDecoder(r io.Reader) *decoder {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &decoder{scanner: s}
}

// next decodes the next complete record. ok is false at end of input or at the
// first malformed or partial record.
func (d *decoder) next() (obs application.Observation, ok bool, err error) {
	for i := range d.fields {
		if !d.scanner.Scan() {
			err = d.scanner.Err()
			if errors.Is(err, bufio.ErrTooLong) {
				// an oversized token can never be part of a valid record
				return obs, false, nil
			}
			return obs, false, err
		}
		d.fields[i] = d.scanner.Text()
	}

	var ints [fieldsPerRecord - 1]int
	for i := range ints {
		ints[i], err = strconv.Atoi(d.fields[i])
		if err != nil {
			return obs, false, nil
		}
	}

	temperature, err := strconv.ParseFloat(d.fields[fieldsPerRecord-1], 64)
	if err != nil {
		return obs, false, nil
	}

	obs = application.Observation{
		Date: application.Date{
			Year:  ints[0],
			Month: ints[1],
			Day:   ints[2],
		},
		Hour:        ints[3],
		Minute:      ints[4],
		StationID:   ints[5],
		Temperature: temperature,
	}

	return obs, true, nil
}

// Read decodes up to limit observations from r, or all of them if limit <= 0.
// A malformed or partial record ends the sequence without an error.
func Read(r io.Reader, limit int) ([]application.Observation, error) {
	d := newDecoder(r)
	result := []application.Observation{}

	for limit <= 0 || len(result) < limit {
		obs, ok, err := d.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if err = obs.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(result)+1, err)
		}

		result = append(result, obs)
	}

	return result, nil
}

// Count returns the number of records Read would return from r without a limit.
func Count(r io.Reader) (int, error) {
	d := newDecoder(r)
	count := 0

	for {
		obs, ok, err := d.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}

		if err = obs.Validate(); err != nil {
			return 0, fmt.Errorf("record %d: %w", count+1, err)
		}

		count++
	}
}

func LoadFile(ctx context.Context, path string, limit int) ([]application.Observation, error) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	}
	defer f.Close()

	observations, err := Read(f, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read observations from %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("limit", limit).Msgf("read %d observations", len(observations))

	return observations, nil
}

func CountFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	}
	defer f.Close()

	count, err := Count(f)
	if err != nil {
		return 0, fmt.Errorf("failed to count observations in %s: %w", path, err)
	}

	log := logging.GetFromContext(ctx)
	log.Debug().Str("path", path).Msgf("counted %d observations", count)

	return count, nil
}
