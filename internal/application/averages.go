package application

import (
	"slices"
)

type dailyBucket struct {
	key   int
	sum   float64
	count int
	date  Date
}

// dailyAccumulator keeps one bucket per date key, sorted ascending by key.
// Buckets are never removed.
type dailyAccumulator struct {
	buckets []dailyBucket
}

func newDailyAccumulator() *dailyAccumulator {
	return &dailyAccumulator{}
}

func (a *dailyAccumulator) add(o Observation) {
	key := o.Date.Key()

	n := len(a.buckets)
	if n == 0 || key > a.buckets[n-1].key {
		a.buckets = append(a.buckets, newBucket(key, o))
		return
	}

	i, found := slices.BinarySearchFunc(a.buckets, key, func(b dailyBucket, k int) int {
		return b.key - k
	})
	if found {
		a.buckets[i].sum += o.Temperature
		a.buckets[i].count++
		return
	}

	a.buckets = slices.Insert(a.buckets, i, newBucket(key, o))
}

func (a *dailyAccumulator) averages() []DailyAverage {
	result := make([]DailyAverage, 0, len(a.buckets))
	for _, b := range a.buckets {
		result = append(result, DailyAverage{
			Date:         b.date,
			Mean:         b.sum / float64(b.count),
			Observations: b.count,
		})
	}
	return result
}

func newBucket(key int, o Observation) dailyBucket {
	return dailyBucket{
		key:   key,
		sum:   o.Temperature,
		count: 1,
		date:  o.Date,
	}
}

// ComputeDailyAverages returns the mean temperature of every date present in
// observations, across all stations, in ascending date order.
func ComputeDailyAverages(observations []Observation) []DailyAverage {
	acc := newDailyAccumulator()
	for i := range observations {
		acc.add(observations[i])
	}
	return acc.averages()
}
