package application

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestDailyAverageForSingleObservation(t *testing.T) {
	is := is.New(t)

	averages := ComputeDailyAverages([]Observation{obs(2020, 1, 1, 0, 0, 1, 5.0)})

	is.Equal(len(averages), 1)
	is.Equal(averages[0].Date, Date{Year: 2020, Month: 1, Day: 1})
	is.Equal(averages[0].Mean, 5.0)
	is.Equal(averages[0].Observations, 1)
}

func TestDailyAverageIsMeanAcrossStations(t *testing.T) {
	is := is.New(t)

	averages := ComputeDailyAverages([]Observation{
		obs(2017, 8, 9, 1, 0, 1, 0.1),
		obs(2017, 8, 9, 2, 0, 2, 0.2),
		obs(2017, 8, 9, 3, 0, 3, 0.3),
		obs(2017, 8, 9, 4, 0, 3, -1.1),
	})

	is.Equal(len(averages), 1)
	is.Equal(averages[0].Observations, 4)
	is.True(math.Abs(averages[0].Mean-(-0.125)) < 1e-9)
}

func TestDailyAveragesAreChronological(t *testing.T) {
	is := is.New(t)

	averages := ComputeDailyAverages([]Observation{
		obs(2019, 12, 31, 23, 59, 4, 2.0),
		obs(2015, 6, 1, 12, 0, 1, 20.0),
		obs(2020, 1, 1, 0, 0, 4, 4.0),
		obs(2015, 6, 1, 13, 0, 2, 22.0),
		obs(2019, 12, 31, 1, 0, 4, 3.0),
	})

	is.Equal(len(averages), 3)
	is.Equal(averages[0].Date, Date{Year: 2015, Month: 6, Day: 1})
	is.Equal(averages[1].Date, Date{Year: 2019, Month: 12, Day: 31})
	is.Equal(averages[2].Date, Date{Year: 2020, Month: 1, Day: 1})
	is.Equal(averages[0].Mean, 21.0)
	is.Equal(averages[1].Mean, 2.5)
	is.Equal(averages[2].Mean, 4.0)
}

func TestDailyAveragesForEmptyInput(t *testing.T) {
	is := is.New(t)
	is.Equal(len(ComputeDailyAverages(nil)), 0)
}

func TestDailyAveragesAreIdempotent(t *testing.T) {
	is := is.New(t)

	input := []Observation{
		obs(2018, 3, 3, 0, 0, 1, 1.5),
		obs(2018, 3, 1, 0, 0, 1, 2.5),
		obs(2018, 3, 2, 0, 0, 1, 3.5),
	}

	is.Equal(ComputeDailyAverages(input), ComputeDailyAverages(input))
}

func TestAccumulatorKeepsKeysSortedAndUnique(t *testing.T) {
	is := is.New(t)

	acc := newDailyAccumulator()
	days := []int{15, 3, 28, 3, 1, 15, 20, 31, 1, 2}
	for _, d := range days {
		acc.add(obs(2016, 2, d, 0, 0, 1, float64(d)))
	}

	is.Equal(len(acc.buckets), 7)
	for i := 1; i < len(acc.buckets); i++ {
		is.True(acc.buckets[i-1].key < acc.buckets[i].key)
	}
	for _, b := range acc.buckets {
		is.True(b.count >= 1)
		is.Equal(b.key, b.date.Key())
	}
}

func TestAccumulatorAccumulatesAcrossMonthsAndYears(t *testing.T) {
	is := is.New(t)

	acc := newDailyAccumulator()
	acc.add(obs(2016, 1, 31, 0, 0, 1, 1.0))
	acc.add(obs(2015, 12, 1, 0, 0, 1, 2.0))
	acc.add(obs(2016, 1, 31, 0, 0, 2, 3.0))
	acc.add(obs(2016, 2, 1, 0, 0, 1, 4.0))
	acc.add(obs(2015, 12, 1, 0, 0, 3, 6.0))

	averages := acc.averages()

	is.Equal(len(averages), 3)
	is.Equal(averages[0], DailyAverage{Date: Date{2015, 12, 1}, Mean: 4.0, Observations: 2})
	is.Equal(averages[1], DailyAverage{Date: Date{2016, 1, 31}, Mean: 2.0, Observations: 2})
	is.Equal(averages[2], DailyAverage{Date: Date{2016, 2, 1}, Mean: 4.0, Observations: 1})
}

func TestDateKeyOrdersChronologically(t *testing.T) {
	is := is.New(t)

	is.Equal(Date{2020, 11, 21}.Key(), 20201121)
	is.True(Date{2019, 12, 31}.Key() < Date{2020, 1, 1}.Key())
	is.True(Date{2020, 1, 31}.Key() < Date{2020, 2, 1}.Key())
}
