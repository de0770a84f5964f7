package bench

import (
	"math"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Stat is the mean and sample standard deviation of a set of timings.
type Stat struct {
	Mean float64 `codec:"mean"`
	Std  float64 `codec:"std"`
}

// median returns the upper median of times in milliseconds.
func median(times []time.Duration) float64 {
	if len(times) == 0 {
		return 0
	}
	sorted := slices.Clone(times)
	slices.Sort(sorted)
	return float64(sorted[len(sorted)/2]) / float64(time.Millisecond)
}

// summarize returns the mean and sample std of times in nanoseconds.
func summarize(times []time.Duration) Stat {
	if len(times) == 0 {
		return Stat{}
	}
	ns := lo.Map(times, func(d time.Duration, _ int) float64 {
		return float64(d.Nanoseconds())
	})
	mean := lo.Sum(ns) / float64(len(ns))
	if len(ns) < 2 {
		return Stat{Mean: mean}
	}
	s := 0.0
	for _, v := range ns {
		s += (v - mean) * (v - mean)
	}
	return Stat{Mean: mean, Std: math.Sqrt(s / float64(len(ns)-1))}
}
