package session

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Zone is a training band derived from stroke power.
type Zone uint8

const (
	Zone1 Zone = iota + 1
	Zone2
	Zone3
	Zone4
	Zone5
)

func (z Zone) String() string {
	return fmt.Sprintf("zone_%d", uint8(z))
}

// PowerZone buckets watts into 50 W bands starting at 150 W.
func PowerZone(watts float64) Zone {
	switch {
	case watts < 150:
		return Zone1
	case watts < 200:
		return Zone2
	case watts < 250:
		return Zone3
	case watts < 300:
		return Zone4
	default:
		return Zone5
	}
}

// DeltaTimes returns the gap in ms between consecutive samples. The first
// sample has no predecessor and reports 0.
func DeltaTimes(samples []Sample) []int64 {
	out := make([]int64, len(samples))
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i].ElapsedMS - samples[i-1].ElapsedMS
	}
	return out
}

// RollingPowerAverage averages reported power over the trailing window of
// samples ending at each index. Samples without power are skipped; an index
// with none in its window reports 0.
func RollingPowerAverage(samples []Sample, window int) []float64 {
	return rolling(samples, window, func(s Sample) (float64, bool) {
		if s.Power == nil {
			return 0, false
		}
		return float64(*s.Power), true
	})
}

func RollingHeartRateAverage(samples []Sample, window int) []float64 {
	return rolling(samples, window, func(s Sample) (float64, bool) {
		if s.HeartRate == nil || *s.HeartRate == 0 {
			return 0, false
		}
		return float64(*s.HeartRate), true
	})
}

func rolling(samples []Sample, window int, pick func(Sample) (float64, bool)) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(samples))
	for i := range samples {
		start := max(0, i-window+1)
		var xs stats.Float64Data
		for _, s := range samples[start : i+1] {
			if v, ok := pick(s); ok {
				xs = append(xs, v)
			}
		}
		out[i] = mean(xs)
	}
	return out
}

// ZoneDistribution counts samples per power zone. Samples without power are
// not counted.
func ZoneDistribution(samples []Sample) map[Zone]int {
	out := make(map[Zone]int)
	for _, s := range samples {
		if s.Power != nil {
			out[PowerZone(float64(*s.Power))]++
		}
	}
	return out
}
