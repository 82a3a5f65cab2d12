package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplesWithPower(powers ...uint16) []Sample {
	out := make([]Sample, len(powers))
	for i, p := range powers {
		out[i] = Sample{ElapsedMS: int64(i) * 1000}
		if p > 0 {
			out[i].Power = ptr(p)
		}
	}
	return out
}

func TestPowerZone(t *testing.T) {
	cases := map[float64]Zone{
		0:     Zone1,
		149.9: Zone1,
		150:   Zone2,
		199:   Zone2,
		200:   Zone3,
		250:   Zone4,
		299.9: Zone4,
		300:   Zone5,
		900:   Zone5,
	}
	for watts, want := range cases {
		require.Equal(t, want, PowerZone(watts), "watts=%v", watts)
	}
	require.Equal(t, "zone_3", Zone3.String())
}

func TestDeltaTimes(t *testing.T) {
	samples := []Sample{{ElapsedMS: 0}, {ElapsedMS: 450}, {ElapsedMS: 1000}}
	require.Equal(t, []int64{0, 450, 550}, DeltaTimes(samples))
	require.Empty(t, DeltaTimes(nil))
}

func TestRollingPowerAverage(t *testing.T) {
	samples := samplesWithPower(100, 200, 0, 300)
	got := RollingPowerAverage(samples, 2)
	require.InDeltaSlice(t, []float64{100, 150, 200, 300}, got, 1e-9)

	got = RollingPowerAverage(samples, 0)
	require.InDeltaSlice(t, []float64{100, 200, 0, 300}, got, 1e-9)
}

func TestRollingHeartRateAverageSkipsZeroReadings(t *testing.T) {
	samples := []Sample{
		{HeartRate: ptr(uint8(120))},
		{HeartRate: ptr(uint8(0))},
		{HeartRate: ptr(uint8(130))},
	}
	require.InDeltaSlice(t, []float64{120, 120, 125}, RollingHeartRateAverage(samples, 3), 1e-9)
}

func TestZoneDistribution(t *testing.T) {
	dist := ZoneDistribution(samplesWithPower(100, 180, 190, 320, 0))
	require.Equal(t, map[Zone]int{Zone1: 1, Zone2: 2, Zone5: 1}, dist)
}
