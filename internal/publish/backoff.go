package publish

import (
	"math"
	"math/rand"
	"time"
)

// Backoff spaces out broker connection attempts.
type Backoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     bool
}

var defaultBackoff = Backoff{Initial: 500 * time.Millisecond, Max: 8 * time.Second, Multiplier: 2, Jitter: true}

// Delay returns the wait before attempt n (1-based). The first attempt never
// waits.
func (b Backoff) Delay(attempt int, rng *rand.Rand) time.Duration {
	if attempt <= 1 || b.Initial <= 0 {
		return 0
	}
	mult := math.Max(b.Multiplier, 1)
	delay := float64(b.Initial) * math.Pow(mult, float64(attempt-2))
	if b.Max > 0 && delay > float64(b.Max) {
		delay = float64(b.Max)
	}
	if b.Jitter {
		f := 0.5
		if rng != nil {
			f = 0.5 + rng.Float64()
		}
		delay *= f
	}
	return time.Duration(delay)
}
