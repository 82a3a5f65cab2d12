package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"
)

var ErrNoSamples = errors.New("session: no samples recorded")

type Option func(*Recorder)

// WithClock replaces the wall clock used for start, end and sample stamps.
func WithClock(c clock.Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// Recorder folds decoded Rowing records into a workout. Status records emit
// samples; stroke records update the fields carried into the next sample.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	clock   clock.Clock
	workout Workout
	current Sample
	final   *rowing.EndOfWorkoutSummary
}

func NewRecorder(user string, opts ...Option) *Recorder {
	r := &Recorder{clock: clock.New()}
	for _, opt := range opts {
		opt(r)
	}
	r.workout = Workout{
		ID:        uuid.Must(uuid.NewV7()),
		User:      user,
		StartedAt: r.clock.Now().UTC(),
	}
	return r
}

func (r *Recorder) ID() uuid.UUID {
	return r.workout.ID
}

// Observe applies one record. It reports whether a sample was emitted.
func (r *Recorder) Observe(rec rowing.Record) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch v := rec.(type) {
	case rowing.GeneralStatus:
		r.current.ElapsedMS = elapsedMS(v.ElapsedTime)
		r.current.DistanceM = distanceM(v.Distance)
		r.emit()
		return true
	case rowing.AdditionalStatusOne:
		r.current.ElapsedMS = elapsedMS(v.ElapsedTime)
		r.current.HeartRate = ptr(uint8(v.HeartRate))
		r.current.StrokeRate = ptr(uint8(v.StrokeRate))
		r.current.PaceMS = ptr(paceMS(v.CurrentPace))
		r.emit()
		return true
	case rowing.AdditionalStatusTwo:
		r.current.Calories = ptr(uint16(v.TotalCalories))
	case rowing.StrokeData:
		r.current.DriveLengthCM = ptr(uint8(v.DriveLength))
		r.current.DriveTimeMS = ptr(driveTimeMS(v.DriveTime))
		r.current.PeakForceN = ptr(forceN(v.PeakDriveForce))
		r.current.AvgForceN = ptr(forceN(v.AvgDriveForce))
		r.current.WorkJ = ptr(workJ(v.WorkPerStroke))
	case rowing.AdditionalStrokeData:
		r.current.Power = ptr(uint16(v.StrokePower))
	case rowing.EndOfWorkoutSummary:
		r.final = &v
		log.Debug().
			Str("workout", r.workout.ID.String()).
			Int64("elapsed_ms", elapsedMS(v.ElapsedTime)).
			Msg("end of workout reported")
	}
	return false
}

// emit inserts a copy of the carried sample ordered by elapsed time. Late
// notifications land where they belong instead of at the tail.
func (r *Recorder) emit() {
	s := r.current
	s.Timestamp = r.clock.Now().UTC()
	samples := r.workout.Samples
	i := sort.Search(len(samples), func(i int) bool { return samples[i].ElapsedMS > s.ElapsedMS })
	samples = append(samples, Sample{})
	copy(samples[i+1:], samples[i:])
	samples[i] = s
	r.workout.Samples = samples
}

func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.workout.Samples))
	copy(out, r.workout.Samples)
	return out
}

// Finish stamps the end time once and returns a snapshot of the workout.
func (r *Recorder) Finish() Workout {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.workout.EndedAt.IsZero() {
		r.workout.EndedAt = r.clock.Now().UTC()
	}
	return r.snapshot()
}

// snapshot copies the workout. An unfinished workout ends now. Callers hold mu.
func (r *Recorder) snapshot() Workout {
	w := r.workout
	if w.EndedAt.IsZero() {
		w.EndedAt = r.clock.Now().UTC()
	}
	w.Samples = append([]Sample(nil), r.workout.Samples...)
	return w
}

// Summary aggregates the samples recorded so far without finishing the
// workout. When the device reported an end-of-workout summary its totals take
// precedence.
func (r *Recorder) Summary(raceID string) (Summary, error) {
	r.mu.Lock()
	w := r.snapshot()
	final := r.final
	r.mu.Unlock()

	if len(w.Samples) == 0 {
		return Summary{}, ErrNoSamples
	}
	last := w.Samples[len(w.Samples)-1]
	sum := Summary{
		WorkoutID:  w.ID,
		User:       w.User,
		RaceID:     raceID,
		StartedAt:  w.StartedAt,
		EndedAt:    w.EndedAt,
		DurationMS: last.ElapsedMS,
		DistanceM:  last.DistanceM,
		Samples:    len(w.Samples),
	}

	var hr, power, rate, pace []float64
	for _, s := range w.Samples {
		if s.HeartRate != nil && *s.HeartRate > 0 {
			hr = append(hr, float64(*s.HeartRate))
			if *s.HeartRate > sum.MaxHeartRate {
				sum.MaxHeartRate = *s.HeartRate
			}
		}
		if s.Power != nil {
			power = append(power, float64(*s.Power))
		}
		if s.StrokeRate != nil {
			rate = append(rate, float64(*s.StrokeRate))
		}
		if s.PaceMS != nil && *s.PaceMS > 0 {
			pace = append(pace, float64(*s.PaceMS))
		}
		if s.Calories != nil && *s.Calories > sum.Calories {
			sum.Calories = *s.Calories
		}
	}
	sum.AvgHeartRate = mean(hr)
	sum.AvgPower = mean(power)
	sum.AvgStrokeRate = mean(rate)
	sum.AvgPaceMS = mean(pace)

	if final != nil {
		sum.DurationMS = elapsedMS(final.ElapsedTime)
		sum.DistanceM = distanceM(final.Distance)
		if final.MaxHeartRate > 0 {
			sum.MaxHeartRate = uint8(final.MaxHeartRate)
		}
	}
	return sum, nil
}

// mean returns 0 for an empty series.
func mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}
