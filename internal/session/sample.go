package session

import (
	"time"

	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/google/uuid"
)

// newtonsPerTenthPound converts the device's 0.1 lbf force unit to newtons.
const newtonsPerTenthPound = 0.444822

// Sample is one flattened point of a workout in SI-ish units. Optional fields
// stay nil until the device has reported them.
type Sample struct {
	Timestamp     time.Time `msgpack:"timestamp" json:"timestamp"`
	ElapsedMS     int64     `msgpack:"elapsed_ms" json:"elapsed_ms"`
	DistanceM     float64   `msgpack:"distance_m" json:"distance_m"`
	HeartRate     *uint8    `msgpack:"heart_rate,omitempty" json:"heart_rate,omitempty"`
	Power         *uint16   `msgpack:"power,omitempty" json:"power,omitempty"`
	StrokeRate    *uint8    `msgpack:"stroke_rate,omitempty" json:"stroke_rate,omitempty"`
	PaceMS        *uint32   `msgpack:"pace_ms,omitempty" json:"pace_ms,omitempty"`
	Calories      *uint16   `msgpack:"calories,omitempty" json:"calories,omitempty"`
	DriveLengthCM *uint8    `msgpack:"drive_length_cm,omitempty" json:"drive_length_cm,omitempty"`
	DriveTimeMS   *uint32   `msgpack:"drive_time_ms,omitempty" json:"drive_time_ms,omitempty"`
	PeakForceN    *float64  `msgpack:"peak_force_n,omitempty" json:"peak_force_n,omitempty"`
	AvgForceN     *float64  `msgpack:"avg_force_n,omitempty" json:"avg_force_n,omitempty"`
	WorkJ         *float64  `msgpack:"work_j,omitempty" json:"work_j,omitempty"`
}

// Workout is a finished or in-progress recording.
type Workout struct {
	ID        uuid.UUID `msgpack:"id" json:"id"`
	User      string    `msgpack:"user" json:"user"`
	StartedAt time.Time `msgpack:"started_at" json:"started_at"`
	EndedAt   time.Time `msgpack:"ended_at" json:"ended_at"`
	Samples   []Sample  `msgpack:"samples" json:"samples"`
}

// Summary is the aggregate view written next to a workout.
type Summary struct {
	WorkoutID     uuid.UUID `json:"workout_id"`
	User          string    `json:"user"`
	RaceID        string    `json:"race_id,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	DurationMS    int64     `json:"duration_ms"`
	DistanceM     float64   `json:"distance_m"`
	Calories      uint16    `json:"calories"`
	AvgHeartRate  float64   `json:"avg_heart_rate,omitempty"`
	MaxHeartRate  uint8     `json:"max_heart_rate,omitempty"`
	AvgPower      float64   `json:"avg_power,omitempty"`
	AvgStrokeRate float64   `json:"avg_stroke_rate,omitempty"`
	AvgPaceMS     float64   `json:"avg_pace_ms,omitempty"`
	Samples       int       `json:"samples"`
}

func elapsedMS(t rowing.Time) int64 { return int64(t) * 10 }
func distanceM(d rowing.Distance) float64 { return float64(d) / 10 }
func paceMS(p rowing.Pace) uint32 { return uint32(p) * 10 }
func driveTimeMS(d rowing.DriveTime) uint32 { return uint32(d) * 10 }
func forceN(f rowing.Force) float64 { return float64(f) * newtonsPerTenthPound }
func workJ(w rowing.Work) float64 { return float64(w) / 10 }

func ptr[T any](v T) *T { return &v }
