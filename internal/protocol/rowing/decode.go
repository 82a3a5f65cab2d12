package rowing

import (
	"errors"
	"fmt"

	"github.com/danmuck/rowctl/internal/protocol/enum"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/wire"
)

var ErrUnexpectedByteCount = errors.New("rowing: unexpected byte count")

// FieldError locates the first field a decode could not read.
type FieldError struct {
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("rowing: field %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// fields reads a record in declaration order and keeps only the first error.
// Once it has failed, every later read returns the zero value untouched.
type fields struct {
	c   *wire.Cursor
	err error
}

func newFields(payload []byte) *fields {
	return &fields{c: wire.NewCursor(payload)}
}

func scalar[T wire.Scalar](f *fields, name string) T {
	var v T
	if f.err != nil {
		return v
	}
	off := f.c.Offset()
	v, err := wire.Read[T](f.c)
	if err != nil {
		f.err = &FieldError{Field: name, Offset: off, Err: err}
	}
	return v
}

func variant[E ~uint8](f *fields, name string, t *enum.Table[E]) E {
	if f.err != nil {
		return 0
	}
	off := f.c.Offset()
	v, err := enum.Decode(f.c, t)
	if err != nil {
		f.err = &FieldError{Field: name, Offset: off, Err: err}
	}
	return v
}

// done hands back rec only if every field decoded. Bytes after the last field
// are ignored.
func done[R Record](f *fields, rec R) (R, error) {
	if f.err != nil {
		var zero R
		return zero, f.err
	}
	return rec, nil
}

func DecodeGeneralStatus(payload []byte) (GeneralStatus, error) {
	f := newFields(payload)
	return done(f, GeneralStatus{
		ElapsedTime:         scalar[Time](f, "elapsed_time"),
		Distance:            scalar[Distance](f, "distance"),
		WorkoutType:         variant(f, "workout_type", workoutTypes),
		IntervalType:        variant(f, "interval_type", intervalTypes),
		WorkoutState:        variant(f, "workout_state", workoutStates),
		RowingState:         variant(f, "rowing_state", rowingStates),
		StrokeState:         variant(f, "stroke_state", strokeStates),
		TotalWorkDistance:   scalar[Distance](f, "total_work_distance"),
		WorkoutDuration:     scalar[Time](f, "workout_duration"),
		WorkoutDurationType: variant(f, "workout_duration_type", workoutDurationTypes),
		DragFactor:          scalar[DragFactor](f, "drag_factor"),
	})
}

func DecodeAdditionalStatusOne(payload []byte) (AdditionalStatusOne, error) {
	f := newFields(payload)
	return done(f, AdditionalStatusOne{
		ElapsedTime:  scalar[Time](f, "elapsed_time"),
		Speed:        scalar[Speed](f, "speed"),
		StrokeRate:   scalar[StrokeRate](f, "stroke_rate"),
		HeartRate:    scalar[HeartRate](f, "heart_rate"),
		CurrentPace:  scalar[Pace](f, "current_pace"),
		AveragePace:  scalar[Pace](f, "average_pace"),
		RestDistance: scalar[RestDistance](f, "rest_distance"),
		RestTime:     scalar[Time](f, "rest_time"),
		MachineType:  variant(f, "machine_type", ergMachineTypes),
	})
}

func DecodeAdditionalStatusTwo(payload []byte) (AdditionalStatusTwo, error) {
	f := newFields(payload)
	return done(f, AdditionalStatusTwo{
		ElapsedTime:              scalar[Time](f, "elapsed_time"),
		IntervalCount:            scalar[IntervalCount](f, "interval_count"),
		AveragePower:             scalar[Power](f, "average_power"),
		TotalCalories:            scalar[Calories](f, "total_calories"),
		SplitIntervalAvgPace:     scalar[Pace](f, "split_interval_avg_pace"),
		SplitIntervalAvgPower:    scalar[Power](f, "split_interval_avg_power"),
		SplitIntervalAvgCalories: scalar[Calories](f, "split_interval_avg_calories"),
		LastSplitTime:            scalar[Time](f, "last_split_time"),
		LastSplitDistance:        scalar[Distance](f, "last_split_distance"),
	})
}

func DecodeGeneralStatusRate(payload []byte) (GeneralStatusRate, error) {
	f := newFields(payload)
	return done(f, GeneralStatusRate{
		Rate: variant(f, "rate", sampleRates),
	})
}

func DecodeStrokeData(payload []byte) (StrokeData, error) {
	f := newFields(payload)
	return done(f, StrokeData{
		ElapsedTime:    scalar[Time](f, "elapsed_time"),
		Distance:       scalar[Distance](f, "distance"),
		DriveLength:    scalar[DriveLength](f, "drive_length"),
		DriveTime:      scalar[DriveTime](f, "drive_time"),
		RecoveryTime:   scalar[StrokeRecoveryTime](f, "recovery_time"),
		StrokeDistance: scalar[StrokeDistance](f, "stroke_distance"),
		PeakDriveForce: scalar[Force](f, "peak_drive_force"),
		AvgDriveForce:  scalar[Force](f, "avg_drive_force"),
		WorkPerStroke:  scalar[Work](f, "work_per_stroke"),
		StrokeCount:    scalar[StrokeCount](f, "stroke_count"),
	})
}

func DecodeAdditionalStrokeData(payload []byte) (AdditionalStrokeData, error) {
	f := newFields(payload)
	return done(f, AdditionalStrokeData{
		ElapsedTime:           scalar[Time](f, "elapsed_time"),
		StrokePower:           scalar[Power](f, "stroke_power"),
		StrokeCalories:        scalar[Calories](f, "stroke_calories"),
		StrokeCount:           scalar[StrokeCount](f, "stroke_count"),
		ProjectedWorkTime:     scalar[Time](f, "projected_work_time"),
		ProjectedWorkDistance: scalar[Distance](f, "projected_work_distance"),
	})
}

func DecodeSplitIntervalData(payload []byte) (SplitIntervalData, error) {
	f := newFields(payload)
	return done(f, SplitIntervalData{
		ElapsedTime:           scalar[Time](f, "elapsed_time"),
		Distance:              scalar[Distance](f, "distance"),
		SplitIntervalTime:     scalar[Time](f, "split_interval_time"),
		SplitIntervalDistance: scalar[Distance](f, "split_interval_distance"),
		IntervalRestTime:      scalar[RestTime](f, "interval_rest_time"),
		IntervalRestDistance:  scalar[RestDistance](f, "interval_rest_distance"),
		SplitIntervalType:     variant(f, "split_interval_type", intervalTypes),
		SplitIntervalNumber:   scalar[IntervalCount](f, "split_interval_number"),
	})
}

func DecodeAdditionalSplitIntervalData(payload []byte) (AdditionalSplitIntervalData, error) {
	f := newFields(payload)
	return done(f, AdditionalSplitIntervalData{
		ElapsedTime:                scalar[Time](f, "elapsed_time"),
		SplitIntervalAvgStrokeRate: scalar[StrokeRate](f, "split_interval_avg_stroke_rate"),
		SplitIntervalWorkHeartRate: scalar[HeartRate](f, "split_interval_work_heart_rate"),
		SplitIntervalRestHeartRate: scalar[HeartRate](f, "split_interval_rest_heart_rate"),
		SplitIntervalAvgPace:       scalar[Pace](f, "split_interval_avg_pace"),
		SplitIntervalTotalCalories: scalar[Calories](f, "split_interval_total_calories"),
		SplitIntervalAvgCalories:   scalar[Calories](f, "split_interval_avg_calories"),
		SplitIntervalSpeed:         scalar[Speed](f, "split_interval_speed"),
		SplitIntervalPower:         scalar[Power](f, "split_interval_power"),
		SplitAvgDragFactor:         scalar[DragFactor](f, "split_avg_drag_factor"),
		SplitIntervalNumber:        scalar[IntervalCount](f, "split_interval_number"),
		MachineType:                variant(f, "machine_type", ergMachineTypes),
	})
}

func DecodeEndOfWorkoutSummary(payload []byte) (EndOfWorkoutSummary, error) {
	f := newFields(payload)
	return done(f, EndOfWorkoutSummary{
		LogEntryDate:     scalar[LogEntryDate](f, "log_entry_date"),
		LogEntryTime:     scalar[LogEntryTime](f, "log_entry_time"),
		ElapsedTime:      scalar[Time](f, "elapsed_time"),
		Distance:         scalar[Distance](f, "distance"),
		AvgStrokeRate:    scalar[StrokeRate](f, "avg_stroke_rate"),
		EndingHeartRate:  scalar[HeartRate](f, "ending_heart_rate"),
		AvgHeartRate:     scalar[HeartRate](f, "avg_heart_rate"),
		MinHeartRate:     scalar[HeartRate](f, "min_heart_rate"),
		MaxHeartRate:     scalar[HeartRate](f, "max_heart_rate"),
		AvgDragFactor:    scalar[DragFactor](f, "avg_drag_factor"),
		RecoverHeartRate: scalar[HeartRate](f, "recover_heart_rate"),
		WorkoutType:      variant(f, "workout_type", workoutTypes),
		AvgPace:          scalar[Pace](f, "avg_pace"),
	})
}

func DecodeAdditionalEndOfWorkoutSummary(payload []byte) (AdditionalEndOfWorkoutSummary, error) {
	f := newFields(payload)
	return done(f, AdditionalEndOfWorkoutSummary{
		LogEntryDate:       scalar[LogEntryDate](f, "log_entry_date"),
		LogEntryTime:       scalar[LogEntryTime](f, "log_entry_time"),
		SplitIntervalType:  variant(f, "split_interval_type", intervalTypes),
		SplitIntervalSize:  scalar[Size](f, "split_interval_size"),
		SplitIntervalCount: scalar[IntervalCount](f, "split_interval_count"),
		TotalCalories:      scalar[Calories](f, "total_calories"),
		Watts:              scalar[Work](f, "watts"),
		TotalRestDistance:  scalar[Distance](f, "total_rest_distance"),
		IntervalRestTime:   scalar[RestTime](f, "interval_rest_time"),
		AvgCalories:        scalar[Calories](f, "avg_calories"),
	})
}

func DecodeHeartRateBeltInformation(payload []byte) (HeartRateBeltInformation, error) {
	f := newFields(payload)
	return done(f, HeartRateBeltInformation{
		ManufacturerID: scalar[ManufacturerID](f, "manufacturer_id"),
		DeviceType:     scalar[DeviceType](f, "device_type"),
		BeltID:         scalar[BeltID](f, "belt_id"),
	})
}

func DecodeAdditionalEndOfWorkoutSummaryTwo(payload []byte) (AdditionalEndOfWorkoutSummaryTwo, error) {
	f := newFields(payload)
	return done(f, AdditionalEndOfWorkoutSummaryTwo{
		LogEntryDate: scalar[LogEntryDate](f, "log_entry_date"),
		LogEntryTime: scalar[LogEntryTime](f, "log_entry_time"),
		AvgPace:      scalar[Pace](f, "avg_pace"),
		GameID:       scalar[GameID](f, "game_id"),
		GameScore:    scalar[GameScore](f, "game_score"),
		MachineType:  variant(f, "machine_type", ergMachineTypes),
	})
}

// DecodeForceCurve consumes the whole payload as 16-bit samples.
func DecodeForceCurve(payload []byte) (ForceCurve, error) {
	if len(payload)%int(wire.W16) != 0 {
		return ForceCurve{}, fmt.Errorf("%w: %d bytes leaves a trailing partial sample", ErrUnexpectedByteCount, len(payload))
	}
	samples, err := wire.ReadAll[Force](wire.NewCursor(payload))
	if err != nil {
		return ForceCurve{}, err
	}
	return ForceCurve{Samples: samples}, nil
}

// Decoder turns one payload into a Record.
type Decoder func(payload []byte) (Record, error)

func adapt[R Record](fn func([]byte) (R, error)) Decoder {
	return func(payload []byte) (Record, error) {
		rec, err := fn(payload)
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
}

// Decoders maps every fully decoded Rowing characteristic to its decoder.
// Additional Status Three and Multiplexed Information have no entry.
func Decoders() map[ident.Characteristic]Decoder {
	return map[ident.Characteristic]Decoder{
		ident.GeneralStatus:                    adapt(DecodeGeneralStatus),
		ident.AdditionalStatusOne:              adapt(DecodeAdditionalStatusOne),
		ident.AdditionalStatusTwo:              adapt(DecodeAdditionalStatusTwo),
		ident.GeneralStatusRate:                adapt(DecodeGeneralStatusRate),
		ident.StrokeData:                       adapt(DecodeStrokeData),
		ident.AdditionalStrokeData:             adapt(DecodeAdditionalStrokeData),
		ident.SplitIntervalData:                adapt(DecodeSplitIntervalData),
		ident.AdditionalSplitIntervalData:      adapt(DecodeAdditionalSplitIntervalData),
		ident.EndOfWorkoutSummary:              adapt(DecodeEndOfWorkoutSummary),
		ident.AdditionalEndOfWorkoutSummary:    adapt(DecodeAdditionalEndOfWorkoutSummary),
		ident.HeartRateBeltInformation:         adapt(DecodeHeartRateBeltInformation),
		ident.AdditionalEndOfWorkoutSummaryTwo: adapt(DecodeAdditionalEndOfWorkoutSummaryTwo),
		ident.ForceCurveData:                   adapt(DecodeForceCurve),
	}
}
