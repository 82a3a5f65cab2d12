// Package rowing holds the rowing service record shapes and their decoders.
package rowing

import "github.com/danmuck/rowctl/internal/protocol/ident"

// Record is one decoded Rowing characteristic. The set of implementations is
// closed; switch on the concrete type to consume it.
type Record interface {
	Characteristic() ident.Characteristic
	record()
}

type GeneralStatus struct {
	ElapsedTime         Time                `json:"elapsed_time"`
	Distance            Distance            `json:"distance"`
	WorkoutType         WorkoutType         `json:"workout_type"`
	IntervalType        IntervalType        `json:"interval_type"`
	WorkoutState        WorkoutState        `json:"workout_state"`
	RowingState         RowingState         `json:"rowing_state"`
	StrokeState         StrokeState         `json:"stroke_state"`
	TotalWorkDistance   Distance            `json:"total_work_distance"`
	WorkoutDuration     Time                `json:"workout_duration"`
	WorkoutDurationType WorkoutDurationType `json:"workout_duration_type"`
	DragFactor          DragFactor          `json:"drag_factor"`
}

type AdditionalStatusOne struct {
	ElapsedTime  Time           `json:"elapsed_time"`
	Speed        Speed          `json:"speed"`
	StrokeRate   StrokeRate     `json:"stroke_rate"`
	HeartRate    HeartRate      `json:"heart_rate"`
	CurrentPace  Pace           `json:"current_pace"`
	AveragePace  Pace           `json:"average_pace"`
	RestDistance RestDistance   `json:"rest_distance"`
	RestTime     Time           `json:"rest_time"` // three bytes here, two in sibling records
	MachineType  ErgMachineType `json:"machine_type"`
}

type AdditionalStatusTwo struct {
	ElapsedTime              Time          `json:"elapsed_time"`
	IntervalCount            IntervalCount `json:"interval_count"`
	AveragePower             Power         `json:"average_power"`
	TotalCalories            Calories      `json:"total_calories"`
	SplitIntervalAvgPace     Pace          `json:"split_interval_avg_pace"`
	SplitIntervalAvgPower    Power         `json:"split_interval_avg_power"`
	SplitIntervalAvgCalories Calories      `json:"split_interval_avg_calories"`
	LastSplitTime            Time          `json:"last_split_time"`
	LastSplitDistance        Distance      `json:"last_split_distance"`
}

type GeneralStatusRate struct {
	Rate SampleRate `json:"rate"`
}

type StrokeData struct {
	ElapsedTime    Time               `json:"elapsed_time"`
	Distance       Distance           `json:"distance"`
	DriveLength    DriveLength        `json:"drive_length"`
	DriveTime      DriveTime          `json:"drive_time"`
	RecoveryTime   StrokeRecoveryTime `json:"recovery_time"`
	StrokeDistance StrokeDistance     `json:"stroke_distance"`
	PeakDriveForce Force              `json:"peak_drive_force"`
	AvgDriveForce  Force              `json:"avg_drive_force"`
	WorkPerStroke  Work               `json:"work_per_stroke"`
	StrokeCount    StrokeCount        `json:"stroke_count"`
}

type AdditionalStrokeData struct {
	ElapsedTime           Time        `json:"elapsed_time"`
	StrokePower           Power       `json:"stroke_power"`
	StrokeCalories        Calories    `json:"stroke_calories"`
	StrokeCount           StrokeCount `json:"stroke_count"`
	ProjectedWorkTime     Time        `json:"projected_work_time"`
	ProjectedWorkDistance Distance    `json:"projected_work_distance"`
}

type SplitIntervalData struct {
	ElapsedTime           Time          `json:"elapsed_time"`
	Distance              Distance      `json:"distance"`
	SplitIntervalTime     Time          `json:"split_interval_time"`
	SplitIntervalDistance Distance      `json:"split_interval_distance"`
	IntervalRestTime      RestTime      `json:"interval_rest_time"`
	IntervalRestDistance  RestDistance  `json:"interval_rest_distance"`
	SplitIntervalType     IntervalType  `json:"split_interval_type"`
	SplitIntervalNumber   IntervalCount `json:"split_interval_number"`
}

type AdditionalSplitIntervalData struct {
	ElapsedTime                Time           `json:"elapsed_time"`
	SplitIntervalAvgStrokeRate StrokeRate     `json:"split_interval_avg_stroke_rate"`
	SplitIntervalWorkHeartRate HeartRate      `json:"split_interval_work_heart_rate"`
	SplitIntervalRestHeartRate HeartRate      `json:"split_interval_rest_heart_rate"`
	SplitIntervalAvgPace       Pace           `json:"split_interval_avg_pace"`
	SplitIntervalTotalCalories Calories       `json:"split_interval_total_calories"`
	SplitIntervalAvgCalories   Calories       `json:"split_interval_avg_calories"`
	SplitIntervalSpeed         Speed          `json:"split_interval_speed"`
	SplitIntervalPower         Power          `json:"split_interval_power"`
	SplitAvgDragFactor         DragFactor     `json:"split_avg_drag_factor"`
	SplitIntervalNumber        IntervalCount  `json:"split_interval_number"`
	MachineType                ErgMachineType `json:"machine_type"`
}

type EndOfWorkoutSummary struct {
	LogEntryDate     LogEntryDate `json:"log_entry_date"`
	LogEntryTime     LogEntryTime `json:"log_entry_time"`
	ElapsedTime      Time         `json:"elapsed_time"`
	Distance         Distance     `json:"distance"`
	AvgStrokeRate    StrokeRate   `json:"avg_stroke_rate"`
	EndingHeartRate  HeartRate    `json:"ending_heart_rate"`
	AvgHeartRate     HeartRate    `json:"avg_heart_rate"`
	MinHeartRate     HeartRate    `json:"min_heart_rate"`
	MaxHeartRate     HeartRate    `json:"max_heart_rate"`
	AvgDragFactor    DragFactor   `json:"avg_drag_factor"`
	RecoverHeartRate HeartRate    `json:"recover_heart_rate"`
	WorkoutType      WorkoutType  `json:"workout_type"`
	AvgPace          Pace         `json:"avg_pace"`
}

type AdditionalEndOfWorkoutSummary struct {
	LogEntryDate       LogEntryDate  `json:"log_entry_date"`
	LogEntryTime       LogEntryTime  `json:"log_entry_time"`
	SplitIntervalType  IntervalType  `json:"split_interval_type"`
	SplitIntervalSize  Size          `json:"split_interval_size"`
	SplitIntervalCount IntervalCount `json:"split_interval_count"`
	TotalCalories      Calories      `json:"total_calories"`
	Watts              Work          `json:"watts"`
	TotalRestDistance  Distance      `json:"total_rest_distance"`
	IntervalRestTime   RestTime      `json:"interval_rest_time"`
	AvgCalories        Calories      `json:"avg_calories"`
}

type HeartRateBeltInformation struct {
	ManufacturerID ManufacturerID `json:"manufacturer_id"`
	DeviceType     DeviceType     `json:"device_type"`
	BeltID         BeltID         `json:"belt_id"`
}

type AdditionalEndOfWorkoutSummaryTwo struct {
	LogEntryDate LogEntryDate   `json:"log_entry_date"`
	LogEntryTime LogEntryTime   `json:"log_entry_time"`
	AvgPace      Pace           `json:"avg_pace"`
	GameID       GameID         `json:"game_id"`
	GameScore    GameScore      `json:"game_score"`
	MachineType  ErgMachineType `json:"machine_type"`
}

// ForceCurve holds one stroke's force samples in arrival order.
type ForceCurve struct {
	Samples []Force `json:"samples"`
}

func (GeneralStatus) Characteristic() ident.Characteristic { return ident.GeneralStatus }
func (AdditionalStatusOne) Characteristic() ident.Characteristic {
	return ident.AdditionalStatusOne
}
func (AdditionalStatusTwo) Characteristic() ident.Characteristic {
	return ident.AdditionalStatusTwo
}
func (GeneralStatusRate) Characteristic() ident.Characteristic { return ident.GeneralStatusRate }
func (StrokeData) Characteristic() ident.Characteristic { return ident.StrokeData }
func (AdditionalStrokeData) Characteristic() ident.Characteristic {
	return ident.AdditionalStrokeData
}
func (SplitIntervalData) Characteristic() ident.Characteristic { return ident.SplitIntervalData }
func (AdditionalSplitIntervalData) Characteristic() ident.Characteristic {
	return ident.AdditionalSplitIntervalData
}
func (EndOfWorkoutSummary) Characteristic() ident.Characteristic { return ident.EndOfWorkoutSummary }
func (AdditionalEndOfWorkoutSummary) Characteristic() ident.Characteristic {
	return ident.AdditionalEndOfWorkoutSummary
}
func (HeartRateBeltInformation) Characteristic() ident.Characteristic {
	return ident.HeartRateBeltInformation
}
func (AdditionalEndOfWorkoutSummaryTwo) Characteristic() ident.Characteristic {
	return ident.AdditionalEndOfWorkoutSummaryTwo
}
func (ForceCurve) Characteristic() ident.Characteristic { return ident.ForceCurveData }

func (GeneralStatus) record() {}
func (AdditionalStatusOne) record() {}
func (AdditionalStatusTwo) record() {}
func (GeneralStatusRate) record() {}
func (StrokeData) record() {}
func (AdditionalStrokeData) record() {}
func (SplitIntervalData) record() {}
func (AdditionalSplitIntervalData) record() {}
func (EndOfWorkoutSummary) record() {}
func (AdditionalEndOfWorkoutSummary) record() {}
func (HeartRateBeltInformation) record() {}
func (AdditionalEndOfWorkoutSummaryTwo) record() {}
func (ForceCurve) record() {}
