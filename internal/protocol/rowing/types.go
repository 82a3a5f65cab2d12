package rowing

import "github.com/danmuck/rowctl/internal/protocol/wire"

// Scalar newtypes carry raw device units. Conversions live with consumers.

// Time is elapsed time in 0.01 s.
type Time wire.Uint24

// Distance is in 0.1 m.
type Distance wire.Uint24

// LogEntryDate and LogEntryTime are packed device calendar words.
type LogEntryDate uint16
type LogEntryTime uint16

// StrokeRecoveryTime is in 0.01 s.
type StrokeRecoveryTime uint16

// RestTime is in 1 s.
type RestTime uint16

// RestDistance is in 1 m.
type RestDistance uint16

// Pace is in 0.01 s per 500 m.
type Pace uint16

// Speed is in 0.001 m/s.
type Speed uint16

// Power is in watts.
type Power uint16

// Calories is in kcal, or kcal/hr for rates.
type Calories uint16

// StrokeDistance is in 0.01 m.
type StrokeDistance uint16

// Force is in 0.1 lbf.
type Force uint16

// Work is in 0.1 J.
type Work uint16

// Size is a split interval size, two bytes on the wire.
type Size uint16

type StrokeCount uint16
type GameScore uint16

type StrokeRate uint8
type HeartRate uint8
type DragFactor uint8
type IntervalCount uint8

// DriveLength is in 0.01 m.
type DriveLength uint8

// DriveTime is in 0.01 s.
type DriveTime uint8

type GameID uint8
type ManufacturerID uint8
type DeviceType uint8
type BeltID uint32

func (Time) Width() wire.Width { return wire.W24 }
func (Distance) Width() wire.Width { return wire.W24 }
func (LogEntryDate) Width() wire.Width { return wire.W16 }
func (LogEntryTime) Width() wire.Width { return wire.W16 }
func (StrokeRecoveryTime) Width() wire.Width { return wire.W16 }
func (RestTime) Width() wire.Width { return wire.W16 }
func (RestDistance) Width() wire.Width { return wire.W16 }
func (Pace) Width() wire.Width { return wire.W16 }
func (Speed) Width() wire.Width { return wire.W16 }
func (Power) Width() wire.Width { return wire.W16 }
func (Calories) Width() wire.Width { return wire.W16 }
func (StrokeDistance) Width() wire.Width { return wire.W16 }
func (Force) Width() wire.Width { return wire.W16 }
func (Work) Width() wire.Width { return wire.W16 }
func (Size) Width() wire.Width { return wire.W16 }
func (StrokeCount) Width() wire.Width { return wire.W16 }
func (GameScore) Width() wire.Width { return wire.W16 }
func (StrokeRate) Width() wire.Width { return wire.W8 }
func (HeartRate) Width() wire.Width { return wire.W8 }
func (DragFactor) Width() wire.Width { return wire.W8 }
func (IntervalCount) Width() wire.Width { return wire.W8 }
func (DriveLength) Width() wire.Width { return wire.W8 }
func (DriveTime) Width() wire.Width { return wire.W8 }
func (GameID) Width() wire.Width { return wire.W8 }
func (ManufacturerID) Width() wire.Width { return wire.W8 }
func (DeviceType) Width() wire.Width { return wire.W8 }
func (BeltID) Width() wire.Width { return wire.W32 }
