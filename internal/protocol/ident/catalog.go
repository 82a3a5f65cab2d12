package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Characteristic is one catalogued entry of a service.
type Characteristic struct {
	Service Service
	Index   uint8
	Name    string
}

func (c Characteristic) UUID() uuid.UUID {
	return IdentifierOf(c.Service, c.Index)
}

// String renders the qualified catalog name, e.g. "rowing.stroke_data".
func (c Characteristic) String() string {
	if c.IsZero() {
		return "unknown"
	}
	return c.Service.String() + "." + c.Name
}

func (c Characteristic) IsZero() bool {
	return c.Service == 0 && c.Index == 0
}

func (c Characteristic) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Characteristic) UnmarshalText(text []byte) error {
	parsed, err := ParseCharacteristic(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Information service.
var (
	ModelNumber      = Characteristic{Information, 1, "model_number"}
	SerialNumber     = Characteristic{Information, 2, "serial_number"}
	HardwareRevision = Characteristic{Information, 3, "hardware_revision"}
	FirmwareRevision = Characteristic{Information, 4, "firmware_revision"}
	ManufacturerName = Characteristic{Information, 5, "manufacturer_name"}
	MachineType      = Characteristic{Information, 6, "machine_type"}
)

// Control service.
var (
	ControlReceive  = Characteristic{Control, 1, "receive"}
	ControlTransmit = Characteristic{Control, 2, "transmit"}
)

// Rowing service, in vendor table order.
var (
	GeneralStatus                    = Characteristic{Rowing, 1, "general_status"}
	AdditionalStatusOne              = Characteristic{Rowing, 2, "additional_status_one"}
	AdditionalStatusTwo              = Characteristic{Rowing, 3, "additional_status_two"}
	GeneralStatusRate                = Characteristic{Rowing, 4, "general_status_rate"}
	StrokeData                       = Characteristic{Rowing, 5, "stroke_data"}
	AdditionalStrokeData             = Characteristic{Rowing, 6, "additional_stroke_data"}
	SplitIntervalData                = Characteristic{Rowing, 7, "split_interval_data"}
	AdditionalSplitIntervalData      = Characteristic{Rowing, 8, "additional_split_interval_data"}
	EndOfWorkoutSummary              = Characteristic{Rowing, 9, "end_of_workout_summary"}
	AdditionalEndOfWorkoutSummary    = Characteristic{Rowing, 10, "additional_end_of_workout_summary"}
	HeartRateBeltInformation         = Characteristic{Rowing, 11, "heart_rate_belt_information"}
	AdditionalEndOfWorkoutSummaryTwo = Characteristic{Rowing, 12, "additional_end_of_workout_summary_two"}
	ForceCurveData                   = Characteristic{Rowing, 13, "force_curve_data"}
	AdditionalStatusThree            = Characteristic{Rowing, 14, "additional_status_three"}
	MultiplexedInformation           = Characteristic{Rowing, 15, "multiplexed_information"}
)

// Heart-rate service.
var HeartRateReceive = Characteristic{HeartRate, 1, "receive"}

var catalog = map[Service][]Characteristic{
	Information: {ModelNumber, SerialNumber, HardwareRevision, FirmwareRevision, ManufacturerName, MachineType},
	Control:     {ControlReceive, ControlTransmit},
	Rowing: {
		GeneralStatus,
		AdditionalStatusOne,
		AdditionalStatusTwo,
		GeneralStatusRate,
		StrokeData,
		AdditionalStrokeData,
		SplitIntervalData,
		AdditionalSplitIntervalData,
		EndOfWorkoutSummary,
		AdditionalEndOfWorkoutSummary,
		HeartRateBeltInformation,
		AdditionalEndOfWorkoutSummaryTwo,
		ForceCurveData,
		AdditionalStatusThree,
		MultiplexedInformation,
	},
	HeartRate: {HeartRateReceive},
}

var (
	byID   = map[uuid.UUID]Characteristic{}
	byName = map[string]Characteristic{}
)

func init() {
	for _, s := range Services() {
		for _, c := range catalog[s] {
			id := c.UUID()
			if prev, dup := byID[id]; dup {
				panic(fmt.Sprintf("ident: %s collides with %s at %s", c, prev, id))
			}
			byID[id] = c
			byName[c.String()] = c
		}
	}
}

// Characteristics returns the catalog of service ordered by index.
func Characteristics(service Service) []Characteristic {
	entries := catalog[service]
	out := make([]Characteristic, len(entries))
	copy(out, entries)
	return out
}

// All returns every catalogued characteristic across all services.
func All() []Characteristic {
	out := make([]Characteristic, 0, len(byID))
	for _, s := range Services() {
		out = append(out, catalog[s]...)
	}
	return out
}

// Lookup resolves id against the catalog.
func Lookup(id uuid.UUID) (Characteristic, bool) {
	c, ok := byID[id]
	return c, ok
}

// ParseCharacteristic accepts a canonical UUID string or a qualified catalog
// name such as "rowing.general_status".
func ParseCharacteristic(raw string) (Characteristic, error) {
	raw = strings.TrimSpace(raw)
	if c, ok := byName[strings.ToLower(raw)]; ok {
		return c, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Characteristic{}, fmt.Errorf("%w: %q", ErrUnknownName, raw)
	}
	c, ok := Lookup(id)
	if !ok {
		return Characteristic{}, fmt.Errorf("%w: %s", ErrUnknownName, id)
	}
	return c, nil
}

// ParseIdentifier accepts the same forms as ParseCharacteristic but also lets
// uncatalogued identifiers through so callers can report them precisely.
func ParseIdentifier(raw string) (uuid.UUID, error) {
	if c, err := ParseCharacteristic(raw); err == nil {
		return c.UUID(), nil
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownName, raw)
	}
	return id, nil
}
