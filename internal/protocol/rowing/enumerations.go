package rowing

import "github.com/danmuck/rowctl/internal/protocol/enum"

// Enumeration is a read-only view of one discriminant table.
type Enumeration struct {
	Name    string              `json:"name"`
	Members []EnumerationMember `json:"members"`
}

type EnumerationMember struct {
	Value uint8  `json:"value"`
	Name  string `json:"name"`
}

// Enumerations lists every discriminant table the rowing records use.
func Enumerations() []Enumeration {
	return []Enumeration{
		describe(operationalStates),
		describe(ergModelTypes),
		describe(ergMachineTypes),
		describe(workoutTypes),
		describe(intervalTypes),
		describe(workoutStates),
		describe(rowingStates),
		describe(strokeStates),
		describe(workoutDurationTypes),
		describe(displayUnitTypes),
		describe(displayFormatTypes),
		describe(workoutNumbers),
		describe(workoutProgrammingModes),
		describe(strokeRateStates),
		describe(startTypes),
		describe(raceOperationTypes),
		describe(raceStates),
		describe(raceTypes),
		describe(raceStartStates),
		describe(screenTypes),
		describe(screenValueWorkoutTypes),
		describe(screenValueRaceTypes),
		describe(screenValueCSAFEs),
		describe(screenStatuss),
		describe(statusTypes),
		describe(displayUpdateRates),
		describe(sampleRates),
	}
}

func describe[E ~uint8](t *enum.Table[E]) Enumeration {
	members := t.Members()
	out := Enumeration{Name: t.Name(), Members: make([]EnumerationMember, len(members))}
	for i, m := range members {
		out.Members[i] = EnumerationMember{Value: uint8(m.Value), Name: m.Name}
	}
	return out
}

func unmarshalText[E ~uint8](t *enum.Table[E], v *E, b []byte) error {
	parsed, err := t.Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
