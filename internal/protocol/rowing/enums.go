package rowing

import "github.com/danmuck/rowctl/internal/protocol/enum"

// OperationalState is the PM5 machine state.
type OperationalState uint8

const (
	OperationalStateReset                 OperationalState = 0
	OperationalStateReady                 OperationalState = 1
	OperationalStateWorkout               OperationalState = 2
	OperationalStateWarmup                OperationalState = 3
	OperationalStateRace                  OperationalState = 4
	OperationalStatePowerOff              OperationalState = 5
	OperationalStatePause                 OperationalState = 6
	OperationalStateInvokeBootLoader      OperationalState = 7
	OperationalStatePowerOffShip          OperationalState = 8
	OperationalStateIdleCharge            OperationalState = 9
	OperationalStateIdle                  OperationalState = 10
	OperationalStateMFGTest               OperationalState = 11
	OperationalStateFWUpdate              OperationalState = 12
	OperationalStateDragFactor            OperationalState = 13
	OperationalStateDragFactorCalibration OperationalState = 100
)

type ErgModelType uint8

const (
	ErgModelTypeDE ErgModelType = 0
	ErgModelTypeCB ErgModelType = 1
	ErgModelTypeA  ErgModelType = 2
)

// ErgMachineType identifies the attached machine family.
type ErgMachineType uint8

const (
	ErgMachineTypeStaticD            ErgMachineType = 0
	ErgMachineTypeStaticC            ErgMachineType = 1
	ErgMachineTypeStaticA            ErgMachineType = 2
	ErgMachineTypeStaticB            ErgMachineType = 3
	ErgMachineTypeStaticE            ErgMachineType = 5
	ErgMachineTypeStaticSimulator    ErgMachineType = 7
	ErgMachineTypeStaticDynamic      ErgMachineType = 8
	ErgMachineTypeSlidesA            ErgMachineType = 16
	ErgMachineTypeSlidesB            ErgMachineType = 17
	ErgMachineTypeSlidesC            ErgMachineType = 18
	ErgMachineTypeSlidesD            ErgMachineType = 19
	ErgMachineTypeSlidesE            ErgMachineType = 20
	ErgMachineTypeLinkedDynamic      ErgMachineType = 32
	ErgMachineTypeStaticDyno         ErgMachineType = 64
	ErgMachineTypeStaticSki          ErgMachineType = 128
	ErgMachineTypeStaticSkiSimulator ErgMachineType = 143
	ErgMachineTypeBike               ErgMachineType = 192
	ErgMachineTypeBikeArms           ErgMachineType = 193
	ErgMachineTypeBikeNoArms         ErgMachineType = 194
	ErgMachineTypeBikeSimulator      ErgMachineType = 207
	ErgMachineTypeMultiergRow        ErgMachineType = 224
	ErgMachineTypeMultiergSki        ErgMachineType = 225
	ErgMachineTypeMultiergBike       ErgMachineType = 226
	ErgMachineTypeNum                ErgMachineType = 227
)

type WorkoutType uint8

const (
	WorkoutTypeJustRowNoSplits               WorkoutType = 0
	WorkoutTypeJustRowSplits                 WorkoutType = 1
	WorkoutTypeFixedDistNoSplits             WorkoutType = 2
	WorkoutTypeFixedDistSplits               WorkoutType = 3
	WorkoutTypeFixedTimeNoSplits             WorkoutType = 4
	WorkoutTypeFixedTimeSplits               WorkoutType = 5
	WorkoutTypeFixedTimeInterval             WorkoutType = 6
	WorkoutTypeFixedDistInterval             WorkoutType = 7
	WorkoutTypeVariableInterval              WorkoutType = 8
	WorkoutTypeVariableUndefinedRestInterval WorkoutType = 9
	WorkoutTypeFixedCalorieSplits            WorkoutType = 10
	WorkoutTypeFixedWattMinuteSplits         WorkoutType = 11
	WorkoutTypeFixedCalsInterval             WorkoutType = 12
	WorkoutTypeNum                           WorkoutType = 13
)

type IntervalType uint8

const (
	IntervalTypeTime                    IntervalType = 0
	IntervalTypeDist                    IntervalType = 1
	IntervalTypeRest                    IntervalType = 2
	IntervalTypeTimeRestUndefined       IntervalType = 3
	IntervalTypeDistanceRestUndefined   IntervalType = 4
	IntervalTypeRestUndefined           IntervalType = 5
	IntervalTypeCalorie                 IntervalType = 6
	IntervalTypeCalorieRestUndefined    IntervalType = 7
	IntervalTypeWattMinute              IntervalType = 8
	IntervalTypeWattMinuteRestUndefined IntervalType = 9
	IntervalTypeNone                    IntervalType = 255
)

type WorkoutState uint8

const (
	WorkoutStateWaitToBegin                   WorkoutState = 0
	WorkoutStateWorkoutRow                    WorkoutState = 1
	WorkoutStateCountdownPause                WorkoutState = 2
	WorkoutStateIntervalRest                  WorkoutState = 3
	WorkoutStateIntervalWorkTime              WorkoutState = 4
	WorkoutStateIntervalWorkDistance          WorkoutState = 5
	WorkoutStateIntervalRestEndToWorkTime     WorkoutState = 6
	WorkoutStateIntervalRestEndToWorkDistance WorkoutState = 7
	WorkoutStateIntervalWorkTimeToRest        WorkoutState = 8
	WorkoutStateIntervalWorkDistanceToRest    WorkoutState = 9
	WorkoutStateWorkoutEnd                    WorkoutState = 10
	WorkoutStateTerminate                     WorkoutState = 11
	WorkoutStateWorkoutLogged                 WorkoutState = 12
	WorkoutStateRearm                         WorkoutState = 13
)

type RowingState uint8

const (
	RowingStateInactive RowingState = 0
	RowingStateActive   RowingState = 1
)

type StrokeState uint8

const (
	StrokeStateWaitingForWheelToReachMinSpeed StrokeState = 0
	StrokeStateWaitingForWheelToAccelerate    StrokeState = 1
	StrokeStateDriving                        StrokeState = 2
	StrokeStateDwellingAfterDrive             StrokeState = 3
	StrokeStateRecovery                       StrokeState = 4
)

// WorkoutDurationType selects the unit of a workout duration field.
type WorkoutDurationType uint8

const (
	WorkoutDurationTypeTime     WorkoutDurationType = 0x00
	WorkoutDurationTypeCalories WorkoutDurationType = 0x40
	WorkoutDurationTypeDistance WorkoutDurationType = 0x80
	WorkoutDurationTypeWattMin  WorkoutDurationType = 0xC0
)

type DisplayUnitType uint8

const (
	DisplayUnitTypeTimeMeters      DisplayUnitType = 0
	DisplayUnitTypePace            DisplayUnitType = 1
	DisplayUnitTypeWatts           DisplayUnitType = 2
	DisplayUnitTypeCaloricBurnRate DisplayUnitType = 3
	DisplayUnitTypeCalories        DisplayUnitType = 4
)

type DisplayFormatType uint8

const (
	DisplayFormatTypeStandard      DisplayFormatType = 0
	DisplayFormatTypeForceVelocity DisplayFormatType = 1
	DisplayFormatTypePaceBoat      DisplayFormatType = 2
	DisplayFormatTypePerStroke     DisplayFormatType = 3
	DisplayFormatTypeSimple        DisplayFormatType = 4
	DisplayFormatTypeTarget        DisplayFormatType = 5
)

type WorkoutNumber uint8

const (
	WorkoutNumberProgrammed WorkoutNumber = 0
	WorkoutNumberDefault1   WorkoutNumber = 1
	WorkoutNumberDefault2   WorkoutNumber = 2
	WorkoutNumberDefault3   WorkoutNumber = 3
	WorkoutNumberDefault4   WorkoutNumber = 4
	WorkoutNumberDefault5   WorkoutNumber = 5
	WorkoutNumberCustom1    WorkoutNumber = 6
	WorkoutNumberCustom2    WorkoutNumber = 7
	WorkoutNumberCustom3    WorkoutNumber = 8
	WorkoutNumberCustom4    WorkoutNumber = 9
	WorkoutNumberCustom5    WorkoutNumber = 10
	WorkoutNumberMSD1       WorkoutNumber = 11
	WorkoutNumberMSD2       WorkoutNumber = 12
	WorkoutNumberMSD3       WorkoutNumber = 13
	WorkoutNumberMSD4       WorkoutNumber = 14
	WorkoutNumberMSD5       WorkoutNumber = 15
	WorkoutNumberNum        WorkoutNumber = 16
)

type WorkoutProgrammingMode uint8

const (
	WorkoutProgrammingModeDisable WorkoutProgrammingMode = 0
	WorkoutProgrammingModeEnable  WorkoutProgrammingMode = 1
)

type StrokeRateState uint8

const (
	StrokeRateStateIdle       StrokeRateState = 0
	StrokeRateStateSteady     StrokeRateState = 1
	StrokeRateStateIncreasing StrokeRateState = 2
	StrokeRateStateDecreasing StrokeRateState = 3
)

type StartType uint8

const (
	StartTypeRandom          StartType = 0
	StartTypeCountdown       StartType = 1
	StartTypeRandomModified  StartType = 2
	StartTypeImmediate       StartType = 3
	StartTypeWaitForFlywheel StartType = 4
)

type RaceOperationType uint8

const (
	RaceOperationTypeDisable              RaceOperationType = 0
	RaceOperationTypeParticipationRequest RaceOperationType = 1
	RaceOperationTypeSleep                RaceOperationType = 2
	RaceOperationTypeErgInit              RaceOperationType = 3
	RaceOperationTypePhyAddrInit          RaceOperationType = 4
	RaceOperationTypeRaceWarmup           RaceOperationType = 5
	RaceOperationTypeRaceInit             RaceOperationType = 6
	RaceOperationTypeTimeSync             RaceOperationType = 7
	RaceOperationTypeRaceWaitToStart      RaceOperationType = 8
	RaceOperationTypeStart                RaceOperationType = 9
	RaceOperationTypeFalseStart           RaceOperationType = 10
	RaceOperationTypeTerminate            RaceOperationType = 11
	RaceOperationTypeIdle                 RaceOperationType = 12
	RaceOperationTypeTachSimEnable        RaceOperationType = 13
	RaceOperationTypeTachSimDisable       RaceOperationType = 14
)

type RaceState uint8

const (
	RaceStateIdle                 RaceState = 0
	RaceStateCountdown            RaceState = 1
	RaceStateRowing               RaceState = 2
	RaceStateIntervalRest         RaceState = 3
	RaceStateEndInterval          RaceState = 4
	RaceStateEndWorkoutRace       RaceState = 5
	RaceStateTerminateWorkoutRace RaceState = 6
	RaceStateFalseStart           RaceState = 7
	RaceStateInactive             RaceState = 8
)

type RaceType uint8

const (
	RaceTypeFixedDistSingleErg                          RaceType = 0
	RaceTypeFixedTimeSingleErg                          RaceType = 1
	RaceTypeFixedDistTeamErg                            RaceType = 2
	RaceTypeFixedTimeTeamErg                            RaceType = 3
	RaceTypeWorkoutRaceStart                            RaceType = 4
	RaceTypeFixedCalSingleErg                           RaceType = 5
	RaceTypeFixedCalTeamErg                             RaceType = 6
	RaceTypeFixedDistRelaySingleErg                     RaceType = 7
	RaceTypeFixedTimeRelaySingleErg                     RaceType = 8
	RaceTypeFixedCalRelaySingleErg                      RaceType = 9
	RaceTypeFixedDistRelayTeamErg                       RaceType = 10
	RaceTypeFixedTimeRelayTeamErg                       RaceType = 11
	RaceTypeFixedCalRelayTeamErg                        RaceType = 12
	RaceTypeFixedDistMultiactivitySequentialSingleErg   RaceType = 13
	RaceTypeFixedTimeMultiactivitySequentialSingleErg   RaceType = 14
	RaceTypeFixedCalMultiactivitySequentialSingleErg    RaceType = 15
	RaceTypeFixedDistMultiactivitySequentialTeamErg     RaceType = 16
	RaceTypeFixedTimeMultiactivitySequentialTeamErg     RaceType = 17
	RaceTypeFixedCalMultiactivitySequentialTeamErg      RaceType = 18
	RaceTypeFixedDistErgathlon                          RaceType = 19
	RaceTypeFixedTimeErgathlon                          RaceType = 20
	RaceTypeFixedCalErgathlon                           RaceType = 21
	RaceTypeFixedDistMultiactivitySimultaneousSingleErg RaceType = 22
	RaceTypeFixedTimeMultiactivitySimultaneousSingleErg RaceType = 23
	RaceTypeFixedCalMultiactivitySimultaneousSingleErg  RaceType = 24
	RaceTypeFixedDistMultiactivitySimultaneousTeamErg   RaceType = 25
	RaceTypeFixedTimeMultiactivitySimultaneousTeamErg   RaceType = 26
	RaceTypeFixedCalMultiactivitySimultaneousTeamErg    RaceType = 27
	RaceTypeFixedDistBiathlon                           RaceType = 28
	RaceTypeFixedCalBiathlon                            RaceType = 29
	RaceTypeFixedDistRelayNoChangeSingleErg             RaceType = 30
	RaceTypeFixedTimeRelayNoChangeSingleErg             RaceType = 31
	RaceTypeFixedCalRelayNoChangeSingleErg              RaceType = 32
	RaceTypeFixedTimeCalScoreSingleErg                  RaceType = 33
	RaceTypeFixedTimeCalScoreTeamErg                    RaceType = 34
	RaceTypeFixedDistTimeCapSingleErg                   RaceType = 35
	RaceTypeFixedCalTimeCapSingleErg                    RaceType = 36
)

type RaceStartState uint8

const (
	RaceStartStateInit          RaceStartState = 0
	RaceStartStatePrepare       RaceStartState = 1
	RaceStartStateWaitReady     RaceStartState = 2
	RaceStartStateWaitAttention RaceStartState = 3
	RaceStartStateWaitRow       RaceStartState = 4
	RaceStartStateCountdown     RaceStartState = 5
	RaceStartStateRow           RaceStartState = 6
	RaceStartStateFalseStart    RaceStartState = 7
)

type ScreenType uint8

const (
	ScreenTypeNone    ScreenType = 0
	ScreenTypeWorkout ScreenType = 1
	ScreenTypeRace    ScreenType = 2
	ScreenTypeCSAFE   ScreenType = 3
	ScreenTypeDiag    ScreenType = 4
	ScreenTypeMFG     ScreenType = 5
)

// ScreenValueWorkoutType is a workout screen command.
type ScreenValueWorkoutType uint8

const (
	ScreenValueWorkoutTypeNone                           ScreenValueWorkoutType = 0
	ScreenValueWorkoutTypePrepareToRowWorkout            ScreenValueWorkoutType = 1
	ScreenValueWorkoutTypeTerminateWorkout               ScreenValueWorkoutType = 2
	ScreenValueWorkoutTypeRearmWorkout                   ScreenValueWorkoutType = 3
	ScreenValueWorkoutTypeRefreshLogCard                 ScreenValueWorkoutType = 4
	ScreenValueWorkoutTypePrepareToRaceStart             ScreenValueWorkoutType = 5
	ScreenValueWorkoutTypeGoToMainScreen                 ScreenValueWorkoutType = 6
	ScreenValueWorkoutTypeLogCardBusyWarning             ScreenValueWorkoutType = 7
	ScreenValueWorkoutTypeLogCardSelectUser              ScreenValueWorkoutType = 8
	ScreenValueWorkoutTypeResetRaceParams                ScreenValueWorkoutType = 9
	ScreenValueWorkoutTypeCableTestSlave                 ScreenValueWorkoutType = 10
	ScreenValueWorkoutTypeFishGame                       ScreenValueWorkoutType = 11
	ScreenValueWorkoutTypeDisplayParticipantInfo         ScreenValueWorkoutType = 12
	ScreenValueWorkoutTypeDisplayParticipantInfoConfirm  ScreenValueWorkoutType = 13
	ScreenValueWorkoutTypeChangeDisplayTypeTarget        ScreenValueWorkoutType = 20
	ScreenValueWorkoutTypeChangeDisplayTypeStandard      ScreenValueWorkoutType = 21
	ScreenValueWorkoutTypeChangeDisplayTypeForceVelocity ScreenValueWorkoutType = 22
	ScreenValueWorkoutTypeChangeDisplayTypePaceBoat      ScreenValueWorkoutType = 23
	ScreenValueWorkoutTypeChangeDisplayTypePerStroke     ScreenValueWorkoutType = 24
	ScreenValueWorkoutTypeChangeDisplayTypeSimple        ScreenValueWorkoutType = 25
	ScreenValueWorkoutTypeChangeUnitsTypeTimeMeters      ScreenValueWorkoutType = 30
	ScreenValueWorkoutTypeChangeUnitsTypePace            ScreenValueWorkoutType = 31
	ScreenValueWorkoutTypeChangeUnitsTypeWatts           ScreenValueWorkoutType = 32
	ScreenValueWorkoutTypeChangeUnitsTypeCaloricBurnRate ScreenValueWorkoutType = 33
	ScreenValueWorkoutTypeTargetGameBasic                ScreenValueWorkoutType = 34
	ScreenValueWorkoutTypeTargetGameAdvanced             ScreenValueWorkoutType = 35
	ScreenValueWorkoutTypeDartGame                       ScreenValueWorkoutType = 36
	ScreenValueWorkoutTypeGoToUSBWaitReady               ScreenValueWorkoutType = 37
	ScreenValueWorkoutTypeTachCableTestDisable           ScreenValueWorkoutType = 38
	ScreenValueWorkoutTypeTachSimDisable                 ScreenValueWorkoutType = 39
	ScreenValueWorkoutTypeTachSimEnableRate1             ScreenValueWorkoutType = 40
	ScreenValueWorkoutTypeTachSimEnableRate2             ScreenValueWorkoutType = 41
	ScreenValueWorkoutTypeTachSimEnableRate3             ScreenValueWorkoutType = 42
	ScreenValueWorkoutTypeTachSimEnableRate4             ScreenValueWorkoutType = 43
	ScreenValueWorkoutTypeTachSimEnableRate5             ScreenValueWorkoutType = 44
	ScreenValueWorkoutTypeTachCableTestEnable            ScreenValueWorkoutType = 45
	ScreenValueWorkoutTypeChangeUnitsTypeCalories        ScreenValueWorkoutType = 46
	ScreenValueWorkoutTypeVirtualKeyA                    ScreenValueWorkoutType = 47
	ScreenValueWorkoutTypeVirtualKeyB                    ScreenValueWorkoutType = 48
	ScreenValueWorkoutTypeVirtualKeyC                    ScreenValueWorkoutType = 49
	ScreenValueWorkoutTypeVirtualKeyD                    ScreenValueWorkoutType = 50
	ScreenValueWorkoutTypeVirtualKeyE                    ScreenValueWorkoutType = 51
	ScreenValueWorkoutTypeVirtualKeyUnits                ScreenValueWorkoutType = 52
	ScreenValueWorkoutTypeVirtualKeyDisplay              ScreenValueWorkoutType = 53
	ScreenValueWorkoutTypeVirtualKeyMenu                 ScreenValueWorkoutType = 54
	ScreenValueWorkoutTypeTachSimEnableRateRandom        ScreenValueWorkoutType = 55
	ScreenValueWorkoutTypeScreenRedraw                   ScreenValueWorkoutType = 255
)

type ScreenValueRaceType uint8

const (
	ScreenValueRaceTypeNone                            ScreenValueRaceType = 0
	ScreenValueRaceTypeSetPhysicalAddr                 ScreenValueRaceType = 1
	ScreenValueRaceTypeConfirmPhysicalAddr             ScreenValueRaceType = 2
	ScreenValueRaceTypeWarmupForRace                   ScreenValueRaceType = 3
	ScreenValueRaceTypePrepareToRace                   ScreenValueRaceType = 4
	ScreenValueRaceTypeFalseStartRace                  ScreenValueRaceType = 5
	ScreenValueRaceTypeTerminateRace                   ScreenValueRaceType = 6
	ScreenValueRaceTypeAutosetPhysAddr                 ScreenValueRaceType = 7
	ScreenValueRaceTypeSetParticipantList              ScreenValueRaceType = 8
	ScreenValueRaceTypeSyncRaceTime                    ScreenValueRaceType = 9
	ScreenValueRaceTypePrepareToSleep                  ScreenValueRaceType = 10
	ScreenValueRaceTypeResetRaceParams                 ScreenValueRaceType = 11
	ScreenValueRaceTypeSetDefaultCommParams            ScreenValueRaceType = 12
	ScreenValueRaceTypeRaceIdle                        ScreenValueRaceType = 13
	ScreenValueRaceTypeErgAddressStatus                ScreenValueRaceType = 14
	ScreenValueRaceTypeRaceIdleRow                     ScreenValueRaceType = 15
	ScreenValueRaceTypeDisplayRaceBitmap               ScreenValueRaceType = 16
	ScreenValueRaceTypeDisplayRaceTextString           ScreenValueRaceType = 17
	ScreenValueRaceTypeSetLogicalAddr                  ScreenValueRaceType = 18
	ScreenValueRaceTypeConfirmLogicalAddr              ScreenValueRaceType = 19
	ScreenValueRaceTypeErgSlaveDiscovery               ScreenValueRaceType = 20
	ScreenValueRaceTypeGotoMainScreen                  ScreenValueRaceType = 21
	ScreenValueRaceTypeResetErg                        ScreenValueRaceType = 22
	ScreenValueRaceTypeSetUnitsTypeDefault             ScreenValueRaceType = 23
	ScreenValueRaceTypeTachSimDisable                  ScreenValueRaceType = 39
	ScreenValueRaceTypeTachSimEnableRate1              ScreenValueRaceType = 40
	ScreenValueRaceTypeTachSimEnableRate2              ScreenValueRaceType = 41
	ScreenValueRaceTypeTachSimEnableRate3              ScreenValueRaceType = 42
	ScreenValueRaceTypeTachSimEnableRate4              ScreenValueRaceType = 43
	ScreenValueRaceTypeTachSimEnableRate5              ScreenValueRaceType = 44
	ScreenValueRaceTypeTachCableTestEnable             ScreenValueRaceType = 45
	ScreenValueRaceTypeErgathlonModeDisable            ScreenValueRaceType = 46
	ScreenValueRaceTypeRs485FirmwareUpdateProgress     ScreenValueRaceType = 47
	ScreenValueRaceTypeTerminateRaceAndPreserveResults ScreenValueRaceType = 48
	ScreenValueRaceTypeTachSimEnableRateRandom         ScreenValueRaceType = 49
	ScreenValueRaceTypeScreenRedraw                    ScreenValueRaceType = 255
)

type ScreenValueCSAFE uint8

const (
	ScreenValueCSAFENone                ScreenValueCSAFE = 0
	ScreenValueCSAFEUserID              ScreenValueCSAFE = 1
	ScreenValueCSAFEPrepareToRowWorkout ScreenValueCSAFE = 2
	ScreenValueCSAFEGotoMainScreen      ScreenValueCSAFE = 3
	ScreenValueCSAFECustom              ScreenValueCSAFE = 4
	ScreenValueCSAFERaceChanOpen        ScreenValueCSAFE = 250
	ScreenValueCSAFERaceChanClose       ScreenValueCSAFE = 251
	ScreenValueCSAFEScreenRedraw        ScreenValueCSAFE = 255
)

type ScreenStatus uint8

const (
	ScreenStatusInactive   ScreenStatus = 0
	ScreenStatusPending    ScreenStatus = 1
	ScreenStatusInProgress ScreenStatus = 2
)

type StatusType uint8

const (
	StatusTypeNone                            StatusType = 0
	StatusTypeBatteryLevel1Warning            StatusType = 1
	StatusTypeBatteryLevel2Warning            StatusType = 2
	StatusTypeLogDeviceState                  StatusType = 3
	StatusTypePowerSourceState                StatusType = 4
	StatusTypeLogCardWorkoutLoggedStatus      StatusType = 5
	StatusTypeFlywheelState                   StatusType = 6
	StatusTypeBadUtilityState                 StatusType = 7
	StatusTypeFWUpdateStatus                  StatusType = 8
	StatusTypeUnsupportedUSBHostDevice        StatusType = 9
	StatusTypeUSBDriveState                   StatusType = 10
	StatusTypeLoadControlStatus               StatusType = 11
	StatusTypeUSBLogbookStatus                StatusType = 12
	StatusTypeLogStorageCapacityWarningStatus StatusType = 13
	StatusTypeFactoryCalibrationWarning       StatusType = 14
	StatusTypeVerifyCalibrationWarning        StatusType = 15
	StatusTypeServiceCalibrationWarning       StatusType = 16
)

type DisplayUpdateRate uint8

const (
	DisplayUpdateRate5Hz DisplayUpdateRate = 0
	DisplayUpdateRate4Hz DisplayUpdateRate = 1
	DisplayUpdateRate2Hz DisplayUpdateRate = 2
)

// SampleRate selects the General Status notification interval.
type SampleRate uint8

const (
	SampleRateSlow    SampleRate = 0
	SampleRateDefault SampleRate = 1
	SampleRateFast    SampleRate = 2
	SampleRateFastest SampleRate = 3
)

var (
	operationalStates = enum.Must("operational_state", []enum.Member[OperationalState]{
		{Value: OperationalStateReset, Name: "reset"},
		{Value: OperationalStateReady, Name: "ready"},
		{Value: OperationalStateWorkout, Name: "workout"},
		{Value: OperationalStateWarmup, Name: "warmup"},
		{Value: OperationalStateRace, Name: "race"},
		{Value: OperationalStatePowerOff, Name: "power_off"},
		{Value: OperationalStatePause, Name: "pause"},
		{Value: OperationalStateInvokeBootLoader, Name: "invoke_boot_loader"},
		{Value: OperationalStatePowerOffShip, Name: "power_off_ship"},
		{Value: OperationalStateIdleCharge, Name: "idle_charge"},
		{Value: OperationalStateIdle, Name: "idle"},
		{Value: OperationalStateMFGTest, Name: "mfg_test"},
		{Value: OperationalStateFWUpdate, Name: "fw_update"},
		{Value: OperationalStateDragFactor, Name: "drag_factor"},
		{Value: OperationalStateDragFactorCalibration, Name: "drag_factor_calibration"},
	}...)
	ergModelTypes = enum.Must("erg_model_type", []enum.Member[ErgModelType]{
		{Value: ErgModelTypeDE, Name: "d_e"},
		{Value: ErgModelTypeCB, Name: "c_b"},
		{Value: ErgModelTypeA, Name: "a"},
	}...)
	ergMachineTypes = enum.Must("erg_machine_type", []enum.Member[ErgMachineType]{
		{Value: ErgMachineTypeStaticD, Name: "static_d"},
		{Value: ErgMachineTypeStaticC, Name: "static_c"},
		{Value: ErgMachineTypeStaticA, Name: "static_a"},
		{Value: ErgMachineTypeStaticB, Name: "static_b"},
		{Value: ErgMachineTypeStaticE, Name: "static_e"},
		{Value: ErgMachineTypeStaticSimulator, Name: "static_simulator"},
		{Value: ErgMachineTypeStaticDynamic, Name: "static_dynamic"},
		{Value: ErgMachineTypeSlidesA, Name: "slides_a"},
		{Value: ErgMachineTypeSlidesB, Name: "slides_b"},
		{Value: ErgMachineTypeSlidesC, Name: "slides_c"},
		{Value: ErgMachineTypeSlidesD, Name: "slides_d"},
		{Value: ErgMachineTypeSlidesE, Name: "slides_e"},
		{Value: ErgMachineTypeLinkedDynamic, Name: "linked_dynamic"},
		{Value: ErgMachineTypeStaticDyno, Name: "static_dyno"},
		{Value: ErgMachineTypeStaticSki, Name: "static_ski"},
		{Value: ErgMachineTypeStaticSkiSimulator, Name: "static_ski_simulator"},
		{Value: ErgMachineTypeBike, Name: "bike"},
		{Value: ErgMachineTypeBikeArms, Name: "bike_arms"},
		{Value: ErgMachineTypeBikeNoArms, Name: "bike_no_arms"},
		{Value: ErgMachineTypeBikeSimulator, Name: "bike_simulator"},
		{Value: ErgMachineTypeMultiergRow, Name: "multierg_row"},
		{Value: ErgMachineTypeMultiergSki, Name: "multierg_ski"},
		{Value: ErgMachineTypeMultiergBike, Name: "multierg_bike"},
		{Value: ErgMachineTypeNum, Name: "num"},
	}...)
	workoutTypes = enum.Must("workout_type", []enum.Member[WorkoutType]{
		{Value: WorkoutTypeJustRowNoSplits, Name: "just_row_no_splits"},
		{Value: WorkoutTypeJustRowSplits, Name: "just_row_splits"},
		{Value: WorkoutTypeFixedDistNoSplits, Name: "fixed_dist_no_splits"},
		{Value: WorkoutTypeFixedDistSplits, Name: "fixed_dist_splits"},
		{Value: WorkoutTypeFixedTimeNoSplits, Name: "fixed_time_no_splits"},
		{Value: WorkoutTypeFixedTimeSplits, Name: "fixed_time_splits"},
		{Value: WorkoutTypeFixedTimeInterval, Name: "fixed_time_interval"},
		{Value: WorkoutTypeFixedDistInterval, Name: "fixed_dist_interval"},
		{Value: WorkoutTypeVariableInterval, Name: "variable_interval"},
		{Value: WorkoutTypeVariableUndefinedRestInterval, Name: "variable_undefined_rest_interval"},
		{Value: WorkoutTypeFixedCalorieSplits, Name: "fixed_calorie_splits"},
		{Value: WorkoutTypeFixedWattMinuteSplits, Name: "fixed_watt_minute_splits"},
		{Value: WorkoutTypeFixedCalsInterval, Name: "fixed_cals_interval"},
		{Value: WorkoutTypeNum, Name: "num"},
	}...)
	intervalTypes = enum.Must("interval_type", []enum.Member[IntervalType]{
		{Value: IntervalTypeTime, Name: "time"},
		{Value: IntervalTypeDist, Name: "dist"},
		{Value: IntervalTypeRest, Name: "rest"},
		{Value: IntervalTypeTimeRestUndefined, Name: "time_rest_undefined"},
		{Value: IntervalTypeDistanceRestUndefined, Name: "distance_rest_undefined"},
		{Value: IntervalTypeRestUndefined, Name: "rest_undefined"},
		{Value: IntervalTypeCalorie, Name: "calorie"},
		{Value: IntervalTypeCalorieRestUndefined, Name: "calorie_rest_undefined"},
		{Value: IntervalTypeWattMinute, Name: "watt_minute"},
		{Value: IntervalTypeWattMinuteRestUndefined, Name: "watt_minute_rest_undefined"},
		{Value: IntervalTypeNone, Name: "none"},
	}...)
	workoutStates = enum.Must("workout_state", []enum.Member[WorkoutState]{
		{Value: WorkoutStateWaitToBegin, Name: "wait_to_begin"},
		{Value: WorkoutStateWorkoutRow, Name: "workout_row"},
		{Value: WorkoutStateCountdownPause, Name: "countdown_pause"},
		{Value: WorkoutStateIntervalRest, Name: "interval_rest"},
		{Value: WorkoutStateIntervalWorkTime, Name: "interval_work_time"},
		{Value: WorkoutStateIntervalWorkDistance, Name: "interval_work_distance"},
		{Value: WorkoutStateIntervalRestEndToWorkTime, Name: "interval_rest_end_to_work_time"},
		{Value: WorkoutStateIntervalRestEndToWorkDistance, Name: "interval_rest_end_to_work_distance"},
		{Value: WorkoutStateIntervalWorkTimeToRest, Name: "interval_work_time_to_rest"},
		{Value: WorkoutStateIntervalWorkDistanceToRest, Name: "interval_work_distance_to_rest"},
		{Value: WorkoutStateWorkoutEnd, Name: "workout_end"},
		{Value: WorkoutStateTerminate, Name: "terminate"},
		{Value: WorkoutStateWorkoutLogged, Name: "workout_logged"},
		{Value: WorkoutStateRearm, Name: "rearm"},
	}...)
	rowingStates = enum.Must("rowing_state", []enum.Member[RowingState]{
		{Value: RowingStateInactive, Name: "inactive"},
		{Value: RowingStateActive, Name: "active"},
	}...)
	strokeStates = enum.Must("stroke_state", []enum.Member[StrokeState]{
		{Value: StrokeStateWaitingForWheelToReachMinSpeed, Name: "waiting_for_wheel_to_reach_min_speed"},
		{Value: StrokeStateWaitingForWheelToAccelerate, Name: "waiting_for_wheel_to_accelerate"},
		{Value: StrokeStateDriving, Name: "driving"},
		{Value: StrokeStateDwellingAfterDrive, Name: "dwelling_after_drive"},
		{Value: StrokeStateRecovery, Name: "recovery"},
	}...)
	workoutDurationTypes = enum.Must("workout_duration_type", []enum.Member[WorkoutDurationType]{
		{Value: WorkoutDurationTypeTime, Name: "time"},
		{Value: WorkoutDurationTypeCalories, Name: "calories"},
		{Value: WorkoutDurationTypeDistance, Name: "distance"},
		{Value: WorkoutDurationTypeWattMin, Name: "watt_min"},
	}...)
	displayUnitTypes = enum.Must("display_unit_type", []enum.Member[DisplayUnitType]{
		{Value: DisplayUnitTypeTimeMeters, Name: "time_meters"},
		{Value: DisplayUnitTypePace, Name: "pace"},
		{Value: DisplayUnitTypeWatts, Name: "watts"},
		{Value: DisplayUnitTypeCaloricBurnRate, Name: "caloric_burn_rate"},
		{Value: DisplayUnitTypeCalories, Name: "calories"},
	}...)
	displayFormatTypes = enum.Must("display_format_type", []enum.Member[DisplayFormatType]{
		{Value: DisplayFormatTypeStandard, Name: "standard"},
		{Value: DisplayFormatTypeForceVelocity, Name: "force_velocity"},
		{Value: DisplayFormatTypePaceBoat, Name: "pace_boat"},
		{Value: DisplayFormatTypePerStroke, Name: "per_stroke"},
		{Value: DisplayFormatTypeSimple, Name: "simple"},
		{Value: DisplayFormatTypeTarget, Name: "target"},
	}...)
	workoutNumbers = enum.Must("workout_number", []enum.Member[WorkoutNumber]{
		{Value: WorkoutNumberProgrammed, Name: "programmed"},
		{Value: WorkoutNumberDefault1, Name: "default_1"},
		{Value: WorkoutNumberDefault2, Name: "default_2"},
		{Value: WorkoutNumberDefault3, Name: "default_3"},
		{Value: WorkoutNumberDefault4, Name: "default_4"},
		{Value: WorkoutNumberDefault5, Name: "default_5"},
		{Value: WorkoutNumberCustom1, Name: "custom_1"},
		{Value: WorkoutNumberCustom2, Name: "custom_2"},
		{Value: WorkoutNumberCustom3, Name: "custom_3"},
		{Value: WorkoutNumberCustom4, Name: "custom_4"},
		{Value: WorkoutNumberCustom5, Name: "custom_5"},
		{Value: WorkoutNumberMSD1, Name: "msd_1"},
		{Value: WorkoutNumberMSD2, Name: "msd_2"},
		{Value: WorkoutNumberMSD3, Name: "msd_3"},
		{Value: WorkoutNumberMSD4, Name: "msd_4"},
		{Value: WorkoutNumberMSD5, Name: "msd_5"},
		{Value: WorkoutNumberNum, Name: "num"},
	}...)
	workoutProgrammingModes = enum.Must("workout_programming_mode", []enum.Member[WorkoutProgrammingMode]{
		{Value: WorkoutProgrammingModeDisable, Name: "disable"},
		{Value: WorkoutProgrammingModeEnable, Name: "enable"},
	}...)
	strokeRateStates = enum.Must("stroke_rate_state", []enum.Member[StrokeRateState]{
		{Value: StrokeRateStateIdle, Name: "idle"},
		{Value: StrokeRateStateSteady, Name: "steady"},
		{Value: StrokeRateStateIncreasing, Name: "increasing"},
		{Value: StrokeRateStateDecreasing, Name: "decreasing"},
	}...)
	startTypes = enum.Must("start_type", []enum.Member[StartType]{
		{Value: StartTypeRandom, Name: "random"},
		{Value: StartTypeCountdown, Name: "countdown"},
		{Value: StartTypeRandomModified, Name: "random_modified"},
		{Value: StartTypeImmediate, Name: "immediate"},
		{Value: StartTypeWaitForFlywheel, Name: "wait_for_flywheel"},
	}...)
	raceOperationTypes = enum.Must("race_operation_type", []enum.Member[RaceOperationType]{
		{Value: RaceOperationTypeDisable, Name: "disable"},
		{Value: RaceOperationTypeParticipationRequest, Name: "participation_request"},
		{Value: RaceOperationTypeSleep, Name: "sleep"},
		{Value: RaceOperationTypeErgInit, Name: "erg_init"},
		{Value: RaceOperationTypePhyAddrInit, Name: "phy_addr_init"},
		{Value: RaceOperationTypeRaceWarmup, Name: "race_warmup"},
		{Value: RaceOperationTypeRaceInit, Name: "race_init"},
		{Value: RaceOperationTypeTimeSync, Name: "time_sync"},
		{Value: RaceOperationTypeRaceWaitToStart, Name: "race_wait_to_start"},
		{Value: RaceOperationTypeStart, Name: "start"},
		{Value: RaceOperationTypeFalseStart, Name: "false_start"},
		{Value: RaceOperationTypeTerminate, Name: "terminate"},
		{Value: RaceOperationTypeIdle, Name: "idle"},
		{Value: RaceOperationTypeTachSimEnable, Name: "tach_sim_enable"},
		{Value: RaceOperationTypeTachSimDisable, Name: "tach_sim_disable"},
	}...)
	raceStates = enum.Must("race_state", []enum.Member[RaceState]{
		{Value: RaceStateIdle, Name: "idle"},
		{Value: RaceStateCountdown, Name: "countdown"},
		{Value: RaceStateRowing, Name: "rowing"},
		{Value: RaceStateIntervalRest, Name: "interval_rest"},
		{Value: RaceStateEndInterval, Name: "end_interval"},
		{Value: RaceStateEndWorkoutRace, Name: "end_workout_race"},
		{Value: RaceStateTerminateWorkoutRace, Name: "terminate_workout_race"},
		{Value: RaceStateFalseStart, Name: "false_start"},
		{Value: RaceStateInactive, Name: "inactive"},
	}...)
	raceTypes = enum.Must("race_type", []enum.Member[RaceType]{
		{Value: RaceTypeFixedDistSingleErg, Name: "fixed_dist_single_erg"},
		{Value: RaceTypeFixedTimeSingleErg, Name: "fixed_time_single_erg"},
		{Value: RaceTypeFixedDistTeamErg, Name: "fixed_dist_team_erg"},
		{Value: RaceTypeFixedTimeTeamErg, Name: "fixed_time_team_erg"},
		{Value: RaceTypeWorkoutRaceStart, Name: "workout_race_start"},
		{Value: RaceTypeFixedCalSingleErg, Name: "fixed_cal_single_erg"},
		{Value: RaceTypeFixedCalTeamErg, Name: "fixed_cal_team_erg"},
		{Value: RaceTypeFixedDistRelaySingleErg, Name: "fixed_dist_relay_single_erg"},
		{Value: RaceTypeFixedTimeRelaySingleErg, Name: "fixed_time_relay_single_erg"},
		{Value: RaceTypeFixedCalRelaySingleErg, Name: "fixed_cal_relay_single_erg"},
		{Value: RaceTypeFixedDistRelayTeamErg, Name: "fixed_dist_relay_team_erg"},
		{Value: RaceTypeFixedTimeRelayTeamErg, Name: "fixed_time_relay_team_erg"},
		{Value: RaceTypeFixedCalRelayTeamErg, Name: "fixed_cal_relay_team_erg"},
		{Value: RaceTypeFixedDistMultiactivitySequentialSingleErg, Name: "fixed_dist_multiactivity_sequential_single_erg"},
		{Value: RaceTypeFixedTimeMultiactivitySequentialSingleErg, Name: "fixed_time_multiactivity_sequential_single_erg"},
		{Value: RaceTypeFixedCalMultiactivitySequentialSingleErg, Name: "fixed_cal_multiactivity_sequential_single_erg"},
		{Value: RaceTypeFixedDistMultiactivitySequentialTeamErg, Name: "fixed_dist_multiactivity_sequential_team_erg"},
		{Value: RaceTypeFixedTimeMultiactivitySequentialTeamErg, Name: "fixed_time_multiactivity_sequential_team_erg"},
		{Value: RaceTypeFixedCalMultiactivitySequentialTeamErg, Name: "fixed_cal_multiactivity_sequential_team_erg"},
		{Value: RaceTypeFixedDistErgathlon, Name: "fixed_dist_ergathlon"},
		{Value: RaceTypeFixedTimeErgathlon, Name: "fixed_time_ergathlon"},
		{Value: RaceTypeFixedCalErgathlon, Name: "fixed_cal_ergathlon"},
		{Value: RaceTypeFixedDistMultiactivitySimultaneousSingleErg, Name: "fixed_dist_multiactivity_simultaneous_single_erg"},
		{Value: RaceTypeFixedTimeMultiactivitySimultaneousSingleErg, Name: "fixed_time_multiactivity_simultaneous_single_erg"},
		{Value: RaceTypeFixedCalMultiactivitySimultaneousSingleErg, Name: "fixed_cal_multiactivity_simultaneous_single_erg"},
		{Value: RaceTypeFixedDistMultiactivitySimultaneousTeamErg, Name: "fixed_dist_multiactivity_simultaneous_team_erg"},
		{Value: RaceTypeFixedTimeMultiactivitySimultaneousTeamErg, Name: "fixed_time_multiactivity_simultaneous_team_erg"},
		{Value: RaceTypeFixedCalMultiactivitySimultaneousTeamErg, Name: "fixed_cal_multiactivity_simultaneous_team_erg"},
		{Value: RaceTypeFixedDistBiathlon, Name: "fixed_dist_biathlon"},
		{Value: RaceTypeFixedCalBiathlon, Name: "fixed_cal_biathlon"},
		{Value: RaceTypeFixedDistRelayNoChangeSingleErg, Name: "fixed_dist_relay_no_change_single_erg"},
		{Value: RaceTypeFixedTimeRelayNoChangeSingleErg, Name: "fixed_time_relay_no_change_single_erg"},
		{Value: RaceTypeFixedCalRelayNoChangeSingleErg, Name: "fixed_cal_relay_no_change_single_erg"},
		{Value: RaceTypeFixedTimeCalScoreSingleErg, Name: "fixed_time_cal_score_single_erg"},
		{Value: RaceTypeFixedTimeCalScoreTeamErg, Name: "fixed_time_cal_score_team_erg"},
		{Value: RaceTypeFixedDistTimeCapSingleErg, Name: "fixed_dist_time_cap_single_erg"},
		{Value: RaceTypeFixedCalTimeCapSingleErg, Name: "fixed_cal_time_cap_single_erg"},
	}...)
	raceStartStates = enum.Must("race_start_state", []enum.Member[RaceStartState]{
		{Value: RaceStartStateInit, Name: "init"},
		{Value: RaceStartStatePrepare, Name: "prepare"},
		{Value: RaceStartStateWaitReady, Name: "wait_ready"},
		{Value: RaceStartStateWaitAttention, Name: "wait_attention"},
		{Value: RaceStartStateWaitRow, Name: "wait_row"},
		{Value: RaceStartStateCountdown, Name: "countdown"},
		{Value: RaceStartStateRow, Name: "row"},
		{Value: RaceStartStateFalseStart, Name: "false_start"},
	}...)
	screenTypes = enum.Must("screen_type", []enum.Member[ScreenType]{
		{Value: ScreenTypeNone, Name: "none"},
		{Value: ScreenTypeWorkout, Name: "workout"},
		{Value: ScreenTypeRace, Name: "race"},
		{Value: ScreenTypeCSAFE, Name: "csafe"},
		{Value: ScreenTypeDiag, Name: "diag"},
		{Value: ScreenTypeMFG, Name: "mfg"},
	}...)
	screenValueWorkoutTypes = enum.Must("screen_value_workout_type", []enum.Member[ScreenValueWorkoutType]{
		{Value: ScreenValueWorkoutTypeNone, Name: "none"},
		{Value: ScreenValueWorkoutTypePrepareToRowWorkout, Name: "prepare_to_row_workout"},
		{Value: ScreenValueWorkoutTypeTerminateWorkout, Name: "terminate_workout"},
		{Value: ScreenValueWorkoutTypeRearmWorkout, Name: "rearm_workout"},
		{Value: ScreenValueWorkoutTypeRefreshLogCard, Name: "refresh_log_card"},
		{Value: ScreenValueWorkoutTypePrepareToRaceStart, Name: "prepare_to_race_start"},
		{Value: ScreenValueWorkoutTypeGoToMainScreen, Name: "go_to_main_screen"},
		{Value: ScreenValueWorkoutTypeLogCardBusyWarning, Name: "log_card_busy_warning"},
		{Value: ScreenValueWorkoutTypeLogCardSelectUser, Name: "log_card_select_user"},
		{Value: ScreenValueWorkoutTypeResetRaceParams, Name: "reset_race_params"},
		{Value: ScreenValueWorkoutTypeCableTestSlave, Name: "cable_test_slave"},
		{Value: ScreenValueWorkoutTypeFishGame, Name: "fish_game"},
		{Value: ScreenValueWorkoutTypeDisplayParticipantInfo, Name: "display_participant_info"},
		{Value: ScreenValueWorkoutTypeDisplayParticipantInfoConfirm, Name: "display_participant_info_confirm"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypeTarget, Name: "change_display_type_target"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypeStandard, Name: "change_display_type_standard"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypeForceVelocity, Name: "change_display_type_force_velocity"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypePaceBoat, Name: "change_display_type_pace_boat"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypePerStroke, Name: "change_display_type_per_stroke"},
		{Value: ScreenValueWorkoutTypeChangeDisplayTypeSimple, Name: "change_display_type_simple"},
		{Value: ScreenValueWorkoutTypeChangeUnitsTypeTimeMeters, Name: "change_units_type_time_meters"},
		{Value: ScreenValueWorkoutTypeChangeUnitsTypePace, Name: "change_units_type_pace"},
		{Value: ScreenValueWorkoutTypeChangeUnitsTypeWatts, Name: "change_units_type_watts"},
		{Value: ScreenValueWorkoutTypeChangeUnitsTypeCaloricBurnRate, Name: "change_units_type_caloric_burn_rate"},
		{Value: ScreenValueWorkoutTypeTargetGameBasic, Name: "target_game_basic"},
		{Value: ScreenValueWorkoutTypeTargetGameAdvanced, Name: "target_game_advanced"},
		{Value: ScreenValueWorkoutTypeDartGame, Name: "dart_game"},
		{Value: ScreenValueWorkoutTypeGoToUSBWaitReady, Name: "go_to_usb_wait_ready"},
		{Value: ScreenValueWorkoutTypeTachCableTestDisable, Name: "tach_cable_test_disable"},
		{Value: ScreenValueWorkoutTypeTachSimDisable, Name: "tach_sim_disable"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRate1, Name: "tach_sim_enable_rate_1"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRate2, Name: "tach_sim_enable_rate_2"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRate3, Name: "tach_sim_enable_rate_3"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRate4, Name: "tach_sim_enable_rate_4"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRate5, Name: "tach_sim_enable_rate_5"},
		{Value: ScreenValueWorkoutTypeTachCableTestEnable, Name: "tach_cable_test_enable"},
		{Value: ScreenValueWorkoutTypeChangeUnitsTypeCalories, Name: "change_units_type_calories"},
		{Value: ScreenValueWorkoutTypeVirtualKeyA, Name: "virtual_key_a"},
		{Value: ScreenValueWorkoutTypeVirtualKeyB, Name: "virtual_key_b"},
		{Value: ScreenValueWorkoutTypeVirtualKeyC, Name: "virtual_key_c"},
		{Value: ScreenValueWorkoutTypeVirtualKeyD, Name: "virtual_key_d"},
		{Value: ScreenValueWorkoutTypeVirtualKeyE, Name: "virtual_key_e"},
		{Value: ScreenValueWorkoutTypeVirtualKeyUnits, Name: "virtual_key_units"},
		{Value: ScreenValueWorkoutTypeVirtualKeyDisplay, Name: "virtual_key_display"},
		{Value: ScreenValueWorkoutTypeVirtualKeyMenu, Name: "virtual_key_menu"},
		{Value: ScreenValueWorkoutTypeTachSimEnableRateRandom, Name: "tach_sim_enable_rate_random"},
		{Value: ScreenValueWorkoutTypeScreenRedraw, Name: "screen_redraw"},
	}...)
	screenValueRaceTypes = enum.Must("screen_value_race_type", []enum.Member[ScreenValueRaceType]{
		{Value: ScreenValueRaceTypeNone, Name: "none"},
		{Value: ScreenValueRaceTypeSetPhysicalAddr, Name: "set_physical_addr"},
		{Value: ScreenValueRaceTypeConfirmPhysicalAddr, Name: "confirm_physical_addr"},
		{Value: ScreenValueRaceTypeWarmupForRace, Name: "warmup_for_race"},
		{Value: ScreenValueRaceTypePrepareToRace, Name: "prepare_to_race"},
		{Value: ScreenValueRaceTypeFalseStartRace, Name: "false_start_race"},
		{Value: ScreenValueRaceTypeTerminateRace, Name: "terminate_race"},
		{Value: ScreenValueRaceTypeAutosetPhysAddr, Name: "autoset_phys_addr"},
		{Value: ScreenValueRaceTypeSetParticipantList, Name: "set_participant_list"},
		{Value: ScreenValueRaceTypeSyncRaceTime, Name: "sync_race_time"},
		{Value: ScreenValueRaceTypePrepareToSleep, Name: "prepare_to_sleep"},
		{Value: ScreenValueRaceTypeResetRaceParams, Name: "reset_race_params"},
		{Value: ScreenValueRaceTypeSetDefaultCommParams, Name: "set_default_comm_params"},
		{Value: ScreenValueRaceTypeRaceIdle, Name: "race_idle"},
		{Value: ScreenValueRaceTypeErgAddressStatus, Name: "erg_address_status"},
		{Value: ScreenValueRaceTypeRaceIdleRow, Name: "race_idle_row"},
		{Value: ScreenValueRaceTypeDisplayRaceBitmap, Name: "display_race_bitmap"},
		{Value: ScreenValueRaceTypeDisplayRaceTextString, Name: "display_race_text_string"},
		{Value: ScreenValueRaceTypeSetLogicalAddr, Name: "set_logical_addr"},
		{Value: ScreenValueRaceTypeConfirmLogicalAddr, Name: "confirm_logical_addr"},
		{Value: ScreenValueRaceTypeErgSlaveDiscovery, Name: "erg_slave_discovery"},
		{Value: ScreenValueRaceTypeGotoMainScreen, Name: "goto_main_screen"},
		{Value: ScreenValueRaceTypeResetErg, Name: "reset_erg"},
		{Value: ScreenValueRaceTypeSetUnitsTypeDefault, Name: "set_units_type_default"},
		{Value: ScreenValueRaceTypeTachSimDisable, Name: "tach_sim_disable"},
		{Value: ScreenValueRaceTypeTachSimEnableRate1, Name: "tach_sim_enable_rate_1"},
		{Value: ScreenValueRaceTypeTachSimEnableRate2, Name: "tach_sim_enable_rate_2"},
		{Value: ScreenValueRaceTypeTachSimEnableRate3, Name: "tach_sim_enable_rate_3"},
		{Value: ScreenValueRaceTypeTachSimEnableRate4, Name: "tach_sim_enable_rate_4"},
		{Value: ScreenValueRaceTypeTachSimEnableRate5, Name: "tach_sim_enable_rate_5"},
		{Value: ScreenValueRaceTypeTachCableTestEnable, Name: "tach_cable_test_enable"},
		{Value: ScreenValueRaceTypeErgathlonModeDisable, Name: "ergathlon_mode_disable"},
		{Value: ScreenValueRaceTypeRs485FirmwareUpdateProgress, Name: "rs485_firmware_update_progress"},
		{Value: ScreenValueRaceTypeTerminateRaceAndPreserveResults, Name: "terminate_race_and_preserve_results"},
		{Value: ScreenValueRaceTypeTachSimEnableRateRandom, Name: "tach_sim_enable_rate_random"},
		{Value: ScreenValueRaceTypeScreenRedraw, Name: "screen_redraw"},
	}...)
	screenValueCSAFEs = enum.Must("screen_value_csafe", []enum.Member[ScreenValueCSAFE]{
		{Value: ScreenValueCSAFENone, Name: "none"},
		{Value: ScreenValueCSAFEUserID, Name: "user_id"},
		{Value: ScreenValueCSAFEPrepareToRowWorkout, Name: "prepare_to_row_workout"},
		{Value: ScreenValueCSAFEGotoMainScreen, Name: "goto_main_screen"},
		{Value: ScreenValueCSAFECustom, Name: "custom"},
		{Value: ScreenValueCSAFERaceChanOpen, Name: "race_chan_open"},
		{Value: ScreenValueCSAFERaceChanClose, Name: "race_chan_close"},
		{Value: ScreenValueCSAFEScreenRedraw, Name: "screen_redraw"},
	}...)
	screenStatuss = enum.Must("screen_status", []enum.Member[ScreenStatus]{
		{Value: ScreenStatusInactive, Name: "inactive"},
		{Value: ScreenStatusPending, Name: "pending"},
		{Value: ScreenStatusInProgress, Name: "in_progress"},
	}...)
	statusTypes = enum.Must("status_type", []enum.Member[StatusType]{
		{Value: StatusTypeNone, Name: "none"},
		{Value: StatusTypeBatteryLevel1Warning, Name: "battery_level_1_warning"},
		{Value: StatusTypeBatteryLevel2Warning, Name: "battery_level_2_warning"},
		{Value: StatusTypeLogDeviceState, Name: "log_device_state"},
		{Value: StatusTypePowerSourceState, Name: "power_source_state"},
		{Value: StatusTypeLogCardWorkoutLoggedStatus, Name: "log_card_workout_logged_status"},
		{Value: StatusTypeFlywheelState, Name: "flywheel_state"},
		{Value: StatusTypeBadUtilityState, Name: "bad_utility_state"},
		{Value: StatusTypeFWUpdateStatus, Name: "fw_update_status"},
		{Value: StatusTypeUnsupportedUSBHostDevice, Name: "unsupported_usb_host_device"},
		{Value: StatusTypeUSBDriveState, Name: "usb_drive_state"},
		{Value: StatusTypeLoadControlStatus, Name: "load_control_status"},
		{Value: StatusTypeUSBLogbookStatus, Name: "usb_logbook_status"},
		{Value: StatusTypeLogStorageCapacityWarningStatus, Name: "log_storage_capacity_warning_status"},
		{Value: StatusTypeFactoryCalibrationWarning, Name: "factory_calibration_warning"},
		{Value: StatusTypeVerifyCalibrationWarning, Name: "verify_calibration_warning"},
		{Value: StatusTypeServiceCalibrationWarning, Name: "service_calibration_warning"},
	}...)
	displayUpdateRates = enum.Must("display_update_rate", []enum.Member[DisplayUpdateRate]{
		{Value: DisplayUpdateRate5Hz, Name: "5hz"},
		{Value: DisplayUpdateRate4Hz, Name: "4hz"},
		{Value: DisplayUpdateRate2Hz, Name: "2hz"},
	}...)
	sampleRates = enum.Must("sample_rate", []enum.Member[SampleRate]{
		{Value: SampleRateSlow, Name: "slow"},
		{Value: SampleRateDefault, Name: "default"},
		{Value: SampleRateFast, Name: "fast"},
		{Value: SampleRateFastest, Name: "fastest"},
	}...)
)

func (v OperationalState) String() string { return operationalStates.String(v) }
func (v OperationalState) IsValid() bool { return operationalStates.Valid(v) }
func (v OperationalState) MarshalText() ([]byte, error) { return operationalStates.MarshalText(v) }
func (v *OperationalState) UnmarshalText(b []byte) error { return unmarshalText(operationalStates, v, b) }

func (v ErgModelType) String() string { return ergModelTypes.String(v) }
func (v ErgModelType) IsValid() bool { return ergModelTypes.Valid(v) }
func (v ErgModelType) MarshalText() ([]byte, error) { return ergModelTypes.MarshalText(v) }
func (v *ErgModelType) UnmarshalText(b []byte) error { return unmarshalText(ergModelTypes, v, b) }

func (v ErgMachineType) String() string { return ergMachineTypes.String(v) }
func (v ErgMachineType) IsValid() bool { return ergMachineTypes.Valid(v) }
func (v ErgMachineType) MarshalText() ([]byte, error) { return ergMachineTypes.MarshalText(v) }
func (v *ErgMachineType) UnmarshalText(b []byte) error { return unmarshalText(ergMachineTypes, v, b) }

func (v WorkoutType) String() string { return workoutTypes.String(v) }
func (v WorkoutType) IsValid() bool { return workoutTypes.Valid(v) }
func (v WorkoutType) MarshalText() ([]byte, error) { return workoutTypes.MarshalText(v) }
func (v *WorkoutType) UnmarshalText(b []byte) error { return unmarshalText(workoutTypes, v, b) }

func (v IntervalType) String() string { return intervalTypes.String(v) }
func (v IntervalType) IsValid() bool { return intervalTypes.Valid(v) }
func (v IntervalType) MarshalText() ([]byte, error) { return intervalTypes.MarshalText(v) }
func (v *IntervalType) UnmarshalText(b []byte) error { return unmarshalText(intervalTypes, v, b) }

func (v WorkoutState) String() string { return workoutStates.String(v) }
func (v WorkoutState) IsValid() bool { return workoutStates.Valid(v) }
func (v WorkoutState) MarshalText() ([]byte, error) { return workoutStates.MarshalText(v) }
func (v *WorkoutState) UnmarshalText(b []byte) error { return unmarshalText(workoutStates, v, b) }

func (v RowingState) String() string { return rowingStates.String(v) }
func (v RowingState) IsValid() bool { return rowingStates.Valid(v) }
func (v RowingState) MarshalText() ([]byte, error) { return rowingStates.MarshalText(v) }
func (v *RowingState) UnmarshalText(b []byte) error { return unmarshalText(rowingStates, v, b) }

func (v StrokeState) String() string { return strokeStates.String(v) }
func (v StrokeState) IsValid() bool { return strokeStates.Valid(v) }
func (v StrokeState) MarshalText() ([]byte, error) { return strokeStates.MarshalText(v) }
func (v *StrokeState) UnmarshalText(b []byte) error { return unmarshalText(strokeStates, v, b) }

func (v WorkoutDurationType) String() string { return workoutDurationTypes.String(v) }
func (v WorkoutDurationType) IsValid() bool { return workoutDurationTypes.Valid(v) }
func (v WorkoutDurationType) MarshalText() ([]byte, error) { return workoutDurationTypes.MarshalText(v) }
func (v *WorkoutDurationType) UnmarshalText(b []byte) error { return unmarshalText(workoutDurationTypes, v, b) }

func (v DisplayUnitType) String() string { return displayUnitTypes.String(v) }
func (v DisplayUnitType) IsValid() bool { return displayUnitTypes.Valid(v) }
func (v DisplayUnitType) MarshalText() ([]byte, error) { return displayUnitTypes.MarshalText(v) }
func (v *DisplayUnitType) UnmarshalText(b []byte) error { return unmarshalText(displayUnitTypes, v, b) }

func (v DisplayFormatType) String() string { return displayFormatTypes.String(v) }
func (v DisplayFormatType) IsValid() bool { return displayFormatTypes.Valid(v) }
func (v DisplayFormatType) MarshalText() ([]byte, error) { return displayFormatTypes.MarshalText(v) }
func (v *DisplayFormatType) UnmarshalText(b []byte) error { return unmarshalText(displayFormatTypes, v, b) }

func (v WorkoutNumber) String() string { return workoutNumbers.String(v) }
func (v WorkoutNumber) IsValid() bool { return workoutNumbers.Valid(v) }
func (v WorkoutNumber) MarshalText() ([]byte, error) { return workoutNumbers.MarshalText(v) }
func (v *WorkoutNumber) UnmarshalText(b []byte) error { return unmarshalText(workoutNumbers, v, b) }

func (v WorkoutProgrammingMode) String() string { return workoutProgrammingModes.String(v) }
func (v WorkoutProgrammingMode) IsValid() bool { return workoutProgrammingModes.Valid(v) }
func (v WorkoutProgrammingMode) MarshalText() ([]byte, error) { return workoutProgrammingModes.MarshalText(v) }
func (v *WorkoutProgrammingMode) UnmarshalText(b []byte) error { return unmarshalText(workoutProgrammingModes, v, b) }

func (v StrokeRateState) String() string { return strokeRateStates.String(v) }
func (v StrokeRateState) IsValid() bool { return strokeRateStates.Valid(v) }
func (v StrokeRateState) MarshalText() ([]byte, error) { return strokeRateStates.MarshalText(v) }
func (v *StrokeRateState) UnmarshalText(b []byte) error { return unmarshalText(strokeRateStates, v, b) }

func (v StartType) String() string { return startTypes.String(v) }
func (v StartType) IsValid() bool { return startTypes.Valid(v) }
func (v StartType) MarshalText() ([]byte, error) { return startTypes.MarshalText(v) }
func (v *StartType) UnmarshalText(b []byte) error { return unmarshalText(startTypes, v, b) }

func (v RaceOperationType) String() string { return raceOperationTypes.String(v) }
func (v RaceOperationType) IsValid() bool { return raceOperationTypes.Valid(v) }
func (v RaceOperationType) MarshalText() ([]byte, error) { return raceOperationTypes.MarshalText(v) }
func (v *RaceOperationType) UnmarshalText(b []byte) error { return unmarshalText(raceOperationTypes, v, b) }

func (v RaceState) String() string { return raceStates.String(v) }
func (v RaceState) IsValid() bool { return raceStates.Valid(v) }
func (v RaceState) MarshalText() ([]byte, error) { return raceStates.MarshalText(v) }
func (v *RaceState) UnmarshalText(b []byte) error { return unmarshalText(raceStates, v, b) }

func (v RaceType) String() string { return raceTypes.String(v) }
func (v RaceType) IsValid() bool { return raceTypes.Valid(v) }
func (v RaceType) MarshalText() ([]byte, error) { return raceTypes.MarshalText(v) }
func (v *RaceType) UnmarshalText(b []byte) error { return unmarshalText(raceTypes, v, b) }

func (v RaceStartState) String() string { return raceStartStates.String(v) }
func (v RaceStartState) IsValid() bool { return raceStartStates.Valid(v) }
func (v RaceStartState) MarshalText() ([]byte, error) { return raceStartStates.MarshalText(v) }
func (v *RaceStartState) UnmarshalText(b []byte) error { return unmarshalText(raceStartStates, v, b) }

func (v ScreenType) String() string { return screenTypes.String(v) }
func (v ScreenType) IsValid() bool { return screenTypes.Valid(v) }
func (v ScreenType) MarshalText() ([]byte, error) { return screenTypes.MarshalText(v) }
func (v *ScreenType) UnmarshalText(b []byte) error { return unmarshalText(screenTypes, v, b) }

func (v ScreenValueWorkoutType) String() string { return screenValueWorkoutTypes.String(v) }
func (v ScreenValueWorkoutType) IsValid() bool { return screenValueWorkoutTypes.Valid(v) }
func (v ScreenValueWorkoutType) MarshalText() ([]byte, error) { return screenValueWorkoutTypes.MarshalText(v) }
func (v *ScreenValueWorkoutType) UnmarshalText(b []byte) error { return unmarshalText(screenValueWorkoutTypes, v, b) }

func (v ScreenValueRaceType) String() string { return screenValueRaceTypes.String(v) }
func (v ScreenValueRaceType) IsValid() bool { return screenValueRaceTypes.Valid(v) }
func (v ScreenValueRaceType) MarshalText() ([]byte, error) { return screenValueRaceTypes.MarshalText(v) }
func (v *ScreenValueRaceType) UnmarshalText(b []byte) error { return unmarshalText(screenValueRaceTypes, v, b) }

func (v ScreenValueCSAFE) String() string { return screenValueCSAFEs.String(v) }
func (v ScreenValueCSAFE) IsValid() bool { return screenValueCSAFEs.Valid(v) }
func (v ScreenValueCSAFE) MarshalText() ([]byte, error) { return screenValueCSAFEs.MarshalText(v) }
func (v *ScreenValueCSAFE) UnmarshalText(b []byte) error { return unmarshalText(screenValueCSAFEs, v, b) }

func (v ScreenStatus) String() string { return screenStatuss.String(v) }
func (v ScreenStatus) IsValid() bool { return screenStatuss.Valid(v) }
func (v ScreenStatus) MarshalText() ([]byte, error) { return screenStatuss.MarshalText(v) }
func (v *ScreenStatus) UnmarshalText(b []byte) error { return unmarshalText(screenStatuss, v, b) }

func (v StatusType) String() string { return statusTypes.String(v) }
func (v StatusType) IsValid() bool { return statusTypes.Valid(v) }
func (v StatusType) MarshalText() ([]byte, error) { return statusTypes.MarshalText(v) }
func (v *StatusType) UnmarshalText(b []byte) error { return unmarshalText(statusTypes, v, b) }

func (v DisplayUpdateRate) String() string { return displayUpdateRates.String(v) }
func (v DisplayUpdateRate) IsValid() bool { return displayUpdateRates.Valid(v) }
func (v DisplayUpdateRate) MarshalText() ([]byte, error) { return displayUpdateRates.MarshalText(v) }
func (v *DisplayUpdateRate) UnmarshalText(b []byte) error { return unmarshalText(displayUpdateRates, v, b) }

func (v SampleRate) String() string { return sampleRates.String(v) }
func (v SampleRate) IsValid() bool { return sampleRates.Valid(v) }
func (v SampleRate) MarshalText() ([]byte, error) { return sampleRates.MarshalText(v) }
func (v *SampleRate) UnmarshalText(b []byte) error { return unmarshalText(sampleRates, v, b) }
