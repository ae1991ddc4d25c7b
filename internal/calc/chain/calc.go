package chain

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinDrivingTeeth      = 9
	AllowablePressureMPa = 20.0 // first approximation
	Standard             = "GOST 13568-97"

	// tooth and link counts above this are not a chain drive
	MaxCount = math.MaxInt32
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSuitablePitch    = errors.New("no suitable chain pitch")
	ErrGeometryInfeasible = errors.New("chain geometry infeasible")
)

type Input struct {
	TorqueNM            float64 `json:"torque_nm"`
	SpeedRPM            float64 `json:"speed_rpm"`
	GearRatio           float64 `json:"gear_ratio"`
	ServiceFactor       float64 `json:"service_factor"`
	MinCenterDistanceMM float64 `json:"min_center_distance_mm"`
}

type Result struct {
	DrivingTeeth     int     `json:"driving_teeth"`
	DrivenTeeth      int     `json:"driven_teeth"`
	PitchMM          float64 `json:"pitch_mm"`
	ChainLengthLinks int     `json:"chain_length_links"`
	CenterDistanceMM float64 `json:"center_distance_mm"`
	ChainVelocityMS  float64 `json:"chain_velocity_m_s"`
	BreakingLoadN    float64 `json:"breaking_load_n"`
	MassKgM          float64 `json:"mass_kg_m"`
	Notes            string  `json:"notes"`
}

func (in Input) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"torque_nm", in.TorqueNM},
		{"speed_rpm", in.SpeedRPM},
		{"gear_ratio", in.GearRatio},
		{"service_factor", in.ServiceFactor},
		{"min_center_distance_mm", in.MinCenterDistanceMM},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidInput, f.name, f.v)
		}
	}
	return nil
}

// MinTeeth picks the driving sprocket tooth count, never below 9.
func MinTeeth(gearRatio float64) int {
	z1 := math.Ceil(19 - 2*gearRatio)
	if !(z1 >= MinDrivingTeeth) {
		return MinDrivingTeeth
	}
	return int(z1)
}

// DrivenTeeth rounds half away from zero. The driven sprocket obeys the
// same minimum tooth count as the driving one.
func DrivenTeeth(z1 int, gearRatio float64) (int, error) {
	z2 := math.Round(float64(z1) * gearRatio)
	if math.IsNaN(z2) || z2 > MaxCount {
		return 0, fmt.Errorf("%w: gear ratio %v gives an unrealizable driven sprocket", ErrGeometryInfeasible, gearRatio)
	}
	if z2 < MinDrivingTeeth {
		return 0, fmt.Errorf("%w: gear ratio %v gives %v driven teeth, minimum is %d", ErrGeometryInfeasible, gearRatio, z2, MinDrivingTeeth)
	}
	return int(z2), nil
}

func CandidatePitch(torque float64, z1 int, serviceFactor float64) float64 {
	return math.Cbrt((2.18 * torque * serviceFactor) / (float64(z1) * AllowablePressureMPa))
}

// SelectPitch returns the smallest standard pitch not below the candidate pitch.
func SelectPitch(torque float64, z1 int, serviceFactor float64) (float64, error) {
	p := CandidatePitch(torque, z1, serviceFactor)
	for _, c := range standardChains {
		if c.PitchMM >= p {
			return c.PitchMM, nil
		}
	}
	return 0, fmt.Errorf("%w: required pitch %.3f mm exceeds %.3f mm", ErrNoSuitablePitch, p, standardChains[len(standardChains)-1].PitchMM)
}

// SolveLength returns the chain length in whole links and the center distance
// recomputed for that length.
func SolveLength(z1, z2 int, minCenterDistance, pitch float64) (int, float64, error) {
	if minCenterDistance <= 0 || pitch <= 0 {
		return 0, 0, fmt.Errorf("%w: center distance and pitch must be positive", ErrInvalidInput)
	}
	if z1 < MinDrivingTeeth || z2 < MinDrivingTeeth {
		return 0, 0, fmt.Errorf("%w: sprockets need at least %d teeth, got %d and %d", ErrInvalidInput, MinDrivingTeeth, z1, z2)
	}
	a := minCenterDistance
	p := pitch
	dz := float64(z2 - z1)
	l := 2*a/p + float64(z1+z2)/2 + p*dz*dz/(4*math.Pi*math.Pi*a)
	if math.IsNaN(l) || math.Ceil(l) > MaxCount {
		return 0, 0, fmt.Errorf("%w: center distance %v mm needs more than %d links", ErrGeometryInfeasible, a, MaxCount)
	}
	links := int(math.Ceil(l))

	actual, err := centerDistance(links, z1, z2, p)
	if err != nil {
		return 0, 0, err
	}
	// ceil(L) can only move the larger root outwards; allow float noise
	if actual < a*(1-1e-9) {
		return 0, 0, fmt.Errorf("%w: corrected center distance %.3f mm is below the minimum %.3f mm", ErrGeometryInfeasible, actual, a)
	}
	return links, actual, nil
}

func centerDistance(links, z1, z2 int, pitch float64) (float64, error) {
	s := float64(links) - float64(z1+z2)/2
	d := float64(z2-z1) / (2 * math.Pi)
	disc := s*s - 8*d*d
	if disc < 0 {
		return 0, fmt.Errorf("%w: %d links cannot wrap sprockets with %d and %d teeth", ErrGeometryInfeasible, links, z1, z2)
	}
	a := pitch / 4 * (s + math.Sqrt(disc))
	if a <= 0 {
		return 0, fmt.Errorf("%w: %d links give no positive center distance", ErrGeometryInfeasible, links)
	}
	return a, nil
}

// Velocity returns the chain speed in m/s.
func Velocity(z1 int, pitch, rpm float64) float64 {
	return float64(z1) * pitch * rpm / (60 * 1000)
}

func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	z1 := MinTeeth(in.GearRatio)
	z2, err := DrivenTeeth(z1, in.GearRatio)
	if err != nil {
		return Result{}, err
	}
	pitch, err := SelectPitch(in.TorqueNM, z1, in.ServiceFactor)
	if err != nil {
		return Result{}, err
	}
	links, a, err := SolveLength(z1, z2, in.MinCenterDistanceMM, pitch)
	if err != nil {
		return Result{}, err
	}
	v := round(Velocity(z1, pitch, in.SpeedRPM), 2)
	if !finite(v) {
		return Result{}, fmt.Errorf("%w: speed %v rpm gives no finite chain velocity", ErrInvalidInput, in.SpeedRPM)
	}
	a = round(a, 1)
	if !finite(a) {
		return Result{}, fmt.Errorf("%w: center distance is not finite", ErrInvalidInput)
	}

	c, _ := lookup(pitch)
	return Result{
		DrivingTeeth:     z1,
		DrivenTeeth:      z2,
		PitchMM:          pitch,
		ChainLengthLinks: links,
		CenterDistanceMM: a,
		ChainVelocityMS:  v,
		BreakingLoadN:    c.BreakingLoadN,
		MassKgM:          c.MassKgM,
		Notes:            "Single-strand roller chain per " + Standard + ".",
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func round(x float64, digits int) float64 {
	k := math.Pow(10, float64(digits))
	return math.Round(x*k) / k
}
