package recommend

import (
	"fmt"
	"math"

	chain "ChainDrive/internal/calc/chain"
)

// Operating conditions of a chain drive. Empty fields take the default
// (calm load, normal center distance, horizontal, adjustable, drip oil, one shift).
type Conditions struct {
	Load           string  `json:"load"`            // calm, moderate, heavy
	CenterDistance string  `json:"center_distance"` // short (<25p), normal, long (>60p)
	InclinationDeg float64 `json:"inclination_deg"`
	Tensioning     string  `json:"tensioning"`  // adjustable, idler, fixed
	Lubrication    string  `json:"lubrication"` // bath, drip, periodic
	Shifts         int     `json:"shifts"`
}

type ServiceFactorResult struct {
	ServiceFactor float64 `json:"service_factor"`
	KDynamic      float64 `json:"k_dynamic"`
	KDistance     float64 `json:"k_distance"`
	KInclination  float64 `json:"k_inclination"`
	KTensioning   float64 `json:"k_tensioning"`
	KLubrication  float64 `json:"k_lubrication"`
	KShifts       float64 `json:"k_shifts"`
	Notes         string  `json:"notes"`
}

var (
	loadFactors        = map[string]float64{"calm": 1.0, "moderate": 1.2, "heavy": 1.5}
	distanceFactors    = map[string]float64{"short": 1.25, "normal": 1.0, "long": 0.8}
	tensioningFactors  = map[string]float64{"adjustable": 1.0, "idler": 1.1, "fixed": 1.25}
	lubricationFactors = map[string]float64{"bath": 0.8, "drip": 1.0, "periodic": 1.5}
	shiftFactors       = map[int]float64{1: 1.0, 2: 1.25, 3: 1.45}
)

func pick(table map[string]float64, name, value, def string) (float64, error) {
	if value == "" {
		value = def
	}
	k, ok := table[value]
	if !ok {
		return 0, fmt.Errorf("%w: unknown %s %q", chain.ErrInvalidInput, name, value)
	}
	return k, nil
}

// ServiceFactor is the product of the six operating coefficients.
func ServiceFactor(in Conditions) (ServiceFactorResult, error) {
	if math.IsNaN(in.InclinationDeg) || in.InclinationDeg < 0 || in.InclinationDeg > 90 {
		return ServiceFactorResult{}, fmt.Errorf("%w: inclination must be within 0..90 degrees", chain.ErrInvalidInput)
	}
	if in.Shifts == 0 {
		in.Shifts = 1
	}

	kd, err := pick(loadFactors, "load", in.Load, "calm")
	if err != nil {
		return ServiceFactorResult{}, err
	}
	ka, err := pick(distanceFactors, "center distance", in.CenterDistance, "normal")
	if err != nil {
		return ServiceFactorResult{}, err
	}
	kreg, err := pick(tensioningFactors, "tensioning", in.Tensioning, "adjustable")
	if err != nil {
		return ServiceFactorResult{}, err
	}
	ksm, err := pick(lubricationFactors, "lubrication", in.Lubrication, "drip")
	if err != nil {
		return ServiceFactorResult{}, err
	}
	kmode, ok := shiftFactors[in.Shifts]
	if !ok {
		return ServiceFactorResult{}, fmt.Errorf("%w: shifts must be 1, 2 or 3", chain.ErrInvalidInput)
	}
	kn := 1.0
	if in.InclinationDeg > 60 {
		kn = 1.25
	}

	return ServiceFactorResult{
		ServiceFactor: kd * ka * kn * kreg * ksm * kmode,
		KDynamic:      kd,
		KDistance:     ka,
		KInclination:  kn,
		KTensioning:   kreg,
		KLubrication:  ksm,
		KShifts:       kmode,
		Notes:         "Service factor Ke = Kd*Ka*Kn*Kreg*Ksm*Kmode.",
	}, nil
}
