package autodesign

import (
	chain "ChainDrive/internal/calc/chain"
	recommend "ChainDrive/internal/calc/premium/recommend"
)

type ChainAutoInput struct {
	TorqueNM            float64              `json:"torque_nm"`
	SpeedRPM            float64              `json:"speed_rpm"`
	GearRatio           float64              `json:"gear_ratio"`
	MinCenterDistanceMM float64              `json:"min_center_distance_mm"`
	Conditions          recommend.Conditions `json:"conditions"`
}

type ChainAutoResult struct {
	chain.Result
	ServiceFactor recommend.ServiceFactorResult `json:"service_factor"`
}

func Chain(in ChainAutoInput) (ChainAutoResult, error) {
	sf, err := recommend.ServiceFactor(in.Conditions)
	if err != nil {
		return ChainAutoResult{}, err
	}
	res, err := chain.Calculate(chain.Input{
		TorqueNM:            in.TorqueNM,
		SpeedRPM:            in.SpeedRPM,
		GearRatio:           in.GearRatio,
		ServiceFactor:       sf.ServiceFactor,
		MinCenterDistanceMM: in.MinCenterDistanceMM,
	})
	if err != nil {
		return ChainAutoResult{}, err
	}
	res.Notes = "Chain selected with service factor from operating conditions."
	return ChainAutoResult{Result: res, ServiceFactor: sf}, nil
}
