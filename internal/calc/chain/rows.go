package chain

import "strconv"

type Row struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

var labels = map[string]map[string]string{
	"ru": {
		"driving_teeth":          "Малая звездочка, зубья",
		"driven_teeth":           "Большая звездочка, зубья",
		"pitch_mm":               "Шаг цепи, мм",
		"chain_length_links":     "Длина цепи, звеньев",
		"center_distance_mm":     "Межосевое расстояние, мм",
		"chain_velocity_m_s":     "Скорость цепи, м/с",
		"breaking_load_n":        "Разрушающая нагрузка, Н",
		"mass_kg_m":              "Масса 1 м цепи, кг",
		"torque_nm":              "Вращающий момент, Н·м",
		"speed_rpm":              "Частота вращения, об/мин",
		"gear_ratio":             "Передаточное число",
		"service_factor":         "Коэффициент эксплуатации",
		"min_center_distance_mm": "Минимальное межосевое расстояние, мм",
	},
	"en": {
		"driving_teeth":          "Driving sprocket teeth",
		"driven_teeth":           "Driven sprocket teeth",
		"pitch_mm":               "Chain pitch, mm",
		"chain_length_links":     "Chain length, links",
		"center_distance_mm":     "Center distance, mm",
		"chain_velocity_m_s":     "Chain velocity, m/s",
		"breaking_load_n":        "Breaking load, N",
		"mass_kg_m":              "Chain mass, kg/m",
		"torque_nm":              "Torque, N·m",
		"speed_rpm":              "Rotational speed, rpm",
		"gear_ratio":             "Gear ratio",
		"service_factor":         "Service factor",
		"min_center_distance_mm": "Minimum center distance, mm",
	},
}

// Label falls back to English for unknown languages.
func Label(lang, key string) string {
	l, ok := labels[lang]
	if !ok {
		l = labels["en"]
	}
	if s, ok := l[key]; ok {
		return s
	}
	return key
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (in Input) Rows(lang string) []Row {
	kv := []struct {
		k string
		v string
	}{
		{"torque_nm", num(in.TorqueNM)},
		{"speed_rpm", num(in.SpeedRPM)},
		{"gear_ratio", num(in.GearRatio)},
		{"service_factor", num(in.ServiceFactor)},
		{"min_center_distance_mm", num(in.MinCenterDistanceMM)},
	}
	rows := make([]Row, 0, len(kv))
	for _, e := range kv {
		rows = append(rows, Row{Key: e.k, Label: Label(lang, e.k), Value: e.v})
	}
	return rows
}

// Rows lists the result in display order.
func (r Result) Rows(lang string) []Row {
	kv := []struct {
		k string
		v string
	}{
		{"driving_teeth", strconv.Itoa(r.DrivingTeeth)},
		{"driven_teeth", strconv.Itoa(r.DrivenTeeth)},
		{"pitch_mm", num(r.PitchMM)},
		{"chain_length_links", strconv.Itoa(r.ChainLengthLinks)},
		{"center_distance_mm", strconv.FormatFloat(r.CenterDistanceMM, 'f', 1, 64)},
		{"chain_velocity_m_s", strconv.FormatFloat(r.ChainVelocityMS, 'f', 2, 64)},
		{"breaking_load_n", num(r.BreakingLoadN)},
		{"mass_kg_m", strconv.FormatFloat(r.MassKgM, 'f', 2, 64)},
	}
	rows := make([]Row, 0, len(kv))
	for _, e := range kv {
		rows = append(rows, Row{Key: e.k, Label: Label(lang, e.k), Value: e.v})
	}
	return rows
}
