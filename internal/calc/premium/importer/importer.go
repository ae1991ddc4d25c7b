package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	chain "ChainDrive/internal/calc/chain"
	"github.com/xuri/excelize/v2"
)

const ResultSheet = "ChainDrive"

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ChainImportResult struct {
	Count   int            `json:"count"`
	Results []chain.Result `json:"results"`
	Skipped []SkippedRow   `json:"skipped"`
}

// ImportChain reads the first sheet; row 1 is a header.
func ImportChain(r io.Reader) (ChainImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ChainImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return ChainImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return ChainImportResult{}, fmt.Errorf("%w: empty sheet", chain.ErrInvalidInput)
	}

	out := ChainImportResult{Results: []chain.Result{}, Skipped: []SkippedRow{}}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		input, err := parseChainRow(row)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		res, err := chain.Calculate(input)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseChainRow(row []string) (chain.Input, error) {
	// expected: torque_nm, speed_rpm, gear_ratio, service_factor(optional), min_center_distance_mm
	if len(row) < 5 {
		return chain.Input{}, fmt.Errorf("bad row: want 5 columns, got %d", len(row))
	}
	names := []string{"torque", "speed", "gear ratio", "service factor", "min center distance"}
	vals := make([]float64, 5)
	for i := range vals {
		if i == 3 && strings.TrimSpace(row[i]) == "" {
			vals[i] = 1.0
			continue
		}
		v, err := toFloat(row[i])
		if err != nil {
			return chain.Input{}, fmt.Errorf("bad %s %q", names[i], row[i])
		}
		vals[i] = v
	}
	return chain.Input{
		TorqueNM:            vals[0],
		SpeedRPM:            vals[1],
		GearRatio:           vals[2],
		ServiceFactor:       vals[3],
		MinCenterDistanceMM: vals[4],
	}, nil
}

// toFloat accepts a decimal comma.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// ExportChain writes one row per item: the inputs, then the design or the error.
func ExportChain(w io.Writer, items []chain.Input, lang string) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", chain.ErrInvalidInput)
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(ResultSheet)
	if err != nil {
		return err
	}

	header := []interface{}{}
	for _, r := range (chain.Input{}).Rows(lang) {
		header = append(header, r.Label)
	}
	for _, r := range (chain.Result{}).Rows(lang) {
		header = append(header, r.Label)
	}
	header = append(header, "Error")
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, in := range items {
		row := []interface{}{in.TorqueNM, in.SpeedRPM, in.GearRatio, in.ServiceFactor, in.MinCenterDistanceMM}
		res, err := chain.Calculate(in)
		if err != nil {
			row = append(row, "", "", "", "", "", "", "", "", err.Error())
		} else {
			row = append(row, res.DrivingTeeth, res.DrivenTeeth, res.PitchMM, res.ChainLengthLinks,
				res.CenterDistanceMM, res.ChainVelocityMS, res.BreakingLoadN, res.MassKgM, "")
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}
