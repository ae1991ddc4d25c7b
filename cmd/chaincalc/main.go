package main

import (
	chain "ChainDrive/internal/calc/chain"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chaincalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in chain.Input
	fs.Float64Var(&in.TorqueNM, "torque", 0, "torque on the driving sprocket, N·m")
	fs.Float64Var(&in.SpeedRPM, "speed", 0, "driving sprocket speed, rpm")
	fs.Float64Var(&in.GearRatio, "ratio", 0, "gear ratio")
	fs.Float64Var(&in.ServiceFactor, "service", 1, "service factor")
	fs.Float64Var(&in.MinCenterDistanceMM, "distance", 0, "minimum center distance, mm")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	lang := fs.String("lang", "ru", "label language: ru or en")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: chaincalc -torque N·m -speed rpm -ratio u [-service k] -distance mm [-json] [-lang ru|en]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := in.Validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	res, err := chain.Calculate(in)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, chain.ErrInvalidInput) {
			return 2
		}
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res)
		return 0
	}
	title := "Results"
	if *lang == "ru" {
		title = "Результаты расчета (" + chain.Standard + ")"
	}
	fmt.Fprintf(stdout, "%s:\n\n", title)
	for _, row := range res.Rows(*lang) {
		fmt.Fprintf(stdout, "%s: %s\n", row.Label, row.Value)
	}
	return 0
}
