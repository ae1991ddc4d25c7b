package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	chain "ChainDrive/internal/calc/chain"
)

func TestRunText(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-torque", "50", "-speed", "1440", "-ratio", "2", "-distance", "300", "-lang", "en"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	for _, want := range []string{"Driving sprocket teeth: 15", "Chain length, links: 70", "Center distance, mm: 300.1", "Chain velocity, m/s: 4.57"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-torque=200000", "-speed=960", "-ratio=5", "-distance=500", "-json"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	var res chain.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.PitchMM != 15.875 || res.DrivenTeeth != 45 {
		t.Fatalf("unexpected %+v", res)
	}
}

func TestRunExitCodes(t *testing.T) {
	cases := []struct {
		args []string
		want int
	}{
		{[]string{"-torque", "50"}, 2},
		{[]string{"-bogus"}, 2},
		{[]string{"-torque", "1e7", "-speed", "100", "-ratio", "5", "-distance", "300"}, 1},
	}
	for _, c := range cases {
		var out, errOut bytes.Buffer
		if got := run(c.args, &out, &errOut); got != c.want {
			t.Fatalf("run(%v) = %d, want %d", c.args, got, c.want)
		}
	}
}
