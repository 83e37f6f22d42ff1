package container

import (
	"strings"
	"testing"
)

func TestPreprocessInjectsHeaderWhenMissing(t *testing.T) {
	gcode := "G1 X10 Y10\nG1 X20 Y20\n"
	info := PrintInfo{PrintTimeSec: 300, FilamentMM: 42.5}

	out := Preprocess(gcode, info, "dv1JW0A000")

	if !strings.Contains(out, "; machine = dv1JW0A000") {
		t.Errorf("missing injected machine header: %q", out)
	}
	if !strings.Contains(out, "; print_time = 300") {
		t.Errorf("missing print_time field: %q", out)
	}
	if !strings.Contains(out, "; total_filament = 42.5") {
		t.Errorf("missing total_filament field: %q", out)
	}
}

func TestPreprocessSkipsInjectionWhenMachinePresent(t *testing.T) {
	gcode := "; machine = dv1JW0A000\nG1 X10 Y10\n"
	out := Preprocess(gcode, PrintInfo{}, "dv1JW0A000")

	if strings.Count(out, "; machine") != 1 {
		t.Errorf("expected exactly one machine header, got: %q", out)
	}
}

func TestPreprocessRewritesG0ToG1(t *testing.T) {
	gcode := "; machine = dv1JW0A000\nG0 X10 Y10\nG0\nG1 X5\nG04 P100\n"
	out := Preprocess(gcode, PrintInfo{}, "dv1JW0A000")

	if strings.Contains(out, "G0 X10") {
		t.Errorf("G0 move was not rewritten: %q", out)
	}
	if !strings.Contains(out, "G1 X10 Y10") {
		t.Errorf("expected G1 X10 Y10 in output: %q", out)
	}
	lines := strings.Split(out, "\n")
	found := false
	for _, l := range lines {
		if l == "G1" {
			found = true
		}
	}
	if !found {
		t.Errorf("bare G0 was not rewritten to bare G1: %q", out)
	}
	if !strings.Contains(out, "G04 P100") {
		t.Errorf("G04 dwell command was incorrectly rewritten: %q", out)
	}
}

func TestPreprocessIsIdempotent(t *testing.T) {
	gcode := "G0 X10 Y10\nG1 Z0.2\n"
	info := PrintInfo{PrintTimeSec: 60, FilamentMM: 10}

	once := Preprocess(gcode, info, "dv1JW0A000")
	twice := Preprocess(once, info, "dv1JW0A000")

	if once != twice {
		t.Errorf("Preprocess not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestRewriteG0PreservesIndentAndDoesNotMatchG04(t *testing.T) {
	cases := map[string]string{
		"  G0 X1":  "  G1 X1",
		"G0":       "G1",
		"G04 P100": "G04 P100",
		"G1 X1":    "G1 X1",
	}
	for in, want := range cases {
		if got := rewriteG0(in); got != want {
			t.Errorf("rewriteG0(%q) = %q, want %q", in, got, want)
		}
	}
}
