package container

import (
	"log"
	"strconv"
	"strings"
)

// headerScanLines is how many leading lines are scanned for an existing
// "; machine" marker before injecting one.
const headerScanLines = 50

// Preprocess normalizes G-code for XYZ firmware: it injects the required
// slicer-metadata comment block if one isn't already present, rewrites
// G0 rapid moves to G1 (XYZ firmware treats G0 as unknown), and
// normalizes line endings. It is pure and idempotent: running it twice
// produces the same output as running it once, since the injected header
// always contains "; machine" and the scan for that marker is the first
// thing Preprocess does.
func Preprocess(gcode string, info PrintInfo, modelID string) string {
	lines := splitLines(gcode)

	scanLimit := headerScanLines
	if scanLimit > len(lines) {
		scanLimit = len(lines)
	}
	hasMachine := false
	for _, line := range lines[:scanLimit] {
		if strings.Contains(strings.ToLower(line), "; machine") {
			hasMachine = true
			break
		}
	}

	var out []string
	if !hasMachine {
		log.Printf("gcode: no machine header found, prepending one for %s", modelID)
		out = append(out,
			"; machine = "+modelID,
			"; print_time = "+strconv.FormatUint(uint64(info.PrintTimeSec), 10),
			"; total_filament = "+strconv.FormatFloat(info.FilamentMM, 'f', 1, 64),
			"; nozzle_diameter = 0.4",
			"; layer_height = 0.2",
			"; filament_diameter = 1.75",
			"; filament_type = PLA",
			"",
		)
	} else {
		log.Printf("gcode: machine header already present, skipping injection")
	}

	for _, line := range lines {
		out = append(out, rewriteG0(line))
	}

	for i, line := range out {
		out[i] = strings.TrimRight(line, " \t\r")
	}

	log.Printf("gcode: preprocessed %d lines for %s", len(lines), modelID)
	return strings.Join(out, "\n") + "\n"
}

// rewriteG0 replaces a leading G0 token with G1, preserving the rest of
// the line. It only matches a genuine G0 move — "G0 ..." or a bare "G0" —
// never a token that merely starts with "G0" (e.g. "G04").
func rewriteG0(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	switch {
	case trimmed == "G0":
		return indent + "G1"
	case strings.HasPrefix(trimmed, "G0 "):
		return indent + "G1" + trimmed[2:]
	case strings.HasPrefix(trimmed, "G0\t"):
		return indent + "G1" + trimmed[2:]
	default:
		return line
	}
}

// splitLines splits on any of \n, \r\n or \r, without retaining a
// trailing empty element for a final newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
