package container

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// PrintInfo holds print metadata derived from a G-code file, either parsed
// from slicer comments or estimated when none are present.
type PrintInfo struct {
	PrintTimeSec uint
	FilamentMM   float64
	LayerCount   uint
}

var (
	reCuraTime    = regexp.MustCompile(`(?i)^;\s*time\s*[:=]\s*(\d+)`)
	rePrusaTime   = regexp.MustCompile(`(?i)^;\s*estimated printing time.*?=\s*(.*)`)
	reFilamentUse = regexp.MustCompile(`(?i)^;\s*(?:filament\s*used|material)\s*[:=]\s*([\d.]+)\s*(mm|m)?`)
	reLayerCount  = regexp.MustCompile(`(?i)^;\s*layer[_\s]*count\s*[:=]\s*(\d+)`)
	reLayerTick   = regexp.MustCompile(`(?i)^;\s*layer\s*[:=]\s*\d+`)
	rePrusaHours  = regexp.MustCompile(`(\d+)\s*h`)
	rePrusaMins   = regexp.MustCompile(`(\d+)\s*m`)
	rePrusaSecs   = regexp.MustCompile(`(\d+)\s*s`)
	reEValue      = regexp.MustCompile(`E([\d.]+)`)
)

// ExtractInfo scans G-code text for slicer-emitted metadata comments and
// falls back to rough estimates when none are found. Where more than one
// line matches the same pattern (a concatenated or multi-object file), the
// last occurrence wins, not the first — each match unconditionally
// overwrites the previous one. It is pure and idempotent: re-running it
// over its own output
// (which never re-emits the comments it scans for beyond what Preprocess
// injects) yields the same result given the same input text.
func ExtractInfo(gcode string) PrintInfo {
	var (
		printTime       uint
		haveTime        bool
		filamentMM      float64
		haveFilament    bool
		layerCount      uint
		haveExplicitCnt bool
		layerTicks      uint
	)

	lines := splitLines(gcode)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := reCuraTime.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
				printTime = uint(v)
				haveTime = true
			}
			continue
		}
		if m := rePrusaTime.FindStringSubmatch(line); m != nil {
			printTime = parsePrusaDuration(m[1])
			haveTime = true
			continue
		}

		if m := reFilamentUse.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				unit := strings.ToLower(m[2])
				if unit == "m" {
					v *= 1000
				}
				filamentMM = v
				haveFilament = true
			}
			continue
		}

		if m := reLayerCount.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
				layerCount = uint(v)
				haveExplicitCnt = true
			}
			continue
		}

		if reLayerTick.MatchString(line) {
			layerTicks++
		}
	}

	if !haveExplicitCnt {
		layerCount = layerTicks
	}

	if !haveTime {
		printTime = fallbackPrintTime(lines)
		log.Printf("gcode: no slicer time comment found, estimating %ds from move density", printTime)
	}
	if !haveFilament {
		filamentMM = fallbackFilament(lines)
		log.Printf("gcode: no slicer filament comment found, estimating %.1fmm", filamentMM)
	}

	return PrintInfo{
		PrintTimeSec: printTime,
		FilamentMM:   filamentMM,
		LayerCount:   layerCount,
	}
}

// parsePrusaDuration sums whichever of the "<N>h", "<N>m", "<N>s"
// components are present in a PrusaSlicer-style duration string.
func parsePrusaDuration(s string) uint {
	var total uint
	if m := rePrusaHours.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			total += uint(v) * 3600
		}
	}
	if m := rePrusaMins.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			total += uint(v) * 60
		}
	}
	if m := rePrusaSecs.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			total += uint(v)
		}
	}
	return total
}

// fallbackPrintTime estimates print time from move-command density when no
// slicer hint is present: max(60, (#G0+G1 lines)/10).
func fallbackPrintTime(lines []string) uint {
	var moves uint
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "G0 ") || strings.HasPrefix(t, "G1 ") ||
			t == "G0" || t == "G1" {
			moves++
		}
	}
	est := moves / 10
	if est < 60 {
		est = 60
	}
	return est
}

// fallbackFilament estimates filament usage as the maximum numeric value
// following any E token in the file, floored at 1mm and defaulting to
// 1000mm if none appear.
func fallbackFilament(lines []string) float64 {
	var maxE float64
	found := false
	for _, line := range lines {
		for _, m := range reEValue.FindAllStringSubmatch(line, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if !found || v > maxE {
				maxE = v
				found = true
			}
		}
	}
	if !found {
		return 1000
	}
	if maxE < 1 {
		return 1
	}
	return maxE
}
