package session

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/john/xyzprint/container"
)

// PrinterStatus is the parsed reply to "XYZv3/query=a". The zero value is
// what a session reports before its first successful query.
type PrinterStatus struct {
	ModelNumber         string
	DisplayName         string
	SerialNumber        string
	FirmwareVersion     string
	State               StateCode
	SubState            int
	ExtruderTemp        int
	ExtruderTarget      int
	BedTemp             int
	PrintPercent        int
	PrintElapsedMin     int
	PrintRemainingMin   int
	ErrorCode           int
	FilamentRemainingMM int
	ZOffset             int // 1/100 mm
	AutoLevel           bool
}

// segmentSplit matches a '.' only when immediately followed by a single
// letter and ':' — the separator between status fields — so firmware
// version strings like "1.3.5" are never split apart.
var segmentSplit = regexp.MustCompile(`\.(?:[a-zA-Z]:)`)

// parseStatus tokenizes a raw "XYZv3/query=a" reply and fills in every
// field it can recognize. Each line may carry several "<letter>:<value>"
// segments; a parse failure in one segment never aborts the rest — it's
// logged and skipped, leaving a partially populated snapshot rather than
// none at all.
func parseStatus(reply string) PrinterStatus {
	var st PrinterStatus

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, seg := range splitSegments(line) {
			seg = strings.TrimSpace(seg)
			if len(seg) < 2 || seg[1] != ':' {
				continue
			}
			key := seg[0]
			val := strings.TrimSpace(seg[2:])
			if err := applySegment(&st, key, val); err != nil {
				log.Printf("session: status segment %q: %v", seg, err)
			}
		}
	}

	return st
}

// splitSegments splits a line on dots that precede a "<letter>:" segment
// marker, without touching dots inside a value (e.g. a firmware version).
func splitSegments(line string) []string {
	idxs := segmentSplit.FindAllStringIndex(line, -1)
	if len(idxs) == 0 {
		return []string{line}
	}

	var out []string
	start := 0
	for _, loc := range idxs {
		// loc spans "." + "X:"; split right after the dot so the
		// letter:value pair starts the next segment.
		splitAt := loc[0] + 1
		out = append(out, line[start:loc[0]])
		start = splitAt
	}
	out = append(out, line[start:])
	return out
}

func applySegment(st *PrinterStatus, key byte, val string) error {
	switch key {
	case 'j':
		parts := strings.Split(val, ",")
		state, err := strconv.Atoi(parts[0])
		if err != nil {
			return err
		}
		st.State = StateCode(state)
		if len(parts) > 1 {
			if sub, err := strconv.Atoi(parts[1]); err == nil {
				st.SubState = sub
			}
		}
	case 't':
		parts := strings.Split(val, ",")
		if len(parts) >= 2 {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				st.ExtruderTemp = v
			}
		}
		if len(parts) >= 3 {
			if v, err := strconv.Atoi(parts[2]); err == nil {
				st.BedTemp = v
			}
		}
		if len(parts) >= 4 {
			if v, err := strconv.Atoi(parts[3]); err == nil {
				st.ExtruderTarget = v
			}
		}
	case 'n':
		st.ModelNumber = val
		if info, ok := container.LookupModel(val); ok {
			st.DisplayName = info.Name
		}
	case 's':
		st.SerialNumber = val
	case 'v':
		st.FirmwareVersion = val
	case 'e':
		v, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		st.ErrorCode = v
	case 'd':
		parts := strings.Split(val, ",")
		if len(parts) >= 1 {
			if v, err := strconv.Atoi(parts[0]); err == nil {
				st.PrintPercent = v
			}
		}
		if len(parts) >= 2 {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				st.PrintElapsedMin = v
			}
		}
		if len(parts) >= 3 {
			if v, err := strconv.Atoi(parts[2]); err == nil {
				st.PrintRemainingMin = v
			}
		}
	case 'f':
		parts := strings.Split(val, ",")
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return err
		}
		st.FilamentRemainingMM = v
	case 'o':
		v, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		st.ZOffset = v
	case 'l':
		st.AutoLevel = val == "1"
	default:
		// Unknown keys are ignored, not an error.
	}
	return nil
}
