package session

import "testing"

func TestSplitSegmentsKeepsFirmwareVersionIntact(t *testing.T) {
	line := "v:1.3.5.j:9002,0"
	segs := splitSegments(line)

	if len(segs) != 2 {
		t.Fatalf("splitSegments(%q) = %v, want 2 segments", line, segs)
	}
	if segs[0] != "v:1.3.5" {
		t.Errorf("segs[0] = %q, want %q", segs[0], "v:1.3.5")
	}
	if segs[1] != "j:9002,0" {
		t.Errorf("segs[1] = %q, want %q", segs[1], "j:9002,0")
	}
}

func TestSplitSegmentsSingleSegmentUnchanged(t *testing.T) {
	segs := splitSegments("n:dv1JW0A000")
	if len(segs) != 1 || segs[0] != "n:dv1JW0A000" {
		t.Errorf("splitSegments = %v", segs)
	}
}

func TestParseStatusFullReply(t *testing.T) {
	reply := "n:dv1JW0A000.s:ABC123.v:1.3.5.j:9002,0.t:0,210,60,215.d:42,15,20.f:12345.o:-50.l:1"
	st := parseStatus(reply)

	if st.ModelNumber != "dv1JW0A000" {
		t.Errorf("ModelNumber = %q", st.ModelNumber)
	}
	if st.DisplayName != "da Vinci Jr. 1.0W" {
		t.Errorf("DisplayName = %q", st.DisplayName)
	}
	if st.SerialNumber != "ABC123" {
		t.Errorf("SerialNumber = %q", st.SerialNumber)
	}
	if st.FirmwareVersion != "1.3.5" {
		t.Errorf("FirmwareVersion = %q", st.FirmwareVersion)
	}
	if st.State != 9002 {
		t.Errorf("State = %d, want 9002", st.State)
	}
	if st.SubState != 0 {
		t.Errorf("SubState = %d, want 0", st.SubState)
	}
	if st.ExtruderTemp != 210 {
		t.Errorf("ExtruderTemp = %d, want 210", st.ExtruderTemp)
	}
	if st.BedTemp != 60 {
		t.Errorf("BedTemp = %d, want 60", st.BedTemp)
	}
	if st.ExtruderTarget != 215 {
		t.Errorf("ExtruderTarget = %d, want 215", st.ExtruderTarget)
	}
	if st.PrintPercent != 42 {
		t.Errorf("PrintPercent = %d, want 42", st.PrintPercent)
	}
	if st.PrintElapsedMin != 15 {
		t.Errorf("PrintElapsedMin = %d, want 15", st.PrintElapsedMin)
	}
	if st.PrintRemainingMin != 20 {
		t.Errorf("PrintRemainingMin = %d, want 20", st.PrintRemainingMin)
	}
	if st.FilamentRemainingMM != 12345 {
		t.Errorf("FilamentRemainingMM = %d, want 12345", st.FilamentRemainingMM)
	}
	if st.ZOffset != -50 {
		t.Errorf("ZOffset = %d, want -50", st.ZOffset)
	}
	if !st.AutoLevel {
		t.Errorf("AutoLevel = false, want true")
	}
}

func TestParseStatusMultiLineFields(t *testing.T) {
	reply := "j:9002,1\nt:1,205,0,210\nn:dv1MX0A000\nv:1.3.5\n"
	st := parseStatus(reply)

	if st.State != 9002 {
		t.Errorf("State = %d, want 9002", st.State)
	}
	if st.SubState != 1 {
		t.Errorf("SubState = %d, want 1", st.SubState)
	}
	if st.ExtruderTemp != 205 {
		t.Errorf("ExtruderTemp = %d, want 205", st.ExtruderTemp)
	}
	if st.BedTemp != 0 {
		t.Errorf("BedTemp = %d, want 0", st.BedTemp)
	}
	if st.ExtruderTarget != 210 {
		t.Errorf("ExtruderTarget = %d, want 210", st.ExtruderTarget)
	}
	if st.ModelNumber != "dv1MX0A000" {
		t.Errorf("ModelNumber = %q, want dv1MX0A000", st.ModelNumber)
	}
	if st.FirmwareVersion != "1.3.5" {
		t.Errorf("FirmwareVersion = %q, want 1.3.5", st.FirmwareVersion)
	}
}

func TestParseStatusUnknownKeyIgnored(t *testing.T) {
	st := parseStatus("n:dv1JW0A000.z:somethingunknown")
	if st.ModelNumber != "dv1JW0A000" {
		t.Errorf("ModelNumber = %q", st.ModelNumber)
	}
}

func TestParseStatusMultipleLines(t *testing.T) {
	st := parseStatus("n:dv1JW0A000\nv:1.3.5\n")
	if st.ModelNumber != "dv1JW0A000" || st.FirmwareVersion != "1.3.5" {
		t.Errorf("parseStatus multiline = %+v", st)
	}
}
