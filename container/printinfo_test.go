package container

import "testing"

func TestExtractInfoCuraTimeComment(t *testing.T) {
	gcode := "; TIME:5400\n; Filament used: 2.5m\nG1 X1\n"
	info := ExtractInfo(gcode)

	if info.PrintTimeSec != 5400 {
		t.Errorf("PrintTimeSec = %d, want 5400", info.PrintTimeSec)
	}
	if info.FilamentMM != 2500 {
		t.Errorf("FilamentMM = %v, want 2500", info.FilamentMM)
	}
}

func TestExtractInfoPrusaTimeComment(t *testing.T) {
	gcode := "; estimated printing time (normal mode) = 1h 30m 15s\nG1 X1\n"
	info := ExtractInfo(gcode)

	want := uint(1*3600 + 30*60 + 15)
	if info.PrintTimeSec != want {
		t.Errorf("PrintTimeSec = %d, want %d", info.PrintTimeSec, want)
	}
}

func TestExtractInfoLayerCount(t *testing.T) {
	gcode := "; LAYER_COUNT:42\nG1 X1\n"
	info := ExtractInfo(gcode)
	if info.LayerCount != 42 {
		t.Errorf("LayerCount = %d, want 42", info.LayerCount)
	}
}

func TestExtractInfoLayerTicksCountedWhenNoExplicitCount(t *testing.T) {
	gcode := ";LAYER:0\nG1 X1\n;LAYER:1\nG1 X2\n;LAYER:2\nG1 X3\n"
	info := ExtractInfo(gcode)
	if info.LayerCount != 3 {
		t.Errorf("LayerCount = %d, want 3", info.LayerCount)
	}
}

func TestExtractInfoEmptyInputFallsBackToDefaults(t *testing.T) {
	info := ExtractInfo("")
	if info.PrintTimeSec != 60 {
		t.Errorf("PrintTimeSec = %d, want 60", info.PrintTimeSec)
	}
	if info.FilamentMM != 1000 {
		t.Errorf("FilamentMM = %v, want 1000", info.FilamentMM)
	}
	if info.LayerCount != 0 {
		t.Errorf("LayerCount = %d, want 0", info.LayerCount)
	}
}

func TestExtractInfoFallbackFilamentFromEValues(t *testing.T) {
	gcode := "G1 X1 E5.0\nG1 X2 E12.5\nG1 X3 E3.0\n"
	info := ExtractInfo(gcode)
	if info.FilamentMM != 12.5 {
		t.Errorf("FilamentMM = %v, want 12.5", info.FilamentMM)
	}
}

func TestExtractInfoFallbackPrintTimeFromMoveDensity(t *testing.T) {
	var gcode string
	for i := 0; i < 700; i++ {
		gcode += "G1 X1\n"
	}
	info := ExtractInfo(gcode)
	if info.PrintTimeSec != 70 {
		t.Errorf("PrintTimeSec = %d, want 70", info.PrintTimeSec)
	}
}

func TestExtractInfoFallbackPrintTimeHasSixtySecondFloor(t *testing.T) {
	gcode := "G1 X1\nG1 X2\n"
	info := ExtractInfo(gcode)
	if info.PrintTimeSec != 60 {
		t.Errorf("PrintTimeSec = %d, want 60 (floor)", info.PrintTimeSec)
	}
}

func TestExtractInfoLastOccurrenceWinsForDuplicateComments(t *testing.T) {
	// A concatenated multi-object file carries more than one slicer
	// comment of the same kind; the last one wins.
	gcode := "; TIME:100\nG1 X1\n; TIME:200\nG1 X2\n" +
		"; Filament used: 10mm\nG1 X3\n; Filament used: 20mm\nG1 X4\n" +
		"; LAYER_COUNT:5\nG1 X5\n; LAYER_COUNT:9\nG1 X6\n"
	info := ExtractInfo(gcode)

	if info.PrintTimeSec != 200 {
		t.Errorf("PrintTimeSec = %d, want 200 (last occurrence)", info.PrintTimeSec)
	}
	if info.FilamentMM != 20 {
		t.Errorf("FilamentMM = %v, want 20 (last occurrence)", info.FilamentMM)
	}
	if info.LayerCount != 9 {
		t.Errorf("LayerCount = %d, want 9 (last occurrence)", info.LayerCount)
	}
}
