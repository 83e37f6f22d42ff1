package session

import "fmt"

// StateCode is the printer activity code reported in the "j:" status
// segment. The firmware's enumeration has roughly thirty values in the
// 9000-9530 range; codes outside the known table are not rejected, just
// surfaced as Unknown(<n>).
type StateCode int

// stateNames follows the majority convention observed across the model
// range. Many codes (9004, 9011 and 9012 among them) double up on a
// label also used elsewhere in the table — that's the firmware's doing,
// not a mistake here.
var stateNames = map[StateCode]string{
	9000: "Initial",
	9001: "Heating",
	9002: "Printing",
	9003: "Calibrating",
	9004: "Calibrating",
	9005: "Cooling Down",
	9006: "Print Complete",
	9007: "Idle (Cooled)",
	9008: "Homing",
	9009: "Unloading Filament",
	9010: "Loading Filament",
	9011: "Idle (Cooled)",
	9012: "Calibrating",
	9021: "Loading Filament",
	9029: "Homing",
	9030: "Calibrating",
	9031: "Calibrating",
	9032: "Calibrating",
	9033: "Calibrating",
	9034: "Idle",
	9039: "Printing",
	9040: "Paused",
	9050: "Cancelling",
	9060: "Error",
	9070: "Busy",
	9080: "Scanning",
	9090: "Cleaning Nozzle",
	9100: "Updating Firmware",
	9500: "Ready",
	9510: "Idle",
	9511: "Idle",
	9520: "Busy",
	9530: "Busy",
}

// String returns the human-readable label for a state code, or
// "Unknown(<n>)" for any code not in the table. Unknown codes are never
// rejected — callers should be able to display any firmware response.
func (s StateCode) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}
