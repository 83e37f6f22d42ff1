package session

import "testing"

func TestStateCodeStringKnown(t *testing.T) {
	if got := StateCode(9002).String(); got != "Printing" {
		t.Errorf("StateCode(9002).String() = %q, want Printing", got)
	}
	if got := StateCode(9040).String(); got != "Paused" {
		t.Errorf("StateCode(9040).String() = %q, want Paused", got)
	}
}

func TestStateCodeStringUnknown(t *testing.T) {
	if got := StateCode(12345).String(); got != "Unknown(12345)" {
		t.Errorf("StateCode(12345).String() = %q, want Unknown(12345)", got)
	}
}
