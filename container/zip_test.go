package container

import (
	"bytes"
	"testing"
)

func TestPackUnpackZipEntryRoundTrip(t *testing.T) {
	data := []byte("G1 X10 Y10 Z0.2 F1200\nG1 X20\n")

	zipped, err := packZipEntry(data)
	if err != nil {
		t.Fatalf("packZipEntry: %v", err)
	}

	out, ok := unpackZipEntry(zipped)
	if !ok {
		t.Fatalf("unpackZipEntry reported ok=false")
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch: got %q, want %q", out, data)
	}
}

func TestUnpackZipEntryFalseOnNonZipData(t *testing.T) {
	if _, ok := unpackZipEntry([]byte("not a zip file at all")); ok {
		t.Errorf("unpackZipEntry reported ok=true for non-zip data")
	}
}
