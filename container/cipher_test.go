package container

import (
	"bytes"
	"testing"
)

func TestPKCS7PadUnpadRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		bytes.Repeat([]byte{'x'}, 16),
		bytes.Repeat([]byte{'y'}, 17),
	}
	for _, data := range cases {
		padded := pkcs7Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("pkcs7Pad(%d bytes) not block aligned: %d", len(data), len(padded))
		}
		if len(padded) <= len(data) {
			t.Fatalf("pkcs7Pad(%d bytes) did not grow: %d", len(data), len(padded))
		}
		unpadded := pkcs7Unpad(padded)
		if !bytes.Equal(unpadded, data) {
			t.Fatalf("round trip mismatch: got %x, want %x", unpadded, data)
		}
	}
}

func TestPKCS7UnpadTolerantOfGarbage(t *testing.T) {
	garbage := []byte("not padded at all!")
	if got := pkcs7Unpad(garbage); !bytes.Equal(got, garbage) {
		t.Errorf("pkcs7Unpad(garbage) = %x, want unchanged", got)
	}
}

func TestECB256RoundTrip(t *testing.T) {
	// encryptECB256 pads internally, so the plaintext is passed as-is.
	plain := []byte("G1 X10 Y10 Z0.2 F1200\nG1 X20\n")

	enc, err := encryptECB256(plain)
	if err != nil {
		t.Fatalf("encryptECB256: %v", err)
	}
	dec, err := decryptECB256(enc)
	if err != nil {
		t.Fatalf("decryptECB256: %v", err)
	}
	if !bytes.Equal(pkcs7Unpad(dec), plain) {
		t.Errorf("round trip mismatch")
	}
}

func TestCBC128RoundTrip(t *testing.T) {
	// encryptCBC128 pads internally, so the plaintext is passed as-is.
	plain := []byte("G1 X10 Y10 Z0.2 F1200\nG1 X20\n")

	enc, err := encryptCBC128(plain)
	if err != nil {
		t.Fatalf("encryptCBC128: %v", err)
	}
	dec, err := decryptCBC128(enc)
	if err != nil {
		t.Fatalf("decryptCBC128: %v", err)
	}
	if !bytes.Equal(pkcs7Unpad(dec), plain) {
		t.Errorf("round trip mismatch")
	}
}
