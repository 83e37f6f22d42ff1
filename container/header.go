package container

import (
	"encoding/binary"
)

// headerSize is the fixed size of every .3w header, in bytes.
const headerSize = 8192

// headerVersion is the only format version this codec writes or expects.
// The field is read but not enforced on decode, for forward compatibility
// with newer firmware that may bump it.
const headerVersion = 2

// magic is the fixed 16-byte ".3w" file signature.
var magic = []byte("3DPFNKG00000000\x00")

// encType values written at header offset 104.
const (
	encTypeCBC128Zip = 1
	encTypeECB256    = 2
)

// header offsets, per the fixed 8192-byte layout.
const (
	offMagic         = 0
	offVersion       = 16
	offModel         = 32
	modelFieldSize   = 32
	offBodyOffset    = 80
	offEncryptedSize = 84
	offOriginalSize  = 88
	offPrintTimeSec  = 96
	offFilamentMM    = 100
	offEncType       = 104
)

// parsedHeader is the set of header fields the decoder needs.
type parsedHeader struct {
	version       uint32
	modelID       string
	bodyOffset    uint32
	encryptedSize uint32
	originalSize  uint32
	printTimeSec  uint32
	filamentMM    uint32
	encType       uint32
}

// encodeHeader builds the fixed 8192-byte .3w header.
func encodeHeader(modelID string, encryptedSize, originalSize int, info PrintInfo, cls CipherClass) []byte {
	h := make([]byte, headerSize)

	copy(h[offMagic:], magic)
	binary.LittleEndian.PutUint32(h[offVersion:], headerVersion)

	modelBytes := []byte(modelID)
	if len(modelBytes) > modelFieldSize {
		modelBytes = modelBytes[:modelFieldSize]
	}
	copy(h[offModel:], modelBytes)

	binary.LittleEndian.PutUint32(h[offBodyOffset:], headerSize)
	binary.LittleEndian.PutUint32(h[offEncryptedSize:], uint32(encryptedSize))
	binary.LittleEndian.PutUint32(h[offOriginalSize:], uint32(originalSize))
	binary.LittleEndian.PutUint32(h[offPrintTimeSec:], uint32(info.PrintTimeSec))
	binary.LittleEndian.PutUint32(h[offFilamentMM:], uint32(info.FilamentMM))

	encType := uint32(encTypeCBC128Zip)
	if cls == ECB256 {
		encType = encTypeECB256
	}
	binary.LittleEndian.PutUint32(h[offEncType:], encType)

	return h
}

// decodeHeader parses a .3w header from the start of data. It validates
// the magic and that body_offset/encrypted_size are consistent with the
// total file size; every other field is surfaced unchecked.
func decodeHeader(data []byte) (parsedHeader, error) {
	if len(data) < headerSize {
		return parsedHeader{}, ErrNotA3wFile
	}
	for i, b := range magic {
		if data[offMagic+i] != b {
			return parsedHeader{}, ErrNotA3wFile
		}
	}

	h := parsedHeader{
		version:       binary.LittleEndian.Uint32(data[offVersion:]),
		modelID:       readCString(data[offModel : offModel+modelFieldSize]),
		bodyOffset:    binary.LittleEndian.Uint32(data[offBodyOffset:]),
		encryptedSize: binary.LittleEndian.Uint32(data[offEncryptedSize:]),
		originalSize:  binary.LittleEndian.Uint32(data[offOriginalSize:]),
		printTimeSec:  binary.LittleEndian.Uint32(data[offPrintTimeSec:]),
		filamentMM:    binary.LittleEndian.Uint32(data[offFilamentMM:]),
		encType:       binary.LittleEndian.Uint32(data[offEncType:]),
	}

	if h.bodyOffset != headerSize {
		return parsedHeader{}, ErrNotA3wFile
	}
	if uint64(h.encryptedSize) > uint64(len(data))-headerSize {
		return parsedHeader{}, ErrNotA3wFile
	}

	return h, nil
}

// readCString reads a NUL- or zero-padded ASCII field.
func readCString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
