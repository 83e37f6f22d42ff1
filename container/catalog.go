// Package container implements the XYZ da Vinci ".3w" file codec: G-code
// preprocessing, AES encryption/decryption, and the fixed 8192-byte header
// format the printer firmware expects.
package container

import "fmt"

// CipherClass selects which cipher variant a model uses for its body.
type CipherClass int

const (
	// ECB256 is AES-256-ECB, used by the miniMaker family and newer.
	ECB256 CipherClass = iota
	// CBC128Zip is AES-128-CBC over a zip-wrapped body, used by the
	// older Jr/Pro family.
	CBC128Zip
)

func (c CipherClass) String() string {
	switch c {
	case ECB256:
		return "ECB256"
	case CBC128Zip:
		return "CBC128Zip"
	default:
		return fmt.Sprintf("CipherClass(%d)", int(c))
	}
}

// ModelInfo describes one printer model from the static catalog.
type ModelInfo struct {
	ID        string
	Name      string
	WidthMM   int
	DepthMM   int
	HeightMM  int
	HeatedBed bool
	Wifi      bool
	Cipher    CipherClass
}

// catalog is the process-wide immutable model database for the da Vinci
// family. Build volumes and cipher classes were recovered from firmware
// behavior; identifiers are what the printers report in the "n:" status
// segment.
var catalog = map[string]ModelInfo{
	"dv1MX0A000": {"dv1MX0A000", "da Vinci miniMaker", 150, 150, 150, false, false, ECB256},
	"dv1MW0A000": {"dv1MW0A000", "da Vinci mini w", 150, 150, 150, false, true, ECB256},
	"dv1MW0B000": {"dv1MW0B000", "da Vinci mini wA", 150, 150, 150, false, true, ECB256},
	"dv1MW0C000": {"dv1MW0C000", "da Vinci mini w+", 150, 150, 150, false, true, ECB256},
	"dv1NX0A000": {"dv1NX0A000", "da Vinci nano", 120, 120, 120, false, false, ECB256},
	"dv1NW0A000": {"dv1NW0A000", "da Vinci nano w", 120, 120, 120, false, true, ECB256},
	"dv1JP0A000": {"dv1JP0A000", "da Vinci Jr. 1.0", 150, 150, 150, false, false, CBC128Zip},
	"dv1JW0A000": {"dv1JW0A000", "da Vinci Jr. 1.0W", 150, 150, 150, false, true, CBC128Zip},
	"dv1JA0A000": {"dv1JA0A000", "da Vinci Jr. 1.0A", 175, 175, 175, false, false, CBC128Zip},
	"dv1JS0A000": {"dv1JS0A000", "da Vinci Jr. 1.0 3in1", 150, 150, 150, false, false, CBC128Zip},
	"dv1JO0A000": {"dv1JO0A000", "da Vinci Jr. 1.0 3in1 (Open)", 150, 150, 150, false, false, CBC128Zip},
	"dv1JPWA000": {"dv1JPWA000", "da Vinci Jr. 1.0 Pro", 150, 150, 150, false, false, CBC128Zip},
	"dv1JWWA000": {"dv1JWWA000", "da Vinci Jr. 1.0W Pro", 150, 150, 150, false, true, CBC128Zip},
	"dv2JX0A000": {"dv2JX0A000", "da Vinci Jr. 2.0 Mix", 150, 150, 150, false, false, CBC128Zip},
	"dv1PA0A000": {"dv1PA0A000", "da Vinci 1.0 Pro", 200, 200, 200, true, false, CBC128Zip},
	"dv1PS0A000": {"dv1PS0A000", "da Vinci 1.0 Pro 3in1", 200, 200, 200, true, false, CBC128Zip},
	"dv1SA0A000": {"dv1SA0A000", "da Vinci 1.0 Super", 300, 300, 300, true, false, CBC128Zip},
}

// LookupModel returns catalog info for a model identifier. The second
// return value is false for an unknown identifier, in which case the
// caller gets a zero-value ModelInfo, whose Cipher field is the zero
// CipherClass (ECB256). CipherClassFor is the lookup that defaults unknown
// identifiers to CBC128Zip.
func LookupModel(modelID string) (ModelInfo, bool) {
	info, ok := catalog[modelID]
	return info, ok
}

// CipherClassFor returns the cipher class for a model identifier. Unknown
// identifiers default to CBC128Zip, the conservative older-firmware
// choice: only models known to be in the miniMaker lineage take the ECB
// path.
func CipherClassFor(modelID string) CipherClass {
	if info, ok := catalog[modelID]; ok {
		return info.Cipher
	}
	return CBC128Zip
}

// Models returns every catalog entry, for discovery/listing UIs.
func Models() []ModelInfo {
	out := make([]ModelInfo, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, info)
	}
	return out
}
