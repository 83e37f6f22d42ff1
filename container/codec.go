package container

import (
	"log"
	"strings"
	"unicode/utf8"
)

// Encode preprocesses gcode, selects the cipher class for modelID from the
// static catalog, encrypts the body, and returns a complete .3w file:
// header concatenated with the encrypted body.
func Encode(gcode string, info PrintInfo, modelID string) ([]byte, error) {
	processed := Preprocess(gcode, info, modelID)
	plain := []byte(processed)
	if uint64(len(plain)) > maxPlainSize {
		return nil, ErrFileTooLarge
	}

	cls := CipherClassFor(modelID)

	var body []byte
	var err error
	switch cls {
	case ECB256:
		body, err = encryptECB256(plain)
	default:
		zipped, zerr := packZipEntry(plain)
		if zerr != nil {
			return nil, zerr
		}
		body, err = encryptCBC128(zipped)
	}
	if err != nil {
		return nil, err
	}

	header := encodeHeader(modelID, len(body), len(plain), info, cls)

	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	log.Printf("gcode: encoded .3w for %s (%s, %d bytes plain, %d bytes body)",
		modelID, cls, len(plain), len(body))
	return out, nil
}

// Decode reverses Encode for diagnostic purposes: it reads the header,
// decrypts the body per the encryption type recorded there, and returns
// the best-effort recovered G-code text. Padding or zip anomalies degrade
// gracefully (the raw decrypted buffer is used) rather than failing. Once
// the header parses, the only error Decode returns is ErrCryptoUnavailable
// for a body the cipher cannot process (for example, a length that is not
// a whole number of 16-byte blocks).
func Decode(data []byte) (string, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return "", err
	}

	body := data[h.bodyOffset : h.bodyOffset+h.encryptedSize]

	var decrypted []byte
	isCBC := false
	switch h.encType {
	case encTypeECB256:
		decrypted, err = decryptECB256(body)
	case encTypeCBC128Zip:
		isCBC = true
		decrypted, err = decryptCBC128(body)
	default:
		decrypted = body
	}
	if err != nil {
		// Decryption can only fail here on a misshapen block length,
		// which means the body isn't usable; surface it rather than
		// decoding garbage.
		return "", err
	}

	decrypted = pkcs7Unpad(decrypted)

	if isCBC {
		if unwrapped, ok := unpackZipEntry(decrypted); ok {
			decrypted = unwrapped
		} else {
			log.Printf("gcode: decrypted CBC128Zip body did not parse as zip, treating as raw G-code")
		}
	}

	if int(h.originalSize) > 0 && int(h.originalSize) < len(decrypted) {
		decrypted = decrypted[:h.originalSize]
	}

	log.Printf("gcode: decoded .3w for %s (encType %d, %d bytes recovered)",
		h.modelID, h.encType, len(decrypted))
	return decodeUTF8Lossy(decrypted), nil
}

// decodeUTF8Lossy decodes bytes as UTF-8, replacing invalid sequences
// with the Unicode replacement character rather than failing.
func decodeUTF8Lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
