package container

import (
	"crypto/aes"
	"crypto/cipher"
)

// xyzKeyBase is the fixed AES key material XYZ firmware uses for every
// printer. It is not a secret in any meaningful sense — it was recovered
// from the vendor's own slicer binary — but it is process-wide and
// immutable, so it lives as an unexported constant rather than config.
const xyzKeyBase = "@xyzprinting.com"

// maxPlainSize bounds the body so the 32-bit size fields in the header
// never overflow, leaving room for the header itself and one pad block.
const maxPlainSize uint64 = (1<<32 - 1) - headerSize - 16

var zeroIV = make([]byte, 16)

// pkcs7Pad pads data to a multiple of blockSize, always appending at
// least one byte (a full block of padding when data is already aligned).
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	if padLen == 0 {
		padLen = blockSize
	}
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips PKCS#7 padding if, and only if, the trailing run looks
// valid: the last byte is in 1..=16 and every byte in that run matches it.
// Malformed padding is tolerated by returning the buffer unchanged — the
// decoder is diagnostic-only and some older firmware output doesn't pad
// cleanly.
func pkcs7Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > 16 || padLen > len(data) {
		return data
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return data
		}
	}
	return data[:len(data)-padLen]
}

// encryptECB256 encrypts data with AES-256-ECB, keyed on the XYZ key
// material doubled to 32 bytes. Used by the miniMaker family and newer.
func encryptECB256(data []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(xyzKeyBase + xyzKeyBase))
	if err != nil {
		return nil, ErrCryptoUnavailable
	}
	padded := pkcs7Pad(data, block.BlockSize())
	out := make([]byte, len(padded))
	for off := 0; off < len(padded); off += block.BlockSize() {
		block.Encrypt(out[off:off+block.BlockSize()], padded[off:off+block.BlockSize()])
	}
	return out, nil
}

// decryptECB256 reverses encryptECB256 without removing padding; the
// caller strips PKCS#7 padding separately since the decoder tolerates
// malformed padding.
func decryptECB256(data []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(xyzKeyBase + xyzKeyBase))
	if err != nil {
		return nil, ErrCryptoUnavailable
	}
	bs := block.BlockSize()
	if len(data)%bs != 0 {
		return nil, ErrCryptoUnavailable
	}
	out := make([]byte, len(data))
	for off := 0; off < len(data); off += bs {
		block.Decrypt(out[off:off+bs], data[off:off+bs])
	}
	return out, nil
}

// encryptCBC128 encrypts data with AES-128-CBC, a zero IV and the raw
// 16-byte XYZ key. Used by the older Jr/Pro family, always over a
// zip-wrapped body (see zip.go).
func encryptCBC128(data []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(xyzKeyBase))
	if err != nil {
		return nil, ErrCryptoUnavailable
	}
	padded := pkcs7Pad(data, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, zeroIV).CryptBlocks(out, padded)
	return out, nil
}

// decryptCBC128 reverses encryptCBC128, again leaving padding intact.
func decryptCBC128(data []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(xyzKeyBase))
	if err != nil {
		return nil, ErrCryptoUnavailable
	}
	bs := block.BlockSize()
	if len(data) == 0 || len(data)%bs != 0 {
		return nil, ErrCryptoUnavailable
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, zeroIV).CryptBlocks(out, data)
	return out, nil
}
