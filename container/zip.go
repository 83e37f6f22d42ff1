package container

import (
	"archive/zip"
	"bytes"
	"io"
)

// zipEntryName is the single logical file name firmware expects inside a
// CBC128Zip body.
const zipEntryName = "model.gcode"

// packZipEntry wraps data as a single Deflate-compressed zip entry named
// "model.gcode", for the CBC128Zip cipher class only.
func packZipEntry(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   zipEntryName,
		Method: zip.Deflate,
	})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unpackZipEntry reads the first entry of a zip archive. It returns
// ok=false (no error) if data doesn't parse as a zip at all — the CBC128Zip
// decoder falls back to treating the buffer as raw G-code in that case, a
// tolerated quirk of older firmware output.
func unpackZipEntry(data []byte) (contents []byte, ok bool) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil || len(zr.File) == 0 {
		return nil, false
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, false
	}
	return out, true
}
