package session

import (
	"encoding/binary"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

const (
	uploadChunkSize  = 8192
	uploadAckTimeout = 30 * time.Second
)

// UploadProgress is reported after every block during Upload.
type UploadProgress struct {
	BlockIndex uint32
	BlockCount uint32
	BytesSent  int
	TotalBytes int
}

// ProgressFunc is called after each acknowledged block. It may be nil.
type ProgressFunc func(UploadProgress)

// Upload sends data to the printer as filename, framed as fixed-size
// blocks: a 4-byte big-endian block index, a 4-byte big-endian length,
// the block's bytes, and a 4-byte trailing zero. Each block is written
// and acknowledged before the next is sent; the poller is suspended for
// the duration so it can't interleave a status query mid-block.
//
// The upload handshake — initiation, each block, and the final
// "uploadDidFinish" — acknowledges with a raw "ok"/"err"/"error" token,
// never a '$' terminator, so it is scanned directly rather than going
// through the '$'-terminated text command protocol the rest of the
// session uses.
//
// The final handshake is best-effort: some firmware revisions don't
// answer it, so a timeout there is logged, not returned as an error, as
// long as every data block was acknowledged.
func (s *Session) Upload(filename string, data []byte, progress ProgressFunc) error {
	if !s.Connected() {
		return ErrNotConnected
	}

	atomic.StoreInt32(&s.uploading, 1)
	defer atomic.StoreInt32(&s.uploading, 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return ErrNotConnected
	}

	log.Printf("upload: uploading %s (%d bytes)", filename, len(data))

	initCmd := fmt.Sprintf("XYZv3/upload=%s,%d", filename, len(data))
	if _, err := s.port.Write([]byte(initCmd + "\n")); err != nil {
		return fmt.Errorf("%w: upload initiation: %v", ErrTransportError, err)
	}
	if !s.waitForAck(commandTimeout) {
		log.Printf("upload: printer rejected upload initiation")
		return fmt.Errorf("%w: %s", ErrUploadRejected, initCmd)
	}

	blockCount := uint32((len(data) + uploadChunkSize - 1) / uploadChunkSize)
	if blockCount == 0 {
		blockCount = 1
	}

	sent := 0
	for idx := uint32(0); sent < len(data) || (len(data) == 0 && idx == 0); idx++ {
		end := sent + uploadChunkSize
		if end > len(data) {
			end = len(data)
		}
		block := data[sent:end]
		frame := buildUploadFrame(idx, block)

		if _, err := s.port.Write(frame); err != nil {
			return fmt.Errorf("%w: block %d: %v", ErrTransportError, idx, err)
		}

		if !s.waitForAck(uploadAckTimeout) {
			log.Printf("upload: no ack for block %d", idx)
			return &BlockAckTimeoutError{BlockIndex: idx}
		}

		sent = end
		if progress != nil {
			progress(UploadProgress{
				BlockIndex: idx,
				BlockCount: blockCount,
				BytesSent:  sent,
				TotalBytes: len(data),
			})
		}

		if len(data) == 0 {
			break
		}
	}

	if _, err := s.port.Write([]byte("XYZv3/uploadDidFinish\n")); err != nil {
		return fmt.Errorf("%w: uploadDidFinish: %v", ErrTransportError, err)
	}
	if !s.waitForAck(uploadAckTimeout) {
		// Best-effort: not every firmware revision acknowledges this.
		log.Printf("upload: no final ack for uploadDidFinish (print may still start)")
	}

	log.Printf("upload: finished %s: %d blocks sent", filename, blockCount)
	return nil
}

// waitForAck reads raw bytes off the port until the upload handshake's own
// ack token appears — "ok" for success, "err"/"error" for an explicit
// rejection — or the timeout elapses with neither ever appearing (an
// implicit failure, not a success by default).
func (s *Session) waitForAck(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	var acc strings.Builder
	chunk := make([]byte, 256)

	for time.Now().Before(deadline) {
		n, err := s.port.Read(chunk)
		if err != nil {
			return false
		}
		if n == 0 {
			continue
		}
		acc.Write(chunk[:n])
		if done, ok := classifyAck(acc.String()); done {
			return ok
		}
	}
	return false
}

// classifyAck inspects a growing ack buffer and reports whether a decision
// can be made yet (done) and, if so, what it is (ok). "ok" is checked
// before "err"/"error", so a buffer holding both counts as accepted.
// waitForAck calls it after every read, so an "err" that arrives in an
// earlier read than the "ok" decides the ack as a failure.
func classifyAck(buf string) (done, ok bool) {
	lower := strings.ToLower(buf)
	if strings.Contains(lower, "ok") {
		return true, true
	}
	if strings.Contains(lower, "err") {
		return true, false
	}
	return false, false
}

// buildUploadFrame frames one upload block as a 4-byte big-endian block
// index, a 4-byte big-endian length, the block's bytes, and a trailing
// 4-byte zero field.
func buildUploadFrame(blockIndex uint32, block []byte) []byte {
	frame := make([]byte, 4+4+len(block)+4)
	binary.BigEndian.PutUint32(frame[0:4], blockIndex)
	binary.BigEndian.PutUint32(frame[4:8], uint32(len(block)))
	copy(frame[8:8+len(block)], block)
	return frame
}
