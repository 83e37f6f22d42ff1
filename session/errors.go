package session

import (
	"errors"
	"fmt"
)

var (
	// ErrPortNotFound names the case of a requested device that can't be
	// resolved to a serial port. Connect does not return it: every failure
	// to open a device, a missing one included, is reported as
	// ErrPortOpenFailed.
	ErrPortNotFound = errors.New("session: port not found")
	// ErrPortOpenFailed wraps a lower-level error from opening the
	// serial device.
	ErrPortOpenFailed = errors.New("session: failed to open port")
	// ErrNotConnected is returned for any command issued on a session
	// that isn't connected.
	ErrNotConnected = errors.New("session: not connected")
	// ErrCommandTimeout is returned when no '$' terminator is observed
	// within the command timeout.
	ErrCommandTimeout = errors.New("session: command timed out")
	// ErrUploadRejected is returned when the printer answers the upload
	// initiation with an error token instead of "ok".
	ErrUploadRejected = errors.New("session: upload rejected by printer")
	// ErrTransportError wraps a lower-level I/O failure on the serial
	// connection.
	ErrTransportError = errors.New("session: transport error")
	// ErrInvalidAxis is returned by Jog for any axis other than x, y, or z.
	ErrInvalidAxis = errors.New("session: jog axis must be x, y, or z")
)

// BlockAckTimeoutError is returned when a chunked-upload block doesn't
// receive an "ok" acknowledgment within the upload timeout.
type BlockAckTimeoutError struct {
	BlockIndex uint32
}

func (e *BlockAckTimeoutError) Error() string {
	return fmt.Sprintf("session: timed out waiting for ack on block %d", e.BlockIndex)
}
