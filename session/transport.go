package session

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.bug.st/serial"
)

const (
	baudRate            = 115200
	commandTimeout      = 5 * time.Second
	settleDelay         = 500 * time.Millisecond
	defaultPollInterval = 4 * time.Second
	readChunkWindow     = 50 * time.Millisecond
)

// Lifecycle states for a Session.
type connState int32

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
)

// sessionLock enforces "only one session may exist per process": the
// firmware exposes a single serial endpoint, and two Sessions racing to
// own it would corrupt the command stream. This is a guard on Connect,
// not a hidden singleton — each Session is still an explicitly
// constructed, explicitly owned value.
var sessionLock int32

// ConnectResult is returned by Connect on success.
type ConnectResult struct {
	Model       string
	ModelNumber string
	Firmware    string
}

// Session owns exclusive access to one serial port for the lifetime of a
// connection. All command issuance, the background status poller, and
// upload framing are serialized through a single mutex so the poller can
// never interleave with a command or an upload block mid-frame.
type Session struct {
	device string

	mu    sync.Mutex // serializes all serial I/O
	port  serial.Port
	state int32 // connState, accessed atomically

	uploading int32 // atomic bool: poller skips its tick while set

	statusMu sync.RWMutex
	status   PrinterStatus

	pollInterval time.Duration
	poller       *statusPoller
}

// NewSession constructs an unconnected Session that polls status every
// pollInterval once connected. A zero or negative pollInterval falls back
// to the default 4-second interval. The caller owns the returned Session
// and should call Connect before issuing any commands.
func NewSession(pollInterval time.Duration) *Session {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Session{pollInterval: pollInterval}
}

// Connect opens the given serial device at 115200 8N1, drains any stale
// buffered data, waits for the line to settle, and starts the background
// status poller. It fails with an error wrapping ErrPortOpenFailed if the
// device can't be opened, or immediately if another Session in this
// process already holds the one-session lock.
func (s *Session) Connect(device string) (ConnectResult, error) {
	if !atomic.CompareAndSwapInt32(&sessionLock, 0, 1) {
		return ConnectResult{}, fmt.Errorf("session: another session is already connected in this process")
	}

	atomic.StoreInt32(&s.state, int32(stateConnecting))

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		atomic.StoreInt32(&s.state, int32(stateDisconnected))
		atomic.StoreInt32(&sessionLock, 0)
		return ConnectResult{}, fmt.Errorf("%w: %s: %v", ErrPortOpenFailed, device, err)
	}

	_ = port.SetReadTimeout(readChunkWindow)

	s.mu.Lock()
	s.device = device
	s.port = port
	s.mu.Unlock()

	_ = port.ResetInputBuffer()
	_ = port.ResetOutputBuffer()
	time.Sleep(settleDelay)

	atomic.StoreInt32(&s.state, int32(stateConnected))

	s.poller = newStatusPoller(s, s.pollInterval)
	s.poller.start()

	reply, err := s.SendCommand("XYZv3/query=a")
	if err != nil {
		log.Printf("session: initial status query failed: %v", err)
		return ConnectResult{Model: device}, nil
	}
	st := parseStatus(reply)
	s.statusMu.Lock()
	s.status = st
	s.statusMu.Unlock()

	return ConnectResult{
		Model:       st.DisplayName,
		ModelNumber: st.ModelNumber,
		Firmware:    st.FirmwareVersion,
	}, nil
}

// Disconnect is the cancellation primitive: it stops the poller, closes
// the serial handle (guaranteed before the session is considered
// released), and releases the one-session lock.
func (s *Session) Disconnect() error {
	if s.poller != nil {
		s.poller.stop()
	}

	s.mu.Lock()
	port := s.port
	s.port = nil
	s.mu.Unlock()

	atomic.StoreInt32(&s.state, int32(stateDisconnected))
	atomic.StoreInt32(&sessionLock, 0)

	if port == nil {
		return nil
	}
	return port.Close()
}

// Connected reports whether the session currently holds an open port.
func (s *Session) Connected() bool {
	return connState(atomic.LoadInt32(&s.state)) == stateConnected
}

// Status returns the most recent PrinterStatus snapshot. It is safe to
// call concurrently with an in-flight poll.
func (s *Session) Status() PrinterStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// SendCommand writes text+'\n' and reads until a '$' terminator appears
// or the command timeout elapses, returning the response with the '$'
// and surrounding whitespace stripped. The whole exchange is under the
// transport mutex, so it can never interleave with the poller or an
// upload block.
func (s *Session) SendCommand(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendCommandLocked(text, commandTimeout)
}

// sendCommandLocked assumes the caller already holds s.mu.
func (s *Session) sendCommandLocked(text string, timeout time.Duration) (string, error) {
	port := s.port
	if port == nil {
		return "", ErrNotConnected
	}

	if _, err := port.Write([]byte(text + "\n")); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransportError, err)
	}

	var buf bytes.Buffer
	deadline := time.Now().Add(timeout)
	chunk := make([]byte, 256)
	for time.Now().Before(deadline) {
		n, err := port.Read(chunk)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTransportError, err)
		}
		if n > 0 {
			buf.Write(chunk[:n])
			if bytes.ContainsRune(buf.Bytes(), '$') {
				break
			}
		}
	}

	raw := buf.String()
	if !strings.Contains(raw, "$") {
		return "", ErrCommandTimeout
	}

	return strings.TrimSpace(strings.ReplaceAll(raw, "$", "")), nil
}
