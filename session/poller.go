package session

import (
	"sync/atomic"
	"time"
)

// statusPoller periodically issues "XYZv3/query=a" in the background and
// updates the owning Session's status snapshot: a stop channel, a
// ticker-driven run loop, and a guard that skips the tick while an upload
// is in progress. A foreground command is not skipped around: the poll
// waits for it on the transport mutex.
type statusPoller struct {
	session  *Session
	interval time.Duration
	stopCh   chan struct{}
	done     chan struct{}
}

func newStatusPoller(s *Session, interval time.Duration) *statusPoller {
	return &statusPoller{
		session:  s,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *statusPoller) start() {
	go p.run()
}

func (p *statusPoller) stop() {
	close(p.stopCh)
	<-p.done
}

func (p *statusPoller) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

// poll skips its tick entirely if an upload is in flight or the session
// isn't connected, rather than blocking on the transport mutex — an
// upload block can legitimately hold it for seconds at a time.
func (p *statusPoller) poll() {
	if atomic.LoadInt32(&p.session.uploading) != 0 {
		return
	}
	if !p.session.Connected() {
		return
	}

	reply, err := p.session.SendCommand("XYZv3/query=a")
	if err != nil {
		return
	}

	st := parseStatus(reply)
	p.session.statusMu.Lock()
	p.session.status = st
	p.session.statusMu.Unlock()
}
