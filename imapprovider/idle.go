// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=idle_mocks_test.go -package=imapprovider -source idle.go
import (
	"fmt"
	"sync"
	"time"

	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"

	"github.com/mailkeel/mailkeel/log"
)

const (
	// Servers may drop IDLE sessions held longer than 30 minutes (RFC 2177),
	// renew just under that.
	idleRenewInterval = 29 * time.Minute

	idleBackoffMin = time.Second
	idleBackoffMax = time.Minute
)

// ErrIdleUnsupported tells the caller to fall back to polling.
var ErrIdleUnsupported = fmt.Errorf("server does not support IDLE")

type watchState int

const (
	stateConnecting watchState = iota
	stateIdling
	stateStopped
)

// idleConn is the connection surface the watcher needs. The watcher owns a
// dedicated connection, separate from the pooled command connections.
type idleConn interface {
	Select(folder string) (uint32, error)
	SupportIdle() (bool, error)
	Idle(stop <-chan struct{}) error
	Updates() <-chan client.Update
	Logout() error
}

// IdleWatcher holds an IDLE session on one folder and calls notify for every
// mailbox update. Dropped sessions are reconnected with exponential backoff,
// and one notify fires after each reconnect for mail that arrived while
// disconnected.
type IdleWatcher struct {
	accountId string
	folder    string
	dial      func() (idleConn, error)
	notify    func()
	l         *logrus.Logger

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  bool

	mu    sync.Mutex
	state watchState
}

func NewIdleWatcher(accountId string, dial func() (idleConn, error), notify func()) *IdleWatcher {
	return &IdleWatcher{
		accountId: accountId,
		folder:    "INBOX",
		dial:      dial,
		notify:    notify,
		l:         log.Logger(log.LOG_IMAP),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start dials the watch connection and begins watching in the background.
// ErrIdleUnsupported is returned when the server lacks the capability.
func (w *IdleWatcher) Start() error {
	c, err := w.dial()
	if err != nil {
		return fmt.Errorf("could not connect for watching: %w", err)
	}

	supported, err := c.SupportIdle()
	if err != nil {
		_ = c.Logout()
		return fmt.Errorf("could not check for IDLE support: %w", err)
	}
	if !supported {
		_ = c.Logout()
		return ErrIdleUnsupported
	}

	w.started = true
	go w.run(c)

	return nil
}

// Stop ends the watch session and blocks until the connection is closed.
func (w *IdleWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	if w.started {
		<-w.done
	}
}

func (w *IdleWatcher) run(c idleConn) {
	defer close(w.done)

	backoff := idleBackoffMin
	firstSession := true

	for {
		if c == nil {
			w.setState(stateConnecting)
			var err error
			c, err = w.dial()
			if err != nil {
				w.l.WithFields(logrus.Fields{"account": w.accountId}).Warn("Could not reconnect watch connection: ", err)
				if !w.sleep(backoff) {
					w.setState(stateStopped)
					return
				}
				backoff = nextBackoff(backoff)
				continue
			}

			if !firstSession {
				// Mail may have arrived while disconnected.
				w.notify()
			}
		}

		healthy, err := w.watch(c)
		c = nil
		firstSession = false

		if err == nil {
			w.setState(stateStopped)
			return
		}
		w.l.WithFields(logrus.Fields{"account": w.accountId}).Warn("Watch session ended: ", err)

		if healthy {
			backoff = idleBackoffMin
		}
		if !w.sleep(backoff) {
			w.setState(stateStopped)
			return
		}
		backoff = nextBackoff(backoff)
	}
}

// watch runs one IDLE session to completion. healthy reports whether the
// session got as far as idling, a nil error means stop was requested.
func (w *IdleWatcher) watch(c idleConn) (healthy bool, err error) {
	defer func() {
		_ = c.Logout()
	}()

	_, err = c.Select(w.folder)
	if err != nil {
		return false, fmt.Errorf("could not select %s for watching: %w", w.folder, err)
	}

	w.setState(stateIdling)

	stopIdle := make(chan struct{})
	idleDone := make(chan error, 1)
	go func() {
		idleDone <- c.Idle(stopIdle)
	}()

	for {
		select {
		case update := <-c.Updates():
			if _, ok := update.(*client.MailboxUpdate); ok {
				w.notify()
			}
		case err := <-idleDone:
			if err == nil {
				err = fmt.Errorf("idle ended unexpectedly")
			}
			return true, err
		case <-w.stop:
			close(stopIdle)
			<-idleDone
			return true, nil
		}
	}
}

// sleep waits for d and reports false when stop fired instead.
func (w *IdleWatcher) sleep(d time.Duration) bool {
	select {
	case <-w.stop:
		return false
	case <-time.After(d):
		return true
	}
}

func (w *IdleWatcher) setState(s watchState) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

func (w *IdleWatcher) currentState() watchState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > idleBackoffMax {
		return idleBackoffMax
	}
	return d
}
