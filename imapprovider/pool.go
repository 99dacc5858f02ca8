// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=pool_mocks_test.go -package=imapprovider -source pool.go
import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
)

const (
	defaultIdleAfter = 5 * time.Minute
	reapInterval     = 30 * time.Second
)

// conn is the command surface the pool hands out. A connection serves a
// single account and is not safe for concurrent use; Acquire serializes
// callers per account.
type conn interface {
	Select(folder string) (uint32, error)
	ListFolders() ([]domain.FolderInfo, error)
	CreateFolder(name string) error
	UidsSince(lastUid uint32) ([]uint32, error)
	UidExists(uid uint32) (bool, error)
	FetchMessages(uids []uint32) ([]*fetchedMail, error)
	MarkSeen(uids []uint32, seen bool) error
	StoreKeywords(uids []uint32, add bool, keywords []string) error
	Move(uids []uint32, folder string) error
	Delete(uids []uint32) error
	Append(folder string, m []byte) error
	Noop() error
	Logout() error
}

// Dialer opens a fresh authenticated connection for one account.
type Dialer func() (conn, error)

type pooledConn struct {
	dial Dialer

	// mu is held from Acquire until Release so commands on one account
	// never interleave.
	mu       sync.Mutex
	conn     conn
	lastUsed time.Time
}

// Pool keeps at most one live connection per account. Connections are
// probed with NOOP before reuse and closed after idleAfter without use.
type Pool struct {
	idleAfter time.Duration
	onReset   func(accountId string)
	l         *logrus.Logger

	mu       sync.Mutex
	accounts map[string]*pooledConn

	now  func() time.Time
	stop chan struct{}
	done chan struct{}
}

// NewPool creates a pool and starts its idle reaper. onReset is called
// whenever an account's connection is discarded, may be nil.
func NewPool(idleAfter time.Duration, onReset func(accountId string)) *Pool {
	if idleAfter <= 0 {
		idleAfter = defaultIdleAfter
	}

	p := &Pool{
		idleAfter: idleAfter,
		onReset:   onReset,
		l:         log.Logger(log.LOG_IMAP),
		accounts:  map[string]*pooledConn{},
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go p.reap()

	return p
}

// Register installs the dialer for an account. Registering again replaces
// the dialer but keeps a live connection.
func (p *Pool) Register(accountId string, dial Dialer) {
	p.mu.Lock()
	pc, ok := p.accounts[accountId]
	if !ok {
		p.accounts[accountId] = &pooledConn{dial: dial}
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	pc.mu.Lock()
	pc.dial = dial
	pc.mu.Unlock()
}

// Acquire returns a live connection for the account along with the
// exclusive right to use it. Callers must Release afterwards.
func (p *Pool) Acquire(ctx context.Context, accountId string) (conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	pc, ok := p.accounts[accountId]
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no dialer registered for account %s", accountId)
	}

	pc.mu.Lock()

	if pc.conn != nil {
		err := pc.conn.Noop()
		if err != nil {
			p.l.WithFields(logrus.Fields{"account": accountId}).Warn("Connection failed liveness probe, redialing: ", err)
			_ = pc.conn.Logout()
			pc.conn = nil
			p.fireReset(accountId)
		}
	}

	if pc.conn == nil {
		c, err := pc.dial()
		if err != nil {
			pc.mu.Unlock()
			return nil, fmt.Errorf("could not connect account %s: %w", accountId, err)
		}
		pc.conn = c
	}

	pc.lastUsed = p.now()
	return pc.conn, nil
}

// Release gives up the exclusive use acquired for the account.
func (p *Pool) Release(accountId string) {
	p.mu.Lock()
	pc, ok := p.accounts[accountId]
	p.mu.Unlock()
	if !ok {
		return
	}

	pc.lastUsed = p.now()
	pc.mu.Unlock()
}

// CloseAccount logs out and drops the account's connection.
func (p *Pool) CloseAccount(accountId string) {
	p.mu.Lock()
	pc, ok := p.accounts[accountId]
	p.mu.Unlock()
	if !ok {
		return
	}

	pc.mu.Lock()
	if pc.conn != nil {
		_ = pc.conn.Logout()
		pc.conn = nil
		p.fireReset(accountId)
	}
	pc.mu.Unlock()
}

// Close stops the reaper and closes all connections.
func (p *Pool) Close() {
	if p.stop != nil {
		close(p.stop)
		<-p.done
	}

	p.mu.Lock()
	ids := make([]string, 0, len(p.accounts))
	for id := range p.accounts {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	for _, id := range ids {
		p.CloseAccount(id)
	}
}

func (p *Pool) fireReset(accountId string) {
	if p.onReset != nil {
		p.onReset(accountId)
	}
}

func (p *Pool) reap() {
	defer close(p.done)

	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.reapIdle()
		}
	}
}

func (p *Pool) reapIdle() {
	type entry struct {
		id string
		pc *pooledConn
	}

	p.mu.Lock()
	entries := make([]entry, 0, len(p.accounts))
	for id, pc := range p.accounts {
		entries = append(entries, entry{id: id, pc: pc})
	}
	p.mu.Unlock()

	cutoff := p.now().Add(-p.idleAfter)
	for _, e := range entries {
		// A connection in use is never idle, skip instead of blocking.
		if !e.pc.mu.TryLock() {
			continue
		}

		if e.pc.conn != nil && e.pc.lastUsed.Before(cutoff) {
			p.l.WithFields(logrus.Fields{"account": e.id}).Debug("Closing connection idle past limit")
			_ = e.pc.conn.Logout()
			e.pc.conn = nil
			p.fireReset(e.id)
		}
		e.pc.mu.Unlock()
	}
}
