// SPDX-License-Identifier: GPL-3.0-or-later
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
)

const (
	purgeInterval       = time.Hour
	defaultPollInterval = 5 * time.Minute
)

// Service keeps the syncer cycling. Every account runs on its poll
// interval, idle notifications and manual triggers squeeze in extra cycles
// and completed queue entries are purged on the side. Cycles across
// accounts share the syncer's concurrency bound.
type Service struct {
	syncer   *Syncer
	watchers map[string]domain.Watcher

	// kicks holds one slot per account. A kick during a running cycle is
	// held for exactly one follow-up cycle, more arrive as duplicates.
	kicks map[string]chan struct{}

	// sem caps how many account cycles run at once, all poll loops share it.
	sem *semaphore.Weighted

	l *logrus.Logger
}

func NewService(syncer *Syncer, watchers map[string]domain.Watcher) *Service {
	kicks := map[string]chan struct{}{}
	for _, account := range syncer.accounts {
		kicks[account.Id] = make(chan struct{}, 1)
	}

	return &Service{
		syncer:   syncer,
		watchers: watchers,
		kicks:    kicks,
		sem:      semaphore.NewWeighted(int64(syncer.configuration.Concurrency)),
		l:        log.Logger(log.LOG_SYNC),
	}
}

// Notify requests an out-of-band cycle for the account. It never blocks and
// tolerates unknown accounts, watcher callbacks race account removal.
func (s *Service) Notify(accountId string) {
	kick, ok := s.kicks[accountId]
	if !ok {
		return
	}

	select {
	case kick <- struct{}{}:
	default:
	}
}

// TriggerSync is Notify for callers that care whether the account exists.
func (s *Service) TriggerSync(accountId string) error {
	if _, ok := s.kicks[accountId]; !ok {
		return fmt.Errorf("account %s does not exist", accountId)
	}

	s.Notify(accountId)
	return nil
}

// Run starts the watchers and cycles all accounts until ctx is canceled.
// Shutdown stops the watchers first so notifications quiesce before the
// account loops wind down.
func (s *Service) Run(ctx context.Context) error {
	for _, account := range s.syncer.accounts {
		last, err := s.syncer.LastSyncTime(account.Id)
		if err != nil {
			s.l.WithFields(logrus.Fields{"account": account.Id}).Warn("Could not read sync watermark: ", err)
			continue
		}
		if last.IsZero() {
			s.l.WithFields(logrus.Fields{"account": account.Id}).Info("Account has never synced")
		} else {
			s.l.WithFields(logrus.Fields{"account": account.Id, "lastsync": last}).Info("Resuming account")
		}
	}

	var started []domain.Watcher
	for id, watcher := range s.watchers {
		err := watcher.Start()
		if err != nil {
			s.l.WithFields(logrus.Fields{"account": id}).Warn("Could not start watcher, account falls back to polling: ", err)
			continue
		}
		started = append(started, watcher)
		s.l.WithFields(logrus.Fields{"account": id}).Info("Watching for remote changes")
	}

	var wg sync.WaitGroup
	for _, account := range s.syncer.accounts {
		account := account
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.accountLoop(ctx, account)
		}()
	}

	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	for {
		select {
		case <-ctx.Done():
			for _, watcher := range started {
				watcher.Stop()
			}
			wg.Wait()
			s.l.Info("Sync service stopped")
			return nil
		case <-purge.C:
			purged, err := s.syncer.queue.PurgeCompleted()
			if err != nil {
				s.l.Warn("Could not purge completed operations: ", err)
			} else if purged > 0 {
				s.l.WithFields(logrus.Fields{"ops": purged}).Debug("Purged completed operations")
			}
		}
	}
}

// accountLoop cycles one account, first immediately, then on the poll
// interval or whenever a kick arrives. Cycles for one account never
// overlap, cycles across accounts wait for a semaphore slot.
func (s *Service) accountLoop(ctx context.Context, account domain.Account) {
	interval := account.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	kick := s.kicks[account.Id]
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		case <-kick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}

		err := s.sem.Acquire(ctx, 1)
		if err != nil {
			return
		}
		_, err = s.syncer.SyncAccount(ctx, account)
		s.sem.Release(1)
		if err != nil && ctx.Err() != nil {
			return
		}

		timer.Reset(interval)
	}
}
