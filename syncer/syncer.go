// SPDX-License-Identifier: GPL-3.0-or-later

// Package syncer drives the reconciliation cycles. One cycle per account
// pushes queued user intent first, then pulls provider truth, classifies
// what is new and pushes tag labels back. The fetch watermark only advances
// when all of that went through, an aborted cycle re-covers the same window
// the next time around.
package syncer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
	"github.com/mailkeel/mailkeel/mail"
)

type Syncer struct {
	store      domain.Store
	queue      domain.OperationQueue
	classifier domain.ConcurrentClassifier

	accounts  []domain.Account
	providers map[string]domain.Provider

	configuration *configuration

	// cycles counts runs per account for the full reconciliation cadence.
	cycles   map[string]int
	cyclesMu sync.Mutex

	l *logrus.Logger
}

func NewSyncer(store domain.Store, queue domain.OperationQueue, classifier domain.ConcurrentClassifier, accounts []domain.Account, providers map[string]domain.Provider, configFunc ...ConfigFunc) (*Syncer, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	for _, account := range accounts {
		if _, ok := providers[account.Id]; !ok {
			return nil, fmt.Errorf("account %s has no provider", account.Id)
		}
	}

	return &Syncer{
		store:         store,
		queue:         queue,
		classifier:    classifier,
		accounts:      accounts,
		providers:     providers,
		configuration: config,
		cycles:        map[string]int{},
		l:             log.Logger(log.LOG_SYNC),
	}, nil
}

// AccountResult is one account's share of a sync run. Err is the fatal
// error that aborted the cycle, counts cover what completed before it.
type AccountResult struct {
	AccountId  string
	Fetched    int
	Classified int
	Labeled    int
	Ops        domain.DrainStats
	Err        error
}

// SyncResult aggregates one run over all accounts.
type SyncResult struct {
	RunId    string
	Started  time.Time
	Duration time.Duration

	PerAccount map[string]*AccountResult

	TotalFetched    int
	TotalClassified int
	TotalLabeled    int
	OpsProcessed    int
	OpsFailed       int
	Errors          []error
}

// SyncAll runs one cycle for every account, bounded-concurrent. A failing
// account is recorded in the result and never stops its siblings.
func (s *Syncer) SyncAll(ctx context.Context) (*SyncResult, error) {
	started := s.configuration.Now()
	result := &SyncResult{
		RunId:      uuid.NewString(),
		Started:    started,
		PerAccount: map[string]*AccountResult{},
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.configuration.Concurrency)

	for _, account := range s.accounts {
		account := account
		group.Go(func() error {
			accountResult := s.syncIsolated(groupCtx, account)

			mu.Lock()
			defer mu.Unlock()
			result.PerAccount[account.Id] = accountResult
			result.TotalFetched += accountResult.Fetched
			result.TotalClassified += accountResult.Classified
			result.TotalLabeled += accountResult.Labeled
			result.OpsProcessed += accountResult.Ops.Processed
			result.OpsFailed += accountResult.Ops.Failed
			if accountResult.Err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("%s: %w", account.Id, accountResult.Err))
			}
			return nil
		})
	}

	// The group error is always nil, failures live in the result.
	_ = group.Wait()

	result.Duration = s.configuration.Now().Sub(started)
	s.l.WithFields(logrus.Fields{
		"run":        result.RunId,
		"duration":   result.Duration,
		"fetched":    result.TotalFetched,
		"classified": result.TotalClassified,
		"labeled":    result.TotalLabeled,
		"ops":        result.OpsProcessed,
		"errors":     len(result.Errors),
	}).Info("Sync run finished")

	return result, nil
}

func (s *Syncer) syncIsolated(ctx context.Context, account domain.Account) (result *AccountResult) {
	defer func() {
		if r := recover(); r != nil {
			s.l.WithFields(logrus.Fields{"account": account.Id, "panic": r}).Error("Sync cycle panicked")
			result = &AccountResult{AccountId: account.Id, Err: fmt.Errorf("sync cycle panicked: %v", r)}
		}
	}()

	result, _ = s.SyncAccount(ctx, account)
	return result
}

// SyncAccount runs one reconciliation cycle. The returned error equals the
// result's Err, callers picking counts out of a failed cycle use the result.
func (s *Syncer) SyncAccount(ctx context.Context, account domain.Account) (*AccountResult, error) {
	result := &AccountResult{AccountId: account.Id}

	provider, ok := s.providers[account.Id]
	if !ok {
		result.Err = fmt.Errorf("account %s has no provider", account.Id)
		return result, result.Err
	}

	ctx, cancel := context.WithTimeout(ctx, s.configuration.CycleTimeout)
	defer cancel()

	start := s.configuration.Now()
	fullSync := s.beginCycle(account.Id)
	l := s.l.WithFields(logrus.Fields{"account": account.Id})
	if fullSync {
		l.Info("Starting full reconciliation cycle")
	}

	// User intent goes out before remote discovery comes in.
	stats, err := s.queue.Drain(ctx, account.Id, provider, s.configuration.DrainBatch)
	result.Ops = stats
	if err != nil {
		return s.abort(result, fmt.Errorf("could not drain pending operations: %w", err))
	}

	items, states, err := s.fetchAll(ctx, account, provider, fullSync)
	if err != nil {
		return s.abort(result, err)
	}
	result.Fetched = len(items)

	result.Classified, err = s.classify(account, items)
	if err != nil {
		return s.abort(result, err)
	}

	result.Labeled, err = s.pushLabels(ctx, account, provider, items)
	if err != nil {
		return s.abort(result, err)
	}

	// Everything above went through, the next cycle may start past this one.
	for _, state := range states {
		err = s.store.SaveFolderState(state)
		if err != nil {
			return s.abort(result, fmt.Errorf("could not save folder state: %w", err))
		}
	}
	err = s.store.SaveLastSync(account.Id, s.configuration.Now())
	if err != nil {
		return s.abort(result, fmt.Errorf("could not save sync watermark: %w", err))
	}

	l.WithFields(logrus.Fields{
		"duration":   s.configuration.Now().Sub(start),
		"fetched":    result.Fetched,
		"classified": result.Classified,
		"labeled":    result.Labeled,
		"ops":        result.Ops.Processed,
	}).Info("Account cycle finished")

	return result, nil
}

func (s *Syncer) abort(result *AccountResult, err error) (*AccountResult, error) {
	s.l.WithFields(logrus.Fields{"account": result.AccountId}).Warn("Aborting sync cycle: ", err)
	result.Err = err
	return result, err
}

// beginCycle advances the account's cycle counter and reports whether this
// cycle fetches from a zeroed cursor.
func (s *Syncer) beginCycle(accountId string) bool {
	s.cyclesMu.Lock()
	defer s.cyclesMu.Unlock()

	s.cycles[accountId]++
	every := s.configuration.FullSyncEvery
	return every > 0 && s.cycles[accountId]%every == 0
}

// fetchedItem pairs one fetched mail's local row with the raw body and the
// tag set it had before this cycle, for the classify and label steps.
type fetchedItem struct {
	msg     *domain.Message
	raw     []byte
	oldTags []string
}

func (s *Syncer) fetchAll(ctx context.Context, account domain.Account, provider domain.Provider, fullSync bool) ([]*fetchedItem, []*domain.FolderState, error) {
	var items []*fetchedItem
	var states []*domain.FolderState
	seen := map[string]bool{}

	for _, folder := range account.Folders {
		point := domain.FetchPoint{}
		if !fullSync {
			state, err := s.store.FolderState(account.Id, folder)
			if err != nil {
				return nil, nil, fmt.Errorf("could not load folder state: %w", err)
			}
			if state != nil {
				point = domain.FetchPoint{Since: state.Since, UidValidity: state.UidValidity, LastUid: state.LastUid}
			}
		}

		fetched, err := provider.FetchMessages(ctx, folder, point)
		if err != nil {
			return nil, nil, fmt.Errorf("could not fetch folder %s: %w", folder, err)
		}

		hashes := make([]string, 0, len(fetched.Messages))
		saves := make([]domain.SaveMessage, 0, len(fetched.Messages))
		for _, m := range fetched.Messages {
			hashes = append(hashes, m.MailIdHash)
			saves = append(saves, domain.SaveMessage{
				Folder:         folder,
				ProviderFolder: m.Ref.ProviderFolder,
				Uid:            m.Ref.Uid,
				ProviderId:     m.Ref.ProviderId,
				MailIdHash:     m.MailIdHash,
				Subject:        m.Subject,
				Sender:         m.Sender,
				Date:           m.Date,
				IsUnread:       m.IsUnread,
				Labels:         m.Labels,
			})
		}

		// A page can hold both new mail and re-listed known mail, a full
		// reconciliation lists everything. The split is checked before the
		// upsert rewrites the rows.
		newCount := 0
		if len(hashes) > 0 {
			known, err := s.store.HashesExist(account.Id, hashes)
			if err != nil {
				return nil, nil, fmt.Errorf("could not check known mails: %w", err)
			}
			for _, hash := range hashes {
				if !known[hash] {
					newCount++
				}
			}
		}

		if len(saves) > 0 {
			err = s.store.UpsertMessages(account.Id, saves)
			if err != nil {
				return nil, nil, fmt.Errorf("could not save fetched mails: %w", err)
			}
		}

		for _, m := range fetched.Messages {
			// A mail can show up under two logical folders, it gets one row
			// and one classification.
			if seen[m.MailIdHash] {
				continue
			}
			seen[m.MailIdHash] = true

			row, err := s.store.FindMessageByHash(account.Id, m.MailIdHash)
			if err != nil {
				return nil, nil, fmt.Errorf("could not reload fetched mail: %w", err)
			}
			if row == nil {
				continue
			}

			items = append(items, &fetchedItem{msg: row, raw: m.RawMail, oldTags: row.Tags})
		}

		states = append(states, &domain.FolderState{
			AccountId:   account.Id,
			Name:        folder,
			UidValidity: fetched.Next.UidValidity,
			LastUid:     fetched.Next.LastUid,
			Since:       fetched.Next.Since,
		})

		if len(fetched.Messages) > 0 {
			s.l.WithFields(logrus.Fields{"account": account.Id, "folder": folder, "mails": len(fetched.Messages), "new": newCount}).Info("Fetched mails")
		}
	}

	return items, states, nil
}

// classify tags the unclassified part of the fetched batch. A single mail
// failing stays unclassified until a full reconciliation refetches it. The
// whole batch failing means the collaborator is down, that aborts the cycle
// so the batch is retried from the unadvanced watermark.
func (s *Syncer) classify(account domain.Account, items []*fetchedItem) (int, error) {
	var pending []*fetchedItem
	for _, item := range items {
		if !item.msg.Classified && len(item.raw) > 0 {
			pending = append(pending, item)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	raws := make([][]byte, len(pending))
	for i, item := range pending {
		raws[i] = item.raw
	}
	results := s.classifier.ClassifyAll(raws, s.configuration.ClassifyConcurrency)

	classified, failed := 0, 0
	for i, item := range pending {
		result := results[i]
		if result.Error != nil {
			failed++
			s.l.WithFields(logrus.Fields{"account": account.Id, "subject": mail.ShortSubject(item.msg.Subject)}).Warn("Could not classify mail: ", result.Error)
			continue
		}

		err := s.store.SetMessageTags(item.msg.Id, result.Tags, result.Priority)
		if err != nil {
			return classified, fmt.Errorf("could not save tags: %w", err)
		}

		s.l.WithFields(logrus.Fields{"account": account.Id, "subject": mail.ShortSubject(item.msg.Subject), "tags": result.Tags, "priority": result.Priority}).Debug("Classified mail")
		item.msg.Tags = result.Tags
		item.msg.Priority = result.Priority
		item.msg.Classified = true
		classified++
	}

	if failed == len(pending) {
		return 0, fmt.Errorf("classifier failed for all %d mails: %w", failed, results[0].Error)
	}

	return classified, nil
}

// pushLabels sends the tag-derived label diff per mail. Only changes go
// out, a mail whose labels already carry its tags causes no call.
func (s *Syncer) pushLabels(ctx context.Context, account domain.Account, provider domain.Provider, items []*fetchedItem) (int, error) {
	labeled := 0
	for _, item := range items {
		if !item.msg.Classified {
			continue
		}

		add := missingLabels(item.msg.Tags, item.msg.Labels)
		dropped := missingLabels(item.oldTags, item.msg.Tags)
		remove := presentLabels(dropped, item.msg.Labels)
		if len(add) == 0 && len(remove) == 0 {
			continue
		}

		err := provider.ApplyLabels(ctx, item.msg.Ref(), add, remove)
		if domain.IsNotFound(err) || domain.IsUnsupported(err) {
			s.l.WithFields(logrus.Fields{"account": account.Id, "subject": mail.ShortSubject(item.msg.Subject)}).Warn("Could not push labels: ", err)
			continue
		}
		if err != nil {
			return labeled, fmt.Errorf("could not push labels: %w", err)
		}

		err = s.store.SetMessageLabels(item.msg.Id, mergeLabels(item.msg.Labels, add, remove))
		if err != nil {
			return labeled, fmt.Errorf("could not save pushed labels: %w", err)
		}
		labeled++
	}

	return labeled, nil
}

// missingLabels returns the labels in want that have is missing.
func missingLabels(want []string, have []string) []string {
	var missing []string
	for _, w := range want {
		if !containsLabel(have, w) {
			missing = append(missing, w)
		}
	}
	return missing
}

// presentLabels returns the labels in candidates that have carries.
func presentLabels(candidates []string, have []string) []string {
	var present []string
	for _, c := range candidates {
		if containsLabel(have, c) {
			present = append(present, c)
		}
	}
	return present
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

func mergeLabels(current []string, add []string, remove []string) []string {
	merged := make([]string, 0, len(current)+len(add))
	for _, l := range current {
		if !containsLabel(remove, l) {
			merged = append(merged, l)
		}
	}
	return append(merged, add...)
}
