// SPDX-License-Identifier: GPL-3.0-or-later
package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"

	"github.com/sirupsen/logrus"
)

// Queue persists intended provider mutations and pushes them out during
// drain. Enqueue coalesces against the not-yet-executed tail of the queue so
// a mutation that cancels out locally never reaches the provider.
type Queue struct {
	store domain.Store
	l     *logrus.Logger

	mu       sync.Mutex
	inFlight map[int64]bool

	now func() time.Time
}

func NewQueue(store domain.Store) *Queue {
	return &Queue{
		store:    store,
		l:        log.Logger(log.LOG_QUEUE),
		inFlight: map[int64]bool{},
		now:      time.Now,
	}
}

func (q *Queue) Enqueue(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	live, err := q.store.LiveOps(msg.Id)
	if err != nil {
		return 0, fmt.Errorf("could not load live operations: %w", err)
	}

	// A pending permanent delete supersedes everything that follows it.
	for _, op := range live {
		if op.Kind == domain.OpPermanentDelete {
			q.l.WithFields(logrus.Fields{"Op": kind, "Message": msg.Id}).Debug("Dropped operation superseded by pending delete")
			return op.Id, nil
		}
	}

	switch kind {
	case domain.OpMarkRead, domain.OpMarkUnread:
		return q.enqueueToggle(msg, kind, live)
	case domain.OpMoveToTrash, domain.OpRestoreFromTrash:
		return q.enqueueMove(msg, kind, folderArg, live)
	case domain.OpPermanentDelete:
		return q.enqueueDelete(msg, live)
	}

	return 0, fmt.Errorf("unknown operation kind %q", kind)
}

// enqueueToggle nets read-state flips against each other. Two flips cancel
// out entirely when the provider-confirmed state already matches the target.
func (q *Queue) enqueueToggle(msg *domain.Message, kind domain.OpKind, live []*domain.PendingOp) (int64, error) {
	target := kind == domain.OpMarkUnread

	for _, op := range live {
		if op.Kind != domain.OpMarkRead && op.Kind != domain.OpMarkUnread {
			continue
		}
		if op.Kind == kind {
			return op.Id, nil
		}
		if q.inFlight[op.Id] {
			continue
		}

		err := q.store.DeleteOp(op.Id)
		if err != nil {
			return 0, fmt.Errorf("could not cancel opposite toggle: %w", err)
		}
		q.l.WithFields(logrus.Fields{"Op": kind, "Canceled": op.Kind, "Message": msg.Id}).Debug("Toggles canceled out")

		if target == msg.SyncedUnread {
			return 0, nil
		}
		break
	}

	if target == msg.SyncedUnread && !hasToggle(live) {
		return 0, nil
	}

	return q.insert(msg, kind, "")
}

func (q *Queue) enqueueMove(msg *domain.Message, kind domain.OpKind, folderArg string, live []*domain.PendingOp) (int64, error) {
	opposite := domain.OpRestoreFromTrash
	if kind == domain.OpRestoreFromTrash {
		opposite = domain.OpMoveToTrash
	}

	for _, op := range live {
		if op.Kind == kind {
			return op.Id, nil
		}
		if op.Kind != opposite || q.inFlight[op.Id] {
			continue
		}

		err := q.store.DeleteOp(op.Id)
		if err != nil {
			return 0, fmt.Errorf("could not cancel opposite move: %w", err)
		}
		q.l.WithFields(logrus.Fields{"Op": kind, "Canceled": op.Kind, "Message": msg.Id}).Debug("Moves canceled out")
		return 0, nil
	}

	return q.insert(msg, kind, folderArg)
}

// enqueueDelete cancels every cancelable op for the message first, they are
// moot once the mail is gone.
func (q *Queue) enqueueDelete(msg *domain.Message, live []*domain.PendingOp) (int64, error) {
	for _, op := range live {
		if q.inFlight[op.Id] {
			continue
		}

		err := q.store.DeleteOp(op.Id)
		if err != nil {
			return 0, fmt.Errorf("could not cancel superseded operation: %w", err)
		}
	}

	return q.insert(msg, domain.OpPermanentDelete, "")
}

// insert snapshots the provider location into the op row so it stays
// executable after the local row is gone.
func (q *Queue) insert(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
	id, err := q.store.InsertOp(domain.SaveOp{
		AccountId:      msg.AccountId,
		MessageId:      msg.Id,
		Kind:           kind,
		FolderArg:      folderArg,
		ProviderFolder: msg.ProviderFolder,
		Uid:            msg.Uid,
		ProviderId:     msg.ProviderId,
	})
	if err != nil {
		return 0, fmt.Errorf("could not enqueue operation: %w", err)
	}

	q.l.WithFields(logrus.Fields{"Op": kind, "Message": msg.Id, "Id": id}).Debug("Enqueued operation")
	return id, nil
}

func hasToggle(live []*domain.PendingOp) bool {
	for _, op := range live {
		if op.Kind == domain.OpMarkRead || op.Kind == domain.OpMarkUnread {
			return true
		}
	}
	return false
}

func (q *Queue) markInFlight(id int64) {
	q.mu.Lock()
	q.inFlight[id] = true
	q.mu.Unlock()
}

func (q *Queue) unmarkInFlight(id int64) {
	q.mu.Lock()
	delete(q.inFlight, id)
	q.mu.Unlock()
}

func (q *Queue) Pending(accountId string) ([]*domain.PendingOp, error) {
	return q.store.PendingOps(accountId)
}

func (q *Queue) Failed(accountId string) ([]*domain.PendingOp, error) {
	return q.store.FailedOps(accountId)
}
