// SPDX-License-Identifier: GPL-3.0-or-later
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mailkeel/mailkeel/domain"
)

// EnqueueOperation accepts a user mutation. The local row changes first and
// the provider push is queued behind it, so the call never touches the
// network and never surfaces provider failures. Those show up on the
// operation itself once a drain has tried it.
func (s *Syncer) EnqueueOperation(accountId string, messageId int64, kind domain.OpKind) (int64, error) {
	msg, err := s.store.GetMessage(messageId)
	if err != nil {
		return 0, fmt.Errorf("could not load message: %w", err)
	}
	if msg == nil || msg.AccountId != accountId {
		return 0, fmt.Errorf("message %d does not exist", messageId)
	}

	folderArg := ""
	switch kind {
	case domain.OpMarkRead, domain.OpMarkUnread:
		unread := kind == domain.OpMarkUnread
		err = s.store.SetMessageUnread(msg.Id, unread)
		if err != nil {
			return 0, fmt.Errorf("could not update read state: %w", err)
		}
		msg.IsUnread = unread

	case domain.OpMoveToTrash:
		if msg.Folder != domain.FolderTrash {
			original := msg.Folder
			err = s.store.SetMessageFolder(msg.Id, domain.FolderTrash, &original)
			if err != nil {
				return 0, fmt.Errorf("could not move message to trash: %w", err)
			}
			msg.Folder = domain.FolderTrash
			msg.OriginalFolder = &original
		}

	case domain.OpRestoreFromTrash:
		// The restore target is captured before the row is returned to it.
		folderArg = domain.FolderInbox
		if msg.OriginalFolder != nil && *msg.OriginalFolder != "" {
			folderArg = *msg.OriginalFolder
		}
		if msg.Folder == domain.FolderTrash {
			err = s.store.SetMessageFolder(msg.Id, folderArg, nil)
			if err != nil {
				return 0, fmt.Errorf("could not restore message: %w", err)
			}
			msg.Folder = folderArg
			msg.OriginalFolder = nil
		}

	case domain.OpPermanentDelete:
		// The op snapshots the provider location, the row goes now.
		err = s.store.DeleteMessage(msg.Id)
		if err != nil {
			return 0, fmt.Errorf("could not delete message: %w", err)
		}

	default:
		return 0, fmt.Errorf("unknown operation kind %q", kind)
	}

	opId, err := s.queue.Enqueue(msg, kind, folderArg)
	if err != nil {
		return 0, fmt.Errorf("could not enqueue operation: %w", err)
	}

	s.l.WithFields(logrus.Fields{"account": accountId, "mail": messageId, "op": kind}).Debug("Accepted operation")
	return opId, nil
}

// Send submits an outgoing mail through the account's provider. Sending is
// interactive, it is not queued.
func (s *Syncer) Send(ctx context.Context, accountId string, out *domain.OutgoingMessage) error {
	provider, ok := s.providers[accountId]
	if !ok {
		return fmt.Errorf("account %s has no provider", accountId)
	}

	err := provider.SendMessage(ctx, out)
	if err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	s.l.WithFields(logrus.Fields{"account": accountId, "to": out.To}).Info("Sent mail")
	return nil
}

// PendingOperations lists the not-yet-executed queue tail for one account.
func (s *Syncer) PendingOperations(accountId string) ([]*domain.PendingOp, error) {
	return s.queue.Pending(accountId)
}

// FailedOperations lists the ops that exhausted their retries.
func (s *Syncer) FailedOperations(accountId string) ([]*domain.PendingOp, error) {
	return s.queue.Failed(accountId)
}

// Messages lists the local mirror of one logical folder, newest first.
func (s *Syncer) Messages(accountId string, folder string) ([]*domain.Message, error) {
	return s.store.MessagesInFolder(accountId, folder)
}

// LastSyncTime returns the account's watermark, zero when no cycle has
// finished cleanly yet.
func (s *Syncer) LastSyncTime(accountId string) (time.Time, error) {
	return s.store.LastSync(accountId)
}
