// SPDX-License-Identifier: GPL-3.0-or-later
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/mailkeel/mailkeel/domain"

	"github.com/sirupsen/logrus"
)

// An op is abandoned after its third failed push.
const maxAttempts = 3

// Completed ops stay around for a day for inspection, then get purged.
const completedRetention = 24 * time.Hour

// Drain pushes the oldest pending ops for an account, in enqueue order. An
// account-level condition aborts the drain; everything still pending is
// picked up by a later pass. Expired auth and rate limits leave the current
// op uncharged, an unreachable server charges it an attempt first so the op
// still runs out of budget eventually.
func (q *Queue) Drain(ctx context.Context, accountId string, provider domain.Provider, maxN int) (domain.DrainStats, error) {
	if maxN <= 0 {
		maxN = 50
	}

	stats := domain.DrainStats{}

	ops, err := q.store.OldestPendingOps(accountId, maxN)
	if err != nil {
		return stats, fmt.Errorf("could not load pending operations: %w", err)
	}

	for _, op := range ops {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		q.markInFlight(op.Id)
		err := q.executeOne(ctx, op, provider, &stats)
		q.unmarkInFlight(op.Id)

		if err != nil {
			return stats, err
		}
	}

	if stats.Processed > 0 {
		q.l.WithFields(logrus.Fields{
			"Account":   accountId,
			"Processed": stats.Processed,
			"Completed": stats.Completed,
			"Failed":    stats.Failed,
			"Requeued":  stats.Requeued,
		}).Info("Drained operations")
	}

	return stats, nil
}

func (q *Queue) executeOne(ctx context.Context, op *domain.PendingOp, provider domain.Provider, stats *domain.DrainStats) error {
	// The op may have been coalesced away between loading and execution.
	current, err := q.store.GetOp(op.Id)
	if err != nil {
		return fmt.Errorf("could not reload operation: %w", err)
	}
	if current == nil || current.Status != domain.OpPending {
		return nil
	}
	op = current

	// The live row carries the freshest provider location; the snapshot in
	// the op row is the fallback for rows that are already gone.
	ref := domain.MessageRef{ProviderFolder: op.ProviderFolder, Uid: op.Uid, ProviderId: op.ProviderId}
	msg, err := q.store.GetMessage(op.MessageId)
	if err != nil {
		return fmt.Errorf("could not load message for operation: %w", err)
	}
	if msg != nil {
		ref = msg.Ref()
	}

	pushErr := q.push(ctx, op, provider, ref)

	if pushErr == nil {
		return q.complete(op, msg, stats)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	switch domain.KindOf(pushErr) {
	case domain.ErrAuthExpired, domain.ErrRateLimited:
		return fmt.Errorf("drain aborted: %w", pushErr)
	case domain.ErrUnreachable:
		// The op that hit the dead server pays an attempt toward its budget,
		// then the drain aborts for everything behind it.
		retryErr := q.retry(op, pushErr, stats)
		if retryErr != nil {
			return retryErr
		}
		return fmt.Errorf("drain aborted: %w", pushErr)
	case domain.ErrNotFound:
		if op.Kind == domain.OpMoveToTrash || op.Kind == domain.OpPermanentDelete {
			// Already gone on the provider, the intent is satisfied.
			return q.complete(op, msg, stats)
		}
		return q.retry(op, pushErr, stats)
	case domain.ErrUnsupported:
		return q.fail(op, pushErr, stats)
	}

	return q.retry(op, pushErr, stats)
}

func (q *Queue) push(ctx context.Context, op *domain.PendingOp, provider domain.Provider, ref domain.MessageRef) error {
	switch op.Kind {
	case domain.OpMarkRead:
		return provider.MarkRead(ctx, ref, true)
	case domain.OpMarkUnread:
		return provider.MarkRead(ctx, ref, false)
	case domain.OpMoveToTrash:
		return provider.MoveToTrash(ctx, ref)
	case domain.OpRestoreFromTrash:
		return provider.RestoreFromTrash(ctx, ref, op.FolderArg)
	case domain.OpPermanentDelete:
		return provider.DeleteMessage(ctx, ref, true)
	}

	return domain.NewProviderError(domain.ErrUnsupported, string(op.Kind), fmt.Errorf("unknown operation kind"))
}

func (q *Queue) complete(op *domain.PendingOp, msg *domain.Message, stats *domain.DrainStats) error {
	if msg != nil {
		var confirmErr error
		switch op.Kind {
		case domain.OpMarkRead:
			confirmErr = q.store.SetSyncedUnread(msg.Id, false)
		case domain.OpMarkUnread:
			confirmErr = q.store.SetSyncedUnread(msg.Id, true)
		}
		if confirmErr != nil {
			return fmt.Errorf("could not confirm read state: %w", confirmErr)
		}
	}

	err := q.store.MarkOpCompleted(op.Id)
	if err != nil {
		return fmt.Errorf("could not mark operation completed: %w", err)
	}

	stats.Processed++
	stats.Completed++
	return nil
}

func (q *Queue) retry(op *domain.PendingOp, pushErr error, stats *domain.DrainStats) error {
	attempts, err := q.store.RecordOpAttempt(op.Id, pushErr.Error())
	if err != nil {
		return fmt.Errorf("could not record attempt: %w", err)
	}

	if attempts >= maxAttempts {
		q.l.WithFields(logrus.Fields{"Op": op.Kind, "Message": op.MessageId, "Error": pushErr}).Warn("Operation out of attempts")
		err := q.store.MarkOpFailed(op.Id, pushErr.Error())
		if err != nil {
			return fmt.Errorf("could not mark operation failed: %w", err)
		}
		stats.Processed++
		stats.Failed++
		return nil
	}

	q.l.WithFields(logrus.Fields{"Op": op.Kind, "Message": op.MessageId, "Attempts": attempts, "Error": pushErr}).Debug("Operation requeued")
	stats.Processed++
	stats.Requeued++
	return nil
}

func (q *Queue) fail(op *domain.PendingOp, pushErr error, stats *domain.DrainStats) error {
	q.l.WithFields(logrus.Fields{"Op": op.Kind, "Message": op.MessageId, "Error": pushErr}).Warn("Operation failed")

	err := q.store.MarkOpFailed(op.Id, pushErr.Error())
	if err != nil {
		return fmt.Errorf("could not mark operation failed: %w", err)
	}

	stats.Processed++
	stats.Failed++
	return nil
}

// PurgeCompleted deletes completed ops older than the retention window.
func (q *Queue) PurgeCompleted() (int64, error) {
	return q.store.PurgeCompletedOps(q.now().Add(-completedRetention))
}
