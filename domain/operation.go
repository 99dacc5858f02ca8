// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/operation.go -package=mocks . OperationQueue
package domain

import (
	"context"
	"time"
)

type OpKind string

const (
	OpMarkRead         = OpKind("mark_read")
	OpMarkUnread       = OpKind("mark_unread")
	OpMoveToTrash      = OpKind("move_to_trash")
	OpRestoreFromTrash = OpKind("restore_from_trash")
	OpPermanentDelete  = OpKind("permanent_delete")
)

type OpStatus string

const (
	OpPending   = OpStatus("pending")
	OpCompleted = OpStatus("completed")
	OpFailed    = OpStatus("failed")
)

// PendingOp is a queued intent to mutate provider state. The ref columns
// snapshot the provider location at enqueue time so an op stays executable
// after its local row is gone; the live row is preferred when it exists.
type PendingOp struct {
	Id        int64
	AccountId string
	MessageId int64
	Kind      OpKind
	Status    OpStatus

	// FolderArg carries the restore target captured before the local row was
	// returned to it.
	FolderArg      string
	ProviderFolder string
	Uid            uint32
	ProviderId     string

	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DrainStats summarizes one queue drain. Requeued counts ops left pending
// for a later cycle.
type DrainStats struct {
	Processed int
	Completed int
	Failed    int
	Requeued  int
}

type OperationQueue interface {
	Enqueue(msg *Message, kind OpKind, folderArg string) (int64, error)
	Drain(ctx context.Context, accountId string, provider Provider, maxN int) (DrainStats, error)
	PurgeCompleted() (int64, error)
	Pending(accountId string) ([]*PendingOp, error)
	Failed(accountId string) ([]*PendingOp, error)
}
