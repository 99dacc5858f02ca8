// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/store.go -package=mocks . Store
package domain

import "time"

// FolderState is the per-folder incremental cursor. Folder-based accounts
// advance UidValidity and LastUid, label-based accounts advance Since. A
// changed uidvalidity voids LastUid.
type FolderState struct {
	AccountId   string
	Name        string
	UidValidity uint32
	LastUid     uint32
	Since       time.Time
}

type SaveOp struct {
	AccountId      string
	MessageId      int64
	Kind           OpKind
	FolderArg      string
	ProviderFolder string
	Uid            uint32
	ProviderId     string
}

type Store interface {
	Close() error

	UpsertMessages(accountId string, msgs []SaveMessage) error
	GetMessage(id int64) (*Message, error)
	FindMessageByHash(accountId string, mailIdHash string) (*Message, error)
	HashesExist(accountId string, mailIdHashes []string) (map[string]bool, error)
	MessagesInFolder(accountId string, folder string) ([]*Message, error)
	SetMessageFolder(id int64, folder string, originalFolder *string) error
	SetMessageUnread(id int64, unread bool) error
	SetSyncedUnread(id int64, unread bool) error
	SetMessageTags(id int64, tags []string, priority Priority) error
	SetMessageLabels(id int64, labels []string) error
	DeleteMessage(id int64) error

	FolderState(accountId string, name string) (*FolderState, error)
	SaveFolderState(state *FolderState) error
	LastSync(accountId string) (time.Time, error)
	SaveLastSync(accountId string, at time.Time) error

	InsertOp(op SaveOp) (int64, error)
	GetOp(id int64) (*PendingOp, error)
	LiveOps(messageId int64) ([]*PendingOp, error)
	OldestPendingOps(accountId string, n int) ([]*PendingOp, error)
	DeleteOp(id int64) error
	MarkOpCompleted(id int64) error
	MarkOpFailed(id int64, lastError string) error
	RecordOpAttempt(id int64, lastError string) (int, error)
	PendingOps(accountId string) ([]*PendingOp, error)
	FailedOps(accountId string) ([]*PendingOp, error)
	PurgeCompletedOps(before time.Time) (int64, error)
}
