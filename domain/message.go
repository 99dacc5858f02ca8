// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

// Logical folders are the provider-agnostic mailbox locations. Providers
// translate them to native folder paths or label ids.
const (
	FolderInbox   = "inbox"
	FolderSent    = "sent"
	FolderDrafts  = "drafts"
	FolderTrash   = "trash"
	FolderArchive = "archive"
	FolderSpam    = "spam"
)

// MessageRef locates a message on the provider. Folder-based providers use
// ProviderFolder and Uid, label-based providers use ProviderId.
type MessageRef struct {
	ProviderFolder string
	Uid            uint32
	ProviderId     string
}

type Message struct {
	Id        int64
	AccountId string

	// Folder is the logical location. OriginalFolder is set at the moment of
	// trashing and is the sole source for a later restore.
	Folder         string
	OriginalFolder *string

	ProviderFolder string
	Uid            uint32
	ProviderId     string
	MailIdHash     string

	Subject string
	Sender  string
	Date    time.Time

	// SyncedUnread is the last provider-confirmed read state; IsUnread is the
	// local state, which may run ahead of it while a toggle is pending.
	IsUnread     bool
	SyncedUnread bool

	Labels     []string
	Tags       []string
	Priority   Priority
	Classified bool

	FetchedAt time.Time
}

func (m *Message) Ref() MessageRef {
	return MessageRef{ProviderFolder: m.ProviderFolder, Uid: m.Uid, ProviderId: m.ProviderId}
}

// SaveMessage is the upsert payload for a fetched message. Rows are keyed by
// (account, MailIdHash) so a provider-side move re-binds the existing row to
// its new location instead of inserting a duplicate.
type SaveMessage struct {
	Folder         string
	ProviderFolder string
	Uid            uint32
	ProviderId     string
	MailIdHash     string
	Subject        string
	Sender         string
	Date           time.Time
	IsUnread       bool
	Labels         []string
}

// FetchedMessage is one incremental fetch result. RawMail is only held for
// the duration of the cycle that fetched it.
type FetchedMessage struct {
	Ref        MessageRef
	MailIdHash string
	Subject    string
	Sender     string
	Date       time.Time
	IsUnread   bool
	Labels     []string
	RawMail    []byte
}

// FetchPoint is the incremental cursor handed to FetchMessages. Label-based
// providers use Since, folder-based providers use UidValidity and LastUid.
type FetchPoint struct {
	Since       time.Time
	UidValidity uint32
	LastUid     uint32
}

type FolderInfo struct {
	Name       string
	Delimiter  string
	Attributes []string
}

type OutgoingMessage struct {
	From      string
	To        []string
	Cc        []string
	Bcc       []string
	Subject   string
	InReplyTo string
	TextBody  string
}
