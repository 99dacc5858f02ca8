// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/provider.go -package=mocks . Provider
package domain

import "context"

// FetchResult carries one incremental page plus the advanced cursor the
// caller persists once its cycle completes cleanly.
type FetchResult struct {
	Messages []*FetchedMessage
	Next     FetchPoint
}

// Provider is the uniform capability surface over one remote mailbox.
//
// FetchMessages returns new or changed items only; it never implies deletion
// of local messages absent from the page. MoveToTrash and RestoreFromTrash
// are idempotent: an item already in the target state is a success.
// DeleteMessage with permanent=true must fail loudly when the remote cannot
// delete permanently instead of degrading to a soft delete. Every method
// reports failures as a ProviderError kind.
type Provider interface {
	Authenticate(ctx context.Context) error
	ListFolders(ctx context.Context) ([]FolderInfo, error)
	FetchMessages(ctx context.Context, folder string, since FetchPoint) (*FetchResult, error)
	MarkRead(ctx context.Context, ref MessageRef, read bool) error
	MoveToTrash(ctx context.Context, ref MessageRef) error
	RestoreFromTrash(ctx context.Context, ref MessageRef, originalFolder string) error
	DeleteMessage(ctx context.Context, ref MessageRef, permanent bool) error
	ApplyLabels(ctx context.Context, ref MessageRef, add []string, remove []string) error
	SendMessage(ctx context.Context, out *OutgoingMessage) error

	Close() error
}
