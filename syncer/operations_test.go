// SPDX-License-Identifier: GPL-3.0-or-later
package syncer

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/domain/mocks"
	"github.com/mailkeel/mailkeel/log"
	"github.com/mailkeel/mailkeel/persistence"
	"github.com/mailkeel/mailkeel/queue"
)

func folderPtr(f string) *string {
	return &f
}

func TestEnqueueMarkReadUpdatesLocalFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	gomock.InOrder(
		store.EXPECT().SetMessageUnread(gomock.Eq(int64(5)), gomock.Eq(false)).Return(nil),
		q.EXPECT().
			Enqueue(gomock.Any(), gomock.Eq(domain.OpMarkRead), gomock.Eq("")).
			DoAndReturn(func(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
				assert.False(t, msg.IsUnread)
				return 11, nil
			}),
	)

	opId, err := s.EnqueueOperation("acc", 5, domain.OpMarkRead)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), opId)
}

func TestEnqueueTrashCapturesOriginalFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)
	row.Folder = domain.FolderSent

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	gomock.InOrder(
		store.EXPECT().
			SetMessageFolder(gomock.Eq(int64(5)), gomock.Eq(domain.FolderTrash), gomock.Eq(folderPtr("sent"))).
			Return(nil),
		q.EXPECT().
			Enqueue(gomock.Any(), gomock.Eq(domain.OpMoveToTrash), gomock.Eq("")).
			DoAndReturn(func(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
				assert.Equal(t, domain.FolderTrash, msg.Folder)
				assert.Equal(t, "sent", *msg.OriginalFolder)
				return 12, nil
			}),
	)

	_, err := s.EnqueueOperation("acc", 5, domain.OpMoveToTrash)
	assert.NoError(t, err)
}

func TestEnqueueTrashAlreadyInTrash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)
	row.Folder = domain.FolderTrash
	row.OriginalFolder = folderPtr("sent")

	// The row keeps its original folder, only the queue sees the repeat.
	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	q.EXPECT().
		Enqueue(gomock.Any(), gomock.Eq(domain.OpMoveToTrash), gomock.Eq("")).
		DoAndReturn(func(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
			assert.Equal(t, "sent", *msg.OriginalFolder)
			return 12, nil
		})

	_, err := s.EnqueueOperation("acc", 5, domain.OpMoveToTrash)
	assert.NoError(t, err)
}

func TestEnqueueRestoreUsesOriginalFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)
	row.Folder = domain.FolderTrash
	row.OriginalFolder = folderPtr("sent")

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	gomock.InOrder(
		store.EXPECT().
			SetMessageFolder(gomock.Eq(int64(5)), gomock.Eq("sent"), gomock.Nil()).
			Return(nil),
		q.EXPECT().
			Enqueue(gomock.Any(), gomock.Eq(domain.OpRestoreFromTrash), gomock.Eq("sent")).
			DoAndReturn(func(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
				assert.Equal(t, "sent", msg.Folder)
				assert.Nil(t, msg.OriginalFolder)
				return 13, nil
			}),
	)

	_, err := s.EnqueueOperation("acc", 5, domain.OpRestoreFromTrash)
	assert.NoError(t, err)
}

func TestEnqueueRestoreFallsBackToInbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)
	row.Folder = domain.FolderTrash

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	store.EXPECT().
		SetMessageFolder(gomock.Eq(int64(5)), gomock.Eq(domain.FolderInbox), gomock.Nil()).
		Return(nil)
	q.EXPECT().
		Enqueue(gomock.Any(), gomock.Eq(domain.OpRestoreFromTrash), gomock.Eq("inbox")).
		Return(int64(13), nil)

	_, err := s.EnqueueOperation("acc", 5, domain.OpRestoreFromTrash)
	assert.NoError(t, err)
}

func TestEnqueueDeleteRemovesRowFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)
	row := storedRow(5, "hash-1", 9)

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(row, nil)
	gomock.InOrder(
		store.EXPECT().DeleteMessage(gomock.Eq(int64(5))).Return(nil),
		q.EXPECT().
			Enqueue(gomock.Any(), gomock.Eq(domain.OpPermanentDelete), gomock.Eq("")).
			DoAndReturn(func(msg *domain.Message, kind domain.OpKind, folderArg string) (int64, error) {
				// The in-memory message still carries the provider location
				// for the op snapshot.
				assert.Equal(t, "INBOX", msg.ProviderFolder)
				assert.Equal(t, uint32(9), msg.Uid)
				return 14, nil
			}),
	)

	_, err := s.EnqueueOperation("acc", 5, domain.OpPermanentDelete)
	assert.NoError(t, err)
}

func TestEnqueueRejectsUnknownMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(nil, nil)
	_, err := s.EnqueueOperation("acc", 5, domain.OpMarkRead)
	assert.EqualError(t, err, "message 5 does not exist")

	// A message belonging to another account looks just as nonexistent.
	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(storedRow(5, "hash-1", 9), nil)
	_, err = s.EnqueueOperation("other", 5, domain.OpMarkRead)
	assert.EqualError(t, err, "message 5 does not exist")
}

func TestEnqueueRejectsUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)

	store.EXPECT().GetMessage(gomock.Eq(int64(5))).Return(storedRow(5, "hash-1", 9), nil)
	_, err := s.EnqueueOperation("acc", 5, domain.OpKind("shred"))
	assert.EqualError(t, err, `unknown operation kind "shred"`)
}

func TestSendUsesAccountProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	s := testSyncer(store, q, c, []domain.Account{syncAccount("acc")}, map[string]domain.Provider{"acc": provider})

	out := &domain.OutgoingMessage{
		From:     "alice@example.org",
		To:       []string{"bob@example.org"},
		Subject:  "hello",
		TextBody: "hi",
	}

	provider.EXPECT().SendMessage(gomock.Any(), gomock.Eq(out)).Return(nil)
	assert.NoError(t, s.Send(context.Background(), "acc", out))

	assert.EqualError(t, s.Send(context.Background(), "ghost", out), "account ghost has no provider")

	provider.EXPECT().
		SendMessage(gomock.Any(), gomock.Eq(out)).
		Return(domain.NewProviderError(domain.ErrUnreachable, "send mail", fmt.Errorf("relay down")))
	err := s.Send(context.Background(), "acc", out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not send mail")
}

func TestPendingAndFailedPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)

	pending := []*domain.PendingOp{{Id: 1, Kind: domain.OpMarkRead}}
	failed := []*domain.PendingOp{{Id: 2, Kind: domain.OpMoveToTrash, Status: domain.OpFailed}}

	q.EXPECT().Pending(gomock.Eq("acc")).Return(pending, nil)
	q.EXPECT().Failed(gomock.Eq("acc")).Return(failed, nil)

	got, err := s.PendingOperations("acc")
	assert.NoError(t, err)
	assert.Equal(t, pending, got)

	got, err = s.FailedOperations("acc")
	assert.NoError(t, err)
	assert.Equal(t, failed, got)
}

func TestReadSurfacePassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	q := mocks.NewMockOperationQueue(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)

	s := testSyncer(store, q, c, nil, nil)

	inbox := []*domain.Message{storedRow(1, "hash-1", 51)}
	store.EXPECT().MessagesInFolder(gomock.Eq("acc"), gomock.Eq("inbox")).Return(inbox, nil)
	store.EXPECT().LastSync(gomock.Eq("acc")).Return(syncNow, nil)

	messages, err := s.Messages("acc", "inbox")
	assert.NoError(t, err)
	assert.Equal(t, inbox, messages)

	last, err := s.LastSyncTime("acc")
	assert.NoError(t, err)
	assert.Equal(t, syncNow, last)
}

func newLifecycleSyncer(t *testing.T, provider domain.Provider, c domain.ConcurrentClassifier) (*Syncer, *persistence.Persistence) {
	t.Helper()
	log.InitLogging("error")

	store, err := persistence.NewPersistence(filepath.Join(t.TempDir(), "sync.db"))
	assert.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	q := queue.NewQueue(store)
	s := testSyncer(store, q, c, []domain.Account{syncAccount("acc")}, map[string]domain.Provider{"acc": provider})
	return s, store
}

func seedMessage(t *testing.T, store *persistence.Persistence, folder string, unread bool) *domain.Message {
	t.Helper()

	err := store.UpsertMessages("acc", []domain.SaveMessage{{
		Folder:         folder,
		ProviderFolder: "Sent",
		Uid:            9,
		MailIdHash:     "lifecycle-1",
		Subject:        "quarterly numbers",
		Sender:         "alice@example.org",
		Date:           syncNow.Add(-2 * time.Hour),
		IsUnread:       unread,
	}})
	assert.NoError(t, err)

	msg, err := store.FindMessageByHash("acc", "lifecycle-1")
	assert.NoError(t, err)
	assert.NotNil(t, msg)
	return msg
}

func TestOfflineTrashRestoreRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)
	s, store := newLifecycleSyncer(t, provider, c)
	account := syncAccount("acc")

	msg := seedMessage(t, store, "sent", false)

	// The trash is accepted while the provider is down.
	_, err := s.EnqueueOperation("acc", msg.Id, domain.OpMoveToTrash)
	assert.NoError(t, err)

	trashed, err := store.GetMessage(msg.Id)
	assert.NoError(t, err)
	assert.Equal(t, domain.FolderTrash, trashed.Folder)
	assert.Equal(t, "sent", *trashed.OriginalFolder)

	gomock.InOrder(
		provider.EXPECT().
			MoveToTrash(gomock.Any(), gomock.Any()).
			Return(domain.NewProviderError(domain.ErrUnreachable, "trash mail", fmt.Errorf("connection refused"))),
		provider.EXPECT().MoveToTrash(gomock.Any(), gomock.Any()).Return(nil),
		provider.EXPECT().RestoreFromTrash(gomock.Any(), gomock.Any(), gomock.Eq("sent")).Return(nil),
	)

	// The first cycle aborts, the op pays one attempt and local state holds.
	_, err = s.SyncAccount(context.Background(), account)
	assert.Error(t, err)

	pending, err := s.PendingOperations("acc")
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Attempts)

	held, err := store.GetMessage(msg.Id)
	assert.NoError(t, err)
	assert.Equal(t, domain.FolderTrash, held.Folder)

	// The provider is back, the queued trash goes through.
	result, err := s.SyncAccount(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, domain.DrainStats{Processed: 1, Completed: 1}, result.Ops)

	pending, err = s.PendingOperations("acc")
	assert.NoError(t, err)
	assert.Empty(t, pending)

	// Restore returns the mail to where it came from and clears the marker.
	_, err = s.EnqueueOperation("acc", msg.Id, domain.OpRestoreFromTrash)
	assert.NoError(t, err)

	restored, err := store.GetMessage(msg.Id)
	assert.NoError(t, err)
	assert.Equal(t, "sent", restored.Folder)
	assert.Nil(t, restored.OriginalFolder)

	result, err = s.SyncAccount(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, domain.DrainStats{Processed: 1, Completed: 1}, result.Ops)
}

func TestRapidTogglesCoalesceToOnePush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	c := mocks.NewMockConcurrentClassifier(ctrl)
	s, store := newLifecycleSyncer(t, provider, c)
	account := syncAccount("acc")

	msg := seedMessage(t, store, "inbox", true)

	_, err := s.EnqueueOperation("acc", msg.Id, domain.OpMarkRead)
	assert.NoError(t, err)
	_, err = s.EnqueueOperation("acc", msg.Id, domain.OpMarkUnread)
	assert.NoError(t, err)
	_, err = s.EnqueueOperation("acc", msg.Id, domain.OpMarkRead)
	assert.NoError(t, err)

	pending, err := s.PendingOperations("acc")
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, domain.OpMarkRead, pending[0].Kind)

	// Three rapid flips reach the provider as one call.
	provider.EXPECT().MarkRead(gomock.Any(), gomock.Any(), gomock.Eq(true)).Return(nil)

	result, err := s.SyncAccount(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, domain.DrainStats{Processed: 1, Completed: 1}, result.Ops)

	final, err := store.GetMessage(msg.Id)
	assert.NoError(t, err)
	assert.False(t, final.IsUnread)
	assert.False(t, final.SyncedUnread)
}
