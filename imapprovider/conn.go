// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"

	"github.com/emersion/go-imap"
	uidplus "github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

const (
	// commandTimeout bounds every command on a pooled connection. Dedicated
	// idle connections stay unbounded, their blocking wait is the point.
	commandTimeout = 90 * time.Second

	updateBuffer = 64
)

// fetchedMail is one raw message as it came off the wire, before any header
// parsing happens.
type fetchedMail struct {
	Uid     uint32
	Flags   []string
	RawMail []byte
}

type imapConn struct {
	connection *client.Client
	uidplus    *uidplus.Client
	remover    expunger
	mover      relocator

	server, user string

	selectedFolder string

	updates chan client.Update

	l *logrus.Logger
}

// newConn dials, logs in and wires the delete and move strategies the
// server's capabilities allow. The returned connection is meant to be pooled.
func newConn(server string, user string, password string) (*imapConn, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, domain.NewProviderError(domain.ErrUnreachable, "connect", err)
	}
	imapClient.Timeout = commandTimeout

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, domain.NewProviderError(domain.ErrAuthExpired, "login", err)
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	moveSupported, err := imapClient.Support("MOVE")
	if err != nil {
		return nil, fmt.Errorf("could not check for MOVE support: %w", err)
	}

	conn := &imapConn{
		connection: imapClient,
		uidplus:    uidPlusClient,
		server:     server,
		user:       user,
		l:          log.Logger(log.LOG_IMAP),
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server})
	baseLogger.Debug("Logged in to server")

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, expunging by uid set")
		conn.remover = &uidExpunger{
			conn: conn,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to flag&expunge")
		conn.remover = &flagExpunger{
			conn: conn,
		}
	}

	if moveSupported {
		baseLogger.Debug("MOVE supported on server")
		conn.mover = &moveRelocator{
			conn: imapClient,
		}
	} else {
		baseLogger.Info("MOVE not supported on server, falling back to copy&delete")
		conn.mover = &copyExpungeRelocator{
			conn:    conn,
			remover: conn.remover,
		}
	}

	return conn, nil
}

// newIdleConn dials a dedicated connection for the idle watcher. Unilateral
// server updates are routed into a buffered channel which the watcher drains;
// pooled connections never wire this channel.
func newIdleConn(server string, user string, password string) (*imapConn, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, domain.NewProviderError(domain.ErrUnreachable, "connect", err)
	}

	updates := make(chan client.Update, updateBuffer)
	imapClient.Updates = updates

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, domain.NewProviderError(domain.ErrAuthExpired, "login", err)
	}

	return &imapConn{
		connection: imapClient,
		server:     server,
		user:       user,
		updates:    updates,
		l:          log.Logger(log.LOG_IMAP),
	}, nil
}

func (ic *imapConn) Select(folder string) (uint32, error) {
	m, err := ic.connection.Select(folder, false)
	if err != nil {
		return 0, fmt.Errorf("could not select folder: %w", err)
	}

	ic.selectedFolder = folder
	return m.UidValidity, nil
}

func (ic *imapConn) ListFolders() ([]domain.FolderInfo, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", "*", mailboxes)
	}()

	folders := []domain.FolderInfo{}
	for m := range mailboxes {
		folders = append(
			folders,
			domain.FolderInfo{
				Name:       m.Name,
				Delimiter:  m.Delimiter,
				Attributes: m.Attributes,
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}

	return folders, nil
}

func (ic *imapConn) CreateFolder(name string) error {
	err := ic.connection.Create(name)
	if err != nil {
		return fmt.Errorf("could not create folder: %w", err)
	}

	return nil
}

// UidsSince returns the uids above lastUid in the selected folder. A lastUid
// of zero returns the whole folder.
func (ic *imapConn) UidsSince(lastUid uint32) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	set := &imap.SeqSet{}
	set.AddRange(lastUid+1, 0)
	criteria.Uid = set

	uids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder: %w", err)
	}

	return uids, nil
}

func (ic *imapConn) UidExists(uid uint32) (bool, error) {
	criteria := imap.NewSearchCriteria()
	set := &imap.SeqSet{}
	set.AddNum(uid)
	criteria.Uid = set

	uids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return false, fmt.Errorf("could not search folder: %w", err)
	}

	return len(uids) > 0, nil
}

func (ic *imapConn) FetchMessages(uids []uint32) ([]*fetchedMail, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}

	fetchItems := []imap.FetchItem{imap.FetchUid, imap.FetchFlags, fullBodySection.FetchItem()}
	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	mails := []*fetchedMail{}
	for msg := range messages {
		r := msg.GetBody(fullBodySection)
		if r == nil {
			return nil, fmt.Errorf("server returned no body for uid %d", msg.Uid)
		}
		rawMail, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("could not read mail body: %w", err)
		}

		mails = append(
			mails,
			&fetchedMail{
				Uid:     msg.Uid,
				Flags:   msg.Flags,
				RawMail: rawMail,
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}

	return mails, nil
}

func (ic *imapConn) MarkSeen(uids []uint32, seen bool) error {
	var op imap.FlagsOp = imap.AddFlags
	if !seen {
		op = imap.RemoveFlags
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(op, true), []interface{}{imap.SeenFlag}, nil)
	if err != nil {
		return fmt.Errorf("could not store seen flag: %w", err)
	}

	return nil
}

// StoreKeywords adds or removes custom keyword flags. System flags never go
// through here.
func (ic *imapConn) StoreKeywords(uids []uint32, add bool, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}

	var op imap.FlagsOp = imap.AddFlags
	if !add {
		op = imap.RemoveFlags
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	flags := make([]interface{}, len(keywords))
	for i, keyword := range keywords {
		flags[i] = keyword
	}

	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(op, true), flags, nil)
	if err != nil {
		return fmt.Errorf("could not store keywords: %w", err)
	}

	return nil
}

func (ic *imapConn) Move(uids []uint32, folder string) error {
	return ic.mover.relocate(uids, folder)
}

func (ic *imapConn) Delete(uids []uint32) error {
	return ic.remover.expunge(uids)
}

func (ic *imapConn) Append(folder string, body []byte) error {
	err := ic.connection.Append(folder, nil, time.Now(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not append: %w", err)
	}

	return nil
}

func (ic *imapConn) Noop() error {
	return ic.connection.Noop()
}

func (ic *imapConn) Logout() error {
	return ic.connection.Logout()
}

func (ic *imapConn) SupportIdle() (bool, error) {
	return ic.connection.Support("IDLE")
}

// Idle blocks until stop is closed or the connection fails. The client
// re-issues the idle command before common server timeouts cut it off.
func (ic *imapConn) Idle(stop <-chan struct{}) error {
	return ic.connection.Idle(stop, &client.IdleOptions{LogoutTimeout: idleRenewInterval})
}

func (ic *imapConn) Updates() <-chan client.Update {
	return ic.updates
}

// flagDeleted and the passthroughs below are the surface the expunge and
// relocate strategies run on.

func (ic *imapConn) flagDeleted(uids []uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not set delete flag: %w", err)
	}

	return seqset, nil
}

func (ic *imapConn) UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error {
	return ic.uidplus.UidExpunge(seqSet, ch)
}

func (ic *imapConn) Expunge(ch chan uint32) error {
	return ic.connection.Expunge(ch)
}

func (ic *imapConn) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	return ic.connection.UidSearch(criteria)
}

func (ic *imapConn) UidCopy(seqset *imap.SeqSet, dest string) error {
	return ic.connection.UidCopy(seqset, dest)
}
