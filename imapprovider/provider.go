// SPDX-License-Identifier: GPL-3.0-or-later

// Package imapprovider adapts a folder-based IMAP mailbox to the provider
// surface. Commands run over pooled per-account connections, logical folder
// names resolve through a cached mapper and new-mail watching holds an IDLE
// session on a dedicated connection.
package imapprovider

//go:generate mockgen -destination=provider_mocks_test.go -package=imapprovider -source provider.go
import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
	"github.com/mailkeel/mailkeel/mail"
)

// submitter sends a composed mail to its envelope recipients.
type submitter interface {
	Submit(from string, recipients []string, body []byte) error
}

// Settings carries everything needed to construct one IMAP account's
// provider. SmtpHost may be empty, sending is then unsupported.
type Settings struct {
	Account  domain.Account
	Server   string
	User     string
	Password string
	SmtpHost string
}

type Provider struct {
	account domain.Account
	pool    *Pool
	mapper  *FolderMapper
	send    submitter

	server   string
	user     string
	password string

	l *logrus.Logger
}

// NewProvider registers the account's dialer with the shared pool and
// returns the provider.
func NewProvider(settings Settings, pool *Pool, mapper *FolderMapper) *Provider {
	p := &Provider{
		account:  settings.Account,
		pool:     pool,
		mapper:   mapper,
		server:   settings.Server,
		user:     settings.User,
		password: settings.Password,
		l:        log.Logger(log.LOG_IMAP),
	}

	if settings.SmtpHost != "" {
		p.send = &smtpSubmitter{host: settings.SmtpHost, user: settings.User, password: settings.Password}
	}

	pool.Register(settings.Account.Id, func() (conn, error) {
		return newConn(settings.Server, settings.User, settings.Password)
	})

	return p
}

// withConn runs fn holding the account's pooled connection.
func (p *Provider) withConn(ctx context.Context, fn func(c conn) error) error {
	c, err := p.pool.Acquire(ctx, p.account.Id)
	if err != nil {
		return err
	}
	defer p.pool.Release(p.account.Id)

	return fn(c)
}

// Authenticate verifies credentials by acquiring a live connection. The
// pool's probe and redial do the actual work.
func (p *Provider) Authenticate(ctx context.Context) error {
	return p.withConn(ctx, func(conn) error { return nil })
}

func (p *Provider) ListFolders(ctx context.Context) ([]domain.FolderInfo, error) {
	var folders []domain.FolderInfo
	err := p.withConn(ctx, func(c conn) error {
		var err error
		folders, err = c.ListFolders()
		return mapError("list folders", err)
	})

	return folders, err
}

// FetchMessages pages mail above the uid cursor. A changed UIDVALIDITY
// invalidates all stored uids, the cursor resets and the folder is
// refetched from scratch.
func (p *Provider) FetchMessages(ctx context.Context, folder string, since domain.FetchPoint) (*domain.FetchResult, error) {
	var result *domain.FetchResult
	err := p.withConn(ctx, func(c conn) error {
		providerFolder, err := p.mapper.Resolve(c, p.account.Id, folder)
		if err != nil {
			return err
		}

		uidValidity, err := c.Select(providerFolder)
		if err != nil {
			return mapError("select folder", err)
		}

		lastUid := since.LastUid
		if since.UidValidity != 0 && since.UidValidity != uidValidity {
			p.l.WithFields(logrus.Fields{"account": p.account.Id, "folder": providerFolder}).Warn("UIDVALIDITY changed, refetching folder from scratch")
			lastUid = 0
		}

		uids, err := c.UidsSince(lastUid)
		if err != nil {
			return mapError("search folder", err)
		}

		sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })
		if max := p.account.MaxPerCycle; max > 0 && len(uids) > max {
			uids = uids[:max]
		}

		result = &domain.FetchResult{
			Next: domain.FetchPoint{UidValidity: uidValidity, LastUid: lastUid},
		}
		if len(uids) == 0 {
			return nil
		}

		mails, err := c.FetchMessages(uids)
		if err != nil {
			return mapError("fetch mails", err)
		}

		for _, m := range mails {
			infos, err := mail.MailHeaderInfos(m.RawMail)
			if err != nil {
				p.l.WithFields(logrus.Fields{"account": p.account.Id, "uid": m.Uid}).Warn("Skipping unparseable mail: ", err)
				continue
			}

			result.Messages = append(result.Messages, &domain.FetchedMessage{
				Ref:        domain.MessageRef{ProviderFolder: providerFolder, Uid: m.Uid},
				MailIdHash: infos.MailIdHash,
				Subject:    infos.Subject,
				Sender:     infos.Sender,
				Date:       infos.Date,
				IsUnread:   isUnread(m.Flags),
				Labels:     keywordLabels(m.Flags),
				RawMail:    m.RawMail,
			})
		}

		// The cursor advances past skipped mails too, an unparseable mail
		// would otherwise be refetched every cycle.
		result.Next.LastUid = uids[len(uids)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Provider) MarkRead(ctx context.Context, ref domain.MessageRef, read bool) error {
	return p.withConn(ctx, func(c conn) error {
		err := p.selectAndCheck(c, ref)
		if err != nil {
			return err
		}

		return mapError("store flags", c.MarkSeen([]uint32{ref.Uid}, read))
	})
}

// MoveToTrash is idempotent, a mail already in the trash folder is left
// alone.
func (p *Provider) MoveToTrash(ctx context.Context, ref domain.MessageRef) error {
	return p.withConn(ctx, func(c conn) error {
		trash, err := p.mapper.Resolve(c, p.account.Id, domain.FolderTrash)
		if err != nil {
			return err
		}
		if ref.ProviderFolder == trash {
			return nil
		}

		err = p.selectAndCheck(c, ref)
		if err != nil {
			return err
		}

		return mapError("move mail", c.Move([]uint32{ref.Uid}, trash))
	})
}

// RestoreFromTrash is idempotent like MoveToTrash. originalFolder is the
// logical location captured when the mail was trashed.
func (p *Provider) RestoreFromTrash(ctx context.Context, ref domain.MessageRef, originalFolder string) error {
	return p.withConn(ctx, func(c conn) error {
		dest, err := p.mapper.Resolve(c, p.account.Id, originalFolder)
		if err != nil {
			return err
		}
		if ref.ProviderFolder == dest {
			return nil
		}

		err = p.selectAndCheck(c, ref)
		if err != nil {
			return err
		}

		return mapError("move mail", c.Move([]uint32{ref.Uid}, dest))
	})
}

// DeleteMessage without permanent moves to trash. With permanent it expunges
// by uid and surfaces failures instead of degrading to a move.
func (p *Provider) DeleteMessage(ctx context.Context, ref domain.MessageRef, permanent bool) error {
	if !permanent {
		return p.MoveToTrash(ctx, ref)
	}

	return p.withConn(ctx, func(c conn) error {
		err := p.selectAndCheck(c, ref)
		if err != nil {
			return err
		}

		return mapError("delete mail", c.Delete([]uint32{ref.Uid}))
	})
}

// ApplyLabels stores label changes as custom IMAP keywords.
func (p *Provider) ApplyLabels(ctx context.Context, ref domain.MessageRef, add []string, remove []string) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}

	return p.withConn(ctx, func(c conn) error {
		err := p.selectAndCheck(c, ref)
		if err != nil {
			return err
		}

		err = c.StoreKeywords([]uint32{ref.Uid}, true, add)
		if err != nil {
			return mapError("store keywords", err)
		}

		return mapError("store keywords", c.StoreKeywords([]uint32{ref.Uid}, false, remove))
	})
}

// SendMessage submits over SMTP, then files a copy into the sent folder.
// The copy is best effort, many servers file one themselves.
func (p *Provider) SendMessage(ctx context.Context, out *domain.OutgoingMessage) error {
	if p.send == nil {
		return domain.NewProviderError(domain.ErrUnsupported, "send", fmt.Errorf("no submission host configured"))
	}

	body, err := mail.Compose(out)
	if err != nil {
		return fmt.Errorf("could not compose mail: %w", err)
	}

	from, err := mail.Sender(out)
	if err != nil {
		return fmt.Errorf("could not parse sender: %w", err)
	}

	recipients, err := mail.Recipients(out)
	if err != nil {
		return fmt.Errorf("could not collect recipients: %w", err)
	}

	err = p.send.Submit(from, recipients, body)
	if err != nil {
		return err
	}

	appendErr := p.withConn(ctx, func(c conn) error {
		sent, err := p.mapper.Resolve(c, p.account.Id, domain.FolderSent)
		if err != nil {
			return err
		}

		return mapError("append mail", c.Append(sent, body))
	})
	if appendErr != nil {
		p.l.WithFields(logrus.Fields{"account": p.account.Id}).Warn("Could not file sent copy: ", appendErr)
	}

	return nil
}

// Close drops the account's pooled connection. The shared pool stays up
// for other accounts.
func (p *Provider) Close() error {
	p.pool.CloseAccount(p.account.Id)
	return nil
}

// NewWatcher builds an IDLE watcher for the account on a dedicated
// connection.
func (p *Provider) NewWatcher(notify func()) domain.Watcher {
	return NewIdleWatcher(p.account.Id, func() (idleConn, error) {
		return newIdleConn(p.server, p.user, p.password)
	}, notify)
}

// selectAndCheck selects the ref's folder and verifies the uid still lives
// there. Mutations act on a stale ref otherwise, IMAP addresses mail by
// position in a folder.
func (p *Provider) selectAndCheck(c conn, ref domain.MessageRef) error {
	_, err := c.Select(ref.ProviderFolder)
	if err != nil {
		return mapError("select folder", err)
	}

	found, err := c.UidExists(ref.Uid)
	if err != nil {
		return mapError("search folder", err)
	}
	if !found {
		return domain.NewProviderError(domain.ErrNotFound, "locate mail", fmt.Errorf("uid %d not in %s", ref.Uid, ref.ProviderFolder))
	}

	return nil
}

func isUnread(flags []string) bool {
	for _, f := range flags {
		if f == imap.SeenFlag {
			return false
		}
	}

	return true
}

// keywordLabels keeps the custom keywords, dropping \-prefixed system flags.
func keywordLabels(flags []string) []string {
	var labels []string
	for _, f := range flags {
		if !strings.HasPrefix(f, "\\") {
			labels = append(labels, f)
		}
	}

	return labels
}
