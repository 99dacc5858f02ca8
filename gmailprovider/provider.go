// SPDX-License-Identifier: GPL-3.0-or-later

// Package gmailprovider adapts a label-based gmail mailbox to the provider
// surface. Commands go over the rest api with a circuit breaker in front,
// logical folders resolve to system label ids and the incremental cursor is
// the server's internal receive time.
package gmailprovider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
	"github.com/mailkeel/mailkeel/mail"
)

const (
	listPageSize     = 500
	fetchConcurrency = 10
	fetchTimeout     = 30 * time.Second
)

// archiveQuery matches archived mail, which gmail models as the absence of
// the mailbox labels.
const archiveQuery = "-in:inbox -in:trash -in:spam"

// Settings carries everything needed to construct one gmail account's
// provider. The token source refreshes itself, expiry shows up here only as
// a failed refresh.
type Settings struct {
	Account     domain.Account
	TokenSource oauth2.TokenSource
}

type Provider struct {
	account domain.Account
	api     api
	labels  *LabelMapper

	l *logrus.Logger
}

func NewProvider(ctx context.Context, settings Settings, labels *LabelMapper) (*Provider, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(settings.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("could not create gmail service: %w", err)
	}

	l := log.Logger(log.LOG_GMAIL)
	return &Provider{
		account: settings.Account,
		api:     newBreakerApi(&restApi{service: service}, settings.Account.Id, l),
		labels:  labels,
		l:       l,
	}, nil
}

// Authenticate verifies the token by asking for the mailbox profile.
func (p *Provider) Authenticate(ctx context.Context) error {
	address, err := p.api.profile(ctx)
	if err != nil {
		return mapError("authenticate", err)
	}

	p.l.WithFields(logrus.Fields{"account": p.account.Id, "address": address}).Debug("Authenticated against gmail")
	return nil
}

func (p *Provider) ListFolders(ctx context.Context) ([]domain.FolderInfo, error) {
	labels, err := p.labels.labels(ctx, p.api, p.account.Id)
	if err != nil {
		return nil, err
	}

	folders := make([]domain.FolderInfo, 0, len(labels))
	for _, label := range labels {
		folders = append(folders, domain.FolderInfo{
			Name:       label.Name,
			Delimiter:  "/",
			Attributes: []string{label.Type},
		})
	}

	return folders, nil
}

// FetchMessages pages mail received after the time cursor. The listing
// comes newest first, so the oldest window of an over-long backlog is
// hydrated and the cursor advances without skipping anything above it.
func (p *Provider) FetchMessages(ctx context.Context, folder string, since domain.FetchPoint) (*domain.FetchResult, error) {
	labelId, err := p.labels.Resolve(folder)
	if err != nil {
		return nil, err
	}

	query := ""
	if labelId == "" {
		query = archiveQuery
	}
	if !since.Since.IsZero() {
		// Second granularity and inclusive, the cursor mail refetches once
		// per cycle and the upsert swallows it.
		query = strings.TrimSpace(query + fmt.Sprintf(" after:%d", since.Since.Unix()))
	}

	ids, err := p.listAll(ctx, labelId, query)
	if err != nil {
		return nil, mapError("list mails", err)
	}

	reverse(ids)
	if limit := p.account.MaxPerCycle; limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	result := &domain.FetchResult{
		Next: domain.FetchPoint{Since: since.Since},
	}
	if len(ids) == 0 {
		return result, nil
	}

	mails, err := p.getAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	userLabels, err := p.labels.UserLabels(ctx, p.api, p.account.Id)
	if err != nil {
		return nil, err
	}

	for _, m := range mails {
		received := time.Unix(0, m.InternalDate*int64(time.Millisecond))
		if received.After(result.Next.Since) {
			result.Next.Since = received
		}

		infos, err := mail.MailHeaderInfos(m.RawMail)
		if err != nil {
			// The cursor still advances past it, a mail that does not parse
			// today will not parse tomorrow either.
			p.l.WithFields(logrus.Fields{"account": p.account.Id, "mail": m.Id}).Warn("Skipping unparseable mail: ", err)
			continue
		}

		result.Messages = append(result.Messages, &domain.FetchedMessage{
			Ref:        domain.MessageRef{ProviderId: m.Id},
			MailIdHash: infos.MailIdHash,
			Subject:    infos.Subject,
			Sender:     infos.Sender,
			Date:       infos.Date,
			IsUnread:   hasLabel(m.LabelIds, labelUnread),
			Labels:     labelNames(m.LabelIds, userLabels),
			RawMail:    m.RawMail,
		})
	}

	return result, nil
}

func (p *Provider) listAll(ctx context.Context, labelId string, query string) ([]string, error) {
	var all []string
	pageToken := ""
	for {
		ids, next, err := p.api.listMessages(ctx, labelId, query, pageToken, listPageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, ids...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

// getAll hydrates the listed mails bounded-parallel. A mail deleted between
// listing and hydration is skipped, any other failure aborts so the cursor
// cannot advance past mail that was never seen.
func (p *Provider) getAll(ctx context.Context, ids []string) ([]*rawMessage, error) {
	mails := make([]*rawMessage, len(ids))
	errs := make([]error, len(ids))
	sem := make(chan struct{}, fetchConcurrency)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			getCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()
			mails[i], errs[i] = p.api.getMessage(getCtx, id)
		}(i, id)
	}
	wg.Wait()

	fetched := make([]*rawMessage, 0, len(ids))
	for i := range ids {
		if errs[i] == nil {
			fetched = append(fetched, mails[i])
			continue
		}

		err := mapError("fetch mails", errs[i])
		if domain.IsNotFound(err) {
			p.l.WithFields(logrus.Fields{"account": p.account.Id, "mail": ids[i]}).Debug("Mail vanished between listing and fetch")
			continue
		}

		return nil, err
	}

	return fetched, nil
}

func (p *Provider) MarkRead(ctx context.Context, ref domain.MessageRef, read bool) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	var add, remove []string
	if read {
		remove = []string{labelUnread}
	} else {
		add = []string{labelUnread}
	}

	return mapError("mark mail", p.api.modifyMessage(ctx, ref.ProviderId, add, remove))
}

// MoveToTrash is idempotent, trashing an already trashed mail succeeds on
// the server side.
func (p *Provider) MoveToTrash(ctx context.Context, ref domain.MessageRef) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	return mapError("trash mail", p.api.trashMessage(ctx, ref.ProviderId))
}

// RestoreFromTrash untrashes and re-attaches the logical location captured
// when the mail was trashed. Untrashing alone lands in the archive, which
// is exactly right when that is where the mail came from.
func (p *Provider) RestoreFromTrash(ctx context.Context, ref domain.MessageRef, originalFolder string) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	labelId, err := p.labels.Resolve(originalFolder)
	if err != nil {
		return err
	}

	if err := p.api.untrashMessage(ctx, ref.ProviderId); err != nil {
		return mapError("restore mail", err)
	}

	if labelId == "" {
		return nil
	}

	return mapError("restore mail", p.api.modifyMessage(ctx, ref.ProviderId, []string{labelId}, nil))
}

// DeleteMessage without permanent moves to trash. With permanent it deletes
// outright and surfaces failures instead of degrading to a trash move.
func (p *Provider) DeleteMessage(ctx context.Context, ref domain.MessageRef, permanent bool) error {
	if !permanent {
		return p.MoveToTrash(ctx, ref)
	}

	if err := checkRef(ref); err != nil {
		return err
	}

	return mapError("delete mail", p.api.deleteMessage(ctx, ref.ProviderId))
}

// ApplyLabels translates label names to ids and pushes the whole diff as
// one modify. Labels to add are created when missing, labels to remove that
// the server does not know are already gone.
func (p *Provider) ApplyLabels(ctx context.Context, ref domain.MessageRef, add []string, remove []string) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}
	if err := checkRef(ref); err != nil {
		return err
	}

	addIds := make([]string, 0, len(add))
	for _, name := range add {
		id, err := p.labels.EnsureLabel(ctx, p.api, p.account.Id, name)
		if err != nil {
			return err
		}
		addIds = append(addIds, id)
	}

	var removeIds []string
	if len(remove) > 0 {
		userLabels, err := p.labels.UserLabels(ctx, p.api, p.account.Id)
		if err != nil {
			return err
		}

		for _, name := range remove {
			for id, labelName := range userLabels {
				if strings.EqualFold(labelName, name) {
					removeIds = append(removeIds, id)
					break
				}
			}
		}
	}

	if len(addIds) == 0 && len(removeIds) == 0 {
		return nil
	}

	return mapError("label mail", p.api.modifyMessage(ctx, ref.ProviderId, addIds, removeIds))
}

// SendMessage submits through the api. Gmail files the sent copy itself.
func (p *Provider) SendMessage(ctx context.Context, out *domain.OutgoingMessage) error {
	body, err := mail.Compose(out)
	if err != nil {
		return fmt.Errorf("could not compose mail: %w", err)
	}

	err = p.api.sendMessage(ctx, body)
	if err != nil {
		return mapError("send mail", err)
	}

	return nil
}

// Close drops the account's cached label list. The rest client holds no
// connection of its own.
func (p *Provider) Close() error {
	p.labels.Invalidate(p.account.Id)
	return nil
}

func checkRef(ref domain.MessageRef) error {
	if ref.ProviderId == "" {
		return domain.NewProviderError(domain.ErrNotFound, "locate mail", fmt.Errorf("mail has no provider id"))
	}

	return nil
}

func reverse(ids []string) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

func hasLabel(labelIds []string, id string) bool {
	for _, labelId := range labelIds {
		if labelId == id {
			return true
		}
	}

	return false
}

// labelNames maps label ids to user label names. System labels carry state,
// not labeling, and are dropped.
func labelNames(labelIds []string, userLabels map[string]string) []string {
	var names []string
	for _, id := range labelIds {
		if name, ok := userLabels[id]; ok {
			names = append(names, name)
		}
	}

	return names
}
