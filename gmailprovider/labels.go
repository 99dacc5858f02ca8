// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

//go:generate mockgen -destination=labels_mocks_test.go -package=gmailprovider -source labels.go
import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/gmail/v1"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
)

const (
	labelCacheSize = 64
	labelCacheTTL  = 10 * time.Minute
)

// Gmail ships the mailbox locations as system labels with fixed ids.
const (
	labelInbox  = "INBOX"
	labelSent   = "SENT"
	labelDraft  = "DRAFT"
	labelTrash  = "TRASH"
	labelSpam   = "SPAM"
	labelUnread = "UNREAD"
)

const (
	labelTypeSystem = "system"
	labelTypeUser   = "user"
)

// The archive is the absence of the mailbox labels rather than a label of
// its own, it resolves to the empty id.
var systemLabels = map[string]string{
	domain.FolderInbox:   labelInbox,
	domain.FolderSent:    labelSent,
	domain.FolderDrafts:  labelDraft,
	domain.FolderTrash:   labelTrash,
	domain.FolderSpam:    labelSpam,
	domain.FolderArchive: "",
}

// labelLister is the slice of the api surface that label resolution needs.
type labelLister interface {
	listLabels(ctx context.Context) ([]*gmail.Label, error)
	createLabel(ctx context.Context, name string) (*gmail.Label, error)
}

// LabelMapper resolves logical folders to system label ids and user label
// names to their server-assigned ids. The label list is cached per account,
// entries expire so labels created elsewhere are picked up without a
// restart.
type LabelMapper struct {
	cache *expirable.LRU[string, []*gmail.Label]
	l     *logrus.Logger
}

func NewLabelMapper(ttl time.Duration) *LabelMapper {
	if ttl <= 0 {
		ttl = labelCacheTTL
	}

	return &LabelMapper{
		cache: expirable.NewLRU[string, []*gmail.Label](labelCacheSize, nil, ttl),
		l:     log.Logger(log.LOG_GMAIL),
	}
}

// Resolve maps a logical folder to its system label id.
func (m *LabelMapper) Resolve(logical string) (string, error) {
	id, ok := systemLabels[logical]
	if !ok {
		return "", domain.NewProviderError(domain.ErrUnsupported, "resolve folder", fmt.Errorf("unknown logical folder %q", logical))
	}

	return id, nil
}

// EnsureLabel returns the id of the named user label, creating the label on
// the server when it is missing.
func (m *LabelMapper) EnsureLabel(ctx context.Context, c labelLister, accountId string, name string) (string, error) {
	labels, err := m.labels(ctx, c, accountId)
	if err != nil {
		return "", err
	}

	for _, label := range labels {
		if label.Type == labelTypeUser && strings.EqualFold(label.Name, name) {
			return label.Id, nil
		}
	}

	created, err := c.createLabel(ctx, name)
	if err != nil {
		return "", mapError("create label", err)
	}

	m.l.WithFields(logrus.Fields{"account": accountId, "label": name}).Info("Label missing on server, created")
	m.Invalidate(accountId)
	return created.Id, nil
}

// UserLabels returns the id to name mapping of the account's user labels.
func (m *LabelMapper) UserLabels(ctx context.Context, c labelLister, accountId string) (map[string]string, error) {
	labels, err := m.labels(ctx, c, accountId)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for _, label := range labels {
		if label.Type == labelTypeUser {
			names[label.Id] = label.Name
		}
	}

	return names, nil
}

// Invalidate drops the cached label list of an account.
func (m *LabelMapper) Invalidate(accountId string) {
	m.cache.Remove(accountId)
}

func (m *LabelMapper) labels(ctx context.Context, c labelLister, accountId string) ([]*gmail.Label, error) {
	if labels, ok := m.cache.Get(accountId); ok {
		return labels, nil
	}

	labels, err := c.listLabels(ctx)
	if err != nil {
		return nil, mapError("list labels", err)
	}

	m.cache.Add(accountId, labels)
	return labels, nil
}
