// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=mapper_mocks_test.go -package=imapprovider -source mapper.go
import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/log"
)

const (
	mapperCacheSize = 256
	mapperTTL       = 10 * time.Minute
)

// folderLister is the slice of the connection surface that folder
// resolution needs.
type folderLister interface {
	ListFolders() ([]domain.FolderInfo, error)
	CreateFolder(name string) error
}

// Special-use attributes are authoritative when the server advertises them.
var logicalAttributes = map[string]string{
	domain.FolderTrash:   imap.TrashAttr,
	domain.FolderSent:    imap.SentAttr,
	domain.FolderDrafts:  imap.DraftsAttr,
	domain.FolderSpam:    imap.JunkAttr,
	domain.FolderArchive: imap.ArchiveAttr,
}

// Name candidates in preference order, matched case-insensitively. The
// first entry doubles as the name used when the folder has to be created.
var logicalCandidates = map[string][]string{
	domain.FolderInbox:   {"INBOX"},
	domain.FolderTrash:   {"Trash", "Deleted Items", "Deleted Messages", "INBOX.Trash", "[Gmail]/Trash"},
	domain.FolderSent:    {"Sent", "Sent Items", "Sent Messages", "INBOX.Sent", "[Gmail]/Sent Mail"},
	domain.FolderDrafts:  {"Drafts", "INBOX.Drafts", "[Gmail]/Drafts"},
	domain.FolderSpam:    {"Junk", "Spam", "Junk E-mail", "INBOX.Junk", "INBOX.Spam", "[Gmail]/Spam"},
	domain.FolderArchive: {"Archive", "Archives", "INBOX.Archive", "[Gmail]/All Mail"},
}

// Logical folders a provider is expected to have even when the server does
// not, created on first use.
var createIfMissing = map[string]bool{
	domain.FolderTrash:   true,
	domain.FolderArchive: true,
}

// FolderMapper resolves logical folder names to server folder paths and
// caches the result per account. Entries expire so renamed folders are
// picked up without a restart, and a reconnect invalidates eagerly.
type FolderMapper struct {
	cache *expirable.LRU[string, string]
	l     *logrus.Logger
}

func NewFolderMapper(ttl time.Duration) *FolderMapper {
	if ttl <= 0 {
		ttl = mapperTTL
	}

	return &FolderMapper{
		cache: expirable.NewLRU[string, string](mapperCacheSize, nil, ttl),
		l:     log.Logger(log.LOG_IMAP),
	}
}

// Resolve returns the server folder path for a logical name, listing the
// server's folders on a cache miss.
func (f *FolderMapper) Resolve(c folderLister, accountId string, logical string) (string, error) {
	key := cacheKey(accountId, logical)
	if folder, ok := f.cache.Get(key); ok {
		return folder, nil
	}

	candidates, ok := logicalCandidates[logical]
	if !ok {
		return "", domain.NewProviderError(domain.ErrUnsupported, "resolve folder", fmt.Errorf("unknown logical folder %q", logical))
	}

	folders, err := c.ListFolders()
	if err != nil {
		return "", mapError("list folders", err)
	}

	folder := matchByAttribute(folders, logicalAttributes[logical])
	if folder == "" {
		folder = matchByName(folders, candidates)
	}

	if folder == "" && createIfMissing[logical] {
		folder = candidates[0]
		f.l.WithFields(logrus.Fields{"account": accountId, "folder": folder}).Info("Folder missing on server, creating")
		err = c.CreateFolder(folder)
		if err != nil {
			return "", mapError("create folder", err)
		}
	}

	if folder == "" {
		return "", domain.NewProviderError(domain.ErrNotFound, "resolve folder", fmt.Errorf("no folder on server for %q", logical))
	}

	f.cache.Add(key, folder)
	return folder, nil
}

// Invalidate drops all cached resolutions for an account.
func (f *FolderMapper) Invalidate(accountId string) {
	prefix := accountId + "\x00"
	for _, key := range f.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			f.cache.Remove(key)
		}
	}
}

func cacheKey(accountId string, logical string) string {
	return accountId + "\x00" + logical
}

func matchByAttribute(folders []domain.FolderInfo, attr string) string {
	if attr == "" {
		return ""
	}

	for _, folder := range folders {
		for _, a := range folder.Attributes {
			if a == attr {
				return folder.Name
			}
		}
	}

	return ""
}

func matchByName(folders []domain.FolderInfo, candidates []string) string {
	for _, candidate := range candidates {
		for _, folder := range folders {
			if strings.EqualFold(folder.Name, candidate) {
				return folder.Name
			}
		}
	}

	return ""
}
