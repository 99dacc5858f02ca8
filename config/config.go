// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mailkeel/mailkeel/domain"
)

type Config struct {
	Database string

	SyncConcurrency int
	DrainBatch      int
	FullSyncEvery   int

	TaggerEndpoint string
	TaggerPassword string
	SpamdHost      string

	Loglevel *string

	Account []AccountConfig
}

type AccountConfig struct {
	Id      string
	Kind    string
	Address string

	ImapHost string
	User     string
	Password string
	SmtpHost string

	TokenFile    string
	ClientId     string
	ClientSecret string

	Folders     []string
	PollSeconds int
	Idle        bool
	MaxPerCycle int
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:        "mailkeel.db",
		SyncConcurrency: 4,
		DrainBatch:      50,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	for i := range config.Account {
		config.Account[i].applyDefaults()
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (a *AccountConfig) applyDefaults() {
	if len(a.Folders) == 0 {
		a.Folders = []string{domain.FolderInbox}
	}
	if a.PollSeconds == 0 {
		a.PollSeconds = 300
	}
	if a.MaxPerCycle == 0 {
		a.MaxPerCycle = 500
	}
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if c.SyncConcurrency < 1 {
		return fmt.Errorf("SyncConcurrency must be at least 1")
	}
	if c.DrainBatch < 1 {
		return fmt.Errorf("DrainBatch must be at least 1")
	}
	if c.FullSyncEvery < 0 {
		return fmt.Errorf("FullSyncEvery must not be negative, set to 0 to disable full reconciliation")
	}

	taggerSet := len(strings.TrimSpace(c.TaggerEndpoint)) > 0
	spamdSet := len(strings.TrimSpace(c.SpamdHost)) > 0
	if taggerSet && spamdSet {
		return fmt.Errorf("TaggerEndpoint and SpamdHost cannot be set at the same time")
	}
	if !taggerSet && !spamdSet {
		return fmt.Errorf("set either TaggerEndpoint or SpamdHost to use either classifier")
	}
	if taggerSet {
		if err := validateNonEmptyStringField(c.TaggerPassword, "TaggerPassword must be set if TaggerEndpoint is set"); err != nil {
			return err
		}
	}

	if len(c.Account) == 0 {
		return fmt.Errorf("configure at least one [[Account]] block")
	}

	seen := make(map[string]bool)
	for i := range c.Account {
		account := &c.Account[i]
		if err := account.validate(); err != nil {
			return err
		}
		if seen[account.Id] {
			return fmt.Errorf("account Id %q is configured twice", account.Id)
		}
		seen[account.Id] = true
	}

	return nil
}

func (a *AccountConfig) validate() error {
	if err := validateNonEmptyStringField(a.Id, "account Id must not be empty, set to a unique name for the account"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(a.Address, fmt.Sprintf("account %q: Address must not be empty, set to the mailbox address", a.Id)); err != nil {
		return err
	}

	switch a.Kind {
	case string(domain.KindImap):
		if err := validateNonEmptyStringField(a.ImapHost, fmt.Sprintf("account %q: ImapHost must not be empty, set to host:port of the imap server", a.Id)); err != nil {
			return err
		}
		if err := validateNonEmptyStringField(a.User, fmt.Sprintf("account %q: User must not be empty, set to the username on the imap server", a.Id)); err != nil {
			return err
		}
		if err := validateNonEmptyStringField(a.Password, fmt.Sprintf("account %q: Password must not be empty, set to the password of User on the imap server", a.Id)); err != nil {
			return err
		}
	case string(domain.KindGmail):
		if err := validateNonEmptyStringField(a.TokenFile, fmt.Sprintf("account %q: TokenFile must not be empty, set to the file holding the oauth token", a.Id)); err != nil {
			return err
		}
		if err := validateNonEmptyStringField(a.ClientId, fmt.Sprintf("account %q: ClientId must not be empty, set to the oauth client id", a.Id)); err != nil {
			return err
		}
		if err := validateNonEmptyStringField(a.ClientSecret, fmt.Sprintf("account %q: ClientSecret must not be empty, set to the oauth client secret", a.Id)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("account %q: Kind must be %q or %q", a.Id, domain.KindImap, domain.KindGmail)
	}

	for _, folder := range a.Folders {
		if !knownFolder(folder) {
			return fmt.Errorf("account %q: unknown folder %q, valid folders are inbox, sent, drafts, trash, archive and spam", a.Id, folder)
		}
	}

	if a.PollSeconds < 1 {
		return fmt.Errorf("account %q: PollSeconds must be at least 1", a.Id)
	}
	if a.MaxPerCycle < 1 {
		return fmt.Errorf("account %q: MaxPerCycle must be at least 1", a.Id)
	}

	return nil
}

func knownFolder(folder string) bool {
	switch folder {
	case domain.FolderInbox, domain.FolderSent, domain.FolderDrafts,
		domain.FolderTrash, domain.FolderArchive, domain.FolderSpam:
		return true
	}

	return false
}

// Account converts the config block into the runtime descriptor handed to the
// sync core. Credential material stays in the config; only its name travels.
func (a *AccountConfig) Account() domain.Account {
	credentialsRef := a.User
	if a.Kind == string(domain.KindGmail) {
		credentialsRef = a.TokenFile
	}

	return domain.Account{
		Id:             a.Id,
		Kind:           domain.ProviderKind(a.Kind),
		Address:        a.Address,
		CredentialsRef: credentialsRef,
		Folders:        a.Folders,
		PollInterval:   time.Duration(a.PollSeconds) * time.Second,
		IdleEnabled:    a.Idle,
		MaxPerCycle:    a.MaxPerCycle,
	}
}

func (c *Config) Accounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(c.Account))
	for i := range c.Account {
		accounts = append(accounts, c.Account[i].Account())
	}

	return accounts
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
