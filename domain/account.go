// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

type ProviderKind string

const (
	KindImap  = ProviderKind("imap")
	KindGmail = ProviderKind("gmail")
)

// Account is one configured mailbox. The sync core treats it as read-only at
// runtime; only the watermarks kept in the store advance.
type Account struct {
	Id      string
	Kind    ProviderKind
	Address string

	// CredentialsRef names the credential material for this account without
	// carrying it. Resolution happens when the provider is constructed.
	CredentialsRef string

	Folders      []string
	PollInterval time.Duration
	IdleEnabled  bool
	MaxPerCycle  int
}
