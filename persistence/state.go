// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mailkeel/mailkeel/domain"

	"github.com/sirupsen/logrus"
)

func (p *Persistence) FolderState(accountId string, name string) (*domain.FolderState, error) {
	state := struct {
		AccountId   string
		Name        string
		UidValidity uint32
		LastUid     uint32
		Since       time.Time
	}{}

	err := p.db.Get(
		&state,
		`SELECT accountid, name, uidvalidity, lastuid, since from folderstate WHERE accountid = ? AND name = ?`,
		accountId,
		name,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return &domain.FolderState{
		AccountId:   state.AccountId,
		Name:        state.Name,
		UidValidity: state.UidValidity,
		LastUid:     state.LastUid,
		Since:       state.Since,
	}, nil
}

func (p *Persistence) SaveFolderState(state *domain.FolderState) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO folderstate (accountid, name, uidvalidity, lastuid, since) VALUES (?, ?, ?, ?, ?)",
		state.AccountId,
		state.Name,
		state.UidValidity,
		state.LastUid,
		state.Since.UTC(),
	)

	if err != nil {
		return fmt.Errorf("could not save folder state: %w", err)
	}

	p.l.WithFields(logrus.Fields{
		"Account":     state.AccountId,
		"Name":        state.Name,
		"UidValidity": state.UidValidity,
		"LastUid":     state.LastUid,
	}).Debug("Persisted folder state")
	return nil
}

func (p *Persistence) LastSync(accountId string) (time.Time, error) {
	lastSync := time.Time{}

	err := p.db.Get(
		&lastSync,
		`SELECT lastsync from syncstate WHERE accountid = ?`,
		accountId,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("could not query db: %w", err)
	}

	return lastSync, nil
}

func (p *Persistence) SaveLastSync(accountId string, at time.Time) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO syncstate (accountid, lastsync) VALUES (?, ?)",
		accountId,
		at.UTC(),
	)

	if err != nil {
		return fmt.Errorf("could not save last sync: %w", err)
	}

	return nil
}
