// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mailkeel/mailkeel/domain"

	"github.com/jmoiron/sqlx"
)

type dbMessage struct {
	Id             int64
	AccountId      string
	Folder         string
	OriginalFolder *string
	ProviderFolder string
	Uid            uint32
	ProviderId     string
	MailIdHash     string
	Subject        string
	Sender         string
	Date           time.Time
	IsUnread       bool
	SyncedUnread   bool
	Labels         string
	Tags           string
	Priority       string
	Classified     bool
	FetchedAt      time.Time
}

func (m *dbMessage) toDomain() *domain.Message {
	return &domain.Message{
		Id:             m.Id,
		AccountId:      m.AccountId,
		Folder:         m.Folder,
		OriginalFolder: m.OriginalFolder,
		ProviderFolder: m.ProviderFolder,
		Uid:            m.Uid,
		ProviderId:     m.ProviderId,
		MailIdHash:     m.MailIdHash,
		Subject:        m.Subject,
		Sender:         m.Sender,
		Date:           m.Date,
		IsUnread:       m.IsUnread,
		SyncedUnread:   m.SyncedUnread,
		Labels:         splitList(m.Labels),
		Tags:           splitList(m.Tags),
		Priority:       domain.Priority(m.Priority),
		Classified:     m.Classified,
		FetchedAt:      m.FetchedAt,
	}
}

const messageColumns = `id, accountid, folder, originalfolder, providerfolder, uid, providerid,
	mailidhash, subject, sender, date, isunread, syncedunread, labels, tags, priority, classified, fetchedat`

// UpsertMessages writes fetched provider truth. Rows are keyed by
// (accountid, mailidhash), so a mail seen at a new location re-binds its
// existing row instead of inserting a duplicate. A locally toggled read state
// that has not been confirmed yet survives the upsert.
func (p *Persistence) UpsertMessages(accountId string, msgs []domain.SaveMessage) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages(accountid, folder, providerfolder, uid, providerid, mailidhash, subject, sender, date, isunread, syncedunread, labels, fetchedat)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(accountid, mailidhash) DO UPDATE SET
			folder = excluded.folder,
			providerfolder = excluded.providerfolder,
			uid = excluded.uid,
			providerid = excluded.providerid,
			isunread = CASE WHEN messages.isunread = messages.syncedunread THEN excluded.isunread ELSE messages.isunread END,
			syncedunread = excluded.isunread,
			labels = excluded.labels,
			fetchedat = excluded.fetchedat`,
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}

	now := time.Now().UTC()
	for _, msg := range msgs {
		_, err := stmt.Exec(
			accountId, msg.Folder, msg.ProviderFolder, msg.Uid, msg.ProviderId, msg.MailIdHash,
			msg.Subject, msg.Sender, msg.Date.UTC(), msg.IsUnread, msg.IsUnread, joinList(msg.Labels), now,
		)

		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save mail: %w", err))
		}
	}

	return txEnd(tx, nil)
}

func (p *Persistence) GetMessage(id int64) (*domain.Message, error) {
	dbMail := dbMessage{}

	err := p.db.Get(
		&dbMail,
		`SELECT `+messageColumns+` from messages WHERE id = ?`,
		id,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbMail.toDomain(), nil
}

func (p *Persistence) FindMessageByHash(accountId string, mailIdHash string) (*domain.Message, error) {
	dbMail := dbMessage{}

	err := p.db.Get(
		&dbMail,
		`SELECT `+messageColumns+` from messages WHERE accountid = ? AND mailidhash = ?`,
		accountId,
		mailIdHash,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbMail.toDomain(), nil
}

func (p *Persistence) HashesExist(accountId string, mailIdHashes []string) (map[string]bool, error) {
	if len(mailIdHashes) == 0 {
		return map[string]bool{}, nil
	}

	qry, args, err := sqlx.Named(
		"SELECT mailidhash from messages WHERE accountid = :accountid AND mailidhash IN (:hashes)",
		map[string]interface{}{
			"accountid": accountId,
			"hashes":    mailIdHashes,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create query: %w", err)
	}

	qry, args, err = sqlx.In(qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not replace IN in query: %w", err)
	}

	hashes := []string{}
	err = p.db.Select(
		&hashes,
		qry,
		args...,
	)

	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	result := map[string]bool{}
	for _, hash := range hashes {
		result[hash] = true
	}

	return result, nil
}

func (p *Persistence) MessagesInFolder(accountId string, folder string) ([]*domain.Message, error) {
	dbMessages := []dbMessage{}

	err := p.db.Select(
		&dbMessages,
		`SELECT `+messageColumns+` from messages WHERE accountid = ? AND folder = ? ORDER BY date DESC`,
		accountId,
		folder,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	messages := []*domain.Message{}
	for i := range dbMessages {
		messages = append(messages, dbMessages[i].toDomain())
	}

	return messages, nil
}

func (p *Persistence) SetMessageFolder(id int64, folder string, originalFolder *string) error {
	result, err := p.db.Exec(
		"UPDATE messages set folder = ?, originalfolder = ? WHERE id = ?",
		folder, originalFolder, id,
	)
	if err != nil {
		return fmt.Errorf("could not update folder: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) SetMessageUnread(id int64, unread bool) error {
	result, err := p.db.Exec(
		"UPDATE messages set isunread = ? WHERE id = ?",
		unread, id,
	)
	if err != nil {
		return fmt.Errorf("could not update read state: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) SetSyncedUnread(id int64, unread bool) error {
	result, err := p.db.Exec(
		"UPDATE messages set syncedunread = ? WHERE id = ?",
		unread, id,
	)
	if err != nil {
		return fmt.Errorf("could not update confirmed read state: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) SetMessageTags(id int64, tags []string, priority domain.Priority) error {
	result, err := p.db.Exec(
		"UPDATE messages set tags = ?, priority = ?, classified = 1 WHERE id = ?",
		joinList(tags), string(priority), id,
	)
	if err != nil {
		return fmt.Errorf("could not update tags: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) SetMessageLabels(id int64, labels []string) error {
	result, err := p.db.Exec(
		"UPDATE messages set labels = ? WHERE id = ?",
		joinList(labels), id,
	)
	if err != nil {
		return fmt.Errorf("could not update labels: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) DeleteMessage(id int64) error {
	result, err := p.db.Exec(
		"DELETE FROM messages WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("could not delete message: %w", err)
	}

	return singleRowAffected(result)
}
