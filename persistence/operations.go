// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mailkeel/mailkeel/domain"
)

type dbOp struct {
	Id             int64
	AccountId      string
	MessageId      int64
	Kind           string
	Status         string
	FolderArg      string
	ProviderFolder string
	Uid            uint32
	ProviderId     string
	Attempts       int
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (o *dbOp) toDomain() *domain.PendingOp {
	return &domain.PendingOp{
		Id:             o.Id,
		AccountId:      o.AccountId,
		MessageId:      o.MessageId,
		Kind:           domain.OpKind(o.Kind),
		Status:         domain.OpStatus(o.Status),
		FolderArg:      o.FolderArg,
		ProviderFolder: o.ProviderFolder,
		Uid:            o.Uid,
		ProviderId:     o.ProviderId,
		Attempts:       o.Attempts,
		LastError:      o.LastError,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

const opColumns = `id, accountid, messageid, kind, status, folderarg, providerfolder, uid, providerid,
	attempts, lasterror, createdat, updatedat`

func (p *Persistence) InsertOp(op domain.SaveOp) (int64, error) {
	now := time.Now().UTC()
	result, err := p.db.Exec(
		`INSERT INTO pendingops(accountid, messageid, kind, status, folderarg, providerfolder, uid, providerid, createdat, updatedat)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		op.AccountId, op.MessageId, string(op.Kind), string(domain.OpPending),
		op.FolderArg, op.ProviderFolder, op.Uid, op.ProviderId, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("could not insert operation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get op id: %w", err)
	}

	return id, nil
}

func (p *Persistence) GetOp(id int64) (*domain.PendingOp, error) {
	op := dbOp{}

	err := p.db.Get(
		&op,
		`SELECT `+opColumns+` from pendingops WHERE id = ?`,
		id,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return op.toDomain(), nil
}

// LiveOps returns the not-yet-executed operations targeting a message, in
// enqueue order. Coalescing decisions are made against this list.
func (p *Persistence) LiveOps(messageId int64) ([]*domain.PendingOp, error) {
	return p.selectOps(
		`SELECT `+opColumns+` from pendingops WHERE messageid = ? AND status = ? ORDER BY id`,
		messageId, string(domain.OpPending),
	)
}

func (p *Persistence) OldestPendingOps(accountId string, n int) ([]*domain.PendingOp, error) {
	return p.selectOps(
		`SELECT `+opColumns+` from pendingops WHERE accountid = ? AND status = ? ORDER BY id LIMIT ?`,
		accountId, string(domain.OpPending), n,
	)
}

func (p *Persistence) PendingOps(accountId string) ([]*domain.PendingOp, error) {
	return p.selectOps(
		`SELECT `+opColumns+` from pendingops WHERE accountid = ? AND status = ? ORDER BY id`,
		accountId, string(domain.OpPending),
	)
}

func (p *Persistence) FailedOps(accountId string) ([]*domain.PendingOp, error) {
	return p.selectOps(
		`SELECT `+opColumns+` from pendingops WHERE accountid = ? AND status = ? ORDER BY id`,
		accountId, string(domain.OpFailed),
	)
}

func (p *Persistence) selectOps(qry string, args ...interface{}) ([]*domain.PendingOp, error) {
	dbOps := []dbOp{}

	err := p.db.Select(&dbOps, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	ops := []*domain.PendingOp{}
	for i := range dbOps {
		ops = append(ops, dbOps[i].toDomain())
	}

	return ops, nil
}

func (p *Persistence) DeleteOp(id int64) error {
	result, err := p.db.Exec(
		"DELETE FROM pendingops WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("could not delete operation: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) MarkOpCompleted(id int64) error {
	result, err := p.db.Exec(
		"UPDATE pendingops set status = ?, lasterror = '', updatedat = ? WHERE id = ?",
		string(domain.OpCompleted), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("could not mark operation completed: %w", err)
	}

	return singleRowAffected(result)
}

func (p *Persistence) MarkOpFailed(id int64, lastError string) error {
	result, err := p.db.Exec(
		"UPDATE pendingops set status = ?, lasterror = ?, updatedat = ? WHERE id = ?",
		string(domain.OpFailed), lastError, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("could not mark operation failed: %w", err)
	}

	return singleRowAffected(result)
}

// RecordOpAttempt bumps the attempt counter after a retryable failure and
// returns the new count. The caller decides whether the op is out of
// attempts.
func (p *Persistence) RecordOpAttempt(id int64, lastError string) (int, error) {
	result, err := p.db.Exec(
		"UPDATE pendingops set attempts = attempts + 1, lasterror = ?, updatedat = ? WHERE id = ?",
		lastError, time.Now().UTC(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("could not record attempt: %w", err)
	}

	err = singleRowAffected(result)
	if err != nil {
		return 0, err
	}

	attempts := 0
	err = p.db.Get(&attempts, "SELECT attempts from pendingops WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("could not read attempts: %w", err)
	}

	return attempts, nil
}

func (p *Persistence) PurgeCompletedOps(before time.Time) (int64, error) {
	result, err := p.db.Exec(
		"DELETE FROM pendingops WHERE status = ? AND updatedat < ?",
		string(domain.OpCompleted), before.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("could not purge operations: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get num of affected rows: %w", err)
	}

	if purged > 0 {
		p.l.WithField("Count", purged).Debug("Purged completed operations")
	}

	return purged, nil
}
