// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=strategies_mocks_test.go -package=imapprovider -source strategies.go

import (
	"fmt"

	"github.com/emersion/go-imap"
)

// Servers differ in which removal commands they speak. The capability
// checks in newConn pick an implementation per concern and fall back to
// flag&expunge and copy&delete on bare servers.

// flagClient marks mails \Deleted in the selected folder.
type flagClient interface {
	flagDeleted(uids []uint32) (*imap.SeqSet, error)
}

// expunger permanently removes mails from the selected folder. precheck
// returns an obstacle error when an expunge would touch more than the given
// mails, and a second error when the check itself failed.
type expunger interface {
	expunge(uids []uint32) error
	precheck() (error, error)
}

// relocator transfers mails out of the selected folder into dest.
type relocator interface {
	relocate(uids []uint32, dest string) error
}

type uidExpungeClient interface {
	flagClient
	UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error
}

type plainExpungeClient interface {
	flagClient
	Expunge(ch chan uint32) error
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
}

type moveClient interface {
	UidMove(seqset *imap.SeqSet, dest string) error
}

type copyClient interface {
	UidCopy(seqset *imap.SeqSet, dest string) error
}

// uidExpunger removes through UIDPLUS. UID EXPUNGE only ever touches the
// given set, so there is nothing to precheck.
type uidExpunger struct {
	conn uidExpungeClient
}

func (u *uidExpunger) expunge(uids []uint32) error {
	seqset, err := u.conn.flagDeleted(uids)
	if err != nil {
		return fmt.Errorf("could not flag mails as deleted: %w", err)
	}

	return drainExpunge(func(ch chan uint32) error {
		return u.conn.UidExpunge(seqset, ch)
	}, len(uids))
}

func (u *uidExpunger) precheck() (error, error) {
	return nil, nil
}

// ErrDeletedFlagPresent blocks plain expunges while foreign flagged mail
// sits in the folder, an expunge would take it along.
var ErrDeletedFlagPresent = fmt.Errorf("folder has unrelated mails with the deleted flag set")

// flagExpunger removes through plain flag&expunge. EXPUNGE clears every
// flagged mail in the folder, so the precheck refuses while foreign flagged
// mail is present.
type flagExpunger struct {
	conn plainExpungeClient
}

func (f *flagExpunger) expunge(uids []uint32) error {
	obstacle, err := f.precheck()
	if err != nil {
		return fmt.Errorf("could not check folder state: %w", err)
	}

	if obstacle != nil {
		return fmt.Errorf("folder is not safe to expunge: %w", obstacle)
	}

	_, err = f.conn.flagDeleted(uids)
	if err != nil {
		return fmt.Errorf("could not flag mails as deleted: %w", err)
	}

	return drainExpunge(f.conn.Expunge, len(uids))
}

func (f *flagExpunger) precheck() (error, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	uids, err := f.conn.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for flagged mails: %w", err)
	}

	if len(uids) > 0 {
		return ErrDeletedFlagPresent, nil
	}

	return nil, nil
}

// moveRelocator relocates through the MOVE extension in one round trip.
type moveRelocator struct {
	conn moveClient
}

func (m *moveRelocator) relocate(uids []uint32, dest string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	return m.conn.UidMove(seqset, dest)
}

// copyExpungeRelocator emulates MOVE with COPY plus an expunge of the
// originals. The precheck runs before the copy touches the server.
type copyExpungeRelocator struct {
	conn    copyClient
	remover expunger
}

func (c *copyExpungeRelocator) relocate(uids []uint32, dest string) error {
	obstacle, err := c.remover.precheck()
	if err != nil {
		return fmt.Errorf("could not check folder state before move: %w", err)
	}

	if obstacle != nil {
		return fmt.Errorf("folder is not safe for copy&delete: %w", obstacle)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err = c.conn.UidCopy(seqset, dest)
	if err != nil {
		return fmt.Errorf("could not copy mails: %w", err)
	}

	err = c.remover.expunge(uids)
	if err != nil {
		return fmt.Errorf("could not delete copied mails: %w", err)
	}

	return nil
}

// drainExpunge runs an expunge call and counts the untagged expunge responses
// the server streams back. A mismatch means the folder lost more or fewer
// mails than asked for.
func drainExpunge(run func(ch chan uint32) error, want int) error {
	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- run(out)
	}()

	expunged := 0
	for range out {
		expunged++
	}

	err := <-done
	if err != nil {
		return fmt.Errorf("could not expunge mails: %w", err)
	}

	if expunged != want {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", want, expunged)
	}

	return nil
}
