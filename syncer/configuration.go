// SPDX-License-Identifier: GPL-3.0-or-later
package syncer

import (
	"fmt"
	"time"
)

type ConfigFunc func(c *configuration) error

func Concurrency(n int) ConfigFunc {
	return func(c *configuration) error {
		if n < 1 {
			return fmt.Errorf("Concurrency must be at least 1")
		}

		c.Concurrency = n
		return nil
	}
}

func CycleTimeout(d time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if d <= 0 {
			return fmt.Errorf("CycleTimeout must be positive")
		}

		c.CycleTimeout = d
		return nil
	}
}

func DrainBatch(n int) ConfigFunc {
	return func(c *configuration) error {
		if n < 1 {
			return fmt.Errorf("DrainBatch must be at least 1")
		}

		c.DrainBatch = n
		return nil
	}
}

func ClassifyConcurrency(n int) ConfigFunc {
	return func(c *configuration) error {
		if n < 1 {
			return fmt.Errorf("ClassifyConcurrency must be at least 1")
		}

		c.ClassifyConcurrency = n
		return nil
	}
}

// FullSyncEvery makes every nth cycle per account fetch from a zeroed
// cursor so provider-side deletions and backfilled mail are reconciled.
func FullSyncEvery(n int) ConfigFunc {
	return func(c *configuration) error {
		if n < 1 {
			return fmt.Errorf("FullSyncEvery must be at least 1, leave it unset to disable full reconciliation")
		}

		c.FullSyncEvery = n
		return nil
	}
}

// Clock swaps the time source, tests pin it.
func Clock(now func() time.Time) ConfigFunc {
	return func(c *configuration) error {
		if now == nil {
			return fmt.Errorf("Clock must not be nil")
		}

		c.Now = now
		return nil
	}
}

type configuration struct {
	Concurrency         int
	CycleTimeout        time.Duration
	DrainBatch          int
	ClassifyConcurrency int
	FullSyncEvery       int

	Now func() time.Time
}

func defaultConfiguration() *configuration {
	return &configuration{
		Concurrency:         4,
		CycleTimeout:        5 * time.Minute,
		DrainBatch:          50,
		ClassifyConcurrency: 8,
		Now:                 time.Now,
	}
}
