// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/watcher.go -package=mocks . Watcher
package domain

// Watcher is a per-account background listener that reports remote changes
// through a callback until stopped. Stop blocks until the listener has shut
// down its connection.
type Watcher interface {
	Start() error
	Stop()
}
