// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

// breakerApi guards the rest client against a failing backend. A run of
// server errors opens the circuit and calls fail fast until the backend
// recovers. Client errors pass through unchanged and uncounted, a bad
// request says nothing about the backend's health.
type breakerApi struct {
	api api
	cb  *gobreaker.CircuitBreaker
}

func newBreakerApi(inner api, accountId string, l *logrus.Logger) *breakerApi {
	settings := gobreaker.Settings{
		Name:        "gmail-" + accountId,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 || (counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("Circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			_, ok := err.(*nonCircuitError)
			return ok
		},
	}

	return &breakerApi{api: inner, cb: gobreaker.NewCircuitBreaker(settings)}
}

// nonCircuitError wraps client errors so they do not count against the
// circuit.
type nonCircuitError struct {
	err error
}

func (e *nonCircuitError) Error() string {
	return e.err.Error()
}

func (b *breakerApi) run(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		if err := fn(); err != nil {
			if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != 429 {
				return nil, &nonCircuitError{err: err}
			}
			return nil, err
		}
		return nil, nil
	})

	if nce, ok := err.(*nonCircuitError); ok {
		return nce.err
	}

	return err
}

func (b *breakerApi) profile(ctx context.Context) (string, error) {
	var address string
	err := b.run(func() error {
		var err error
		address, err = b.api.profile(ctx)
		return err
	})

	return address, err
}

func (b *breakerApi) listLabels(ctx context.Context) ([]*gmail.Label, error) {
	var labels []*gmail.Label
	err := b.run(func() error {
		var err error
		labels, err = b.api.listLabels(ctx)
		return err
	})

	return labels, err
}

func (b *breakerApi) createLabel(ctx context.Context, name string) (*gmail.Label, error) {
	var label *gmail.Label
	err := b.run(func() error {
		var err error
		label, err = b.api.createLabel(ctx, name)
		return err
	})

	return label, err
}

func (b *breakerApi) listMessages(ctx context.Context, labelId string, query string, pageToken string, pageSize int64) ([]string, string, error) {
	var ids []string
	var next string
	err := b.run(func() error {
		var err error
		ids, next, err = b.api.listMessages(ctx, labelId, query, pageToken, pageSize)
		return err
	})

	return ids, next, err
}

func (b *breakerApi) getMessage(ctx context.Context, id string) (*rawMessage, error) {
	var m *rawMessage
	err := b.run(func() error {
		var err error
		m, err = b.api.getMessage(ctx, id)
		return err
	})

	return m, err
}

func (b *breakerApi) modifyMessage(ctx context.Context, id string, add []string, remove []string) error {
	return b.run(func() error {
		return b.api.modifyMessage(ctx, id, add, remove)
	})
}

func (b *breakerApi) trashMessage(ctx context.Context, id string) error {
	return b.run(func() error {
		return b.api.trashMessage(ctx, id)
	})
}

func (b *breakerApi) untrashMessage(ctx context.Context, id string) error {
	return b.run(func() error {
		return b.api.untrashMessage(ctx, id)
	})
}

func (b *breakerApi) deleteMessage(ctx context.Context, id string) error {
	return b.run(func() error {
		return b.api.deleteMessage(ctx, id)
	})
}

func (b *breakerApi) sendMessage(ctx context.Context, raw []byte) error {
	return b.run(func() error {
		return b.api.sendMessage(ctx, raw)
	})
}
