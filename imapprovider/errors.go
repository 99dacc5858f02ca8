// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/mailkeel/mailkeel/domain"
)

// mapError classifies IMAP command failures into the provider error taxonomy.
// Recognition is by message text because go-imap surfaces server responses as
// plain errors. Unrecognized errors stay unclassified so the retry budget
// applies to them.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return domain.NewProviderError(domain.ErrUnreachable, op, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "use of closed network connection"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "connection closed"):
		return domain.NewProviderError(domain.ErrUnreachable, op, err)
	case strings.Contains(msg, "authentication"),
		strings.Contains(msg, "login failed"),
		strings.Contains(msg, "invalid credentials"):
		return domain.NewProviderError(domain.ErrAuthExpired, op, err)
	case strings.Contains(msg, "no such mailbox"),
		strings.Contains(msg, "does not exist"),
		strings.Contains(msg, "nonexistent"):
		return domain.NewProviderError(domain.ErrNotFound, op, err)
	case strings.Contains(msg, "too many"),
		strings.Contains(msg, "rate limit"):
		return domain.NewProviderError(domain.ErrRateLimited, op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
