// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/api/googleapi"

	"github.com/mailkeel/mailkeel/domain"
)

// Reasons gmail reports on a 403 that mean throttling rather than a
// revoked grant.
var rateLimitReasons = map[string]bool{
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"dailyLimitExceeded":    true,
	"quotaExceeded":         true,
}

// mapError classifies gmail call failures into the provider error taxonomy.
// An open circuit counts as unreachable, the backend is failing whether or
// not this call reached it. Unrecognized errors stay unclassified so the
// retry budget applies to them.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return err
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewProviderError(domain.ErrUnreachable, op, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401:
			return domain.NewProviderError(domain.ErrAuthExpired, op, err)
		case apiErr.Code == 403 && isRateLimit(apiErr):
			return domain.NewProviderError(domain.ErrRateLimited, op, err)
		case apiErr.Code == 403:
			return domain.NewProviderError(domain.ErrAuthExpired, op, err)
		case apiErr.Code == 404:
			return domain.NewProviderError(domain.ErrNotFound, op, err)
		case apiErr.Code == 429:
			return domain.NewProviderError(domain.ErrRateLimited, op, err)
		case apiErr.Code >= 500:
			return domain.NewProviderError(domain.ErrUnreachable, op, err)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return domain.NewProviderError(domain.ErrUnreachable, op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isRateLimit(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		if rateLimitReasons[item.Reason] {
			return true
		}
	}

	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota")
}
