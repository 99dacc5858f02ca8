// SPDX-License-Identifier: GPL-3.0-or-later
package spamfilter

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/mailkeel/mailkeel/domain"

	"github.com/teamwork/spamc"
)

const SpamFilterTimeout = 20 * time.Second

const SpamTag = "spam"

// SpamFilter wraps a spamd instance as a minimal classifier. Spam gets a
// single tag at low priority, everything else passes through untagged.
type SpamFilter struct {
	client *spamc.Client
}

func NewSpamFilter(host string) (*SpamFilter, error) {
	client := spamc.New(host, &net.Dialer{
		Timeout: SpamFilterTimeout,
	})
	err := client.Ping(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("could not ping spamd: %w", err)
	}

	return &SpamFilter{client: client}, nil
}

func (sf *SpamFilter) Classify(rawMail []byte) *domain.TagResult {
	out, err := sf.client.Check(context.TODO(), bytes.NewReader(rawMail), nil)
	if err != nil {
		return &domain.TagResult{Error: fmt.Errorf("could not check spamd: %w", err)}
	}

	return fromScore(out.IsSpam, out.Score)
}

// fromScore maps spamd's score onto a confidence. A score of 10 or more is
// treated as certain spam, a score at or below 0 as certain ham.
func fromScore(isSpam bool, score float64) *domain.TagResult {
	confidence := score / 10
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}

	if !isSpam {
		return &domain.TagResult{
			Priority:   domain.PriorityNormal,
			Confidence: 1 - confidence,
		}
	}

	return &domain.TagResult{
		Tags:       []string{SpamTag},
		Priority:   domain.PriorityLow,
		Confidence: confidence,
	}
}
