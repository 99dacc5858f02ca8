// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"fmt"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/mailkeel/mailkeel/domain"
)

// smtpSubmitter submits outgoing mail over SMTPS, one connection per send.
type smtpSubmitter struct {
	host     string
	user     string
	password string
}

func (s *smtpSubmitter) Submit(from string, recipients []string, body []byte) error {
	c, err := smtp.DialTLS(s.host, nil)
	if err != nil {
		return domain.NewProviderError(domain.ErrUnreachable, "send", err)
	}
	defer c.Close()

	err = c.Auth(sasl.NewPlainClient("", s.user, s.password))
	if err != nil {
		return domain.NewProviderError(domain.ErrAuthExpired, "send", err)
	}

	err = c.Mail(from, nil)
	if err != nil {
		return fmt.Errorf("could not announce sender: %w", err)
	}

	for _, rcpt := range recipients {
		err = c.Rcpt(rcpt, nil)
		if err != nil {
			return fmt.Errorf("could not announce recipient %s: %w", rcpt, err)
		}
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("could not open data stream: %w", err)
	}

	_, err = wc.Write(body)
	if err != nil {
		return fmt.Errorf("could not write mail body: %w", err)
	}

	err = wc.Close()
	if err != nil {
		return fmt.Errorf("could not finish data stream: %w", err)
	}

	err = c.Quit()
	if err != nil {
		return fmt.Errorf("could not close submission: %w", err)
	}

	return nil
}
