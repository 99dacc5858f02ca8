// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io"
	stdmail "net/mail"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"

	"github.com/mailkeel/mailkeel/domain"
)

// Compose renders an outgoing message into a raw rfc822 mail, ready for smtp
// submission and for appending to the sent folder. Bcc recipients are kept
// out of the headers, they only travel in the smtp envelope.
func Compose(out *domain.OutgoingMessage) ([]byte, error) {
	if len(out.To) == 0 {
		return nil, fmt.Errorf("outgoing mail has no recipients")
	}

	from, err := stdmail.ParseAddress(out.From)
	if err != nil {
		return nil, fmt.Errorf("could not parse sender address: %w", err)
	}

	to, err := parseAddresses(out.To)
	if err != nil {
		return nil, err
	}

	header := mail.Header{}
	header.SetDate(time.Now())
	header.SetAddressList("From", []*mail.Address{from})
	header.SetAddressList("To", to)
	if len(out.Cc) > 0 {
		cc, err := parseAddresses(out.Cc)
		if err != nil {
			return nil, err
		}
		header.SetAddressList("Cc", cc)
	}
	header.SetSubject(out.Subject)
	header.SetMessageID(fmt.Sprintf("%s@%s", uuid.NewString(), addressHost(from.Address)))
	if len(out.InReplyTo) > 0 {
		header.Set("In-Reply-To", out.InReplyTo)
		header.Set("References", out.InReplyTo)
	}
	header.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	buffer := &bytes.Buffer{}
	bodyWriter, err := mail.CreateSingleInlineWriter(buffer, header)
	if err != nil {
		return nil, fmt.Errorf("could not create mail writer: %w", err)
	}
	_, err = io.WriteString(bodyWriter, out.TextBody)
	if err != nil {
		return nil, fmt.Errorf("could not write mail body: %w", err)
	}
	err = bodyWriter.Close()
	if err != nil {
		return nil, fmt.Errorf("could not close mail writer: %w", err)
	}

	return buffer.Bytes(), nil
}

// Sender returns the bare envelope sender address of an outgoing message.
func Sender(out *domain.OutgoingMessage) (string, error) {
	a, err := stdmail.ParseAddress(out.From)
	if err != nil {
		return "", fmt.Errorf("could not parse sender address: %w", err)
	}

	return a.Address, nil
}

// Recipients returns the bare envelope addresses of an outgoing message, Bcc
// included.
func Recipients(out *domain.OutgoingMessage) ([]string, error) {
	all := make([]string, 0, len(out.To)+len(out.Cc)+len(out.Bcc))
	all = append(all, out.To...)
	all = append(all, out.Cc...)
	all = append(all, out.Bcc...)

	parsed, err := parseAddresses(all)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0, len(parsed))
	for _, a := range parsed {
		recipients = append(recipients, a.Address)
	}

	return recipients, nil
}

func parseAddresses(addresses []string) ([]*mail.Address, error) {
	parsed := make([]*mail.Address, 0, len(addresses))
	for _, address := range addresses {
		a, err := stdmail.ParseAddress(address)
		if err != nil {
			return nil, fmt.Errorf("could not parse address %q: %w", address, err)
		}
		parsed = append(parsed, a)
	}

	return parsed, nil
}

func addressHost(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 && i+1 < len(address) {
		return address[i+1:]
	}

	return "localhost"
}
