// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"mime"
	stdmail "net/mail"
	"time"

	"github.com/emersion/go-message/charset"
)

// HeaderInfos carries the parsed header fields stored for a fetched mail.
type HeaderInfos struct {
	Subject    string
	Sender     string
	Date       time.Time
	MailIdHash string
}

// MailHeaderInfos parses the headers of a raw mail. The MailIdHash is derived
// from the Message-Id and Received headers and identifies a mail across
// provider-side moves, where uids change but headers do not.
func MailHeaderInfos(rawMail []byte) (*HeaderInfos, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	messageIdHeader := msg.Header["Message-Id"]
	receivedHeader := msg.Header["Received"]
	if len(receivedHeader) == 0 && len(messageIdHeader) == 0 {
		return nil, fmt.Errorf("Received and Message-Id header not found")
	}

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		return nil, fmt.Errorf("could not decode subject header: %w", err)
	}

	sender := msg.Header.Get("From")
	if address, err := stdmail.ParseAddress(sender); err == nil {
		sender = address.Address
	}

	date, err := msg.Header.Date()
	if err != nil {
		date = time.Time{}
	}

	mailIdHash, err := hash([][]string{messageIdHeader, receivedHeader})
	if err != nil {
		return nil, fmt.Errorf("could not hash headers: %w", err)
	}

	return &HeaderInfos{
		Subject:    subject,
		Sender:     sender,
		Date:       date,
		MailIdHash: mailIdHash,
	}, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

func hash(input [][]string) (string, error) {
	sha := sha256.New()
	for _, i := range input {
		for _, ii := range i {
			_, err := sha.Write([]byte(ii))
			if err != nil {
				return "", fmt.Errorf("could not hash: %w", err)
			}
		}
	}

	return fmt.Sprintf("%x", sha.Sum(nil)), nil
}
