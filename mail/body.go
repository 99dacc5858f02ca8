// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jhillyerd/enmime"
)

// TextBody extracts the plain-text body of a raw mail. Html-only mails are
// down-converted by enmime, so classifiers always get readable text.
func TextBody(rawMail []byte) (string, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(rawMail))
	if err != nil {
		return "", fmt.Errorf("could not parse mail body: %w", err)
	}

	return strings.TrimSpace(envelope.Text), nil
}
