// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func writeTokenFile(t *testing.T, token *oauth2.Token) string {
	t.Helper()

	raw, err := json.Marshal(token)
	assert.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "token.json")
	err = os.WriteFile(filename, raw, 0600)
	assert.NoError(t, err)

	return filename
}

func TestFileTokenSource(t *testing.T) {
	filename := writeTokenFile(t, &oauth2.Token{
		AccessToken:  "at-123",
		TokenType:    "Bearer",
		RefreshToken: "rt-456",
		Expiry:       time.Now().Add(time.Hour),
	})

	source, err := FileTokenSource(context.Background(), "client", "secret", filename)
	assert.NoError(t, err)

	// A token that has not expired comes back as-is, no refresh round trip.
	token, err := source.Token()
	assert.NoError(t, err)
	assert.Equal(t, "at-123", token.AccessToken)
	assert.Equal(t, "Bearer", token.Type())
}

func TestFileTokenSourceMissingFile(t *testing.T) {
	_, err := FileTokenSource(context.Background(), "client", "secret", filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read token file")
}

func TestFileTokenSourceBadJson(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "token.json")
	err := os.WriteFile(filename, []byte("not json"), 0600)
	assert.NoError(t, err)

	_, err = FileTokenSource(context.Background(), "client", "secret", filename)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse token file")
}
