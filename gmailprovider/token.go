// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// FileTokenSource builds a self-refreshing token source from an oauth token
// stored on disk. Permanent deletion is only allowed under the full mail
// scope, so that is the one requested.
func FileTokenSource(ctx context.Context, clientId, clientSecret, tokenFile string) (oauth2.TokenSource, error) {
	raw, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not read token file: %w", err)
	}

	token := &oauth2.Token{}
	err = json.Unmarshal(raw, token)
	if err != nil {
		return nil, fmt.Errorf("could not parse token file: %w", err)
	}

	config := &oauth2.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		Scopes:       []string{gmail.MailGoogleComScope},
		Endpoint:     google.Endpoint,
	}

	return config.TokenSource(ctx, token), nil
}
