// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

//go:generate mockgen -destination=api_mocks_test.go -package=gmailprovider -source api.go
import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

// All gmail calls act on the mailbox the token authorizes.
const gmailUser = "me"

// rawMessage is one hydrated mail as it comes off the wire, with the
// base64url body already decoded.
type rawMessage struct {
	Id           string
	LabelIds     []string
	InternalDate int64
	RawMail      []byte
}

// api is the slice of the gmail surface the provider talks to. The rest
// client implements it and the circuit breaker decorates it.
type api interface {
	profile(ctx context.Context) (string, error)
	listLabels(ctx context.Context) ([]*gmail.Label, error)
	createLabel(ctx context.Context, name string) (*gmail.Label, error)
	listMessages(ctx context.Context, labelId string, query string, pageToken string, pageSize int64) ([]string, string, error)
	getMessage(ctx context.Context, id string) (*rawMessage, error)
	modifyMessage(ctx context.Context, id string, add []string, remove []string) error
	trashMessage(ctx context.Context, id string) error
	untrashMessage(ctx context.Context, id string) error
	deleteMessage(ctx context.Context, id string) error
	sendMessage(ctx context.Context, raw []byte) error
}

type restApi struct {
	service *gmail.Service
}

func (r *restApi) profile(ctx context.Context) (string, error) {
	profile, err := r.service.Users.GetProfile(gmailUser).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return profile.EmailAddress, nil
}

func (r *restApi) listLabels(ctx context.Context) ([]*gmail.Label, error) {
	resp, err := r.service.Users.Labels.List(gmailUser).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return resp.Labels, nil
}

func (r *restApi) createLabel(ctx context.Context, name string) (*gmail.Label, error) {
	label := &gmail.Label{
		Name:                  name,
		LabelListVisibility:   "labelShow",
		MessageListVisibility: "show",
	}

	return r.service.Users.Labels.Create(gmailUser, label).Context(ctx).Do()
}

func (r *restApi) listMessages(ctx context.Context, labelId string, query string, pageToken string, pageSize int64) ([]string, string, error) {
	call := r.service.Users.Messages.List(gmailUser).MaxResults(pageSize)
	if labelId != "" {
		call = call.LabelIds(labelId)
	}
	if query != "" {
		call = call.Q(query)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, "", err
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}

	return ids, resp.NextPageToken, nil
}

func (r *restApi) getMessage(ctx context.Context, id string) (*rawMessage, error) {
	m, err := r.service.Users.Messages.Get(gmailUser, id).Format("raw").Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	raw, err := decodeRaw(m.Raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode raw mail %s: %w", id, err)
	}

	return &rawMessage{
		Id:           m.Id,
		LabelIds:     m.LabelIds,
		InternalDate: m.InternalDate,
		RawMail:      raw,
	}, nil
}

func (r *restApi) modifyMessage(ctx context.Context, id string, add []string, remove []string) error {
	req := &gmail.ModifyMessageRequest{
		AddLabelIds:    add,
		RemoveLabelIds: remove,
	}

	_, err := r.service.Users.Messages.Modify(gmailUser, id, req).Context(ctx).Do()
	return err
}

func (r *restApi) trashMessage(ctx context.Context, id string) error {
	_, err := r.service.Users.Messages.Trash(gmailUser, id).Context(ctx).Do()
	return err
}

func (r *restApi) untrashMessage(ctx context.Context, id string) error {
	_, err := r.service.Users.Messages.Untrash(gmailUser, id).Context(ctx).Do()
	return err
}

func (r *restApi) deleteMessage(ctx context.Context, id string) error {
	return r.service.Users.Messages.Delete(gmailUser, id).Context(ctx).Do()
}

func (r *restApi) sendMessage(ctx context.Context, raw []byte) error {
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}

	_, err := r.service.Users.Messages.Send(gmailUser, msg).Context(ctx).Do()
	return err
}

// decodeRaw decodes the url-safe base64 of a raw mail body. Padding is
// optional on the wire.
func decodeRaw(data string) ([]byte, error) {
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return decoded, nil
	}

	return base64.URLEncoding.DecodeString(data)
}
