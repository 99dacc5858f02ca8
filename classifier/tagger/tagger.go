// SPDX-License-Identifier: GPL-3.0-or-later
package tagger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/mail"
)

const TaggerTimeout = 20 * time.Second

// Tagger talks to an http tagging service. The service sees the parsed
// subject, sender and text body, never the raw mail, and answers with tags,
// a priority and its confidence.
type Tagger struct {
	client   *http.Client
	host     string
	password string
}

func NewTagger(host, password string) (*Tagger, error) {
	tagger := &Tagger{
		client: &http.Client{
			Timeout: TaggerTimeout,
		},
		host:     host,
		password: password,
	}
	err := tagger.Ping()
	if err != nil {
		return nil, fmt.Errorf("could not ping tagger: %w", err)
	}

	return tagger, nil
}

func (tg *Tagger) Ping() error {
	resp, err := tg.client.Get(tg.host + "/ping")
	if err != nil {
		return fmt.Errorf("could not ping tagger: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from tagger, expected 200", resp.StatusCode)
	}
	defer resp.Body.Close()

	return nil
}

type classifyRequest struct {
	Subject string `json:"subject"`
	Sender  string `json:"sender"`
	Body    string `json:"body"`
}

type classifyResponse struct {
	Tags       []string `json:"tags"`
	Priority   string   `json:"priority"`
	Confidence float64  `json:"confidence"`
}

func (tg *Tagger) Classify(rawMail []byte) *domain.TagResult {
	infos, err := mail.MailHeaderInfos(rawMail)
	if err != nil {
		return errResult(fmt.Errorf("could not parse mail headers: %w", err))
	}

	textBody, err := mail.TextBody(rawMail)
	if err != nil {
		return errResult(fmt.Errorf("could not extract mail body: %w", err))
	}

	payload, err := json.Marshal(&classifyRequest{
		Subject: infos.Subject,
		Sender:  infos.Sender,
		Body:    textBody,
	})
	if err != nil {
		return errResult(fmt.Errorf("could not serialize classify request: %w", err))
	}

	req, err := http.NewRequest(http.MethodPost, tg.host+"/classify", bytes.NewReader(payload))
	if err != nil {
		return errResult(fmt.Errorf("could not create classify request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tg.doAuthenticated(req)
	if err != nil {
		return errResult(fmt.Errorf("could not perform classify request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errResult(fmt.Errorf("unexpected status %d from tagger, expected 200", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult(fmt.Errorf("could not read tagger response: %w", err))
	}

	response := &classifyResponse{}
	err = json.Unmarshal(body, response)
	if err != nil {
		return errResult(fmt.Errorf("could not deserialize tagger response: %w", err))
	}

	priority, err := parsePriority(response.Priority)
	if err != nil {
		return errResult(err)
	}

	return &domain.TagResult{
		Tags:       response.Tags,
		Priority:   priority,
		Confidence: response.Confidence,
	}
}

func parsePriority(priority string) (domain.Priority, error) {
	switch priority {
	case "", string(domain.PriorityNormal):
		return domain.PriorityNormal, nil
	case string(domain.PriorityLow):
		return domain.PriorityLow, nil
	case string(domain.PriorityHigh):
		return domain.PriorityHigh, nil
	}

	return "", fmt.Errorf("unexpected priority %q in tagger response", priority)
}

func (tg *Tagger) doAuthenticated(req *http.Request) (*http.Response, error) {
	req.Header.Set("Password", tg.password)
	resp, err := tg.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("could not send request to tagger: %w", err)
	}

	return resp, nil
}

func errResult(err error) *domain.TagResult {
	return &domain.TagResult{Error: err}
}
