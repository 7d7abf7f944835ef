// Package client embeds the exam-taking side of the portal: an API
// client for the portal endpoints and a session controller that drives
// a timed attempt from loading through submission.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// API is the portal surface the session controller depends on.
type API interface {
	FetchTest(ctx context.Context, testID uint) (*domain.Test, error)
	SubmitAnswers(ctx context.Context, testID uint, answers domain.AnswerSet) error
}

// HTTPClient talks to a running portal over HTTP with a bearer token.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewHTTPClient creates a portal client. The token comes from a prior
// POST /api/login.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates and returns a client bound to the issued token.
func Login(ctx context.Context, baseURL, email, password string) (*HTTPClient, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := (&http.Client{Timeout: 15 * time.Second}).Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return NewHTTPClient(baseURL, body.Token), nil
}

type testWire struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Questions   []struct {
		ID      uint                `json:"id"`
		Section string              `json:"section"`
		Text    string              `json:"text"`
		Type    domain.QuestionType `json:"type"`
		Options []string            `json:"options"`
	} `json:"questions"`
}

// FetchTest loads the full test document for one attempt.
func (c *HTTPClient) FetchTest(ctx context.Context, testID uint) (*domain.Test, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/tests/%d", c.baseURL, testID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build test request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("test request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := c.statusError(resp); err != nil {
		return nil, err
	}

	var wire testWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode test document: %w", err)
	}

	test := &domain.Test{
		ID:              wire.ID,
		Title:           wire.Title,
		Description:     wire.Description,
		DurationMinutes: wire.Duration,
		Questions:       make([]domain.Question, 0, len(wire.Questions)),
	}
	for _, q := range wire.Questions {
		test.Questions = append(test.Questions, domain.Question{
			ID:      q.ID,
			Section: q.Section,
			Text:    q.Text,
			Type:    q.Type,
			Options: q.Options,
		})
	}
	return test, nil
}

// SubmitAnswers posts one attempt's answer set.
func (c *HTTPClient) SubmitAnswers(ctx context.Context, testID uint, answers domain.AnswerSet) error {
	payload, err := json.Marshal(map[string]domain.AnswerSet{"answers": answers})
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/tests/%d/submit", c.baseURL, testID), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return c.statusError(resp)
}

func (c *HTTPClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return domain.ErrNoToken
	case http.StatusForbidden:
		return domain.ErrTokenInvalid
	case http.StatusNotFound:
		return domain.ErrTestNotFound
	case http.StatusConflict:
		return domain.ErrDuplicateSubmission
	default:
		return fmt.Errorf("portal returned status %d", resp.StatusCode)
	}
}

var _ API = (*HTTPClient)(nil)
