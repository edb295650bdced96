// file: internals/platform/ai/client.go
//
// Completion client for the hosted model API. One configured handle,
// constructed at startup and passed to whoever needs it; nothing here is
// package-global, so tests can substitute a fake Completer.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"school360_backend/internals/configs"
)

type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Client struct {
	httpc    *http.Client
	baseURL  string
	apiKey   string
	model    string
	maxRetry int
}

func NewClient(cfg configs.Settings) *Client {
	retries := cfg.AIMaxRetry
	if retries < 1 {
		retries = 1
	}
	return &Client{
		httpc:    &http.Client{Timeout: 60 * time.Second},
		baseURL:  strings.TrimRight(cfg.AIBaseURL, "/"),
		apiKey:   cfg.AIAPIKey,
		model:    cfg.AIModel,
		maxRetry: retries,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete posts one chat completion. Transient failures (network, 5xx,
// 429) are retried a fixed number of times with linear backoff; anything
// else fails immediately with the upstream status and body.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetry; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt-1) * 500 * time.Millisecond):
			}
		}

		text, retryable, err := c.once(ctx, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", fmt.Errorf("model API unavailable after %d attempts: %w", c.maxRetry, lastErr)
}

func (c *Client) once(ctx context.Context, payload []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return "", true, fmt.Errorf("model API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, fmt.Errorf("model API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", false, fmt.Errorf("model API: bad response body: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", false, fmt.Errorf("model API: empty choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), false, nil
}

// ClassifySentiment labels a report text Positive/Negative/Neutral.
// Any unrecognized answer degrades to Neutral rather than erroring.
func ClassifySentiment(ctx context.Context, c Completer, reportText string) (string, error) {
	out, err := c.Complete(ctx,
		"You classify school reports. Answer with exactly one word: Positive, Negative, or Neutral.",
		reportText,
	)
	if err != nil {
		return "", err
	}
	switch s := strings.ToLower(strings.TrimSpace(out)); {
	case strings.HasPrefix(s, "positive"):
		return "Positive", nil
	case strings.HasPrefix(s, "negative"):
		return "Negative", nil
	default:
		return "Neutral", nil
	}
}
