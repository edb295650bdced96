// file: internals/platform/sms/client.go
//
// Thin client for the SMS/WhatsApp vendor. One request, one error wrap,
// no retry: delivery status arrives later on the vendor webhook.
package sms

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

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

type Sender interface {
	Send(ctx context.Context, to, body, channel string) (vendorMessageID string, err error)
}

type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewClient(cfg configs.Settings) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(cfg.SMSBaseURL, "/"),
		apiKey:  cfg.SMSAPIKey,
		from:    cfg.SMSSender,
	}
}

type sendRequest struct {
	APIKey  string `json:"api_key"`
	To      string `json:"to"`
	From    string `json:"from"`
	SMS     string `json:"sms"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}

func (c *Client) Send(ctx context.Context, to, body, channel string) (string, error) {
	if channel != ChannelWhatsApp {
		channel = "generic"
	}
	payload, err := json.Marshal(sendRequest{
		APIKey:  c.apiKey,
		To:      to,
		From:    c.from,
		SMS:     body,
		Type:    "plain",
		Channel: channel,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/sms/send", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("messaging vendor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("messaging vendor: bad response body: %w", err)
	}
	return out.MessageID, nil
}
