// file: internals/platform/pdf/client.go
//
// HTML-in, PDF-bytes-out vendor client (payslips).
package pdf

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

type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg configs.Settings) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: 60 * time.Second},
		baseURL: strings.TrimRight(cfg.PDFBaseURL, "/"),
		apiKey:  cfg.PDFAPIKey,
	}
}

func (c *Client) Render(ctx context.Context, html string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"source":    html,
		"landscape": false,
		"use_print": true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/convert/pdf", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("api", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("PDF vendor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return io.ReadAll(resp.Body)
}
