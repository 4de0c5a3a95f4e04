// Package gemini is the thin boundary to the generative model. The
// guardrail decision is always made before anything here runs, and nothing
// here feeds back into classification.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/config"
)

// minKeyLength guards against placeholder values like "changeme" being
// treated as a configured credential.
const minKeyLength = 10

// CredentialSource supplies the API credential. config.Config implements
// it; tests supply their own.
type CredentialSource interface {
	GeminiAPIKey() string
}

type Client struct {
	creds      CredentialSource
	model      string
	baseURL    string
	maxRetries int
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.GeminiConfig, creds CredentialSource, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		creds:      creds,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("gemini"),
	}
}

// IsAvailable reports whether a minimally well-formed credential is
// configured. A deployment-readiness check only; it never gates
// classification.
func (c *Client) IsAvailable() bool {
	return len(c.creds.GeminiAPIKey()) > minKeyLength
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the ORIGINAL user message with the selected system prompt
// and returns the model's reply. Retries with exponential backoff on 429
// and 5xx; anything else fails immediately.
func (c *Client) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if !c.IsAvailable() {
		return "", fmt.Errorf("gemini: no API credential configured")
	}

	payload := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: userMessage}}},
		},
	}
	if systemPrompt != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, c.creds.GeminiAPIKey())

	var reply string
	backoff := retry.WithMaxRetries(uint64(c.maxRetries), retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			c.logger.Warn("gemini request failed, retrying",
				zap.Int("status", resp.StatusCode))
			return retry.RetryableError(fmt.Errorf("gemini: status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("gemini: status %d: %s", resp.StatusCode, truncate(data, 200))
		}

		var parsed generateResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("gemini: decode response: %w", err)
		}
		if parsed.Error != nil {
			return fmt.Errorf("gemini: API error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("gemini: empty response")
		}

		reply = parsed.Candidates[0].Content.Parts[0].Text
		return nil
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		data = data[:n]
	}
	return string(data)
}
