package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rce-newyear/greetings-api/pkg/httpclient"
	"github.com/rce-newyear/greetings-api/pkg/logger"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
	"go.uber.org/zap"
)

var (
	// ErrRateLimited is returned when the gateway throttles the request (429).
	// The caller decides whether to retry; the client never retries on its own.
	ErrRateLimited = errors.New("ai gateway rate limited")

	// ErrQuotaExhausted is returned when the gateway reports exhausted
	// credits (402).
	ErrQuotaExhausted = errors.New("ai gateway quota exhausted")

	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = errors.New("ai gateway api key not configured")

	// ErrUpstream covers every recoverable anomaly: transport failures,
	// timeouts, unexpected statuses and empty completions. Callers degrade
	// to local composition on this error.
	ErrUpstream = errors.New("ai gateway upstream anomaly")
)

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient httpclient.Client
}

// NewClient creates a gateway client. An empty apiKey is allowed at
// construction time; Complete reports ErrMissingCredential per call so the
// condition is testable without environment mutation.
func NewClient(endpoint, apiKey, model string, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete performs one chat-completions exchange and returns the raw
// completion text. Exactly one outbound call per invocation.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	start := time.Now()

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record("transport_error", start, zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.record("rate_limited", start)
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		c.record("quota_exhausted", start)
		return "", ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		// Read a bounded prefix of the error body for the log
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck
		c.record("upstream_error", start,
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", errBody))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		c.record("decode_error", start, zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		c.record("empty_completion", start)
		return "", fmt.Errorf("%w: no content in completion", ErrUpstream)
	}

	c.record("success", start)
	return chatResp.Choices[0].Message.Content, nil
}

func (c *Client) record(status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.AIGatewayRequestDuration.WithLabelValues(status).Observe(duration)
	metrics.AIGatewayRequestTotal.WithLabelValues(status).Inc()

	if status == "success" {
		logger.LogAPICall("ai_gateway", "chat_completions", "success", duration)
	} else {
		logger.LogAPICall("ai_gateway", "chat_completions", "error", duration,
			append(fields, zap.String("reason", status))...)
	}
}
