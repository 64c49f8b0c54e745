package research

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTitle is rendered when the service omits first_answer.
	DefaultTitle = "No title returned"
	// DefaultSummary is rendered when the service omits second_answer.
	DefaultSummary = "No summary available for this topic yet."
	// FallbackStatusMessage covers non-2xx responses whose body carries no
	// usable detail or error field.
	FallbackStatusMessage = "The research service returned an unexpected error."
	// FallbackTransportMessage covers failures that happen before a status
	// line ever arrives.
	FallbackTransportMessage = "Unable to reach the research service."
)

const defaultAskHTTPTimeout = 90 * time.Second

const maxResponseBytes = 1 << 20

// Answer is the title/summary pair rendered as the result card.
type Answer struct {
	Title   string
	Summary string
}

// Client answers free-text research questions.
type Client interface {
	Ask(ctx context.Context, prompt string) (Answer, error)
}

// Config describes how to build an HTTP ask client.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

// New builds a Client that POSTs prompts to the configured endpoint.
func New(cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("research: endpoint is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultAskHTTPTimeout}
	}
	return &httpClient{endpoint: cfg.Endpoint, client: client}, nil
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	FirstAnswer  string `json:"first_answer"`
	SecondAnswer string `json:"second_answer"`
}

type askErrorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c *httpClient) Ask(ctx context.Context, prompt string) (Answer, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Answer{}, errors.New("research: prompt is empty")
	}

	buf, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return Answer{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return Answer{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Answer{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Answer{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Answer{}, errors.New(statusMessage(body))
	}

	var parsed askResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Answer{}, fmt.Errorf("research: decode ask response: %w", err)
	}
	return Answer{
		Title:   stringOrDefault(parsed.FirstAnswer, DefaultTitle),
		Summary: stringOrDefault(parsed.SecondAnswer, DefaultSummary),
	}, nil
}

// statusMessage derives the displayable message for a non-2xx response. The
// detail field wins over error; a body that is not JSON falls back to the
// fixed message.
func statusMessage(body []byte) string {
	var parsed askErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return FallbackStatusMessage
	}
	if msg := strings.TrimSpace(parsed.Detail); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(parsed.Error); msg != "" {
		return msg
	}
	return FallbackStatusMessage
}

func stringOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
