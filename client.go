package polydub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Polydub API endpoint.
	DefaultBaseURL = "https://api.polydub.ai/v1"
	// DefaultTimeout bounds each individual HTTP call.
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-api-key"
	userAgent    = "polydub-go/1.0"
)

// Client talks to the Polydub API. Its configuration is fixed at
// construction and never mutated, so a single Client is safe to share
// across goroutines; each call owns its own timeout and cancellation.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    *resty.Client
	logger  zerolog.Logger
	clock   clock
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithBaseURL points the client at a self-hosted or mock endpoint.
// Any trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout overrides the per-call timeout. Values <= 0 keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a structured logger. By default the client is
// silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient substitutes the underlying *http.Client, e.g. to
// install a custom transport or proxy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// New creates a Client for the given API key. No network activity
// happens at construction.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, NewAPIError("API key is required")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
		clock:   systemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}
	c.http.
		SetBaseURL(c.baseURL).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return c, nil
}

// BaseURL returns the endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// errorBody is the API's error envelope. Absent fields are tolerated.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Data    any    `json:"data"`
}

// do issues one API call: builds the request, enforces the per-call
// timeout, classifies failures into the error taxonomy, and decodes a
// successful body into out with timestamp normalization applied. A nil
// out (or a 204 response) skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, body any, params map[string]string, out any) error {
	requestID := uuid.NewString()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := c.http.R().
		SetContext(callCtx).
		SetHeader(apiKeyHeader, c.apiKey).
		SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn().
				Str("request_id", requestID).
				Str("method", method).
				Str("path", path).
				Dur("duration", duration).
				Msg("request timed out")
			return &APIError{Type: ErrorTypeGeneric, Message: "Request timeout", Err: err}
		}
		c.logger.Warn().
			Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		message := err.Error()
		if message == "" {
			message = "Unknown error"
		}
		return &APIError{Type: ErrorTypeGeneric, Message: message, Err: err}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", duration).
		Msg("api request completed")

	if resp.IsError() {
		return c.classifyResponse(resp)
	}

	if out == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}
	return decodeBody(resp.Body(), out)
}

// classifyResponse turns a non-success response into the matching
// taxonomy member. The error body decode is best-effort: a malformed
// body falls back to the status's standard reason phrase and never
// masks the original failure.
func (c *Client) classifyResponse(resp *resty.Response) *APIError {
	var eb errorBody
	_ = json.Unmarshal(resp.Body(), &eb)

	message := eb.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return classifyStatus(resp.StatusCode(), message, eb.Code, eb.Data)
}

// decodeBody unmarshals a success body, runs the timestamp walk over
// the generic tree, and lands the result in out. Generic targets take
// the walked tree directly; typed targets are re-decoded through it so
// time.Time fields fill from the normalized values.
func decodeBody(raw []byte, out any) error {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return &APIError{Type: ErrorTypeGeneric, Message: "failed to decode response: " + err.Error(), Err: err}
	}
	generic = normalizeTimestamps(generic)

	switch target := out.(type) {
	case *any:
		*target = generic
		return nil
	case *map[string]any:
		if m, ok := generic.(map[string]any); ok {
			*target = m
			return nil
		}
	}

	buf, err := json.Marshal(generic)
	if err != nil {
		return &APIError{Type: ErrorTypeGeneric, Message: "failed to decode response: " + err.Error(), Err: err}
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return &APIError{Type: ErrorTypeGeneric, Message: "failed to decode response: " + err.Error(), Err: err}
	}
	return nil
}
