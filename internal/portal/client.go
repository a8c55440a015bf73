package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/faizmokh/pulse/internal/wellbeing"
)

const (
	defaultTimeout = 10 * time.Second
	tracerName     = "github.com/faizmokh/pulse/internal/portal"

	// RequestIDHeader correlates client requests with portal logs.
	RequestIDHeader = "X-Request-ID"
)

// Fetcher loads the dashboard's data sources.
type Fetcher interface {
	CurrentUser(ctx context.Context, s Session) (*wellbeing.User, error)
	LatestTest(ctx context.Context, s Session) (*wellbeing.BurnoutTestResult, error)
	Diary(ctx context.Context, s Session, month wellbeing.Month) ([]wellbeing.MoodEntry, error)
}

// Client talks to the portal REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. The HTTP client is copied first so
// a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			hc := *c.httpClient
			hc.Timeout = timeout
			c.httpClient = &hc
		}
	}
}

// WithTracer overrides the tracer used for request spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithClock overrides the clock used for local session expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient returns a Client rooted at baseURL, e.g. "https://hr.example.com/api".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("portal base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse portal base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("portal base URL %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CurrentUser loads GET /users/me.
func (c *Client) CurrentUser(ctx context.Context, s Session) (*wellbeing.User, error) {
	var user wellbeing.User
	if err := c.get(ctx, s, "current user", "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LatestTest loads GET /burnout-tests/last. A 404 means no test was taken
// and is reported as wellbeing.ErrNotFound.
func (c *Client) LatestTest(ctx context.Context, s Session) (*wellbeing.BurnoutTestResult, error) {
	var test wellbeing.BurnoutTestResult
	if err := c.get(ctx, s, "latest test", "/burnout-tests/last", nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// Diary loads GET /diary for month. The month query parameter is 1-based.
func (c *Client) Diary(ctx context.Context, s Session, month wellbeing.Month) ([]wellbeing.MoodEntry, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(month.Year))
	query.Set("month", strconv.Itoa(int(month.Month)))

	var entries []wellbeing.MoodEntry
	if err := c.get(ctx, s, "diary "+month.String(), "/diary", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, s Session, op, path string, query url.Values, out any) (err error) {
	if s.Token == "" {
		return ErrNoSession
	}
	if s.Expired(c.now()) {
		return ErrSessionExpired
	}

	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	endpoint.RawQuery = query.Encode()
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "portal "+path, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("url.path", endpoint.Path),
		attribute.String("pulse.request_id", requestID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &wellbeing.FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("portal: %s request %s failed: %v", op, requestID, err)
		return &wellbeing.FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, wellbeing.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Printf("portal: %s request %s returned %d", op, requestID, resp.StatusCode)
		return &wellbeing.FetchError{Op: op, StatusCode: resp.StatusCode, Err: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &wellbeing.FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage extracts a {"detail": ...} or {"error": ...} message from an
// error body, returning nil when there is none.
func errorMessage(body io.Reader) error {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return nil
	}
	if json.Unmarshal(data, &payload) != nil {
		return nil
	}
	switch {
	case payload.Detail != "":
		return errors.New(payload.Detail)
	case payload.Error != "":
		return errors.New(payload.Error)
	}
	return nil
}
