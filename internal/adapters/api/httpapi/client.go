package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bnema/witrix-cli/internal/domain"
	wxlog "github.com/bnema/witrix-cli/internal/log"
	"github.com/bnema/witrix-cli/internal/ports"
)

const (
	maxResponseBytes = 1 << 20

	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 10
	DefaultBurst     = 5

	RequestIDHeader = "X-Request-ID"
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	Burst     int
	UserAgent string
}

// Client talks to the dashboard API. Guild endpoints take their bearer
// token from the TokenSource; auth endpoints receive it explicitly.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     ports.TokenSource
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
	requestID  func() string
}

var (
	_ ports.AuthAPI       = (*Client)(nil)
	_ ports.GuildLister   = (*Client)(nil)
	_ ports.GuildAdminAPI = (*Client)(nil)
)

func New(cfg Config, httpClient *http.Client, tokens ports.TokenSource, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api base url %q has no host", cfg.BaseURL)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Limit(DefaultRateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "wx"
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		tokens:     tokens,
		timeout:    timeout,
		userAgent:  userAgent,
		logger:     wxlog.OrDiscard(logger),
		requestID:  uuid.NewString,
	}, nil
}

// BaseURL is the normalized API origin plus path prefix.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: wait for rate limiter: %w", req.op, err)
	}

	endpoint := *c.baseURL
	endpoint.RawPath = c.baseURL.EscapedPath() + req.path
	unescaped, err := url.PathUnescape(endpoint.RawPath)
	if err != nil {
		return fmt.Errorf("build %s url: %w", req.op, err)
	}
	endpoint.Path = unescaped
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.op, err)
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", req.op, err)
	}
	requestID := c.requestID()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"op", req.op,
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(started),
	)

	limited := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(req.op, resp.StatusCode, limited)
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.op, err)
	}

	return nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) bearer() string {
	if c.tokens == nil {
		return ""
	}

	return c.tokens.Token()
}

// decodeAPIError reads the error detail the API sends: either a plain
// string or a list of validation errors.
func decodeAPIError(op string, status int, body io.Reader) error {
	fallback := fmt.Sprintf("%s failed: %d", op, status)

	raw, err := io.ReadAll(body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return &domain.APIError{Status: status, Detail: fallback}
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return &domain.APIError{Status: status, Detail: fallback}
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil && strings.TrimSpace(detail) != "" {
		return &domain.APIError{Status: status, Detail: detail}
	}

	var validation []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &validation); err == nil {
		for _, item := range validation {
			if strings.TrimSpace(item.Msg) != "" {
				return &domain.APIError{Status: status, Detail: item.Msg}
			}
		}
	}

	return &domain.APIError{Status: status, Detail: fallback}
}

func guildPath(guildID domain.GuildID, parts ...string) (string, error) {
	id := strings.TrimSpace(guildID.String())
	if id == "" {
		return "", errors.New("guild id is required")
	}

	var b strings.Builder
	b.WriteString("/api/guilds/")
	b.WriteString(url.PathEscape(id))
	for _, part := range parts {
		b.WriteByte('/')
		b.WriteString(part)
	}

	return b.String(), nil
}
