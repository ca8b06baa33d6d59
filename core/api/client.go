package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bookstore/core/logger"
	"github.com/dmitrymomot/bookstore/core/session"
)

// DefaultLoginPath is where the client navigates after a 401 response.
const DefaultLoginPath = "/login"

// Navigator performs a hard navigation. *router.Navigator satisfies it.
type Navigator interface {
	ForceNavigate(ctx context.Context, path string) error
}

// Request describes one outbound call.
type Request struct {
	Method string
	// Path is appended to the base URL, e.g. "/books/42".
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// Response is a successful (2xx) backend response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client calls the bookstore REST backend on behalf of the current session.
type Client struct {
	baseURL   string
	http      *http.Client
	sessions  *session.Manager
	navigator Navigator
	loginPath string
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the client's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNavigator sets the navigator used for the forced redirect after a 401.
func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// WithLoginPath overrides DefaultLoginPath.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// New creates an API client.
func New(cfg Config, sessions *session.Manager, opts ...Option) (*Client, error) {
	if sessions == nil {
		return nil, ErrNoSessions
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      http.DefaultClient,
		sessions:  sessions,
		loginPath: DefaultLoginPath,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends req. A 2xx response is returned as is. A 401 wipes the session and
// forces navigation to the login route before the *HTTPError is returned.
// Other statuses yield *HTTPError, transport failures *NetworkError and
// unbuildable requests *RequestError. Nothing is retried.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	requestID := httpReq.Header.Get("X-Request-ID")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			logger.RequestID(requestID),
			logger.Method(httpReq.Method),
			logger.Path(req.Path),
			logger.Error(err),
		)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	c.logger.DebugContext(ctx, "api request",
		logger.RequestID(requestID),
		logger.Method(httpReq.Method),
		logger.Path(req.Path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
		logger.Error(readErr),
	)

	// A 401 ends the session even when its body cannot be read.
	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(ctx)
		return nil, newHTTPError(resp.StatusCode, resp.Header, body)
	}
	if readErr != nil {
		return nil, &NetworkError{Err: readErr}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
	}

	return nil, newHTTPError(resp.StatusCode, resp.Header, body)
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(c.baseURL + req.Path)
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}

// expireSession clears the session and forces navigation to login.
// Failures are logged; the caller still receives the original 401.
func (c *Client) expireSession(ctx context.Context) {
	if err := c.sessions.Clear(ctx); err != nil {
		c.logger.ErrorContext(ctx, "failed to clear rejected session", logger.Error(err))
	}
	if c.navigator == nil {
		return
	}
	if err := c.navigator.ForceNavigate(ctx, c.loginPath); err != nil {
		c.logger.ErrorContext(ctx, "failed to navigate to login", logger.Route(c.loginPath), logger.Error(err))
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// segment escapes a single path parameter.
func segment(v string) string {
	return url.PathEscape(v)
}
