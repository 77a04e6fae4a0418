// Package client implements the access object for a Dicoogle archive's REST
// API: one Client per server, holding the endpoint URL and the session
// token, with per-resource handles hanging off it.
package client

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

const defaultTimeout = 300 * time.Second

// Client is a handle on one Dicoogle server. It is the only long-lived
// mutable state of the library: it tracks the session token set by Login,
// RestoreSession or SetToken and cleared by Logout or Reset.
//
// Methods are safe for concurrent use, but a request already under
// construction when the token changes completes with the token it started
// with. There is no fencing between token mutation and in-flight requests;
// callers needing a strict ordering must sequence the calls themselves.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	mu       sync.RWMutex
	token    string
	username string
	roles    []string
}

// Option configures a Client at construction time.
type Option func(*options)

type options struct {
	httpClient *http.Client
	secure     bool
	token      string
	timeout    time.Duration
}

// WithHTTPClient replaces the default HTTP client, e.g. to supply a custom
// transport or TLS configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithSecure selects https when the endpoint carries no scheme of its own.
func WithSecure(secure bool) Option {
	return func(o *options) { o.secure = secure }
}

// WithToken starts the session with a previously obtained token, e.g. one
// saved from an earlier Login. The server is not contacted; use
// RestoreSession to validate the token and learn the identity behind it.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithTimeout overrides the default request timeout. Ignored when a custom
// HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// New creates a client for the archive at the given endpoint. An endpoint
// with no scheme is prefixed with http:// (or https:// under
// WithSecure(true)); one trailing slash is stripped.
func New(endpoint string, opts ...Option) (*Client, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	base, err := parseEndpoint(endpoint, o.secure)
	if err != nil {
		return nil, err
	}

	hc := o.httpClient
	if hc == nil {
		timeout := o.timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(nil),
		}
	}

	return &Client{
		baseURL:    base,
		httpClient: hc,
		token:      o.token,
	}, nil
}

func parseEndpoint(endpoint string, secure bool) (*url.URL, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, dgerrors.New("missing server endpoint").
			WithCode(dgerrors.CodeConfiguration).
			WithHint("pass the archive's base URL, e.g. http://localhost:8080")
	}
	if !strings.Contains(endpoint, "://") {
		if secure {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	base, err := url.Parse(endpoint)
	if err != nil || base.Host == "" {
		return nil, dgerrors.Wrap(err, "invalid server endpoint %q", endpoint).
			WithCode(dgerrors.CodeConfiguration)
	}
	return base, nil
}

// Endpoint returns the normalized base URL the client talks to.
func (c *Client) Endpoint() string {
	return c.baseURL.String()
}

// Token returns the current session token, or "" when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken assigns a session token out of band, e.g. one restored from
// storage. It does not contact the server.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Username returns the name of the logged-in user, or "" when the session
// identity is unknown.
func (c *Client) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

// Roles returns the roles of the logged-in user.
func (c *Client) Roles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	roles := make([]string, len(c.roles))
	copy(roles, c.roles)
	return roles
}

// Reset clears the session token and identity without contacting the
// server.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearSessionLocked()
}

func (c *Client) setSession(token, username string, roles []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.username = username
	c.roles = roles
}

func (c *Client) clearSessionLocked() {
	c.token = ""
	c.username = ""
	c.roles = nil
}
