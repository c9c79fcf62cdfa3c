package highrise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "highton (github.com/s0up4200/highton)"
	// apiKeyPassword is the placeholder password Highrise expects alongside an API token.
	apiKeyPassword = "X"
	serviceHost    = "highrisehq.com"
)

// Client represents a Highrise API client
type Client struct {
	user      string
	transport *transport
	logger    zerolog.Logger
}

// NewClient creates a new Highrise client for the account subdomain user.
func NewClient(user, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: highrise user is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: highrise API key is required", ErrInvalidConfig)
	}

	o := &clientOptions{
		baseURL:   fmt.Sprintf("https://%s.%s", user, serviceHost),
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		password:  apiKeyPassword,
	}
	for _, opt := range opts {
		opt(o)
	}

	base, err := url.Parse(strings.TrimRight(o.baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	logger = logger.With().Str("component", "highrise").Str("user", user).Logger()

	return &Client{
		user: user,
		transport: &transport{
			baseURL:    base,
			apiKey:     apiKey,
			password:   o.password,
			userAgent:  o.userAgent,
			httpClient: httpClient,
			logger:     logger,
		},
		logger: logger,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.transport.baseURL.String()
}

// User returns the account subdomain the client was created for.
func (c *Client) User() string {
	return c.user
}

// TestConnection verifies the credentials by fetching the authenticated user.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Me(ctx); err != nil {
		return fmt.Errorf("failed to connect to Highrise: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.transport.do(ctx, &request{method: http.MethodGet, endpoint: endpoint, params: params})
}

// getEntity fetches a single record and fails when the service returned no body.
func (c *Client) getEntity(ctx context.Context, endpoint string) (*Response, error) {
	resp, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.Kind != KindEntity {
		return nil, &ParseError{Endpoint: endpoint, Err: ErrEmptyResponse}
	}
	return resp, nil
}

// mutate runs a write call and logs failures before handing them back.
func (c *Client) mutate(ctx context.Context, req *request) (*Response, error) {
	resp, err := c.transport.do(ctx, req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", req.method).
			Str("endpoint", req.endpoint).
			Msg("Highrise mutation failed")
		return nil, err
	}
	return resp, nil
}

func entityPath(collection string, id int64) string {
	return fmt.Sprintf("%s/%d", collection, id)
}
