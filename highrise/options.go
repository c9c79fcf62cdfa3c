package highrise

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	password   string
}

// WithBaseURL overrides the https://<user>.highrisehq.com API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
// Note: This option is ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithPassword replaces the placeholder basic-auth password sent with the API key.
func WithPassword(password string) Option {
	return func(o *clientOptions) {
		o.password = password
	}
}
