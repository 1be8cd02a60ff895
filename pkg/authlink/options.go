package authlink

import (
	"strings"
	"time"

	"github.com/samvad-hq/authlink-go/pkg/httpclient"
)

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient sets the transport used for every call.
func WithHTTPClient(client httpclient.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.transport = client
		}
	}
}

// WithBaseURL points the client at another API host, e.g. a staging
// deployment or a test server. A trailing slash is dropped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = ensureLogger(log)
	}
}

// WithTimeout bounds each call of the default transport. It has no effect when
// WithHTTPClient supplies the transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}
