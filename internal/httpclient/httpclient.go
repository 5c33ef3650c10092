// Package httpclient provides a HTTP client wrapper.
package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty HTTP client wrapper.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTP client.
func NewHTTPClient(opts ...Option) *HTTPClient {
	client := resty.New()

	c := &HTTPClient{
		Client: client,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Option is a HTTP client option.
type Option func(c *HTTPClient)

// WithBaseURL is a HTTP client option that sets base URL.
func WithBaseURL(url string) Option {
	return func(c *HTTPClient) {
		c.SetBaseURL(url)
	}
}

// WithTimeout is a HTTP client option that sets request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.SetTimeout(timeout)
	}
}

// WithRetryCount is a HTTP client option that sets retry count.
func WithRetryCount(count int) Option {
	return func(c *HTTPClient) {
		c.SetRetryCount(count)
	}
}
