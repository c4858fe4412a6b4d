package folio

import (
	"io"
	"net/http"
	"time"
)

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestEcho enables the curl-equivalent request echo on w. Every
// network call writes one copy-pasteable curl line; StageBreak writes the
// blank separators between pipeline stages.
func WithRequestEcho(w io.Writer) Option {
	return func(c *Client) {
		c.echo = w
	}
}
