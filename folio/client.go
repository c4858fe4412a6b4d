package folio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Okapi header names. The token comes back from /authn/login in the
// x-okapi-token response header, not the body.
const (
	headerTenant = "X-Okapi-Tenant"
	headerToken  = "X-Okapi-Token"
)

// Storage module endpoints.
const (
	instancesEndpoint = "/instance-storage/instances"
	holdingsEndpoint  = "/holdings-storage/holdings"
	itemsEndpoint     = "/item-storage/items"
)

// Client represents a FOLIO Okapi API client
type Client struct {
	baseURL    string
	tenant     string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
	echo       io.Writer
}

// NewClient creates a new FOLIO client
func NewClient(baseURL, tenant string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("folio URL is required")
	}
	if tenant == "" {
		return nil, fmt.Errorf("folio tenant is required")
	}

	// Ensure base URL ends without slash
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:    baseURL,
		tenant:     tenant,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Token returns the session token obtained by the last Login call. Empty
// until Login succeeds, and still empty when Okapi withheld the token.
func (c *Client) Token() string {
	return c.token
}

// search performs a storage-module lookup and decodes the response body into
// out. The HTTP status is deliberately not consulted: Okapi rejections either
// fail to decode (ParseError) or decode to zero records, and both must flow
// through the same empty-result path as a legitimate no-match answer.
func (c *Client) search(ctx context.Context, endpoint, field, value string, out any) error {
	params := url.Values{}
	params.Set("query", notSuppressed(field, value))

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerTenant, c.tenant)
	if c.token != "" {
		req.Header.Set(headerToken, c.token)
	}

	c.echoRequest(req)

	c.logger.Debug().Str("url", requestURL).Msg("Making Okapi storage request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}

	return nil
}
