package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// loginRequest is the body of POST /authn/login
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against Okapi and stores the session token on the
// client. Okapi returns the token in the x-okapi-token response header. An
// answer without the header is not an error: the client stays
// unauthenticated and lets the storage modules reject the follow-up calls
// themselves.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	requestURL := c.baseURL + "/authn/login"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerTenant, c.tenant)

	c.echoLogin(requestURL, body)

	c.logger.Debug().Str("url", requestURL).Str("username", username).Msg("Logging in to Okapi")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	// Body is irrelevant, the token travels in a header.
	io.Copy(io.Discard, resp.Body)

	token := resp.Header.Get(headerToken)
	if token == "" {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("Okapi issued no token, continuing without credentials")
	}

	c.token = token
	return token, nil
}
