package folio

import (
	"fmt"
	"net/http"
	"strings"
)

// Request echo: every network call is mirrored as a copy-pasteable curl
// command on the echo writer. This is a transport-boundary hook, the
// resolvers never look at it.

// echoLogin writes the curl equivalent of the credential exchange.
func (c *Client) echoLogin(requestURL string, body []byte) {
	if c.echo == nil {
		return
	}
	fmt.Fprintf(c.echo, "curl -w '\\n' -X POST -H %s -H %s -H %s %s -d %s --include\n",
		shellQuote("Accept: application/json"),
		shellQuote("Content-Type: application/json"),
		shellQuote(headerTenant+": "+c.tenant),
		shellQuote(requestURL),
		shellQuote(string(body)))
}

// echoRequest writes the curl equivalent of a storage-module lookup.
func (c *Client) echoRequest(req *http.Request) {
	if c.echo == nil {
		return
	}
	var b strings.Builder
	b.WriteString("curl -w '\\n'")
	for _, name := range []string{"Accept", "Content-Type", headerTenant, headerToken} {
		if value := req.Header.Get(name); value != "" {
			fmt.Fprintf(&b, " -H %s", shellQuote(name+": "+value))
		}
	}
	fmt.Fprintf(&b, " %s", shellQuote(req.URL.String()))
	fmt.Fprintln(c.echo, b.String())
}

// StageBreak writes the blank separator emitted after each pipeline stage.
func (c *Client) StageBreak() {
	if c.echo == nil {
		return
	}
	fmt.Fprintln(c.echo)
}

// shellQuote quotes s for a POSIX shell, leaving it bare when no quoting is
// needed.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsFunc(s, needsQuoting) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("@%+=:,./-_", r):
		return false
	}
	return true
}
