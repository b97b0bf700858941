// Package api provides the HTTP client for the DNSDB lookup API.
package api

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hstern/dnsdb-query/internal/models"
)

// maxLineBytes bounds a single NDJSON response line. Records with large
// rdata sets (TXT, DNSKEY) overflow bufio.Scanner's default 64 KiB.
const maxLineBytes = 1 << 20

// QueryError is returned for any non-success HTTP response from the
// lookup service. It carries the server's error message verbatim.
type QueryError struct {
	StatusCode int
	Message    string
}

func (e *QueryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client wraps http.Client for lookup requests against a DNSDB server.
type Client struct {
	server string
	apiKey string
	limit  int
	hc     *http.Client
}

// NewClient configures an HTTP client for the given server and API key.
// A limit > 0 caps the number of records the server returns per query.
// A zero timeout leaves the transport default in place. insecure skips
// TLS certificate verification.
func NewClient(server, apiKey string, limit int, timeout time.Duration, insecure bool) *Client {
	tr := &http.Transport{}
	if insecure {
		//nolint:gosec
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		server: strings.TrimRight(server, "/"),
		apiKey: apiKey,
		limit:  limit,
		hc:     &http.Client{Timeout: timeout, Transport: tr},
	}
}

// QueryRRset looks up observations by rrset name. rrtype and bailiwick
// are optional; a bailiwick without a type implies type ANY.
func (c *Client) QueryRRset(ctx context.Context, name, rrtype, bailiwick string) ([]models.Record, error) {
	var path string
	switch {
	case bailiwick != "":
		if rrtype == "" {
			rrtype = "ANY"
		}
		path = "rrset/name/" + quote(name) + "/" + rrtype + "/" + quote(bailiwick)
	case rrtype != "":
		path = "rrset/name/" + quote(name) + "/" + rrtype
	default:
		path = "rrset/name/" + quote(name)
	}
	return c.lookup(ctx, path)
}

// QueryRdataName looks up observations by answer name. rrtype is optional.
func (c *Client) QueryRdataName(ctx context.Context, name, rrtype string) ([]models.Record, error) {
	path := "rdata/name/" + quote(name)
	if rrtype != "" {
		path += "/" + rrtype
	}
	return c.lookup(ctx, path)
}

// QueryRdataIP looks up observations by answer IP address or network.
// The service spells CIDR prefixes with a comma, so 1.2.3.0/24 goes on
// the wire as 1.2.3.0,24.
func (c *Client) QueryRdataIP(ctx context.Context, ipOrCIDR string) ([]models.Record, error) {
	return c.lookup(ctx, "rdata/ip/"+strings.ReplaceAll(ipOrCIDR, "/", ","))
}

// lookup performs one GET against {server}/lookup/{path} and decodes the
// newline-delimited JSON body. Single attempt, no retry; any HTTP error
// status maps to *QueryError.
func (c *Client) lookup(ctx context.Context, path string) ([]models.Record, error) {
	url := c.server + "/lookup/" + path
	if c.limit > 0 {
		url += "?limit=" + strconv.Itoa(c.limit)
	}
	slog.Debug("issuing lookup", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &QueryError{StatusCode: resp.StatusCode, Message: msg}
	}

	var recs []models.Record
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		rec, err := models.ParseRecord(line)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	slog.Debug("lookup complete", "records", len(recs))
	return recs, nil
}

// quote percent-encodes every byte outside the RFC 3986 unreserved set,
// slashes included. Lookup names are single path segments on the wire
// even when they contain separators.
func quote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
