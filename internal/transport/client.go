package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/contactform/internal/contact"
	"github.com/muurk/contactform/internal/logging"
	"github.com/muurk/contactform/internal/version"
)

const (
	// DefaultPath is the backend path that receives submissions
	DefaultPath = "/send_email"

	// DefaultBaseURL is used when no endpoint is configured
	DefaultBaseURL = "http://127.0.0.1:8000"

	// maxReplySize caps how much of a reply body is read
	maxReplySize = 1 << 20
)

// Client posts contact submissions to the backend
type Client struct {
	// BaseURL is the backend origin (e.g., "https://example.com")
	BaseURL string

	// Path is the submission path (default: "/send_email")
	Path string

	// Fields names the multipart fields
	Fields FieldNames

	// UserAgent is sent with every request
	UserAgent string

	// HTTPClient is the underlying HTTP client. It has no timeout by
	// default: a submission waits for the backend or the OS to give up.
	HTTPClient *http.Client
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Path:       DefaultPath,
		Fields:     DefaultFieldNames,
		UserAgent:  "contactform/" + version.Version,
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the HTTP request timeout (0 disables it)
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetFields sets the multipart field names
func (c *Client) SetFields(names FieldNames) {
	c.Fields = names
}

// URL returns the full submission URL
func (c *Client) URL() string {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// Send implements contact.TransportClient. It returns an error only when
// the request could not complete or the body is not a valid JSON result;
// any decoded reply is returned as-is, whatever its status code.
func (c *Client) Send(ctx context.Context, sub contact.Submission) (*contact.Reply, error) {
	body, contentType, err := EncodeMultipart(sub, c.Fields)
	if err != nil {
		return nil, contact.NewNetworkError("failed to encode submission", err)
	}

	bodySize := body.Len()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), body)
	if err != nil {
		return nil, contact.NewNetworkError("failed to create POST request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.LogHTTPRequest(req.Method, req.URL.String(), bodySize)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, contact.NewNetworkError("POST request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, contact.NewNetworkError("failed to read response body", err)
	}

	var result contact.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, contact.NewParseError(fmt.Sprintf("failed to parse JSON response (HTTP %d)", resp.StatusCode), err)
	}

	return &contact.Reply{
		StatusCode: resp.StatusCode,
		Result:     result,
	}, nil
}

// Ping performs a simple reachability check against the backend origin.
// Any HTTP answer below 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return contact.NewNetworkError("failed to create ping request", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return contact.NewNetworkError("backend unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return contact.NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	return nil
}
