package figma

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"

	maxRetries = 3
)

// Client represents a Figma API client with configured HTTP settings for reliable communication
// with the Figma API. It includes retry logic and optimized transport settings for handling large files.
type Client struct {
	accessToken string
	baseURL     string
	retryDelay  time.Duration
	httpClient  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root, e.g. an httptest server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithRetryDelay sets the backoff unit. Attempt n waits n*delay before retrying.
func WithRetryDelay(delay time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with optimized HTTP transport settings including connection pooling,
// disabled HTTP/2 (for large file stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		retryDelay:  2 * time.Second,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var fileURLPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|\?|$)`)

var fileKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileURLPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", errors.New("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ResolveFileKey accepts either a Figma file URL or a bare file key.
func ResolveFileKey(fileOrURL string) (string, error) {
	fileOrURL = strings.TrimSpace(fileOrURL)
	if fileKeyPattern.MatchString(fileOrURL) {
		return fileOrURL, nil
	}

	return ExtractFileKey(fileOrURL)
}

// FetchFile downloads the raw file document. Transport failures, 429 and 5xx responses are
// retried up to three times with a linear backoff; any other status fails immediately.
func (c *Client) FetchFile(ctx context.Context, fileKey string) ([]byte, error) {
	url := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retry, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}

		lastErr = errors.Wrapf(err, "attempt %d", attempt)
		if !retry || attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-time.After(time.Duration(attempt) * c.retryDelay):
		}
	}

	return nil, lastErr
}

// get performs one request. The boolean result reports whether a failure is worth retrying.
func (c *Client) get(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "create request")
	}

	req.Header.Set("X-Figma-Token", c.accessToken)
	req.Header.Set("Connection", "close")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, errors.Newf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrap(err, "read response body")
	}

	return body, false, nil
}

// GetFile retrieves and decodes the complete file: document tree, components, component sets and styles.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*File, error) {
	body, err := c.FetchFile(ctx, fileKey)
	if err != nil {
		return nil, err
	}

	file, err := ParseFile(body)
	if err != nil {
		return nil, errors.Wrap(err, "parse response")
	}

	return file, nil
}
