// Package httpclient implements the Transport port on net/http.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.trai.ch/cssmerge/internal/build"
	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.Transport = (*Client)(nil)

// Client implements ports.Transport with an *http.Client.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a Client with the default timeout.
func New() *Client {
	return NewWithClient(&http.Client{Timeout: httpClientTimeout})
}

// NewWithClient creates a Client around an existing *http.Client.
func NewWithClient(client *http.Client) *Client {
	return &Client{
		httpClient: client,
		userAgent:  "cssmerge/" + build.Version,
	}
}

// GetText issues a GET for url and returns the body as text. Any status outside 2xx is an error.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrRequestFailed, err.Error()), "url", url)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/css, text/plain;q=0.9, */*;q=0.1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrRequestFailed, err), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		statusErr := zerr.With(zerr.Wrap(domain.ErrUnexpectedStatus, resp.Status), "status_code", resp.StatusCode)
		return "", zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrRequestFailed, err), "url", url)
	}
	return string(body), nil
}
