package modem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request to the router.
const DefaultTimeout = 5 * time.Second

// maxResponseSize caps how much of a response is read. The stats table of
// a fully populated LAN is a few tens of kilobytes.
const maxResponseSize = 4 << 20

// HTTPTransport posts calls to the router over plain HTTP.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport with a per-request timeout.
// A non-positive timeout uses DefaultTimeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
	}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, call Call) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, call.URL, strings.NewReader(call.Body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Referer", call.Referer)
	// Set by hand: http.Cookie would quote the space in "Basic <token>".
	req.Header.Set("Cookie", "Authorization="+call.Authorization)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("router answered %s", resp.Status)
	}
	return body, nil
}
