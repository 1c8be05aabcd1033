package modem

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/monitor"
)

// Default retry policy for a hostname table that isn't populated yet.
const (
	DefaultRetries      = 5
	DefaultRetryBackoff = 500 * time.Millisecond
)

// ErrNotReady is the cause of the DEVICE error returned when the hostname
// table still holds placeholders after every retry.
var ErrNotReady = stderrors.New("hostname table not ready")

// Call is one request as handed to a Transport.
type Call struct {
	URL           string
	Body          string
	Referer       string
	Authorization string // "Basic <token>", sent as the Authorization cookie
}

// Transport delivers a Call to the router and returns the response body.
type Transport interface {
	Send(ctx context.Context, call Call) ([]byte, error)
}

// Client speaks the router's statistics protocol.
type Client struct {
	base      string
	auth      string
	transport Transport
	retries   int
	backoff   time.Duration
	log       logger.Logger

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewClient creates a client for the router at address. The address may
// omit the scheme.
func NewClient(address, password string, transport Transport) *Client {
	return &Client{
		base:      BaseURL(address),
		auth:      AuthToken(password),
		transport: transport,
		retries:   DefaultRetries,
		backoff:   DefaultRetryBackoff,
		log:       logger.Noop(),
		sleep:     sleepContext,
		now:       time.Now,
	}
}

// SetRetry sets how many times the hostname table is fetched before giving
// up, and the base delay between attempts. Attempt n waits n*backoff.
func (c *Client) SetRetry(attempts int, backoff time.Duration) {
	if attempts < 1 {
		attempts = 1
	}
	c.retries = attempts
	c.backoff = backoff
}

// SetLogger sets the logger used for retry diagnostics.
func (c *Client) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.Noop()
	}
	c.log = l
}

// Base returns the normalized router URL.
func (c *Client) Base() string {
	return c.base
}

// BaseURL normalizes a router address: "http://" is added when no scheme
// is given and trailing slashes are trimmed.
func BaseURL(address string) string {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return strings.TrimRight(address, "/")
}

// AuthToken builds the Basic token the router expects in its
// Authorization cookie.
func AuthToken(password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(password))
}

// Send posts req to the router and returns the raw response.
func (c *Client) Send(ctx context.Context, req Request) ([]byte, error) {
	call := Call{
		URL:           c.base + "/" + strings.TrimLeft(req.Path, "/"),
		Body:          req.Body,
		Referer:       c.base + "/",
		Authorization: c.auth,
	}

	raw, err := c.transport.Send(ctx, call)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("%s request to %s failed", req.Name, c.base),
			"Check the router address and password, and that its web interface is reachable")
	}
	c.log.Debug("%s: %d bytes from %s", req.Name, len(raw), call.URL)
	return raw, nil
}

// Hostnames fetches the MAC to hostname directory. While the router is
// still discovering hosts it reports "Unknown" names; the fetch is retried
// with linear backoff, and on exhaustion the last directory is returned
// together with a DEVICE error wrapping ErrNotReady.
func (c *Client) Hostnames(ctx context.Context) (monitor.Directory, error) {
	var dir monitor.Directory

	for attempt := 1; attempt <= c.retries; attempt++ {
		raw, err := c.Send(ctx, HostnamesRequest())
		if err != nil {
			return dir, err
		}

		dir = DecodeHostnames(raw)
		if !dir.NotReady() {
			return dir, nil
		}
		c.log.Debug("hostname table not ready (attempt %d/%d)", attempt, c.retries)

		if attempt == c.retries {
			break
		}
		if err := c.sleep(ctx, time.Duration(attempt)*c.backoff); err != nil {
			return dir, err
		}
	}

	return dir, errors.WrapWithCode(ErrNotReady, errors.ErrDevice,
		fmt.Sprintf("Router still reports unknown hostnames after %d attempts", c.retries),
		"Wait a few seconds and press h to refresh hostnames")
}

// Stats fetches and decodes the traffic statistics table.
func (c *Client) Stats(ctx context.Context) (*monitor.Snapshot, error) {
	raw, err := c.Send(ctx, StatsRequest())
	if err != nil {
		return nil, err
	}

	snap := DecodeStats(raw)
	snap.CapturedAt = c.now()
	return snap, nil
}

// ResetStats zeroes the router's traffic counters.
func (c *Client) ResetStats(ctx context.Context) error {
	_, err := c.Send(ctx, ResetRequest())
	return err
}

var _ monitor.Device = (*Client)(nil)

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
