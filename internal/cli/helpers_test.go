package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/sherry/internal/modem"
	modemtesting "github.com/rileyhilliard/sherry/internal/modem/testing"
)

const (
	testMAC       = "aa:bb:cc:dd:ee:01"
	hostnamesBody = "MACAddress=aa:bb:cc:dd:ee:01\nhostName=laptop\nMACAddress=aa:bb:cc:dd:ee:02\nhostName=phone\n"
	notReadyBody  = "MACAddress=aa:bb:cc:dd:ee:01\nhostName=laptop\nMACAddress=aa:bb:cc:dd:ee:02\nhostName=Unknown\n"
	statsBody     = "ipAddress=3232235778\nmacAddress=aa:bb:cc:dd:ee:01\ntotalBytes=2048\n"
	statsLater    = "ipAddress=3232235778\nmacAddress=aa:bb:cc:dd:ee:01\ntotalBytes=3072\n"

	hostnamesPath = "cgi?5"
	statsPath     = "cgi?1&5"
	resetPath     = "cgi?2"
)

// withFakeRouter routes every client built by the CLI to fake and isolates
// the test from real config files and terminals.
func withFakeRouter(t *testing.T, fake *modemtesting.FakeTransport) {
	t.Helper()

	orig := newTransport
	newTransport = func(time.Duration) modem.Transport { return fake }
	t.Cleanup(func() { newTransport = orig })

	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TERM", "dumb")
	t.Setenv("SHERRY_PASSWORD", "")
	t.Setenv("SHERRY_ADDRESS", "")
}

// runCLI executes a fresh command tree and returns everything it printed.
func runCLI(ctx context.Context, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}
