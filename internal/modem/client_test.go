package modem_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/modem"
	modemtesting "github.com/rileyhilliard/sherry/internal/modem/testing"
	"github.com/rileyhilliard/sherry/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hostnamesReady    = "MACAddress=m1\nhostName=laptop\nMACAddress=m2\nhostName=phone\n"
	hostnamesNotReady = "MACAddress=m1\nhostName=laptop\nMACAddress=m2\nhostName=Unknown\n"
	statsBody         = "ipAddress=3232235778\nmacAddress=m1\ntotalBytes=2048\n"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192.168.1.1", "http://192.168.1.1"},
		{"192.168.1.1/", "http://192.168.1.1"},
		{" router.lan ", "http://router.lan"},
		{"http://192.168.0.1/", "http://192.168.0.1"},
		{"https://modem:8443", "https://modem:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, modem.BaseURL(tt.in))
		})
	}
}

func TestAuthToken(t *testing.T) {
	assert.Equal(t, "Basic YWRtaW4=", modem.AuthToken("admin"))
	assert.Equal(t, "Basic ", modem.AuthToken(""))
}

func TestClient_SendBuildsCall(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?1&5", statsBody)
	client := modem.NewClient("192.168.1.1", "admin", fake)

	_, err := client.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	call := fake.Calls[0]
	assert.Equal(t, "http://192.168.1.1/cgi?1&5", call.URL)
	assert.Equal(t, "http://192.168.1.1/", call.Referer)
	assert.Equal(t, "Basic YWRtaW4=", call.Authorization)
	assert.Equal(t, modem.StatsRequest().Body, call.Body)
}

func TestClient_Stats(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?1&5", statsBody)
	client := modem.NewClient("192.168.1.1", "admin", fake)

	snap, err := client.Stats(context.Background())
	require.NoError(t, err)

	r, ok := snap.Get("192.168.1.2")
	require.True(t, ok)
	assert.Equal(t, int64(2048), r.TotalBytes)
	assert.False(t, snap.CapturedAt.IsZero())
}

func TestClient_StatsTransportError(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Fail("cgi?1&5", stderrors.New("connection refused"))
	client := modem.NewClient("192.168.1.1", "admin", fake)

	snap, err := client.Stats(context.Background())

	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
	assert.Contains(t, errors.Summarize(err), "connection refused")
}

func TestClient_ResetStats(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?2", "[error]0\n")
	client := modem.NewClient("192.168.1.1", "admin", fake)

	require.NoError(t, client.ResetStats(context.Background()))

	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "http://192.168.1.1/cgi?2", fake.Calls[0].URL)
	assert.Equal(t, modem.ResetRequest().Body, fake.Calls[0].Body)
}

func TestClient_ResetStatsError(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Fail("cgi?2", stderrors.New("timeout"))
	client := modem.NewClient("192.168.1.1", "admin", fake)

	err := client.ResetStats(context.Background())

	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestClient_Hostnames(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?5", hostnamesReady)
	client := modem.NewClient("192.168.1.1", "admin", fake)

	dir, err := client.Hostnames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, monitor.Directory{"m1": "laptop", "m2": "phone"}, dir)
	assert.Equal(t, 1, fake.CallsTo("cgi?5"))
}

func TestClient_HostnamesRetriesUntilReady(t *testing.T) {
	fake := modemtesting.NewFakeTransport().
		Reply("cgi?5", hostnamesNotReady, hostnamesNotReady, hostnamesReady)
	client := modem.NewClient("192.168.1.1", "admin", fake)
	client.SetRetry(5, 0)
	log := logger.NewBufferLogger()
	client.SetLogger(log)

	dir, err := client.Hostnames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "phone", dir["m2"])
	assert.Equal(t, 3, fake.CallsTo("cgi?5"))
	assert.True(t, log.HasLevel("debug"))
}

func TestClient_HostnamesRetryExhausted(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?5", hostnamesNotReady)
	client := modem.NewClient("192.168.1.1", "admin", fake)
	client.SetRetry(3, 0)

	dir, err := client.Hostnames(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDevice))
	assert.ErrorIs(t, err, modem.ErrNotReady)
	assert.Equal(t, 3, fake.CallsTo("cgi?5"))
	assert.Equal(t, monitor.Directory{"m1": "laptop", "m2": monitor.NotReadyHostname}, dir,
		"partial directory is still returned")
}

func TestClient_HostnamesSingleAttempt(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?5", hostnamesNotReady)
	client := modem.NewClient("192.168.1.1", "admin", fake)
	client.SetRetry(0, time.Hour)

	_, err := client.Hostnames(context.Background())

	assert.ErrorIs(t, err, modem.ErrNotReady)
	assert.Equal(t, 1, fake.CallsTo("cgi?5"))
}

func TestClient_HostnamesTransportError(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Fail("cgi?5", stderrors.New("no route to host"))
	client := modem.NewClient("192.168.1.1", "admin", fake)

	dir, err := client.Hostnames(context.Background())

	assert.Nil(t, dir)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
	assert.Equal(t, 1, fake.CallsTo("cgi?5"), "transport errors are not retried")
}

func TestClient_HostnamesBackoffCancelled(t *testing.T) {
	fake := modemtesting.NewFakeTransport().Reply("cgi?5", hostnamesNotReady)
	client := modem.NewClient("192.168.1.1", "admin", fake)
	client.SetRetry(5, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	dir, err := client.Hostnames(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotNil(t, dir)
	assert.Equal(t, 1, fake.CallsTo("cgi?5"))
}

func TestClient_ImplementsDevice(t *testing.T) {
	var _ monitor.Device = modem.NewClient("router", "pw", modemtesting.NewFakeTransport())
}
