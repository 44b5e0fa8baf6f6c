package telegram

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"ok":true}`))}
}

func TestClientTimeoutsExceedPollWindow(t *testing.T) {
	for _, poll := range []time.Duration{0, 10 * time.Second, 50 * time.Second} {
		client := BuildHTTPClient(ClientOptions{PollTimeout: poll})
		rt, ok := client.Transport.(*retryTransport)
		require.True(t, ok)
		tr, ok := rt.next.(*http.Transport)
		require.True(t, ok)

		window := poll
		if window == 0 {
			window = defaultLongPollSeconds * time.Second
		}
		assert.Greater(t, tr.ResponseHeaderTimeout, window, "header timeout for poll %s", poll)
		assert.Greater(t, client.Timeout, tr.ResponseHeaderTimeout, "client timeout for poll %s", poll)
	}
}

func TestIdlePollReturnsWithoutRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		time.Sleep(300 * time.Millisecond)
		_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
	}))
	defer srv.Close()

	client := BuildHTTPClient(ClientOptions{PollTimeout: 300 * time.Millisecond, Backoff: time.Millisecond})
	resp, err := client.Post(srv.URL+"/bot123:abc/getUpdates", "application/json", strings.NewReader(`{"timeout":0}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRetryTransportReplaysBody(t *testing.T) {
	var bodies []string
	rt := &retryTransport{
		retries: 2,
		backoff: time.Millisecond,
		next: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			bodies = append(bodies, string(b))
			if len(bodies) == 1 {
				return nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
			}
			return okResponse(), nil
		}),
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.telegram.org/bot1:x/sendPhoto", strings.NewReader(`{"chat_id":9}`))
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{`{"chat_id":9}`, `{"chat_id":9}`}, bodies)
}

func TestRetryTransportStopsOnPermanentError(t *testing.T) {
	calls := 0
	boom := errors.New("tls: bad certificate")
	rt := &retryTransport{
		retries: 3,
		backoff: time.Millisecond,
		next: roundTripFunc(func(*http.Request) (*http.Response, error) {
			calls++
			return nil, boom
		}),
	}

	req, err := http.NewRequest(http.MethodGet, "https://api.telegram.org/bot1:x/getMe", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryTransportGivesUpAfterRetries(t *testing.T) {
	calls := 0
	rt := &retryTransport{
		retries: 2,
		backoff: time.Millisecond,
		next: roundTripFunc(func(*http.Request) (*http.Response, error) {
			calls++
			return nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
		}),
	}

	req, err := http.NewRequest(http.MethodGet, "https://api.telegram.org/bot1:x/getMe", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestClientOptionsDefaults(t *testing.T) {
	o := ClientOptions{}.withDefaults()
	assert.Equal(t, defaultLongPollSeconds*time.Second, o.PollTimeout)
	assert.Equal(t, defaultRetries, o.Retries)
	assert.Equal(t, defaultBackoff, o.Backoff)

	assert.Zero(t, ClientOptions{Retries: -1}.withDefaults().Retries)
}
