package telegram

import (
	"log/slog"
	"net"
	"net/http"
	"path"
	"time"

	"github.com/m3rciful/menubot/core/logger"
	"github.com/m3rciful/menubot/core/telegram/netutil"
)

const (
	dialTimeout       = 5 * time.Second
	tlsHandshake      = 5 * time.Second
	idleConnTimeout   = 90 * time.Second
	keepAliveInterval = 30 * time.Second

	// headerMargin is added to the long-poll window before a getUpdates call
	// with no pending updates counts as stalled.
	headerMargin = 10 * time.Second
	// clientMargin bounds the body read and one retry after the headers.
	clientMargin = 20 * time.Second

	defaultRetries = 2
	defaultBackoff = time.Second
)

// ClientOptions tunes BuildHTTPClient.
type ClientOptions struct {
	// PollTimeout is how long Telegram may hold getUpdates open. Zero uses
	// the long-poll default.
	PollTimeout time.Duration
	// Retries is the number of extra attempts after a transient failure.
	// Negative disables retries, zero uses the default.
	Retries int
	// Backoff is the base delay, multiplied by the attempt number.
	Backoff time.Duration
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.PollTimeout <= 0 {
		o.PollTimeout = defaultLongPollSeconds * time.Second
	}
	switch {
	case o.Retries < 0:
		o.Retries = 0
	case o.Retries == 0:
		o.Retries = defaultRetries
	}
	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}
	return o
}

// clientTimeouts derives the response header and overall client timeouts
// from the long-poll window. Both stay above it so an idle poll ends with an
// empty update list instead of a transport error.
func clientTimeouts(poll time.Duration) (header, client time.Duration) {
	header = poll + headerMargin
	return header, header + clientMargin
}

// BuildHTTPClient returns the client used for Telegram Bot API calls.
// Transient transport errors are retried with a linear backoff.
func BuildHTTPClient(opts ClientOptions) *http.Client {
	opts = opts.withDefaults()
	header, total := clientTimeouts(opts.PollTimeout)

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: keepAliveInterval}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsHandshake,
		ResponseHeaderTimeout: header,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Timeout: total,
		Transport: &retryTransport{
			next:    transport,
			retries: opts.Retries,
			backoff: opts.Backoff,
		},
	}
}

// retryTransport replays requests that failed with a transient error.
// Requests whose body cannot be rewound are sent once.
type retryTransport struct {
	next    http.RoundTripper
	retries int
	backoff time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		try := req
		if attempt > 0 {
			try = req.Clone(ctx)
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				try.Body = body
			}
		}

		resp, err := next.RoundTrip(try)
		if err == nil {
			return resp, nil
		}
		replayable := req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
		if attempt >= t.retries || !replayable || !netutil.ShouldRetry(err) {
			return nil, err
		}

		delay := t.backoff * time.Duration(attempt+1)
		// The URL path carries the bot token; only the API method is logged.
		logger.LogEvent(ctx, logger.TG, slog.LevelWarn, "api.retry",
			slog.String("status", "retry"),
			slog.String("method", path.Base(req.URL.Path)),
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", delay),
			logger.Err(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
