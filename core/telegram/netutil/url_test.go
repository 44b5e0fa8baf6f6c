package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "https", in: "https://example.org/menu", want: "https://example.org/menu", ok: true},
		{name: "http with port and query", in: "http://example.org:8080/a?b=c", want: "http://example.org:8080/a?b=c", ok: true},
		{name: "uppercase scheme", in: "HTTPS://Example.org", want: "HTTPS://Example.org", ok: true},
		{name: "whitespace trimmed", in: "  https://example.org/x \n", want: "https://example.org/x", ok: true},
		{name: "quotes trimmed", in: `"https://example.org/x"`, want: "https://example.org/x", ok: true},
		{name: "single quotes trimmed", in: "'https://t.me/channel'", want: "https://t.me/channel", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "only quotes", in: `""`, ok: false},
		{name: "ftp", in: "ftp://bad", ok: false},
		{name: "no scheme", in: "example.org/path", ok: false},
		{name: "tg scheme", in: "tg://resolve?domain=x", ok: false},
		{name: "javascript", in: "javascript:alert(1)", ok: false},
		{name: "missing host", in: "https:///path", ok: false},
		{name: "scheme only", in: "https://", ok: false},
		{name: "dots in path", in: "https://example.com/a...b", want: "https://example.com/a...b", ok: true},
		{name: "dots in query", in: "https://example.com/search?q=wait...", want: "https://example.com/search?q=wait...", ok: true},
		{name: "unparsable", in: "http://[::1", ok: false},
		{name: "control char", in: "https://exa\x7fmple.org", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeURL(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSafeURLNeverPanics(t *testing.T) {
	inputs := []string{"%", "http://%zz", "://", "https://@", "http://:80", "\x00", "https://user:pa ss@host"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { SafeURL(in) }, in)
	}
}
