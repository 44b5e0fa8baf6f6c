package netutil

import (
	"net/url"
	"strings"
)

// cutset covers whitespace plus the quotes that tend to survive copy-pasting
// values into CI secrets or .env files.
const cutset = " \t\r\n\"'`"

// SafeURL reports whether raw is usable as a clickable link or media source.
// Surrounding whitespace and quotes are trimmed; the remainder must parse,
// use the http or https scheme and carry a host. url.Parse lowercases the
// scheme, so "HTTPS://" is accepted too. On success the trimmed string is
// returned unchanged.
func SafeURL(raw string) (string, bool) {
	s := strings.Trim(raw, cutset)
	if s == "" {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return "", false
	}
	if u.Hostname() == "" {
		return "", false
	}
	return s, true
}
