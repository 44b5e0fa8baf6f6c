package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Parse returns the callback unique key and payload.
// Telebot fills cb.Unique when the data used its \f<unique>|<payload>
// encoding; otherwise the raw data is split the same way.
func Parse(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	unique, payload, _ := strings.Cut(raw, "|")
	return strings.TrimSpace(unique), payload
}
