package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		cb           *tele.Callback
		key, payload string
	}{
		{name: "nil", cb: nil},
		{name: "unique set by telebot", cb: &tele.Callback{Unique: "info", Data: ""}, key: "info"},
		{name: "unique with payload", cb: &tele.Callback{Unique: "page", Data: "2"}, key: "page", payload: "2"},
		{name: "raw encoded", cb: &tele.Callback{Data: "\fback"}, key: "back"},
		{name: "raw encoded payload", cb: &tele.Callback{Data: "\fpage|3|x"}, key: "page", payload: "3|x"},
		{name: "plain data", cb: &tele.Callback{Data: "info"}, key: "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, payload := Parse(tt.cb)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.payload, payload)
		})
	}
}
