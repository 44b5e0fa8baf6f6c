package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawCall struct {
	method  string
	payload interface{}
}

type fakeAPI struct {
	calls []rawCall
	err   error
}

func (f *fakeAPI) Raw(method string, payload interface{}) ([]byte, error) {
	f.calls = append(f.calls, rawCall{method: method, payload: payload})
	return []byte(`{"ok":true,"result":true}`), f.err
}

func TestConfigureMenuButton(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MiniAppURL = "https://app.example.com"
	api := &fakeAPI{}

	ConfigureMenuButton(context.Background(), api, cfg.Resolve(context.Background()))

	require.Len(t, api.calls, 1)
	assert.Equal(t, "setChatMenuButton", api.calls[0].method)
	assert.Equal(t, map[string]interface{}{
		"menu_button": map[string]interface{}{
			"type": "web_app",
			"text": DefaultMenuButtonText,
			"web_app": map[string]string{
				"url": "https://app.example.com",
			},
		},
	}, api.calls[0].payload)
}

func TestConfigureMenuButtonSkipped(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"disabled", func(c *Config) { c.MiniAppURL = "https://app.example.com"; c.MenuButton = false }},
		{"no mini-app", func(*Config) {}},
		{"invalid mini-app", func(c *Config) { c.MiniAppURL = "javascript:alert(1)" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			api := &fakeAPI{}
			ConfigureMenuButton(context.Background(), api, cfg.Resolve(context.Background()))
			assert.Empty(t, api.calls)
		})
	}
}

func TestConfigureMenuButtonFailureIsLogged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MiniAppURL = "https://app.example.com"
	api := &fakeAPI{err: errors.New("Bad Request: WEB_APP_URL_INVALID")}

	assert.NotPanics(t, func() {
		ConfigureMenuButton(context.Background(), api, cfg.Resolve(context.Background()))
	})
	assert.Len(t, api.calls, 1)
}
