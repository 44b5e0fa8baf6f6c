package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/menubot/core/config"
	tg "github.com/m3rciful/menubot/core/telegram"
	"github.com/m3rciful/menubot/menu"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV_FILE", "CONFIG_PATH", "BOT_TOKEN", "TELEGRAM_RUN_MODE", "WELCOME_IMAGE", "INFO_IMAGE",
		"LINK_PRINCIPAL", "LINK_SECOURS", "LINK_FEEDBACK", "MINIAPP_URL",
		"WELCOME_CAPTION", "INFO_CAPTION", "MENU_EDIT_IN_PLACE", "MENU_BUTTON",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoadSettingsMissingToken(t *testing.T) {
	clearEnv(t)
	_, err := LoadSettings("")
	require.Error(t, err)
	assert.ErrorIs(t, err, coreconfig.ErrMissingToken)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123456:abc")
	t.Setenv("LINK_PRINCIPAL", "ftp://bad")
	t.Setenv("LINK_SECOURS", "'https://secours.example.com'")
	t.Setenv("MENU_EDIT_IN_PLACE", "false")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "123456:abc", s.CoreConfig().Telegram.Token)
	assert.Equal(t, coreconfig.RunModeLongpoll, s.Core.Telegram.RunMode)
	assert.False(t, s.Menu.EditInPlace)
	assert.True(t, s.Menu.MenuButton)
	assert.Equal(t, menu.DefaultWelcomeCaption, s.Menu.WelcomeCaption)

	res := s.Menu.Resolve(context.Background())
	assert.Empty(t, res.Links.Principal)
	assert.Equal(t, "https://secours.example.com", res.Links.Secours)
}

func TestLoadSettingsYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
telegram:
  token: "111111:yaml"
menu:
  miniapp_url: https://app.example.com
  info_miniapp: true
  info_caption: "À propos"
`), 0o600))
	t.Setenv("BOT_TOKEN", "222222:env")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "222222:env", s.Core.Telegram.Token)
	assert.Equal(t, "https://app.example.com", s.Menu.MiniAppURL)
	assert.True(t, s.Menu.InfoMiniApp)
	assert.Equal(t, "À propos", s.Menu.InfoCaption)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	s := &Settings{Core: coreconfig.Defaults(), Menu: menu.DefaultConfig()}
	s.Core.Telegram.Token = "123456:abc"
	s.Menu.LinkFeedback = "https://feedback.example.com"
	a, err := Bootstrap(s, func(*coreconfig.Config) error { return nil })
	require.NoError(t, err)
	return a
}

func TestBootstrapRegistersMenu(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "https://feedback.example.com", a.Menu().Links.Feedback)

	_, _, ok := a.registry.LookupCommand("/start")
	assert.True(t, ok)
	assert.Equal(t, []string{menu.TokenBack, menu.TokenInfo}, a.registry.ListCallbacks())
}

func TestTelegramRunOptions(t *testing.T) {
	a := newTestApp(t)
	opts, err := a.TelegramRunOptions()
	require.NoError(t, err)

	assert.Same(t, &a.settings.Core, opts.Config)
	assert.Len(t, opts.Middlewares, 3)
	require.Len(t, opts.Routes, 3)
	assert.Equal(t, "/start", opts.Routes[0].Endpoint)
	require.NotNil(t, opts.OnStart)
	assert.NoError(t, opts.OnStart(context.Background(), tg.Runtime{Registry: a.registry}))
}

func TestBootstrapNilSettings(t *testing.T) {
	_, err := Bootstrap(nil, nil)
	assert.Error(t, err)
}
