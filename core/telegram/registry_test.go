package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/menubot/core/telegram/commands"
	"github.com/m3rciful/menubot/core/telegram/teletest"
)

func noop(tele.Context) error { return nil }

func TestRegisterCommandValidation(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Menu"})
	reg.RegisterCommand("help", commands.Command{Handler: noop, Description: "no slash"})
	reg.RegisterCommand("/empty", commands.Command{Handler: noop})
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "dup"})
	reg.RegisterCommand("/debug", commands.Command{Handler: noop, Description: "Debug", Hidden: true})

	assert.Len(t, reg.Commands(), 2)
	assert.Equal(t, []tele.Command{{Text: "start", Description: "Menu"}}, reg.ListCommands(true))
	assert.Len(t, reg.ListCommands(false), 2)
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Menu", Aliases: []string{"Accueil"}})

	key, _, ok := reg.LookupCommand("start")
	assert.True(t, ok)
	assert.Equal(t, "/start", key)

	key, _, ok = reg.LookupAlias(" Accueil ")
	assert.True(t, ok)
	assert.Equal(t, "/start", key)

	_, _, ok = reg.LookupAlias("start")
	assert.False(t, ok)
	_, _, ok = reg.LookupAlias("")
	assert.False(t, ok)
}

func TestRegisterCallback(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterCallback("info", noop))
	assert.Error(t, reg.RegisterCallback("info", noop))
	assert.Error(t, reg.RegisterCallback("", noop))
	assert.Error(t, reg.RegisterCallback("back", nil))

	_, ok := reg.GetCallback("info")
	assert.True(t, ok)
	assert.Equal(t, []string{"info"}, reg.ListCallbacks())
}

func TestDefaultCallbackNotFoundAnswersSilently(t *testing.T) {
	reg := NewRegistry()
	c := teletest.NewCallback(1, "zzz", nil)
	require.NoError(t, reg.CallbackNotFound()(c))
	require.Equal(t, []string{"Respond"}, c.Methods())
	assert.Nil(t, c.Calls[0].What)

	called := false
	reg.SetCallbackNotFound(func(tele.Context) error { called = true; return nil })
	reg.SetCallbackNotFound(nil)
	require.NoError(t, reg.CallbackNotFound()(c))
	assert.True(t, called)
}

func TestBuildPoller(t *testing.T) {
	lp, ok := BuildPoller(PollerOptions{RunMode: "longpoll"}).(*tele.LongPoller)
	require.True(t, ok)
	assert.Equal(t, float64(10), lp.Timeout.Seconds())
	assert.Equal(t, []string{"message", "callback_query"}, lp.AllowedUpdates)

	wh, ok := BuildPoller(PollerOptions{
		RunMode: " Webhook ",
		Webhook: WebhookOptions{Listen: "0.0.0.0", Port: 8443, URL: "https://bot.example.com/hook"},
	}).(*tele.Webhook)
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0:8443", wh.Listen)
	assert.Equal(t, "https://bot.example.com/hook", wh.Endpoint.PublicURL)
}

func TestDefaultMiddlewares(t *testing.T) {
	var names []string
	for _, mw := range DefaultMiddlewares() {
		names = append(names, mw.Name)
		assert.NotNil(t, mw.Use)
	}
	assert.Equal(t, []string{"recover", "logger", "metrics"}, names)
}
