package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/menubot/core/config"
	coretelegram "github.com/m3rciful/menubot/core/telegram"
)

type carrier struct{ cfg *coreconfig.Config }

func (c carrier) CoreConfig() *coreconfig.Config { return c.cfg }

type fakeApp struct{ opts coretelegram.RunOptions }

func (a fakeApp) TelegramRunOptions() (coretelegram.RunOptions, error) { return a.opts, nil }

func TestRunRequiresHooks(t *testing.T) {
	assert.Error(t, Run(Options{}))
	assert.Error(t, Run(Options{LoadConfig: func(string) (ConfigCarrier, error) { return carrier{}, nil }}))
}

func TestRunStopsOnConfigError(t *testing.T) {
	bootstrapped := false
	err := Run(Options{
		LoadConfig: func(string) (ConfigCarrier, error) { return nil, coreconfig.ErrMissingToken },
		Bootstrap: func(ConfigCarrier) (TelegramApp, error) {
			bootstrapped = true
			return nil, nil
		},
	})
	assert.ErrorIs(t, err, coreconfig.ErrMissingToken)
	assert.False(t, bootstrapped)
}

func TestRunPassesConfigPathAndWrapsHooks(t *testing.T) {
	t.Setenv("MENUBOT_TEST_CONFIG", "/etc/menubot.yaml")
	cfg := coreconfig.Defaults()

	var (
		gotPath string
		order   []string
	)
	err := Run(Options{
		ConfigEnvVar: "MENUBOT_TEST_CONFIG",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			gotPath = path
			return carrier{cfg: &cfg}, nil
		},
		Bootstrap: func(ConfigCarrier) (TelegramApp, error) {
			return fakeApp{opts: coretelegram.RunOptions{
				Config: &cfg,
				OnStart: func(context.Context, coretelegram.Runtime) error {
					order = append(order, "app.start")
					return nil
				},
				OnStop: func(context.Context, coretelegram.Runtime) error {
					order = append(order, "app.stop")
					return nil
				},
			}}, nil
		},
		ShutdownLogger: func() error {
			order = append(order, "logger.shutdown")
			return nil
		},
		RunTelegram: func(ctx context.Context, opts coretelegram.RunOptions) error {
			require.NoError(t, opts.OnStart(ctx, coretelegram.Runtime{}))
			require.NoError(t, opts.OnStop(ctx, coretelegram.Runtime{}))
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "/etc/menubot.yaml", gotPath)
	assert.Equal(t, []string{"app.start", "app.stop", "logger.shutdown"}, order)
}

func TestRunReturnsRuntimeError(t *testing.T) {
	cfg := coreconfig.Defaults()
	boom := errors.New("getMe failed")
	err := Run(Options{
		LoadConfig: func(string) (ConfigCarrier, error) { return carrier{cfg: &cfg}, nil },
		Bootstrap: func(ConfigCarrier) (TelegramApp, error) {
			return fakeApp{opts: coretelegram.RunOptions{Config: &cfg}}, nil
		},
		ShutdownLogger: func() error { return nil },
		RunTelegram:    func(context.Context, coretelegram.RunOptions) error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}
