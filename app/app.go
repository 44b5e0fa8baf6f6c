// Package app wires the menu handlers into the Telegram runtime.
package app

import (
	"context"
	"fmt"

	"github.com/m3rciful/menubot/core/bootstrap"
	"github.com/m3rciful/menubot/core/cmd"
	coreconfig "github.com/m3rciful/menubot/core/config"
	tg "github.com/m3rciful/menubot/core/telegram"
	"github.com/m3rciful/menubot/core/telegram/router"
	"github.com/m3rciful/menubot/menu"
)

// App holds the resolved menu and the registry it was registered into.
type App struct {
	settings *Settings
	menu     menu.Resolved
	handlers *menu.Handlers
	registry *tg.Registry
}

// Bootstrap initializes logging, resolves the menu configuration and
// registers the handlers.
func Bootstrap(s *Settings, loggerInit func(*coreconfig.Config) error) (*App, error) {
	if s == nil {
		return nil, fmt.Errorf("app: nil settings")
	}
	a := &App{settings: s, registry: tg.NewRegistry()}

	_, err := bootstrap.Run(bootstrap.Options{
		Config:     &s.Core,
		LoggerInit: loggerInit,
		Checks: []func() error{
			func() error {
				a.menu = s.Menu.Resolve(context.Background())
				a.handlers = menu.NewHandlers(a.menu)
				return nil
			},
			func() error { return a.handlers.Register(a.registry) },
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Menu returns the resolved menu configuration.
func (a *App) Menu() menu.Resolved { return a.menu }

// TelegramRunOptions builds the runtime options: the shared middleware
// chain, command, callback and text routes, and the menu-button startup hook.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.registry)
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.registry, router.TextOptions{})...)

	return tg.RunOptions{
		Config:      &a.settings.Core,
		Registry:    a.registry,
		Middlewares: tg.DefaultMiddlewares(),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			var api menu.RawAPI
			if rt.Bot != nil {
				api = rt.Bot
			}
			menu.ConfigureMenuButton(ctx, api, a.menu)
			return nil
		},
	}, nil
}

// RunOptions returns the process runner options for the menu bot.
func RunOptions() cmd.Options {
	return cmd.Options{
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			s, err := LoadSettings(path)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Bootstrap: func(cfg cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			s, ok := cfg.(*Settings)
			if !ok {
				return nil, fmt.Errorf("app: unexpected config type %T", cfg)
			}
			a, err := Bootstrap(s, nil)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
	}
}
