package menu

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/menubot/core/logger"
)

// RawAPI issues a Bot API method by name. *tele.Bot satisfies it.
type RawAPI interface {
	Raw(method string, payload interface{}) ([]byte, error)
}

// ConfigureMenuButton points the default chat menu button at the mini-app.
// It does nothing when the feature is off or the URL is invalid, and a
// rejected call is logged only.
func ConfigureMenuButton(ctx context.Context, api RawAPI, cfg Resolved) {
	if !cfg.MenuButton || cfg.Links.MiniApp == "" || api == nil {
		logger.Debug(ctx, "menu", "menu_button.skip",
			slog.String("status", "skip"),
			slog.Bool("enabled", cfg.MenuButton),
		)
		return
	}

	start := time.Now()
	payload := map[string]interface{}{
		"menu_button": map[string]interface{}{
			"type": "web_app",
			"text": cfg.MenuButtonText,
			"web_app": map[string]string{
				"url": cfg.Links.MiniApp,
			},
		},
	}
	if _, err := api.Raw("setChatMenuButton", payload); err != nil {
		logger.Warn(ctx, "tg.wire", "menu_button.set_failed",
			slog.String("status", "fail"),
			logger.Err(err),
		)
		return
	}
	logger.Info(ctx, "tg.wire", "menu_button.set",
		slog.String("status", "ok"),
		slog.Duration("duration", logger.Took(start)),
	)
}
