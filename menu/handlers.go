package menu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/menubot/core/logger"
	tg "github.com/m3rciful/menubot/core/telegram"
	"github.com/m3rciful/menubot/core/telegram/callbacks"
	"github.com/m3rciful/menubot/core/telegram/commands"
	tghelpers "github.com/m3rciful/menubot/core/telegram/helpers"
	"github.com/m3rciful/menubot/core/telegram/keyboard"
	"github.com/m3rciful/menubot/core/telegram/router"

	tele "gopkg.in/telebot.v4"
)

// replyKeyboardPrompt is the text of the message carrying the reply keyboard.
const replyKeyboardPrompt = "👇"

// Handlers serves the menu screens. It holds only the resolved
// configuration and is safe for concurrent use.
type Handlers struct {
	cfg       Resolved
	presenter Presenter

	// deliver builds the Delivery for an update; NewDelivery by default.
	deliver func(tele.Context) Delivery
}

// NewHandlers returns handlers bound to cfg.
func NewHandlers(cfg Resolved) *Handlers {
	return &Handlers{cfg: cfg, deliver: NewDelivery}
}

// Register adds /start, the info and back callbacks, and the silent text
// fallback to reg.
func (h *Handlers) Register(reg *tg.Registry) error {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Menu principal",
	})
	for _, token := range []string{TokenInfo, TokenBack} {
		if err := reg.RegisterCallback(token, h.Callback); err != nil {
			return fmt.Errorf("menu: register %s: %w", token, err)
		}
	}
	reg.SetTextFallback(h.Text)
	return nil
}

// Start sends the welcome screen as a new message, followed by the reply
// keyboard message when that keyboard is enabled.
func (h *Handlers) Start(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	res := h.presenter.Show(ctx, h.deliver(c), Render(ScreenWelcome, h.cfg))
	h.report(ctx, c, ScreenWelcome, res)

	if btn := ReplyKeyboard(h.cfg); btn != nil {
		markup := keyboard.WebAppReplyKeyboard(btn.Text, btn.URL)
		if err := c.Send(replyKeyboardPrompt, markup); err != nil {
			logger.Warn(ctx, "menu", "reply_keyboard.failed",
				slog.String("status", "fail"),
				logger.Err(err),
			)
		}
	}
	return nil
}

// Callback answers the query, then moves to the screen selected by the
// button token. The pressed message is edited in place when enabled and the
// target screen has no image; an edit cannot swap the photo, so screens with
// an image are always sent as a new message.
func (h *Handlers) Callback(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if err := c.Respond(); err != nil {
		logger.Warn(ctx, "menu", "callback.answer_failed",
			slog.String("status", "fail"),
			logger.Err(err),
		)
	}

	token, payload := callbacks.Parse(c.Callback())
	from, _ := ParseScreen(payload)
	next, ok := Next(from, token)
	if !ok {
		logger.Debug(ctx, "menu", "callback.unmatched",
			slog.String("status", "skip"),
			slog.String("cb_key", logger.SanitizeLimit(token, 128)),
		)
		return nil
	}

	content := Render(next, h.cfg)
	d := h.deliver(c)
	var res Result
	if h.cfg.EditInPlace && c.Message() != nil && content.ImageURL == "" {
		res = h.presenter.Replace(ctx, d, content)
	} else {
		res = h.presenter.Show(ctx, d, content)
	}
	h.report(ctx, c, next, res)
	return nil
}

// Text logs the message and does not reply.
func (h *Handlers) Text(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "menu", "text.received",
		slog.String("status", "skip"),
		slog.String("payload", logger.SanitizeLimit(c.Text(), 256)),
	)
	return nil
}

func (h *Handlers) report(ctx context.Context, c tele.Context, screen Screen, res Result) {
	c.Set(router.OutcomeKey, string(res.Outcome))
	attrs := []slog.Attr{
		slog.String("screen", screen.String()),
		slog.String("outcome", string(res.Outcome)),
	}
	if !res.OK() {
		attrs = append(attrs, slog.String("status", "fail"), logger.Err(res.Err))
		logger.Warn(ctx, "menu", "screen.delivered", attrs...)
		return
	}
	attrs = append(attrs, slog.String("status", "ok"))
	logger.Debug(ctx, "menu", "screen.delivered", attrs...)
}
