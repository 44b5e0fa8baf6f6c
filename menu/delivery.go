package menu

import (
	"context"
	"log/slog"

	"github.com/m3rciful/menubot/core/logger"
)

// Delivery sends or edits one message in the current chat.
type Delivery interface {
	SendPhoto(ctx context.Context, imageURL, caption string, layout Layout) error
	SendText(ctx context.Context, text string, layout Layout) error
	EditCaption(ctx context.Context, caption string, layout Layout) error
	EditText(ctx context.Context, text string, layout Layout) error
	// HasPhoto reports whether the message being edited carries an image.
	HasPhoto() bool
}

// Outcome names how a screen ended up on the user's side.
type Outcome string

const (
	OutcomePhotoSent     Outcome = "photo_sent"
	OutcomeTextFallback  Outcome = "text_fallback"
	OutcomeCaptionEdited Outcome = "caption_edited"
	OutcomeTextEdited    Outcome = "text_edited"
	OutcomeEditFallback  Outcome = "edit_fallback"
	OutcomeFailed        Outcome = "failed"
)

// Result is returned by every Presenter call. Err is set only when the
// outcome is OutcomeFailed.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports whether something was delivered.
func (r Result) OK() bool { return r.Outcome != OutcomeFailed }

// Presenter applies the delivery policy: image first with a text fallback,
// edits with a send fallback.
type Presenter struct{}

// Show sends content as a new message. Without a usable image, or when the
// image is rejected, the caption goes out as text with the same layout.
func (p Presenter) Show(ctx context.Context, d Delivery, content Content) Result {
	if content.ImageURL != "" {
		err := d.SendPhoto(ctx, content.ImageURL, content.Caption, content.Layout)
		if err == nil {
			return Result{Outcome: OutcomePhotoSent}
		}
		logger.Warn(ctx, "menu", "photo.fallback",
			slog.String("status", "fail"),
			slog.String("screen", content.Screen.String()),
			slog.String("reason", "send_photo"),
			logger.Err(err),
		)
	} else {
		logger.Debug(ctx, "menu", "photo.fallback",
			slog.String("status", "skip"),
			slog.String("screen", content.Screen.String()),
			slog.String("reason", "no_image"),
		)
	}

	if err := d.SendText(ctx, content.FallbackText(), content.Layout); err != nil {
		logger.Error(ctx, "menu", "screen.send_failed",
			slog.String("status", "fail"),
			slog.String("screen", content.Screen.String()),
			logger.Err(err),
		)
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	return Result{Outcome: OutcomeTextFallback}
}

// Replace updates the current message in place: the caption when it carries
// an image, the text body otherwise. A rejected edit falls back to Show.
func (p Presenter) Replace(ctx context.Context, d Delivery, content Content) Result {
	var (
		err     error
		outcome Outcome
		reason  string
	)
	if d.HasPhoto() {
		err = d.EditCaption(ctx, content.Caption, content.Layout)
		outcome, reason = OutcomeCaptionEdited, "edit_caption"
	} else {
		err = d.EditText(ctx, content.FallbackText(), content.Layout)
		outcome, reason = OutcomeTextEdited, "edit_text"
	}
	if err == nil {
		return Result{Outcome: outcome}
	}

	logger.Warn(ctx, "menu", "edit.fallback",
		slog.String("status", "fail"),
		slog.String("screen", content.Screen.String()),
		slog.String("reason", reason),
		logger.Err(err),
	)
	res := p.Show(ctx, d, content)
	if !res.OK() {
		return res
	}
	return Result{Outcome: OutcomeEditFallback}
}
