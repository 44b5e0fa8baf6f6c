package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn describes a convenience wrapper for inline button properties.
// Exactly one of WebApp, URL or Unique is expected to be set; they are
// checked in that order.
type InlineBtn struct {
	Text   string
	Unique string
	Data   string
	URL    string
	WebApp string
}

func (b InlineBtn) build(markup *tele.ReplyMarkup) tele.Btn {
	switch {
	case b.WebApp != "":
		return markup.WebApp(b.Text, &tele.WebApp{URL: b.WebApp})
	case b.URL != "":
		return markup.URL(b.Text, b.URL)
	case b.Data != "":
		return markup.Data(b.Text, b.Unique, b.Data)
	default:
		return markup.Data(b.Text, b.Unique)
	}
}

// InlineButtonsRows builds an inline keyboard from rows of InlineBtn.
// Empty rows are skipped.
func InlineButtonsRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	inline := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tele.InlineButton, len(row))
		for j, btn := range row {
			r[j] = *btn.build(markup).Inline()
		}
		inline = append(inline, r)
	}
	markup.InlineKeyboard = inline
	return markup
}

// WebAppReplyKeyboard returns a persistent, resized reply keyboard holding a
// single button that opens url as a mini-app.
func WebAppReplyKeyboard(text, url string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.WebApp(text, &tele.WebApp{URL: url})))
	return markup
}
