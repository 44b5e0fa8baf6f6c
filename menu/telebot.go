package menu

import (
	"context"
	"strings"

	"github.com/m3rciful/menubot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// teleDelivery delivers through the chat of a telebot update.
type teleDelivery struct {
	c tele.Context
}

// NewDelivery returns a Delivery replying in the chat of c and editing the
// message c refers to (the pressed message for callbacks).
func NewDelivery(c tele.Context) Delivery {
	return teleDelivery{c: c}
}

func (d teleDelivery) SendPhoto(_ context.Context, imageURL, caption string, layout Layout) error {
	photo := &tele.Photo{File: tele.FromURL(imageURL), Caption: caption}
	return d.c.Send(photo, Markup(layout))
}

func (d teleDelivery) SendText(_ context.Context, text string, layout Layout) error {
	return d.c.Send(text, Markup(layout), tele.NoPreview)
}

func (d teleDelivery) EditCaption(_ context.Context, caption string, layout Layout) error {
	return ignoreNotModified(d.c.EditCaption(caption, Markup(layout)))
}

func (d teleDelivery) EditText(_ context.Context, text string, layout Layout) error {
	return ignoreNotModified(d.c.Edit(text, Markup(layout), tele.NoPreview))
}

func (d teleDelivery) HasPhoto() bool {
	m := d.c.Message()
	return m != nil && m.Photo != nil
}

// ignoreNotModified treats an edit that would not change anything as done,
// so pressing the same button twice does not send a duplicate message.
func ignoreNotModified(err error) error {
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	return err
}

// Markup converts a layout into a telebot inline keyboard.
func Markup(layout Layout) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(layout))
	for _, row := range layout {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, b := range row {
			r = append(r, inlineBtn(b))
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}

func inlineBtn(b Button) keyboard.InlineBtn {
	switch b.Kind {
	case ButtonMiniApp:
		return keyboard.InlineBtn{Text: b.Text, WebApp: b.URL}
	case ButtonLink:
		return keyboard.InlineBtn{Text: b.Text, URL: b.URL}
	default:
		return keyboard.InlineBtn{Text: b.Text, Unique: b.Token, Data: b.Payload}
	}
}
