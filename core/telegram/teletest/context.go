// Package teletest provides an in-memory tele.Context for handler tests.
package teletest

import (
	tele "gopkg.in/telebot.v4"
)

// Call captures one outbound call made through a Context.
type Call struct {
	Method string
	What   interface{}
	Opts   []interface{}
}

// Context implements the subset of tele.Context used by handlers and
// middleware. Methods that are not overridden panic through the nil
// embedded interface, which flags unexpected calls in tests.
type Context struct {
	tele.Context

	Upd   tele.Update
	Store map[string]interface{}
	Calls []Call

	// Errors returned by the matching method, keyed by method name
	// ("Send", "Edit", "EditCaption", "Respond").
	Errors map[string]error
}

// New returns a context for upd with an empty store.
func New(upd tele.Update) *Context {
	return &Context{
		Upd:    upd,
		Store:  map[string]interface{}{},
		Errors: map[string]error{},
	}
}

// NewCommand builds a context carrying a private text message from user 7 in chat 9.
func NewCommand(updateID int, text string) *Context {
	return New(tele.Update{
		ID: updateID,
		Message: &tele.Message{
			ID:     100,
			Text:   text,
			Sender: &tele.User{ID: 7, Username: "alice"},
			Chat:   &tele.Chat{ID: 9, Type: tele.ChatPrivate},
		},
	})
}

// NewCallback builds a callback context whose originating message is msg.
func NewCallback(updateID int, unique string, msg *tele.Message) *Context {
	if msg == nil {
		msg = &tele.Message{ID: 101, Chat: &tele.Chat{ID: 9, Type: tele.ChatPrivate}}
	}
	return New(tele.Update{
		ID: updateID,
		Callback: &tele.Callback{
			ID:      "cb-1",
			Unique:  unique,
			Sender:  &tele.User{ID: 7, Username: "alice"},
			Message: msg,
		},
	})
}

func (c *Context) record(method string, what interface{}, opts []interface{}) error {
	c.Calls = append(c.Calls, Call{Method: method, What: what, Opts: opts})
	return c.Errors[method]
}

// Methods lists recorded call names in order.
func (c *Context) Methods() []string {
	out := make([]string, 0, len(c.Calls))
	for _, call := range c.Calls {
		out = append(out, call.Method)
	}
	return out
}

func (c *Context) Update() tele.Update { return c.Upd }

func (c *Context) Message() *tele.Message {
	switch {
	case c.Upd.Message != nil:
		return c.Upd.Message
	case c.Upd.Callback != nil:
		return c.Upd.Callback.Message
	}
	return nil
}

func (c *Context) Callback() *tele.Callback { return c.Upd.Callback }

func (c *Context) Sender() *tele.User {
	switch {
	case c.Upd.Callback != nil:
		return c.Upd.Callback.Sender
	case c.Upd.Message != nil:
		return c.Upd.Message.Sender
	}
	return nil
}

func (c *Context) Chat() *tele.Chat {
	if m := c.Message(); m != nil {
		return m.Chat
	}
	return nil
}

func (c *Context) Text() string {
	if m := c.Message(); m != nil {
		return m.Text
	}
	return ""
}

func (c *Context) Get(key string) interface{} { return c.Store[key] }

func (c *Context) Set(key string, val interface{}) { c.Store[key] = val }

func (c *Context) Send(what interface{}, opts ...interface{}) error {
	return c.record("Send", what, opts)
}

func (c *Context) Reply(what interface{}, opts ...interface{}) error {
	return c.record("Reply", what, opts)
}

func (c *Context) Edit(what interface{}, opts ...interface{}) error {
	return c.record("Edit", what, opts)
}

func (c *Context) EditCaption(caption string, opts ...interface{}) error {
	return c.record("EditCaption", caption, opts)
}

func (c *Context) EditOrSend(what interface{}, opts ...interface{}) error {
	if err := c.record("Edit", what, opts); err == nil {
		return nil
	}
	return c.record("Send", what, opts)
}

func (c *Context) Respond(resp ...*tele.CallbackResponse) error {
	var what interface{}
	if len(resp) > 0 {
		what = resp[0]
	}
	return c.record("Respond", what, nil)
}
