package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	method string
	body   string
	image  string
	layout Layout
}

type fakeDelivery struct {
	photo bool
	errs  map[string]error
	calls []sent
}

func newFake() *fakeDelivery {
	return &fakeDelivery{errs: map[string]error{}}
}

func (f *fakeDelivery) record(s sent) error {
	f.calls = append(f.calls, s)
	return f.errs[s.method]
}

func (f *fakeDelivery) SendPhoto(_ context.Context, imageURL, caption string, layout Layout) error {
	return f.record(sent{method: "photo", body: caption, image: imageURL, layout: layout})
}

func (f *fakeDelivery) SendText(_ context.Context, text string, layout Layout) error {
	return f.record(sent{method: "text", body: text, layout: layout})
}

func (f *fakeDelivery) EditCaption(_ context.Context, caption string, layout Layout) error {
	return f.record(sent{method: "edit_caption", body: caption, layout: layout})
}

func (f *fakeDelivery) EditText(_ context.Context, text string, layout Layout) error {
	return f.record(sent{method: "edit_text", body: text, layout: layout})
}

func (f *fakeDelivery) HasPhoto() bool { return f.photo }

func (f *fakeDelivery) methods() []string {
	var out []string
	for _, c := range f.calls {
		out = append(out, c.method)
	}
	return out
}

func sampleContent(image string) Content {
	cfg := allLinks()
	cfg.WelcomeCaption = "hello"
	cfg.Links.WelcomeImage = image
	return Render(ScreenWelcome, cfg)
}

func TestShowPhoto(t *testing.T) {
	d := newFake()
	content := sampleContent("https://cdn.example.com/w.jpg")

	res := Presenter{}.Show(context.Background(), d, content)
	assert.Equal(t, OutcomePhotoSent, res.Outcome)
	assert.NoError(t, res.Err)
	require.Len(t, d.calls, 1)
	assert.Equal(t, sent{method: "photo", body: "hello", image: "https://cdn.example.com/w.jpg", layout: content.Layout}, d.calls[0])
}

func TestShowPhotoRejectedFallsBackToText(t *testing.T) {
	d := newFake()
	d.errs["photo"] = errors.New("Bad Request: wrong file identifier/HTTP URL specified")
	content := sampleContent("https://cdn.example.com/missing.jpg")

	res := Presenter{}.Show(context.Background(), d, content)
	assert.Equal(t, OutcomeTextFallback, res.Outcome)
	assert.True(t, res.OK())
	require.Equal(t, []string{"photo", "text"}, d.methods())
	assert.Equal(t, "hello"+ImageUnavailableSuffix, d.calls[1].body)
	assert.Equal(t, d.calls[0].layout, d.calls[1].layout)
}

func TestShowWithoutImageSendsText(t *testing.T) {
	d := newFake()
	res := Presenter{}.Show(context.Background(), d, Render(ScreenWelcome, Resolved{WelcomeCaption: "hello"}))

	assert.Equal(t, OutcomeTextFallback, res.Outcome)
	require.Equal(t, []string{"text"}, d.methods())
	assert.Equal(t, "hello"+ImageUnavailableSuffix, d.calls[0].body)
	require.Len(t, d.calls[0].layout, 1)
	assert.Equal(t, LabelInfo, d.calls[0].layout[0][0].Text)
}

func TestShowTextFailure(t *testing.T) {
	d := newFake()
	boom := errors.New("network down")
	d.errs["text"] = boom

	res := Presenter{}.Show(context.Background(), d, sampleContent(""))
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, boom)
}

func TestReplace(t *testing.T) {
	content := sampleContent("")

	t.Run("photo message edits caption", func(t *testing.T) {
		d := newFake()
		d.photo = true
		res := Presenter{}.Replace(context.Background(), d, content)
		assert.Equal(t, OutcomeCaptionEdited, res.Outcome)
		require.Equal(t, []string{"edit_caption"}, d.methods())
		assert.Equal(t, "hello", d.calls[0].body)
	})

	t.Run("text message edits body", func(t *testing.T) {
		d := newFake()
		res := Presenter{}.Replace(context.Background(), d, content)
		assert.Equal(t, OutcomeTextEdited, res.Outcome)
		require.Equal(t, []string{"edit_text"}, d.methods())
		assert.Equal(t, content.FallbackText(), d.calls[0].body)
	})

	t.Run("rejected edit sends new message", func(t *testing.T) {
		d := newFake()
		d.photo = true
		d.errs["edit_caption"] = errors.New("Bad Request: message can't be edited")
		res := Presenter{}.Replace(context.Background(), d, sampleContent("https://cdn.example.com/w.jpg"))
		assert.Equal(t, OutcomeEditFallback, res.Outcome)
		assert.NoError(t, res.Err)
		assert.Equal(t, []string{"edit_caption", "photo"}, d.methods())
	})

	t.Run("everything fails", func(t *testing.T) {
		d := newFake()
		d.errs["edit_text"] = errors.New("edit refused")
		d.errs["text"] = errors.New("send refused")
		res := Presenter{}.Replace(context.Background(), d, content)
		assert.Equal(t, OutcomeFailed, res.Outcome)
		assert.EqualError(t, res.Err, "send refused")
		assert.Equal(t, []string{"edit_text", "text"}, d.methods())
	})
}
