package menu

// ButtonKind tells the delivery layer how to build a button.
type ButtonKind int

const (
	ButtonLink ButtonKind = iota
	ButtonMiniApp
	ButtonCallback
)

// Button labels.
const (
	LabelMiniApp   = "🛍️ Mini-App"
	LabelPrincipal = "🌐 Principal"
	LabelSecours   = "🔗 Secours"
	LabelFeedback  = "📢 Feedback"
	LabelInfo      = "ℹ️ Informations"
	LabelBack      = "⬅️ Retour"
)

// Button is a single keyboard button. URL is set for link and mini-app
// buttons; Token (and the originating screen in Payload) for callbacks.
type Button struct {
	Kind    ButtonKind
	Text    string
	URL     string
	Token   string
	Payload string
}

// Layout is an ordered list of button rows.
type Layout [][]Button

// Buttons returns the buttons of l in row order.
func (l Layout) Buttons() []Button {
	var out []Button
	for _, row := range l {
		out = append(out, row...)
	}
	return out
}

// WelcomeLayout lists, one per row and in this order: mini-app, primary link,
// backup link, feedback link, each only when its URL is valid, then the
// Informations callback.
func WelcomeLayout(cfg Resolved) Layout {
	links := cfg.Links
	var rows Layout
	if links.MiniApp != "" {
		rows = append(rows, []Button{miniAppButton(links.MiniApp)})
	}
	if links.Principal != "" {
		rows = append(rows, []Button{{Kind: ButtonLink, Text: LabelPrincipal, URL: links.Principal}})
	}
	if links.Secours != "" {
		rows = append(rows, []Button{{Kind: ButtonLink, Text: LabelSecours, URL: links.Secours}})
	}
	if links.Feedback != "" {
		rows = append(rows, []Button{{Kind: ButtonLink, Text: LabelFeedback, URL: links.Feedback}})
	}
	rows = append(rows, []Button{{
		Kind:    ButtonCallback,
		Text:    LabelInfo,
		Token:   TokenInfo,
		Payload: ScreenWelcome.String(),
	}})
	return rows
}

// InfoLayout is the optional mini-app row followed by the Retour callback.
func InfoLayout(cfg Resolved) Layout {
	var rows Layout
	if cfg.InfoMiniApp && cfg.Links.MiniApp != "" {
		rows = append(rows, []Button{miniAppButton(cfg.Links.MiniApp)})
	}
	rows = append(rows, []Button{{
		Kind:    ButtonCallback,
		Text:    LabelBack,
		Token:   TokenBack,
		Payload: ScreenInfo.String(),
	}})
	return rows
}

// ReplyKeyboard returns the mini-app button for the persistent reply
// keyboard, or nil when the keyboard is disabled or the URL is invalid.
func ReplyKeyboard(cfg Resolved) *Button {
	if !cfg.ReplyKeyboard || cfg.Links.MiniApp == "" {
		return nil
	}
	b := miniAppButton(cfg.Links.MiniApp)
	return &b
}

func miniAppButton(url string) Button {
	return Button{Kind: ButtonMiniApp, Text: LabelMiniApp, URL: url}
}
