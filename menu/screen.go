package menu

// Screen is one renderable state of the conversation.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenInfo
)

// Callback tokens carried by menu buttons.
const (
	TokenInfo = "info"
	TokenBack = "back"
)

// ImageUnavailableSuffix is appended to the caption when a screen is sent as text.
const ImageUnavailableSuffix = "\n\n(📷 Image indisponible)"

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name back to its Screen.
func ParseScreen(name string) (Screen, bool) {
	switch name {
	case "welcome":
		return ScreenWelcome, true
	case "info":
		return ScreenInfo, true
	}
	return ScreenWelcome, false
}

// Next returns the screen reached from `from` by pressing a button carrying
// token. Unknown tokens leave the screen unchanged and report false.
func Next(from Screen, token string) (Screen, bool) {
	switch token {
	case TokenInfo:
		return ScreenInfo, true
	case TokenBack:
		return ScreenWelcome, true
	}
	return from, false
}

// Content is everything needed to deliver one screen.
type Content struct {
	Screen   Screen
	Caption  string
	ImageURL string
	Layout   Layout
}

// FallbackText is the message body used when the image cannot be shown.
func (c Content) FallbackText() string {
	caption := c.Caption
	if caption == "" {
		caption = "Informations"
	}
	return caption + ImageUnavailableSuffix
}

// Render builds the content of screen from the resolved configuration.
// It has no side effects; equal inputs give equal output.
func Render(screen Screen, cfg Resolved) Content {
	switch screen {
	case ScreenInfo:
		return Content{
			Screen:   ScreenInfo,
			Caption:  cfg.InfoCaption,
			ImageURL: cfg.Links.InfoImage,
			Layout:   InfoLayout(cfg),
		}
	default:
		return Content{
			Screen:   ScreenWelcome,
			Caption:  cfg.WelcomeCaption,
			ImageURL: cfg.Links.WelcomeImage,
			Layout:   WelcomeLayout(cfg),
		}
	}
}
