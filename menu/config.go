// Package menu renders the welcome and info screens and delivers them with
// image and edit fallbacks.
package menu

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m3rciful/menubot/core/logger"
	"github.com/m3rciful/menubot/core/telegram/netutil"
)

const (
	DefaultWelcomeCaption = "Bienvenue Chez 🏢BALTIMORE COFFEE 06🏢✨"
	DefaultInfoCaption    = "Informations & Livraison"
	DefaultMenuButtonText = "Ouvrir"
)

// Config holds the raw menu settings as read from YAML and the environment.
// URL values are not trusted until Resolve validates them.
type Config struct {
	WelcomeImage  string `yaml:"welcome_image" envconfig:"WELCOME_IMAGE"`
	InfoImage     string `yaml:"info_image" envconfig:"INFO_IMAGE"`
	LinkPrincipal string `yaml:"link_principal" envconfig:"LINK_PRINCIPAL"`
	LinkSecours   string `yaml:"link_secours" envconfig:"LINK_SECOURS"`
	LinkFeedback  string `yaml:"link_feedback" envconfig:"LINK_FEEDBACK"`
	MiniAppURL    string `yaml:"miniapp_url" envconfig:"MINIAPP_URL"`

	WelcomeCaption string `yaml:"welcome_caption" envconfig:"WELCOME_CAPTION"`
	InfoCaption    string `yaml:"info_caption" envconfig:"INFO_CAPTION"`

	// InfoMiniApp repeats the mini-app button above Back on the info screen.
	InfoMiniApp bool `yaml:"info_miniapp" envconfig:"MENU_INFO_MINIAPP"`
	// ReplyKeyboard sends a persistent reply keyboard with the mini-app button on /start.
	ReplyKeyboard bool `yaml:"reply_keyboard" envconfig:"MENU_REPLY_KEYBOARD"`
	// MenuButton sets the chat menu button to open the mini-app at startup.
	MenuButton     bool   `yaml:"menu_button" envconfig:"MENU_BUTTON"`
	MenuButtonText string `yaml:"menu_button_text" envconfig:"MENU_BUTTON_TEXT"`
	// EditInPlace edits the pressed message on callbacks instead of sending a new one.
	EditInPlace bool `yaml:"edit_in_place" envconfig:"MENU_EDIT_IN_PLACE"`
}

// DefaultConfig returns the settings used before any source is applied.
func DefaultConfig() Config {
	return Config{
		WelcomeCaption: DefaultWelcomeCaption,
		InfoCaption:    DefaultInfoCaption,
		MenuButton:     true,
		MenuButtonText: DefaultMenuButtonText,
		EditInPlace:    true,
	}
}

// Links carries validated URLs. An empty field means the feature is off.
type Links struct {
	WelcomeImage string
	InfoImage    string
	Principal    string
	Secours      string
	Feedback     string
	MiniApp      string
}

// Resolved is the immutable menu configuration handed to renderers and
// handlers. It is built once by Config.Resolve.
type Resolved struct {
	Links Links

	WelcomeCaption string
	InfoCaption    string
	MenuButtonText string

	InfoMiniApp   bool
	ReplyKeyboard bool
	MenuButton    bool
	EditInPlace   bool
}

// Resolve validates every URL and fills empty captions with defaults.
// Invalid non-empty values are dropped with one WARN line naming the variable.
func (c Config) Resolve(ctx context.Context) Resolved {
	return Resolved{
		Links: Links{
			WelcomeImage: checkImageURL(ctx, "WELCOME_IMAGE", c.WelcomeImage),
			InfoImage:    checkImageURL(ctx, "INFO_IMAGE", c.InfoImage),
			Principal:    checkURL(ctx, "LINK_PRINCIPAL", c.LinkPrincipal),
			Secours:      checkURL(ctx, "LINK_SECOURS", c.LinkSecours),
			Feedback:     checkURL(ctx, "LINK_FEEDBACK", c.LinkFeedback),
			MiniApp:      checkURL(ctx, "MINIAPP_URL", c.MiniAppURL),
		},
		WelcomeCaption: orDefault(c.WelcomeCaption, DefaultWelcomeCaption),
		InfoCaption:    orDefault(c.InfoCaption, DefaultInfoCaption),
		MenuButtonText: orDefault(c.MenuButtonText, DefaultMenuButtonText),
		InfoMiniApp:    c.InfoMiniApp,
		ReplyKeyboard:  c.ReplyKeyboard,
		MenuButton:     c.MenuButton,
		EditInPlace:    c.EditInPlace,
	}
}

func checkURL(ctx context.Context, name, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	u, ok := netutil.SafeURL(raw)
	if !ok {
		logger.Warn(ctx, "menu", "config.url_invalid",
			slog.String("status", "skip"),
			slog.String("var", name),
			slog.String("reason", "invalid_url"),
		)
		return ""
	}
	return u
}

// checkImageURL is checkURL plus a guard against the "..." placeholder left
// in sample image URLs, which Telegram would fail to fetch.
func checkImageURL(ctx context.Context, name, raw string) string {
	if strings.Contains(raw, "...") {
		logger.Warn(ctx, "menu", "config.url_invalid",
			slog.String("status", "skip"),
			slog.String("var", name),
			slog.String("reason", "placeholder"),
		)
		return ""
	}
	return checkURL(ctx, name, raw)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
