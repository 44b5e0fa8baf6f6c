package app

import (
	"fmt"

	coreconfig "github.com/m3rciful/menubot/core/config"
	"github.com/m3rciful/menubot/menu"
)

// Settings is the full process configuration: the reusable core plus the
// menu section.
type Settings struct {
	Core coreconfig.Config `yaml:",inline"`
	Menu menu.Config       `yaml:"menu"`
}

// CoreConfig exposes the embedded core configuration.
func (s *Settings) CoreConfig() *coreconfig.Config {
	if s == nil {
		return nil
	}
	return &s.Core
}

// LoadSettings reads the optional YAML file at path, the dotenv file and the
// environment, then validates the core section. A missing bot token yields
// an error wrapping coreconfig.ErrMissingToken.
func LoadSettings(path string) (*Settings, error) {
	s := Settings{
		Core: coreconfig.Defaults(),
		Menu: menu.DefaultConfig(),
	}
	if err := coreconfig.LoadInto(path, &s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := coreconfig.Normalize(&s.Core); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}
