package bootstrap

import (
	"fmt"

	coreconfig "github.com/m3rciful/menubot/core/config"
	"github.com/m3rciful/menubot/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error

	// Checks run after the logger is ready, in order. The first error aborts
	// the bootstrap.
	Checks []func() error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	InstanceID string
}

// Run initializes the logger and runs the startup checks.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	for i, check := range opts.Checks {
		if check == nil {
			continue
		}
		if err := check(); err != nil {
			return nil, fmt.Errorf("bootstrap: check %d failed: %w", i, err)
		}
	}

	return &Result{InstanceID: logger.InstanceID()}, nil
}
