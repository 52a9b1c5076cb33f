package display

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for console rendering.
type Config struct {
	LineWidth int            // maximum line width in fixed-width positions
	Context   *uax11.Context // context for measuring the width of labels
	Colors    bool           // colorize output
}

// DefaultLineWidth is used if no terminal width can be determined.
const DefaultLineWidth = 65

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are enabled for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(1) {
		config.Colors = true
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = DefaultLineWidth
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = DefaultLineWidth
	}
	T().P("display", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
