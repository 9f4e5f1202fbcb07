package pane

import (
	"github.com/rs/zerolog"

	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/plugin"
)

// Option configures a Pane created with New.
type Option func(*Pane)

// WithPlugins replaces the built-in plugins. Plugins are tried in the
// order given.
func WithPlugins(plugins ...plugin.InputBindingPlugin) Option {
	return func(p *Pane) {
		p.plugins = plugins
	}
}

// WithErrorHandler sets the handler receiving refresh and write failures.
// Without it the global errors.Handler() is used.
func WithErrorHandler(h errors.ErrorHandler) Option {
	return func(p *Pane) {
		p.handler = h
	}
}

// WithLogger sets the logger for binding lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pane) {
		p.logger = logger
	}
}
