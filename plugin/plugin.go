// Package plugin defines the contract between a host build tool and the
// presets: named plugins with an apply filter, an ordering tag and a single
// lifecycle hook.
package plugin

import "github.com/wolfeidau/electron-presets/config"

// Apply restricts a plugin to one host command. The zero value applies to all.
type Apply string

const (
	ApplyAll   Apply = ""
	ApplyBuild Apply = "build"
	ApplyServe Apply = "serve"
)

// Enforce orders a plugin relative to the others.
type Enforce string

const (
	EnforceNone Enforce = ""
	EnforcePre  Enforce = "pre"
	EnforcePost Enforce = "post"
)

// Build modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// ConfigEnv describes the invocation the configuration is resolved for.
type ConfigEnv struct {
	Command Apply
	Mode    string
}

// Logger is the host logger handed to post resolution hooks.
type Logger interface {
	Warn(msg string)
	Error(msg string)
}

// ResolvedConfig is the fully resolved configuration passed to ConfigResolved.
type ResolvedConfig struct {
	*config.Config
	Command Apply
	Logger  Logger
}

// Plugin carries exactly one of Config or ConfigResolved.
type Plugin struct {
	Name    string
	Apply   Apply
	Enforce Enforce

	// Config may mutate the draft configuration before resolution.
	Config func(cfg *config.Config, env ConfigEnv) error
	// ConfigResolved inspects the resolved configuration and fails the build
	// by returning an error.
	ConfigResolved func(cfg *ResolvedConfig) error
}

// Applies reports whether the plugin runs for the given command.
func (p Plugin) Applies(command Apply) bool {
	return p.Apply == ApplyAll || p.Apply == command
}
