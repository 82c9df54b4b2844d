// Package host runs a plugin list over a configuration the way a bundler
// does: pre resolution hooks, default resolution, then post resolution hooks.
package host

import (
	"fmt"
	"os"
	"slices"

	"dario.cat/mergo"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/plugin"
)

const (
	defaultBase   = "/"
	defaultOutDir = "dist"
)

// Resolve applies plugins to cfg and returns the resolved configuration. cfg
// is modified in place. The first hook error aborts resolution.
func Resolve(cfg *config.Config, env plugin.ConfigEnv, plugins []plugin.Plugin, logger plugin.Logger) (*config.Config, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if env.Mode == "" {
		env.Mode = plugin.ModeProduction
	}

	active := Order(plugins, env.Command)

	for _, p := range active {
		if p.Config == nil {
			continue
		}
		log.Debug().Str("plugin", p.Name).Msg("Running config hook")
		if err := p.Config(cfg, env); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name, err)
		}
	}

	if err := applyDefaults(cfg, env); err != nil {
		return nil, err
	}

	resolved := &plugin.ResolvedConfig{Config: cfg, Command: env.Command, Logger: logger}
	for _, p := range active {
		if p.ConfigResolved == nil {
			continue
		}
		log.Debug().Str("plugin", p.Name).Msg("Running configResolved hook")
		if err := p.ConfigResolved(resolved); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name, err)
		}
	}

	return cfg, nil
}

// Order drops plugins that do not apply to command and stable sorts the rest
// into pre, normal, post order.
func Order(plugins []plugin.Plugin, command plugin.Apply) []plugin.Plugin {
	active := make([]plugin.Plugin, 0, len(plugins))
	for _, p := range plugins {
		if p.Applies(command) {
			active = append(active, p)
		}
	}

	slices.SortStableFunc(active, func(a, b plugin.Plugin) int {
		return rank(a.Enforce) - rank(b.Enforce)
	})

	return active
}

func rank(e plugin.Enforce) int {
	switch e {
	case plugin.EnforcePre:
		return 0
	case plugin.EnforcePost:
		return 2
	default:
		return 1
	}
}

// applyDefaults fills fields the user and plugins left empty.
func applyDefaults(cfg *config.Config, env plugin.ConfigEnv) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	defaults := config.Config{
		Root: root,
		Base: defaultBase,
		Mode: env.Mode,
		Build: &config.BuildOptions{
			OutDir:        defaultOutDir,
			RollupOptions: &config.RollupOptions{},
		},
	}

	if err := mergo.Merge(cfg, defaults); err != nil {
		return fmt.Errorf("failed to apply default config: %w", err)
	}

	return nil
}
