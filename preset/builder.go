// Package preset provides the bundler presets for the three Electron process
// types. Each preset is a pair of plugins: one merges computed defaults into
// the user configuration before resolution, the other validates the resolved
// configuration and fails the build on invalid combinations.
package preset

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/internal/workspace"
	"github.com/wolfeidau/electron-presets/plugin"
	"github.com/wolfeidau/electron-presets/version"
)

type Options struct {
	// WorkspaceRoot is where node_modules/electron is looked up. When empty it
	// is discovered by walking up from the project root.
	WorkspaceRoot string
	// Resolver supplies the Electron version. Share one between presets so
	// the version is read once; nil uses version.Default().
	Resolver *version.Resolver
}

// DefaultsFunc computes the preset's build defaults. target is "" when the
// Electron version is unknown.
type DefaultsFunc func(root, target string, cfg *config.Config) *config.BuildOptions

// Rule checks one constraint of a resolved configuration.
type Rule func(preset string, cfg *plugin.ResolvedConfig) error

// Definition describes a preset as data.
type Definition struct {
	// Name is the process type, used in plugin names and errors
	Name string
	// Family is the target prefix every build target must carry
	Family string
	Apply  plugin.Apply
	// Prepare runs before defaults are computed and may adjust top level fields
	Prepare  func(cfg *config.Config, env plugin.ConfigEnv)
	Defaults DefaultsFunc
	// Defines injects the process.env substitutions
	Defines bool
	// Rules run in order after resolution, the first failure is returned
	Rules []Rule
}

type Builder struct {
	def      Definition
	opts     Options
	resolver *version.Resolver
}

func NewBuilder(def Definition, opts Options) *Builder {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = version.Default()
	}
	return &Builder{def: def, opts: opts, resolver: resolver}
}

// Plugins returns the pre resolution plugin followed by the post resolution one.
func (b *Builder) Plugins() []plugin.Plugin {
	return []plugin.Plugin{
		{
			Name:    "electron:" + b.def.Name + "-preset-config",
			Apply:   b.def.Apply,
			Enforce: plugin.EnforcePre,
			Config:  b.config,
		},
		{
			Name:           "electron:" + b.def.Name + "-resolved-config",
			Apply:          b.def.Apply,
			Enforce:        plugin.EnforcePost,
			ConfigResolved: b.configResolved,
		},
	}
}

func (b *Builder) config(cfg *config.Config, env plugin.ConfigEnv) error {
	root := cfg.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine project root: %w", err)
		}
		root = wd
	}

	workspaceRoot := b.opts.WorkspaceRoot
	if workspaceRoot == "" {
		workspaceRoot = workspace.SearchRoot(root)
	}

	var target string
	if workspaceRoot != "" {
		target = version.TargetFor(b.def.Family, b.resolver.MajorVersion(workspaceRoot))
	}

	if b.def.Prepare != nil {
		b.def.Prepare(cfg, env)
	}

	build, err := config.MergeBuild(b.def.Defaults(root, target, cfg), cfg.Build)
	if err != nil {
		return fmt.Errorf("electron %s config: %w", b.def.Name, err)
	}
	cfg.Build = build

	if b.def.Defines {
		cfg.Define = withProcessEnvDefines(cfg.Define)
	}

	log.Debug().
		Str("preset", b.def.Name).
		Str("root", root).
		Str("workspace", workspaceRoot).
		Str("target", target).
		Msg("Applied preset defaults")

	return nil
}

func (b *Builder) configResolved(cfg *plugin.ResolvedConfig) error {
	for _, rule := range b.def.Rules {
		if err := rule(b.def.Name, cfg); err != nil {
			return err
		}
	}
	return nil
}

func targetList(target string) config.StringList {
	if target == "" {
		return nil
	}
	return config.StringList{target}
}
