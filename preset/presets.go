package preset

import (
	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/internal/entry"
	"github.com/wolfeidau/electron-presets/plugin"
	"github.com/wolfeidau/electron-presets/version"
)

const entryFileNames = "[name].js"

// MainDefinition is the preset for the privileged main process.
var MainDefinition = Definition{
	Name:     "main",
	Family:   version.NodeFamily,
	Apply:    plugin.ApplyBuild,
	Defaults: mainDefaults,
	Defines:  true,
	Rules: []Rule{
		targetFamily(version.NodeFamily),
		libRequired,
		libEntry,
		libFormats,
	},
}

// PreloadDefinition is the preset for preload bridge scripts.
var PreloadDefinition = Definition{
	Name:     "preload",
	Family:   version.NodeFamily,
	Apply:    plugin.ApplyBuild,
	Defaults: preloadDefaults,
	Defines:  true,
	Rules: []Rule{
		targetFamily(version.NodeFamily),
		libOrInput,
	},
}

// RendererDefinition is the preset for the sandboxed renderer. It applies to
// every command, not only builds.
var RendererDefinition = Definition{
	Name:     "renderer",
	Family:   version.ChromeFamily,
	Prepare:  rendererBase,
	Defaults: rendererDefaults,
	Rules: []Rule{
		baseAdvisory,
		targetFamily(version.ChromeFamily),
		inputRequired,
	},
}

// Main returns the main process plugins.
func Main(opts Options) []plugin.Plugin {
	return NewBuilder(MainDefinition, opts).Plugins()
}

// Preload returns the preload script plugins.
func Preload(opts Options) []plugin.Plugin {
	return NewBuilder(PreloadDefinition, opts).Plugins()
}

// Renderer returns the renderer process plugins.
func Renderer(opts Options) []plugin.Plugin {
	return NewBuilder(RendererDefinition, opts).Plugins()
}

// ByName returns the plugins for a process type, or false if name is unknown.
func ByName(name string, opts Options) ([]plugin.Plugin, bool) {
	switch name {
	case MainDefinition.Name:
		return Main(opts), true
	case PreloadDefinition.Name:
		return Preload(opts), true
	case RendererDefinition.Name:
		return Renderer(opts), true
	default:
		return nil, false
	}
}

func nodeExternals() []string {
	return append([]string{"electron"}, builtinExternals()...)
}

func mainDefaults(root, target string, _ *config.Config) *config.BuildOptions {
	return &config.BuildOptions{
		Target: targetList(target),
		Lib: &config.LibOptions{
			Entry:   entry.Find(root, "main"),
			Formats: []string{formatCJS},
		},
		RollupOptions: &config.RollupOptions{
			External: nodeExternals(),
			Output:   config.OutputList{{EntryFileNames: entryFileNames}},
		},
		Minify: config.Bool(false),
	}
}

func preloadDefaults(root, target string, cfg *config.Config) *config.BuildOptions {
	defaults := &config.BuildOptions{
		Target: targetList(target),
		RollupOptions: &config.RollupOptions{
			External: nodeExternals(),
			Output:   config.OutputList{{EntryFileNames: entryFileNames}},
		},
		Minify: config.Bool(false),
	}

	var user *config.RollupOptions
	if cfg.Build != nil {
		user = cfg.Build.RollupOptions
	}

	switch {
	case user == nil || user.Input.IsZero():
		defaults.Lib = &config.LibOptions{
			Entry:   entry.Find(root, "preload"),
			Formats: []string{formatCJS},
		}
	case len(user.Output) == 0:
		defaults.RollupOptions.Output[0].Format = formatCJS
	}

	return defaults
}

func rendererBase(cfg *config.Config, env plugin.ConfigEnv) {
	mode := cfg.Mode
	if mode == "" {
		mode = env.Mode
	}
	if mode == plugin.ModeProduction {
		cfg.Base = "./"
	}
}

func rendererDefaults(_, target string, _ *config.Config) *config.BuildOptions {
	return &config.BuildOptions{
		Target:                targetList(target),
		PolyfillModulePreload: config.Bool(false),
		RollupOptions: &config.RollupOptions{
			External: builtinExternals(),
		},
		Minify: config.Bool(false),
	}
}
