// Package esbuildopts turns a resolved preset configuration into esbuild
// build options. It only computes options, running the build is left to the
// caller.
package esbuildopts

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/version"
)

const defaultOutDir = "dist"

var (
	// ErrNoBuild indicates the configuration has no build section
	ErrNoBuild = errors.New("configuration has no build options")
	// ErrNoEntryPoints indicates neither lib.entry nor an input produced an entry
	ErrNoEntryPoints = errors.New("no entry points found")
	// ErrUnsupportedTarget indicates a target esbuild cannot express
	ErrUnsupportedTarget = errors.New("unsupported build target")
	// ErrUnsupportedFormat indicates an output format esbuild cannot produce
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

var languageTargets = map[string]api.Target{
	"esnext": api.ESNext,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

// FromConfig maps a resolved configuration to esbuild options.
func FromConfig(cfg *config.Config) (api.BuildOptions, error) {
	if cfg == nil || cfg.Build == nil {
		return api.BuildOptions{}, ErrNoBuild
	}
	build := cfg.Build

	target, engines, platform, err := targets(build.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}

	format, err := outputFormat(build, platform)
	if err != nil {
		return api.BuildOptions{}, err
	}

	entryPoints, err := resolveEntryPoints(cfg)
	if err != nil {
		return api.BuildOptions{}, err
	}

	minify := build.Minify != nil && *build.Minify

	opts := api.BuildOptions{
		EntryPoints:       entryPoints,
		Bundle:            true,
		Write:             true,
		Platform:          platform,
		Format:            format,
		Target:            target,
		Engines:           engines,
		Define:            maps.Clone(cfg.Define),
		Outdir:            outDir(cfg),
		EntryNames:        entryNames(build),
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		TreeShaking:       api.TreeShakingTrue,
		Sourcemap:         api.SourceMapNone,
		Metafile:          true,
	}

	if build.RollupOptions != nil {
		opts.External = slices.Compact(slices.Sorted(slices.Values(build.RollupOptions.External)))
	}

	return opts, nil
}

// targets splits build targets into esbuild engines and a language target,
// and picks the platform from the runtime family.
func targets(list config.StringList) (api.Target, []api.Engine, api.Platform, error) {
	target := api.DefaultTarget
	platform := api.PlatformBrowser
	var engines []api.Engine

	for _, t := range list {
		switch {
		case strings.HasPrefix(t, version.NodeFamily):
			engines = append(engines, api.Engine{Name: api.EngineNode, Version: strings.TrimPrefix(t, version.NodeFamily)})
			platform = api.PlatformNode
		case strings.HasPrefix(t, version.ChromeFamily):
			engines = append(engines, api.Engine{Name: api.EngineChrome, Version: strings.TrimPrefix(t, version.ChromeFamily)})
		default:
			lang, ok := languageTargets[strings.ToLower(t)]
			if !ok {
				return 0, nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedTarget, t)
			}
			target = lang
		}
	}

	return target, engines, platform, nil
}

func outputFormat(build *config.BuildOptions, platform api.Platform) (api.Format, error) {
	var formats []string
	if build.Lib != nil {
		formats = append(formats, build.Lib.Formats...)
	}
	if build.RollupOptions != nil {
		for _, o := range build.RollupOptions.Output {
			if o.Format != "" {
				formats = append(formats, o.Format)
			}
		}
	}

	if slices.Contains(formats, "cjs") || slices.Contains(formats, "commonjs") {
		return api.FormatCommonJS, nil
	}

	if len(formats) > 0 {
		switch formats[0] {
		case "es", "esm", "module":
			return api.FormatESModule, nil
		case "iife", "umd":
			return api.FormatIIFE, nil
		default:
			return api.FormatDefault, fmt.Errorf("%w: %q", ErrUnsupportedFormat, formats[0])
		}
	}

	if platform == api.PlatformNode {
		return api.FormatCommonJS, nil
	}
	return api.FormatESModule, nil
}

func resolveEntryPoints(cfg *config.Config) ([]string, error) {
	build := cfg.Build

	var inputs []string
	switch {
	case build.Lib != nil && build.Lib.Entry != "":
		inputs = []string{build.Lib.Entry}
	case build.RollupOptions != nil:
		inputs = build.RollupOptions.Input.Values()
	}

	var entries []string
	for _, input := range inputs {
		path := resolvePath(cfg.Root, input)
		if !strings.EqualFold(filepath.Ext(path), ".html") {
			entries = append(entries, path)
			continue
		}

		scripts, err := htmlEntryPoints(path, cfg.Root)
		if err != nil {
			return nil, err
		}
		entries = append(entries, scripts...)
	}

	if len(entries) == 0 {
		return nil, ErrNoEntryPoints
	}

	return entries, nil
}

func outDir(cfg *config.Config) string {
	dir := cfg.Build.OutDir
	if rollup := cfg.Build.RollupOptions; rollup != nil {
		for _, o := range rollup.Output {
			if o.Dir != "" {
				dir = o.Dir
				break
			}
		}
	}
	if dir == "" {
		dir = defaultOutDir
	}
	return resolvePath(cfg.Root, dir)
}

// entryNames converts a bundler file name pattern such as "[name].js" to the
// extensionless form esbuild expects.
func entryNames(build *config.BuildOptions) string {
	if build.RollupOptions == nil {
		return ""
	}
	for _, o := range build.RollupOptions.Output {
		if o.EntryFileNames != "" {
			return strings.TrimSuffix(o.EntryFileNames, filepath.Ext(o.EntryFileNames))
		}
	}
	return ""
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
