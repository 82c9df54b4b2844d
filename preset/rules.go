package preset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/plugin"
)

const formatCJS = "cjs"

func buildOptions(cfg *plugin.ResolvedConfig) *config.BuildOptions {
	if cfg.Config == nil || cfg.Build == nil {
		return &config.BuildOptions{}
	}
	return cfg.Build
}

// targetFamily requires a target where every element starts with family.
func targetFamily(family string) Rule {
	return func(preset string, cfg *plugin.ResolvedConfig) error {
		targets := buildOptions(cfg).Target
		if len(targets) == 0 {
			return &ValidationError{Preset: preset, Field: "build.target", Err: ErrTargetRequired}
		}

		for _, t := range targets {
			if !strings.HasPrefix(t, family) {
				return &ValidationError{
					Preset: preset,
					Field:  "build.target",
					Err:    ErrTargetFamily,
					Detail: fmt.Sprintf("must be %s, got %q", family, t),
				}
			}
		}
		return nil
	}
}

func libRequired(preset string, cfg *plugin.ResolvedConfig) error {
	if buildOptions(cfg).Lib == nil {
		return &ValidationError{Preset: preset, Field: "build.lib", Err: ErrLibRequired}
	}
	return nil
}

func libEntry(preset string, cfg *plugin.ResolvedConfig) error {
	lib := buildOptions(cfg).Lib
	if lib != nil && lib.Entry == "" {
		return &ValidationError{Preset: preset, Field: "build.lib.entry", Err: ErrEntryRequired}
	}
	return nil
}

func libFormats(preset string, cfg *plugin.ResolvedConfig) error {
	lib := buildOptions(cfg).Lib
	if lib == nil {
		return nil
	}

	if len(lib.Formats) == 0 {
		return &ValidationError{Preset: preset, Field: "build.lib.formats", Err: ErrFormatRequired}
	}
	if !slices.Contains(lib.Formats, formatCJS) {
		return &ValidationError{
			Preset: preset,
			Field:  "build.lib.formats",
			Err:    ErrFormatCJS,
			Detail: fmt.Sprintf("got %v", lib.Formats),
		}
	}
	return nil
}

// libOrInput accepts either a lib build or a custom input. With a custom
// input, at least one output descriptor must use the cjs format.
func libOrInput(preset string, cfg *plugin.ResolvedConfig) error {
	build := buildOptions(cfg)
	if build.Lib != nil {
		if err := libEntry(preset, cfg); err != nil {
			return err
		}
		return libFormats(preset, cfg)
	}

	rollup := build.RollupOptions
	if rollup == nil || rollup.Input.IsZero() {
		return &ValidationError{Preset: preset, Field: "build.lib", Err: ErrLibRequired}
	}

	if len(rollup.Output) == 0 {
		return nil
	}

	cjs := slices.ContainsFunc(rollup.Output, func(o config.OutputOptions) bool {
		return o.Format == formatCJS
	})
	if !cjs {
		return &ValidationError{Preset: preset, Field: "build.rollupOptions.output.format", Err: ErrOutputFormatCJS}
	}
	return nil
}

// baseAdvisory warns when base is not a root or relative path. It never fails.
func baseAdvisory(_ string, cfg *plugin.ResolvedConfig) error {
	if cfg.Config == nil || cfg.Logger == nil {
		return nil
	}

	if cfg.Base != "./" && cfg.Base != "/" {
		cfg.Logger.Warn(fmt.Sprintf("should not set base field for the electron renderer config, got %q", cfg.Base))
	}
	return nil
}

func inputRequired(preset string, cfg *plugin.ResolvedConfig) error {
	rollup := buildOptions(cfg).RollupOptions
	if rollup != nil && !rollup.Input.IsZero() {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Error("index.html file is not found")
	}
	return &ValidationError{Preset: preset, Field: "build.rollupOptions.input", Err: ErrInputRequired}
}
