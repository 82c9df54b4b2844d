package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/wolfeidau/electron-presets/internal/esbuildopts"
)

type EsbuildCmd struct {
	PresetFlags `embed:""`

	Out io.Writer `kong:"-"`
}

// esbuildSummary is the printable subset of api.BuildOptions.
type esbuildSummary struct {
	EntryPoints []string          `yaml:"entryPoints"`
	Platform    string            `yaml:"platform"`
	Format      string            `yaml:"format"`
	Engines     []string          `yaml:"engines,omitempty"`
	External    []string          `yaml:"external,omitempty"`
	Define      map[string]string `yaml:"define,omitempty"`
	Outdir      string            `yaml:"outdir"`
	EntryNames  string            `yaml:"entryNames,omitempty"`
	Minify      bool              `yaml:"minify"`
}

func (e *EsbuildCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := e.resolve(globals)
	if err != nil {
		return err
	}

	opts, err := esbuildopts.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to derive esbuild options: %w", err)
	}

	return writeYAML(output(e.Out), summarize(opts))
}

func summarize(opts api.BuildOptions) esbuildSummary {
	s := esbuildSummary{
		EntryPoints: opts.EntryPoints,
		Platform:    platformName(opts.Platform),
		Format:      formatName(opts.Format),
		External:    opts.External,
		Define:      opts.Define,
		Outdir:      opts.Outdir,
		EntryNames:  opts.EntryNames,
		Minify:      opts.MinifySyntax,
	}

	for _, engine := range opts.Engines {
		s.Engines = append(s.Engines, engineName(engine.Name)+engine.Version)
	}

	return s
}

func platformName(p api.Platform) string {
	switch p {
	case api.PlatformNode:
		return "node"
	case api.PlatformNeutral:
		return "neutral"
	default:
		return "browser"
	}
}

func formatName(f api.Format) string {
	switch f {
	case api.FormatCommonJS:
		return "cjs"
	case api.FormatESModule:
		return "esm"
	case api.FormatIIFE:
		return "iife"
	default:
		return "default"
	}
}

func engineName(n api.EngineName) string {
	switch n {
	case api.EngineNode:
		return "node"
	case api.EngineChrome:
		return "chrome"
	default:
		return "engine"
	}
}
