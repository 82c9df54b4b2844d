package esbuildopts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/electron-presets/config"
)

func TestFromConfigMain(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		Root:   root,
		Define: map[string]string{"process.env": "process.env"},
		Build: &config.BuildOptions{
			Target: config.StringList{"node16.13"},
			OutDir: "out/main",
			Lib:    &config.LibOptions{Entry: filepath.Join(root, "main.ts"), Formats: []string{"cjs"}},
			RollupOptions: &config.RollupOptions{
				External: []string{"electron", "fs", "electron"},
				Output:   config.OutputList{{EntryFileNames: "[name].js"}},
			},
			Minify: config.Bool(false),
		},
	}

	opts, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "main.ts")}, opts.EntryPoints)
	assert.Equal(t, api.PlatformNode, opts.Platform)
	assert.Equal(t, api.FormatCommonJS, opts.Format)
	assert.Equal(t, []api.Engine{{Name: api.EngineNode, Version: "16.13"}}, opts.Engines)
	assert.Equal(t, []string{"electron", "fs"}, opts.External)
	assert.Equal(t, map[string]string{"process.env": "process.env"}, opts.Define)
	assert.Equal(t, filepath.Join(root, "out/main"), opts.Outdir)
	assert.Equal(t, "[name]", opts.EntryNames)
	assert.True(t, opts.Bundle)
	assert.False(t, opts.MinifySyntax)
}

func TestFromConfigRendererHTML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(`<!doctype html>
<html>
  <head>
    <script src="https://cdn.example.com/analytics.js" type="module"></script>
    <script src="/legacy.js"></script>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="./src/main.ts"></script>
    <script type="module" src="/src/worker.ts"></script>
    <script type="module">console.log("inline")</script>
  </body>
</html>`), 0600))

	cfg := &config.Config{
		Root: root,
		Base: "./",
		Build: &config.BuildOptions{
			Target:        config.StringList{"chrome100"},
			RollupOptions: &config.RollupOptions{Input: config.InputPaths("index.html")},
			Minify:        config.Bool(true),
		},
	}

	opts, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "main.ts"),
		filepath.Join(root, "src", "worker.ts"),
	}, opts.EntryPoints)
	assert.Equal(t, api.PlatformBrowser, opts.Platform)
	assert.Equal(t, api.FormatESModule, opts.Format)
	assert.Equal(t, []api.Engine{{Name: api.EngineChrome, Version: "100"}}, opts.Engines)
	assert.Equal(t, filepath.Join(root, "dist"), opts.Outdir)
	assert.True(t, opts.MinifyWhitespace)
	assert.True(t, opts.MinifyIdentifiers)
}

func TestFromConfigPreloadInput(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		Root: root,
		Build: &config.BuildOptions{
			Target: config.StringList{"node16.13", "es2020"},
			RollupOptions: &config.RollupOptions{
				Input:  config.Input{Named: map[string]string{"b": "src/b.ts", "a": "src/a.ts"}},
				Output: config.OutputList{{Format: "cjs", Dir: "out/preload"}},
			},
		},
	}

	opts, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "src/a.ts"), filepath.Join(root, "src/b.ts")}, opts.EntryPoints)
	assert.Equal(t, api.FormatCommonJS, opts.Format)
	assert.Equal(t, api.ES2020, opts.Target)
	assert.Equal(t, filepath.Join(root, "out/preload"), opts.Outdir)
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNoBuild},
		{name: "no build", cfg: &config.Config{}, err: ErrNoBuild},
		{
			name: "unknown target",
			cfg:  &config.Config{Build: &config.BuildOptions{Target: config.StringList{"safari15"}, Lib: &config.LibOptions{Entry: "main.ts"}}},
			err:  ErrUnsupportedTarget,
		},
		{
			name: "unknown format",
			cfg:  &config.Config{Build: &config.BuildOptions{Target: config.StringList{"node16"}, Lib: &config.LibOptions{Entry: "main.ts", Formats: []string{"system"}}}},
			err:  ErrUnsupportedFormat,
		},
		{
			name: "no entry",
			cfg:  &config.Config{Build: &config.BuildOptions{Target: config.StringList{"node16"}}},
			err:  ErrNoEntryPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(tt.cfg)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromConfigMissingHTML(t *testing.T) {
	cfg := &config.Config{
		Root: t.TempDir(),
		Build: &config.BuildOptions{
			Target:        config.StringList{"chrome100"},
			RollupOptions: &config.RollupOptions{Input: config.InputPaths("index.html")},
		},
	}

	_, err := FromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open html entry")
}
