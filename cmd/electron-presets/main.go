package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/electron-presets/cmd/electron-presets/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool `help:"Enable debug mode."`
		Version kong.VersionFlag
		Resolve commands.ResolveCmd `cmd:"" help:"Resolve and validate the bundler config for an electron process"`
		Esbuild commands.EsbuildCmd `cmd:"" help:"Show the esbuild options derived from the resolved config"`
		Targets commands.TargetsCmd `cmd:"" help:"Show the electron to node and chrome target table"`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("electron-presets"),
		kong.Description("Bundler presets for electron main, preload and renderer builds."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
