package commands

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/electron-presets/config"
	"github.com/wolfeidau/electron-presets/internal/host"
	"github.com/wolfeidau/electron-presets/internal/logger"
	"github.com/wolfeidau/electron-presets/plugin"
	"github.com/wolfeidau/electron-presets/preset"
	"github.com/wolfeidau/electron-presets/version"
	"gopkg.in/yaml.v3"
)

type Globals struct {
	Debug   bool
	Version string
}

// PresetFlags select the process preset and the inputs it resolves against.
type PresetFlags struct {
	Process       string `arg:"" help:"Electron process type" enum:"main,preload,renderer"`
	Config        string `help:"YAML/JSON bundler config file path" env:"ELECTRON_PRESETS_CONFIG"`
	Root          string `help:"project root, defaults to the config root or the working directory" env:"ELECTRON_PRESETS_ROOT"`
	WorkspaceRoot string `help:"workspace root holding node_modules/electron, discovered when empty" env:"ELECTRON_PRESETS_WORKSPACE_ROOT"`
	Mode          string `help:"build mode" default:"production" enum:"development,production" env:"ELECTRON_PRESETS_MODE"`
	Command       string `help:"host command" default:"build" enum:"build,serve" env:"ELECTRON_PRESETS_COMMAND"`
	EnvFile       string `help:"dotenv file consulted before the process environment, e.g. to pin ELECTRON_MAIN_VER" env:"ELECTRON_PRESETS_ENV_FILE"`
}

// resolve loads the user config and runs it through the selected preset.
func (f *PresetFlags) resolve(globals *Globals) (*config.Config, error) {
	l := logger.Setup(globals.Debug)
	log.Logger = l

	env, err := f.env()
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	if f.Config != "" {
		cfg, err = config.Load(f.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if f.Root != "" {
		cfg.Root = f.Root
	}

	plugins, ok := preset.ByName(f.Process, preset.Options{
		WorkspaceRoot: f.WorkspaceRoot,
		Resolver:      version.NewResolver(version.NewCache(), env),
	})
	if !ok {
		return nil, fmt.Errorf("unknown process type %q", f.Process)
	}

	configEnv := plugin.ConfigEnv{Command: plugin.Apply(f.Command), Mode: f.Mode}

	return host.Resolve(cfg, configEnv, plugins, logger.NewPluginLogger(l, f.Process))
}

func (f *PresetFlags) env() (version.Env, error) {
	if f.EnvFile == "" {
		return version.OSEnv{}, nil
	}

	values, err := godotenv.Read(f.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	return overlayEnv{values: values, base: version.OSEnv{}}, nil
}

// overlayEnv looks keys up in the env file before the process environment.
type overlayEnv struct {
	values map[string]string
	base   version.Env
}

func (o overlayEnv) LookupEnv(key string) (string, bool) {
	if v, ok := o.values[key]; ok {
		return v, true
	}
	return o.base.LookupEnv(key)
}

func (o overlayEnv) Setenv(key, value string) error {
	return o.base.Setenv(key, value)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
