package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/wolfeidau/electron-presets/internal/merge"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value has the wrong shape
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads a YAML or JSON configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return &cfg, nil
}

// MergeBuild merges user build options over defaults. User values win at
// every key, nested objects merge recursively and lists are concatenated with
// the defaults first. The merged result is decoded back into BuildOptions so a
// value of the wrong shape is reported here rather than downstream.
func MergeBuild(defaults, user *BuildOptions) (*BuildOptions, error) {
	defaultMap, err := toMap(defaults)
	if err != nil {
		return nil, err
	}

	userMap, err := toMap(user)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(merge.Merge(defaultMap, userMap))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	merged := &BuildOptions{}
	if err := yaml.Unmarshal(data, merged); err != nil {
		return nil, fmt.Errorf("%w: build: %v", ErrInvalidConfig, err)
	}

	return merged, nil
}

func toMap(v *BuildOptions) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return out, nil
}
