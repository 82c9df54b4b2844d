// Package config holds the bundler configuration shapes the presets read and
// write. Known keys are typed, anything else is carried in the Extra maps so
// it passes through merging and loading untouched.
package config

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the top level bundler configuration.
type Config struct {
	Root   string            `yaml:"root,omitempty"`
	Base   string            `yaml:"base,omitempty"`
	Mode   string            `yaml:"mode,omitempty"`
	Define map[string]string `yaml:"define,omitempty"`
	Build  *BuildOptions     `yaml:"build,omitempty"`
	Extra  map[string]any    `yaml:",inline"`
}

type BuildOptions struct {
	// Target is one or more compatibility targets such as "node16.13" or "chrome100"
	Target                StringList     `yaml:"target,omitempty"`
	OutDir                string         `yaml:"outDir,omitempty"`
	Lib                   *LibOptions    `yaml:"lib,omitempty"`
	RollupOptions         *RollupOptions `yaml:"rollupOptions,omitempty"`
	Minify                *bool          `yaml:"minify,omitempty"`
	PolyfillModulePreload *bool          `yaml:"polyfillModulePreload,omitempty"`
	Extra                 map[string]any `yaml:",inline"`
}

type LibOptions struct {
	Entry   string         `yaml:"entry,omitempty"`
	Formats []string       `yaml:"formats,omitempty"`
	Name    string         `yaml:"name,omitempty"`
	Extra   map[string]any `yaml:",inline"`
}

type RollupOptions struct {
	External []string       `yaml:"external,omitempty"`
	Input    Input          `yaml:"input,omitempty"`
	Output   OutputList     `yaml:"output,omitempty"`
	Extra    map[string]any `yaml:",inline"`
}

type OutputOptions struct {
	Format         string         `yaml:"format,omitempty"`
	EntryFileNames string         `yaml:"entryFileNames,omitempty"`
	Dir            string         `yaml:"dir,omitempty"`
	Extra          map[string]any `yaml:",inline"`
}

// Bool returns a pointer to v, for the optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		if v == "" {
			*s = nil
			return nil
		}
		*s = StringList{v}
	case yaml.SequenceNode:
		var v []string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = v
	default:
		return fmt.Errorf("%w: line %d: expected a string or a list of strings", ErrInvalidConfig, node.Line)
	}
	return nil
}

// MarshalYAML encodes a single element as a plain string so a default value
// is replaced, not extended, when merged with a user value.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// Input is the bundler input: one path, a list of paths or named paths.
type Input struct {
	Paths []string
	Named map[string]string
}

// InputPaths is shorthand for an Input made of plain paths.
func InputPaths(paths ...string) Input {
	return Input{Paths: paths}
}

func (i Input) IsZero() bool {
	return len(i.Paths) == 0 && len(i.Named) == 0
}

// Values returns every input path, plain paths first then named paths
// ordered by name.
func (i Input) Values() []string {
	values := slices.Clone(i.Paths)
	for _, name := range slices.Sorted(maps.Keys(i.Named)) {
		values = append(values, i.Named[name])
	}
	return values
}

func (i *Input) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		if v != "" {
			i.Paths = []string{v}
		}
	case yaml.SequenceNode:
		return node.Decode(&i.Paths)
	case yaml.MappingNode:
		return node.Decode(&i.Named)
	default:
		return fmt.Errorf("%w: line %d: unsupported input", ErrInvalidConfig, node.Line)
	}
	return nil
}

func (i Input) MarshalYAML() (any, error) {
	switch {
	case len(i.Named) > 0 && len(i.Paths) == 0:
		return i.Named, nil
	case len(i.Named) > 0:
		return nil, fmt.Errorf("%w: input mixes named and plain paths", ErrInvalidConfig)
	case len(i.Paths) == 1:
		return i.Paths[0], nil
	default:
		return i.Paths, nil
	}
}

// OutputList accepts either a single output descriptor or a sequence of them.
type OutputList []OutputOptions

func (o *OutputList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var v OutputOptions
		if err := node.Decode(&v); err != nil {
			return err
		}
		*o = OutputList{v}
	case yaml.SequenceNode:
		var v []OutputOptions
		if err := node.Decode(&v); err != nil {
			return err
		}
		*o = v
	default:
		return fmt.Errorf("%w: line %d: expected an output object or a list of them", ErrInvalidConfig, node.Line)
	}
	return nil
}

// MarshalYAML encodes a single descriptor as a mapping so that default and
// user descriptors merge key by key.
func (o OutputList) MarshalYAML() (any, error) {
	if len(o) == 1 {
		return o[0], nil
	}
	return []OutputOptions(o), nil
}
