package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/wolfeidau/electron-presets/version"
)

type TargetsCmd struct {
	Electron string `help:"only show the row for this electron major version"`

	Out io.Writer `kong:"-"`
}

func (t *TargetsCmd) Run(ctx context.Context, globals *Globals) error {
	rows := version.Targets()

	if t.Electron != "" {
		major := version.Major(t.Electron)
		node, chrome := version.NodeTarget(major), version.ChromeTarget(major)
		if node == "" {
			return fmt.Errorf("no targets known for electron %s", t.Electron)
		}
		rows = []version.Mapping{{Electron: major, Node: node, Chrome: chrome}}
	}

	return writeYAML(output(t.Out), rows)
}
