package commands

import (
	"context"
	"io"
	"os"
)

type ResolveCmd struct {
	PresetFlags `embed:""`

	Out io.Writer `kong:"-"`
}

func (r *ResolveCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := r.resolve(globals)
	if err != nil {
		return err
	}

	return writeYAML(output(r.Out), cfg)
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
