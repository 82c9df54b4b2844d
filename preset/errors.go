package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetRequired indicates build.target is empty after resolution
	ErrTargetRequired = errors.New("build target required")
	// ErrTargetFamily indicates a build target outside the process's runtime family
	ErrTargetFamily = errors.New("build target has the wrong runtime family")
	// ErrLibRequired indicates neither build.lib nor a custom input was configured
	ErrLibRequired = errors.New("build lib field required")
	// ErrEntryRequired indicates build.lib.entry is empty
	ErrEntryRequired = errors.New("build entry field required")
	// ErrFormatRequired indicates build.lib.formats is empty
	ErrFormatRequired = errors.New("build format field required")
	// ErrFormatCJS indicates build.lib.formats does not include cjs
	ErrFormatCJS = errors.New("build lib format must be cjs")
	// ErrOutputFormatCJS indicates no output descriptor uses the cjs format
	ErrOutputFormatCJS = errors.New("output format must be cjs")
	// ErrInputRequired indicates build.rollupOptions.input is empty
	ErrInputRequired = errors.New("build rollupOptions input field required")
)

// ValidationError reports the preset and field that failed validation.
type ValidationError struct {
	Preset string
	Field  string
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("electron %s config: %s: %v", e.Preset, e.Field, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
