package renderer

import (
	"errors"
	"fmt"
	"strings"

	"shader-background/internal/gpu"
)

var (
	// ErrContextUnavailable means no rendering surface could be acquired.
	ErrContextUnavailable = errors.New("rendering context unavailable")
	// ErrCompile means the driver rejected a shader stage.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink means the program failed to link or lacks a location the render step needs.
	ErrLink = errors.New("shader link failed")
)

// CompileError carries the driver diagnostic for a rejected stage.
type CompileError struct {
	Stage gpu.StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: %s stage: %s", ErrCompile, e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the driver diagnostic, or the names that did not resolve.
type LinkError struct {
	Log     string
	Missing []string
}

func (e *LinkError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%v: missing locations: %s", ErrLink, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%v: %s", ErrLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
