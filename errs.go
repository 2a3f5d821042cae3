package jsonc

import (
	"errors"
	"fmt"

	"github.com/xtracto/jsonc-format/go-jsonc/path"
)

var (
	ErrPathType = errors.New("path type error")
	ErrIndex    = errors.New("index out of bounds")
)

// PathError reports which step of a path a mutation or lookup failed
// on. It unwraps to ErrPathType or ErrIndex.
type PathError struct {
	Path path.Path
	Step int
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s at step %d of %q", e.Err, e.Step, e.Path.String())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func pathTypeErr(p path.Path, step int, msg string) error {
	return &PathError{Path: p, Step: step, Err: fmt.Errorf("%w: %s", ErrPathType, msg)}
}

func indexErr(p path.Path, step, idx, n int) error {
	return &PathError{Path: p, Step: step, Err: fmt.Errorf("%w: %d (len %d)", ErrIndex, idx, n)}
}
