// Package dumperr defines the typed failures a dump request can end with.
package dumperr

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step that produced a failure.
type Stage string

var (
	StageBuild      Stage = "build"
	StageEncode     Stage = "encode"
	StageSubstitute Stage = "substitute"
	StageResolve    Stage = "resolve"
	StageWrite      Stage = "write"
)

var (
	// ErrLookup reports a missing header, cell data or script group.
	ErrLookup = errors.New("lookup failure")
	// ErrEncoding reports a field that cannot be rendered canonically.
	ErrEncoding = errors.New("encoding violation")
	// ErrIO reports a filesystem failure.
	ErrIO = errors.New("io failure")
	// ErrConsistency reports a script group that does not belong to the binary under test.
	ErrConsistency = errors.New("consistency failure")
)

// Error is a failure tagged with the stage and kind that produced it.
type Error struct {
	Stage Stage
	Kind  error
	Err   error
}

// New tags err with a stage and kind.
func New(stage Stage, kind, err error) *Error {
	return &Error{Stage: stage, Kind: kind, Err: err}
}

// Newf tags a formatted error with a stage and kind.
func Newf(stage Stage, kind error, format string, args ...any) *Error {
	return New(stage, kind, fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StageOf returns the stage of the first tagged error in err's chain.
func StageOf(err error) (Stage, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Stage, true
	}
	return "", false
}
