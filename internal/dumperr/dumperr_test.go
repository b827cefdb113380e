package dumperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMatchesKindAndCause(t *testing.T) {
	err := fmt.Errorf("dump: %w", New(StageSubstitute, ErrIO, fs.ErrNotExist))

	if !errors.Is(err, ErrIO) {
		t.Fatalf("errors.Is(err, ErrIO) = false")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is(err, fs.ErrNotExist) = false")
	}
	if errors.Is(err, ErrLookup) {
		t.Fatalf("errors.Is(err, ErrLookup) = true")
	}
	stage, ok := StageOf(err)
	if !ok || stage != StageSubstitute {
		t.Fatalf("StageOf() = %q, %v", stage, ok)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Newf(StageResolve, ErrLookup, "group %d out of range", 3)
	want := "resolve: lookup failure: group 3 out of range"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStageOfUntagged(t *testing.T) {
	if _, ok := StageOf(errors.New("plain")); ok {
		t.Fatalf("StageOf() reported a stage for an untagged error")
	}
}
