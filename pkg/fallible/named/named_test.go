package named

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/fallible/pkg/fallible"
)

var _ fmt.Stringer = Op[any]{}

func TestWrap_RendersLabel(t *testing.T) {
	t.Parallel()

	op := Wrap("parse age", fallible.AsFunc(strconv.Atoi))
	if op.String() != "parse age" {
		t.Fatalf("unexpected rendering %q", op.String())
	}
	if op.Label() != "parse age" {
		t.Fatalf("unexpected label %q", op.Label())
	}
	if got := fmt.Sprintf("%s", op); got != "parse age" {
		t.Fatalf("expected the label through fmt, got %q", got)
	}
}

func TestWrap_EmptyLabelFallback(t *testing.T) {
	t.Parallel()

	op := Wrap("", fallible.AsRunnable(func() error { return nil }))
	if op.String() != "unnamed op" {
		t.Fatalf("unexpected rendering %q", op.String())
	}
}

func TestFn_ReturnsOperationUntouched(t *testing.T) {
	t.Parallel()

	op := Wrap("atoi", fallible.AsFunc(strconv.Atoi))

	got, err := op.Fn()("42")
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %v (err=%v)", got, err)
	}

	errBoom := errors.New("boom")
	failing := Wrap("always fails", fallible.FailingRunnable(func() error { return errBoom }))
	if err := failing.Fn()(); !errors.Is(err, errBoom) {
		t.Fatalf("expected the wrapped failure behavior, got %v", err)
	}
}

func TestWrap_ComposesWithConversions(t *testing.T) {
	t.Parallel()

	op := Wrap("parse", fallible.AsFunc(strconv.Atoi))

	lifted := op.Fn().Lift()
	if got := lifted("bad"); !got.IsNone() {
		t.Fatalf("expected None from the labeled operation, got %v", got)
	}
	if got := lifted("7"); !got.IsSome() {
		t.Fatalf("expected Some from the labeled operation, got %v", got)
	}
}
