package fallible

import (
	"errors"
	"testing"
)

func TestConsumer_UncheckedRunsSideEffect(t *testing.T) {
	t.Parallel()

	var seen []string
	record := AsConsumer(func(s string) error {
		seen = append(seen, s)
		return nil
	})

	record.Unchecked()("a")
	record.Unchecked()("b")

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("expected both values recorded, got %v", seen)
	}
}

func TestConsumer_UncheckedPanicsOnFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	c := FailingConsumer[string](func() error { return errBoom })

	err := Catch(func() { c.Unchecked()("x") })
	if !IsFailure(err) || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped failure with cause %v, got %v", errBoom, err)
	}
}

func TestConsumer_LiftReportsRun(t *testing.T) {
	t.Parallel()

	ok := AsConsumer(func(string) error { return nil })
	if !ok.Lift()("x") {
		t.Fatalf("expected true for a successful run")
	}

	bad := FailingConsumer[string](func() error { return errors.New("boom") })
	if bad.Lift()("x") {
		t.Fatalf("expected false for a failing run")
	}
}

func TestConsumer_IgnoreSwallowsFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	bad := AsConsumer(func(string) error {
		calls++
		return errors.New("boom")
	})

	bad.Ignore()("x")
	bad.Ignore()("y")

	if calls != 2 {
		t.Fatalf("expected the operation to run despite failures, got %d calls", calls)
	}
}

func TestConsumer_AndThenShortCircuits(t *testing.T) {
	t.Parallel()

	var order []string
	first := AsConsumer(func(s string) error {
		order = append(order, "first:"+s)
		return nil
	})
	second := AsConsumer(func(s string) error {
		order = append(order, "second:"+s)
		return nil
	})

	if err := first.AndThen(second)("x"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(order) != 2 || order[0] != "first:x" || order[1] != "second:x" {
		t.Fatalf("expected in-order side effects, got %v", order)
	}

	errBoom := errors.New("boom")
	order = order[:0]
	failing := FailingConsumer[string](func() error { return errBoom })

	if err := failing.AndThen(second)("y"); !errors.Is(err, errBoom) {
		t.Fatalf("expected propagated failure, got %v", err)
	}
	if len(order) != 0 {
		t.Fatalf("second consumer must not run after a failure, got %v", order)
	}
}

func TestBiConsumer_Conversions(t *testing.T) {
	t.Parallel()

	type entry struct {
		k string
		v int
	}
	var entries []entry
	put := AsBiConsumer(func(k string, v int) error {
		if k == "" {
			return errors.New("empty key")
		}
		entries = append(entries, entry{k, v})
		return nil
	})

	put.Unchecked()("a", 1)
	if !put.Lift()("b", 2) {
		t.Fatalf("expected true for a successful run")
	}
	if put.Lift()("", 3) {
		t.Fatalf("expected false for a failing run")
	}
	put.Ignore()("", 4)

	if len(entries) != 2 {
		t.Fatalf("expected two stored entries, got %v", entries)
	}

	err := Catch(func() { put.Unchecked()("", 5) })
	if !IsFailure(err) {
		t.Fatalf("expected a wrapped failure, got %v", err)
	}
}

func TestBiConsumer_AndThenShortCircuits(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	invoked := false
	second := AsBiConsumer(func(string, int) error {
		invoked = true
		return nil
	})

	err := FailingBiConsumer[string, int](func() error { return errBoom }).AndThen(second)("x", 1)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected propagated failure, got %v", err)
	}
	if invoked {
		t.Fatalf("second consumer must not run after a failure")
	}
}
