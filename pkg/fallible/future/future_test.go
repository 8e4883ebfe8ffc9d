package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fallible/pkg/fallible"
)

var _ fallible.Outcome[int] = Settled(0)

func TestSettled_CarriesValue(t *testing.T) {
	t.Parallel()

	f := Settled(42)
	if !f.IsSuccess() {
		t.Fatalf("expected success")
	}
	if f.Result() != 42 {
		t.Fatalf("expected 42, got %v", f.Result())
	}
	if f.Err() != nil {
		t.Fatalf("expected nil error, got %v", f.Err())
	}
	if f.Id() == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
	if f.CreatedAt().IsZero() {
		t.Fatalf("expected a creation time")
	}
}

func TestRejected_CarriesError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	f := Rejected[int](errBoom)
	if f.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if !errors.Is(f.Err(), errBoom) {
		t.Fatalf("expected %v, got %v", errBoom, f.Err())
	}
	if f.Result() != 0 {
		t.Fatalf("expected the zero result, got %v", f.Result())
	}
}

func TestDone_ClosedAtConstruction(t *testing.T) {
	t.Parallel()

	select {
	case <-Settled("x").Done():
	default:
		t.Fatalf("expected Done to be closed for a settled future")
	}

	select {
	case <-Rejected[string](errors.New("boom")).Done():
	default:
		t.Fatalf("expected Done to be closed for a rejected future")
	}
}

func TestAwait_ReturnsOutcomeImmediately(t *testing.T) {
	t.Parallel()

	got, err := Settled(7).Await(context.Background())
	if err != nil || got != 7 {
		t.Fatalf("expected 7, got %v (err=%v)", got, err)
	}

	errBoom := errors.New("boom")
	_, err = Rejected[int](errBoom).Await(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected %v, got %v", errBoom, err)
	}
}

func TestAwait_CompletedWinsOverFinishedContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Settled(7).Await(ctx)
	if err != nil || got != 7 {
		t.Fatalf("expected the settled outcome despite the canceled context, got %v (err=%v)", got, err)
	}
}

func TestAwait_OpenHolderHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var open Future[int]
	_, err := open.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the context error, got %v", err)
	}
}
