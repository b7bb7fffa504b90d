package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/kbukum/fnkit/errors"
)

func TestTimeout_CompletesInTime(t *testing.T) {
	got, err := Timeout(context.Background(), "fast", 100*time.Millisecond, func(context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Errorf("expected ok, got %q, %v", got, err)
	}
}

func TestTimeout_Elapses(t *testing.T) {
	cancelled := make(chan struct{})
	start := time.Now()

	_, err := Timeout(context.Background(), "slow", 10*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})

	if !apperrors.Is(err, apperrors.ErrCodeTimeout) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("expected to return promptly, took %v", elapsed)
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Error("expected fn context to be cancelled")
	}
}

func TestTimeout_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	_, err := Timeout(context.Background(), "op", time.Second, func(context.Context) (int, error) {
		return 0, want
	})
	if err != want {
		t.Errorf("expected fn error, got %v", err)
	}
}

func TestTimeout_RecoversPanic(t *testing.T) {
	_, err := Timeout(context.Background(), "op", time.Second, func(context.Context) (int, error) {
		panic("kaboom")
	})
	if !apperrors.Is(err, apperrors.ErrCodeUnknown) {
		t.Errorf("expected UNKNOWN, got %v", err)
	}
}

func TestTimeout_ParentContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Timeout(ctx, "op", time.Second, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWithTimeout(t *testing.T) {
	square := WithTimeout(func(ctx context.Context, n int) (int, error) {
		if n < 0 {
			<-ctx.Done()
			return 0, ctx.Err()
		}
		return n * n, nil
	}, "square", 10*time.Millisecond)

	got, err := square(context.Background(), 4)
	if err != nil || got != 16 {
		t.Errorf("expected 16, got %d, %v", got, err)
	}

	_, err = square(context.Background(), -1)
	if !apperrors.Is(err, apperrors.ErrCodeTimeout) {
		t.Errorf("expected TIMEOUT, got %v", err)
	}
}
