package reqcontext

import (
	"context"
	"testing"
	"time"
)

func TestBegin(t *testing.T) {
	ctx := Begin(context.Background(), "req-1")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Fatalf("expected request id req-1, got %q", got)
	}
	if _, ok := GetStartTime(ctx); !ok {
		t.Fatal("expected start time to be set")
	}

	time.Sleep(time.Millisecond)
	if Elapsed(ctx) <= 0 {
		t.Fatal("expected positive elapsed time")
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	if got := GetRequestID(ctx); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
	if Elapsed(ctx) != 0 {
		t.Fatal("expected zero elapsed time without Begin")
	}
}
