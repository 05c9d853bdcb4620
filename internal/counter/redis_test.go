package counter

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisSequence(t *testing.T) Redis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return Redis{Client: client, Key: "aspace_quote_counter"}
}

func TestRedisSeedAndNext(t *testing.T) {
	seq := newRedisSequence(t)
	ctx := context.Background()

	if err := seq.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for want := int64(1); want <= 3; want++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n != want {
			t.Fatalf("issued %d, want %d", n, want)
		}
	}
}

func TestRedisSeedPreservesExistingCounter(t *testing.T) {
	seq := newRedisSequence(t)
	ctx := context.Background()

	if err := seq.Client.Set(ctx, seq.Key, 42, 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := seq.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if n != 42 {
		t.Fatalf("issued %d, want carried-over 42", n)
	}
}

func TestMemorySequence(t *testing.T) {
	seq := NewMemory(5)
	ctx := context.Background()
	for want := int64(5); want <= 7; want++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n != want {
			t.Fatalf("issued %d, want %d", n, want)
		}
	}
	if low := NewMemory(0); low.next != 1 {
		t.Fatalf("start below one must clamp, got %d", low.next)
	}
}
