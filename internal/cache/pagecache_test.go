package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilCacheIsInert(t *testing.T) {
	var c *PageCache

	ctx := context.Background()
	if _, ok := c.Get(ctx, "volume"); ok {
		t.Error("nil cache reported a hit")
	}
	if err := c.Set(ctx, "volume", []byte("<html></html>")); err != nil {
		t.Errorf("nil cache Set returned %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("nil cache Close returned %v", err)
	}
}

// go test -v --run TestPageCacheRoundTrip
// Requires a local Redis; skipped when one is not reachable.
func TestPageCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, "localhost:6379", "", 15, 30*time.Second)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer c.Close()

	page := []byte("<html><body>board</body></html>")
	if err := c.Set(ctx, "rsi", page); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := c.Get(ctx, "rsi")
	if !ok {
		t.Fatal("expected a hit after set")
	}
	if string(got) != string(page) {
		t.Errorf("got %q, want %q", got, page)
	}
	if _, ok := c.Get(ctx, "no-such-key"); ok {
		t.Error("unexpected hit on unknown key")
	}
}
