package cache

import (
	"context"
	"testing"
)

// Services are built with a nil cache when redis is not configured; every
// method must be callable in that state.
func TestEntityCache_NilIsNoOp(t *testing.T) {
	var c *EntityCache
	ctx := context.Background()

	var dest struct{ Name string }
	if c.Get(ctx, TaskKey("t1"), &dest) {
		t.Error("nil cache reported a hit")
	}
	c.Set(ctx, TaskKey("t1"), dest)
	c.Invalidate(ctx, TaskKey("t1"), UserKey("u1"))
}

func TestKeys(t *testing.T) {
	if TaskKey("t1") != "task:t1" {
		t.Errorf("task key = %q", TaskKey("t1"))
	}
	if UserKey("u1") != "user:u1" {
		t.Errorf("user key = %q", UserKey("u1"))
	}
}
