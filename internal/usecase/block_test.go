package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func newBlockPolicyUnderTest(store *stubStore, cache *stubCache) *BlockPolicy {
	return NewBlockPolicy(store, cache, zap.NewNop())
}

func TestIsBlockedUnknownUserFailsOpen(t *testing.T) {
	policy := newBlockPolicyUnderTest(newStubStore(), &stubCache{})

	blocked, err := policy.IsBlocked(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("unknown user must not error: %v", err)
	}
	if blocked {
		t.Fatal("unknown user must not be blocked")
	}
}

func TestBlockThenUnblockRestoresState(t *testing.T) {
	store := newStubStore()
	policy := newBlockPolicyUnderTest(store, &stubCache{})
	ctx := context.Background()

	if err := policy.Block(ctx, "user-1", "phone visible in frame"); err != nil {
		t.Fatalf("block failed: %v", err)
	}

	blocked, err := policy.IsBlocked(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Fatal("expected user to be blocked")
	}

	if err := policy.Unblock(ctx, "user-1"); err != nil {
		t.Fatalf("unblock failed: %v", err)
	}

	blocked, err = policy.IsBlocked(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked {
		t.Fatal("expected user to be unblocked")
	}

	record := store.blocks["user-1"]
	if record.Reason != "" || record.BlockedAt != nil {
		t.Fatalf("unblock must clear reason and timestamp, got %+v", record)
	}
}

func TestBlockDefaultsReason(t *testing.T) {
	store := newStubStore()
	policy := newBlockPolicyUnderTest(store, &stubCache{})

	if err := policy.Block(context.Background(), "user-1", ""); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if store.blocks["user-1"].Reason != DefaultBlockReason {
		t.Fatalf("expected default reason, got %q", store.blocks["user-1"].Reason)
	}
}

func TestBlockIsIdempotent(t *testing.T) {
	store := newStubStore()
	policy := newBlockPolicyUnderTest(store, &stubCache{})
	ctx := context.Background()

	if err := policy.Block(ctx, "user-1", "first"); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if err := policy.Block(ctx, "user-1", "second"); err != nil {
		t.Fatalf("re-block failed: %v", err)
	}

	record := store.blocks["user-1"]
	if !record.IsBlocked {
		t.Fatal("expected user to remain blocked")
	}
	if record.Reason != "second" {
		t.Fatalf("re-block must overwrite the reason, got %q", record.Reason)
	}
}

func TestBlockInvalidatesCache(t *testing.T) {
	cache := &stubCache{}
	policy := newBlockPolicyUnderTest(newStubStore(), cache)

	if err := policy.Block(context.Background(), "user-1", "reason"); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if len(cache.delKeys) != 1 || cache.delKeys[0] != "block:user-1" {
		t.Fatalf("expected block cache invalidation, got %v", cache.delKeys)
	}
}

func TestIsBlockedUsesCachedAnswer(t *testing.T) {
	store := newStubStore()
	cache := &stubCache{getValues: []string{"1"}}
	policy := newBlockPolicyUnderTest(store, cache)

	blocked, err := policy.IsBlocked(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Fatal("expected cached blocked answer")
	}
}
