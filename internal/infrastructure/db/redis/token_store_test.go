package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenStore(client), mr
}

func TestTokenStore_SetGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sess_1", "tok_abc", time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	raw, err := store.Get(ctx, "sess_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if raw != "tok_abc" {
		t.Fatalf("expected tok_abc, got %q", raw)
	}
}

func TestTokenStore_Get_Absent(t *testing.T) {
	store, _ := newTestStore(t)

	raw, err := store.Get(context.Background(), "sess_missing")
	if err != nil {
		t.Fatalf("absent key must not be an error, got %v", err)
	}
	if raw != "" {
		t.Fatalf("expected empty token, got %q", raw)
	}
}

func TestTokenStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sess_1", "tok_abc", time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Delete(ctx, "sess_1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	raw, err := store.Get(ctx, "sess_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if raw != "" {
		t.Fatalf("expected token erased, got %q", raw)
	}

	// Deleting an already absent key is fine.
	if err := store.Delete(ctx, "sess_1"); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}
}

func TestTokenStore_TTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sess_1", "tok_abc", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	raw, err := store.Get(ctx, "sess_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if raw != "" {
		t.Fatalf("expected token to expire, got %q", raw)
	}
}
