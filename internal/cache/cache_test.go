package cache

import (
	"testing"
	"time"
)

func TestPublic_SetGet(t *testing.T) {
	p := NewPublic(time.Minute)

	if _, ok := p.Get(KeyAnimals); ok {
		t.Fatalf("expected miss on empty cache")
	}

	p.Set(KeyAnimals, []string{"Leo"})
	v, ok := p.Get(KeyAnimals)
	if !ok {
		t.Fatalf("expected hit after Set")
	}
	if got := v.([]string); len(got) != 1 || got[0] != "Leo" {
		t.Fatalf("unexpected cached value: %+v", got)
	}
}

func TestPublic_Invalidate(t *testing.T) {
	p := NewPublic(time.Minute)
	p.Set(KeyHabitats, "cached")

	p.Invalidate(KeyHabitats)
	if _, ok := p.Get(KeyHabitats); ok {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestPublic_Expiry(t *testing.T) {
	p := NewPublic(20 * time.Millisecond)
	p.Set(KeyServices, "cached")

	time.Sleep(50 * time.Millisecond)
	if _, ok := p.Get(KeyServices); ok {
		t.Fatalf("expected entry to expire")
	}
}
