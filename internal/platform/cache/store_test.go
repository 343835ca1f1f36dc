package cache

import (
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(t.Context(), "k", "v")
	got, ok := store.Get(t.Context(), "k")
	if !ok || got != "v" {
		t.Fatalf("expected hit with %q, got %v (%v)", "v", got, ok)
	}

	store.Invalidate(t.Context(), "k")
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	store.Set(t.Context(), "k", "v")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewStore(0)

	store.Set(t.Context(), "k", "v")
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(t.Context(), "k"); !ok {
		t.Fatalf("expected entry to stay")
	}
}

func TestStore_NilIsNoop(t *testing.T) {
	var store *Store

	store.Set(t.Context(), "k", "v")
	store.Invalidate(t.Context(), "k")
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected nil store to always miss")
	}
}

func TestStore_EmptyKeyIgnored(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(t.Context(), "", "v")
	if _, ok := store.Get(t.Context(), ""); ok {
		t.Fatalf("expected empty key to miss")
	}
}
