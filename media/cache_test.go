package media_test

import (
	"context"
	"testing"

	"github.com/file-command-nexus/nexus/media"
)

func TestCacheMemoryOnly(t *testing.T) {
	cache := media.NewCache(nil)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "clips/a.mp3"); ok {
		t.Error("Get() on empty cache returned ok = true, want false")
	}

	if err := cache.Put(ctx, "clips/a.mp3", []byte("audio")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	data, ok := cache.Get(ctx, "clips/a.mp3")
	if !ok {
		t.Fatal("Get() after Put returned ok = false")
	}
	if string(data) != "audio" {
		t.Errorf("Get() = %q, want %q", data, "audio")
	}
}

func TestCacheWriteThrough(t *testing.T) {
	store := media.NewFileStore(t.TempDir())
	cache := media.NewCache(store)
	ctx := context.Background()

	if err := cache.Put(ctx, "clips/a.mp3", []byte("audio")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	entries, err := store.Load(ctx, "clips/a.mp3")
	if err != nil {
		t.Fatalf("store.Load() error = %v", err)
	}
	if string(entries[0].Value) != "audio" {
		t.Errorf("stored value = %q, want %q", entries[0].Value, "audio")
	}
}

func TestCacheFallsThroughToStore(t *testing.T) {
	store := media.NewFileStore(t.TempDir())
	ctx := context.Background()

	if err := store.Save(ctx, media.Entry{Key: "clips/a.mp3", Value: []byte("audio")}); err != nil {
		t.Fatal(err)
	}

	// fresh cache, nothing in memory
	cache := media.NewCache(store)
	data, ok := cache.Get(ctx, "clips/a.mp3")
	if !ok {
		t.Fatal("Get() missed a clip present in the store")
	}
	if string(data) != "audio" {
		t.Errorf("Get() = %q, want %q", data, "audio")
	}
}

func TestCachePrune(t *testing.T) {
	store := media.NewFileStore(t.TempDir())
	cache := media.NewCache(store)
	ctx := context.Background()

	cache.Put(ctx, "clips/a.mp3", []byte("a"))
	cache.Put(ctx, "clips/b.mp3", []byte("b"))

	if err := cache.Prune(ctx); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if _, ok := cache.Get(ctx, "clips/a.mp3"); ok {
		t.Error("Get() after Prune returned ok = true, want false")
	}
	keys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("store.List() error = %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("store.List() after Prune = %v, want empty", keys)
	}
}
