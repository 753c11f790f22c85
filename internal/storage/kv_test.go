package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, found, err := kv.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("missing key expected not found, got found=%v err=%v", found, err)
	}

	if err := kv.Put(ctx, "k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, found, err := kv.Get(ctx, "k")
	if err != nil || !found || value != "v2" {
		t.Fatalf("expected v2, got %q found=%v err=%v", value, found, err)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatalf("deleted key must be absent")
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting an absent key must be a no-op, got %v", err)
	}
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "financas.db")
	kv, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	ctx := context.Background()
	if _, found, err := kv.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("missing key expected not found, got found=%v err=%v", found, err)
	}

	if err := kv.Put(ctx, "transactions", `[{"id":"a"}]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "transactions", `[{"id":"b"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, found, err := kv.Get(ctx, "transactions")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if value != `[{"id":"b"}]` {
		t.Fatalf("overwrite lost, got %q", value)
	}

	if err := kv.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "transactions"); found {
		t.Fatalf("deleted key must be absent")
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "financas.db")
	ctx := context.Background()

	kv, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Put(ctx, "theme", "light"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	value, found, err := reopened.Get(ctx, "theme")
	if err != nil || !found || value != "light" {
		t.Fatalf("expected persisted light, got %q found=%v err=%v", value, found, err)
	}
}
