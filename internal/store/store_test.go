package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tecstore/internal/domain"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := m.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("unexpected get result: %q ok=%v err=%v", v, ok, err)
	}
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestReadJSONMissingKeyKeepsDefault(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	items := []domain.CartItem{}
	if err := ReadJSON(ctx, m, CartKey, &items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty default, got %v", items)
	}
}

func TestReadJSONMalformedPayloadKeepsDefault(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Set(ctx, UsersKey, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	users := map[string]domain.User{}
	if err := ReadJSON(ctx, m, UsersKey, &users); err != nil {
		t.Fatalf("expected malformed payload to degrade silently, got %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty mapping, got %v", users)
	}
}

func TestCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []domain.CartItem{
		{ID: "p2", Name: "Mouse", Price: 49.9, Image: "mouse.png", Quantity: 2},
		{ID: "p1", Name: "Widget", Price: 10, Image: "img.png", Quantity: 1},
	}
	if err := WriteJSON(ctx, m, CartKey, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out []domain.CartItem
	if err := ReadJSON(ctx, m, CartKey, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d items, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("item %d changed in round trip: %+v vs %+v", i, in[i], out[i])
		}
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tecstore.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := f.Set(ctx, SessionKey, "demo@tecstore.pe"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, err := reopened.Get(ctx, SessionKey)
	if err != nil || !ok || v != "demo@tecstore.pe" {
		t.Fatalf("unexpected value after reopen: %q ok=%v err=%v", v, ok, err)
	}

	if err := reopened.Delete(ctx, SessionKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	again, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen after delete: %v", err)
	}
	if _, ok, _ := again.Get(ctx, SessionKey); ok {
		t.Fatalf("expected key removed from disk")
	}
}

func TestFileStoreMalformedSnapshotDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tecstore.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if _, ok, _ := f.Get(context.Background(), CartKey); ok {
		t.Fatalf("expected empty store for malformed snapshot")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	st, closeStore, err := Open(ctx, Options{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	closeStore()
	if _, ok := st.(*Memory); !ok {
		t.Fatalf("expected memory backend, got %T", st)
	}

	if _, _, err := Open(ctx, Options{Backend: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
