package seed

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
	"tecstore/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestApplySeedsOnce(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	if err := Apply(ctx, st, testLogger()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	users := map[string]domain.User{}
	if err := store.ReadJSON(ctx, st, store.UsersKey, &users); err != nil {
		t.Fatalf("read users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one demo user, got %d", len(users))
	}

	cart := []domain.CartItem{}
	if err := store.ReadJSON(ctx, st, store.CartKey, &cart); err != nil {
		t.Fatalf("read cart: %v", err)
	}
	if len(cart) == 0 {
		t.Fatalf("expected demo cart")
	}

	// re-running must not duplicate or overwrite
	if err := Apply(ctx, st, testLogger()); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	again := map[string]domain.User{}
	if err := store.ReadJSON(ctx, st, store.UsersKey, &again); err != nil {
		t.Fatalf("read users: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected seed to be idempotent, got %d users", len(again))
	}
}

func TestApplySkipsExistingData(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	existing := map[string]domain.User{"user@x.com": {Password: "pw"}}
	if err := store.WriteJSON(ctx, st, store.UsersKey, existing); err != nil {
		t.Fatalf("write users: %v", err)
	}

	if err := Apply(ctx, st, testLogger()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	users := map[string]domain.User{}
	if err := store.ReadJSON(ctx, st, store.UsersKey, &users); err != nil {
		t.Fatalf("read users: %v", err)
	}
	if _, ok := users["demo@tecstore.pe"]; ok {
		t.Fatalf("seed must not touch a populated user mapping")
	}
}
