package store

import (
	"context"
	"encoding/json"
)

// Keys under which the storefront aggregates persist. They match the
// localStorage keys of the original widget, so a file store can be primed
// from an exported browser snapshot.
const (
	CartKey     = "tecstore_cart"
	UsersKey    = "tecstore_users"
	ProfilesKey = "tecstore_profiles"
	SessionKey  = "tecstore_logged"
)

// Store is a key-value persistence backend. Get reports false when the key
// is absent. All writes are immediately visible to subsequent reads.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON decodes the value stored under key into dest. A missing key or
// a payload that fails to parse leaves dest untouched: collection and
// mapping keys degrade to their empty defaults instead of failing.
func ReadJSON[T any](ctx context.Context, s Store, key string, dest *T) error {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var parsed T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	*dest = parsed
	return nil
}

// WriteJSON serializes value and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(b))
}
