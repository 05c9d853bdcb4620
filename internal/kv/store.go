// Package kv is the key-value persistence collaborator. It carries the
// storefront's three fixed keys: the seller identity override, the product
// catalog override, and the quote sequence counter.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Fixed storage keys. They match the identifiers used by earlier deployments
// of the storefront, so existing persisted state keeps working.
const (
	KeySellerConfig  = "aspace_seller_config"
	KeyProductConfig = "aspace_product_config"
	KeyQuoteCounter  = "aspace_quote_counter"
)

// ErrNotFound indicates the key has no persisted value.
var ErrNotFound = errors.New("kv: key not found")

// Store persists JSON documents under fixed string keys.
type Store struct {
	Client *redis.Client
}

// GetJSON loads and decodes the value stored under key into dst. A missing
// key returns ErrNotFound; a corrupt payload returns a decode error. Callers
// treat both as a signal to fall back to built-in defaults.
func (s Store) GetJSON(ctx context.Context, key string, dst any) error {
	if s.Client == nil {
		return ErrNotFound
	}
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("kv get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("kv decode %s: %w", key, err)
	}
	return nil
}

// PutJSON encodes value and stores it under key with no expiry.
func (s Store) PutJSON(ctx context.Context, key string, value any) error {
	if s.Client == nil {
		return errors.New("kv: client not configured")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	if err := s.Client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}
