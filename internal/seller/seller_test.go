package seller

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
)

func newSellerStore(t *testing.T) (kv.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return kv.Store{Client: client}, mr
}

func TestDefaultValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsIncompleteIdentity(t *testing.T) {
	cfg := Default()
	cfg.IBAN = " "
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CompanyName = ""
	require.Error(t, cfg.Validate())
}

func TestLoadFallsBackToDefault(t *testing.T) {
	store, _ := newSellerStore(t)
	got := Load(context.Background(), store, zerolog.Nop())
	require.Equal(t, Default(), got)
}

func TestLoadUsesValidOverride(t *testing.T) {
	store, _ := newSellerStore(t)
	ctx := context.Background()

	override := Default()
	override.Phone = "+34 900 000 000"
	require.NoError(t, store.PutJSON(ctx, kv.KeySellerConfig, override))

	got := Load(ctx, store, zerolog.Nop())
	require.Equal(t, "+34 900 000 000", got.Phone)
}

func TestLoadIgnoresInvalidOverride(t *testing.T) {
	store, mr := newSellerStore(t)
	ctx := context.Background()

	invalid := Default()
	invalid.IBAN = ""
	require.NoError(t, store.PutJSON(ctx, kv.KeySellerConfig, invalid))
	require.Equal(t, Default(), Load(ctx, store, zerolog.Nop()))

	require.NoError(t, mr.Set(kv.KeySellerConfig, "{broken"))
	require.Equal(t, Default(), Load(ctx, store, zerolog.Nop()))
}
