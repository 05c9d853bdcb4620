package catalog

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
)

func TestDefaultProductsValid(t *testing.T) {
	svc, err := NewService(DefaultProducts())
	require.NoError(t, err)

	p, ok := svc.Get("AJ-001")
	require.True(t, ok)
	require.Equal(t, 45.00, p.BasePrice)
	require.NotEmpty(t, p.Images)
}

func TestNewServiceRejectsInvalidProducts(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)

	broken := DefaultProducts()
	broken[0].BasePrice = 0
	_, err = NewService(broken)
	require.Error(t, err)

	dup := append(DefaultProducts(), DefaultProducts()...)
	_, err = NewService(dup)
	require.Error(t, err)
}

func TestLocalize(t *testing.T) {
	p := DefaultProducts()[0]

	es := Localize(p, i18n.ES)
	require.Equal(t, p.Name.Get(i18n.ES), es.Name)
	require.Equal(t, p.Maintenance[i18n.ES], es.Maintenance)

	pt := Localize(p, i18n.PT)
	require.Equal(t, p.Name.Get(i18n.PT), pt.Name)
	require.Len(t, pt.Specs, len(p.Specs))
}

func TestCloneDetachesProduct(t *testing.T) {
	p := DefaultProducts()[0]
	c := p.Clone()

	c.Images[0] = "tampered"
	c.Name[i18n.ES] = "tampered"
	c.Maintenance[i18n.ES][0] = "tampered"

	require.NotEqual(t, "tampered", p.Images[0])
	require.NotEqual(t, "tampered", p.Name[i18n.ES])
	require.NotEqual(t, "tampered", p.Maintenance[i18n.ES][0])
}

func newCatalogStore(t *testing.T) (kv.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return kv.Store{Client: client}, mr
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	store, _ := newCatalogStore(t)
	svc := Load(context.Background(), store, zerolog.Nop())
	_, ok := svc.Get("AJ-001")
	require.True(t, ok)
}

func TestLoadUsesValidOverride(t *testing.T) {
	store, _ := newCatalogStore(t)
	ctx := context.Background()

	override := DefaultProducts()
	override[0].BasePrice = 50.00
	require.NoError(t, store.PutJSON(ctx, kv.KeyProductConfig, override))

	svc := Load(ctx, store, zerolog.Nop())
	p, ok := svc.Get("AJ-001")
	require.True(t, ok)
	require.Equal(t, 50.00, p.BasePrice)
}

func TestLoadIgnoresCorruptOverride(t *testing.T) {
	store, mr := newCatalogStore(t)
	require.NoError(t, mr.Set(kv.KeyProductConfig, "{broken"))

	svc := Load(context.Background(), store, zerolog.Nop())
	p, ok := svc.Get("AJ-001")
	require.True(t, ok)
	require.Equal(t, 45.00, p.BasePrice)
}
