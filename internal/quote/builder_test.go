package quote

import (
	"context"
	"testing"
	"time"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/catalog"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/counter"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/pricing"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/seller"
)

func TestFormatID(t *testing.T) {
	cases := []struct {
		n    int64
		year int
		want string
	}{
		{1, 2026, "0001-2026"},
		{7, 2026, "0007-2026"},
		{123, 2027, "0123-2027"},
		{9999, 2026, "9999-2026"},
		{10000, 2026, "10000-2026"},
	}
	for _, tc := range cases {
		if got := FormatID(tc.n, tc.year); got != tc.want {
			t.Fatalf("FormatID(%d, %d) = %q, want %q", tc.n, tc.year, got, tc.want)
		}
	}
}

func TestFormatDateByLanguage(t *testing.T) {
	day := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(day, i18n.ES); got != "5/3/2026" {
		t.Fatalf("spanish date: got %q", got)
	}
	if got := FormatDate(day, i18n.PT); got != "05/03/2026" {
		t.Fatalf("portuguese date: got %q", got)
	}
}

func TestBuildStampsSequenceAndSnapshot(t *testing.T) {
	product := catalog.DefaultProducts()[0]
	fixed := time.Date(2026, time.January, 9, 12, 0, 0, 0, time.UTC)
	b := Builder{Seq: counter.NewMemory(7), Now: func() time.Time { return fixed }}

	res := pricing.Compute(pricing.Input{Units: 2, BasePrice: product.BasePrice})
	q, err := b.Build(context.Background(), BuildInput{
		Buyer:    Buyer{Name: "María García", Units: 2},
		Product:  product,
		Seller:   seller.Default(),
		Pricing:  res,
		Language: i18n.ES,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q.ID != "0007-2026" {
		t.Fatalf("unexpected id %q", q.ID)
	}
	if q.Date != "9/1/2026" {
		t.Fatalf("unexpected date %q", q.Date)
	}
	if q.Total != res.GrandTotal {
		t.Fatalf("total not carried over: %v", q.Total)
	}

	// The snapshot must be detached from the source product.
	q.Product.Images[0] = "tampered"
	if product.Images[0] == "tampered" {
		t.Fatal("quote shares image slice with source product")
	}

	// Issuance advances the sequence by exactly one.
	q2, err := b.Build(context.Background(), BuildInput{
		Buyer:    Buyer{Name: "João Santos", Units: 1},
		Product:  product,
		Seller:   seller.Default(),
		Pricing:  pricing.Compute(pricing.Input{Units: 1, BasePrice: product.BasePrice}),
		Language: i18n.PT,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q2.ID != "0008-2026" {
		t.Fatalf("sequence did not advance: %q", q2.ID)
	}
	if q2.Date != "09/01/2026" {
		t.Fatalf("portuguese date not padded: %q", q2.Date)
	}
}

func TestBuildNormalisedUnitsWinOverFormInput(t *testing.T) {
	product := catalog.DefaultProducts()[0]
	b := Builder{Seq: counter.NewMemory(1)}
	res := pricing.Compute(pricing.Input{Units: 0, BasePrice: product.BasePrice})
	q, err := b.Build(context.Background(), BuildInput{
		Buyer:    Buyer{Name: "x", Units: 0},
		Product:  product,
		Seller:   seller.Default(),
		Pricing:  res,
		Language: i18n.ES,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q.Buyer.Units != 1 {
		t.Fatalf("expected clamped unit count, got %d", q.Buyer.Units)
	}
}
