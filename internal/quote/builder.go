// Package quote freezes priced orders into numbered, dated documents and
// renders them for display, PDF export, and the order spreadsheet.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/catalog"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/counter"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/pricing"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/seller"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

// Buyer is the form data captured from the requesting customer.
type Buyer struct {
	Name           string          `json:"name"`
	TaxID          string          `json:"taxId"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	Units          int             `json:"units"`
	ShippingMethod shipping.Method `json:"shippingMethod"`
	Coupon         string          `json:"coupon,omitempty"`
}

// Quote is an immutable snapshot of a priced order. Buyer, seller, and
// product are copied at build time so later edits or config overrides can
// never corrupt an issued document.
type Quote struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	IssuedAt         time.Time         `json:"issuedAt"`
	Product          catalog.Product   `json:"product"`
	Buyer            Buyer             `json:"buyer"`
	Seller           seller.Config     `json:"seller"`
	ProductTotal     float64           `json:"productTotal"`
	ShippingTotal    float64           `json:"shippingTotal"`
	TaxAmount        float64           `json:"taxAmount"`
	Total            float64           `json:"total"`
	AppliedUnitPrice float64           `json:"appliedUnitPrice"`
	CouponTag        pricing.CouponTag `json:"couponTag"`
	Language         i18n.Language     `json:"language"`
}

// BuildInput groups the context frozen into a quote.
type BuildInput struct {
	Buyer    Buyer
	Product  catalog.Product
	Seller   seller.Config
	Pricing  pricing.Result
	Language i18n.Language
}

// Builder stamps quotes with sequence numbers and issue dates. The sequence
// is an injected dependency so quote assembly stays testable in isolation.
type Builder struct {
	Seq counter.Sequence
	Now func() time.Time
}

// Build freezes the input into a new Quote and advances the sequence by
// exactly one. The advance happens here, as part of issuance, independent
// of whatever the caller does with the document afterwards.
func (b Builder) Build(ctx context.Context, in BuildInput) (Quote, error) {
	n, err := b.Seq.Next(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("quote: advance sequence: %w", err)
	}
	now := time.Now()
	if b.Now != nil {
		now = b.Now()
	}
	buyer := in.Buyer
	buyer.Units = in.Pricing.Units
	return Quote{
		ID:               FormatID(n, now.Year()),
		Date:             FormatDate(now, in.Language),
		IssuedAt:         now,
		Product:          in.Product.Clone(),
		Buyer:            buyer,
		Seller:           in.Seller,
		ProductTotal:     in.Pricing.ProductTotal,
		ShippingTotal:    in.Pricing.ShippingTotal,
		TaxAmount:        in.Pricing.TaxAmount,
		Total:            in.Pricing.GrandTotal,
		AppliedUnitPrice: in.Pricing.AppliedUnitPrice,
		CouponTag:        in.Pricing.Tag,
		Language:         in.Language,
	}, nil
}

// FormatID renders a sequence number as the document reference, a
// zero-padded four digit counter joined to the issue year. The counter is
// never reset per year; past 9999 the padding simply stops.
func FormatID(n int64, year int) string {
	return fmt.Sprintf("%04d-%d", n, year)
}

// FormatDate renders the issue date in the short convention of the active
// language: day-first, unpadded for Spanish and zero-padded for Portuguese.
func FormatDate(t time.Time, lang i18n.Language) string {
	if lang == i18n.PT {
		return t.Format("02/01/2006")
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
