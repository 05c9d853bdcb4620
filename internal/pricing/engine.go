// Package pricing derives every monetary figure shown to the buyer. The
// engine is a pure computation over its inputs, safe to invoke on every
// keystroke for live feedback.
package pricing

import (
	"strings"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

const (
	// CouponCode is the only coupon the storefront honours.
	CouponCode = "ASPACE2026"
	// VolumeThreshold is the unit count at which volume pricing kicks in.
	VolumeThreshold = 3
	// UnitDiscount is the flat per-unit reduction granted by either the
	// coupon or volume pricing. The two triggers are mutually exclusive and
	// never stack.
	UnitDiscount = 2.00
	// TaxDivisor back-calculates the tax-exclusive portion of a
	// tax-inclusive amount at the fixed 21% VAT rate.
	TaxDivisor = 1.21
)

// CouponTag is the three-way discount status transmitted to the order
// spreadsheet. The values are a wire contract and must not be renamed.
type CouponTag string

const (
	// TagCoupon means the coupon matched and volume pricing was inactive.
	TagCoupon CouponTag = "ASPACE2026"
	// TagVolume means volume pricing applied, suppressing any coupon.
	TagVolume CouponTag = "VOLUMEN"
	// TagNone means no discount applied.
	TagNone CouponTag = "NINGUNO"
)

// Input carries everything the engine needs. BasePrice and the rates table
// are tax-inclusive euros.
type Input struct {
	Units     int
	Coupon    string
	Method    shipping.Method
	BasePrice float64
	Rates     map[shipping.Method]shipping.Rate
}

// Result aggregates the derived figures. All amounts are tax-inclusive
// euros except TaxableBase and TaxAmount, which split GrandTotal.
type Result struct {
	Units            int       `json:"units"`
	CouponMatched    bool      `json:"couponMatched"`
	VolumeActive     bool      `json:"volumeActive"`
	CouponValid      bool      `json:"couponValid"`
	Tag              CouponTag `json:"tag"`
	AppliedUnitPrice float64   `json:"appliedUnitPrice"`
	ProductTotal     float64   `json:"productTotal"`
	ShippingTotal    float64   `json:"shippingTotal"`
	GrandTotal       float64   `json:"grandTotal"`
	TaxableBase      float64   `json:"taxableBase"`
	TaxAmount        float64   `json:"taxAmount"`
}

// NormalizeUnits clamps the unit count to the minimum order of one.
// Malformed form input is defaulted, never rejected.
func NormalizeUnits(units int) int {
	if units < 1 {
		return 1
	}
	return units
}

// NormalizeCoupon trims and uppercases a raw coupon entry.
func NormalizeCoupon(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ExTax returns the tax-exclusive portion of a tax-inclusive amount. Line
// items are each divided independently rather than pro-rated from the
// combined tax, so summed line bases may differ from the overall taxable
// base by rounding. Downstream consumers already expect this behaviour.
func ExTax(gross float64) float64 {
	return gross / TaxDivisor
}

// Compute derives the full pricing breakdown. It has no error conditions:
// units clamp to one, an unknown coupon simply does not match, and a zero
// rates table yields free shipping.
func Compute(in Input) Result {
	units := NormalizeUnits(in.Units)
	couponMatched := NormalizeCoupon(in.Coupon) == CouponCode
	volumeActive := units >= VolumeThreshold
	// Volume pricing takes precedence; a matching coupon becomes
	// superfluous rather than stacking.
	couponValid := couponMatched && !volumeActive

	applied := in.BasePrice
	if couponValid || volumeActive {
		applied = in.BasePrice - UnitDiscount
	}

	productTotal := applied * float64(units)
	shippingTotal := in.Rates[in.Method].Price
	grandTotal := productTotal + shippingTotal
	taxableBase := ExTax(grandTotal)

	tag := TagNone
	switch {
	case couponValid:
		tag = TagCoupon
	case volumeActive:
		tag = TagVolume
	}

	return Result{
		Units:            units,
		CouponMatched:    couponMatched,
		VolumeActive:     volumeActive,
		CouponValid:      couponValid,
		Tag:              tag,
		AppliedUnitPrice: applied,
		ProductTotal:     productTotal,
		ShippingTotal:    shippingTotal,
		GrandTotal:       grandTotal,
		TaxableBase:      taxableBase,
		TaxAmount:        grandTotal - taxableBase,
	}
}
