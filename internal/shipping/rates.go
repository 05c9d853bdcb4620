// Package shipping holds the flat-rate delivery table for the storefront.
package shipping

import (
	"fmt"
	"strings"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
)

// Method enumerates the supported delivery options.
type Method string

const (
	// MethodPickup is free collection at the ASPACE Salamanca site.
	MethodPickup Method = "pickup"
	// MethodSpain is courier delivery to peninsular Spain.
	MethodSpain Method = "spain"
	// MethodPortugal is courier delivery to peninsular Portugal.
	MethodPortugal Method = "portugal"
)

// Methods returns the delivery methods in display order.
func Methods() []Method {
	return []Method{MethodPickup, MethodSpain, MethodPortugal}
}

// Valid reports whether m is a known delivery method.
func (m Method) Valid() bool {
	switch m {
	case MethodPickup, MethodSpain, MethodPortugal:
		return true
	}
	return false
}

// Parse normalises a raw method string. Unknown values resolve to pickup,
// the storefront's default selection.
func Parse(raw string) Method {
	m := Method(strings.ToLower(strings.TrimSpace(raw)))
	if m.Valid() {
		return m
	}
	return MethodPickup
}

// Rate is one entry of the delivery table. Price is tax-inclusive euros and
// flat per order, never scaled by units.
type Rate struct {
	Label i18n.Text `json:"label"`
	Price float64   `json:"price"`
}

// Rates returns the delivery table. The invariant that every method has
// exactly one entry with complete labels is enforced by ValidateRates at
// startup.
func Rates() map[Method]Rate {
	return map[Method]Rate{
		MethodPickup: {
			Label: i18n.Text{i18n.ES: "RECOGIDA EN SEDE (GRATIS)", i18n.PT: "RECOLHA NA SEDE (GRÁTIS)"},
			Price: 0,
		},
		MethodSpain: {
			Label: i18n.Text{i18n.ES: "ESPAÑA PENINSULAR", i18n.PT: "ESPANHA PENINSULAR"},
			Price: 7.30,
		},
		MethodPortugal: {
			Label: i18n.Text{i18n.ES: "PORTUGAL PENINSULAR", i18n.PT: "PORTUGAL PENINSULAR"},
			Price: 8.80,
		},
	}
}

// ValidateRates checks that the table covers every method with complete
// labels and non-negative prices.
func ValidateRates(rates map[Method]Rate) error {
	for _, m := range Methods() {
		rate, ok := rates[m]
		if !ok {
			return fmt.Errorf("shipping: no rate for method %s", m)
		}
		if !rate.Label.Complete() {
			return fmt.Errorf("shipping: incomplete labels for method %s", m)
		}
		if rate.Price < 0 {
			return fmt.Errorf("shipping: negative price for method %s", m)
		}
	}
	return nil
}

// OptionLabel renders the rate as shown in the delivery selector, appending
// the price with a comma decimal separator for paid methods. The downstream
// spreadsheet script expects this exact shape, so the separator is not
// locale-negotiable.
func OptionLabel(rate Rate, lang i18n.Language) string {
	if rate.Price <= 0 {
		return rate.Label.Get(lang)
	}
	price := strings.Replace(fmt.Sprintf("%.2f", rate.Price), ".", ",", 1)
	return fmt.Sprintf("%s (%s €)", rate.Label.Get(lang), price)
}

// Option is the localized delivery choice exposed by the API.
type Option struct {
	Method Method  `json:"method"`
	Label  string  `json:"label"`
	Price  float64 `json:"price"`
}

// Options lists the delivery choices for the requested language.
func Options(rates map[Method]Rate, lang i18n.Language) []Option {
	out := make([]Option, 0, len(Methods()))
	for _, m := range Methods() {
		rate := rates[m]
		out = append(out, Option{Method: m, Label: OptionLabel(rate, lang), Price: rate.Price})
	}
	return out
}
