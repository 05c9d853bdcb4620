package catalog

import (
	"errors"
	"fmt"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
)

// Spec is a single localized label/value pair on a product sheet.
type Spec struct {
	Label i18n.Text `json:"label"`
	Value i18n.Text `json:"value"`
}

// Product describes a catalog entry. Prices are tax-inclusive euros.
// Products are immutable after load and shared by reference.
type Product struct {
	ID          string                     `json:"id"`
	Name        i18n.Text                  `json:"name"`
	Tagline     i18n.Text                  `json:"tagline"`
	Description i18n.Text                  `json:"description"`
	BasePrice   float64                    `json:"basePrice"`
	Images      []string                   `json:"images"`
	Unit        i18n.Text                  `json:"unit"`
	Specs       []Spec                     `json:"specs"`
	Maintenance map[i18n.Language][]string `json:"maintenance"`
}

// Validate checks structural invariants: a stable id, a positive
// tax-inclusive price, at least one image, and complete translations for
// every localized field.
func (p Product) Validate() error {
	if p.ID == "" {
		return errors.New("product id is required")
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("product %s: base price must be positive", p.ID)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product %s: at least one image is required", p.ID)
	}
	for field, text := range map[string]i18n.Text{
		"name":        p.Name,
		"tagline":     p.Tagline,
		"description": p.Description,
		"unit":        p.Unit,
	} {
		if !text.Complete() {
			return fmt.Errorf("product %s: incomplete %s translations", p.ID, field)
		}
	}
	for i, spec := range p.Specs {
		if !spec.Label.Complete() || !spec.Value.Complete() {
			return fmt.Errorf("product %s: incomplete translations in spec %d", p.ID, i)
		}
	}
	for _, lang := range i18n.All() {
		if len(p.Maintenance[lang]) == 0 {
			return fmt.Errorf("product %s: missing %s maintenance instructions", p.ID, lang)
		}
	}
	return nil
}

// Clone returns a deep copy of the product. Quotes snapshot products at
// submission time so that later catalog overrides cannot reach back into an
// issued document.
func (p Product) Clone() Product {
	out := p
	out.Name = cloneText(p.Name)
	out.Tagline = cloneText(p.Tagline)
	out.Description = cloneText(p.Description)
	out.Unit = cloneText(p.Unit)
	out.Images = append([]string(nil), p.Images...)
	out.Specs = make([]Spec, len(p.Specs))
	for i, spec := range p.Specs {
		out.Specs[i] = Spec{Label: cloneText(spec.Label), Value: cloneText(spec.Value)}
	}
	out.Maintenance = make(map[i18n.Language][]string, len(p.Maintenance))
	for lang, items := range p.Maintenance {
		out.Maintenance[lang] = append([]string(nil), items...)
	}
	return out
}

func cloneText(t i18n.Text) i18n.Text {
	out := make(i18n.Text, len(t))
	for lang, v := range t {
		out[lang] = v
	}
	return out
}
