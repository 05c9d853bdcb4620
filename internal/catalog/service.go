package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
)

// Service serves the immutable product catalog loaded at startup.
type Service struct {
	products []Product
	byID     map[string]Product
}

// NewService validates and indexes the given products.
func NewService(products []Product) (*Service, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog: at least one product is required")
	}
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %s", p.ID)
		}
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID}, nil
}

// Load builds the catalog from the persisted override when one exists and
// decodes cleanly, and from the built-in defaults otherwise. A corrupt or
// invalid override is logged and ignored; startup never fails on persisted
// state.
func Load(ctx context.Context, store kv.Store, logger zerolog.Logger) *Service {
	var override []Product
	err := store.GetJSON(ctx, kv.KeyProductConfig, &override)
	if err == nil {
		if svc, verr := NewService(override); verr == nil {
			return svc
		} else {
			logger.Warn().Err(verr).Msg("product override invalid, using defaults")
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		logger.Warn().Err(err).Msg("product override unreadable, using defaults")
	}
	svc, err := NewService(DefaultProducts())
	if err != nil {
		// Built-in defaults are validated by tests; reaching this is a bug.
		panic(err)
	}
	return svc
}

// List returns every catalog product.
func (s *Service) List() []Product {
	return s.products
}

// Get returns the product with the given id.
func (s *Service) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// SpecView is a localized spec row.
type SpecView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// View is the localized product payload served by the API.
type View struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	BasePrice   float64    `json:"basePrice"`
	Images      []string   `json:"images"`
	Unit        string     `json:"unit"`
	Specs       []SpecView `json:"specs"`
	Maintenance []string   `json:"maintenance"`
}

// Localize projects a product into the requested language.
func Localize(p Product, lang i18n.Language) View {
	specs := make([]SpecView, len(p.Specs))
	for i, spec := range p.Specs {
		specs[i] = SpecView{Label: spec.Label.Get(lang), Value: spec.Value.Get(lang)}
	}
	return View{
		ID:          p.ID,
		Name:        p.Name.Get(lang),
		Tagline:     p.Tagline.Get(lang),
		Description: p.Description.Get(lang),
		BasePrice:   p.BasePrice,
		Images:      p.Images,
		Unit:        p.Unit.Get(lang),
		Specs:       specs,
		Maintenance: p.Maintenance[lang],
	}
}
