package quote

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/catalog"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/obs"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/pricing"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/seller"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

// ErrProductNotFound is returned when a request names an unknown product.
var ErrProductNotFound = errors.New("quote: product not found")

// Notifier forwards an order summary to the configured spreadsheet
// endpoint. Implementations are best-effort; errors are logged, never acted
// upon.
type Notifier interface {
	Send(ctx context.Context, s Summary) error
}

// Service orchestrates pricing, quote issuance, storage, and the
// fire-and-forget order notification.
type Service struct {
	Catalog       *catalog.Service
	Seller        seller.Config
	Rates         map[shipping.Method]shipping.Rate
	Builder       Builder
	Formatter     *Formatter
	Quotes        *Store
	Notify        Notifier
	NotifyTimeout time.Duration
	Logger        zerolog.Logger
}

// PriceRequest is the live-feedback input: everything pricing needs, no
// buyer identity.
type PriceRequest struct {
	ProductID      string
	Units          int
	ShippingMethod shipping.Method
	Coupon         string
}

// Price computes the current breakdown for a draft order. Pure and
// side-effect free, so callers may invoke it on every keystroke.
func (s *Service) Price(req PriceRequest) (pricing.Result, error) {
	product, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		return pricing.Result{}, ErrProductNotFound
	}
	return pricing.Compute(pricing.Input{
		Units:     req.Units,
		Coupon:    req.Coupon,
		Method:    req.ShippingMethod,
		BasePrice: product.BasePrice,
		Rates:     s.Rates,
	}), nil
}

// CreateRequest carries a submitted order form.
type CreateRequest struct {
	ProductID string
	Buyer     Buyer
	Language  string
}

// Create issues a new quote: price, freeze, store, then notify. The
// sequence advance and the stored quote are never rolled back when the
// notification fails; issuance must always succeed once the form fields are
// present.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Quote, error) {
	product, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		return Quote{}, ErrProductNotFound
	}
	result := pricing.Compute(pricing.Input{
		Units:     req.Buyer.Units,
		Coupon:    req.Buyer.Coupon,
		Method:    req.Buyer.ShippingMethod,
		BasePrice: product.BasePrice,
		Rates:     s.Rates,
	})
	q, err := s.Builder.Build(ctx, BuildInput{
		Buyer:    req.Buyer,
		Product:  product,
		Seller:   s.Seller,
		Pricing:  result,
		Language: i18n.Parse(req.Language),
	})
	if err != nil {
		return Quote{}, err
	}
	s.Quotes.Put(q)
	if obs.QuotesIssuedTotal != nil {
		obs.QuotesIssuedTotal.Inc()
	}
	s.Logger.Info().
		Str("quote_id", q.ID).
		Str("product_id", q.Product.ID).
		Int("units", q.Buyer.Units).
		Str("coupon_tag", string(q.CouponTag)).
		Float64("total", q.Total).
		Msg("quote issued")

	s.dispatchNotification(q)
	return q, nil
}

// dispatchNotification sends the order summary in the background. Nothing
// the buyer can observe waits on the outcome.
func (s *Service) dispatchNotification(q Quote) {
	if s.Notify == nil {
		return
	}
	summary := s.Formatter.Summarize(q)
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.Notify.Send(ctx, summary); err != nil {
			s.Logger.Warn().Err(err).Str("quote_id", q.ID).Msg("order notification failed")
		}
	}()
}
