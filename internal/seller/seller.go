// Package seller holds the static identity of the issuing organisation.
package seller

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
)

// Config is the seller identity printed on every quote document.
type Config struct {
	CompanyName    string `json:"companyName"`
	NIF            string `json:"nif"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IBAN           string `json:"iban"`
	LogoURL        string `json:"logoUrl"`
	GoogleSheetURL string `json:"googleSheetUrl,omitempty"`
}

// Default returns the built-in ASPACE Salamanca identity.
func Default() Config {
	return Config{
		CompanyName:    "FUNDACIÓN ASPACE SALAMANCA",
		NIF:            "G-06986053",
		Address:        "C/ JUAN DEL ENCINA, 4-6, 37004 SALAMANCA",
		Email:          "elenmp@hotmail.es",
		Phone:          "+34 923 18 18 18",
		IBAN:           "ES88 2103 2319 1700 3010 1695",
		LogoURL:        "https://wsrv.nl/?url=aspacesalamanca.org/wp-content/uploads/2025/09/logo_aspace-1-scaled.jpg",
		GoogleSheetURL: "https://script.google.com/macros/s/AKfycbwMgOPI1mNxuCUIxrkebZUwrHDrc0xeACeeOGQ1Nt-Y7XTyRcdcBuDA4eBI6TXFRWeN/exec",
	}
}

// Validate rejects configurations that cannot head a formal quote.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CompanyName) == "" {
		return errors.New("seller: company name is required")
	}
	if strings.TrimSpace(c.NIF) == "" {
		return errors.New("seller: nif is required")
	}
	if strings.TrimSpace(c.IBAN) == "" {
		return errors.New("seller: iban is required")
	}
	return nil
}

// Load reads the persisted seller override from the config store, falling
// back to the built-in defaults when the key is absent, corrupt, or invalid.
func Load(ctx context.Context, store kv.Store, logger zerolog.Logger) Config {
	var cfg Config
	err := store.GetJSON(ctx, kv.KeySellerConfig, &cfg)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return Default()
	case err != nil:
		logger.Warn().Err(err).Msg("seller config override unreadable, using defaults")
		return Default()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("seller config override invalid, using defaults")
		return Default()
	}
	return cfg
}
