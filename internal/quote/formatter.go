package quote

import (
	"fmt"
	"strings"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/pricing"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

// Formatter renders issued quotes into the localized document view consumed
// by the API response and the PDF exporter, and into the flattened summary
// transmitted to the order spreadsheet.
type Formatter struct {
	labels i18n.Table
	rates  map[shipping.Method]shipping.Rate
}

// NewFormatter validates the label table and rate coverage up front.
func NewFormatter(labels i18n.Table, rates map[shipping.Method]shipping.Rate) (*Formatter, error) {
	if err := labels.Validate(); err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	if err := shipping.ValidateRates(rates); err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	return &Formatter{labels: labels, rates: rates}, nil
}

// SellerBlock is the document header identifying the issuer.
type SellerBlock struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	NIF     string `json:"nif"`
	LogoURL string `json:"logoUrl"`
}

// ClientBlock identifies the buyer on the document.
type ClientBlock struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
}

// Line is one row of the document's item table. Monetary cells are
// tax-exclusive amounts, each back-calculated independently from its gross
// value.
type Line struct {
	Concept   string `json:"concept"`
	Detail    string `json:"detail"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// Totals is the document's summary block.
type Totals struct {
	BaseLabel  string `json:"baseLabel"`
	Base       string `json:"base"`
	TaxLabel   string `json:"taxLabel"`
	Tax        string `json:"tax"`
	TotalLabel string `json:"totalLabel"`
	Total      string `json:"total"`
}

// Payment carries the transfer instructions printed on the document.
type Payment struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Reference   string `json:"reference"`
	IBANLabel   string `json:"ibanLabel"`
	IBAN        string `json:"iban"`
	HolderLabel string `json:"holderLabel"`
	Holder      string `json:"holder"`
}

// ColumnHeaders labels the item table columns.
type ColumnHeaders struct {
	Concept  string `json:"concept"`
	Qty      string `json:"qty"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// DocumentView is the full localized rendering of a quote, the shape the
// on-screen document and the PDF exporter both consume.
type DocumentView struct {
	Title     string        `json:"title"`
	Number    string        `json:"number"`
	DateLabel string        `json:"dateLabel"`
	Date      string        `json:"date"`
	Seller    SellerBlock   `json:"seller"`
	ClientLbl string        `json:"clientLabel"`
	Client    ClientBlock   `json:"client"`
	DeliveryL string        `json:"deliveryLabel"`
	Delivery  string        `json:"delivery"`
	Columns   ColumnHeaders `json:"columns"`
	Lines     []Line        `json:"lines"`
	Totals    Totals        `json:"totals"`
	Payment   Payment       `json:"payment"`
	Notes     []string      `json:"notes"`
	Footer    string        `json:"footer"`
	Language  i18n.Language `json:"language"`
}

// Document renders the localized document view for an issued quote. The
// shipping line appears only for paid delivery; free pickup suppresses the
// row entirely rather than printing a zero amount.
func (f *Formatter) Document(q Quote) DocumentView {
	lang := q.Language
	l := func(key string) string { return f.labels.Get(key, lang) }
	rate := f.rates[q.Buyer.ShippingMethod]

	lines := []Line{{
		Concept:   q.Product.Name.Get(lang),
		Detail:    "ID: " + q.Product.ID,
		Qty:       q.Buyer.Units,
		UnitPrice: euros(pricing.ExTax(q.AppliedUnitPrice)),
		Subtotal:  euros(pricing.ExTax(q.ProductTotal)),
	}}
	if q.ShippingTotal > 0 {
		shipped := euros(pricing.ExTax(q.ShippingTotal))
		lines = append(lines, Line{
			Concept:   l("shipping"),
			Detail:    rate.Label.Get(lang),
			Qty:       1,
			UnitPrice: shipped,
			Subtotal:  shipped,
		})
	}

	return DocumentView{
		Title:     l("quote"),
		Number:    q.ID,
		DateLabel: l("date"),
		Date:      q.Date,
		Seller: SellerBlock{
			Name:    q.Seller.CompanyName,
			Address: q.Seller.Address,
			NIF:     q.Seller.NIF,
			LogoURL: q.Seller.LogoURL,
		},
		ClientLbl: l("client"),
		Client: ClientBlock{
			Name:    q.Buyer.Name,
			TaxID:   q.Buyer.TaxID,
			Address: q.Buyer.Address,
		},
		DeliveryL: l("delivery"),
		Delivery:  rate.Label.Get(lang),
		Columns: ColumnHeaders{
			Concept:  l("concept"),
			Qty:      l("qty"),
			Price:    l("price"),
			Subtotal: l("subtotal"),
		},
		Lines: lines,
		Totals: Totals{
			BaseLabel:  l("base"),
			Base:       euros(q.Total - q.TaxAmount),
			TaxLabel:   l("tax"),
			Tax:        euros(q.TaxAmount),
			TotalLabel: l("total"),
			Total:      euros(q.Total),
		},
		Payment: Payment{
			Title:       l("payment.title"),
			Instruction: l("payment.instruction"),
			Reference:   q.ID,
			IBANLabel:   l("payment.iban"),
			IBAN:        q.Seller.IBAN,
			HolderLabel: l("payment.holder"),
			Holder:      q.Seller.CompanyName,
		},
		Notes:    []string{l("note.proforma"), l("note.receipt"), l("note.invoice")},
		Footer:   l("footer"),
		Language: lang,
	}
}

// Summary is the flattened payload transmitted to the order spreadsheet.
// Field names, the duplicated unit count, and the three-way coupon tag are
// an external wire contract with the receiving Apps Script and must not be
// renamed.
type Summary struct {
	Fecha      string            `json:"fecha"`
	ID         string            `json:"id"`
	Cliente    string            `json:"cliente"`
	Email      string            `json:"email"`
	Unidades   int               `json:"unidades"`
	Cantidad   int               `json:"cantidad"`
	Total      string            `json:"total"`
	Envio      string            `json:"envio"`
	Cupon      pricing.CouponTag `json:"cupon"`
	Transporte string            `json:"transporte"`
	NIF        string            `json:"nif"`
	Producto   string            `json:"producto"`
	Idioma     i18n.Language     `json:"idioma"`
}

// Summarize flattens an issued quote for the order notifier. The receiving
// sheet maps "envio" to its shipping address column, hence the address in a
// field named after shipping.
func (f *Formatter) Summarize(q Quote) Summary {
	rate := f.rates[q.Buyer.ShippingMethod]
	return Summary{
		Fecha:      q.Date,
		ID:         q.ID,
		Cliente:    q.Buyer.Name,
		Email:      strings.ToLower(q.Buyer.Email),
		Unidades:   q.Buyer.Units,
		Cantidad:   q.Buyer.Units,
		Total:      fmt.Sprintf("%.2f", q.Total),
		Envio:      q.Buyer.Address,
		Cupon:      q.CouponTag,
		Transporte: rate.Label.Get(q.Language),
		NIF:        q.Buyer.TaxID,
		Producto:   q.Product.Name.Get(q.Language),
		Idioma:     q.Language,
	}
}

func euros(amount float64) string {
	return fmt.Sprintf("%.2f€", amount)
}
