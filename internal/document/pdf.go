// Package document renders quote document views to downloadable PDFs.
package document

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/quote"
)

const (
	pageWidth  = 210.0
	marginSide = 15.0
	contentW   = pageWidth - 2*marginSide
)

// Render lays out a quote document on a single A4 portrait page.
func Render(view quote.DocumentView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, 15, marginSide)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header: issuer identity left, document reference right.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW/2, 7, tr(view.Seller.Name), "", 0, "L", false, 0, "")
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(contentW/2, 7, tr(view.Title), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(contentW/2, 4, tr(view.Seller.Address), "", 0, "L", false, 0, "")
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 4, tr("Nº: "+view.Number), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(contentW/2, 4, tr("NIF: "+view.Seller.NIF), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 4, tr(view.DateLabel+": "+view.Date), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Client and delivery blocks.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(contentW/2, 5, tr(view.ClientLbl), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, tr(view.DeliveryL), "", 1, "R", false, 0, "")
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW/2, 4, tr(view.Client.Name), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 4, tr(view.Delivery), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(71, 85, 105)
	pdf.CellFormat(contentW, 4, tr("NIF/CIF: "+view.Client.TaxID), "", 1, "L", false, 0, "")
	pdf.MultiCell(contentW/2, 4, tr(view.Client.Address), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(5)

	// Item table.
	colConcept, colQty, colPrice, colSubtotal := contentW*0.46, contentW*0.12, contentW*0.21, contentW*0.21
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetDrawColor(15, 23, 42)
	pdf.SetLineWidth(0.5)
	pdf.CellFormat(colConcept, 6, tr(view.Columns.Concept), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 6, tr(view.Columns.Qty), "B", 0, "C", false, 0, "")
	pdf.CellFormat(colPrice, 6, tr(view.Columns.Price), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colSubtotal, 6, tr(view.Columns.Subtotal), "B", 1, "R", false, 0, "")
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(226, 232, 240)
	for _, line := range view.Lines {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colConcept, 6, tr(line.Concept), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colQty, 6, fmt.Sprintf("%d", line.Qty), "", 0, "C", false, 0, "")
		pdf.CellFormat(colPrice, 6, tr(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colSubtotal, 6, tr(line.Subtotal), "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(148, 163, 184)
		pdf.CellFormat(colConcept, 4, tr(line.Detail), "B", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	// Totals block, right aligned.
	totalsX := marginSide + contentW - 70
	writeTotal := func(label, value string, bold bool) {
		pdf.SetX(totalsX)
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(40, 5, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, tr(value), "", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(100, 116, 139)
	writeTotal(view.Totals.BaseLabel, view.Totals.Base, false)
	writeTotal(view.Totals.TaxLabel, view.Totals.Tax, false)
	pdf.SetTextColor(37, 99, 235)
	writeTotal(view.Totals.TotalLabel, view.Totals.Total, true)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Payment instructions banner.
	pdf.SetFillColor(15, 23, 42)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 8, tr(view.Payment.Title), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 6, tr(view.Payment.Instruction+"  "+view.Payment.Reference), "", 1, "L", true, 0, "")
	pdf.CellFormat(contentW, 5, tr(view.Payment.IBANLabel+": "+view.Payment.IBAN), "", 1, "L", true, 0, "")
	pdf.CellFormat(contentW, 5, tr(view.Payment.HolderLabel+": "+view.Payment.Holder), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Proforma notes and validity footer.
	pdf.SetFont("Helvetica", "B", 7)
	for _, note := range view.Notes {
		pdf.MultiCell(contentW, 4, tr(note), "", "C", false)
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(148, 163, 184)
	pdf.MultiCell(contentW, 3, tr(view.Footer), "T", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
