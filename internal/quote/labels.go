package quote

import "github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"

// DocumentLabels is the bilingual label set for the rendered quote
// document. Both languages must cover every key; NewFormatter validates the
// table so a missing translation fails construction instead of leaking into
// an issued document.
func DocumentLabels() i18n.Table {
	return i18n.Table{
		"quote":    {i18n.ES: "Presupuesto", i18n.PT: "Orçamento"},
		"date":     {i18n.ES: "Fecha", i18n.PT: "Data"},
		"client":   {i18n.ES: "Cliente", i18n.PT: "Cliente"},
		"delivery": {i18n.ES: "Método de Entrega", i18n.PT: "Método de Entrega"},
		"concept":  {i18n.ES: "Concepto", i18n.PT: "Conceito"},
		"qty":      {i18n.ES: "Cant.", i18n.PT: "Qtd."},
		"price":    {i18n.ES: "Precio Un.", i18n.PT: "Preço Un."},
		"subtotal": {i18n.ES: "Subtotal", i18n.PT: "Subtotal"},
		"base":     {i18n.ES: "Base Imponible", i18n.PT: "Base Tributável"},
		"tax":      {i18n.ES: "IVA (21%)", i18n.PT: "IVA (21%)"},
		"total":    {i18n.ES: "TOTAL PRESUPUESTO", i18n.PT: "TOTAL ORÇAMENTO"},
		"shipping": {
			i18n.ES: "Gastos de envío y embalaje",
			i18n.PT: "Custos de envio e embalagem",
		},
		"payment.title": {
			i18n.ES: "Instrucciones de Pago",
			i18n.PT: "Instruções de Pagamento",
		},
		"payment.instruction": {
			i18n.ES: "Por favor, realice la transferencia indicando el concepto:",
			i18n.PT: "Por favor, realize a transferência indicando o conceito:",
		},
		"payment.iban":   {i18n.ES: "IBAN para transferencia", i18n.PT: "IBAN para transferência"},
		"payment.holder": {i18n.ES: "Titular de la cuenta", i18n.PT: "Titular da conta"},
		"note.proforma": {
			i18n.ES: "NOTA IMPORTANTE: Este documento es un presupuesto proforma válido para la realización de la transferencia.",
			i18n.PT: "NOTA IMPORTANTE: Este documento é um orçamento proforma válido para a realização da transferência.",
		},
		"note.receipt": {
			i18n.ES: "Tras realizar el pago, es necesario enviar el justificante del pago por correo electrónico a hola3d@aspacesalamanca.org.",
			i18n.PT: "Após realizar o pagamento, é necessário enviar o comprovativo do pagamento por e-mail para hola3d@aspacesalamanca.org.",
		},
		"note.invoice": {
			i18n.ES: "La factura oficial definitiva será emitida y enviada una vez confirmada la recepción del pago.",
			i18n.PT: "A fatura oficial definitiva será emitida e enviada após a confirmação do recebimento do pagamento.",
		},
		"footer": {
			i18n.ES: "Este presupuesto tiene una validez de 15 días naturales. ASPACE Salamanca es una entidad sin ánimo de lucro (Ley 49/2002). Su compra apoya directamente nuestros proyectos de innovación social.",
			i18n.PT: "Este orçamento é válido por 15 dias seguidos. ASPACE Salamanca é uma entidade sem fins lucrativos. A sua compra apoia diretamente os nossos projetos de inovação social.",
		},
	}
}
