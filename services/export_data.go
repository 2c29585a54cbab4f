package services

// QuoteExportRow represents a single line in the quote export.
type QuoteExportRow struct {
	Label      string
	Value      float64
	IsDiscount bool
	IsTotal    bool
}

// QuoteExportData holds all data needed for a quote export.
type QuoteExportData struct {
	Title        string
	QuoteNumber  string
	ClientName   string
	CreatedDate  string
	PaymentTerms string
	Rows         []QuoteExportRow
	Subtotal     float64
	Total        float64
	Disciplines  DisciplineTotals
}

// BuildQuoteExportData flattens a pricing result into export rows. Upteam
// costs and margin figures are internal and never leave the building.
func BuildQuoteExportData(title, quoteNumber, clientName, createdDate, paymentTerms string, result PricingResult) QuoteExportData {
	rows := make([]QuoteExportRow, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, QuoteExportRow{
			Label:      item.Label,
			Value:      item.Value,
			IsDiscount: item.IsDiscount,
			IsTotal:    item.IsTotal,
		})
	}

	return QuoteExportData{
		Title:        title,
		QuoteNumber:  quoteNumber,
		ClientName:   clientName,
		CreatedDate:  createdDate,
		PaymentTerms: paymentTerms,
		Rows:         rows,
		Subtotal:     result.Subtotal,
		Total:        result.TotalClientPrice,
		Disciplines:  result.DisciplineTotals,
	}
}
