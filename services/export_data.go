package services

import "strconv"

// QuoteExportRow represents a single quote line in an export document.
type QuoteExportRow struct {
	Index       string
	Scope       string
	Description string
	Qty         float64
	Unit        string
	UnitPrice   float64
	LineTotal   float64
	Kind        string
}

// QuoteExportData holds all data needed to render a quote document.
type QuoteExportData struct {
	QuoteNumber  string
	CustomerName string
	ProjectType  string
	CreatedDate  string
	Rows         []QuoteExportRow
	Totals       Totals
}

// BuildQuoteExportData maps quote lines + totals into the export shape,
// numbering lines sequentially in emission order.
func BuildQuoteExportData(quoteNumber, customerName, projectType, createdDate string, lines []QuoteLine, totals Totals) QuoteExportData {
	data := QuoteExportData{
		QuoteNumber:  quoteNumber,
		CustomerName: customerName,
		ProjectType:  projectType,
		CreatedDate:  createdDate,
		Totals:       totals,
	}
	for i, line := range lines {
		data.Rows = append(data.Rows, QuoteExportRow{
			Index:       strconv.Itoa(i + 1),
			Scope:       line.Scope,
			Description: line.Description,
			Qty:         line.Quantity,
			Unit:        line.Unit,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
			Kind:        string(line.Kind),
		})
	}
	return data
}
