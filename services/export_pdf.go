package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF quote document from export data using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteTableRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, customer and date to the PDF.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	title := "Quote " + data.QuoteNumber
	if data.QuoteNumber == "" {
		title = "Quote"
	}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", data.CustomerName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the line table.
func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 47, Green: 82, Blue: 51}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Kind", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds a single line to the quote table. Material lines get
// a light gray background to visually separate them from labor and machine.
func addQuoteTableRow(m core.Maroto, r QuoteExportRow) {
	var cellStyle *props.Cell
	if r.Kind == string(LineKindMaterial) {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	colIndex := col.New(1).Add(text.New(r.Index, baseText))
	colDesc := col.New(4).Add(text.New(r.Description, leftText))
	colKind := col.New(1).Add(text.New(r.Kind, baseText))
	colQty := col.New(1).Add(text.New(formatQty(r.Qty), rightText))
	colUnit := col.New(1).Add(text.New(r.Unit, baseText))
	colPrice := col.New(2).Add(text.New(FormatEUR(r.UnitPrice), rightText))
	colTotal := col.New(2).Add(text.New(FormatEUR(r.LineTotal), rightText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colKind = colKind.WithStyle(cellStyle)
		colQty = colQty.WithStyle(cellStyle)
		colUnit = colUnit.WithStyle(cellStyle)
		colPrice = colPrice.WithStyle(cellStyle)
		colTotal = colTotal.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colIndex,
			colDesc,
			colKind,
			colQty,
			colUnit,
			colPrice,
			colTotal,
		),
	)
}

// addQuoteSummary adds the financial summary section at the bottom.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	summaries := []struct {
		label string
		value string
	}{
		{"Labor & machine", FormatEUR(data.Totals.LaborMachineCost)},
		{"Materials", FormatEUR(data.Totals.MaterialCost)},
		{"Subtotal", FormatEUR(data.Totals.Subtotal)},
		{"Margin", FormatEUR(data.Totals.MarginAmount)},
		{"Total ex VAT", FormatEUR(data.Totals.TotalExVAT)},
		{"VAT", FormatEUR(data.Totals.VATAmount)},
		{"Total inc VAT", FormatEUR(data.Totals.TotalIncVAT)},
		{"Labor hours", fmt.Sprintf("%.2f", data.Totals.TotalLaborHours)},
	}
	for _, s := range summaries {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(s.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(s.value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}

// addQuoteFooter adds the generated-date line at the bottom.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
