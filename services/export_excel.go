package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from the given quote export
// data and returns the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet name (max 31 chars).
	sheetName := data.QuoteNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 40, 18, 12, 10, 8, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#2F5233"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := "Quote " + data.QuoteNumber
	if data.QuoteNumber == "" {
		title = "Quote"
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.CustomerName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge customer: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Customer: "+sanitizeExcelCell(data.CustomerName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Description", "Scope", "Kind", "Qty", "Unit", "Unit Price", "Line Total"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Scope))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Kind))
		f.SetCellValue(sheetName, "E"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.Unit))
		f.SetCellValue(sheetName, "G"+rowStr, FormatEUR(r.UnitPrice))
		f.SetCellValue(sheetName, "H"+rowStr, FormatEUR(r.LineTotal))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaries := []struct {
		label string
		value string
	}{
		{"Labor & machine:", FormatEUR(data.Totals.LaborMachineCost)},
		{"Materials:", FormatEUR(data.Totals.MaterialCost)},
		{"Subtotal:", FormatEUR(data.Totals.Subtotal)},
		{"Margin:", FormatEUR(data.Totals.MarginAmount)},
		{"Total ex VAT:", FormatEUR(data.Totals.TotalExVAT)},
		{"VAT:", FormatEUR(data.Totals.VATAmount)},
		{"Total inc VAT:", FormatEUR(data.Totals.TotalIncVAT)},
		{"Labor hours:", fmt.Sprintf("%.2f", data.Totals.TotalLaborHours)},
	}
	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "G"+rowStr, s.label)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "H"+rowStr, s.value)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryValueStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
