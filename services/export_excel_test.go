package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func exportTestData() QuoteExportData {
	lines := []QuoteLine{
		{ID: "earthworks-excavation", Scope: ScopeEarthworks, Description: "Excavation (standard depth)",
			Unit: UnitHour, Quantity: 12.5, UnitPrice: 48.50, LineTotal: 606.25, Kind: LineKindLabor},
		{ID: "paving-pavers", Scope: ScopePaving, Description: "Paving material (tile)",
			Unit: UnitSquareMeter, Quantity: 31.5, UnitPrice: 28, LineTotal: 882, Kind: LineKindMaterial},
	}
	totals := AggregateTotals(lines, 15, 21, nil)
	return BuildQuoteExportData("GT-2026-001", "Jansen", "new_build", "2026-08-29", lines, totals)
}

func TestGenerateQuoteExcel(t *testing.T) {
	data := exportTestData()

	xlsxBytes, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel failed: %v", err)
	}
	if len(xlsxBytes) == 0 {
		t.Fatal("generated file is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("generated file is not a valid workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "GT-2026-001" {
		t.Errorf("sheet name = %q, want quote number", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Quote GT-2026-001" {
		t.Errorf("title = %q", title)
	}

	customer, _ := f.GetCellValue(sheet, "A2")
	if customer != "Customer: Jansen" {
		t.Errorf("customer row = %q", customer)
	}

	// First data row starts at row 6.
	desc, _ := f.GetCellValue(sheet, "B6")
	if desc != "Excavation (standard depth)" {
		t.Errorf("first row description = %q", desc)
	}
	total, _ := f.GetCellValue(sheet, "H6")
	if total != "€ 606,25" {
		t.Errorf("first row total = %q, want € 606,25", total)
	}
}

func TestGenerateQuoteExcel_EmptyQuote(t *testing.T) {
	data := BuildQuoteExportData("", "", "new_build", "2026-08-29", nil, Totals{})

	xlsxBytes, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel failed on empty quote: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("generated file is not a valid workbook: %v", err)
	}
	defer f.Close()

	if sheet := f.GetSheetName(0); sheet != "Quote" {
		t.Errorf("fallback sheet name = %q, want Quote", sheet)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Excavation", "Excavation"},
		{"formula equals", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"plus", "+1234", "'+1234"},
		{"minus", "-cmd", "'-cmd"},
		{"at sign", "@import", "'@import"},
		{"tab", "\tdata", "'\tdata"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
