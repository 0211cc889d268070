package services

import (
	"math"
	"testing"
)

func TestWaterElectricalLines_Trenches(t *testing.T) {
	ctx := testContext()
	in := WaterElectricalInput{TrenchesNeeded: true, TrenchLengthM: 20}

	lines := WaterElectricalLines(in, ctx, 1.0)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (3 labor + cable), got %d", len(lines))
	}

	tests := []struct {
		id     string
		expect float64
	}{
		{"water_electrical-trench-digging", 7.0}, // 20 * 0.35
		{"water_electrical-cable-laying", 2.0},   // 20 * 0.10
		{"water_electrical-trench-repair", 3.0},  // 20 * 0.15
	}
	for _, tt := range tests {
		line := findLine(lines, tt.id)
		if line == nil {
			t.Fatalf("missing line %s", tt.id)
		}
		if line.Quantity != tt.expect {
			t.Errorf("%s: hours = %v, want %v", tt.id, line.Quantity, tt.expect)
		}
	}

	cable := findLine(lines, "water_electrical-cable")
	if cable == nil {
		t.Fatal("missing cable line")
	}
	if math.Abs(cable.Quantity-23) > 0.001 { // 20 m + 15% waste
		t.Errorf("cable Quantity = %v, want 23", cable.Quantity)
	}
}

func TestWaterElectricalLines_ExplicitCableLength(t *testing.T) {
	ctx := testContext()
	in := WaterElectricalInput{TrenchesNeeded: true, TrenchLengthM: 20, CableLengthM: 30}

	lines := WaterElectricalLines(in, ctx, 1.0)

	// Trench digging and repair stay on the trench length.
	digging := findLine(lines, "water_electrical-trench-digging")
	if digging == nil {
		t.Fatal("missing trench digging line")
	}
	if digging.Quantity != 7.0 { // 20 * 0.35
		t.Errorf("digging hours = %v, want 7.0", digging.Quantity)
	}

	// Cable laying and cable material follow the longer cable run.
	laying := findLine(lines, "water_electrical-cable-laying")
	if laying == nil {
		t.Fatal("missing cable laying line")
	}
	if laying.Quantity != 3.0 { // 30 * 0.10
		t.Errorf("laying hours = %v, want 3.0", laying.Quantity)
	}

	cable := findLine(lines, "water_electrical-cable")
	if cable == nil {
		t.Fatal("missing cable line")
	}
	if math.Abs(cable.Quantity-34.5) > 0.001 { // 30 m + 15% waste
		t.Errorf("cable Quantity = %v, want 34.5", cable.Quantity)
	}
}

func TestWaterElectricalLines_TrenchLengthWithoutFlag(t *testing.T) {
	ctx := testContext()
	in := WaterElectricalInput{TrenchLengthM: 20}

	if lines := WaterElectricalLines(in, ctx, 1.0); len(lines) != 0 {
		t.Errorf("trench length without the flag should emit nothing, got %d lines", len(lines))
	}
}

func TestWaterElectricalLines_Fixtures(t *testing.T) {
	ctx := testContext()
	in := WaterElectricalInput{FixtureType: "light", FixtureCount: 4}

	lines := WaterElectricalLines(in, ctx, 1.0)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	install := findLine(lines, "water_electrical-fixture-install")
	if install == nil {
		t.Fatal("missing fixture install line")
	}
	if install.Quantity != 3.0 { // 4 * 0.75
		t.Errorf("install hours = %v, want 3.0", install.Quantity)
	}

	fixtures := findLine(lines, "water_electrical-fixtures")
	if fixtures == nil {
		t.Fatal("missing fixture material line")
	}
	if fixtures.Quantity != 4 {
		t.Errorf("fixture count = %v, want 4 (no waste uplift)", fixtures.Quantity)
	}
	if fixtures.UnitPrice != 85 {
		t.Errorf("fixture UnitPrice = %v, want 85", fixtures.UnitPrice)
	}
}

func TestWaterElectricalLines_FixtureTypes(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		fixture    string
		laborHours float64
		unitPrice  float64
	}{
		{"light", 1.5, 85},  // 2 * 0.75
		{"socket", 1.0, 54}, // 2 * 0.50
		{"tap", 2.5, 120},   // 2 * 1.25
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			in := WaterElectricalInput{FixtureType: tt.fixture, FixtureCount: 2}
			lines := WaterElectricalLines(in, ctx, 1.0)

			install := findLine(lines, "water_electrical-fixture-install")
			if install == nil {
				t.Fatal("missing install line")
			}
			if install.Quantity != tt.laborHours {
				t.Errorf("hours = %v, want %v", install.Quantity, tt.laborHours)
			}

			material := findLine(lines, "water_electrical-fixtures")
			if material == nil {
				t.Fatal("missing material line")
			}
			if material.UnitPrice != tt.unitPrice {
				t.Errorf("UnitPrice = %v, want %v", material.UnitPrice, tt.unitPrice)
			}
		})
	}
}

func TestWaterElectricalLines_Empty(t *testing.T) {
	ctx := testContext()
	if lines := WaterElectricalLines(WaterElectricalInput{}, ctx, 1.0); len(lines) != 0 {
		t.Errorf("expected no lines for empty input, got %d", len(lines))
	}
}
