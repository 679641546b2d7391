package core

import "testing"

func TestBadgeTierFor(t *testing.T) {
	tests := []struct {
		pct  int
		want BadgeTier
	}{
		{-5, BadgeSale},
		{0, BadgeSale},
		{19, BadgeSale},
		{20, BadgeGood},
		{29, BadgeGood},
		{30, BadgeGreat},
		{39, BadgeGreat},
		{40, BadgeHuge},
		{98, BadgeHuge},
		{99, BadgeFree},
		{100, BadgeFree},
	}

	for _, tt := range tests {
		if got := BadgeTierFor(tt.pct); got != tt.want {
			t.Errorf("BadgeTierFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestStockTierFor(t *testing.T) {
	tests := []struct {
		qty  int
		want StockTier
	}{
		{1, StockLow},
		{5, StockLow},
		{6, StockMedium},
		{15, StockMedium},
		{16, StockGood},
		{50, StockGood},
		{51, StockExcellent},
		{1000, StockExcellent},
	}

	for _, tt := range tests {
		if got := StockTierFor(tt.qty); got != tt.want {
			t.Errorf("StockTierFor(%d) = %q, want %q", tt.qty, got, tt.want)
		}
	}
}

func TestTierLabels(t *testing.T) {
	if got := BadgeFree.Label(); got != "FREE" {
		t.Errorf("BadgeFree.Label() = %q, want FREE", got)
	}
	if got := BadgeSale.Label(); got != "SALE" {
		t.Errorf("BadgeSale.Label() = %q, want SALE", got)
	}
	if got := StockLow.Label(3); got != "Only 3 left" {
		t.Errorf("StockLow.Label(3) = %q, want %q", got, "Only 3 left")
	}
	if got := StockMedium.Label(12); got != "12 in stock" {
		t.Errorf("StockMedium.Label(12) = %q, want %q", got, "12 in stock")
	}
	for _, b := range BadgeTiers {
		if b.Label() == "" {
			t.Errorf("BadgeTier %q has empty label", b)
		}
	}
}
