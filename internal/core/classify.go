package core

import "fmt"

// BadgeTier classifies the size of a discount for the card badge.
type BadgeTier string

const (
	BadgeSale  BadgeTier = "sale"
	BadgeGood  BadgeTier = "good"
	BadgeGreat BadgeTier = "great"
	BadgeHuge  BadgeTier = "huge"
	BadgeFree  BadgeTier = "free"
)

// badgeThresholds is checked in order; the first minimum met wins.
var badgeThresholds = []struct {
	min  int
	tier BadgeTier
}{
	{99, BadgeFree},
	{40, BadgeHuge},
	{30, BadgeGreat},
	{20, BadgeGood},
}

// BadgeTiers lists every badge tier from smallest to largest discount.
var BadgeTiers = []BadgeTier{BadgeSale, BadgeGood, BadgeGreat, BadgeHuge, BadgeFree}

// BadgeTierFor classifies a rounded discount percentage.
func BadgeTierFor(pct int) BadgeTier {
	for _, t := range badgeThresholds {
		if pct >= t.min {
			return t.tier
		}
	}
	return BadgeSale
}

// Label returns the badge caption shown on a card.
func (b BadgeTier) Label() string {
	switch b {
	case BadgeFree:
		return "FREE"
	case BadgeHuge:
		return "HUGE SAVINGS"
	case BadgeGreat:
		return "GREAT DEAL"
	case BadgeGood:
		return "GOOD DEAL"
	default:
		return "SALE"
	}
}

// StockTier classifies availability for the stock pill.
type StockTier string

const (
	StockLow       StockTier = "low"
	StockMedium    StockTier = "medium"
	StockGood      StockTier = "good"
	StockExcellent StockTier = "excellent"
)

// stockThresholds is checked in order; the first maximum not exceeded wins.
var stockThresholds = []struct {
	max  int
	tier StockTier
}{
	{5, StockLow},
	{15, StockMedium},
	{50, StockGood},
}

// StockTierFor classifies an available quantity.
func StockTierFor(qty int) StockTier {
	for _, t := range stockThresholds {
		if qty <= t.max {
			return t.tier
		}
	}
	return StockExcellent
}

// Label returns the stock caption for a given quantity.
func (s StockTier) Label(qty int) string {
	switch s {
	case StockLow:
		return fmt.Sprintf("Only %d left", qty)
	case StockMedium:
		return fmt.Sprintf("%d in stock", qty)
	case StockGood:
		return "Good availability"
	default:
		return "Excellent availability"
	}
}
