package core

import "sort"

// Summary is the statistics block shown above the card grid.
type Summary struct {
	TotalItems     int               `json:"totalItems"`
	TotalUnits     int               `json:"totalUnits"`
	Manufacturers  int               `json:"manufacturers"`
	WinterItems    int               `json:"winterItems"`
	TotalSavings   float64           `json:"totalSavings"`
	AverageSavings float64           `json:"averageSavings"`
	MaxDiscount    int               `json:"maxDiscount"`
	MinDiscount    int               `json:"minDiscount"`
	ByBadge        map[BadgeTier]int `json:"byBadge"`
}

// Summarize computes the summary over the full record list.
// An empty list yields a zero summary with an empty ByBadge map.
func Summarize(records []Record) Summary {
	s := Summary{ByBadge: make(map[BadgeTier]int, len(BadgeTiers))}
	if len(records) == 0 {
		return s
	}

	makers := make(map[string]struct{})
	s.MinDiscount = records[0].DiscountPercent
	s.MaxDiscount = records[0].DiscountPercent

	for _, r := range records {
		s.TotalItems++
		s.TotalUnits += r.StockQuantity
		s.TotalSavings += r.Savings
		s.ByBadge[r.Badge]++
		makers[r.Manufacturer] = struct{}{}

		if r.IsWinterTire {
			s.WinterItems++
		}
		if r.DiscountPercent > s.MaxDiscount {
			s.MaxDiscount = r.DiscountPercent
		}
		if r.DiscountPercent < s.MinDiscount {
			s.MinDiscount = r.DiscountPercent
		}
	}

	s.Manufacturers = len(makers)
	s.AverageSavings = RoundHalfUp(s.TotalSavings / float64(s.TotalItems))
	return s
}

// ManufacturerNames returns the distinct manufacturers, sorted.
func ManufacturerNames(records []Record) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range records {
		if _, ok := seen[r.Manufacturer]; ok {
			continue
		}
		seen[r.Manufacturer] = struct{}{}
		names = append(names, r.Manufacturer)
	}
	sort.Strings(names)
	return names
}
