package core

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const flyerHeader = "FlyerData[Manufacturer],FlyerData[Item],FlyerData[AvailableQuantity]," +
	"FlyerData[B2B_Discount_Percentage],FlyerData[SalePrice],FlyerData[Net]"

// normalizeText parses and normalizes CSV text in one step.
func normalizeText(t *testing.T, text string, opts Options) Result {
	t.Helper()
	res, err := Normalize(ParseRows(text), opts)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return res
}

func csvLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestNormalize_BasicRecord(t *testing.T) {
	res := normalizeText(t, csvLines(flyerHeader, "Acme,ITM1,10,25,75,100"), Options{})

	want := []Record{{
		Manufacturer:    "Acme",
		Model:           DefaultModel,
		ItemCode:        "ITM1",
		DiscountPercent: 25,
		SalePrice:       75,
		RegularPrice:    100,
		Savings:         25,
		StockQuantity:   10,
		Badge:           BadgeGood,
		Stock:           StockMedium,
	}}

	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if res.Skipped.Total() != 0 {
		t.Errorf("Skipped = %+v, want none", res.Skipped)
	}
}

func TestNormalize_ZeroStockExcludedEvenAtFreeDiscount(t *testing.T) {
	res := normalizeText(t, csvLines(
		flyerHeader,
		"Acme,ITM1,0,99,1,100",
		"Acme,ITM2,-3,99,1,100",
		"Acme,ITM3,4,10,90,100",
	), Options{})

	if len(res.Records) != 1 || res.Records[0].ItemCode != "ITM3" {
		t.Fatalf("records = %+v, want only ITM3", res.Records)
	}
	if res.Skipped.OutOfStock != 2 {
		t.Errorf("Skipped.OutOfStock = %d, want 2", res.Skipped.OutOfStock)
	}
}

func TestNormalize_QuotedManufacturer(t *testing.T) {
	res := normalizeText(t, csvLines(flyerHeader, `"Acme, Inc",ITM1,10,25,75,100`), Options{})

	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	if got := res.Records[0].Manufacturer; got != "Acme, Inc" {
		t.Errorf("Manufacturer = %q, want %q", got, "Acme, Inc")
	}
	if got := res.Records[0].ItemCode; got != "ITM1" {
		t.Errorf("ItemCode = %q, want ITM1", got)
	}
}

func TestNormalize_ShortRowSkipped(t *testing.T) {
	fixed := normalizeText(t, csvLines(
		flyerHeader,
		"Acme,ITM1,10,25,75,100",
		"Bolt,ITM2,10,30,70,100",
	), Options{})
	broken := normalizeText(t, csvLines(
		flyerHeader,
		"Acme,ITM1,10,25,75,100",
		"Bolt,ITM2,10,30,70",
	), Options{})

	if len(fixed.Records)-len(broken.Records) != 1 {
		t.Errorf("record count fixed=%d broken=%d, want difference of 1",
			len(fixed.Records), len(broken.Records))
	}
	if broken.Skipped.FieldCount != 1 {
		t.Errorf("Skipped.FieldCount = %d, want 1", broken.Skipped.FieldCount)
	}
	for _, r := range broken.Records {
		if r.ItemCode == "ITM2" {
			t.Errorf("short row ITM2 should not appear in output")
		}
	}
}

func TestNormalize_LongRowSkipped(t *testing.T) {
	res := normalizeText(t, csvLines(
		flyerHeader,
		"Acme, Inc,ITM1,10,25,75,100",
	), Options{})

	if len(res.Records) != 0 {
		t.Errorf("got %d records, want 0", len(res.Records))
	}
	if res.Skipped.FieldCount != 1 {
		t.Errorf("Skipped.FieldCount = %d, want 1", res.Skipped.FieldCount)
	}
}

func TestNormalize_EmptyDiscountCoercesToZero(t *testing.T) {
	res := normalizeText(t, csvLines(flyerHeader, "Acme,ITM1,10,,75,100"), Options{})

	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	r := res.Records[0]
	if r.DiscountPercent != 0 {
		t.Errorf("DiscountPercent = %d, want 0", r.DiscountPercent)
	}
	if r.Badge != BadgeSale {
		t.Errorf("Badge = %q, want %q", r.Badge, BadgeSale)
	}
}

func TestNormalize_NonNumericFieldsKeepRow(t *testing.T) {
	res := normalizeText(t, csvLines(flyerHeader, "Acme,ITM1,5,abc,n/a,call"), Options{})

	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	r := res.Records[0]
	if r.SalePrice != 0 || r.RegularPrice != 0 || r.Savings != 0 {
		t.Errorf("prices = %v/%v/%v, want all 0", r.SalePrice, r.RegularPrice, r.Savings)
	}
	if r.Stock != StockLow {
		t.Errorf("Stock = %q, want %q", r.Stock, StockLow)
	}
}

func TestNormalize_MinDiscountFilter(t *testing.T) {
	text := csvLines(
		flyerHeader,
		"Acme,ITM1,10,14,86,100",
		"Acme,ITM2,10,15,85,100",
		"Acme,ITM3,10,40,60,100",
	)

	off := normalizeText(t, text, Options{})
	if len(off.Records) != 3 {
		t.Errorf("filter off: got %d records, want 3", len(off.Records))
	}

	on := normalizeText(t, text, Options{MinDiscount: 15})
	if len(on.Records) != 2 {
		t.Errorf("filter 15: got %d records, want 2", len(on.Records))
	}
	if on.Skipped.BelowDiscount != 1 {
		t.Errorf("Skipped.BelowDiscount = %d, want 1", on.Skipped.BelowDiscount)
	}
	for _, r := range on.Records {
		if r.DiscountPercent < 15 {
			t.Errorf("record %s has discount %d below minimum", r.ItemCode, r.DiscountPercent)
		}
	}
}

func TestNormalize_SavingsDerivedNotTrusted(t *testing.T) {
	header := "Item,AvailableQuantity,SalePrice,Net,Savings"
	res := normalizeText(t, csvLines(header, "ITM1,3,60.40,100,999"), Options{})

	if got := res.Records[0].Savings; got != 40 {
		t.Errorf("Savings = %v, want 40", got)
	}
}

func TestNormalize_HugeValuesSaturate(t *testing.T) {
	res := normalizeText(t, csvLines(flyerHeader, "Acme,ITM1,1e20,1e20,75,100"), Options{})

	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1 (skipped %+v)", len(res.Records), res.Skipped)
	}
	r := res.Records[0]
	if r.StockQuantity != math.MaxInt32 || r.Stock != StockExcellent {
		t.Errorf("stock = %d/%s, want %d/%s", r.StockQuantity, r.Stock, math.MaxInt32, StockExcellent)
	}
	if r.DiscountPercent != math.MaxInt32 || r.Badge != BadgeFree {
		t.Errorf("discount = %d/%s, want %d/%s", r.DiscountPercent, r.Badge, math.MaxInt32, BadgeFree)
	}
}

func TestNormalize_ApostrophesKept(t *testing.T) {
	header := "Item,Model,AvailableQuantity"
	res := normalizeText(t, csvLines(header, "ITM',"+`"'Classic"`+",3"), Options{})

	r := res.Records[0]
	if r.ItemCode != "ITM'" || r.Model != "'Classic" {
		t.Errorf("ItemCode, Model = %q, %q; want %q, %q", r.ItemCode, r.Model, "ITM'", "'Classic")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	res := normalizeText(t, csvLines("Item,AvailableQuantity,Manufacturer,Model", `ITM1,2,"",  `), Options{})

	r := res.Records[0]
	if r.Manufacturer != DefaultManufacturer {
		t.Errorf("Manufacturer = %q, want %q", r.Manufacturer, DefaultManufacturer)
	}
	if r.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", r.Model, DefaultModel)
	}
}

func TestNormalize_OptionalFields(t *testing.T) {
	header := "FlyerData[Item],FlyerData[AvailableQuantity],FlyerData[Size]," +
		"FlyerData[TypeDescription],FlyerData[IsWinterTire],FlyerData[Brand_Logo_URL],FlyerData[Model]"
	res := normalizeText(t, csvLines(header,
		"ITM1,8,225/45R17,All Season,False,https://cdn.example.com/acme.png,Gripper",
		"ITM2,8,205/55R16,Winter,True,,Snow X",
	), Options{})

	byItem := map[string]Record{}
	for _, r := range res.Records {
		byItem[r.ItemCode] = r
	}

	if r := byItem["ITM1"]; r.Size != "225/45R17" || r.TypeDescription != "All Season" ||
		r.IsWinterTire || r.LogoURL != "https://cdn.example.com/acme.png" || r.Model != "Gripper" {
		t.Errorf("ITM1 = %+v", r)
	}
	if r := byItem["ITM2"]; !r.IsWinterTire || r.LogoURL != "" {
		t.Errorf("ITM2 = %+v", r)
	}
}

func TestNormalize_DuplicateHeaderLastWins(t *testing.T) {
	header := "A[Manufacturer],Item,AvailableQuantity,B[Manufacturer]"
	res := normalizeText(t, csvLines(header, "First,ITM1,4,Second"), Options{})

	if got := res.Records[0].Manufacturer; got != "Second" {
		t.Errorf("Manufacturer = %q, want %q", got, "Second")
	}
	if diff := cmp.Diff([]string{"Manufacturer"}, res.Header.Duplicates); diff != "" {
		t.Errorf("Duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DuplicateHeaderReject(t *testing.T) {
	header := "A[Manufacturer],Item,AvailableQuantity,B[Manufacturer]"
	_, err := Normalize(ParseRows(csvLines(header, "First,ITM1,4,Second")), Options{Duplicates: DuplicateReject})
	if !errors.Is(err, ErrDuplicateHeader) {
		t.Errorf("Normalize() error = %v, want ErrDuplicateHeader", err)
	}
}

func TestNormalize_EmptyRows(t *testing.T) {
	if _, err := Normalize(nil, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Normalize(nil) error = %v, want ErrEmptyInput", err)
	}

	res, err := Normalize([][]string{{"Item"}}, Options{})
	if err != nil {
		t.Fatalf("Normalize(header only) error = %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("header only: got %d records, want 0", len(res.Records))
	}
}

func TestNormalize_SortOrder(t *testing.T) {
	res := normalizeText(t, csvLines(
		flyerHeader,
		"A,I1,10,20,80,100",
		"A,I2,10,45,110,200",
		"A,I3,10,45,55,100",
		"A,I4,10,45,110,200",
		"A,I5,10,5,95,100",
		"A,I6,10,99,0,50",
	), Options{})

	var got []string
	for _, r := range res.Records {
		got = append(got, r.ItemCode)
	}
	// I2 and I4 tie on discount and savings and keep input order.
	want := []string{"I6", "I2", "I4", "I3", "I1", "I5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	for i := 1; i < len(res.Records); i++ {
		a, b := res.Records[i-1], res.Records[i]
		if a.DiscountPercent < b.DiscountPercent {
			t.Errorf("records %d,%d out of order: %d < %d", i-1, i, a.DiscountPercent, b.DiscountPercent)
		}
	}
}

func TestNormalize_NoRowWithWrongWidthSurvives(t *testing.T) {
	lines := []string{flyerHeader}
	for _, row := range []string{
		"A,I1,10,20,80,100",
		"A,I2,10,20,80",
		"A,I3,10,20,80,100,7",
		"A",
		`"A,I5",10,20,80,100`,
	} {
		lines = append(lines, row)
	}

	res := normalizeText(t, csvLines(lines...), Options{})
	if len(res.Records) != 1 || res.Records[0].ItemCode != "I1" {
		t.Errorf("records = %+v, want only I1", res.Records)
	}
	if res.Skipped.FieldCount != 4 {
		t.Errorf("Skipped.FieldCount = %d, want 4", res.Skipped.FieldCount)
	}
}

func TestNormalize_DoesNotShareState(t *testing.T) {
	rows := ParseRows(csvLines(flyerHeader, "A,I1,10,20,80,100"))
	first, _ := Normalize(rows, Options{})
	first.Records[0].Manufacturer = "mutated"

	second, _ := Normalize(rows, Options{})
	if second.Records[0].Manufacturer != "A" {
		t.Errorf("second run saw mutation from first: %q", second.Records[0].Manufacturer)
	}
}
