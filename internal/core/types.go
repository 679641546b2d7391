package core

// Logical field names after header mapping.
const (
	ColManufacturer    = "Manufacturer"
	ColLogoURL         = "Brand_Logo_URL"
	ColModel           = "Model"
	ColItem            = "Item"
	ColDiscount        = "B2B_Discount_Percentage"
	ColSalePrice       = "SalePrice"
	ColRegularPrice    = "Net"
	ColQuantity        = "AvailableQuantity"
	ColSize            = "Size"
	ColTypeDescription = "TypeDescription"
	ColWinter          = "IsWinterTire"
)

// Defaults for text fields that are missing or empty.
const (
	DefaultManufacturer = "Unknown"
	DefaultModel        = "TIRE"
)

// Record is one normalized, in-stock inventory line.
// JSON names match what the page script reads from the embedded data block.
type Record struct {
	Manufacturer    string    `json:"manufacturer"`
	Model           string    `json:"model"`
	ItemCode        string    `json:"itemCode"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	Size            string    `json:"size,omitempty"`
	TypeDescription string    `json:"typeDescription,omitempty"`
	IsWinterTire    bool      `json:"isWinterTire"`
	DiscountPercent int       `json:"discountPercent"`
	SalePrice       float64   `json:"salePrice"`
	RegularPrice    float64   `json:"regularPrice"`
	Savings         float64   `json:"savings"`
	StockQuantity   int       `json:"stockQuantity"`
	Badge           BadgeTier `json:"discountBadgeTier"`
	Stock           StockTier `json:"stockTier"`
}

// DuplicatePolicy decides what happens when two columns map to the same
// effective field name.
type DuplicatePolicy string

const (
	// DuplicateLastWins keeps the value of the rightmost column.
	DuplicateLastWins DuplicatePolicy = "last"
	// DuplicateReject fails the build.
	DuplicateReject DuplicatePolicy = "reject"
)

// Options tune the normalizer. The zero value is the default behavior:
// stock filter only, last write wins on duplicate headers.
type Options struct {
	// MinDiscount drops records whose rounded discount is below it.
	// Zero or negative disables the filter.
	MinDiscount int

	Duplicates DuplicatePolicy
}

// SkipStats counts discarded data rows by reason.
type SkipStats struct {
	FieldCount    int `json:"fieldCount"`
	OutOfStock    int `json:"outOfStock"`
	BelowDiscount int `json:"belowDiscount"`
}

// Total returns the number of discarded rows.
func (s SkipStats) Total() int {
	return s.FieldCount + s.OutOfStock + s.BelowDiscount
}

// Result is the output of Normalize.
type Result struct {
	Records []Record
	Skipped SkipStats
	Header  HeaderMap
}

// Catalog is everything the renderer needs from one build.
type Catalog struct {
	Records []Record  `json:"records"`
	Summary Summary   `json:"summary"`
	Skipped SkipStats `json:"skipped"`
	// Columns are the effective field names of the source header.
	Columns []string `json:"columns"`
}
