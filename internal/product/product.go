package product

// Product represents one catalog entry. JSON tags follow the camelCase
// convention used across the API.
type Product struct {
	ID                   string   `json:"id"`
	Slug                 string   `json:"slug"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Price                float64  `json:"price"`
	PriceWithoutDiscount *float64 `json:"priceWithoutDiscount,omitempty"`
	DiscountPercentage   *float64 `json:"discountPercentage,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	StockLevel           *int     `json:"stockLevel,omitempty"`
	Tags                 []string `json:"tags"`
	Sizes                []string `json:"sizes"`
	Colors               []string `json:"colors"`
	Image                string   `json:"imagePath"`
}
