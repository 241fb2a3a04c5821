package scrape

import "time"

// MarketplaceProduct is a raw record from the primary marketplace dataset.
// Prices are already in the canonical currency.
type MarketplaceProduct struct {
	ASIN          string    `json:"asin"`
	Title         string    `json:"title"`
	ImageURL      string    `json:"image_url"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"original_price"`
	Rating        *float64  `json:"rating"`
	ReviewCount   *int      `json:"review_count"`
	BSRRank       *int      `json:"bsr_rank"`
	CategoryID    string    `json:"category_id"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Store         string    `json:"store"`
	ProductURL    string    `json:"product_url"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// Valid reports whether the record carries the fields normalization requires
func (p *MarketplaceProduct) Valid() bool {
	return p.ASIN != "" && p.Title != "" && p.Price != ""
}

// WholesaleProduct is a raw record from the secondary wholesale dataset.
// Prices are quoted in CNY.
type WholesaleProduct struct {
	OfferID          string    `json:"offer_id"`
	Title            string    `json:"title"`
	ImageURL         string    `json:"image_url"`
	Price            string    `json:"price"`
	MinOrderPrice    string    `json:"min_order_price"`
	MinOrderQuantity *int      `json:"min_order_quantity"`
	SupplierName     string    `json:"supplier_name"`
	SupplierLocation string    `json:"supplier_location"`
	SoldCount        *int      `json:"sold_count"`
	Rating           *float64  `json:"rating"`
	Category         string    `json:"category"`
	ProductURL       string    `json:"product_url"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// Valid reports whether the record carries the fields normalization requires
func (p *WholesaleProduct) Valid() bool {
	return p.OfferID != "" && p.Title != "" && p.Price != ""
}
