package domain

import "time"

// Product represents a ranked product in the catalog. ProductID is the
// stable external key (e.g. an Amazon ASIN) that ingestion upserts on.
type Product struct {
	ProductID      string            `json:"product_id" db:"product_id"`
	Name           string            `json:"name" db:"name"`
	Category       string            `json:"category" db:"category"`
	Price          float64           `json:"price" db:"price"`
	Rating         float64           `json:"rating" db:"rating"`
	ReviewCount    int               `json:"review_count" db:"review_count"`
	Score          float64           `json:"score" db:"score"`
	Brand          string            `json:"brand" db:"brand"`
	Specifications map[string]string `json:"specifications" db:"specifications"`
	ImageURL       string            `json:"image_url" db:"image_url"`
	AffiliateURL   string            `json:"affiliate_url" db:"affiliate_url"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	LastUpdated    time.Time         `json:"last_updated" db:"last_updated"`
}

// PageType classifies a generated page.
type PageType string

const (
	PageTypeCategory   PageType = "category"
	PageTypeProduct    PageType = "product"
	PageTypeComparison PageType = "comparison"
)

// GeneratedPage is one entry in the append-only page generation log.
// Entries are never mutated or deleted; a repeated path gets a new row.
type GeneratedPage struct {
	ID          int64     `json:"id" db:"id"`
	Type        PageType  `json:"page_type" db:"page_type"`
	Path        string    `json:"page_path" db:"page_path"`
	Title       string    `json:"title" db:"title"`
	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`
}

// Comparison is the result of a head-to-head between two products.
type Comparison struct {
	Product1        Product `json:"product1"`
	Product2        Product `json:"product2"`
	Winner          string  `json:"winner"`
	ScoreDifference float64 `json:"score_difference"`
	PriceDifference float64 `json:"price_difference"`
}
