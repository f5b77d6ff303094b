package feeds

import "electrorank/internal/domain"

// NewMobilesProvider returns the mobile phones feed.
func NewMobilesProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "mobiles",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0BDJC6VX5",
				Name:        "Samsung Galaxy S23 5G",
				Category:    "mobiles",
				Price:       74999,
				Rating:      4.5,
				ReviewCount: 8234,
				Brand:       "Samsung",
				Specifications: map[string]string{
					"ram":       "8GB",
					"storage":   "256GB",
					"processor": "Snapdragon 8 Gen 2",
					"display":   "6.1 inch AMOLED",
					"camera":    "50MP Triple",
					"battery":   "3900mAh",
				},
				ImageURL: "https://example.com/samsung-s23.jpg",
			},
			{
				ProductID:   "B0BDJ1NRMQ",
				Name:        "iPhone 14",
				Category:    "mobiles",
				Price:       69900,
				Rating:      4.6,
				ReviewCount: 12543,
				Brand:       "Apple",
				Specifications: map[string]string{
					"ram":       "6GB",
					"storage":   "128GB",
					"processor": "A15 Bionic",
					"display":   "6.1 inch Super Retina XDR",
					"camera":    "12MP Dual",
					"battery":   "3279mAh",
				},
				ImageURL: "https://example.com/iphone-14.jpg",
			},
			{
				ProductID:   "B0C632LDVX",
				Name:        "OnePlus 11 5G",
				Category:    "mobiles",
				Price:       56999,
				Rating:      4.4,
				ReviewCount: 6721,
				Brand:       "OnePlus",
				Specifications: map[string]string{
					"ram":       "8GB",
					"storage":   "128GB",
					"processor": "Snapdragon 8 Gen 2",
					"display":   "6.7 inch AMOLED",
					"camera":    "50MP Triple",
					"battery":   "5000mAh",
				},
				ImageURL: "https://example.com/oneplus-11.jpg",
			},
			{
				ProductID:   "B0C5TZVFKQ",
				Name:        "Google Pixel 7a",
				Category:    "mobiles",
				Price:       43999,
				Rating:      4.3,
				ReviewCount: 4532,
				Brand:       "Google",
				Specifications: map[string]string{
					"ram":       "8GB",
					"storage":   "128GB",
					"processor": "Google Tensor G2",
					"display":   "6.1 inch OLED",
					"camera":    "64MP Dual",
					"battery":   "4385mAh",
				},
				ImageURL: "https://example.com/pixel-7a.jpg",
			},
			{
				ProductID:   "B0BZR8NZWK",
				Name:        "Xiaomi 13 Pro",
				Category:    "mobiles",
				Price:       79999,
				Rating:      4.5,
				ReviewCount: 5234,
				Brand:       "Xiaomi",
				Specifications: map[string]string{
					"ram":       "12GB",
					"storage":   "256GB",
					"processor": "Snapdragon 8 Gen 2",
					"display":   "6.73 inch AMOLED",
					"camera":    "50MP Triple Leica",
					"battery":   "4820mAh",
				},
				ImageURL: "https://example.com/xiaomi-13-pro.jpg",
			},
		},
	}
}
