package feeds

import "electrorank/internal/domain"

// NewLaptopsProvider returns the laptops feed.
func NewLaptopsProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "laptops",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0B7XB8KNL",
				Name:        "Apple MacBook Air M2",
				Category:    "laptops",
				Price:       114900,
				Rating:      4.7,
				ReviewCount: 3421,
				Brand:       "Apple",
				Specifications: map[string]string{
					"processor": "Apple M2",
					"ram":       "8GB",
					"storage":   "256GB SSD",
					"display":   "13.6 inch Liquid Retina",
					"graphics":  "Integrated",
					"os":        "macOS",
				},
				ImageURL: "https://example.com/macbook-air-m2.jpg",
			},
			{
				ProductID:   "B0BSHF69LN",
				Name:        "Dell XPS 13",
				Category:    "laptops",
				Price:       124990,
				Rating:      4.5,
				ReviewCount: 2134,
				Brand:       "Dell",
				Specifications: map[string]string{
					"processor": "Intel Core i7-1360P",
					"ram":       "16GB",
					"storage":   "512GB SSD",
					"display":   "13.4 inch FHD+",
					"graphics":  "Intel Iris Xe",
					"os":        "Windows 11",
				},
				ImageURL: "https://example.com/dell-xps-13.jpg",
			},
			{
				ProductID:   "B0BKQYB8L8",
				Name:        "HP Pavilion 15",
				Category:    "laptops",
				Price:       52990,
				Rating:      4.2,
				ReviewCount: 8932,
				Brand:       "HP",
				Specifications: map[string]string{
					"processor": "Intel Core i5-1235U",
					"ram":       "8GB",
					"storage":   "512GB SSD",
					"display":   "15.6 inch FHD",
					"graphics":  "Intel UHD",
					"os":        "Windows 11",
				},
				ImageURL: "https://example.com/hp-pavilion-15.jpg",
			},
			{
				ProductID:   "B0BW5LQKRN",
				Name:        "Lenovo ThinkPad E14",
				Category:    "laptops",
				Price:       65990,
				Rating:      4.4,
				ReviewCount: 5621,
				Brand:       "Lenovo",
				Specifications: map[string]string{
					"processor": "AMD Ryzen 5 5500U",
					"ram":       "16GB",
					"storage":   "512GB SSD",
					"display":   "14 inch FHD",
					"graphics":  "AMD Radeon",
					"os":        "Windows 11",
				},
				ImageURL: "https://example.com/lenovo-thinkpad-e14.jpg",
			},
			{
				ProductID:   "B0C4P4M2NX",
				Name:        "ASUS TUF Gaming A15",
				Category:    "laptops",
				Price:       74990,
				Rating:      4.3,
				ReviewCount: 7234,
				Brand:       "ASUS",
				Specifications: map[string]string{
					"processor": "AMD Ryzen 7 5800H",
					"ram":       "16GB",
					"storage":   "512GB SSD",
					"display":   "15.6 inch FHD 144Hz",
					"graphics":  "NVIDIA RTX 3050",
					"os":        "Windows 11",
				},
				ImageURL: "https://example.com/asus-tuf-a15.jpg",
			},
		},
	}
}
