package feeds

import "electrorank/internal/domain"

// NewAccessoriesProvider returns the accessories feed.
func NewAccessoriesProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "accessories",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0BJKL3M4N",
				Name:        "Anker PowerCore 20000mAh",
				Category:    "accessories",
				Price:       3999,
				Rating:      4.5,
				ReviewCount: 23456,
				Brand:       "Anker",
				Specifications: map[string]string{
					"type":         "Power Bank",
					"capacity":     "20000mAh",
					"ports":        "2x USB-A, 1x USB-C",
					"fastCharging": "Yes",
					"weight":       "356g",
				},
				ImageURL: "https://example.com/anker-powercore.jpg",
			},
			{
				ProductID:   "B0C7KL8M9N",
				Name:        "Samsung 45W Fast Charger",
				Category:    "accessories",
				Price:       2499,
				Rating:      4.4,
				ReviewCount: 18234,
				Brand:       "Samsung",
				Specifications: map[string]string{
					"type":         "Wall Charger",
					"power":        "45W",
					"ports":        "1x USB-C",
					"cable":        "Included",
					"fastCharging": "Super Fast Charging 2.0",
				},
				ImageURL: "https://example.com/samsung-charger.jpg",
			},
			{
				ProductID:   "B0BHKL9M2N",
				Name:        "SanDisk Ultra 128GB microSD",
				Category:    "accessories",
				Price:       899,
				Rating:      4.3,
				ReviewCount: 34567,
				Brand:       "SanDisk",
				Specifications: map[string]string{
					"type":          "Memory Card",
					"capacity":      "128GB",
					"speed":         "Up to 120MB/s",
					"class":         "Class 10, U1, A1",
					"compatibility": "Android devices",
				},
				ImageURL: "https://example.com/sandisk-ultra.jpg",
			},
			{
				ProductID:   "B0C8KLMN3P",
				Name:        "Belkin BoostCharge 3-in-1 Wireless Charger",
				Category:    "accessories",
				Price:       12999,
				Rating:      4.5,
				ReviewCount: 6234,
				Brand:       "Belkin",
				Specifications: map[string]string{
					"type":          "Wireless Charger",
					"devices":       "Phone, Watch, Earbuds",
					"power":         "15W",
					"compatibility": "Qi-enabled devices",
					"led":           "Yes",
				},
				ImageURL: "https://example.com/belkin-3in1.jpg",
			},
			{
				ProductID:   "B0BJKLM4N5",
				Name:        "Apple USB-C to Lightning Cable",
				Category:    "accessories",
				Price:       1900,
				Rating:      4.6,
				ReviewCount: 45678,
				Brand:       "Apple",
				Specifications: map[string]string{
					"type":         "Cable",
					"length":       "1m",
					"connectors":   "USB-C to Lightning",
					"fastCharging": "Yes",
					"mfi":          "Certified",
				},
				ImageURL: "https://example.com/apple-cable.jpg",
			},
		},
	}
}
