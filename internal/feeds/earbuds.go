package feeds

import "electrorank/internal/domain"

// NewEarbudsProvider returns the earbuds feed.
func NewEarbudsProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "earbuds",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0BSDKL9QY",
				Name:        "Apple AirPods Pro 2nd Gen",
				Category:    "earbuds",
				Price:       26900,
				Rating:      4.6,
				ReviewCount: 9234,
				Brand:       "Apple",
				Specifications: map[string]string{
					"type":              "In-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "30 hours with case",
					"bluetooth":         "5.3",
					"waterResistance":   "IPX4",
				},
				ImageURL: "https://example.com/airpods-pro-2.jpg",
			},
			{
				ProductID:   "B0C4ZKY5ND",
				Name:        "Sony WF-1000XM5",
				Category:    "earbuds",
				Price:       24990,
				Rating:      4.5,
				ReviewCount: 6543,
				Brand:       "Sony",
				Specifications: map[string]string{
					"type":              "In-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "24 hours with case",
					"bluetooth":         "5.3",
					"waterResistance":   "IPX4",
				},
				ImageURL: "https://example.com/sony-wf1000xm5.jpg",
			},
			{
				ProductID:   "B0BHZX2N8L",
				Name:        "Samsung Galaxy Buds2 Pro",
				Category:    "earbuds",
				Price:       17990,
				Rating:      4.4,
				ReviewCount: 5432,
				Brand:       "Samsung",
				Specifications: map[string]string{
					"type":              "In-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "29 hours with case",
					"bluetooth":         "5.3",
					"waterResistance":   "IPX7",
				},
				ImageURL: "https://example.com/galaxy-buds2-pro.jpg",
			},
			{
				ProductID:   "B0C9P1YZNS",
				Name:        "OnePlus Buds Pro 2",
				Category:    "earbuds",
				Price:       11999,
				Rating:      4.3,
				ReviewCount: 8234,
				Brand:       "OnePlus",
				Specifications: map[string]string{
					"type":              "In-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "39 hours with case",
					"bluetooth":         "5.3",
					"waterResistance":   "IP55",
				},
				ImageURL: "https://example.com/oneplus-buds-pro2.jpg",
			},
			{
				ProductID:   "B0B9LQQNPY",
				Name:        "Nothing Ear (2)",
				Category:    "earbuds",
				Price:       8999,
				Rating:      4.2,
				ReviewCount: 12543,
				Brand:       "Nothing",
				Specifications: map[string]string{
					"type":              "In-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "36 hours with case",
					"bluetooth":         "5.3",
					"waterResistance":   "IP54",
				},
				ImageURL: "https://example.com/nothing-ear-2.jpg",
			},
		},
	}
}
