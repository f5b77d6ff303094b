package feeds

import "electrorank/internal/domain"

// NewHeadphonesProvider returns the headphones feed.
func NewHeadphonesProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "headphones",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0BXMQJN7R",
				Name:        "Sony WH-1000XM5",
				Category:    "headphones",
				Price:       29990,
				Rating:      4.6,
				ReviewCount: 8432,
				Brand:       "Sony",
				Specifications: map[string]string{
					"type":              "Over-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "30 hours",
					"bluetooth":         "5.2",
					"foldable":          "Yes",
				},
				ImageURL: "https://example.com/sony-wh1000xm5.jpg",
			},
			{
				ProductID:   "B0BHZX8K7L",
				Name:        "Bose QuietComfort 45",
				Category:    "headphones",
				Price:       32900,
				Rating:      4.5,
				ReviewCount: 6234,
				Brand:       "Bose",
				Specifications: map[string]string{
					"type":              "Over-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "24 hours",
					"bluetooth":         "5.1",
					"foldable":          "Yes",
				},
				ImageURL: "https://example.com/bose-qc45.jpg",
			},
			{
				ProductID:   "B0C5J9PXK2",
				Name:        "Apple AirPods Max",
				Category:    "headphones",
				Price:       59900,
				Rating:      4.4,
				ReviewCount: 3421,
				Brand:       "Apple",
				Specifications: map[string]string{
					"type":              "Over-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "20 hours",
					"bluetooth":         "5.0",
					"foldable":          "No",
				},
				ImageURL: "https://example.com/airpods-max.jpg",
			},
			{
				ProductID:   "B0BWQNW4L9",
				Name:        "JBL Tune 760NC",
				Category:    "headphones",
				Price:       7999,
				Rating:      4.2,
				ReviewCount: 15234,
				Brand:       "JBL",
				Specifications: map[string]string{
					"type":              "Over-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "35 hours",
					"bluetooth":         "5.0",
					"foldable":          "Yes",
				},
				ImageURL: "https://example.com/jbl-760nc.jpg",
			},
			{
				ProductID:   "B0C6HJKLMN",
				Name:        "Sennheiser Momentum 4",
				Category:    "headphones",
				Price:       34990,
				Rating:      4.5,
				ReviewCount: 4532,
				Brand:       "Sennheiser",
				Specifications: map[string]string{
					"type":              "Over-Ear",
					"wireless":          "Yes",
					"noiseCancellation": "Active",
					"battery":           "60 hours",
					"bluetooth":         "5.2",
					"foldable":          "Yes",
				},
				ImageURL: "https://example.com/sennheiser-momentum4.jpg",
			},
		},
	}
}
