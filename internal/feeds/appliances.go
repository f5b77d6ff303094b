package feeds

import "electrorank/internal/domain"

// NewAppliancesProvider returns the home appliances feed.
func NewAppliancesProvider(affiliateTag string) Provider {
	return &staticProvider{
		category:     "appliances",
		affiliateTag: affiliateTag,
		catalog: []domain.Product{
			{
				ProductID:   "B0BKLMN6P7",
				Name:        "Dyson V15 Detect Absolute",
				Category:    "appliances",
				Price:       58900,
				Rating:      4.6,
				ReviewCount: 3421,
				Brand:       "Dyson",
				Specifications: map[string]string{
					"type":     "Vacuum Cleaner",
					"cordless": "Yes",
					"runtime":  "60 minutes",
					"suction":  "230 AW",
					"weight":   "3.1 kg",
					"features": "Laser detection, LCD screen",
				},
				ImageURL: "https://example.com/dyson-v15.jpg",
			},
			{
				ProductID:   "B0C9KLMN7Q",
				Name:        "Philips Air Purifier AC2887",
				Category:    "appliances",
				Price:       27999,
				Rating:      4.5,
				ReviewCount: 8234,
				Brand:       "Philips",
				Specifications: map[string]string{
					"type":     "Air Purifier",
					"coverage": "636 sq ft",
					"cadr":     "333 m³/h",
					"filters":  "HEPA + Carbon",
					"features": "Smart sensors, App control",
					"noise":    "20.5 dB",
				},
				ImageURL: "https://example.com/philips-ac2887.jpg",
			},
			{
				ProductID:   "B0BHKLM8N9",
				Name:        "iRobot Roomba i7+",
				Category:    "appliances",
				Price:       67990,
				Rating:      4.4,
				ReviewCount: 4532,
				Brand:       "iRobot",
				Specifications: map[string]string{
					"type":      "Robot Vacuum",
					"autoEmpty": "Yes",
					"mapping":   "Smart Mapping",
					"battery":   "75 minutes",
					"features":  "WiFi, Alexa compatible",
					"dustbin":   "Auto-disposal",
				},
				ImageURL: "https://example.com/roomba-i7.jpg",
			},
			{
				ProductID:   "B0C6KLMN8P",
				Name:        "Kent Grand Plus RO Water Purifier",
				Category:    "appliances",
				Price:       18999,
				Rating:      4.3,
				ReviewCount: 15234,
				Brand:       "Kent",
				Specifications: map[string]string{
					"type":         "Water Purifier",
					"technology":   "RO + UV + UF + TDS",
					"capacity":     "8 Liters",
					"purification": "20 liters/hour",
					"warranty":     "1 year",
					"installation": "Wall-mounted",
				},
				ImageURL: "https://example.com/kent-grand.jpg",
			},
			{
				ProductID:   "B0BJKLMN9R",
				Name:        "Morphy Richards OFR 9 Oil Heater",
				Category:    "appliances",
				Price:       7499,
				Rating:      4.2,
				ReviewCount: 12543,
				Brand:       "Morphy Richards",
				Specifications: map[string]string{
					"type":     "Room Heater",
					"power":    "2400W",
					"fins":     "9 fins",
					"coverage": "Medium rooms",
					"features": "3 heat settings, Thermostat",
					"safety":   "Overheat protection",
				},
				ImageURL: "https://example.com/morphy-heater.jpg",
			},
		},
	}
}
