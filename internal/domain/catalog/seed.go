package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed returns the built-in product reference set. Product data would
// typically come from an upstream catalog service.
func Seed() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Boho Perlen Armband",
			Price:         price("29.90"),
			OriginalPrice: price("39.90"),
			Image:         "/assets/images/products/bracelet1.jpg",
			Category:      "bracelets",
			Tags:          []string{"boho", "perlen", "handgemacht"},
			Description:   "Handgefertigtes Boho-Armband aus natürlichen Perlen und Gold-Akzenten.",
			InStock:       true,
			Stock:         10,
			Rating:        4.5,
			Reviews:       23,
			Options: map[string][]string{
				"size":  {"S", "M", "L"},
				"color": {"Gold", "Silber", "Rose Gold"},
			},
		},
		{
			ID:          "2",
			Name:        "Goldene Halskette mit Anhänger",
			Price:       price("49.90"),
			Image:       "/assets/images/products/necklace1.jpg",
			Category:    "necklaces",
			Tags:        []string{"gold", "anhänger", "elegant"},
			Description: "Elegante goldene Halskette mit handgefertigtem Anhänger.",
			InStock:     true,
			Stock:       5,
			Rating:      4.8,
			Reviews:     15,
			Options: map[string][]string{
				"length": {"40cm", "45cm", "50cm"},
				"color":  {"Gold", "Rose Gold"},
			},
		},
		{
			ID:          "3",
			Name:        "Perlenkette mit Edelsteinen",
			Price:       price("39.90"),
			Image:       "/assets/images/products/necklace2.jpg",
			Category:    "necklaces",
			Tags:        []string{"perlen", "edelsteine", "boho"},
			Description: "Wunderschöne Perlenkette mit echten Edelsteinen.",
			InStock:     true,
			Stock:       8,
			Rating:      4.3,
			Reviews:     31,
			Options: map[string][]string{
				"length": {"42cm", "47cm"},
				"color":  {"Multicolor", "Weiß", "Rosa"},
			},
		},
		{
			ID:          "4",
			Name:        "Fußkettchen mit Glöckchen",
			Price:       price("19.90"),
			Image:       "/assets/images/products/anklet1.jpg",
			Category:    "anklets",
			Tags:        []string{"fußkettchen", "glöckchen", "sommer"},
			Description: "Süßes Fußkettchen mit kleinen Glöckchen.",
			InStock:     true,
			Stock:       12,
			Rating:      4.1,
			Reviews:     8,
			Options: map[string][]string{
				"size":  {"One Size"},
				"color": {"Gold", "Silber"},
			},
		},
		{
			ID:          "5",
			Name:        "Boho Ohrringe Set",
			Price:       price("24.90"),
			Image:       "/assets/images/products/earrings1.jpg",
			Category:    "fashion-jewelry",
			Tags:        []string{"ohrringe", "boho", "set"},
			Description: "Set aus 3 verschiedenen Boho-Ohrringen.",
			InStock:     true,
			Stock:       6,
			Rating:      4.6,
			Reviews:     12,
			Options: map[string][]string{
				"type": {"Set 1", "Set 2", "Set 3"},
			},
		},
		{
			ID:            "6",
			Name:          "Leder Handtasche",
			Price:         price("89.90"),
			OriginalPrice: price("119.90"),
			Image:         "/assets/images/products/bag1.jpg",
			Category:      "bags",
			Tags:          []string{"leder", "handtasche", "boho"},
			Description:   "Echte Leder Handtasche im Boho-Stil.",
			InStock:       true,
			Stock:         4,
			Rating:        4.7,
			Reviews:       19,
			Options: map[string][]string{
				"color": {"Braun", "Schwarz", "Beige"},
			},
		},
	}
}
