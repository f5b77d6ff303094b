package ranking

import (
	"math"
	"sort"

	"electrorank/internal/domain"
)

// Score computes the ranking score for a product:
//
//	score = rating*2 + reviewCount/1000 - price/10000
//
// rounded to 2 decimal places, half away from zero. Zero values are valid
// inputs; missing fields arrive here as 0 and never produce an error. There
// is no clamp: scores can be negative or exceed 10.
func Score(rating float64, reviewCount int, price float64) float64 {
	score := rating*2 + float64(reviewCount)/1000 - price/10000
	return math.Round(score*100) / 100
}

// Rank sorts products by score descending. Equal scores fall back to
// ProductID ascending so the ordering is deterministic; downstream page
// selection depends on a stable top-N.
func Rank(products []domain.Product) []domain.Product {
	ranked := make([]domain.Product, len(products))
	copy(ranked, products)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	return ranked
}

// TopN returns the first n products of the ranking. It returns fewer when
// there are fewer products.
func TopN(products []domain.Product, n int) []domain.Product {
	ranked := Rank(products)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Compare runs a head-to-head between two products. The winner is the one
// with the strictly greater score; on an exact tie the product with the
// lexicographically smaller ProductID wins.
func Compare(a, b domain.Product) domain.Comparison {
	winner := a.Name
	switch {
	case b.Score > a.Score:
		winner = b.Name
	case b.Score == a.Score && b.ProductID < a.ProductID:
		winner = b.Name
	}

	return domain.Comparison{
		Product1:        a,
		Product2:        b,
		Winner:          winner,
		ScoreDifference: math.Round(math.Abs(a.Score-b.Score)*100) / 100,
		PriceDifference: math.Round(math.Abs(a.Price-b.Price)*100) / 100,
	}
}
