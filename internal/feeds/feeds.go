// Package feeds provides per-category product feed providers. The bundled
// providers return fixed catalogs so the rest of the pipeline can run
// offline; a network-backed provider only has to satisfy Provider.
package feeds

import (
	"context"
	"fmt"

	"electrorank/internal/domain"
	"electrorank/internal/ranking"
)

// Provider fetches the raw products of one category. Fetch may fail; the
// orchestrator isolates failures per provider.
type Provider interface {
	Category() string
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// AffiliateURL builds the Amazon affiliate URL for a product ID.
func AffiliateURL(productID, tag string) string {
	return fmt.Sprintf("https://www.amazon.in/dp/%s?tag=%s", productID, tag)
}

// All returns the default provider set, one per supported category.
func All(affiliateTag string) []Provider {
	return []Provider{
		NewMobilesProvider(affiliateTag),
		NewLaptopsProvider(affiliateTag),
		NewEarbudsProvider(affiliateTag),
		NewHeadphonesProvider(affiliateTag),
		NewAccessoriesProvider(affiliateTag),
		NewAppliancesProvider(affiliateTag),
	}
}

// staticProvider serves a fixed catalog, attaching scores and affiliate URLs
// the same way a scraping provider would after normalization.
type staticProvider struct {
	category     string
	affiliateTag string
	catalog      []domain.Product
}

func (p *staticProvider) Category() string {
	return p.category
}

func (p *staticProvider) Fetch(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(p.catalog))
	for i, product := range p.catalog {
		product.Score = ranking.Score(product.Rating, product.ReviewCount, product.Price)
		product.AffiliateURL = AffiliateURL(product.ProductID, p.affiliateTag)
		products[i] = product
	}
	return products, nil
}
