package generator

import (
	"context"
	"fmt"

	"electrorank/internal/domain"

	"go.uber.org/zap"
)

// PageRef is one successfully generated page, in generation order.
type PageRef struct {
	Type domain.PageType `json:"type"`
	Path string          `json:"path"`
}

// Generate runs one page-generation pass under the given quota:
//
//  1. Every existing category page is regenerated unconditionally; category
//     pages never count against the quota.
//  2. The globally top-quota products get product pages, in rank order. A
//     failed render is logged and skipped without consuming budget.
//  3. If budget remains, exactly one comparison page is generated from the
//     first two products of the first-enumerated category's top 4. Fewer
//     than two products means no comparison page and no error.
//
// With zero categories the pass does nothing and returns an empty list. The
// candidate set is computed up front from a single store snapshot.
func (g *Generator) Generate(ctx context.Context, quota int) ([]PageRef, error) {
	generated := []PageRef{}

	categories, err := g.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate categories: %w", err)
	}
	if len(categories) == 0 {
		g.logger.Info("No categories found, skipping page generation")
		return generated, nil
	}

	// Select all candidates before rendering anything
	topProducts, err := g.store.TopByScore(ctx, quota)
	if err != nil {
		return nil, fmt.Errorf("failed to select top products: %w", err)
	}
	firstCategoryProducts, err := g.store.ByCategory(ctx, categories[0], 4)
	if err != nil {
		return nil, fmt.Errorf("failed to select comparison candidates: %w", err)
	}

	for _, category := range categories {
		page, err := g.CategoryPage(ctx, category)
		if err != nil {
			g.logger.Warn("Failed to generate category page",
				zap.String("category", category),
				zap.Error(err),
			)
			continue
		}
		generated = append(generated, PageRef{Type: page.Type, Path: page.Path})
	}

	budgetUsed := 0
	for _, product := range topProducts {
		if budgetUsed >= quota {
			break
		}
		page, err := g.ProductPage(ctx, product.ProductID)
		if err != nil {
			// A failed candidate does not consume budget
			g.logger.Warn("Failed to generate product page",
				zap.String("product_id", product.ProductID),
				zap.Error(err),
			)
			continue
		}
		generated = append(generated, PageRef{Type: page.Type, Path: page.Path})
		budgetUsed++
	}

	if budgetUsed < quota && len(firstCategoryProducts) >= 2 {
		page, err := g.ComparisonPage(ctx, firstCategoryProducts[0].ProductID, firstCategoryProducts[1].ProductID)
		if err != nil {
			g.logger.Warn("Failed to generate comparison page",
				zap.String("product_id_1", firstCategoryProducts[0].ProductID),
				zap.String("product_id_2", firstCategoryProducts[1].ProductID),
				zap.Error(err),
			)
		} else {
			generated = append(generated, PageRef{Type: page.Type, Path: page.Path})
			budgetUsed++
		}
	}

	g.logger.Info("Page generation pass complete",
		zap.Int("categories", len(categories)),
		zap.Int("pages", len(generated)),
		zap.Int("budget_used", budgetUsed),
	)

	return generated, nil
}
