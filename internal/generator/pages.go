package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"electrorank/internal/domain"
	"electrorank/internal/ranking"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProductStore is the slice of the product repository the generator needs.
// Candidate selection always reads from a single store snapshot before any
// page is rendered.
type ProductStore interface {
	TopByScore(ctx context.Context, limit int) ([]*domain.Product, error)
	ByCategory(ctx context.Context, category string, limit int) ([]*domain.Product, error)
	FindByProductID(ctx context.Context, productID string) (*domain.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// PageLog appends generation records to the append-only log.
type PageLog interface {
	Append(ctx context.Context, page *domain.GeneratedPage) error
}

const categoryPageSize = 20

// Generator renders category, product and comparison pages to the pages
// directory and records each one in the page log.
type Generator struct {
	store    ProductStore
	pageLog  PageLog
	renderer TemplateRenderer
	pagesDir string
	baseURL  string
	logger   *zap.Logger

	printer *message.Printer
	titler  cases.Caser
}

// New creates a page Generator.
func New(store ProductStore, pageLog PageLog, renderer TemplateRenderer, pagesDir, baseURL string, logger *zap.Logger) *Generator {
	return &Generator{
		store:    store,
		pageLog:  pageLog,
		renderer: renderer,
		pagesDir: pagesDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		printer:  message.NewPrinter(language.English),
		titler:   cases.Title(language.English),
	}
}

// CategoryPage renders the listing page for one category and logs it.
func (g *Generator) CategoryPage(ctx context.Context, category string) (*domain.GeneratedPage, error) {
	products, err := g.store.ByCategory(ctx, category, categoryPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", category, err)
	}

	var cards strings.Builder
	for _, product := range products {
		cards.WriteString(`<div class="product-card">`)
		fmt.Fprintf(&cards, `<h3><a href="/product/%s">%s</a></h3>`, product.ProductID, product.Name)
		fmt.Fprintf(&cards, `<div class="product-score">Score: %.2f</div>`, product.Score)
		fmt.Fprintf(&cards, `<div class="product-rating">%.1f/5 (%s reviews)</div>`, product.Rating, g.formatInt(product.ReviewCount))
		fmt.Fprintf(&cards, `<div class="product-price">₹%s</div>`, g.formatPrice(product.Price))
		cards.WriteString(`<ul class="product-specs">`)
		for i, spec := range sortedSpecs(product.Specifications) {
			if i >= 4 {
				break
			}
			fmt.Fprintf(&cards, "<li><strong>%s:</strong> %s</li>", spec.key, spec.value)
		}
		cards.WriteString(`</ul>`)
		fmt.Fprintf(&cards, `<a href="%s" class="cta-button" target="_blank" rel="nofollow">View on Amazon</a>`, product.AffiliateURL)
		cards.WriteString(`</div>`)
	}

	categories, err := g.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var links strings.Builder
	for _, cat := range categories {
		if cat == category {
			continue
		}
		fmt.Fprintf(&links, `<li><a href="/category/%s">Best %s</a></li>`, cat, g.titler.String(cat))
	}

	categoryName := g.titler.String(category)
	title := fmt.Sprintf("Best %s in India %d - Ranked by ElectroRank", categoryName, time.Now().Year())

	html, err := g.renderer.Render(TemplateCategory, map[string]string{
		"TITLE":          title,
		"DESCRIPTION":    fmt.Sprintf("Compare and find the best %s based on ratings, reviews, and price. Top %d %s ranked by our algorithm.", category, len(products), category),
		"KEYWORDS":       fmt.Sprintf("%s, best %s, buy %s, %s reviews, %s comparison", category, category, category, category, category),
		"CATEGORY_NAME":  categoryName,
		"HEADING":        fmt.Sprintf("Best %s in India %d", categoryName, time.Now().Year()),
		"INTRO_TEXT":     fmt.Sprintf("We've analyzed %d %s based on ratings, reviews, and pricing to help you make the best purchase decision. Our ElectroRank score combines multiple factors to rank products objectively.", len(products), category),
		"PRODUCTS":       cards.String(),
		"INTERNAL_LINKS": links.String(),
		"URL":            fmt.Sprintf("%s/category/%s", g.baseURL, category),
	})
	if err != nil {
		return nil, err
	}

	return g.save(ctx, domain.PageTypeCategory, "category/"+category+".html", title, html)
}

// ProductPage renders the detail page for one product and logs it.
func (g *Generator) ProductPage(ctx context.Context, productID string) (*domain.GeneratedPage, error) {
	product, err := g.store.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	var specs strings.Builder
	for _, spec := range sortedSpecs(product.Specifications) {
		fmt.Fprintf(&specs, `<div class="spec-item"><div class="spec-label">%s</div><div class="spec-value">%s</div></div>`,
			g.titler.String(spec.key), spec.value)
	}

	var pros strings.Builder
	pros.WriteString("<ul>")
	fmt.Fprintf(&pros, "<li>High ElectroRank score of %.2f</li>", product.Score)
	fmt.Fprintf(&pros, "<li>Rated %.1f/5 by %s users</li>", product.Rating, g.formatInt(product.ReviewCount))
	if product.Rating >= 4.5 {
		pros.WriteString("<li>Excellent user ratings</li>")
	}
	if product.ReviewCount >= 10000 {
		pros.WriteString("<li>Highly popular with extensive reviews</li>")
	}
	pros.WriteString("</ul>")

	var cons strings.Builder
	cons.WriteString("<ul>")
	if product.Rating < 4.0 {
		cons.WriteString("<li>Below average user ratings</li>")
	}
	if product.ReviewCount < 1000 {
		cons.WriteString("<li>Limited user reviews available</li>")
	}
	cons.WriteString("<li>Price may vary; check current offers on Amazon</li></ul>")

	description := fmt.Sprintf(
		"<p>The <strong>%s</strong> by %s has earned an ElectroRank score of %.2f, making it one of the top choices in its category.</p>"+
			"<p>With %s user reviews and an average rating of %.1f/5, this product has proven its worth in the market. Priced at ₹%s, it offers excellent value for your investment.</p>"+
			"<p>Our ranking algorithm considers multiple factors including user ratings, review volume, and pricing to provide you with an objective assessment.</p>",
		product.Name, product.Brand, product.Score, g.formatInt(product.ReviewCount), product.Rating, g.formatPrice(product.Price))

	related, err := g.store.ByCategory(ctx, product.Category, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}
	var links strings.Builder
	count := 0
	for _, p := range related {
		if p.ProductID == product.ProductID || count >= 4 {
			continue
		}
		fmt.Fprintf(&links, `<li><a href="/product/%s">%s</a></li>`, p.ProductID, p.Name)
		count++
	}

	title := fmt.Sprintf("%s Review - Price, Specs & Rating | ElectroRank", product.Name)

	html, err := g.renderer.Render(TemplateProduct, map[string]string{
		"TITLE":               title,
		"DESCRIPTION":         fmt.Sprintf("%s detailed review. ElectroRank Score: %.2f. Price: ₹%s. Rating: %.1f/5. Compare specs and buy from Amazon.", product.Name, product.Score, g.formatPrice(product.Price), product.Rating),
		"KEYWORDS":            fmt.Sprintf("%s, %s, %s, review, price, specifications", product.Name, product.Brand, product.Category),
		"PRODUCT_NAME":        product.Name,
		"CATEGORY":            product.Category,
		"CATEGORY_NAME":       g.titler.String(product.Category),
		"BRAND":               product.Brand,
		"PRICE":               g.formatPrice(product.Price),
		"RATING":              fmt.Sprintf("%.1f", product.Rating),
		"REVIEW_COUNT":        g.formatInt(product.ReviewCount),
		"SCORE":               fmt.Sprintf("%.2f", product.Score),
		"IMAGE_URL":           product.ImageURL,
		"AFFILIATE_URL":       product.AffiliateURL,
		"SPECIFICATIONS":      specs.String(),
		"DESCRIPTION_CONTENT": description,
		"PROS":                pros.String(),
		"CONS":                cons.String(),
		"INTERNAL_LINKS":      links.String(),
	})
	if err != nil {
		return nil, err
	}

	return g.save(ctx, domain.PageTypeProduct, "product/"+productID+".html", title, html)
}

// ComparisonPage renders a head-to-head page between two products and logs it.
func (g *Generator) ComparisonPage(ctx context.Context, productID1, productID2 string) (*domain.GeneratedPage, error) {
	product1, err := g.store.FindByProductID(ctx, productID1)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID1, err)
	}
	product2, err := g.store.FindByProductID(ctx, productID2)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID2, err)
	}

	comparison := ranking.Compare(*product1, *product2)

	var table strings.Builder
	table.WriteString("<table><thead><tr><th>Feature</th>")
	fmt.Fprintf(&table, "<th>%s</th><th>%s</th></tr></thead><tbody>", product1.Name, product2.Name)
	fmt.Fprintf(&table, `<tr><td><strong>ElectroRank Score</strong></td><td>%.2f</td><td>%.2f</td></tr>`, product1.Score, product2.Score)
	fmt.Fprintf(&table, `<tr><td><strong>Rating</strong></td><td>%.1f/5</td><td>%.1f/5</td></tr>`, product1.Rating, product2.Rating)
	fmt.Fprintf(&table, `<tr><td><strong>Reviews</strong></td><td>%s</td><td>%s</td></tr>`, g.formatInt(product1.ReviewCount), g.formatInt(product2.ReviewCount))
	fmt.Fprintf(&table, `<tr><td><strong>Price</strong></td><td>₹%s</td><td>₹%s</td></tr>`, g.formatPrice(product1.Price), g.formatPrice(product2.Price))
	fmt.Fprintf(&table, `<tr><td><strong>Brand</strong></td><td>%s</td><td>%s</td></tr>`, product1.Brand, product2.Brand)
	table.WriteString("</tbody></table>")

	detail := g.productSection(product1) + g.productSection(product2)

	verdict := fmt.Sprintf("<p>Based on our comprehensive analysis, <strong>%s</strong> wins with a score difference of %.2f.</p>"+
		"<p>However, your choice should depend on your specific needs and budget.</p>",
		comparison.Winner, comparison.ScoreDifference)

	categories, err := g.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var links strings.Builder
	for _, cat := range categories {
		fmt.Fprintf(&links, `<li><a href="/category/%s">View all %s</a></li>`, cat, cat)
	}

	title := fmt.Sprintf("%s vs %s - Detailed Comparison %d", product1.Name, product2.Name, time.Now().Year())
	pagePath := fmt.Sprintf("compare/%s-vs-%s.html", productID1, productID2)

	html, err := g.renderer.Render(TemplateComparison, map[string]string{
		"TITLE":            title,
		"DESCRIPTION":      fmt.Sprintf("Compare %s and %s. See specs, prices, ratings, and our verdict to help you choose the right product.", product1.Name, product2.Name),
		"KEYWORDS":         fmt.Sprintf("%s, %s, comparison, vs, which is better", product1.Name, product2.Name),
		"HEADING":          fmt.Sprintf("%s vs %s", product1.Name, product2.Name),
		"INTRO_TEXT":       fmt.Sprintf("Detailed comparison between %s and %s. We've analyzed specifications, pricing, user ratings, and reviews to help you make an informed decision.", product1.Name, product2.Name),
		"COMPARISON_TABLE": table.String(),
		"PRODUCTS_DETAIL":  detail,
		"VERDICT":          verdict,
		"INTERNAL_LINKS":   links.String(),
		"URL":              fmt.Sprintf("%s/compare/%s-vs-%s", g.baseURL, productID1, productID2),
	})
	if err != nil {
		return nil, err
	}

	return g.save(ctx, domain.PageTypeComparison, pagePath, title, html)
}

func (g *Generator) productSection(product *domain.Product) string {
	var section strings.Builder
	section.WriteString(`<div class="product-section">`)
	fmt.Fprintf(&section, "<h2>%s</h2>", product.Name)
	fmt.Fprintf(&section, `<div class="score-badge">Score: %.2f</div>`, product.Score)
	fmt.Fprintf(&section, `<div class="price">₹%s</div>`, g.formatPrice(product.Price))
	section.WriteString(`<ul class="specs-list">`)
	for _, spec := range sortedSpecs(product.Specifications) {
		fmt.Fprintf(&section, "<li><strong>%s:</strong> %s</li>", spec.key, spec.value)
	}
	section.WriteString("</ul>")
	fmt.Fprintf(&section, `<a href="%s" class="cta-button" target="_blank" rel="nofollow">View on Amazon</a>`, product.AffiliateURL)
	section.WriteString("</div>")
	return section.String()
}

// save writes the rendered document under the pages directory and appends a
// generation record to the log.
func (g *Generator) save(ctx context.Context, pageType domain.PageType, relPath, title, html string) (*domain.GeneratedPage, error) {
	fullPath := filepath.Join(g.pagesDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create page directory: %w", err)
	}
	if err := os.WriteFile(fullPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write page %s: %w", relPath, err)
	}

	page := &domain.GeneratedPage{
		Type:  pageType,
		Path:  relPath,
		Title: title,
	}
	if err := g.pageLog.Append(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to log page %s: %w", relPath, err)
	}

	return page, nil
}

func (g *Generator) formatPrice(price float64) string {
	return g.printer.Sprintf("%d", int64(price))
}

func (g *Generator) formatInt(n int) string {
	return g.printer.Sprintf("%d", n)
}

type specEntry struct {
	key   string
	value string
}

// sortedSpecs gives the unordered specifications map a stable render order.
func sortedSpecs(specs map[string]string) []specEntry {
	entries := make([]specEntry, 0, len(specs))
	for key, value := range specs {
		entries = append(entries, specEntry{key: key, value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}
