package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"electrorank/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) error
	FindByProductID(ctx context.Context, productID string) (*domain.Product, error)
	TopByScore(ctx context.Context, limit int) ([]*domain.Product, error)
	ByCategory(ctx context.Context, category string, limit int) ([]*domain.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	RecalculateScores(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `product_id, name, category, price, rating, review_count, score, brand, specifications, image_url, affiliate_url, created_at, last_updated`

// Upsert inserts a product or overwrites the existing row with the same
// product_id. A second ingestion of the same ID never duplicates a row; it
// overwrites all mutable fields and refreshes last_updated.
func (r *productRepository) Upsert(ctx context.Context, product *domain.Product) error {
	specs, err := json.Marshal(product.Specifications)
	if err != nil {
		return fmt.Errorf("failed to marshal specifications: %w", err)
	}

	query := `
		INSERT INTO products (product_id, name, category, price, rating, review_count, score, brand, specifications, image_url, affiliate_url, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (product_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			score = EXCLUDED.score,
			brand = EXCLUDED.brand,
			specifications = EXCLUDED.specifications,
			image_url = EXCLUDED.image_url,
			affiliate_url = EXCLUDED.affiliate_url,
			last_updated = NOW()
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		product.ProductID,
		product.Name,
		product.Category,
		product.Price,
		product.Rating,
		product.ReviewCount,
		product.Score,
		product.Brand,
		specs,
		product.ImageURL,
		product.AffiliateURL,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}

// FindByProductID retrieves a product by its external product ID
func (r *productRepository) FindByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// TopByScore retrieves the globally top products ordered by score descending.
// Ties are broken by product_id ascending so the ranking is stable.
func (r *productRepository) TopByScore(ctx context.Context, limit int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		ORDER BY score DESC, product_id ASC
		LIMIT $1
	`, productColumns)

	return r.queryProducts(ctx, query, limit)
}

// ByCategory retrieves the top products within a category, score descending
// with the same product_id tie-break as TopByScore.
func (r *productRepository) ByCategory(ctx context.Context, category string, limit int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE category = $1
		ORDER BY score DESC, product_id ASC
		LIMIT $2
	`, productColumns)

	return r.queryProducts(ctx, query, category, limit)
}

// DistinctCategories returns the distinct category values currently present,
// sorted ascending. Categories are derived, not stored entities.
func (r *productRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM products ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// RecalculateScores re-derives the score of every stored product from its
// stored rating, review count and price, and returns the number of rows
// touched. Running it twice with no ingestion in between yields identical
// scores and the same count both times.
func (r *productRepository) RecalculateScores(ctx context.Context) (int64, error) {
	query := `
		UPDATE products
		SET score = ROUND((rating * 2 + review_count / 1000.0 - price / 10000.0)::numeric, 2)
	`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to recalculate scores: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var specs []byte

	err := row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Rating,
		&product.ReviewCount,
		&product.Score,
		&product.Brand,
		&specs,
		&product.ImageURL,
		&product.AffiliateURL,
		&product.CreatedAt,
		&product.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &product.Specifications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
		}
	}
	if product.Specifications == nil {
		product.Specifications = map[string]string{}
	}

	return product, nil
}
