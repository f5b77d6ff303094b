package repository

import (
	"context"
	"testing"

	"electrorank/internal/domain"
)

func TestPageLogAppendsNeverOverwrite(t *testing.T) {
	repo := NewPageLogRepository(testDB)
	ctx := context.Background()

	if _, err := testDB.Exec("DELETE FROM generated_pages"); err != nil {
		t.Fatalf("failed to clear page log: %v", err)
	}

	// The same path logged twice must produce two rows: the log is history,
	// not a set.
	page1 := &domain.GeneratedPage{Type: domain.PageTypeCategory, Path: "category/mobiles.html", Title: "Best Mobiles"}
	page2 := &domain.GeneratedPage{Type: domain.PageTypeCategory, Path: "category/mobiles.html", Title: "Best Mobiles"}

	if err := repo.Append(ctx, page1); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := repo.Append(ctx, page2); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	if page1.ID == 0 || page2.ID == 0 {
		t.Error("append did not assign IDs")
	}
	if page1.ID == page2.ID {
		t.Error("both appends got the same ID")
	}

	var count int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM generated_pages WHERE page_path = $1", page1.Path).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 log rows for repeated path, got %d", count)
	}

	_, _ = testDB.Exec("DELETE FROM generated_pages")
}

func TestPageLogRecentReturnsNewestFirst(t *testing.T) {
	repo := NewPageLogRepository(testDB)
	ctx := context.Background()

	if _, err := testDB.Exec("DELETE FROM generated_pages"); err != nil {
		t.Fatalf("failed to clear page log: %v", err)
	}

	paths := []string{"category/laptops.html", "product/B0B7XB8KNL.html", "compare/A-vs-B.html"}
	types := []domain.PageType{domain.PageTypeCategory, domain.PageTypeProduct, domain.PageTypeComparison}
	for i := range paths {
		page := &domain.GeneratedPage{Type: types[i], Path: paths[i], Title: paths[i]}
		if err := repo.Append(ctx, page); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(recent))
	}

	// Newest first: the comparison page was appended last
	if recent[0].Path != "compare/A-vs-B.html" {
		t.Errorf("newest entry = %s, want compare/A-vs-B.html", recent[0].Path)
	}
	if recent[1].Path != "product/B0B7XB8KNL.html" {
		t.Errorf("second entry = %s, want product/B0B7XB8KNL.html", recent[1].Path)
	}

	_, _ = testDB.Exec("DELETE FROM generated_pages")
}
