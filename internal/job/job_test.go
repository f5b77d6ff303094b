package job

import (
	"context"
	"errors"
	"testing"

	"electrorank/internal/domain"
	"electrorank/internal/feeds"
	"electrorank/internal/generator"

	"go.uber.org/zap"
)

type fakeProvider struct {
	category string
	products []domain.Product
	err      error
}

func (f *fakeProvider) Category() string { return f.category }

func (f *fakeProvider) Fetch(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

type fakeStore struct {
	upserted    map[string]*domain.Product
	upsertErrOn string
	recalcErr   error
	recalcCount int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{upserted: map[string]*domain.Product{}}
}

func (f *fakeStore) Upsert(ctx context.Context, product *domain.Product) error {
	if product.ProductID == f.upsertErrOn {
		return errors.New("simulated upsert failure")
	}
	copied := *product
	f.upserted[product.ProductID] = &copied
	return nil
}

func (f *fakeStore) RecalculateScores(ctx context.Context) (int64, error) {
	if f.recalcErr != nil {
		return 0, f.recalcErr
	}
	if f.recalcCount > 0 {
		return f.recalcCount, nil
	}
	return int64(len(f.upserted)), nil
}

type fakeGenerator struct {
	pages []generator.PageRef
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, quota int) ([]generator.PageRef, error) {
	f.calls++
	return f.pages, f.err
}

type fakeSitemap struct {
	sitemapCalls int
	robotsCalls  int
	err          error
}

func (f *fakeSitemap) WriteSitemap(ctx context.Context) (string, error) {
	f.sitemapCalls++
	return "seo/sitemap.xml", f.err
}

func (f *fakeSitemap) WriteRobots() (string, error) {
	f.robotsCalls++
	return "seo/robots.txt", f.err
}

type fakePinger struct {
	calls int
	err   error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls++
	return f.err
}

func product(id, category string) domain.Product {
	return domain.Product{ProductID: id, Name: "Product " + id, Category: category, Rating: 4.2, ReviewCount: 1000, Price: 9999}
}

func TestRunHappyPathCountsEveryStage(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles"), product("M2", "mobiles")}},
		&fakeProvider{category: "laptops", products: []domain.Product{product("L1", "laptops")}},
	}
	store := newFakeStore()
	pageGen := &fakeGenerator{pages: []generator.PageRef{
		{Type: domain.PageTypeCategory, Path: "category/mobiles.html"},
		{Type: domain.PageTypeProduct, Path: "product/M1.html"},
	}}
	sitemap := &fakeSitemap{}
	pinger := &fakePinger{}

	o := New(providers, store, pageGen, sitemap, pinger, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.RunID == "" {
		t.Error("summary has no run ID")
	}
	if summary.ProductsIngested != 3 {
		t.Errorf("ProductsIngested = %d, want 3", summary.ProductsIngested)
	}
	if summary.ScoresUpdated != 3 {
		t.Errorf("ScoresUpdated = %d, want 3", summary.ScoresUpdated)
	}
	if summary.PagesGenerated != 2 {
		t.Errorf("PagesGenerated = %d, want 2", summary.PagesGenerated)
	}
	if sitemap.sitemapCalls != 1 || sitemap.robotsCalls != 1 {
		t.Errorf("sitemap calls = %d/%d, want 1/1", sitemap.sitemapCalls, sitemap.robotsCalls)
	}
	if pinger.calls != 1 {
		t.Errorf("ping calls = %d, want 1", pinger.calls)
	}
}

func TestRunIsolatesFailingFeed(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", err: errors.New("scrape blocked")},
		&fakeProvider{category: "laptops", products: []domain.Product{product("L1", "laptops"), product("L2", "laptops")}},
	}
	store := newFakeStore()
	o := New(providers, store, &fakeGenerator{}, &fakeSitemap{}, &fakePinger{}, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed despite feed isolation: %v", err)
	}

	if summary.ProductsIngested != 2 {
		t.Errorf("ProductsIngested = %d, want 2 from the healthy feed", summary.ProductsIngested)
	}
	if _, ok := store.upserted["L1"]; !ok {
		t.Error("healthy feed product L1 was not ingested")
	}
}

func TestRunUpsertFailureAbandonsOnlyThatFeed(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles"), product("M2", "mobiles"), product("M3", "mobiles")}},
		&fakeProvider{category: "laptops", products: []domain.Product{product("L1", "laptops")}},
	}
	store := newFakeStore()
	store.upsertErrOn = "M2"
	o := New(providers, store, &fakeGenerator{}, &fakeSitemap{}, &fakePinger{}, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// M1 landed before the failure, M3 was abandoned with its feed, L1 is
	// from the next feed and unaffected.
	if summary.ProductsIngested != 2 {
		t.Errorf("ProductsIngested = %d, want 2", summary.ProductsIngested)
	}
	if _, ok := store.upserted["M3"]; ok {
		t.Error("product after the failing upsert should have been abandoned")
	}
	if _, ok := store.upserted["L1"]; !ok {
		t.Error("following feed should still have been ingested")
	}
}

func TestRunRecalcFailureAbortsRemainingStages(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles")}},
	}
	store := newFakeStore()
	store.recalcErr = errors.New("connection reset")
	pageGen := &fakeGenerator{}
	sitemap := &fakeSitemap{}
	pinger := &fakePinger{}

	o := New(providers, store, pageGen, sitemap, pinger, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err == nil {
		t.Fatal("expected fatal error from score recalculation")
	}

	if pageGen.calls != 0 {
		t.Error("page generation ran after a fatal store error")
	}
	if sitemap.sitemapCalls != 0 || pinger.calls != 0 {
		t.Error("sitemap/ping stages ran after a fatal store error")
	}
	if summary.ProductsIngested != 1 {
		t.Errorf("partial summary lost ingestion count: %d", summary.ProductsIngested)
	}
	if summary.RunID == "" {
		t.Error("partial summary has no run ID")
	}
}

func TestRunGenerationFailureReturnsPartialSummary(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles")}},
	}
	store := newFakeStore()
	pageGen := &fakeGenerator{err: errors.New("store unavailable")}
	sitemap := &fakeSitemap{}

	o := New(providers, store, pageGen, sitemap, &fakePinger{}, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err == nil {
		t.Fatal("expected fatal error from page generation")
	}
	if summary.ScoresUpdated != 1 {
		t.Errorf("partial summary lost recalc count: %d", summary.ScoresUpdated)
	}
	if sitemap.sitemapCalls != 0 {
		t.Error("sitemap stage ran after a fatal generation error")
	}
}

func TestRunSitemapFailureDoesNotFailRun(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles")}},
	}
	pageGen := &fakeGenerator{pages: []generator.PageRef{
		{Type: domain.PageTypeProduct, Path: "product/M1.html"},
	}}
	sitemap := &fakeSitemap{err: errors.New("disk full")}
	pinger := &fakePinger{}

	o := New(providers, newFakeStore(), pageGen, sitemap, pinger, 5, zap.NewNop())

	summary, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("sitemap failure must not fail the run: %v", err)
	}

	// The freshness stage failed, but every count before it survives
	if summary.ProductsIngested != 1 {
		t.Errorf("ProductsIngested = %d, want 1", summary.ProductsIngested)
	}
	if summary.PagesGenerated != 1 {
		t.Errorf("PagesGenerated = %d, want 1", summary.PagesGenerated)
	}

	// Nothing new was published, so there is nothing to submit
	if pinger.calls != 0 {
		t.Errorf("ping calls = %d, want 0 after sitemap failure", pinger.calls)
	}
}

func TestRunPingFailureDoesNotFailRun(t *testing.T) {
	providers := []feeds.Provider{
		&fakeProvider{category: "mobiles", products: []domain.Product{product("M1", "mobiles")}},
	}
	o := New(providers, newFakeStore(), &fakeGenerator{}, &fakeSitemap{}, &fakePinger{err: errors.New("timeout")}, 5, zap.NewNop())

	if _, err := o.Run(context.Background()); err != nil {
		t.Errorf("ping failure must not fail the run: %v", err)
	}
}
