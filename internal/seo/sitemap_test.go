package seo

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"electrorank/internal/domain"

	"go.uber.org/zap"
)

type stubCategoryLister struct {
	categories []string
	err        error
}

func (s *stubCategoryLister) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.categories, s.err
}

type stubPageLog struct {
	pages []*domain.GeneratedPage
	err   error
}

func (s *stubPageLog) Recent(ctx context.Context, limit int) ([]*domain.GeneratedPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.pages) {
		return s.pages[:limit], nil
	}
	return s.pages, nil
}

func fixedAssembler(t *testing.T, store CategoryLister, pageLog PageLogReader) *Assembler {
	t.Helper()
	a := NewAssembler(store, pageLog, "https://electrorank.test", t.TempDir(), 100, zap.NewNop())
	a.now = func() time.Time { return time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC) }
	return a
}

func TestEntriesCoverHomeCategoriesAndRecentPages(t *testing.T) {
	store := &stubCategoryLister{categories: []string{"laptops", "mobiles"}}
	pageLog := &stubPageLog{pages: []*domain.GeneratedPage{
		{Type: domain.PageTypeCategory, Path: "category/mobiles.html"},
		{Type: domain.PageTypeProduct, Path: "product/B0BDJC6VX5.html"},
		{Type: domain.PageTypeComparison, Path: "compare/A1-vs-A2.html"},
	}}

	a := fixedAssembler(t, store, pageLog)
	entries, err := a.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}

	if len(entries) != 6 {
		t.Fatalf("got %d entries, want 6", len(entries))
	}

	want := []URLEntry{
		{Loc: "https://electrorank.test/", LastMod: "2025-06-15", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: "https://electrorank.test/category/laptops", LastMod: "2025-06-15", ChangeFreq: "daily", Priority: "0.9"},
		{Loc: "https://electrorank.test/category/mobiles", LastMod: "2025-06-15", ChangeFreq: "daily", Priority: "0.9"},
		{Loc: "https://electrorank.test/category/mobiles", LastMod: "2025-06-15", ChangeFreq: "daily", Priority: "0.9"},
		{Loc: "https://electrorank.test/product/B0BDJC6VX5", LastMod: "2025-06-15", ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: "https://electrorank.test/compare/A1-vs-A2", LastMod: "2025-06-15", ChangeFreq: "weekly", Priority: "0.7"},
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entry, want[i])
		}
	}
}

func TestEntriesNormalizeWindowsPaths(t *testing.T) {
	pageLog := &stubPageLog{pages: []*domain.GeneratedPage{
		{Type: domain.PageTypeProduct, Path: `product\B09G9BL5CP.html`},
	}}

	a := fixedAssembler(t, &stubCategoryLister{}, pageLog)
	entries, err := a.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}

	last := entries[len(entries)-1]
	if last.Loc != "https://electrorank.test/product/B09G9BL5CP" {
		t.Errorf("loc = %s, want backslashes replaced and .html stripped", last.Loc)
	}
}

func TestWriteSitemapIsIdempotent(t *testing.T) {
	store := &stubCategoryLister{categories: []string{"earbuds"}}
	pageLog := &stubPageLog{pages: []*domain.GeneratedPage{
		{Type: domain.PageTypeProduct, Path: "product/B0C1.html"},
	}}

	a := fixedAssembler(t, store, pageLog)

	path1, err := a.WriteSitemap(context.Background())
	if err != nil {
		t.Fatalf("first WriteSitemap failed: %v", err)
	}
	first, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("failed to read sitemap: %v", err)
	}

	path2, err := a.WriteSitemap(context.Background())
	if err != nil {
		t.Fatalf("second WriteSitemap failed: %v", err)
	}
	second, err := os.ReadFile(path2)
	if err != nil {
		t.Fatalf("failed to read sitemap: %v", err)
	}

	if string(first) != string(second) {
		t.Error("sitemap output differs between identical assembly runs")
	}

	var set struct {
		URLs []URLEntry `xml:"url"`
	}
	if err := xml.Unmarshal(first, &set); err != nil {
		t.Fatalf("sitemap is not well-formed XML: %v", err)
	}
	if len(set.URLs) != 3 {
		t.Errorf("sitemap has %d urls, want 3", len(set.URLs))
	}
}

func TestWriteSitemapPropagatesStoreErrors(t *testing.T) {
	a := fixedAssembler(t, &stubCategoryLister{err: errors.New("connection refused")}, &stubPageLog{})

	if _, err := a.WriteSitemap(context.Background()); err == nil {
		t.Error("expected error when category enumeration fails")
	}
}

func TestWriteRobotsPointsAtSitemap(t *testing.T) {
	a := fixedAssembler(t, &stubCategoryLister{}, &stubPageLog{})

	path, err := a.WriteRobots()
	if err != nil {
		t.Fatalf("WriteRobots failed: %v", err)
	}
	if filepath.Base(path) != "robots.txt" {
		t.Errorf("robots path = %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read robots.txt: %v", err)
	}
	if !strings.Contains(string(content), "Sitemap: https://electrorank.test/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap directive: %s", content)
	}
}

func TestPingSubmitsSitemapURL(t *testing.T) {
	var gotSitemap string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSitemap = r.URL.Query().Get("sitemap")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewPinger("https://electrorank.test", 2*time.Second, zap.NewNop())
	p.pingURL = server.URL

	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if gotSitemap != "https://electrorank.test/sitemap.xml" {
		t.Errorf("submitted sitemap = %s, want https://electrorank.test/sitemap.xml", gotSitemap)
	}
}

func TestPingReportsNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewPinger("https://electrorank.test", 2*time.Second, zap.NewNop())
	p.pingURL = server.URL

	if err := p.Ping(context.Background()); err == nil {
		t.Error("expected ping to a failing endpoint to return an error")
	}
}
