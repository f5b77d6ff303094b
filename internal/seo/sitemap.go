package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"electrorank/internal/domain"

	"go.uber.org/zap"
)

// CategoryLister enumerates the categories currently in the store.
type CategoryLister interface {
	DistinctCategories(ctx context.Context) ([]string, error)
}

// PageLogReader reads the tail of the page generation log, newest first.
type PageLogReader interface {
	Recent(ctx context.Context, limit int) ([]*domain.GeneratedPage, error)
}

// URLEntry is one <url> element of the sitemap.
type URLEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []URLEntry `xml:"url"`
}

// Assembler builds sitemap.xml and robots.txt from the current store state
// and the recent tail of the page log.
type Assembler struct {
	store   CategoryLister
	pageLog PageLogReader
	baseURL string
	seoDir  string
	recent  int
	logger  *zap.Logger

	now func() time.Time
}

// NewAssembler creates a sitemap Assembler. recent caps how many page log
// entries are folded into the sitemap.
func NewAssembler(store CategoryLister, pageLog PageLogReader, baseURL, seoDir string, recent int, logger *zap.Logger) *Assembler {
	return &Assembler{
		store:   store,
		pageLog: pageLog,
		baseURL: strings.TrimRight(baseURL, "/"),
		seoDir:  seoDir,
		recent:  recent,
		logger:  logger,
		now:     time.Now,
	}
}

// Entries assembles the sitemap URL entries: the home page, one entry per
// category, then the most recent page log entries newest first. Every entry
// carries the assembly date as lastmod.
func (a *Assembler) Entries(ctx context.Context) ([]URLEntry, error) {
	today := a.now().Format("2006-01-02")

	entries := []URLEntry{{
		Loc:        a.baseURL + "/",
		LastMod:    today,
		ChangeFreq: "daily",
		Priority:   "1.0",
	}}

	categories, err := a.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate categories: %w", err)
	}
	for _, category := range categories {
		entries = append(entries, URLEntry{
			Loc:        fmt.Sprintf("%s/category/%s", a.baseURL, category),
			LastMod:    today,
			ChangeFreq: "daily",
			Priority:   "0.9",
		})
	}

	pages, err := a.pageLog.Recent(ctx, a.recent)
	if err != nil {
		return nil, fmt.Errorf("failed to read page log: %w", err)
	}
	for _, page := range pages {
		changefreq, priority := pageProfile(page.Type)
		entries = append(entries, URLEntry{
			Loc:        a.baseURL + "/" + normalizePath(page.Path),
			LastMod:    today,
			ChangeFreq: changefreq,
			Priority:   priority,
		})
	}

	return entries, nil
}

// WriteSitemap assembles the entries and writes sitemap.xml into the SEO
// directory. The output is deterministic for a given store and log state.
func (a *Assembler) WriteSitemap(ctx context.Context) (string, error) {
	entries, err := a.Entries(ctx)
	if err != nil {
		return "", err
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	if err := os.MkdirAll(a.seoDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create seo directory: %w", err)
	}

	path := filepath.Join(a.seoDir, "sitemap.xml")
	content := append([]byte(xml.Header), body...)
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write sitemap: %w", err)
	}

	a.logger.Info("Sitemap written",
		zap.String("path", path),
		zap.Int("urls", len(entries)),
	)

	return path, nil
}

// WriteRobots writes robots.txt pointing crawlers at the sitemap.
func (a *Assembler) WriteRobots() (string, error) {
	if err := os.MkdirAll(a.seoDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create seo directory: %w", err)
	}

	content := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.baseURL)
	path := filepath.Join(a.seoDir, "robots.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write robots.txt: %w", err)
	}

	return path, nil
}

// pageProfile maps a page type to its sitemap changefreq and priority.
func pageProfile(pageType domain.PageType) (string, string) {
	switch pageType {
	case domain.PageTypeCategory:
		return "daily", "0.9"
	case domain.PageTypeProduct:
		return "weekly", "0.8"
	default:
		return "weekly", "0.7"
	}
}

// normalizePath turns a stored page path into its public URL path: backslash
// separators become forward slashes and the .html suffix is dropped.
func normalizePath(path string) string {
	normalized := strings.ReplaceAll(path, `\`, "/")
	normalized = strings.TrimSuffix(normalized, ".html")
	return strings.TrimPrefix(normalized, "/")
}
