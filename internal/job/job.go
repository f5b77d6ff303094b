package job

import (
	"context"
	"fmt"
	"time"

	"electrorank/internal/domain"
	"electrorank/internal/feeds"
	"electrorank/internal/generator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductWriter is the slice of the product repository the daily job writes
// through.
type ProductWriter interface {
	Upsert(ctx context.Context, product *domain.Product) error
	RecalculateScores(ctx context.Context) (int64, error)
}

// PageGenerator runs one budgeted page-generation pass.
type PageGenerator interface {
	Generate(ctx context.Context, quota int) ([]generator.PageRef, error)
}

// SitemapWriter rebuilds the sitemap and robots files.
type SitemapWriter interface {
	WriteSitemap(ctx context.Context) (string, error)
	WriteRobots() (string, error)
}

// SitemapPinger submits the sitemap to search engines, best effort.
type SitemapPinger interface {
	Ping(ctx context.Context) error
}

// Summary reports what one orchestrator run accomplished. On a fatal store
// error it carries the counts of the stages that completed before the abort.
type Summary struct {
	RunID            string              `json:"run_id"`
	StartedAt        time.Time           `json:"started_at"`
	ProductsIngested int                 `json:"products_ingested"`
	ScoresUpdated    int64               `json:"scores_updated"`
	PagesGenerated   int                 `json:"pages_generated"`
	Pages            []generator.PageRef `json:"pages,omitempty"`
	Duration         time.Duration       `json:"duration"`
}

// Orchestrator runs the daily pipeline: ingest feeds, recalculate scores,
// generate pages, rebuild the sitemap and ping search engines. Stages run
// sequentially; a store failure after ingestion aborts the remaining stages.
type Orchestrator struct {
	providers []feeds.Provider
	store     ProductWriter
	generator PageGenerator
	sitemap   SitemapWriter
	pinger    SitemapPinger
	pageQuota int
	logger    *zap.Logger
}

// New creates a daily job Orchestrator.
func New(providers []feeds.Provider, store ProductWriter, pageGen PageGenerator, sitemap SitemapWriter, pinger SitemapPinger, pageQuota int, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		providers: providers,
		store:     store,
		generator: pageGen,
		sitemap:   sitemap,
		pinger:    pinger,
		pageQuota: pageQuota,
		logger:    logger,
	}
}

// Run executes one full pipeline pass. A failing feed is logged and skipped;
// the run continues with the remaining feeds. Store errors during score
// recalculation or page generation are fatal: the run stops there and the
// partial Summary is returned alongside the error.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	summary := Summary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
	runLogger := o.logger.With(zap.String("run_id", summary.RunID))

	runLogger.Info("Daily job started", zap.Int("feeds", len(o.providers)))

	summary.ProductsIngested = o.ingest(ctx, runLogger)

	updated, err := o.store.RecalculateScores(ctx)
	if err != nil {
		summary.Duration = time.Since(summary.StartedAt)
		return summary, fmt.Errorf("score recalculation failed: %w", err)
	}
	summary.ScoresUpdated = updated
	runLogger.Info("Scores recalculated", zap.Int64("updated", updated))

	pages, err := o.generator.Generate(ctx, o.pageQuota)
	if err != nil {
		summary.Duration = time.Since(summary.StartedAt)
		return summary, fmt.Errorf("page generation failed: %w", err)
	}
	summary.Pages = pages
	summary.PagesGenerated = len(pages)

	// The sitemap refresh is best effort: a failure here loses freshness,
	// not data, so the run still completes with its summary.
	if _, err := o.sitemap.WriteSitemap(ctx); err != nil {
		runLogger.Warn("Sitemap assembly failed", zap.Error(err))
	} else {
		if _, err := o.sitemap.WriteRobots(); err != nil {
			runLogger.Warn("robots.txt write failed", zap.Error(err))
		}

		// Search engine submission never fails the run
		if err := o.pinger.Ping(ctx); err != nil {
			runLogger.Warn("Sitemap ping failed", zap.Error(err))
		}
	}

	summary.Duration = time.Since(summary.StartedAt)
	runLogger.Info("Daily job finished",
		zap.Int("products_ingested", summary.ProductsIngested),
		zap.Int64("scores_updated", summary.ScoresUpdated),
		zap.Int("pages_generated", summary.PagesGenerated),
		zap.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// ingest fetches every feed and upserts its products. Failures are isolated
// at feed scope: a fetch or upsert error abandons that feed's remaining
// products and moves on to the next provider.
func (o *Orchestrator) ingest(ctx context.Context, runLogger *zap.Logger) int {
	ingested := 0

	for _, provider := range o.providers {
		feedLogger := runLogger.With(zap.String("category", provider.Category()))

		products, err := provider.Fetch(ctx)
		if err != nil {
			feedLogger.Warn("Feed fetch failed, skipping", zap.Error(err))
			continue
		}

		feedOK := true
		for i := range products {
			if err := o.store.Upsert(ctx, &products[i]); err != nil {
				feedLogger.Warn("Feed upsert failed, abandoning feed",
					zap.String("product_id", products[i].ProductID),
					zap.Error(err),
				)
				feedOK = false
				break
			}
			ingested++
		}

		if feedOK {
			feedLogger.Info("Feed ingested", zap.Int("products", len(products)))
		}
	}

	return ingested
}
