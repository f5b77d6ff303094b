package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"electrorank/internal/config"
	"electrorank/internal/database"
	"electrorank/internal/feeds"
	"electrorank/internal/generator"
	"electrorank/internal/job"
	"electrorank/internal/logger"
	"electrorank/internal/repository"
	"electrorank/internal/seo"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present; the environment wins otherwise
	_ = godotenv.Load()

	runNow := flag.Bool("now", false, "run the pipeline once and exit")
	schedule := flag.String("schedule", "", "cron schedule override")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dbService := database.New(cfg.Database)
	db := dbService.DB()

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db)
	pageLogRepo := repository.NewPageLogRepository(db)

	renderer := generator.NewRenderer(cfg.Site.TemplatesDir)
	pageGen := generator.New(productRepo, pageLogRepo, renderer, cfg.Site.PagesDir, cfg.Site.BaseURL, log)

	assembler := seo.NewAssembler(productRepo, pageLogRepo, cfg.Site.BaseURL, cfg.Site.SEODir, cfg.Job.SitemapRecent, log)
	pinger := seo.NewPinger(cfg.Site.BaseURL, time.Duration(cfg.Job.PingTimeoutMS)*time.Millisecond, log)

	orchestrator := job.New(
		feeds.All(cfg.Site.AffiliateTag),
		productRepo,
		pageGen,
		assembler,
		pinger,
		cfg.Job.PageQuota,
		log,
	)

	if *runNow {
		runOnce(orchestrator, log)
		return
	}

	spec := cfg.Job.Schedule
	if *schedule != "" {
		spec = *schedule
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, func() {
		summary, err := orchestrator.Run(context.Background())
		if err != nil {
			log.Error("Scheduled run failed",
				zap.String("run_id", summary.RunID),
				zap.Error(err),
			)
			return
		}
		log.Info("Scheduled run finished", zap.String("run_id", summary.RunID))
	}); err != nil {
		log.Fatal("Invalid cron schedule", zap.String("schedule", spec), zap.Error(err))
	}

	log.Info("Daily job scheduler started", zap.String("schedule", spec))
	scheduler.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Stopping scheduler")
	<-scheduler.Stop().Done()
	dbService.Close()
}

// runOnce executes one pipeline pass and exits non-zero on failure.
func runOnce(orchestrator *job.Orchestrator, log *zap.Logger) {
	summary, err := orchestrator.Run(context.Background())
	if err != nil {
		log.Error("Daily job failed",
			zap.String("run_id", summary.RunID),
			zap.Int("products_ingested", summary.ProductsIngested),
			zap.Error(err),
		)
		log.Sync()
		os.Exit(1)
	}

	log.Info("Daily job succeeded",
		zap.String("run_id", summary.RunID),
		zap.Int("products_ingested", summary.ProductsIngested),
		zap.Int64("scores_updated", summary.ScoresUpdated),
		zap.Int("pages_generated", summary.PagesGenerated),
		zap.Duration("duration", summary.Duration),
	)
}
