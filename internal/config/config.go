package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Site     SiteConfig
	Job      JobConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SiteConfig struct {
	BaseURL      string
	PagesDir     string
	SEODir       string
	TemplatesDir string
	AffiliateTag string
}

type JobConfig struct {
	PageQuota     int
	SitemapRecent int
	Schedule      string
	PingTimeoutMS int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SITE_BASE_URL", "https://electrorank.com")
	viper.SetDefault("PAGES_DIR", "pages")
	viper.SetDefault("SEO_DIR", "seo")
	viper.SetDefault("TEMPLATES_DIR", "templates")
	viper.SetDefault("AFFILIATE_TAG", "yourID")
	viper.SetDefault("JOB_PAGE_QUOTA", 5)
	viper.SetDefault("JOB_SITEMAP_RECENT", 100)
	viper.SetDefault("JOB_SCHEDULE", "0 2 * * *")
	viper.SetDefault("JOB_PING_TIMEOUT_MS", 10000)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Site: SiteConfig{
			BaseURL:      viper.GetString("SITE_BASE_URL"),
			PagesDir:     viper.GetString("PAGES_DIR"),
			SEODir:       viper.GetString("SEO_DIR"),
			TemplatesDir: viper.GetString("TEMPLATES_DIR"),
			AffiliateTag: viper.GetString("AFFILIATE_TAG"),
		},
		Job: JobConfig{
			PageQuota:     viper.GetInt("JOB_PAGE_QUOTA"),
			SitemapRecent: viper.GetInt("JOB_SITEMAP_RECENT"),
			Schedule:      viper.GetString("JOB_SCHEDULE"),
			PingTimeoutMS: viper.GetInt("JOB_PING_TIMEOUT_MS"),
		},
	}
}
