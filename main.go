package main

import (
	"fmt"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/provider"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		logrus.Info("no .env file found, using process environment")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(utils.GetEnvAsString("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(level)
	}
}

func setupRouter(cfg config.Config, cache *services.StatsCache) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	router.SetHTMLTemplate(handler.Templates())

	github := provider.NewGithub(cfg)
	wakatime := provider.NewWakatime(cfg)

	// A nil *StatsCache would still satisfy the interface, so only
	// hand the handlers a cache that actually exists.
	var statsCache handler.StatsCache
	var cacheChecker handler.CacheChecker
	if cache != nil {
		statsCache = cache
		cacheChecker = cache
	}

	dashboard := handler.NewDashboardHandler(cfg.GithubUsername, github, wakatime, statsCache)
	contributions := handler.NewContributionsHandler(github, statsCache)
	stats := handler.NewWakatimeHandler(wakatime, statsCache)
	health := handler.NewHealthHandler(cacheChecker)

	router.GET("/",
		middleware.PageViewMiddleware(),
		middleware.CacheControlMiddleware(5*time.Minute),
		dashboard.GetDashboard,
	)

	api := router.Group("/api")
	{
		api.GET("/contributions", contributions.GetContributions)
		api.GET("/wakatime", stats.GetStats)
	}

	router.GET("/healthz", health.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Missing credentials are not fatal: the adapters answer 500 per
	// request instead, and the rest of the page still works.
	if cfg.GithubToken == "" || cfg.GithubUsername == "" {
		logrus.Warn("GITHUB_TOKEN or GITHUB_USERNAME not set, contribution calendar will be unavailable")
	}
	if cfg.WakatimeUsername == "" {
		logrus.Warn("WAKATIME_USERNAME not set, coding-time stats will be unavailable")
	}

	var cache *services.StatsCache
	if cfg.RedisURL != "" {
		var err error
		cache, err = services.NewStatsCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			logrus.Fatalf("failed to initialize response cache: %v", err)
		}
		defer cache.Close()
	} else {
		logrus.Warn("REDIS_URL not set, upstream responses will not be cached")
	}

	utils.StartSystemMetrics(30 * time.Second)

	router := setupRouter(cfg, cache)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
