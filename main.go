package main

import (
	"context"
	"log"
	"time"

	"futnews-backend/config"
	"futnews-backend/database"
	"futnews-backend/handlers"
	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	db := database.GetDB()

	// Core subsystem
	scorer := services.NewContentScorer(
		services.DefaultScoringConfig(cfg.MaxDailyArticles, cfg.MaxDailySocial),
	)
	scheduler := services.NewContentScheduler(scorer, cfg.MaxDailyArticles, cfg.MaxDailySocial)
	aggregator := services.NewSourceAggregator()
	abTests := services.NewABTestManager()
	clusterer := services.NewContentClusterer()
	monitor := services.NewPerformanceMonitor(30 * 24 * time.Hour)

	// Collaborators and API services
	articleService := services.NewArticleService(db)
	engagementService := services.NewEngagementService(db, abTests, monitor)

	if cfg.PipelineEnabled {
		writer := services.NewArticleWriter(cfg)
		pipeline := services.NewPipelineService(cfg, db, aggregator, writer, scheduler, articleService, clusterer)
		// Scrapers register here as SourceProviders; with none registered
		// each cycle is a no-op.
		go pipeline.Run(context.Background())
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduler)
	abTestHandler := handlers.NewABTestHandler(abTests, cfg.ABTestMinSamples)
	articleHandler := handlers.NewArticleHandler(articleService, engagementService)
	threadHandler := handlers.NewThreadHandler(clusterer)
	performanceHandler := handlers.NewPerformanceHandler(monitor)

	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", articleHandler.HealthCheck)

		v1.POST("/schedule/content", scheduleHandler.ScheduleContent)
		v1.GET("/schedule", scheduleHandler.GetSchedule)
		v1.GET("/schedule/stats", scheduleHandler.GetDailyStats)

		v1.GET("/articles", articleHandler.ListArticles)
		v1.GET("/articles/stats", articleHandler.GetStats)
		v1.GET("/article/:slug", articleHandler.GetArticleBySlug)
		v1.GET("/categories", articleHandler.ListCategories)

		v1.POST("/events", articleHandler.RecordEvent)
		v1.GET("/events/stats", articleHandler.GetEventStats)

		v1.POST("/abtests", abTestHandler.CreateTest)
		v1.GET("/abtests", abTestHandler.ListActiveTests)
		v1.GET("/abtests/history", abTestHandler.GetHistory)
		v1.GET("/abtest/:name", abTestHandler.GetTestStats)
		v1.POST("/abtest/:name/results", abTestHandler.RecordResult)
		v1.GET("/abtest/:name/variant", abTestHandler.SelectVariant)

		v1.GET("/threads", threadHandler.ListThreads)
		v1.GET("/thread/:id", threadHandler.GetThread)
		v1.POST("/thread/:id/engagement", threadHandler.UpdateThreadEngagement)

		v1.GET("/performance/dashboard", performanceHandler.GetDashboard)
		v1.GET("/performance/content/:id", performanceHandler.GetContentPerformance)
		v1.GET("/performance/styles", performanceHandler.GetStyleComparison)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
