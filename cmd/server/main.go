package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"solace/internal/config"
	"solace/internal/database"
	"solace/internal/handlers"
	"solace/internal/jobs"
	"solace/internal/logging"
	"solace/internal/sentiment"
	"solace/internal/services"
	"solace/internal/triggers"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting Solace Insights Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s)", cfg.Port)

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGODB_URI environment variable is required")
	}
	mongoDB, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close(context.Background())

	if err := mongoDB.Initialize(context.Background()); err != nil {
		log.Fatalf("❌ Failed to initialize MongoDB indexes: %v", err)
	}

	// Root context for trigger consumption and the lexicon watcher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sentiment analyzer with optional lexicon override (hot-reloaded)
	analyzer := sentiment.NewAnalyzer()
	if cfg.LexiconPath != "" {
		if err := analyzer.LoadLexiconFile(cfg.LexiconPath); err != nil {
			log.Printf("⚠️ Failed to load lexicon file: %v (using built-in lexicon)", err)
		} else {
			log.Printf("✅ Lexicon loaded from %s (%d entries)", cfg.LexiconPath, analyzer.LexiconSize())
			go func() {
				if err := analyzer.WatchLexiconFile(ctx, cfg.LexiconPath); err != nil {
					log.Printf("⚠️ Lexicon watcher stopped: %v", err)
				}
			}()
		}
	}

	// Optional Redis for insights pub/sub notifications
	var redisService *services.RedisService
	var pubsub *services.PubSubService
	if cfg.RedisURL != "" {
		log.Println("🔗 Connecting to Redis...")
		redisService, err = services.NewRedisService(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (insights notifications disabled)", err)
			redisService = nil
		} else {
			defer redisService.Close()
			pubsub = services.NewPubSubService(redisService, uuid.NewString())
			log.Println("✅ Insights pub/sub initialized")
		}
	} else {
		log.Println("⚠️ REDIS_URL not set - insights notifications disabled")
	}

	metrics := services.InitMetrics()
	log.Println("✅ Prometheus metrics initialized")

	// Stores and engines
	journalStore := services.NewMongoJournalStore(mongoDB)
	eventStore := services.NewMongoEventStore(mongoDB)
	userStore := services.NewMongoUserStore(mongoDB)

	aggregateService := services.NewAggregateService(journalStore, userStore)
	recommendationService := services.NewRecommendationService(
		eventStore, userStore, time.Duration(cfg.CandidateCacheTTL)*time.Second, pubsub, metrics)
	analysisService := services.NewAnalysisService(
		analyzer, eventStore, journalStore, aggregateService, recommendationService, metrics)
	log.Println("✅ Pipeline services initialized")

	// Trigger plumbing: store change events -> dispatcher -> pipeline
	dispatcher := triggers.NewDispatcher(metrics)
	triggers.RegisterPipeline(dispatcher, analysisService, metrics)

	streamConsumer := triggers.NewStreamConsumer(mongoDB, dispatcher)
	if err := streamConsumer.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to start change stream consumers: %v", err)
	}

	// Nightly insights sweep
	var scheduler *jobs.Scheduler
	if cfg.SweepEnabled {
		scheduler, err = jobs.NewScheduler()
		if err != nil {
			log.Fatalf("❌ Failed to create scheduler: %v", err)
		}
		sweep := jobs.NewInsightsSweep(journalStore, aggregateService, recommendationService)
		if err := scheduler.RegisterCron("insights_sweep", cfg.SweepCron, func() {
			if err := sweep.Run(ctx); err != nil {
				log.Printf("⚠️ Insights sweep failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("❌ Failed to register insights sweep: %v", err)
		}
		scheduler.Start()
	} else {
		log.Println("⚠️ SWEEP_ENABLED=false - insights sweep disabled")
	}

	// HTTP surface: health, metrics, read-only insights, admin recompute
	app := fiber.New(fiber.Config{
		AppName: "Solace Insights",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	promMiddleware := fiberprometheus.New("solace")
	promMiddleware.RegisterAt(app, "/metrics")
	app.Use(promMiddleware.Middleware)

	healthHandler := handlers.NewHealthHandler(mongoDB, redisService)
	insightsHandler := handlers.NewInsightsHandler(userStore, aggregateService, recommendationService)

	app.Get("/health", healthHandler.Handle)
	app.Get("/api/users/:userId/insights", insightsHandler.Get)
	app.Post("/api/admin/users/:userId/recompute", insightsHandler.Recompute)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("❌ Server failed to start: %v", err)
		}
	}()
	log.Printf("✅ Server listening on port %s", cfg.Port)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")

	if scheduler != nil {
		scheduler.Stop()
	}

	cancel()
	streamConsumer.Wait()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
