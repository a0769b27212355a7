package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myfragance/internal/cache"
	"myfragance/internal/config"
	"myfragance/internal/recommend"
	"myfragance/internal/repository"
	"myfragance/internal/scoring"
	"myfragance/internal/service"
	"myfragance/internal/transport/rest"
	"myfragance/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	scoringCfg := config.DefaultScoringConfig()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	perfumeRepo := repository.NewPerfumeRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	catalogCache := cache.NewCatalogCache(rdb)
	recCache := cache.NewRecommendationCache(rdb)

	// Initialize engines
	engine := scoring.NewEngine(scoringCfg)
	ranker := recommend.NewRanker(scoringCfg)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	catalogSvc := service.NewCatalogService(perfumeRepo, questionRepo, catalogCache)
	sessionSvc := service.NewSessionService(sessionCache, recCache, profileRepo, catalogSvc, authSvc, engine, ranker, scoringCfg)
	recSvc := service.NewRecommendationService(recCache, profileRepo, catalogSvc, ranker, scoringCfg.CandidateBuffer)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		CatalogService: catalogSvc,
		RecService:     recSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Demo auth: username=%s", cfg.DemoUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/sessions/{id}/question/current")
		log.Println("  POST /v1/sessions/{id}/answers")
		log.Println("  POST /v1/sessions/{id}/advance")
		log.Println("  POST /v1/sessions/{id}/retreat")
		log.Println("  GET  /v1/sessions/{id}/profile")
		log.Println("  GET  /v1/sessions/{id}/recommendations")
		log.Println("  GET  /v1/catalog/perfumes")
		log.Println("  GET  /v1/recommendations/popular")
		log.Println("  WS   /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
