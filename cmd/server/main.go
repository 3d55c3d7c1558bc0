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

	"neuma/internal/assessment"
	"neuma/internal/cache"
	"neuma/internal/config"
	"neuma/internal/repository"
	"neuma/internal/service"
	"neuma/internal/storage"
	"neuma/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// The inventory ships with the binary; refuse to start if it is broken.
	if err := assessment.ValidateQuestionSet(); err != nil {
		log.Fatal("Invalid question set:", err)
	}

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

	// Attachment storage
	blobs, err := storage.NewFSStore(cfg.BlobDir)
	if err != nil {
		log.Fatal("Failed to open blob store:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	classroomRepo := repository.NewClassroomRepo(db)
	membershipRepo := repository.NewMembershipRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	resultRepo := repository.NewResultRepo(db)

	for name, repo := range map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":       userRepo,
		"classrooms":  classroomRepo,
		"memberships": membershipRepo,
		"activities":  activityRepo,
		"results":     resultRepo,
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to ensure %s indexes: %v", name, err)
		}
	}
	log.Println("Indexes ensured")

	// Initialize caches
	dirCache := cache.NewDirectoryCache(rdb)
	sessionStore := cache.NewSessionStore(rdb)
	styleStats := cache.NewStyleStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	dirSvc := service.NewDirectoryService(classroomRepo, membershipRepo, activityRepo, userRepo, dirCache, styleStats, blobs)
	catalogSvc := service.NewCatalogService(activityRepo, dirSvc, blobs)
	assessSvc := service.NewAssessmentService(sessionStore, resultRepo, membershipRepo, styleStats)

	container := &rest.Container{
		AuthService:       authSvc,
		DirectoryService:  dirSvc,
		CatalogService:    catalogSvc,
		AssessmentService: assessSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/signup")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/classrooms")
		log.Println("  POST /v1/classrooms/join")
		log.Println("  GET  /v1/me/classrooms")
		log.Println("  POST/GET /v1/classrooms/{classroomId}/activities")
		log.Println("  GET  /v1/classrooms/{classroomId}/members")
		log.Println("  GET  /v1/classrooms/{classroomId}/styles")
		log.Println("  POST /v1/assessment/{start,answer,back}")
		log.Println("  GET  /v1/assessment/{current,result}")

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
