package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_inventory/internal/adapter/cache"
	"github.com/srgjo27/hotel_inventory/internal/adapter/handler"
	"github.com/srgjo27/hotel_inventory/internal/adapter/lock"
	"github.com/srgjo27/hotel_inventory/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
	"github.com/srgjo27/hotel_inventory/internal/platform/config"
	"github.com/srgjo27/hotel_inventory/internal/platform/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connecting to Redis at %s:%s...", cfg.RedisHost, cfg.RedisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")
	defer redisClient.Close()

	var locker ports.RoomLocker
	switch cfg.LockBackend {
	case config.LockBackendLocal:
		log.Println("Using in-process room locks; run a single instance only.")
		locker = lock.NewLocal()
	default:
		locker = lock.NewRedis(redisClient, cfg.LockTTL)
	}

	roomRepo := postgres.NewRoomRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)

	opts := []services.Option{
		services.WithLockTimeout(cfg.LockWaitTimeout),
		services.WithStorageTimeout(cfg.StorageTimeout),
		services.WithPendingGrace(cfg.PendingGrace),
		services.WithRoomCache(cache.NewRedisRoomCache(redisClient, cfg.RoomCacheTTL)),
	}

	roomService := services.NewRoomService(roomRepo, reservationRepo, locker, opts...)
	reservationService := services.NewReservationService(reservationRepo, roomRepo, locker, opts...)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	go reservationService.RunBackgroundCleanup(workerCtx, cfg.CleanupInterval)

	gin.SetMode(cfg.GinMode)
	router := handler.NewRouter(
		handler.NewRoomHandler(roomService),
		handler.NewReservationHandler(reservationService),
		cfg.CORSOrigins,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
