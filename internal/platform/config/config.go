package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/srgjo27/hotel_inventory/internal/platform/database"
)

const (
	LockBackendRedis = "redis"
	LockBackendLocal = "local"
)

type Config struct {
	DB              database.Config
	RedisHost       string
	RedisPort       string
	HTTPAddr        string
	GinMode         string
	CORSOrigins     []string
	LockBackend     string
	LockTTL         time.Duration
	LockWaitTimeout time.Duration
	StorageTimeout  time.Duration
	RoomCacheTTL    time.Duration
	CleanupInterval time.Duration
	PendingGrace    time.Duration
}

// Load reads the optional .env files and then the process environment.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}

	if err := godotenv.Load(files...); err != nil {
		log.Println(".env file not found, using OS environment variables.")
	}

	cfg := Config{
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "hotel_inventory"),
		},
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		CORSOrigins:     getList("CORS_ORIGINS", []string{"*"}),
		LockBackend:     getEnv("LOCK_BACKEND", LockBackendRedis),
		LockTTL:         getDuration("LOCK_TTL", 30*time.Second),
		LockWaitTimeout: getDuration("LOCK_WAIT_TIMEOUT", 5*time.Second),
		StorageTimeout:  getDuration("STORAGE_TIMEOUT", 10*time.Second),
		RoomCacheTTL:    getDuration("ROOM_CACHE_TTL", time.Minute),
		CleanupInterval: getDuration("CLEANUP_INTERVAL", time.Minute),
		PendingGrace:    getDuration("PENDING_GRACE", 24*time.Hour),
	}

	// A Redis room lock must outlive the storage work done while holding it.
	if cfg.LockBackend == LockBackendRedis && cfg.StorageTimeout >= cfg.LockTTL {
		clamped := cfg.LockTTL / 2
		log.Printf("STORAGE_TIMEOUT=%s is not below LOCK_TTL=%s, using %s", cfg.StorageTimeout, cfg.LockTTL, clamped)
		cfg.StorageTimeout = clamped
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}

	return d
}

func getList(key string, fallback []string) []string {
	parts := strings.Split(os.Getenv(key), ",")

	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			list = append(list, v)
		}
	}

	if len(list) == 0 {
		return fallback
	}

	return list
}
