package main

// @title           Casedocs Core API
// @version         1.0
// @description     Court document retrieval and merge API. Casedocs Core fetches case documents from upstream court systems, merges ordered bundles into single PDFs, and normalizes criminal file document lists.

// @contact.name   OpenJudiciary
// @contact.url    https://github.com/openjudiciary/casedocs-core/issues

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/auth"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/ceis"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/dars"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/justin"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/postgres"
	redisadapter "github.com/openjudiciary/casedocs-core/internal/adapters/driven/redis"
	reportsadapter "github.com/openjudiciary/casedocs-core/internal/adapters/driven/reports"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driven/shareddrive"
	"github.com/openjudiciary/casedocs-core/internal/adapters/driving/http"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
	"github.com/openjudiciary/casedocs-core/internal/core/services"
	"github.com/openjudiciary/casedocs-core/internal/strategies"
)

var version = "dev"

func main() {
	log.Printf("casedocs-core %s starting", version)

	// Configuration from environment
	jwtSecret := getEnv("JWT_SECRET", "development-secret-change-in-production")
	port := getEnvInt("PORT", 8080)
	databaseURL := getEnv("DATABASE_URL", "")
	redisURL := getEnv("REDIS_URL", "")

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	// ===== Initialize PostgreSQL (optional) =====
	// Without a database, blank upstream categories stay blank.
	var db *postgres.DB
	var categoryLookup driven.CategoryLookup
	if databaseURL != "" {
		log.Println("Connecting to PostgreSQL...")
		dbConfig := postgres.Config{
			URL:             databaseURL,
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300)) * time.Second,
			ConnMaxIdleTime: time.Duration(getEnvInt("DB_CONN_MAX_IDLE_SEC", 60)) * time.Second,
		}
		var err error
		db, err = postgres.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Initialize schema (idempotent)
		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		log.Println("PostgreSQL connected and schema initialized")

		categoryLookup = postgres.NewLookupStore(db)
	} else {
		log.Println("DATABASE_URL not set, category lookup disabled")
	}

	// ===== Initialize Redis (optional) =====
	var redisClient *redis.Client
	if redisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Redis connected")

		if categoryLookup != nil {
			categoryLookup = redisadapter.NewLookupCache(redisClient, categoryLookup, slog.Default())
			log.Println("Category lookup cache enabled")
		}
	}

	// ===== Upstream clients =====
	criminalClient := justin.NewClient(justin.Config{
		BaseURL:  getEnv("CRIMINAL_FILES_URL", "http://localhost:9001"),
		Username: getEnv("CRIMINAL_FILES_USERNAME", ""),
		Password: getEnv("CRIMINAL_FILES_PASSWORD", ""),
	})
	civilClient := ceis.NewClient(ceis.Config{
		BaseURL:  getEnv("CIVIL_FILES_URL", "http://localhost:9002"),
		Username: getEnv("CIVIL_FILES_USERNAME", ""),
		Password: getEnv("CIVIL_FILES_PASSWORD", ""),
	})
	transcriptClient := dars.NewClient(dars.Config{
		BaseURL: getEnv("TRANSCRIPTS_URL", "http://localhost:9003"),
		APIKey:  getEnv("TRANSCRIPTS_API_KEY", ""),
	})
	reportClient := reportsadapter.NewClient(reportsadapter.Config{
		BaseURL:  getEnv("REPORTS_URL", "http://localhost:9004"),
		Username: getEnv("REPORTS_USERNAME", ""),
		Password: getEnv("REPORTS_PASSWORD", ""),
	})
	sharedDriveClient := shareddrive.NewClient(getEnv("SHARED_DRIVE_ROOT", "/var/lib/casedocs/shared"))

	// ===== Driven adapters (infrastructure) =====
	authAdapter := auth.NewAdapter(jwtSecret)

	// ===== Strategy registry =====
	registry := strategies.DefaultRegistry(
		criminalClient,
		civilClient,
		civilClient, // stored-document retrieval rides the civil file service
		transcriptClient,
		sharedDriveClient,
		reportClient,
	)

	// ===== Services (core business logic) =====
	documentService := services.NewDocumentService(services.DocumentServiceConfig{
		Registry:   registry,
		FetchLimit: getEnvInt("MERGE_FETCH_LIMIT", 4),
		Logger:     slog.Default(),
	})
	bundleService := services.NewBundleService(documentService)
	recordsService := services.NewRecordsService(categoryLookup, slog.Default())

	// ===== HTTP server =====
	cfg := http.Config{
		Host:    getEnv("HOST", "0.0.0.0"),
		Port:    port,
		Version: version,
	}

	var dbPinger http.Pinger
	if db != nil {
		dbPinger = db
	}
	var redisPinger http.Pinger
	if redisClient != nil {
		redisPinger = redisPingAdapter{client: redisClient}
	}

	server := http.NewServer(
		cfg,
		documentService,
		bundleService,
		recordsService,
		authAdapter,
		dbPinger,
		redisPinger,
	)

	log.Printf("API server starting on :%d", port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// redisPingAdapter adapts the go-redis client to the health check interface
type redisPingAdapter struct {
	client *redis.Client
}

func (a redisPingAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
