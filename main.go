package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/devfolio/backend/go-services/handlers"
	"github.com/devfolio/devfolio/backend/go-services/internal/assets"
	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/content"
	contenthandler "github.com/devfolio/devfolio/backend/go-services/internal/content/handler"
	"github.com/devfolio/devfolio/backend/go-services/internal/database"
	"github.com/devfolio/devfolio/backend/go-services/internal/portfolio"
	"github.com/devfolio/devfolio/backend/go-services/internal/users"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Storage.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery, then session parsing so the
	// limiter and the admin gate can see who is asking.
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.SessionAuth(cfg))
	r.Use(middleware.AdminGate())

	// Connect to Redis early so the rate-limiter and snapshot cache can use it
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-admin when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Connect to MongoDB with retry/backoff to tolerate startup races
	ctx := context.Background()
	var client *mongo.Client
	{
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v — content falls back to memory stores", maxAttempts, errConn)
			client = nil
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
		}
	}

	// Asset store (MinIO). Optional: without it cleanup and presign are disabled.
	var assetStore assets.Store
	if cfg.Storage.Endpoint != "" {
		ms, err := assets.NewMinIOStore(cfg.Storage)
		if err != nil {
			logger.Warnf("asset store unavailable: %v — orphan cleanup disabled", err)
		} else {
			assetStore = ms
		}
	}
	var cleaner *assets.Cleaner
	if assetStore != nil {
		cleaner = assets.NewCleaner(assetStore)
	}

	// One store per content collection, handed to the shared CRUD handler.
	stores := make(map[string]content.Store)
	api := r.Group("/api")
	for _, desc := range content.Collections() {
		var store content.Store
		if client != nil {
			store = content.NewMongoStore(desc, client.Database(cfg.MongoDB.Database).Collection(desc.Name))
		} else {
			store = content.NewMemoryStore(desc)
		}
		stores[desc.Name] = store
		contenthandler.New(desc, store, cleaner).Register(api)
	}

	// Admin auth requires the users collection, so it needs Mongo.
	var userSvc *users.Service
	if client != nil {
		repo := users.NewMongoUserRepository(client.Database(cfg.MongoDB.Database).Collection("users"))
		userSvc = users.NewService(repo)
		handlers.NewAuthHandler(cfg, userSvc).Register(api)
	} else {
		logger.Warnf("auth handlers not registered because MongoDB is unavailable")
	}

	// Aggregated public read path
	snapSvc := portfolio.NewService(stores)
	portfolio.NewHandler(snapSvc, rdb, cfg.Cache.SnapshotTTL).Register(api)

	if assetStore != nil {
		handlers.NewAssetHandler(assetStore).Register(api)
	}

	handlers.RegisterSwagger(r)

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongo"] = client != nil
		if client == nil {
			ready = false
		}
		deps["users"] = userSvc != nil
		deps["assets"] = assetStore != nil

		// Redis readiness only matters when a feature depends on it
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil
			if rdb == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting portfolio service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
