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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/usage-billing-api/docs"
	"github.com/kingrain94/usage-billing-api/internal/api"
	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/middleware"
	"github.com/kingrain94/usage-billing-api/internal/repository/composite"
	"github.com/kingrain94/usage-billing-api/internal/repository/mongo"
	"github.com/kingrain94/usage-billing-api/internal/repository/postgres"
	"github.com/kingrain94/usage-billing-api/internal/service"
	"github.com/kingrain94/usage-billing-api/internal/service/invoice"
	"github.com/kingrain94/usage-billing-api/internal/service/pubsub"
	"github.com/kingrain94/usage-billing-api/internal/service/queue"
	"github.com/kingrain94/usage-billing-api/internal/service/storage"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

// @title           Usage Billing API
// @version         1.0
// @description     Multi-tenant AI usage metering, aggregation and billing.

// @host      localhost:10000
// @BasePath  /api/v1

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.AppEnv, cfg.LogLevel)

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.Migrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connections established - writer and reader connected")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Initialize MongoDB
	mongoConfig := config.DefaultMongoConfig()
	mongoClient, err := mongoConfig.GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := mongo.NewEventStoreFromClient(mongoClient, mongoConfig).EnsureIndexes(startupCtx); err != nil {
		appLogger.Fatal("Failed to create usage event indexes", err)
	}

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)
	defer redisPubSub.Close()

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	objectStorage := storage.NewS3Storage(s3Client, s3Config)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(composite.Clients{
		Databases:   dbConnections,
		Mongo:       mongoClient,
		MongoConfig: mongoConfig,
		OpenSearch:  osClient,
		OSConfig:    osConfig,
	})
	appMetrics := metrics.New(nil)

	// Initialize services
	tenantService := service.NewTenantService(repo, objectStorage, appLogger)
	usageService := service.NewUsageService(repo, redisPubSub, appLogger)
	aggregationService := service.NewAggregationService(repo, appMetrics, appLogger, cfg.AggregationTimeout)
	billingService := service.NewBillingService(repo, aggregationService, invoice.NewRenderer(), objectStorage, sqsService, appLogger, cfg.InvoiceIssuer)
	tenantDocService := service.NewTenantDocService(repo, appLogger)

	// Initialize middleware
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		cfg,
		tenantService,
		usageService,
		aggregationService,
		billingService,
		tenantDocService,
		redisPubSub,
		rateLimitMiddleware,
		validationMiddleware,
		appMetrics,
		appLogger,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Usage Billing API"
	docs.SwaggerInfo.Description = "Multi-tenant AI usage metering, aggregation and billing"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
