package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/repository/composite"
	"github.com/kingrain94/usage-billing-api/internal/service"
	"github.com/kingrain94/usage-billing-api/internal/service/queue"
	"github.com/kingrain94/usage-billing-api/internal/worker"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoConfig := config.DefaultMongoConfig()
	mongoClient, err := mongoConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", err)
	}
	defer mongoClient.Disconnect(context.Background())

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for notification worker")

	repo := composite.NewCompositeRepository(composite.Clients{
		Databases:   dbConnections,
		Mongo:       mongoClient,
		MongoConfig: mongoConfig,
		OpenSearch:  osClient,
		OSConfig:    osConfig,
	})
	tenantDocService := service.NewTenantDocService(repo, appLogger)

	notificationWorker := worker.NewNotificationWorker(
		sqsService,
		sqsService.NotificationQueueURL(),
		tenantDocService,
		metrics.New(nil),
		appLogger,
		2,             // 2 worker goroutines
		5*time.Second, // Poll every 5 seconds
	)

	// Start the worker
	notificationWorker.Start()
	appLogger.Info("Notification worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop the worker
	appLogger.Info("Shutting down worker...")
	notificationWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
