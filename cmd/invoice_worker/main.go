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
	"github.com/kingrain94/usage-billing-api/internal/service/invoice"
	"github.com/kingrain94/usage-billing-api/internal/service/queue"
	"github.com/kingrain94/usage-billing-api/internal/service/storage"
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

	appLogger.Info("Database connections established for invoice worker")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoConfig := config.DefaultMongoConfig()
	mongoClient, err := mongoConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", err)
	}
	defer mongoClient.Disconnect(context.Background())

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

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
	aggregationService := service.NewAggregationService(repo, appMetrics, appLogger, cfg.AggregationTimeout)
	billingService := service.NewBillingService(
		repo,
		aggregationService,
		invoice.NewRenderer(),
		storage.NewS3Storage(s3Client, s3Config),
		sqsService,
		appLogger,
		cfg.InvoiceIssuer,
	)

	invoiceWorker := worker.NewInvoiceWorker(
		sqsService,
		sqsService.InvoiceQueueURL(),
		billingService,
		appMetrics,
		appLogger,
		1,              // 1 worker goroutine
		10*time.Second, // Poll every 10 seconds
	)

	// Start the worker
	invoiceWorker.Start()
	appLogger.Info("Invoice worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop the worker
	appLogger.Info("Shutting down worker...")
	invoiceWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
