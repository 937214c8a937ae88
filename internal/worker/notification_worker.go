package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/service"
	"github.com/kingrain94/usage-billing-api/internal/service/queue"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const notificationWorkerName = "notification"

// NotificationWorker turns ingestion completion notifications into tenant
// document rows.
type NotificationWorker struct {
	queue        MessageQueue
	queueURL     string
	docs         TenantDocWriter
	metrics      *metrics.Metrics
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewNotificationWorker(
	queue MessageQueue,
	queueURL string,
	docs TenantDocWriter,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *NotificationWorker {
	return &NotificationWorker{
		queue:        queue,
		queueURL:     queueURL,
		docs:         docs,
		metrics:      metrics,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *NotificationWorker) Start() {
	w.logger.Info("Starting notification workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *NotificationWorker) Stop() {
	w.logger.Info("Stopping notification workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All notification workers stopped")
}

func (w *NotificationWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Notification worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Notification worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Notification worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *NotificationWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		var notification queue.Notification
		if err := msg.Decode(&notification); err != nil {
			w.logger.Error("Dropping malformed notification", err, zap.String("body", msg.Body))
			w.metrics.CountMessage(notificationWorkerName, outcomeMalformed)
			w.delete(ctx, msg)
			continue
		}

		outcome, err := w.processNotification(ctx, notification)
		w.metrics.CountMessage(notificationWorkerName, outcome)
		if err != nil {
			w.logger.Error("Failed to process notification", err,
				zap.String("tenant_id", notification.TenantID),
				zap.String("file", notification.File),
			)
			continue
		}

		// Only delete the message if processing was successful
		w.delete(ctx, msg)
	}

	return nil
}

func (w *NotificationWorker) processNotification(ctx context.Context, n queue.Notification) (string, error) {
	if n.Status != queue.NotificationStatusSuccess {
		w.logger.Warn("Document ingestion did not succeed",
			zap.String("tenant_id", n.TenantID),
			zap.String("file", n.File),
			zap.String("status", n.Status),
			zap.String("error", n.Error),
		)
		return outcomeSkipped, nil
	}

	_, err := w.docs.Create(ctx, n.TenantID, n.File, n.NumberOfEntries)
	if errors.Is(err, service.ErrDuplicateTenantDoc) {
		_, err = w.docs.UpdateEntries(ctx, n.TenantID, n.File, n.NumberOfEntries)
	}
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			w.logger.Warn("Skipping invalid notification", zap.String("tenant_id", n.TenantID), zap.Error(err))
			return outcomeSkipped, nil
		}
		return outcomeFailed, err
	}

	w.logger.Info("Tenant document recorded",
		zap.String("tenant_id", n.TenantID),
		zap.String("doc_name", n.File),
		zap.Int("num_entries", n.NumberOfEntries),
	)
	return outcomeProcessed, nil
}

func (w *NotificationWorker) delete(ctx context.Context, msg queue.ReceivedMessage) {
	if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
		w.logger.Errorf("Failed to delete message: %v", err)
	}
}
