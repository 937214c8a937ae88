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

const invoiceWorkerName = "invoice"

// InvoiceWorker renders, stores and links invoices for settled periods.
type InvoiceWorker struct {
	queue        MessageQueue
	queueURL     string
	billing      InvoiceAttacher
	metrics      *metrics.Metrics
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewInvoiceWorker(
	queue MessageQueue,
	queueURL string,
	billing InvoiceAttacher,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *InvoiceWorker {
	return &InvoiceWorker{
		queue:        queue,
		queueURL:     queueURL,
		billing:      billing,
		metrics:      metrics,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *InvoiceWorker) Start() {
	w.logger.Info("Starting invoice workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *InvoiceWorker) Stop() {
	w.logger.Info("Stopping invoice workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All invoice workers stopped")
}

func (w *InvoiceWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Invoice worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Invoice worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Invoice worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *InvoiceWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		var m queue.Message
		if err := msg.Decode(&m); err != nil || m.Type != queue.MessageTypeInvoice {
			w.logger.Warn("Dropping unexpected message", zap.String("body", msg.Body), zap.Error(err))
			w.metrics.CountMessage(invoiceWorkerName, outcomeMalformed)
			w.delete(ctx, msg)
			continue
		}

		if err := w.processInvoiceMessage(ctx, m); err != nil {
			if errors.Is(err, service.ErrBillingHistoryNotFound) {
				w.logger.Warn("Billing history no longer exists", zap.String("tenant_id", m.TenantID), zap.Uint64("history_id", m.HistoryID))
				w.metrics.CountMessage(invoiceWorkerName, outcomeSkipped)
				w.delete(ctx, msg)
				continue
			}
			w.logger.Error("Failed to process invoice message", err, zap.String("tenant_id", m.TenantID), zap.Uint64("history_id", m.HistoryID))
			w.metrics.CountMessage(invoiceWorkerName, outcomeFailed)
			continue
		}

		w.metrics.CountMessage(invoiceWorkerName, outcomeProcessed)
		w.delete(ctx, msg)
	}

	return nil
}

func (w *InvoiceWorker) processInvoiceMessage(ctx context.Context, m queue.Message) error {
	w.logger.Infof("Processing invoice message for tenant %s (history %d)", m.TenantID, m.HistoryID)

	url, err := w.billing.AttachInvoice(ctx, m.TenantID, m.HistoryID)
	if err != nil {
		return fmt.Errorf("failed to attach invoice for tenant %s: %w", m.TenantID, err)
	}

	w.logger.Info("Invoice stored", zap.String("tenant_id", m.TenantID), zap.Uint64("history_id", m.HistoryID), zap.String("url", url))
	return nil
}

func (w *InvoiceWorker) delete(ctx context.Context, msg queue.ReceivedMessage) {
	if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
		w.logger.Errorf("Failed to delete message: %v", err)
	}
}
