package worker

import (
	"context"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/service/queue"
)

const (
	outcomeProcessed = "processed"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
	outcomeMalformed = "malformed"
)

// MessageQueue is the queue surface the workers poll.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

type TenantDocWriter interface {
	Create(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error)
	UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error)
}

type InvoiceAttacher interface {
	AttachInvoice(ctx context.Context, tenantID string, historyID uint64) (string, error)
}
