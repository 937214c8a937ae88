package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/usage-billing-api/internal/config"
)

type MessageType string

const (
	MessageTypeInvoice MessageType = "INVOICE"
)

// Message is the envelope for jobs this service enqueues for itself.
type Message struct {
	Type      MessageType `json:"type"`
	TenantID  string      `json:"tenant_id"`
	HistoryID uint64      `json:"history_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NotificationStatusSuccess marks a completed document ingestion.
const NotificationStatusSuccess = "success"

// Notification is published by the ingestion pipeline when a document has
// been chunked. Its keys are owned by the producer.
type Notification struct {
	TenantID        string `json:"tenantId"`
	File            string `json:"file"`
	Status          string `json:"status"`
	NumberOfEntries int    `json:"number_of_entries"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
}

type ReceivedMessage struct {
	Body          string
	ReceiptHandle *string
}

// Decode unmarshals the raw body into v.
func (m ReceivedMessage) Decode(v any) error {
	if err := json.Unmarshal([]byte(m.Body), v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Client is the subset of the SQS API used here.
type Client interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client               Client
	notificationQueueURL string
	invoiceQueueURL      string
}

func NewSQSService(client Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:               client,
		notificationQueueURL: config.NotificationQueueURL,
		invoiceQueueURL:      config.InvoiceQueueURL,
	}
}

func (s *SQSService) NotificationQueueURL() string {
	return s.notificationQueueURL
}

func (s *SQSService) InvoiceQueueURL() string {
	return s.invoiceQueueURL
}

func (s *SQSService) SendInvoiceMessage(ctx context.Context, tenantID string, historyID uint64) error {
	msg := Message{
		Type:      MessageTypeInvoice,
		TenantID:  tenantID,
		HistoryID: historyID,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.invoiceQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg any, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(output.Messages))
	for _, msg := range output.Messages {
		messages = append(messages, ReceivedMessage{
			Body:          aws.ToString(msg.Body),
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
