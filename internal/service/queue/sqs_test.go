package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/usage-billing-api/internal/config"
)

type fakeSQSClient struct {
	sent     []*sqs.SendMessageInput
	deleted  []*sqs.DeleteMessageInput
	received *sqs.ReceiveMessageOutput
	err      error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQSClient) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.received, nil
}

func (f *fakeSQSClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, params)
	return &sqs.DeleteMessageOutput{}, nil
}

func testConfig() *config.SQSConfig {
	return &config.SQSConfig{
		NotificationQueueURL: "http://localhost:4566/000000000000/notifications",
		InvoiceQueueURL:      "http://localhost:4566/000000000000/invoices",
	}
}

func TestSendInvoiceMessage(t *testing.T) {
	// Arrange
	client := &fakeSQSClient{}
	service := NewSQSService(client, testConfig())

	// Act
	err := service.SendInvoiceMessage(context.Background(), "tenant_7", 9)

	// Assert
	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, service.InvoiceQueueURL(), aws.ToString(client.sent[0].QueueUrl))

	var msg Message
	require.NoError(t, ReceivedMessage{Body: aws.ToString(client.sent[0].MessageBody)}.Decode(&msg))
	assert.Equal(t, MessageTypeInvoice, msg.Type)
	assert.Equal(t, "tenant_7", msg.TenantID)
	assert.Equal(t, uint64(9), msg.HistoryID)
}

func TestSendInvoiceMessage_ClientError(t *testing.T) {
	service := NewSQSService(&fakeSQSClient{err: errors.New("throttled")}, testConfig())

	err := service.SendInvoiceMessage(context.Background(), "tenant_7", 9)

	assert.ErrorContains(t, err, "failed to send message")
}

func TestReceiveMessages_DecodesNotification(t *testing.T) {
	// Arrange
	client := &fakeSQSClient{received: &sqs.ReceiveMessageOutput{Messages: []types.Message{{
		Body:          aws.String(`{"tenantId":"tenant_1","file":"faq.pdf","status":"success","number_of_entries":12}`),
		ReceiptHandle: aws.String("rh-1"),
	}}}}
	service := NewSQSService(client, testConfig())

	// Act
	messages, err := service.ReceiveMessages(context.Background(), service.NotificationQueueURL(), 10, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, messages, 1)
	var n Notification
	require.NoError(t, messages[0].Decode(&n))
	assert.Equal(t, Notification{TenantID: "tenant_1", File: "faq.pdf", Status: NotificationStatusSuccess, NumberOfEntries: 12}, n)

	require.NoError(t, service.DeleteMessage(context.Background(), service.NotificationQueueURL(), messages[0].ReceiptHandle))
	assert.Equal(t, "rh-1", aws.ToString(client.deleted[0].ReceiptHandle))
}

func TestReceivedMessage_DecodeMalformed(t *testing.T) {
	var n Notification
	assert.Error(t, ReceivedMessage{Body: "{not json"}.Decode(&n))
}
