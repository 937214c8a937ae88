package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const (
	channelPrefix = "usage_events:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // keyed by subscriber id
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func ChannelName(tenantID string) string {
	return channelPrefix + tenantID
}

// Publish fans a recorded usage event out to the tenant's channel.
func (ps *RedisPubSub) Publish(ctx context.Context, event *domain.UsageEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal usage event: %w", err)
	}

	channel := ChannelName(event.TenantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe delivers the tenant's events to callback until ctx is done or
// Unsubscribe is called with the same subscriber id.
func (ps *RedisPubSub) Subscribe(ctx context.Context, subscriberID, tenantID string, callback func(*domain.UsageEvent)) error {
	channel := ChannelName(tenantID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[subscriberID]; exists {
		ps.subscriberMu.Unlock()
		return fmt.Errorf("subscriber %s already registered", subscriberID)
	}
	pubsub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[subscriberID] = pubsub
	ps.subscriberMu.Unlock()

	// Wait for the subscription confirmation so no publish is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		ps.Unsubscribe(subscriberID)
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	go func() {
		defer ps.Unsubscribe(subscriberID)

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.UsageEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal usage event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed %s to channel: %s", subscriberID, channel)
	return nil
}

func (ps *RedisPubSub) Unsubscribe(subscriberID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[subscriberID]; exists {
		pubsub.Close()
		delete(ps.subscribers, subscriberID)
		ps.logger.Infof("Unsubscribed %s", subscriberID)
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for subscriberID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, subscriberID)
	}
	ps.logger.Info("Closed all usage event subscriptions")
}
