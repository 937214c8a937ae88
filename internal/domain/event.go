package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenUsage is the count and unit price for one token category.
type TokenUsage struct {
	Count int64   `bson:"count" json:"count"`
	Price float64 `bson:"price" json:"price"`
}

// UsageEvent is a raw, unsettled AI-reply usage document.
type UsageEvent struct {
	ID               primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	TenantID         string                `bson:"tenant_id" json:"tenant_id"`
	Receiver         string                `bson:"receiver,omitempty" json:"receiver,omitempty"`
	UserQuery        string                `bson:"user_query,omitempty" json:"user_query,omitempty"`
	AIReply          string                `bson:"ai_reply,omitempty" json:"ai_reply,omitempty"`
	Tokens           map[string]TokenUsage `bson:"tokens" json:"tokens"`
	TotalTokens      int64                 `bson:"total_tokens" json:"total_tokens"`
	CustomerFeedback *bool                 `bson:"customer_feedback,omitempty" json:"customer_feedback,omitempty"`
	CreatedAt        time.Time             `bson:"created_at" json:"created_at"`
}

// Price sums count * unit price over every token category.
func (e UsageEvent) Price() float64 {
	var price float64
	for _, usage := range e.Tokens {
		price += float64(usage.Count) * usage.Price
	}
	return price
}

// SumTokenCounts returns the sum of the per-category counts.
func (e UsageEvent) SumTokenCounts() int64 {
	var total int64
	for _, usage := range e.Tokens {
		total += usage.Count
	}
	return total
}
