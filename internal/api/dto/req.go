package dto

// RegisterTenantRequest is bound from the multipart form of POST /tenants.
// The optional logo file is read separately.
type RegisterTenantRequest struct {
	Name  string `form:"name" binding:"required" example:"Acme"`
	Alias string `form:"alias" binding:"required" example:"acme"`
}

type UpdateTenantRequest struct {
	Name        *string `json:"name,omitempty" example:"Acme Corp"`
	Alias       *string `json:"alias,omitempty" example:"acme"`
	ActiveState *bool   `json:"active_state,omitempty" example:"true"`
}

type InsertUsageRequest struct {
	Date          string  `json:"date" binding:"required" example:"2024-04-01T10:00:00Z"`
	TokensUsed    int64   `json:"tokens_used" example:"1500"`
	PerTokenPrice float64 `json:"per_token_price" example:"0.01"`
}

type TokenUsageRequest struct {
	Count int64   `json:"count" example:"100"`
	Price float64 `json:"price" example:"0.00001"`
}

// RecordEventRequest is one AI reply with its per-category token usage.
type RecordEventRequest struct {
	TenantID         string                       `json:"tenant_id" binding:"required" example:"tenant_1"`
	Receiver         string                       `json:"receiver" example:"+15550100"`
	UserQuery        string                       `json:"user_query" example:"What is my plan?"`
	AIReply          string                       `json:"ai_reply" example:"You are on the Pro plan."`
	Tokens           map[string]TokenUsageRequest `json:"tokens" binding:"required"`
	CustomerFeedback *bool                        `json:"customer_feedback,omitempty"`
}

type FeedbackRequest struct {
	CustomerFeedback *bool `json:"customer_feedback" binding:"required" example:"true"`
}

type BillingSettingsRequest struct {
	UsageAlert float64 `json:"usage_alert" example:"1000"`
}

type CreateTenantDocRequest struct {
	TenantID   string `json:"tenant_id" binding:"required" example:"tenant_1"`
	DocName    string `json:"doc_name" binding:"required" example:"pricing.pdf"`
	NumEntries int    `json:"num_entries" example:"12"`
}

type UpdateTenantDocRequest struct {
	NumEntries *int `json:"num_entries" binding:"required" example:"24"`
}
