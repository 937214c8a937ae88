package dto

import (
	"time"
)

// TenantInfo is the public view of a tenant
type TenantInfo struct {
	TenantID    string    `json:"tenant_id" example:"tenant_1"`
	Logo        string    `json:"logo" example:"https://cdn.example.com/tenant_logos/tenant_1/logo.png"`
	Name        string    `json:"name" example:"Acme"`
	Alias       string    `json:"alias" example:"acme"`
	ActiveState bool      `json:"active_state" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2024-04-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-04-01T00:00:00Z"`
}

type TenantLookupResponse struct {
	Data TenantInfo `json:"data"`
}

type UsageRecordResponse struct {
	ID            uint64    `json:"id" example:"42"`
	Date          time.Time `json:"date" example:"2024-04-01T10:00:00Z"`
	TenantID      string    `json:"tenant_id" example:"tenant_1"`
	TokensUsed    int64     `json:"tokens_used" example:"1500"`
	PerTokenPrice float64   `json:"per_token_price" example:"0.01"`
	TotalPrice    float64   `json:"total_price" example:"15"`
}

type TotalUsageResponse struct {
	TenantID   string  `json:"tenant_id" example:"tenant_1"`
	TokensUsed int64   `json:"tokens_used" example:"1500"`
	TotalPrice float64 `json:"total_price" example:"15"`
}

type MonthlySummaryResponse struct {
	TenantID        string  `json:"tenant_id" example:"tenant_7"`
	Year            int     `json:"year" example:"2024"`
	Month           int     `json:"month" example:"4"`
	TotalTokensUsed int64   `json:"total_tokens_used" example:"10200"`
	TotalPrice      float64 `json:"total_price" example:"51"`
}

// DailySummaryResponse is one tenant-local calendar day.
type DailySummaryResponse struct {
	Date       string  `json:"date" example:"2024-04-01"`
	TokensUsed int64   `json:"tokens_used" example:"350"`
	TotalPrice float64 `json:"total_price" example:"1.75"`
}

type UsageTotalsResponse struct {
	TokensUsed int64   `json:"tokens_used" example:"200"`
	TotalPrice float64 `json:"total_price" example:"1"`
}

type MonthlyAggregationResponse struct {
	TenantID    string              `json:"tenant_id" example:"tenant_7"`
	Year        int                 `json:"year" example:"2024"`
	Month       int                 `json:"month" example:"4"`
	Ledger      UsageTotalsResponse `json:"ledger"`
	EventStore  UsageTotalsResponse `json:"event_store"`
	Combined    UsageTotalsResponse `json:"combined"`
	GeneratedAt time.Time           `json:"generated_at" example:"2024-04-30T12:00:00Z"`
}

type RecordEventResponse struct {
	ID string `json:"id" example:"662f9c1e8b3e4a0012345678"`
}

type BillingHistoryResponse struct {
	ID         uint64    `json:"id" example:"9"`
	TenantID   string    `json:"tenant_id" example:"tenant_7"`
	Period     string    `json:"period" example:"Apr 2024"`
	TokensUsed int64     `json:"tokens_used" example:"10200"`
	TotalPrice float64   `json:"total_price" example:"51"`
	InvoiceURL *string   `json:"invoice_url"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-01T00:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-05-01T00:00:00Z"`
}

type BillingSettingsResponse struct {
	ID         uint64    `json:"id" example:"1"`
	TenantID   string    `json:"tenant_id" example:"tenant_7"`
	UsageAlert float64   `json:"usage_alert" example:"1000"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-01T00:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-05-01T00:00:00Z"`
}

type TenantDocResponse struct {
	ID          uint64    `json:"id" example:"3"`
	TenantID    string    `json:"tenant_id" example:"tenant_1"`
	DocName     string    `json:"doc_name" example:"pricing.pdf"`
	CreatedTime time.Time `json:"created_time" example:"2024-05-01T00:00:00Z"`
	NumEntries  int       `json:"num_entries" example:"12"`
}

type KnowledgeEntryResponse struct {
	ID        string    `json:"id" example:"tenant_1-pricing.pdf-0"`
	DocName   string    `json:"doc_name" example:"pricing.pdf"`
	Content   string    `json:"content" example:"Refunds are issued within 14 days."`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T00:00:00Z"`
}

type KnowledgeHitResponse struct {
	KnowledgeEntryResponse
	Score float64 `json:"score" example:"1.27"`
}
