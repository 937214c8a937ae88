package domain

import (
	"time"
)

// UsageRecord is a settled ledger row. TotalPrice is fixed at insert time.
type UsageRecord struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          time.Time `gorm:"not null;index:idx_tenant_date,priority:2" json:"date"`
	TenantID      string    `gorm:"type:varchar(64);not null;index:idx_tenant_date,priority:1" json:"tenant_id"`
	TokensUsed    int64     `gorm:"not null" json:"tokens_used"`
	PerTokenPrice float64   `gorm:"not null" json:"per_token_price"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
}

func (UsageRecord) TableName() string {
	return "tenant_usages"
}

// NewUsageRecord builds a ledger row and derives its total price.
func NewUsageRecord(tenantID string, date time.Time, tokensUsed int64, perTokenPrice float64) *UsageRecord {
	return &UsageRecord{
		Date:          date.UTC(),
		TenantID:      tenantID,
		TokensUsed:    tokensUsed,
		PerTokenPrice: perTokenPrice,
		TotalPrice:    float64(tokensUsed) * perTokenPrice,
	}
}

type UsageTotals struct {
	Tokens int64   `json:"tokens"`
	Price  float64 `json:"price"`
}

func (t UsageTotals) Add(o UsageTotals) UsageTotals {
	return UsageTotals{Tokens: t.Tokens + o.Tokens, Price: t.Price + o.Price}
}

// DailyUsage is one bucket of a daily series. Date is midnight of the
// tenant-local calendar day, expressed with a UTC location.
type DailyUsage struct {
	Date       time.Time
	TokensUsed int64
	TotalPrice float64
}

type MonthlySummary struct {
	TenantID        string
	Year            int
	Month           int
	TotalTokensUsed int64
	TotalPrice      float64
}

// MonthlyAggregation splits the current month into its settled and
// unsettled parts.
type MonthlyAggregation struct {
	TenantID    string
	Year        int
	Month       int
	Ledger      UsageTotals
	EventStore  UsageTotals
	Combined    UsageTotals
	GeneratedAt time.Time
}
