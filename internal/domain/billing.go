package domain

import (
	"time"
)

const PeriodLayout = "Jan 2006"

type BillingHistory struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID   string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_billing_tenant_period,priority:1" json:"tenant_id"`
	Period     string    `gorm:"type:varchar(16);not null;uniqueIndex:uniq_billing_tenant_period,priority:2" json:"period"`
	Year       int       `gorm:"not null" json:"year"`
	Month      int       `gorm:"not null" json:"month"`
	TokensUsed int64     `gorm:"not null" json:"tokens_used"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	InvoiceURL *string   `gorm:"type:text" json:"invoice_url"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BillingHistory) TableName() string {
	return "billing_history"
}

// PeriodLabel renders a billing period such as "Aug 2024".
func PeriodLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format(PeriodLayout)
}

// BillingSettings holds per-tenant billing preferences.
type BillingSettings struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID   string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_billings_tenant" json:"tenant_id"`
	UsageAlert float64   `gorm:"not null;default:0" json:"usage_alert"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BillingSettings) TableName() string {
	return "billings"
}
