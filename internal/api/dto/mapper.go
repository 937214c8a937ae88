package dto

import (
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/pkg/utils"
)

// ToTenantUpdate converts an UpdateTenantRequest DTO to a partial domain update
func (r *UpdateTenantRequest) ToTenantUpdate() domain.TenantUpdate {
	return domain.TenantUpdate{
		Name:        r.Name,
		Alias:       r.Alias,
		ActiveState: r.ActiveState,
	}
}

// ToUsageEvent converts a RecordEventRequest DTO to a UsageEvent domain model
func (r *RecordEventRequest) ToUsageEvent() *domain.UsageEvent {
	tokens := make(map[string]domain.TokenUsage, len(r.Tokens))
	for category, usage := range r.Tokens {
		tokens[category] = domain.TokenUsage{Count: usage.Count, Price: usage.Price}
	}
	return &domain.UsageEvent{
		TenantID:         r.TenantID,
		Receiver:         r.Receiver,
		UserQuery:        r.UserQuery,
		AIReply:          r.AIReply,
		Tokens:           tokens,
		CustomerFeedback: r.CustomerFeedback,
	}
}

func FromTenant(t *domain.Tenant) TenantInfo {
	return TenantInfo{
		TenantID:    t.PublicID(),
		Logo:        t.Logo,
		Name:        t.Name,
		Alias:       t.Alias,
		ActiveState: t.ActiveState,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromUsageRecord(r *domain.UsageRecord) UsageRecordResponse {
	return UsageRecordResponse{
		ID:            r.ID,
		Date:          r.Date,
		TenantID:      r.TenantID,
		TokensUsed:    r.TokensUsed,
		PerTokenPrice: r.PerTokenPrice,
		TotalPrice:    r.TotalPrice,
	}
}

func FromUsageRecords(records []domain.UsageRecord) []UsageRecordResponse {
	responses := make([]UsageRecordResponse, len(records))
	for i := range records {
		responses[i] = FromUsageRecord(&records[i])
	}
	return responses
}

func FromMonthlySummary(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		TenantID:        s.TenantID,
		Year:            s.Year,
		Month:           s.Month,
		TotalTokensUsed: s.TotalTokensUsed,
		TotalPrice:      s.TotalPrice,
	}
}

func FromDailyUsage(days []domain.DailyUsage) []DailySummaryResponse {
	responses := make([]DailySummaryResponse, len(days))
	for i, day := range days {
		responses[i] = DailySummaryResponse{
			Date:       utils.FormatDate(day.Date),
			TokensUsed: day.TokensUsed,
			TotalPrice: day.TotalPrice,
		}
	}
	return responses
}

func fromTotals(t domain.UsageTotals) UsageTotalsResponse {
	return UsageTotalsResponse{TokensUsed: t.Tokens, TotalPrice: t.Price}
}

func FromMonthlyAggregation(a *domain.MonthlyAggregation) MonthlyAggregationResponse {
	return MonthlyAggregationResponse{
		TenantID:    a.TenantID,
		Year:        a.Year,
		Month:       a.Month,
		Ledger:      fromTotals(a.Ledger),
		EventStore:  fromTotals(a.EventStore),
		Combined:    fromTotals(a.Combined),
		GeneratedAt: a.GeneratedAt,
	}
}

func FromBillingHistory(h *domain.BillingHistory) BillingHistoryResponse {
	return BillingHistoryResponse{
		ID:         h.ID,
		TenantID:   h.TenantID,
		Period:     h.Period,
		TokensUsed: h.TokensUsed,
		TotalPrice: h.TotalPrice,
		InvoiceURL: h.InvoiceURL,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

func FromBillingHistories(history []domain.BillingHistory) []BillingHistoryResponse {
	responses := make([]BillingHistoryResponse, len(history))
	for i := range history {
		responses[i] = FromBillingHistory(&history[i])
	}
	return responses
}

func FromBillingSettings(s *domain.BillingSettings) BillingSettingsResponse {
	return BillingSettingsResponse{
		ID:         s.ID,
		TenantID:   s.TenantID,
		UsageAlert: s.UsageAlert,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromTenantDoc(d *domain.TenantDoc) TenantDocResponse {
	return TenantDocResponse{
		ID:          d.ID,
		TenantID:    d.TenantID,
		DocName:     d.DocName,
		CreatedTime: d.CreatedTime,
		NumEntries:  d.NumEntries,
	}
}

func FromTenantDocs(docs []domain.TenantDoc) []TenantDocResponse {
	responses := make([]TenantDocResponse, len(docs))
	for i := range docs {
		responses[i] = FromTenantDoc(&docs[i])
	}
	return responses
}

func fromKnowledgeEntry(e domain.KnowledgeEntry) KnowledgeEntryResponse {
	return KnowledgeEntryResponse{
		ID:        e.ID,
		DocName:   e.DocName,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func FromKnowledgeEntries(entries []domain.KnowledgeEntry) []KnowledgeEntryResponse {
	responses := make([]KnowledgeEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = fromKnowledgeEntry(e)
	}
	return responses
}

func FromKnowledgeHits(hits []domain.KnowledgeHit) []KnowledgeHitResponse {
	responses := make([]KnowledgeHitResponse, len(hits))
	for i, h := range hits {
		responses[i] = KnowledgeHitResponse{KnowledgeEntryResponse: fromKnowledgeEntry(h.KnowledgeEntry), Score: h.Score}
	}
	return responses
}
