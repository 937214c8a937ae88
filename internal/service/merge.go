package service

import (
	"sort"
	"time"

	"github.com/kingrain94/usage-billing-api/internal/domain"
)

// MergeTotals adds the settled and unsettled totals of a window.
func MergeTotals(ledger, events domain.UsageTotals) domain.UsageTotals {
	return ledger.Add(events)
}

// MergeDaily buckets ledger rows and raw events by tenant-local calendar day.
// Each timestamp is shifted by offset before its date is taken. Ledger rows
// contribute their stored total price, events their per-category price. Only
// days with data are returned, in ascending order.
func MergeDaily(records []domain.UsageRecord, events []domain.UsageEvent, offset time.Duration) []domain.DailyUsage {
	buckets := make(map[time.Time]*domain.DailyUsage)
	bucket := func(t time.Time) *domain.DailyUsage {
		day := localDay(t, offset)
		b, ok := buckets[day]
		if !ok {
			b = &domain.DailyUsage{Date: day}
			buckets[day] = b
		}
		return b
	}

	for _, record := range records {
		b := bucket(record.Date)
		b.TokensUsed += record.TokensUsed
		b.TotalPrice += record.TotalPrice
	}
	for _, event := range events {
		b := bucket(event.CreatedAt)
		b.TokensUsed += event.TotalTokens
		b.TotalPrice += event.Price()
	}

	days := make([]domain.DailyUsage, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

func localDay(t time.Time, offset time.Duration) time.Time {
	local := t.UTC().Add(offset)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
