package payment

import (
	"sort"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"
)

// Aggregate reduces a gym's payment rows into the revenue/pending/overdue
// totals. The month boundary is coach.MonthStart, the same one the coach
// recount uses. A paid payment without a paid_date is treated as unset and
// never counts toward month-scoped revenue.
func Aggregate(payments []Payment, now time.Time) Totals {
	monthStart := coach.MonthStart(now)

	var t Totals
	for _, p := range payments {
		switch p.Status {
		case StatusPaid:
			if p.PaidDate == nil {
				continue
			}
			if !p.PaidDate.Before(monthStart) && p.PaidDate.Before(now) {
				t.RevenueThisMonthCents += p.AmountCents
			}
		case StatusPending:
			t.PendingAmountCents += p.AmountCents
			t.PendingCount++
		case StatusOverdue:
			t.OverdueAmountCents += p.AmountCents
			t.OverdueCount++
		}
	}

	return t
}

// RevenueByMonth buckets paid payments by "YYYY-MM" of their paid_date,
// oldest month first. Paid rows with no paid_date are excluded.
func RevenueByMonth(payments []Payment) []MonthRevenue {
	buckets := make(map[string]int64)
	for _, p := range payments {
		if p.Status != StatusPaid || p.PaidDate == nil {
			continue
		}
		buckets[p.PaidDate.Format("2006-01")] += p.AmountCents
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	result := make([]MonthRevenue, 0, len(months))
	for _, month := range months {
		result = append(result, MonthRevenue{Month: month, AmountCents: buckets[month]})
	}

	return result
}
