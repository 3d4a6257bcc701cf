package payment

import (
	"testing"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	payments := []Payment{
		{ID: 1, Status: StatusPaid, AmountCents: 10000, PaidDate: timePtr(thisMonth)},
		{ID: 2, Status: StatusPending, AmountCents: 5000},
		{ID: 3, Status: StatusOverdue, AmountCents: 3000},
	}

	totals := Aggregate(payments, now)

	assert.Equal(t, int64(10000), totals.RevenueThisMonthCents)
	assert.Equal(t, int64(5000), totals.PendingAmountCents)
	assert.Equal(t, int64(3000), totals.OverdueAmountCents)
	assert.Equal(t, 1, totals.PendingCount)
	assert.Equal(t, 1, totals.OverdueCount)

	t.Run("last month payment excluded from revenue", func(t *testing.T) {
		totals := Aggregate([]Payment{
			{Status: StatusPaid, AmountCents: 7000, PaidDate: timePtr(lastMonth)},
		}, now)
		assert.Equal(t, int64(0), totals.RevenueThisMonthCents)
	})

	t.Run("paid without paid date excluded", func(t *testing.T) {
		totals := Aggregate([]Payment{
			{Status: StatusPaid, AmountCents: 7000, PaidDate: nil},
		}, now)
		assert.Equal(t, int64(0), totals.RevenueThisMonthCents)
	})

	t.Run("paid exactly at month start counts", func(t *testing.T) {
		totals := Aggregate([]Payment{
			{Status: StatusPaid, AmountCents: 2000, PaidDate: timePtr(coach.MonthStart(now))},
		}, now)
		assert.Equal(t, int64(2000), totals.RevenueThisMonthCents)
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		assert.Equal(t, Totals{}, Aggregate(nil, now))
	})
}

func TestRevenueByMonth(t *testing.T) {
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	mar1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)

	payments := []Payment{
		{Status: StatusPaid, AmountCents: 1000, PaidDate: timePtr(mar1)},
		{Status: StatusPaid, AmountCents: 2000, PaidDate: timePtr(feb)},
		{Status: StatusPaid, AmountCents: 3000, PaidDate: timePtr(mar2)},
		{Status: StatusPending, AmountCents: 9000},
		{Status: StatusPaid, AmountCents: 500, PaidDate: nil},
	}

	result := RevenueByMonth(payments)

	assert.Equal(t, []MonthRevenue{
		{Month: "2026-02", AmountCents: 2000},
		{Month: "2026-03", AmountCents: 4000},
	}, result)
}
