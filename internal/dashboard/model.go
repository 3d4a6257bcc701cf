package dashboard

import (
	"fmt"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
)

// Snapshot is the single overview record handed to the presentation layer.
// All money fields are cents.
type Snapshot struct {
	TotalMembers       int           `json:"totalMembers"`
	ActiveMembers      int           `json:"activeMembers"`
	ModerateMembers    int           `json:"moderateMembers"`
	InactiveMembers    int           `json:"inactiveMembers"`
	MRR                int64         `json:"mrr"`
	RevenueThisMonth   int64         `json:"revenueThisMonth"`
	PendingPayments    int64         `json:"pendingPayments"`
	OverduePayments    int           `json:"overduePayments"`
	OverdueAmount      int64         `json:"overdueAmount"`
	TodaySessionsCount int           `json:"todaySessionsCount"`
	TotalSessions      int           `json:"totalSessions"`
	UnreadAlerts       []alert.Alert `json:"unreadAlerts"`
}

// DataFetchError names the read that sank the composition. Any single
// failed read aborts the whole snapshot; there are no partial results.
type DataFetchError struct {
	Source string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("dashboard fetch failed for %s: %v", e.Source, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}
