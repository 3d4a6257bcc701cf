package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymsuite_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	VisitsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsuite_visits_recorded_total",
			Help: "Total number of member check-ins recorded",
		},
	)

	DuplicateCheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsuite_duplicate_checkins_total",
			Help: "Total number of check-ins dropped by the dedupe window",
		},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_status_transitions_total",
			Help: "Total number of member activity status transitions",
		},
		[]string{"status"},
	)

	CoachRecalcsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsuite_coach_recalcs_total",
			Help: "Total number of coach aggregate recalculations",
		},
	)

	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_sweep_runs_total",
			Help: "Total number of activity-status sweep runs",
		},
		[]string{"status"},
	)

	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gymsuite_sweep_duration_seconds",
			Help:    "Duration of activity-status sweep runs",
			Buckets: prometheus.DefBuckets,
		},
	)

	AlertsRaisedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_alerts_raised_total",
			Help: "Total number of alerts raised",
		},
		[]string{"type"},
	)

	DashboardSnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_dashboard_snapshots_total",
			Help: "Total number of dashboard snapshot compositions",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsuite_emails_sent_total",
			Help: "Total number of notification emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymsuite_email_queue_length",
			Help: "Current length of the notification email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordVisit() {
	VisitsRecordedTotal.Inc()
}

func RecordDuplicateCheckIn() {
	DuplicateCheckInsTotal.Inc()
}

func RecordStatusTransition(status string) {
	StatusTransitionsTotal.WithLabelValues(status).Inc()
}

func RecordCoachRecalc() {
	CoachRecalcsTotal.Inc()
}

func RecordSweepRun(status string, duration float64) {
	SweepRunsTotal.WithLabelValues(status).Inc()
	SweepDuration.Observe(duration)
}

func RecordAlert(alertType string) {
	AlertsRaisedTotal.WithLabelValues(alertType).Inc()
}

func RecordDashboardSnapshot(status string) {
	DashboardSnapshotsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
