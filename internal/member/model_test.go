package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	visitedAgo := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	tests := []struct {
		name      string
		lastVisit *time.Time
		want      Status
	}{
		{"visited 3 days ago", visitedAgo(3 * 24 * time.Hour), StatusActive},
		{"visited 20 days ago", visitedAgo(20 * 24 * time.Hour), StatusModerate},
		{"visited 45 days ago", visitedAgo(45 * 24 * time.Hour), StatusInactive},
		{"never visited", nil, StatusInactive},
		{"visited just now", visitedAgo(0), StatusActive},
		{"exactly 7 days ago", visitedAgo(7 * 24 * time.Hour), StatusActive},
		{"just over 7 days ago", visitedAgo(7*24*time.Hour + time.Second), StatusModerate},
		{"exactly 30 days ago", visitedAgo(30 * 24 * time.Hour), StatusModerate},
		{"just over 30 days ago", visitedAgo(30*24*time.Hour + time.Second), StatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.lastVisit, now))
		})
	}
}
