package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/upmon/internal/uptime"
)

func TestRenderStatusColumn(t *testing.T) {
	checks := []uptime.Check{
		{Location: "us-east", Status: uptime.StatusDown},
		{Location: "eu-west", Status: uptime.StatusDown},
		{Location: "ap-south", Status: uptime.StatusUp},
	}

	tests := []struct {
		name     string
		status   uptime.Status
		ts       time.Time
		checks   []uptime.Check
		contains []string
		absent   []string
	}{
		{
			name:     "up single location",
			status:   uptime.StatusUp,
			ts:       testNow.Add(-3 * time.Minute),
			checks:   checks[2:],
			contains: []string{"Up", "3 minutes ago"},
			absent:   []string{"locations"},
		},
		{
			name:     "down across locations",
			status:   uptime.StatusDown,
			ts:       testNow.Add(-time.Hour),
			checks:   checks,
			contains: []string{"Down", "1 hour ago", "in 2/3 locations"},
		},
		{
			name:     "never checked",
			status:   uptime.StatusUnknown,
			contains: []string{"Unknown"},
			absent:   []string{"ago"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderStatusColumn(tt.status, tt.ts, tt.checks, testNow)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestLocationSummary(t *testing.T) {
	assert.Empty(t, locationSummary(uptime.StatusUp, nil))
	assert.Empty(t, locationSummary(uptime.StatusUp, []uptime.Check{{Status: uptime.StatusUp}}))
	assert.Equal(t, "in 1/2 locations", locationSummary(uptime.StatusUp, []uptime.Check{
		{Status: uptime.StatusUp}, {Status: uptime.StatusDown},
	}))
}
