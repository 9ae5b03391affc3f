package uptime

import (
	"sort"
	"time"
)

// Histogram defaults: twelve 5-minute buckets cover the last hour.
const (
	DefaultBucketSize  = 5 * time.Minute
	DefaultBucketCount = 12
)

// HistogramOptions controls how checks are bucketed.
type HistogramOptions struct {
	BucketSize  time.Duration
	BucketCount int
}

func (o HistogramOptions) normalized() HistogramOptions {
	if o.BucketSize <= 0 {
		o.BucketSize = DefaultBucketSize
	}
	if o.BucketCount <= 0 {
		o.BucketCount = DefaultBucketCount
	}
	return o
}

// BuildHistogram buckets checks into BucketCount windows ending at now,
// oldest first. Checks outside the window are ignored. Returns nil when
// there are no checks at all.
func BuildHistogram(checks []Check, opts HistogramOptions, now time.Time) *SummaryHistogram {
	if len(checks) == 0 {
		return nil
	}
	opts = opts.normalized()

	last := now.Truncate(opts.BucketSize)
	first := last.Add(-time.Duration(opts.BucketCount-1) * opts.BucketSize)

	points := make([]SummaryHistogramPoint, opts.BucketCount)
	for i := range points {
		points[i].Timestamp = first.Add(time.Duration(i) * opts.BucketSize)
	}

	count := 0
	for _, c := range checks {
		if c.Timestamp.Before(first) || !c.Timestamp.Before(last.Add(opts.BucketSize)) {
			continue
		}
		idx := int(c.Timestamp.Sub(first) / opts.BucketSize)
		switch c.Status {
		case StatusUp:
			points[idx].Up++
		case StatusDown:
			points[idx].Down++
		default:
			continue
		}
		count++
	}

	return &SummaryHistogram{Count: count, Points: points}
}

// Summarize builds a MonitorSummary from a monitor's identity and its recent
// checks. The state keeps the newest check per location; the monitor is down
// if any location's newest check is down, up if all are up, unknown otherwise.
func Summarize(id, name, url string, checks []Check, opts HistogramOptions, now time.Time) MonitorSummary {
	latest := make(map[string]Check)
	for _, c := range checks {
		cur, ok := latest[c.Location]
		if !ok || c.Timestamp.After(cur.Timestamp) {
			latest[c.Location] = c
		}
	}

	perLocation := make([]Check, 0, len(latest))
	for _, c := range latest {
		perLocation = append(perLocation, c)
	}
	sort.Slice(perLocation, func(i, j int) bool {
		return perLocation[i].Location < perLocation[j].Location
	})

	var ts time.Time
	status := StatusUnknown
	if len(perLocation) > 0 {
		status = StatusUp
	}
	for _, c := range perLocation {
		if c.Timestamp.After(ts) {
			ts = c.Timestamp
		}
		switch {
		case c.Status == StatusDown:
			status = StatusDown
		case c.Status != StatusUp && status == StatusUp:
			status = StatusUnknown
		}
	}

	return MonitorSummary{
		MonitorID: id,
		State: SummaryState{
			Timestamp: ts,
			Monitor:   MonitorInfo{Name: name, Status: status},
			URL:       URLInfo{Full: url},
			Checks:    perLocation,
		},
		Histogram: BuildHistogram(checks, opts, now),
	}
}
