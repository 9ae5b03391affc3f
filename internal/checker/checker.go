// Package checker probes monitored endpoints over HTTP and records the
// results in a store.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rileyhilliard/upmon/internal/config"
	uperrors "github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/metrics"
	"github.com/rileyhilliard/upmon/internal/store"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Store is what the checker needs from a backend.
type Store interface {
	ListMonitors(ctx context.Context) ([]store.Monitor, error)
	RecordCheck(ctx context.Context, check uptime.Check) error
}

// Checker runs HTTP checks against every registered monitor.
type Checker struct {
	store       Store
	client      *http.Client
	timeout     time.Duration
	interval    time.Duration
	concurrency int
	location    string
	log         logger.Logger
	now         func() time.Time
}

// New creates a checker using the check section of the config.
func New(st Store, cfg config.CheckConfig) *Checker {
	c := &Checker{
		store:       st,
		client:      &http.Client{},
		timeout:     cfg.Timeout,
		interval:    cfg.Interval,
		concurrency: cfg.Concurrency,
		location:    cfg.Location,
		log:         logger.Default(),
		now:         time.Now,
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}
	if c.interval <= 0 {
		c.interval = time.Minute
	}
	if c.concurrency < 1 {
		c.concurrency = 1
	}
	if c.location == "" {
		c.location = "local"
	}
	return c
}

// SetHTTPClient replaces the client used for probes.
func (c *Checker) SetHTTPClient(client *http.Client) {
	c.client = client
}

// SetLogger replaces the checker's logger.
func (c *Checker) SetLogger(l logger.Logger) {
	c.log = l
}

// CheckOne probes a single monitor. 2xx and 3xx responses are up; anything
// else, including transport errors and timeouts, is down.
func (c *Checker) CheckOne(ctx context.Context, m store.Monitor) uptime.Check {
	check := uptime.Check{
		MonitorID: m.ID,
		Location:  c.location,
		Timestamp: c.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if host, _, err := net.SplitHostPort(info.Conn.RemoteAddr().String()); err == nil {
				check.IP = host
			}
		},
	}
	ctx = httptrace.WithClientTrace(ctx, trace)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		check.Status = uptime.StatusDown
		check.Error = err.Error()
		return check
	}
	req.Header.Set("User-Agent", "upmon")

	start := time.Now()
	resp, err := c.client.Do(req)
	check.Duration = time.Since(start)
	if err != nil {
		check.Status = uptime.StatusDown
		check.Error = err.Error()
		return check
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		check.Status = uptime.StatusUp
	} else {
		check.Status = uptime.StatusDown
		check.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return check
}

// CheckAll probes every monitor with bounded concurrency and records each
// result. It returns the checks in monitor order; failures to record are
// joined into the returned error but don't stop other checks.
func (c *Checker) CheckAll(ctx context.Context) ([]uptime.Check, error) {
	monitors, err := c.store.ListMonitors(ctx)
	if err != nil {
		return nil, err
	}

	checks := make([]uptime.Check, len(monitors))
	var (
		mu      sync.Mutex
		recErrs []error
	)

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for i, m := range monitors {
		g.Go(func() error {
			check := c.CheckOne(ctx, m)
			checks[i] = check
			observe(m, check)

			if check.Status == uptime.StatusDown {
				c.log.Warn("%s is down: %s", m.URL, check.Error)
			} else {
				c.log.Debug("%s is up (%s)", m.URL, check.Duration.Round(time.Millisecond))
			}

			if err := c.store.RecordCheck(ctx, check); err != nil {
				metrics.RecordFailuresTotal.WithLabelValues(m.ID).Inc()
				c.log.Error("failed to record check for %s: %v", m.ID, err)
				mu.Lock()
				recErrs = append(recErrs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(recErrs) > 0 {
		return checks, uperrors.WrapWithCode(errors.Join(recErrs...), uperrors.ErrCheck,
			fmt.Sprintf("Failed to record %d of %d checks", len(recErrs), len(monitors)),
			"Check that the store is reachable")
	}
	return checks, nil
}

// Run checks every monitor immediately and then once per interval until ctx
// is cancelled. A failed round is logged and retried on the next tick.
func (c *Checker) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Info("checking monitors every %s from %s", c.interval, c.location)
	for {
		if _, err := c.CheckAll(ctx); err != nil {
			c.log.Error("check round failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func observe(m store.Monitor, check uptime.Check) {
	metrics.ChecksTotal.WithLabelValues(m.ID, string(check.Status)).Inc()
	metrics.CheckDuration.WithLabelValues(m.ID).Observe(check.Duration.Seconds())
	metrics.CheckLastTimestamp.WithLabelValues(m.ID).Set(float64(check.Timestamp.Unix()))
}
