// Package store persists monitors and their check history and answers
// paginated monitor-state queries.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Monitor is a registered endpoint.
type Monitor struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	URL       string    `yaml:"url"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Store is the full set of operations both backends support.
type Store interface {
	MonitorStates(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error)
	AddMonitor(ctx context.Context, name, url string) (Monitor, error)
	EnsureMonitor(ctx context.Context, name, url string) (Monitor, bool, error)
	RemoveMonitor(ctx context.Context, id string) error
	ListMonitors(ctx context.Context) ([]Monitor, error)
	RecordCheck(ctx context.Context, check uptime.Check) error
	Ping(ctx context.Context) error
	Close() error
}

// Options tune how a store keeps and summarizes history.
type Options struct {
	// HistorySize caps stored checks per monitor.
	HistorySize int
	Histogram   uptime.HistogramOptions
	// Now is the clock used when bucketing history. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) normalized() Options {
	if o.HistorySize <= 0 {
		o.HistorySize = 100
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// OptionsFromConfig builds store options from the check section.
func OptionsFromConfig(c config.CheckConfig) Options {
	return Options{
		HistorySize: c.HistorySize,
		Histogram: uptime.HistogramOptions{
			BucketSize:  c.Bucket,
			BucketCount: uptime.DefaultBucketCount,
		},
	}
}

// Open returns the backend selected in cfg. Redis connections are verified
// with a ping before returning.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	opts := OptionsFromConfig(cfg.Check)

	switch cfg.Store.Backend {
	case config.BackendRedis:
		s := NewRedisStore(cfg.Store.Redis, opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.Ping(pingCtx); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	case config.BackendFile:
		return NewFileStore(cfg.Store.File.Path, opts), nil
	default:
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown store backend %q", cfg.Store.Backend),
			"Set store.backend to 'redis' or 'file' in .upmon.yaml")
	}
}

func notFound(id string) error {
	return errors.New(errors.ErrStore,
		fmt.Sprintf("Monitor %s not found", id),
		"Run 'upmon endpoint list' to see registered monitors")
}
