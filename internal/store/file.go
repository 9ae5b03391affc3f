package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Snapshot is the on-disk layout of a FileStore.
type Snapshot struct {
	Monitors []SnapshotMonitor `yaml:"monitors"`
}

// SnapshotMonitor is a monitor plus its history, newest check first.
type SnapshotMonitor struct {
	Monitor `yaml:",inline"`
	Checks  []uptime.Check `yaml:"checks,omitempty"`
}

// FileStore keeps monitors in a single YAML file. Every call re-reads the
// file, so edits made by another process show up on the next query.
type FileStore struct {
	mu   sync.Mutex
	path string
	opts Options
	log  logger.Logger
}

// NewFileStore returns a store backed by path. A missing file is an empty store.
func NewFileStore(path string, opts Options) *FileStore {
	return &FileStore{path: path, opts: opts.normalized(), log: logger.Default()}
}

// Ping checks that the snapshot can be read.
func (s *FileStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.read()
	return err
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Failed to read state file "+s.path,
			"Check store.file.path in .upmon.yaml")
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"State file "+s.path+" isn't valid YAML",
			"Fix or remove the file; it'll be recreated on the next check")
	}
	return &snap, nil
}

func (s *FileStore) write(snap *Snapshot) error {
	sort.Slice(snap.Monitors, func(i, j int) bool {
		return snap.Monitors[i].ID < snap.Monitors[j].ID
	})

	data, err := yaml.Marshal(snap)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore, "Failed to encode state", "")
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrStore, "Failed to create "+dir, "Check directory permissions")
		}
	}

	// Write then rename so readers never see a partial file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore, "Failed to write state file "+s.path, "Check file permissions")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore, "Failed to replace state file "+s.path, "Check file permissions")
	}
	return nil
}

// AddMonitor registers a new monitor with a generated id.
func (s *FileStore) AddMonitor(ctx context.Context, name, url string) (Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(name, url)
}

func (s *FileStore) add(name, url string) (Monitor, error) {
	snap, err := s.read()
	if err != nil {
		return Monitor{}, err
	}

	m := Monitor{ID: uuid.New().String(), Name: name, URL: url, CreatedAt: time.Now().UTC()}
	snap.Monitors = append(snap.Monitors, SnapshotMonitor{Monitor: m})
	if err := s.write(snap); err != nil {
		return Monitor{}, err
	}

	s.log.Info("added monitor %s (%s)", m.ID, m.URL)
	return m, nil
}

// EnsureMonitor returns the monitor watching url, adding one if none exists.
func (s *FileStore) EnsureMonitor(ctx context.Context, name, url string) (Monitor, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return Monitor{}, false, err
	}
	for _, m := range snap.Monitors {
		if m.URL == url {
			return m.Monitor, false, nil
		}
	}
	m, err := s.add(name, url)
	return m, err == nil, err
}

// RemoveMonitor deletes a monitor and its history.
func (s *FileStore) RemoveMonitor(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	for i, m := range snap.Monitors {
		if m.ID == id {
			snap.Monitors = append(snap.Monitors[:i], snap.Monitors[i+1:]...)
			return s.write(snap)
		}
	}
	return notFound(id)
}

// ListMonitors returns every monitor ordered by id.
func (s *FileStore) ListMonitors(ctx context.Context) ([]Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]Monitor, 0, len(snap.Monitors))
	for _, m := range snap.Monitors {
		out = append(out, m.Monitor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// RecordCheck prepends a check to the monitor's history and trims it.
func (s *FileStore) RecordCheck(ctx context.Context, check uptime.Check) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	for i := range snap.Monitors {
		m := &snap.Monitors[i]
		if m.ID != check.MonitorID {
			continue
		}
		m.Checks = append([]uptime.Check{check}, m.Checks...)
		if len(m.Checks) > s.opts.HistorySize {
			m.Checks = m.Checks[:s.opts.HistorySize]
		}
		return s.write(snap)
	}
	return notFound(check.MonitorID)
}

// MonitorStates summarizes every monitor and pages through them in memory.
func (s *FileStore) MonitorStates(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error) {
	s.mu.Lock()
	snap, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	summaries := make([]uptime.MonitorSummary, 0, len(snap.Monitors))
	for _, m := range snap.Monitors {
		if m.URL == "" {
			s.log.Warn("monitor %s has no url, skipping", m.ID)
			continue
		}
		summaries = append(summaries, uptime.Summarize(m.ID, m.Name, m.URL, m.Checks, s.opts.Histogram, now))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].MonitorID < summaries[j].MonitorID
	})

	res, err := uptime.Paginate(summaries, req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrQuery, fmt.Sprintf("Invalid pagination token %q", req.Pagination), "Go back to the first page")
	}
	return res, nil
}
