package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rileyhilliard/upmon/internal/config"
	uperrors "github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// scanBatch is how many ids one lexicographic range call fetches while
// scanning for filter matches.
const scanBatch = 100

// RedisStore keeps monitors in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	addr   string
	opts   Options
	log    logger.Logger
}

// NewRedisStore creates a store for the configured Redis server. It doesn't
// connect until the first command; call Ping to verify the connection.
func NewRedisStore(cfg config.RedisConfig, opts Options) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return NewRedisStoreWithClient(client, cfg.Prefix, opts)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string, opts Options) *RedisStore {
	if prefix == "" {
		prefix = "upmon"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		addr:   client.Options().Addr,
		opts:   opts.normalized(),
		log:    logger.Default(),
	}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks that Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return s.wrap(err, fmt.Sprintf("Can't reach Redis at %s", s.addr))
	}
	return nil
}

func (s *RedisStore) wrap(err error, msg string) error {
	return uperrors.WrapWithCode(err, uperrors.ErrStore, msg,
		fmt.Sprintf("Check that Redis is running at %s and store.redis in .upmon.yaml is right", s.addr))
}

// AddMonitor registers a new monitor with a generated id.
func (s *RedisStore) AddMonitor(ctx context.Context, name, url string) (Monitor, error) {
	m := Monitor{
		ID:        uuid.New().String(),
		Name:      name,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, s.keyMonitors(), redis.Z{Score: 0, Member: m.ID})
	pipe.HSet(ctx, s.keyMonitorInfo(m.ID),
		infoFieldName, m.Name,
		infoFieldURL, m.URL,
		infoFieldCreatedAt, m.CreatedAt.Format(time.RFC3339),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		return Monitor{}, s.wrap(err, "Failed to add monitor for "+url)
	}

	s.log.Info("added monitor %s (%s)", m.ID, m.URL)
	return m, nil
}

// EnsureMonitor returns the monitor watching url, adding one if none exists.
// The bool reports whether a monitor was created.
func (s *RedisStore) EnsureMonitor(ctx context.Context, name, url string) (Monitor, bool, error) {
	monitors, err := s.ListMonitors(ctx)
	if err != nil {
		return Monitor{}, false, err
	}
	for _, m := range monitors {
		if m.URL == url {
			return m, false, nil
		}
	}
	m, err := s.AddMonitor(ctx, name, url)
	return m, err == nil, err
}

// RemoveMonitor deletes a monitor and its history.
func (s *RedisStore) RemoveMonitor(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	removed := pipe.ZRem(ctx, s.keyMonitors(), id)
	pipe.Del(ctx, s.keyMonitorInfo(id), s.keyMonitorChecks(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return s.wrap(err, "Failed to remove monitor "+id)
	}
	if removed.Val() == 0 {
		return notFound(id)
	}

	s.log.Info("removed monitor %s", id)
	return nil
}

// ListMonitors returns every monitor ordered by id.
func (s *RedisStore) ListMonitors(ctx context.Context) ([]Monitor, error) {
	ids, err := s.client.ZRangeByLex(ctx, s.keyMonitors(), &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	if err != nil {
		return nil, s.wrap(err, "Failed to list monitors")
	}

	pipe := s.client.Pipeline()
	cmds := make(map[string]*redis.MapStringStringCmd, len(ids))
	for _, id := range ids {
		cmds[id] = pipe.HGetAll(ctx, s.keyMonitorInfo(id))
	}
	if len(ids) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, s.wrap(err, "Failed to load monitor info")
		}
	}

	monitors := make([]Monitor, 0, len(ids))
	for _, id := range ids {
		info := cmds[id].Val()
		if info[infoFieldURL] == "" {
			s.log.Warn("monitor %s has no url, skipping", id)
			continue
		}
		monitors = append(monitors, monitorFromInfo(id, info))
	}
	return monitors, nil
}

// RecordCheck prepends a check to the monitor's history and trims it.
func (s *RedisStore) RecordCheck(ctx context.Context, check uptime.Check) error {
	if err := s.client.ZScore(ctx, s.keyMonitors(), check.MonitorID).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound(check.MonitorID)
		}
		return s.wrap(err, "Failed to look up monitor "+check.MonitorID)
	}

	data, err := json.Marshal(check)
	if err != nil {
		return uperrors.WrapWithCode(err, uperrors.ErrStore, "Failed to encode check", "")
	}

	key := s.keyMonitorChecks(check.MonitorID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(s.opts.HistorySize-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return s.wrap(err, "Failed to record check for "+check.MonitorID)
	}
	return nil
}

// MonitorStates answers a paginated query. Ids are walked in lexicographic
// order with ZRANGEBYLEX so cursors stay valid as monitors come and go.
func (s *RedisStore) MonitorStates(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error) {
	cursor, err := uptime.DecodeCursor(req.Pagination)
	if err != nil {
		return nil, uperrors.WrapWithCode(err, uperrors.ErrQuery, "Invalid pagination token", "Go back to the first page")
	}

	size := req.PageSize
	if size <= 0 {
		size = uptime.DefaultPageSize
	}
	filters := req.Filters

	result := &uptime.MonitorSummaryResult{}
	var page []uptime.MonitorSummary

	switch cursor.CursorDirection {
	case uptime.CursorBefore:
		items, err := s.scan(ctx, false, rangeBound{key: cursor.CursorKey}, filters, size+1)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 && cursor.CursorKey != "" {
			// Every id before the cursor is gone: fall back to the first page.
			return s.MonitorStates(ctx, uptime.Request{PageSize: size, Filters: filters})
		}
		hasPrev := len(items) > size
		page = items[:min(len(items), size)]
		slices.Reverse(page)

		if len(page) > 0 {
			if hasPrev {
				result.PrevPagePagination = uptime.EncodeCursor(uptime.CursorPagination{
					CursorKey:       page[0].MonitorID,
					CursorDirection: uptime.CursorBefore,
				})
			}
			more, err := s.scan(ctx, true, rangeBound{key: page[len(page)-1].MonitorID}, filters, 1)
			if err != nil {
				return nil, err
			}
			if len(more) > 0 {
				result.NextPagePagination = uptime.EncodeCursor(uptime.CursorPagination{
					CursorKey:       page[len(page)-1].MonitorID,
					CursorDirection: uptime.CursorAfter,
				})
			}
		}
	default:
		items, err := s.scan(ctx, true, rangeBound{key: cursor.CursorKey}, filters, size+1)
		if err != nil {
			return nil, err
		}
		hasNext := len(items) > size
		page = items[:min(len(items), size)]

		if len(page) > 0 {
			if hasNext {
				result.NextPagePagination = uptime.EncodeCursor(uptime.CursorPagination{
					CursorKey:       page[len(page)-1].MonitorID,
					CursorDirection: uptime.CursorAfter,
				})
			}
		}
		if cursor.CursorKey != "" {
			bound := rangeBound{key: cursor.CursorKey, inclusive: true}
			if len(page) > 0 {
				bound = rangeBound{key: page[0].MonitorID}
			}
			before, err := s.scan(ctx, false, bound, filters, 1)
			if err != nil {
				return nil, err
			}
			if len(before) > 0 {
				result.PrevPagePagination = uptime.EncodeCursor(uptime.CursorPagination{
					CursorKey:       firstID(page),
					CursorDirection: uptime.CursorBefore,
				})
			}
		}
	}

	result.Summaries = page
	if result.Summaries == nil {
		result.Summaries = []uptime.MonitorSummary{}
	}

	total, err := s.count(ctx, filters)
	if err != nil {
		return nil, err
	}
	result.TotalSummaryCount = total

	return result, nil
}

// rangeBound is one end of a lexicographic range. An empty key is open.
type rangeBound struct {
	key       string
	inclusive bool
}

func (b rangeBound) lex(open string) string {
	if b.key == "" {
		return open
	}
	if b.inclusive {
		return "[" + b.key
	}
	return "(" + b.key
}

// scan walks ids from bound in the given direction and collects up to want
// summaries that pass filters. A negative want collects everything.
func (s *RedisStore) scan(ctx context.Context, forward bool, from rangeBound, filters uptime.Filters, want int) ([]uptime.MonitorSummary, error) {
	var out []uptime.MonitorSummary
	bound := from

	for want < 0 || len(out) < want {
		rng := &redis.ZRangeBy{Count: scanBatch}
		var ids []string
		var err error
		if forward {
			rng.Min, rng.Max = bound.lex("-"), "+"
			ids, err = s.client.ZRangeByLex(ctx, s.keyMonitors(), rng).Result()
		} else {
			rng.Min, rng.Max = "-", bound.lex("+")
			ids, err = s.client.ZRevRangeByLex(ctx, s.keyMonitors(), rng).Result()
		}
		if err != nil {
			return nil, s.wrap(err, "Failed to read monitor ids")
		}
		if len(ids) == 0 {
			break
		}

		summaries, err := s.summaries(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, summary := range summaries {
			if !filters.Match(summary) {
				continue
			}
			out = append(out, summary)
			if want >= 0 && len(out) == want {
				break
			}
		}

		if len(ids) < scanBatch {
			break
		}
		bound = rangeBound{key: ids[len(ids)-1]}
	}

	return out, nil
}

// count returns how many monitors pass filters.
func (s *RedisStore) count(ctx context.Context, filters uptime.Filters) (int, error) {
	if !filters.Active() {
		n, err := s.client.ZCard(ctx, s.keyMonitors()).Result()
		if err != nil {
			return 0, s.wrap(err, "Failed to count monitors")
		}
		return int(n), nil
	}
	all, err := s.scan(ctx, true, rangeBound{}, filters, -1)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// summaries loads info and history for ids in one round trip, keeping the
// order of ids. Monitors without a url are skipped.
func (s *RedisStore) summaries(ctx context.Context, ids []string) ([]uptime.MonitorSummary, error) {
	pipe := s.client.Pipeline()
	infoCmds := make([]*redis.MapStringStringCmd, len(ids))
	checkCmds := make([]*redis.StringSliceCmd, len(ids))
	for i, id := range ids {
		infoCmds[i] = pipe.HGetAll(ctx, s.keyMonitorInfo(id))
		checkCmds[i] = pipe.LRange(ctx, s.keyMonitorChecks(id), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, s.wrap(err, "Failed to load monitor state")
	}

	now := s.opts.Now()
	out := make([]uptime.MonitorSummary, 0, len(ids))
	for i, id := range ids {
		info := infoCmds[i].Val()
		if info[infoFieldURL] == "" {
			s.log.Warn("monitor %s has no url, skipping", id)
			continue
		}

		raw := checkCmds[i].Val()
		checks := make([]uptime.Check, 0, len(raw))
		for _, item := range raw {
			var c uptime.Check
			if err := json.Unmarshal([]byte(item), &c); err != nil {
				s.log.Warn("monitor %s: dropping unreadable check: %v", id, err)
				continue
			}
			checks = append(checks, c)
		}

		out = append(out, uptime.Summarize(id, info[infoFieldName], info[infoFieldURL], checks, s.opts.Histogram, now))
	}
	return out, nil
}

func monitorFromInfo(id string, info map[string]string) Monitor {
	m := Monitor{ID: id, Name: info[infoFieldName], URL: info[infoFieldURL]}
	if ts, err := time.Parse(time.RFC3339, info[infoFieldCreatedAt]); err == nil {
		m.CreatedAt = ts
	}
	return m
}

func firstID(page []uptime.MonitorSummary) string {
	if len(page) == 0 {
		return ""
	}
	return page[0].MonitorID
}
