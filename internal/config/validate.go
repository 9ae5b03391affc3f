package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rileyhilliard/upmon/internal/errors"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but upmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest upmon release.")
	}

	if err := validateList(cfg.List); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'list' section in your .upmon.yaml.")
	}

	if err := validateStore(cfg.Store); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'store' section in your .upmon.yaml.")
	}

	if err := validateCheck(cfg.Check); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'check' section in your .upmon.yaml.")
	}

	for i, m := range cfg.Monitors {
		if err := ValidateMonitorURL(m.URL); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("monitors[%d]: %v", i, err),
				"Each monitor needs an absolute http or https URL.")
		}
	}

	if cfg.BaseURL != "" {
		if _, err := url.Parse(cfg.BaseURL); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("base_url %q isn't a valid URL", cfg.BaseURL),
				"Set base_url to where monitor detail pages live, or leave it empty.")
		}
	}

	return nil
}

// ValidPageSize reports whether n is one of the offered page sizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizeOptions, n)
}

// ValidateMonitorURL checks that raw is an absolute http(s) URL.
func ValidateMonitorURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

func validateList(l ListConfig) error {
	if !ValidPageSize(l.PageSize) {
		return fmt.Errorf("page_size %d isn't supported (pick one of %v)", l.PageSize, PageSizeOptions)
	}
	if !hexColorPattern.MatchString(l.DangerColor) {
		return fmt.Errorf("danger_color %q isn't a hex color like #FF0055", l.DangerColor)
	}
	if l.SuccessColor != "" && !hexColorPattern.MatchString(l.SuccessColor) {
		return fmt.Errorf("success_color %q isn't a hex color like #39FF14", l.SuccessColor)
	}
	if l.RefreshInterval < time.Second {
		return fmt.Errorf("refresh_interval must be at least 1s, got %s", l.RefreshInterval)
	}
	return nil
}

func validateStore(s StoreConfig) error {
	switch s.Backend {
	case BackendRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr is required for the redis backend")
		}
		if s.Redis.DB < 0 {
			return fmt.Errorf("store.redis.db can't be negative")
		}
	case BackendFile:
		if s.File.Path == "" {
			return fmt.Errorf("store.file.path is required for the file backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q (use %q or %q)", s.Backend, BackendRedis, BackendFile)
	}
	return nil
}

func validateCheck(c CheckConfig) error {
	if c.Interval < time.Second {
		return fmt.Errorf("check.interval must be at least 1s, got %s", c.Interval)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("check.timeout must be positive")
	}
	if c.Timeout > c.Interval {
		return fmt.Errorf("check.timeout (%s) can't exceed check.interval (%s)", c.Timeout, c.Interval)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("check.concurrency must be at least 1")
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("check.history_size must be at least 1")
	}
	if c.Bucket < time.Second {
		return fmt.Errorf("check.bucket must be at least 1s, got %s", c.Bucket)
	}
	return nil
}
