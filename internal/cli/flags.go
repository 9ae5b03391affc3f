package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// ListFlags holds the flags shared by `upmon` and `upmon list`.
type ListFlags struct {
	PageSize   int
	Status     string
	Search     string
	Interval   string
	LinkParams string
	NoLinks    bool
}

// addListFlags registers the list flags on cmd.
func addListFlags(cmd *cobra.Command, flags *ListFlags) {
	cmd.Flags().IntVar(&flags.PageSize, "page-size", 0,
		fmt.Sprintf("monitors per page (one of %s)", joinInts(config.PageSizeOptions)))
	cmd.Flags().StringVar(&flags.Status, "status", "", "only show these statuses (comma-separated: up,down,unknown)")
	cmd.Flags().StringVar(&flags.Search, "search", "", "only show monitors whose id, name, or URL contains this text")
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "refresh interval (e.g., 10s, 1m); defaults to list.refresh_interval")
	cmd.Flags().StringVar(&flags.LinkParams, "link-params", "", "query string appended to monitor detail links")
	cmd.Flags().BoolVar(&flags.NoLinks, "no-links", false, "disable terminal hyperlinks")
}

// ParseStatuses parses a comma-separated status filter. Empty input means
// no status filter.
func ParseStatuses(flag string) ([]uptime.Status, error) {
	var out []uptime.Status
	for _, part := range strings.Split(flag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st := uptime.ParseStatus(part)
		if st == uptime.StatusUnknown && !strings.EqualFold(part, string(uptime.StatusUnknown)) {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a monitor status", part),
				"Use up, down, or unknown (comma-separated for several).")
		}
		out = append(out, st)
	}
	return out, nil
}

// ParseInterval parses a refresh interval. Empty input returns fallback.
func ParseInterval(flag string, fallback time.Duration) (time.Duration, error) {
	if flag == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 10s, 30s, or 1m.")
	}
	if d < time.Second {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			"Minimum refresh interval is 1s to avoid hammering the store.")
	}
	return d, nil
}

// ValidatePageSizeFlag checks an explicit --page-size. Zero means unset.
func ValidatePageSizeFlag(n int) error {
	if n == 0 || config.ValidPageSize(n) {
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Page size %d isn't supported", n),
		fmt.Sprintf("Pick one of %s.", joinInts(config.PageSizeOptions)))
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
