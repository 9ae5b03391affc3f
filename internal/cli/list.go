package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/monitor"
	"github.com/rileyhilliard/upmon/internal/query"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// listCommand opens the monitor list dashboard.
func listCommand(flags ListFlags) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	restore := useDashboardLogger()
	defer restore()

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	opts, err := listOptions(cfg, path, flags, st)
	if err != nil {
		return err
	}
	opts.Hyperlinks = !flags.NoLinks && term.IsTerminal(int(os.Stdout.Fd()))

	p := tea.NewProgram(monitor.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Dashboard exited with an error")
	}
	return nil
}

// listOptions turns config and flags into dashboard options. Flags win over
// config values.
func listOptions(cfg *config.Config, path string, flags ListFlags, src query.Source) (monitor.Options, error) {
	if err := ValidatePageSizeFlag(flags.PageSize); err != nil {
		return monitor.Options{}, err
	}
	statuses, err := ParseStatuses(flags.Status)
	if err != nil {
		return monitor.Options{}, err
	}
	interval, err := ParseInterval(flags.Interval, cfg.List.RefreshInterval)
	if err != nil {
		return monitor.Options{}, err
	}

	pageSize := cfg.List.PageSize
	if flags.PageSize != 0 {
		pageSize = flags.PageSize
	}
	linkParams := cfg.List.LinkParameters
	if flags.LinkParams != "" {
		linkParams = flags.LinkParams
	}

	filters := uptime.Filters{Statuses: statuses, Search: flags.Search}

	return monitor.Options{
		Props: monitor.Props{
			DangerColor:      lipgloss.Color(cfg.List.DangerColor),
			SuccessColor:     lipgloss.Color(cfg.List.SuccessColor),
			HasActiveFilters: filters.Active(),
			LinkParameters:   linkParams,
			BaseURL:          cfg.BaseURL,
			PageSize:         pageSize,
			SetPageSize:      pageSizeSaver(path),
		},
		Source:          src,
		Filters:         filters,
		RefreshInterval: interval,
		Timeout:         cfg.Check.Timeout,
	}, nil
}

// pageSizeSaver persists page-size changes to the config file the dashboard
// was loaded from.
func pageSizeSaver(path string) func(int) error {
	return func(size int) error {
		if path == "" {
			return errors.New(errors.ErrConfig,
				"no config file to save to",
				"Run 'upmon init' to create .upmon.yaml")
		}
		return config.SavePageSize(path, size)
	}
}

// useDashboardLogger swaps the default logger for one that stays off the
// terminal while the dashboard owns it: the UPMON_LOG_FILE logger when set,
// otherwise a no-op. The returned func restores the previous logger.
func useDashboardLogger() func() {
	prev := logger.Default()
	if os.Getenv(logger.EnvLogFile) != "" {
		logger.SetDefault(logger.NewEnvLogger(""))
	} else {
		logger.SetDefault(logger.Noop())
	}
	return func() { logger.SetDefault(prev) }
}

// loadConfig finds, loads, and validates the active config.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
