package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/upmon/internal/checker"
	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/metrics"
	"github.com/rileyhilliard/upmon/internal/ui"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// CheckOptions configures `upmon check`.
type CheckOptions struct {
	Once        bool
	MetricsAddr string
}

func checkCommand(ctx context.Context, opts CheckOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	c := checker.New(st, cfg.Check)

	if opts.Once {
		return checkOnceAndReport(ctx, os.Stdout, c, cfg)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, metricsErr := metrics.StartServer(ctx, opts.MetricsAddr)

	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	select {
	case err := <-runErr:
		return err
	case err := <-metricsErr:
		stop()
		<-runErr
		return errors.WrapWithCode(err, errors.ErrCheck,
			"Metrics server failed",
			"Pick a free address with --metrics-addr, or pass --metrics-addr off")
	}
}

// checkOnceAndReport runs a single round and prints one row per monitor.
func checkOnceAndReport(ctx context.Context, out io.Writer, c *checker.Checker, cfg *config.Config) error {
	sp := ui.NewSpinner(os.Stderr, fmt.Sprintf("Checking monitors from %s", cfg.Check.Location))
	sp.Start()

	checks, err := c.CheckAll(ctx)
	if err != nil && len(checks) == 0 {
		sp.Fail("Check round failed")
		return err
	}

	down := 0
	for _, ch := range checks {
		if ch.Status == uptime.StatusDown {
			down++
		}
	}
	if down > 0 {
		sp.Fail(fmt.Sprintf("%d of %d monitors down", down, len(checks)))
	} else {
		sp.Success(fmt.Sprintf("%d monitors checked", len(checks)))
	}

	fmt.Fprint(out, renderCheckResults(checks))
	return err
}

func renderCheckResults(checks []uptime.Check) string {
	if len(checks) == 0 {
		return ui.MutedStyle().Render("No monitors to check. Add one with `upmon endpoint add <url>`") + "\n"
	}

	rows := make([][]string, 0, len(checks))
	for _, ch := range checks {
		symbol := ui.SuccessStyle().Render(ui.SymbolSuccess)
		if ch.Status != uptime.StatusUp {
			symbol = ui.ErrorStyle().Render(ui.SymbolFail)
		}
		detail := ch.Error
		if detail == "" {
			detail = ch.IP
		}
		rows = append(rows, []string{
			symbol,
			ch.MonitorID,
			string(ch.Status),
			ch.Duration.Round(time.Millisecond).String(),
			detail,
		})
	}
	return ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "Monitor", Width: 36},
		{Title: "Status", Width: 8},
		{Title: "Time", Width: 10},
		{Title: "Detail", Width: 40},
	}, rows) + "\n"
}
