package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/store"
	"github.com/rileyhilliard/upmon/internal/ui"
)

// openStore opens the configured store and registers any monitors listed in
// the config file that it doesn't know yet.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := seedMonitors(ctx, st, cfg.Monitors); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func seedMonitors(ctx context.Context, st store.Store, monitors []config.MonitorConfig) error {
	log := logger.Default()
	for _, mc := range monitors {
		m, created, err := st.EnsureMonitor(ctx, defaultName(mc.Name, mc.URL), mc.URL)
		if err != nil {
			return err
		}
		if created {
			log.Info("registered %s from config as %s", m.URL, m.ID)
		}
	}
	return nil
}

// defaultName falls back to the URL host when name is blank.
func defaultName(name, rawURL string) string {
	if name != "" {
		return name
	}
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return rawURL
}

func endpointAdd(out io.Writer, rawURL, name string) error {
	if err := config.ValidateMonitorURL(rawURL); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't monitor that URL",
			"Use an absolute http:// or https:// URL.")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	m, err := st.AddMonitor(ctx, defaultName(name, rawURL), rawURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Monitoring %s as %s (%s)\n", ui.SuccessStyle().Render(ui.SymbolSuccess), m.URL, m.Name, m.ID)
	return nil
}

func endpointRemove(out io.Writer, id string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.RemoveMonitor(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Removed %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), id)
	return nil
}

func endpointList(out io.Writer) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	monitors, err := st.ListMonitors(ctx)
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		fmt.Fprintln(out, ui.MutedStyle().Render("No monitors yet. Add one with `upmon endpoint add <url>`"))
		return nil
	}

	rows := make([][]string, 0, len(monitors))
	for _, m := range monitors {
		rows = append(rows, []string{m.ID, m.Name, m.URL, humanize.Time(m.CreatedAt)})
	}
	fmt.Fprintln(out, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "ID", Width: 36},
		{Title: "Name", Width: 20},
		{Title: "URL", Width: 40},
		{Title: "Added", Width: 16},
	}, rows))
	return nil
}
