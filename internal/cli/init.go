package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write into; defaults to "."
	Backend        string // Pre-selected store backend
	RedisAddr      string
	BaseURL        string
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
	Out            io.Writer
}

// Init creates a new .upmon.yaml configuration file.
func Init(opts InitOptions) error {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	// Prompts need a terminal on the other end.
	if !opts.NonInteractive && !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.NonInteractive = true
	}

	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}
	if opts.RedisAddr != "" {
		cfg.Store.Redis.Addr = opts.RedisAddr
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.WriteDefault(configPath, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintln(opts.Out, ui.RenderHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "config created",
		Detail:  configPath,
	}))
	fmt.Fprintf(opts.Out, "%s Created %s (store: %s)\n\n", ui.SymbolSuccess, configPath, cfg.Store.Backend)
	fmt.Fprintln(opts.Out, "Next steps:")
	fmt.Fprintln(opts.Out, "  upmon endpoint add <url>  - Start monitoring a URL")
	fmt.Fprintln(opts.Out, "  upmon check               - Run checks on a schedule")
	fmt.Fprintln(opts.Out, "  upmon                     - Open the monitor list")

	return nil
}

// promptConfig asks for the store backend, its address, and the link base URL.
func promptConfig(cfg *config.Config) error {
	backend := cfg.Store.Backend
	redisAddr := cfg.Store.Redis.Addr
	filePath := cfg.Store.File.Path
	baseURL := cfg.BaseURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should monitor history live?").
				Options(
					huh.NewOption("Redis", config.BackendRedis),
					huh.NewOption("Local YAML file", config.BackendFile),
				).
				Value(&backend),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Redis address").
				Placeholder("localhost:6379").
				Value(&redisAddr).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("redis address is required")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return backend != config.BackendRedis }),
		huh.NewGroup(
			huh.NewInput().
				Title("State file").
				Placeholder("upmon-state.yaml").
				Value(&filePath),
		).WithHideFunc(func() bool { return backend != config.BackendFile }),
		huh.NewGroup(
			huh.NewInput().
				Title("Dashboard base URL").
				Description("Monitor names link to <base>/monitor/<id>").
				Value(&baseURL),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.Store.Backend = backend
	cfg.Store.Redis.Addr = strings.TrimSpace(redisAddr)
	if strings.TrimSpace(filePath) != "" {
		cfg.Store.File.Path = strings.TrimSpace(filePath)
	}
	cfg.BaseURL = strings.TrimSpace(baseURL)
	return nil
}
