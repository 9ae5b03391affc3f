package config

import (
	"os"
	"time"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Store backends.
const (
	BackendRedis = "redis"
	BackendFile  = "file"
)

// PageSizeOptions are the page sizes the list view offers.
var PageSizeOptions = []int{5, 10, 25, 50, 100}

// Config represents the complete .upmon.yaml configuration file.
type Config struct {
	Version  int             `yaml:"version" mapstructure:"version"`
	BaseURL  string          `yaml:"base_url" mapstructure:"base_url"`
	List     ListConfig      `yaml:"list" mapstructure:"list"`
	Store    StoreConfig     `yaml:"store" mapstructure:"store"`
	Check    CheckConfig     `yaml:"check" mapstructure:"check"`
	Monitors []MonitorConfig `yaml:"monitors,omitempty" mapstructure:"monitors"`
}

// ListConfig controls the monitor list dashboard.
type ListConfig struct {
	// PageSize is how many monitors one page shows. Must be one of PageSizeOptions.
	PageSize int `yaml:"page_size" mapstructure:"page_size"`

	// DangerColor is the hex color used for down states and failing history bars.
	DangerColor string `yaml:"danger_color" mapstructure:"danger_color"`

	// SuccessColor is accepted for symmetry with DangerColor.
	SuccessColor string `yaml:"success_color" mapstructure:"success_color"`

	// RefreshInterval is how often the list re-queries the store.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// LinkParameters is appended verbatim to monitor detail links.
	LinkParameters string `yaml:"link_parameters" mapstructure:"link_parameters"`
}

// StoreConfig selects where monitor state lives.
type StoreConfig struct {
	// Backend is "redis" or "file".
	Backend string      `yaml:"backend" mapstructure:"backend"`
	Redis   RedisConfig `yaml:"redis" mapstructure:"redis"`
	File    FileConfig  `yaml:"file" mapstructure:"file"`
}

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`

	// Prefix namespaces every key the store writes.
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
}

// FileConfig points at a YAML snapshot of monitors and checks.
type FileConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// CheckConfig controls the HTTP checker.
type CheckConfig struct {
	Interval    time.Duration `yaml:"interval" mapstructure:"interval"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"`

	// HistorySize caps how many checks are kept per monitor.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// Bucket is the width of one history bar.
	Bucket time.Duration `yaml:"bucket" mapstructure:"bucket"`

	// Location names where checks run from. Defaults to the hostname.
	Location string `yaml:"location" mapstructure:"location"`
}

// MonitorConfig seeds a monitor from the config file.
type MonitorConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	URL  string `yaml:"url" mapstructure:"url"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		BaseURL: "http://localhost:5601/app/uptime",
		List: ListConfig{
			PageSize:        10,
			DangerColor:     "#FF0055",
			SuccessColor:    "#39FF14",
			RefreshInterval: 30 * time.Second,
		},
		Store: StoreConfig{
			Backend: BackendRedis,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "upmon",
			},
			File: FileConfig{
				Path: "upmon-state.yaml",
			},
		},
		Check: CheckConfig{
			Interval:    time.Minute,
			Timeout:     10 * time.Second,
			Concurrency: 8,
			HistorySize: 100,
			Bucket:      5 * time.Minute,
			Location:    defaultLocation(),
		},
	}
}

func defaultLocation() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "local"
	}
	return host
}
