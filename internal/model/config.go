package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CatalogConfig controls where the recipe catalog is loaded from.
type CatalogConfig struct {
	// Path is the SQLite database holding the catalog. The default
	// ":memory:" uses the built-in recipes only.
	Path string `mapstructure:"path" yaml:"path"`
}

// CalendarConfig holds calendar window settings.
type CalendarConfig struct {
	// WindowDays is how many days the calendar strip shows, starting today.
	// Values below 7 are raised to 7 so the plan always fits.
	WindowDays int `mapstructure:"window_days" yaml:"window_days"`
}

// ToastConfig holds notification settings.
type ToastConfig struct {
	DurationMS int `mapstructure:"duration_ms" yaml:"duration_ms"`
}

// ShoppingConfig holds shopping list display preferences.
type ShoppingConfig struct {
	// ViewMode is "list" or "recipe".
	ViewMode string `mapstructure:"view_mode" yaml:"view_mode"`
}

// LogConfig controls debug logging. The TUI owns the terminal, so logs
// can only go to a file.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Calendar CalendarConfig `mapstructure:"calendar" yaml:"calendar"`
	Toast    ToastConfig    `mapstructure:"toast" yaml:"toast"`
	Shopping ShoppingConfig `mapstructure:"shopping" yaml:"shopping"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// ToastDuration returns the configured toast lifetime.
func (c *AppConfig) ToastDuration() time.Duration {
	return time.Duration(c.Toast.DurationMS) * time.Millisecond
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/mealplanner/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "mealplanner", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Catalog:  CatalogConfig{Path: ":memory:"},
		Calendar: CalendarConfig{WindowDays: 14},
		Toast:    ToastConfig{DurationMS: 4000},
		Shopping: ShoppingConfig{ViewMode: string(ViewModeList)},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
// MEALPLANNER_* environment variables override file values
// (e.g. MEALPLANNER_TOAST_DURATION_MS).
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("mealplanner")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("catalog.path", ":memory:")
	v.SetDefault("calendar.window_days", 14)
	v.SetDefault("toast.duration_ms", 4000)
	v.SetDefault("shopping.view_mode", string(ViewModeList))
	v.SetDefault("log.file", "")

	if err := v.ReadInConfig(); err != nil {
		_, missingFile := err.(*os.PathError)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !missingFile && !notFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Calendar.WindowDays < 7 {
		cfg.Calendar.WindowDays = 7
	}
	if cfg.Toast.DurationMS <= 0 {
		cfg.Toast.DurationMS = 4000
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = ":memory:"
	}
	cfg.Shopping.ViewMode = string(ParseViewMode(cfg.Shopping.ViewMode))

	return cfg, nil
}
