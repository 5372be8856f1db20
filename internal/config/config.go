package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zhubert/planboard/internal/errors"
	"github.com/zhubert/planboard/internal/logger"
	"github.com/zhubert/planboard/internal/ui"
)

// Config holds the application configuration
type Config struct {
	UI            UIConfig            `mapstructure:"ui"`
	Modal         ModalConfig         `mapstructure:"modal"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// UIConfig controls the look of the TUI
type UIConfig struct {
	// Theme is one of the built-in ui theme names
	Theme string `mapstructure:"theme"`
}

// ModalConfig controls the new-project dialog
type ModalConfig struct {
	// DismissCaption labels the dialog's built-in close button
	DismissCaption string `mapstructure:"dismiss_caption"`
	// Width is the dialog's outer width in columns
	Width int `mapstructure:"width"`
}

// NotificationsConfig controls desktop notifications
type NotificationsConfig struct {
	// Enabled sends a notification when a project is added
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: string(ui.DefaultTheme),
		},
		Modal: ModalConfig{
			DismissCaption: ui.DefaultDismissCaption,
			Width:          ui.ModalWidth,
		},
		Notifications: NotificationsConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Path:  logger.DefaultLogPath,
			Debug: false,
		},
	}
}

// SetDefaults registers every default with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.theme", defaults.UI.Theme)

	viper.SetDefault("modal.dismiss_caption", defaults.Modal.DismissCaption)
	viper.SetDefault("modal.width", defaults.Modal.Width)

	viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)

	viper.SetDefault("logging.path", defaults.Logging.Path)
	viper.SetDefault("logging.debug", defaults.Logging.Debug)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.ConfigLoadFailed(viper.ConfigFileUsed(), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the Config for invalid values
func (c *Config) Validate() error {
	var problems []string

	if !ui.IsThemeName(c.UI.Theme) {
		problems = append(problems, fmt.Sprintf("ui.theme %q is not a known theme", c.UI.Theme))
	}
	if strings.TrimSpace(c.Modal.DismissCaption) == "" {
		problems = append(problems, "modal.dismiss_caption must not be empty")
	}
	if c.Modal.Width < ui.MinModalWidth {
		problems = append(problems, fmt.Sprintf("modal.width must be at least %d (got: %d)", ui.MinModalWidth, c.Modal.Width))
	}
	if c.Logging.Path == "" {
		problems = append(problems, "logging.path must not be empty")
	}

	if len(problems) > 0 {
		return errors.ConfigInvalid(strings.Join(problems, "; "))
	}
	return nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planboard"
	}
	return filepath.Join(home, ".config", "planboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
