package cmd

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zhubert/planboard/internal/app"
	"github.com/zhubert/planboard/internal/config"
	"github.com/zhubert/planboard/internal/logger"
	"github.com/zhubert/planboard/internal/ui"
)

var (
	cfgFile               string
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "planboard",
	Short: "TUI for capturing projects in a modal form",
	Long: `Planboard is a TUI for jotting down projects. Press "a" to open the
new-project dialog, fill in a title, description and due date, and save.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/planboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	_ = viper.BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PLANBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults apply
	_ = viper.ReadInConfig()
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("planboard %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("planboard %s\n", version)
}

// setupLogging opens the log file and sets the level from cfg
func setupLogging(cfg *config.Config) error {
	if err := logger.Init(cfg.Logging.Path); err != nil {
		return err
	}
	logger.SetDebug(cfg.Logging.Debug)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	ui.SetThemeByName(cfg.UI.Theme)

	m, err := app.New(cfg, version)
	if err != nil {
		return fmt.Errorf("error starting app: %w", err)
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
