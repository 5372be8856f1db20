package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/zhubert/planboard/internal/config"
	"github.com/zhubert/planboard/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the default debug log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestConfigFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--config default = %q, want empty", flag.DefValue)
	}
}

func TestNewCommandRegistered(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"new"})
	if err != nil {
		t.Fatalf("Find(new) error = %v", err)
	}
	if c != newCmd {
		t.Error("expected the new command")
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"release", "abc123", "planboard 1.2.3\n  commit: abc123\n  built:  today\n"},
		{"no commit", "none", "planboard 1.2.3\n"},
		{"empty commit", "", "planboard 1.2.3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo("1.2.3", tt.commit, "today")
			if got := versionTemplate(); got != tt.want {
				t.Errorf("versionTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitConfig_File(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	origFile := cfgFile
	defer func() { cfgFile = origFile }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "modal:\n  dismiss_caption: Done\n  width: 72\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgFile = path

	initConfig()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Modal.DismissCaption != "Done" || cfg.Modal.Width != 72 {
		t.Errorf("modal config = %+v, want Done/72", cfg.Modal)
	}
	if cfg.Logging.Path != logger.DefaultLogPath {
		t.Errorf("logging.path = %q, want default", cfg.Logging.Path)
	}
}

func TestInitConfig_Env(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	origFile := cfgFile
	defer func() { cfgFile = origFile }()
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	t.Setenv("PLANBOARD_NOTIFICATIONS_ENABLED", "true")

	initConfig()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled from env")
	}
}

func TestSetupLogging(t *testing.T) {
	defer func() {
		logger.Reset()
		logger.Init(os.DevNull)
	}()

	logger.Reset()

	cfg := config.Default()
	cfg.Logging.Path = filepath.Join(t.TempDir(), "planboard.log")
	cfg.Logging.Debug = true

	if err := setupLogging(cfg); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if got := logger.Path(); got != cfg.Logging.Path {
		t.Errorf("logger.Path() = %q, want %q", got, cfg.Logging.Path)
	}
}
