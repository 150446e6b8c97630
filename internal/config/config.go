package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string
	Placeholder string
	// MaxWidth caps the container width in cells. Zero means use the full terminal.
	MaxWidth int `mapstructure:"max_width"`
	Platform string
	// TopPadding is the number of blank rows above the header. Negative derives it from Platform.
	TopPadding int `mapstructure:"top_padding"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File string
}

// TopPaddingRows resolves the padding above the header.
func (u UIConfig) TopPaddingRows() int {
	if u.TopPadding >= 0 {
		return u.TopPadding
	}
	if strings.EqualFold(u.Platform, "android") {
		return 1
	}
	return 2
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		UI: UIConfig{
			Title:       "My TODO List",
			Placeholder: "Add a new task...",
			Platform:    runtime.GOOS,
			TopPadding:  -1,
		},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix TODOLIST_.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.title", def.UI.Title)
	v.SetDefault("ui.placeholder", def.UI.Placeholder)
	v.SetDefault("ui.max_width", def.UI.MaxWidth)
	v.SetDefault("ui.platform", def.UI.Platform)
	v.SetDefault("ui.top_padding", def.UI.TopPadding)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TODOLIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "todolist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODOLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgPath != "" && errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
