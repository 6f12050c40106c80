// Package config loads and persists iro's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Theme     ThemeConfig
	Palette   PaletteConfig
	Wallpaper WallpaperConfig
}

// ThemeConfig selects the scheme mode and background handling.
type ThemeConfig struct {
	// Mode is "dark", "light" or "auto".
	Mode string `mapstructure:"mode"`

	// DarkBackgroundStyle / LightBackgroundStyle select "extracted",
	// "pure-dark", "pure-light" or "custom" per mode.
	DarkBackgroundStyle  string `mapstructure:"dark_background_style"`
	LightBackgroundStyle string `mapstructure:"light_background_style"`

	DarkCustomBackground  string `mapstructure:"dark_custom_background"`
	LightCustomBackground string `mapstructure:"light_custom_background"`
}

// PaletteConfig holds extraction and styling tunables.
type PaletteConfig struct {
	Style              string  `mapstructure:"style"`
	DiversityThreshold float64 `mapstructure:"diversity_threshold"`
	ColorCount         int     `mapstructure:"color_count"`
}

// WallpaperConfig holds wallpaper handling settings.
type WallpaperConfig struct {
	// Dir is the directory scanned by random/pick.
	Dir string `mapstructure:"dir"`
}

// Path returns the config file location, honouring IRO_CONFIG.
func Path() string {
	if p := os.Getenv("IRO_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "iro", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use
// prefix IRO_. A missing config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("theme.mode", "dark")
	v.SetDefault("theme.dark_background_style", "extracted")
	v.SetDefault("theme.light_background_style", "extracted")
	v.SetDefault("theme.dark_custom_background", "")
	v.SetDefault("theme.light_custom_background", "")
	v.SetDefault("palette.style", "balanced")
	v.SetDefault("palette.diversity_threshold", 50.0)
	v.SetDefault("palette.color_count", 16)
	v.SetDefault("wallpaper.dir", filepath.Join(os.Getenv("HOME"), "Pictures", "wallpapers"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("IRO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "iro"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("IRO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Mode:                 "dark",
			DarkBackgroundStyle:  "extracted",
			LightBackgroundStyle: "extracted",
		},
		Palette: PaletteConfig{
			Style:              "balanced",
			DiversityThreshold: 50.0,
			ColorCount:         16,
		},
		Wallpaper: WallpaperConfig{
			Dir: filepath.Join(os.Getenv("HOME"), "Pictures", "wallpapers"),
		},
	}
}

// Save writes the provided config to disk, creating the config
// directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("theme.mode", cfg.Theme.Mode)
	v.Set("theme.dark_background_style", cfg.Theme.DarkBackgroundStyle)
	v.Set("theme.light_background_style", cfg.Theme.LightBackgroundStyle)
	v.Set("theme.dark_custom_background", cfg.Theme.DarkCustomBackground)
	v.Set("theme.light_custom_background", cfg.Theme.LightCustomBackground)
	v.Set("palette.style", cfg.Palette.Style)
	v.Set("palette.diversity_threshold", cfg.Palette.DiversityThreshold)
	v.Set("palette.color_count", cfg.Palette.ColorCount)
	v.Set("wallpaper.dir", cfg.Wallpaper.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// BackgroundStyle returns the background style and custom hex for the
// given mode string ("light" selects the light pair).
func (c Config) BackgroundStyle(mode string) (style, customHex string) {
	if mode == "light" {
		return c.Theme.LightBackgroundStyle, c.Theme.LightCustomBackground
	}
	return c.Theme.DarkBackgroundStyle, c.Theme.DarkCustomBackground
}
