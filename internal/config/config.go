package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/jask/drawer/internal/anim"
	"github.com/jask/drawer/internal/drawer"
	"github.com/jask/drawer/internal/gesture"
)

// Config holds application configuration.
type Config struct {
	Drawer DrawerConfig
	Style  StyleConfig
	Debug  DebugConfig
}

// DrawerConfig holds animation and gesture settings.
type DrawerConfig struct {
	OpenRatio         float64       `mapstructure:"open_ratio"`
	Duration          time.Duration `mapstructure:"duration"`
	Curve             string        `mapstructure:"curve"`
	CancelPolicy      string        `mapstructure:"cancel_policy"`
	AnimateDecoration bool          `mapstructure:"animate_decoration"`
	StartOpen         bool          `mapstructure:"start_open"`
}

// StyleConfig holds colours as hex strings.
type StyleConfig struct {
	Backdrop         string `mapstructure:"backdrop"`
	DrawerFg         string `mapstructure:"drawer_fg"`
	ContentBg        string `mapstructure:"content_bg"`
	ContentFg        string `mapstructure:"content_fg"`
	DecorationBorder string `mapstructure:"decoration_border"`
}

// DebugConfig controls the log file. Empty LogFile disables logging.
type DebugConfig struct {
	LogFile string `mapstructure:"log_file"`
}

var ErrInvalidColor = errors.New("invalid colour")

func setDefaults(v *viper.Viper) {
	v.SetDefault("drawer.open_ratio", drawer.DefaultOpenRatio)
	v.SetDefault("drawer.duration", drawer.DefaultDuration)
	v.SetDefault("drawer.curve", "ease")
	v.SetDefault("drawer.cancel_policy", "settle")
	v.SetDefault("drawer.animate_decoration", true)
	v.SetDefault("drawer.start_open", false)
	v.SetDefault("style.backdrop", "#11111b")
	v.SetDefault("style.drawer_fg", "#cdd6f4")
	v.SetDefault("style.content_bg", "#1e1e2e")
	v.SetDefault("style.content_fg", "#cdd6f4")
	v.SetDefault("style.decoration_border", "#89b4fa")
	v.SetDefault("debug.log_file", "")
}

// Path returns the config file location: $DRAWER_CONFIG or
// ~/.config/drawer/config.toml.
func Path() string {
	if p := os.Getenv("DRAWER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "drawer", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DRAWER_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("DRAWER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("drawer.open_ratio", cfg.Drawer.OpenRatio)
	v.Set("drawer.duration", cfg.Drawer.Duration.String())
	v.Set("drawer.curve", cfg.Drawer.Curve)
	v.Set("drawer.cancel_policy", cfg.Drawer.CancelPolicy)
	v.Set("drawer.animate_decoration", cfg.Drawer.AnimateDecoration)
	v.Set("drawer.start_open", cfg.Drawer.StartOpen)
	v.Set("style.backdrop", cfg.Style.Backdrop)
	v.Set("style.drawer_fg", cfg.Style.DrawerFg)
	v.Set("style.content_bg", cfg.Style.ContentBg)
	v.Set("style.content_fg", cfg.Style.ContentFg)
	v.Set("style.decoration_border", cfg.Style.DecorationBorder)
	v.Set("debug.log_file", cfg.Debug.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks ranges, curve and cancel policy names, and colours.
func (c Config) Validate() error {
	if _, err := c.DrawerOptions(); err != nil {
		return err
	}
	for key, hex := range map[string]string{
		"style.backdrop":          c.Style.Backdrop,
		"style.drawer_fg":         c.Style.DrawerFg,
		"style.content_bg":        c.Style.ContentBg,
		"style.content_fg":        c.Style.ContentFg,
		"style.decoration_border": c.Style.DecorationBorder,
	} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%s: %w %q", key, ErrInvalidColor, hex)
		}
	}
	return nil
}

// DrawerOptions converts the drawer section into drawer.Options. Widgets and
// the visibility state are left for the caller.
func (c Config) DrawerOptions() (drawer.Options, error) {
	opts := drawer.DefaultOptions()
	curve, err := anim.CurveByName(c.Drawer.Curve)
	if err != nil {
		return opts, fmt.Errorf("drawer.curve: %w", err)
	}
	policy, err := gesture.ParseCancelPolicy(c.Drawer.CancelPolicy)
	if err != nil {
		return opts, fmt.Errorf("drawer.cancel_policy: %w", err)
	}
	opts.OpenRatio = c.Drawer.OpenRatio
	opts.Duration = c.Drawer.Duration
	opts.Curve = curve
	opts.CancelPolicy = policy
	opts.AnimateDecoration = c.Drawer.AnimateDecoration
	if c.Style.Backdrop != "" {
		opts.Backdrop = lipgloss.Color(c.Style.Backdrop)
	}
	if c.Style.DecorationBorder != "" {
		opts.Decoration = &drawer.Decoration{Border: lipgloss.Color(c.Style.DecorationBorder)}
	}
	if !(opts.OpenRatio > 0 && opts.OpenRatio <= 1) {
		return opts, fmt.Errorf("drawer.open_ratio: %w: got %v", drawer.ErrInvalidOpenRatio, opts.OpenRatio)
	}
	if opts.Duration <= 0 {
		return opts, fmt.Errorf("drawer.duration: %w: got %v", drawer.ErrInvalidDuration, opts.Duration)
	}
	return opts, nil
}
