package config

import (
	"os"
	"strconv"
	"strings"
)

// ColorMode controls when terminal styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds all runtime configuration for ddi.
type Config struct {
	DDPath    string
	LsblkPath string

	// NotBlockDeviceExit is the lsblk exit status that means the target
	// exists but is not a block device.
	NotBlockDeviceExit int

	LogCalls bool
	Color    ColorMode
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DDPath:             "dd",
		LsblkPath:          "lsblk",
		NotBlockDeviceExit: 32,
		LogCalls:           false,
		Color:              ColorAuto,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DDI_DD_PATH"); v != "" {
		cfg.DDPath = v
	}
	if v := os.Getenv("DDI_LSBLK_PATH"); v != "" {
		cfg.LsblkPath = v
	}
	if v := os.Getenv("DDI_NOT_BLOCK_DEVICE_EXIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 256 {
			cfg.NotBlockDeviceExit = n
		}
	}
	if v := os.Getenv("DDI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DDI_COLOR"); v != "" {
		switch mode := ColorMode(strings.ToLower(strings.TrimSpace(v))); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}

	return cfg
}

// UseColor reports whether styling should be emitted given whether
// stdout is attached to a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
