// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads the daemon configuration, with sane defaults when no
// config file exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the daemon.
type Config struct {
	// Listen is the HTTP/WebSocket bind address.
	Listen string

	// TopologyInterval is the coarse display re-enumeration period.
	TopologyInterval time.Duration

	// BrightnessInterval is the fine brightness polling period.
	BrightnessInterval time.Duration

	// OverlayQueueSize bounds the overlay command channel.
	OverlayQueueSize int
}

// Load reads the configuration from the given file, or from
// fade-brightness-daemon.yaml in the user config directory when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", "127.0.0.1:18265")
	v.SetDefault("topology_interval", "10s")
	v.SetDefault("brightness_interval", "2s")
	v.SetDefault("overlay_queue_size", 32)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("fade-brightness-daemon")
		v.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "fade"))
		}
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Listen:             v.GetString("listen"),
		TopologyInterval:   v.GetDuration("topology_interval"),
		BrightnessInterval: v.GetDuration("brightness_interval"),
		OverlayQueueSize:   v.GetInt("overlay_queue_size"),
	}
	if cfg.TopologyInterval <= 0 {
		return nil, fmt.Errorf("topology_interval must be positive, got %s", cfg.TopologyInterval)
	}
	if cfg.BrightnessInterval <= 0 {
		return nil, fmt.Errorf("brightness_interval must be positive, got %s", cfg.BrightnessInterval)
	}
	return cfg, nil
}
