package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port             int
	LogLevel         string
	LogFormat        string
	ChartUnitWidth   int
	ChartMinBarWidth int
	ChartMaxWidth    int
	MaxProcesses     int
	MaxTime          int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("chart.unit_width", 4)
	v.SetDefault("chart.min_bar_width", 4)
	v.SetDefault("chart.max_width", 160)
	v.SetDefault("limits.max_processes", 1000)
	v.SetDefault("limits.max_time", 100000)
}

// Load reads the scheduler configuration. With an empty path it looks for
// config.yaml in the working directory and falls back to defaults when there
// is none; an explicit path must exist. SRTF_* environment variables
// override file values, e.g. SRTF_PORT or SRTF_LOG_LEVEL.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("srtf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:             v.GetInt("port"),
		LogLevel:         strings.ToLower(v.GetString("log.level")),
		LogFormat:        strings.ToLower(v.GetString("log.format")),
		ChartUnitWidth:   v.GetInt("chart.unit_width"),
		ChartMinBarWidth: v.GetInt("chart.min_bar_width"),
		ChartMaxWidth:    v.GetInt("chart.max_width"),
		MaxProcesses:     v.GetInt("limits.max_processes"),
		MaxTime:          v.GetInt("limits.max_time"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log.level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log.format: %s (must be text or json)", c.LogFormat)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ChartUnitWidth < 1 {
		return fmt.Errorf("chart.unit_width must be positive, got %d", c.ChartUnitWidth)
	}
	if c.ChartMinBarWidth < 1 {
		return fmt.Errorf("chart.min_bar_width must be positive, got %d", c.ChartMinBarWidth)
	}
	if c.ChartMaxWidth < c.ChartMinBarWidth {
		return fmt.Errorf("chart.max_width must be at least chart.min_bar_width, got %d", c.ChartMaxWidth)
	}
	if c.MaxProcesses < 1 {
		return fmt.Errorf("limits.max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.MaxTime < 1 {
		return fmt.Errorf("limits.max_time must be positive, got %d", c.MaxTime)
	}
	return nil
}
