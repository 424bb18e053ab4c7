package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration for values the firmware cannot
// run with.
func Validate(cfg *Config) error {
	c := cfg.Camera

	if c.IndicatorPin == "" {
		return errors.New("camera.indicator_pin is required")
	}
	if c.TriggerPin == "" {
		return errors.New("camera.trigger_pin is required")
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("camera.debounce_ms must not be negative, got %d", c.DebounceMs)
	}
	if c.FlashMs <= 0 {
		return fmt.Errorf("camera.flash_ms must be positive, got %d", c.FlashMs)
	}
	if c.FaultIntervalMs <= 0 {
		return fmt.Errorf("camera.fault_interval_ms must be positive, got %d", c.FaultIntervalMs)
	}
	if c.IdleTimeoutMs <= 0 {
		return fmt.Errorf("camera.idle_timeout_ms must be positive, got %d", c.IdleTimeoutMs)
	}
	if c.PollIntervalMs <= 0 {
		return fmt.Errorf("camera.poll_interval_ms must be positive, got %d", c.PollIntervalMs)
	}
	if c.CardRoot == "" {
		return errors.New("camera.card_root is required")
	}
	if c.NVRAMPath == "" {
		return errors.New("camera.nvram_path is required")
	}
	if c.SensorDevice == "" {
		return errors.New("camera.sensor_device is required")
	}

	return nil
}
