package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"pinhole-firmware/pkg/globals"
)

type Config struct {
	Camera CameraConfig `yaml:"camera"`
}

// CameraConfig holds everything the firmware needs to run on a particular
// board: pin assignments, indicator timings, the idle timeout and the
// backing paths for removable and durable storage.
type CameraConfig struct {
	IndicatorPin string `yaml:"indicator_pin"`
	TriggerPin   string `yaml:"trigger_pin"`
	DebounceMs   int    `yaml:"debounce_ms"`

	FlashMs         int `yaml:"flash_ms"`
	FaultIntervalMs int `yaml:"fault_interval_ms"`

	IdleTimeoutMs  int `yaml:"idle_timeout_ms"`
	PollIntervalMs int `yaml:"poll_interval_ms"`

	CardRoot  string `yaml:"card_root"`
	NVRAMPath string `yaml:"nvram_path"`

	SensorDevice string `yaml:"sensor_device"`
	HighMemBytes uint64 `yaml:"high_mem_bytes"`
}

// Load reads the YAML config at path. A missing file yields the default
// configuration; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{Camera: Defaults()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("No config at %q, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Defaults mirrors the timings the appliance shipped with: 200ms flashes,
// 1s between diagnostic groups, five-minute idle timeout.
func Defaults() CameraConfig {
	return CameraConfig{
		IndicatorPin:    "GPIO17",
		TriggerPin:      "GPIO27",
		DebounceMs:      20,
		FlashMs:         200,
		FaultIntervalMs: 1000,
		IdleTimeoutMs:   300000,
		PollIntervalMs:  10,
		CardRoot:        globals.CardRoot,
		NVRAMPath:       globals.NVRAMPath,
		SensorDevice:    "/dev/video0",
		HighMemBytes:    256 << 20,
	}
}
