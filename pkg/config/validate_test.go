package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
		wantOK bool
	}{
		{"defaults", func(*CameraConfig) {}, true},
		{"missing indicator pin", func(c *CameraConfig) { c.IndicatorPin = "" }, false},
		{"missing trigger pin", func(c *CameraConfig) { c.TriggerPin = "" }, false},
		{"negative debounce", func(c *CameraConfig) { c.DebounceMs = -1 }, false},
		{"zero debounce ok", func(c *CameraConfig) { c.DebounceMs = 0 }, true},
		{"zero flash length", func(c *CameraConfig) { c.FlashMs = 0 }, false},
		{"zero fault interval", func(c *CameraConfig) { c.FaultIntervalMs = 0 }, false},
		{"zero idle timeout", func(c *CameraConfig) { c.IdleTimeoutMs = 0 }, false},
		{"zero poll interval", func(c *CameraConfig) { c.PollIntervalMs = 0 }, false},
		{"missing card root", func(c *CameraConfig) { c.CardRoot = "" }, false},
		{"missing nvram path", func(c *CameraConfig) { c.NVRAMPath = "" }, false},
		{"missing sensor device", func(c *CameraConfig) { c.SensorDevice = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Camera: Defaults()}
			tc.mutate(&cfg.Camera)

			err := Validate(cfg)
			if tc.wantOK && err != nil {
				t.Errorf("Validate() err=%v, want nil", err)
			}
			if !tc.wantOK && err == nil {
				t.Error("Validate() err=nil, want error")
			}
		})
	}
}
