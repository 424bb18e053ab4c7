package main

import (
	"log"
	"os"
	"time"

	"pinhole-firmware/pkg/camera"
	"pinhole-firmware/pkg/config"
	"pinhole-firmware/pkg/counter"
	"pinhole-firmware/pkg/globals"
	"pinhole-firmware/pkg/indicator"
	"pinhole-firmware/pkg/logger"
	"pinhole-firmware/pkg/nvram"
	"pinhole-firmware/pkg/power"
	"pinhole-firmware/pkg/sensor"
	"pinhole-firmware/pkg/storage"
	"pinhole-firmware/pkg/trigger"
)

const (
	counterAddr = 0 // image counter address in the nvram region
	nvramSize   = 2
)

func main() {
	// Initialize logger first to capture all logs
	logger.Init()

	log.Printf("Pinhole camera firmware %s starting", globals.FirmwareVersion)

	cfgPath := globals.ConfigPath
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	identity, err := config.LoadIdentity()
	if err != nil {
		log.Fatalf("Failed to load device identity: %v", err)
	}
	log.Printf("Device %s", identity.ID)

	line, err := indicator.Open(cfg.Camera.IndicatorPin)
	if err != nil {
		log.Fatalf("Failed to open indicator: %v", err)
	}

	button, err := trigger.Open(cfg.Camera.TriggerPin, time.Duration(cfg.Camera.DebounceMs)*time.Millisecond)
	if err != nil {
		log.Fatalf("Failed to open trigger: %v", err)
	}

	store, err := nvram.Open(cfg.Camera.NVRAMPath, nvramSize)
	if err != nil {
		log.Fatalf("Failed to open counter store: %v", err)
	}

	dev := camera.New(camera.Config{
		FlashOn:       time.Duration(cfg.Camera.FlashMs) * time.Millisecond,
		FaultInterval: time.Duration(cfg.Camera.FaultIntervalMs) * time.Millisecond,
		IdleTimeout:   time.Duration(cfg.Camera.IdleTimeoutMs) * time.Millisecond,
		PollInterval:  time.Duration(cfg.Camera.PollIntervalMs) * time.Millisecond,
		SensorConfig:  sensor.ChooseConfig(cfg.Camera.SensorDevice, cfg.Camera.HighMemBytes),
	}, camera.Deps{
		Signaler:   indicator.New(line),
		Sensor:     sensor.NewV4L2(),
		Storage:    storage.New(cfg.Camera.CardRoot),
		Trigger:    button,
		Counter:    counter.New(store, counterAddr),
		CloseStore: store.Close,
		Halt:       power.Halt,
	})

	if err := dev.Run(); err != nil {
		log.Fatalf("Device stopped: %v", err)
	}
}
