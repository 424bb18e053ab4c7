package sensor

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// Frame is an encoded image borrowed from the sensor driver for the
// duration of one capture. It must be released exactly once.
type Frame struct {
	Data []byte
}

// Config is the capture profile the sensor is initialized with.
type Config struct {
	Device       string
	Width        int
	Height       int
	Quality      int // encoder quality scale, lower is better
	FrameBuffers int
}

// ChooseConfig picks the capture profile for the memory actually available
// on this board: full resolution with double buffering when there is room
// for two frame buffers, a reduced single-buffer profile otherwise.
func ChooseConfig(device string, highMemBytes uint64) Config {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return chooseProfile(device, 0, highMemBytes)
	}
	return chooseProfile(device, vm.Available, highMemBytes)
}

func chooseProfile(device string, available, highMemBytes uint64) Config {
	if available >= highMemBytes {
		return Config{Device: device, Width: 1600, Height: 1200, Quality: 2, FrameBuffers: 2}
	}
	return Config{Device: device, Width: 800, Height: 600, Quality: 5, FrameBuffers: 1}
}
