package sensor

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// V4L2 captures encoded JPEG frames from a video4linux device, one ffmpeg
// invocation per frame.
type V4L2 struct {
	cfg         Config
	initialized bool
}

func NewV4L2() *V4L2 {
	return &V4L2{}
}

// Initialize verifies the device node exists and stores the capture
// profile.
func (s *V4L2) Initialize(cfg Config) error {
	if _, err := os.Stat(cfg.Device); err != nil {
		return fmt.Errorf("sensor device %q not available: %w", cfg.Device, err)
	}
	s.cfg = cfg
	s.initialized = true
	return nil
}

// CaptureFrame grabs one encoded frame from the device.
func (s *V4L2) CaptureFrame() (*Frame, error) {
	if !s.initialized {
		return nil, fmt.Errorf("sensor not initialized")
	}

	cmd := exec.Command("ffmpeg",
		"-f", "v4l2",
		"-video_size", fmt.Sprintf("%dx%d", s.cfg.Width, s.cfg.Height),
		"-i", s.cfg.Device,
		"-vframes", "1",
		"-f", "image2",
		"-q:v", strconv.Itoa(s.cfg.Quality),
		"pipe:1",
	)

	data, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("frame capture failed: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("frame capture produced no data")
	}

	return &Frame{Data: data}, nil
}

// ReleaseFrame returns a borrowed frame to the driver.
func (s *V4L2) ReleaseFrame(f *Frame) {
	if f != nil {
		f.Data = nil
	}
}
