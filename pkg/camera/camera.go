// Package camera is the device lifecycle state machine: the ordered
// bring-up sequence with per-stage fault signaling, the capture-and-persist
// transaction, and the idle-timeout transition into the low-power halt.
// Everything runs on one goroutine; correctness rests on strict sequencing,
// not on synchronization.
package camera

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"pinhole-firmware/pkg/sensor"
)

// Sensor is the image sensor driver boundary.
type Sensor interface {
	Initialize(cfg sensor.Config) error
	CaptureFrame() (*sensor.Frame, error)
	ReleaseFrame(*sensor.Frame)
}

// Storage is the removable-medium driver boundary.
type Storage interface {
	Mount() error
	MediaPresent() bool
	CreateFile(name string) (io.WriteCloser, error)
}

// Signaler drives the indicator light.
type Signaler interface {
	Flash(count int, onDuration time.Duration)
}

// Trigger reports one-shot activations of the shutter control.
type Trigger interface {
	Start() error
	WasActivated() bool
}

// ImageCounter is the durable image counter.
type ImageCounter interface {
	Load() error
	Value() uint16
	Next() uint16
	Persist() error
}

// Indicator flash counts. Groups distinguish themselves by count, not
// duration.
const (
	waveFlashes        = 5 // hello / goodbye
	snapFlashes        = 1 // successful capture
	sensorFaultFlashes = 2
	mountFaultFlashes  = 3
	mediaFaultFlashes  = 4
)

type Config struct {
	FlashOn       time.Duration // single flash length, also the inter-flash gap
	FaultInterval time.Duration // pause between diagnostic flash groups
	IdleTimeout   time.Duration
	PollInterval  time.Duration
	SensorConfig  sensor.Config
}

type Deps struct {
	Signaler   Signaler
	Sensor     Sensor
	Storage    Storage
	Trigger    Trigger
	Counter    ImageCounter
	CloseStore func() error
	Halt       func() error
}

// Device owns the in-memory image counter and the idle timestamp. Both are
// mutated only from the single-threaded main cycle.
type Device struct {
	cfg  Config
	deps Deps

	lastActivation time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func New(cfg Config, deps Deps) *Device {
	return &Device{
		cfg:   cfg,
		deps:  deps,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// FaultError is an unrecoverable bring-up failure carrying its indicator
// flash signature.
type FaultError struct {
	Stage   string
	Flashes int
	Err     error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// BringUp runs the ordered hardware initialization sequence, each stage
// gating the next. A returned *FaultError is terminal for this power-on
// session; the caller must enter the diagnostic fault loop.
func (d *Device) BringUp() error {
	if err := d.deps.Sensor.Initialize(d.cfg.SensorConfig); err != nil {
		return &FaultError{Stage: "sensor init", Flashes: sensorFaultFlashes, Err: err}
	}
	sc := d.cfg.SensorConfig
	log.Printf("Sensor initialized (%dx%d, quality %d, %d frame buffers)",
		sc.Width, sc.Height, sc.Quality, sc.FrameBuffers)

	if err := d.deps.Storage.Mount(); err != nil {
		return &FaultError{Stage: "card mount", Flashes: mountFaultFlashes, Err: err}
	}

	if !d.deps.Storage.MediaPresent() {
		return &FaultError{Stage: "media check", Flashes: mediaFaultFlashes, Err: errors.New("no card present")}
	}

	if err := d.deps.Counter.Load(); err != nil {
		return fmt.Errorf("counter load failed: %w", err)
	}
	log.Printf("Last stored image was Image%d.jpg", d.deps.Counter.Value())

	if err := d.deps.Trigger.Start(); err != nil {
		return fmt.Errorf("trigger start failed: %w", err)
	}

	d.lastActivation = d.now()
	d.deps.Signaler.Flash(waveFlashes, d.cfg.FlashOn)
	return nil
}

// Run executes bring-up and then the main cycle: poll the trigger, run the
// capture transaction on activation, enter the sleep transition once the
// idle timeout elapses. On hardware it returns only if the halt could not
// be entered.
func (d *Device) Run() error {
	if err := d.BringUp(); err != nil {
		var fault *FaultError
		if errors.As(err, &fault) {
			log.Printf("Bring-up failed (%s): %v", fault.Stage, fault.Err)
			d.faultLoop(fault.Flashes) // never returns
		}
		return err
	}
	log.Println("Initialization complete")

	for {
		if d.deps.Trigger.WasActivated() {
			d.capture()
		}

		if d.now().Sub(d.lastActivation) > d.cfg.IdleTimeout {
			return d.sleepTransition()
		}

		d.sleep(d.cfg.PollInterval)
	}
}

// faultLoop repeats the diagnostic flash signature until physical reset.
func (d *Device) faultLoop(flashes int) {
	for {
		d.deps.Signaler.Flash(flashes, d.cfg.FlashOn)
		d.sleep(d.cfg.FaultInterval)
	}
}

// capture runs one capture transaction. Failures are logged but never
// flash the indicator; the missing confirmation flash is the user-visible
// signal that something went wrong. An acquired frame is released on every
// exit path.
func (d *Device) capture() {
	d.lastActivation = d.now()

	frame, err := d.deps.Sensor.CaptureFrame()
	if err != nil {
		log.Printf("Frame capture failed: %v", err)
		return
	}

	name := fmt.Sprintf("Image%d.jpg", d.deps.Counter.Next())

	file, err := d.deps.Storage.CreateFile(name)
	if err != nil {
		log.Printf("Unable to create %q: %v", name, err)
		d.deps.Sensor.ReleaseFrame(frame)
		return
	}

	n, err := file.Write(frame.Data)
	if err == nil && n != len(frame.Data) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(frame.Data))
	}
	if err != nil {
		log.Printf("Failed to save %q: %v", name, err)
		file.Close()
		d.deps.Sensor.ReleaseFrame(frame)
		return
	}
	log.Printf("Saved image to %q (%d bytes)", name, n)

	if err := d.deps.Counter.Persist(); err != nil {
		log.Printf("Failed to persist image counter: %v", err)
		file.Close()
		d.deps.Sensor.ReleaseFrame(frame)
		return
	}

	d.deps.Signaler.Flash(snapFlashes, d.cfg.FlashOn)

	file.Close()
	d.deps.Sensor.ReleaseFrame(frame)
}

// sleepTransition shuts the durable store down, says goodbye and halts.
// Terminal for the current power-on session; a physical reset re-enters
// bring-up from scratch.
func (d *Device) sleepTransition() error {
	if err := d.deps.CloseStore(); err != nil {
		log.Printf("Failed to close counter store: %v", err)
	}

	log.Println("Going to sleep")
	d.deps.Signaler.Flash(waveFlashes, d.cfg.FlashOn)

	return d.deps.Halt()
}
