package trigger

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Button is the shutter release: a momentary switch on a pulled-up GPIO,
// debounced in software. Polled once per main-cycle iteration; it reports
// each press exactly once.
type Button struct {
	pin      gpio.PinIn
	read     func() bool
	debounce time.Duration
	now      func() time.Time

	pressed    bool
	lastChange time.Time
}

// Open initializes host GPIO and resolves the trigger pin. The input is
// not configured until Start is called during bring-up.
func Open(pinName string, debounce time.Duration) (*Button, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GPIO host: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", pinName)
	}

	b := newButton(nil, debounce, time.Now)
	b.pin = pin
	b.read = func() bool { return pin.Read() == gpio.Low } // pulled up, pressed reads low
	return b, nil
}

func newButton(read func() bool, debounce time.Duration, now func() time.Time) *Button {
	return &Button{read: read, debounce: debounce, now: now}
}

// Start configures the input line.
func (b *Button) Start() error {
	if b.pin == nil {
		return nil
	}
	if err := b.pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return fmt.Errorf("failed to configure trigger pin: %w", err)
	}
	return nil
}

// WasActivated reports whether the button went from released to pressed
// since the last poll. Level changes inside the debounce window are
// ignored as contact bounce.
func (b *Button) WasActivated() bool {
	level := b.read()
	if level == b.pressed {
		return false
	}

	now := b.now()
	if now.Sub(b.lastChange) < b.debounce {
		return false
	}

	b.pressed = level
	b.lastChange = now
	return level
}
