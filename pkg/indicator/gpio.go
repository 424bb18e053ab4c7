package indicator

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// gpioLine is the board's status LED. The line is active low.
type gpioLine struct {
	pin gpio.PinOut
}

// Open initializes host GPIO and returns the indicator line, driven
// inactive.
func Open(pinName string) (Line, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GPIO host: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", pinName)
	}

	// Inactive; the LED sits between the pin and 3V3.
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("failed to drive indicator pin %q: %w", pinName, err)
	}

	return &gpioLine{pin: pin}, nil
}

func (l *gpioLine) Set(active bool) {
	if active {
		l.pin.Out(gpio.Low)
		return
	}
	l.pin.Out(gpio.High)
}
