package indicator

import (
	"time"
)

// Line drives the physical indicator output. Implementations own the
// polarity of the line; active means "light on".
type Line interface {
	Set(active bool)
}

// Signaler turns the single indicator light into the device's only output
// channel by flashing it in counted groups.
type Signaler struct {
	line  Line
	sleep func(time.Duration)
}

func New(line Line) *Signaler {
	return &Signaler{line: line, sleep: time.Sleep}
}

// Flash blocks the caller while it drives the indicator active for
// onDuration, then inactive, count times, with an onDuration gap between
// flashes but none after the last. The device has nothing else to do
// while signaling, so blocking here is intentional.
func (s *Signaler) Flash(count int, onDuration time.Duration) {
	for i := 0; i < count; i++ {
		s.line.Set(true)
		s.sleep(onDuration)
		s.line.Set(false)
		if i+1 < count {
			s.sleep(onDuration)
		}
	}
}
