package indicator

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type fakeLine struct {
	transitions []bool
}

func (l *fakeLine) Set(active bool) {
	l.transitions = append(l.transitions, active)
}

func TestFlashPattern(t *testing.T) {
	line := &fakeLine{}
	s := New(line)

	var sleeps []time.Duration
	s.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	s.Flash(3, 200*time.Millisecond)

	want := []bool{true, false, true, false, true, false}
	if diff := cmp.Diff(want, line.transitions); diff != "" {
		t.Errorf("line transitions mismatch (-want +got):\n%s", diff)
	}

	// Three on-phases plus two inter-flash gaps; no gap after the last.
	if len(sleeps) != 5 {
		t.Fatalf("slept %d times, want 5", len(sleeps))
	}
	for i, d := range sleeps {
		if d != 200*time.Millisecond {
			t.Errorf("sleep %d = %v, want 200ms", i, d)
		}
	}
}

func TestFlashSingle(t *testing.T) {
	line := &fakeLine{}
	s := New(line)

	var sleeps []time.Duration
	s.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	s.Flash(1, 200*time.Millisecond)

	if diff := cmp.Diff([]bool{true, false}, line.transitions); diff != "" {
		t.Errorf("line transitions mismatch (-want +got):\n%s", diff)
	}
	if len(sleeps) != 1 {
		t.Errorf("slept %d times, want 1", len(sleeps))
	}
}

func TestFlashZeroCount(t *testing.T) {
	line := &fakeLine{}
	s := New(line)
	s.sleep = func(time.Duration) {}

	s.Flash(0, 200*time.Millisecond)

	if len(line.transitions) != 0 {
		t.Errorf("line driven %v for zero flashes", line.transitions)
	}
}
