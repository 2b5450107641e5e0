package detect

import (
	"context"
	"testing"
	"time"

	"github.com/soocke/overlay-go/domain/overlay"
)

// fixedSource emits the same cycle until cancelled.
type fixedSource struct{ d Detections }

func (f fixedSource) Run(ctx context.Context, interval time.Duration, sink Sink) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := sink(f.d); err != nil {
				return err
			}
		}
	}
}

var _ Stepper = fixedSource{}
var _ Stepper = (*Simulator)(nil)

func TestRunner_StartStop(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 640, 480, 3, nil)
	r := NewRunner(fixedSource{d: cycle(4, 5)}, p, time.Millisecond, nil)

	r.Start()
	r.Start()
	if !r.Running() {
		t.Fatalf("runner not running after Start")
	}
	deadline := time.Now().Add(2 * time.Second)
	for reg.Len() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("members=%d want=2", reg.Len())
		}
		time.Sleep(time.Millisecond)
	}
	r.Stop()
	r.Stop()
	if r.Running() {
		t.Fatalf("runner still running after Stop")
	}
	if reg.Len() != 0 || p.Tracked() != 0 {
		t.Fatalf("stop left members=%d tracked=%d", reg.Len(), p.Tracked())
	}
}

func TestRunner_EndsWhenRegistryCloses(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 640, 480, 3, nil)
	r := NewRunner(fixedSource{d: cycle(1)}, p, time.Millisecond, nil)
	r.Start()
	reg.Close()
	done := r.done
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not end after registry close")
	}
	r.Stop()
}
