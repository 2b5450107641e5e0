package detect

import (
	"errors"
	"testing"

	"github.com/soocke/overlay-go/domain/overlay"
)

func cycle(ids ...int) Detections {
	d := Detections{ImageWidth: 320, ImageHeight: 240}
	for _, id := range ids {
		d.Objects = append(d.Objects, &overlay.ObjectSnapshot{ID: id, Width: 10, Height: 10})
	}
	return d
}

func TestProcessor_Lifecycle(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 640, 480, 1, nil)

	if err := p.Process(cycle(1, 2)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if reg.Len() != 2 || p.Tracked() != 2 {
		t.Fatalf("members=%d tracked=%d", reg.Len(), p.Tracked())
	}
	g, ok := reg.Geometry()
	if !ok || g.ImageWidth != 320 || g.ViewWidth != 640 {
		t.Fatalf("geometry=%+v ok=%v", g, ok)
	}

	// id 2 missing: hidden but still tracked
	if err := p.Process(cycle(1)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if reg.Len() != 1 || p.Tracked() != 2 {
		t.Fatalf("after miss members=%d tracked=%d", reg.Len(), p.Tracked())
	}

	// id 2 returns and keeps its overlay and style
	first := reg.Members()[0].(*overlay.ObjectOverlay)
	if err := p.Process(cycle(1, 2)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if reg.Len() != 2 || reg.Members()[0] != first {
		t.Fatalf("returning object should reuse overlays, members=%d", reg.Len())
	}

	// missing twice exceeds maxMissed=1
	_ = p.Process(cycle(1))
	_ = p.Process(cycle(1))
	if p.Tracked() != 1 {
		t.Fatalf("tracked=%d want=1", p.Tracked())
	}

	p.Done()
	if reg.Len() != 0 || p.Tracked() != 0 {
		t.Fatalf("done left members=%d tracked=%d", reg.Len(), p.Tracked())
	}
}

func TestProcessor_GeometryFollowsDetector(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 100, 100, 3, nil)
	d := cycle(1)
	d.Facing = overlay.FacingFront
	_ = p.Process(d)
	if g, _ := reg.Geometry(); g.Facing != overlay.FacingFront {
		t.Fatalf("facing not applied: %+v", g)
	}
	p.SetViewSize(200, 50)
	_ = p.Process(d)
	if g, _ := reg.Geometry(); g.ViewWidth != 200 || g.ViewHeight != 50 {
		t.Fatalf("view size not applied: %+v", g)
	}
}

func TestProcessor_UpdatesRequestRedraw(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 100, 100, 3, nil)
	_ = p.Process(cycle(4))
	if !reg.RedrawPending() {
		t.Fatalf("expected redraw after update")
	}
	_ = p.Process(cycle())
	if !reg.RedrawPending() {
		t.Fatalf("expected redraw after object went missing")
	}
}

func TestProcessor_ClosedRegistry(t *testing.T) {
	reg := overlay.NewRegistry(nil, overlay.Options{})
	p := NewProcessor(reg, 100, 100, 3, nil)
	reg.Close()
	if err := p.Process(cycle(1)); !errors.Is(err, overlay.ErrClosed) {
		t.Fatalf("err=%v want ErrClosed", err)
	}
}

func TestProcessor_RegistryClosedMidCycleDropsTracks(t *testing.T) {
	var reg *overlay.Registry
	reg = overlay.NewRegistry(nil, overlay.Options{OnRedraw: func() { reg.Close() }})
	p := NewProcessor(reg, 100, 100, 3, nil)
	if err := p.Process(cycle(1, 2, 3)); !errors.Is(err, overlay.ErrClosed) {
		t.Fatalf("err=%v want ErrClosed", err)
	}
	if p.Tracked() != 0 || reg.Len() != 0 {
		t.Fatalf("partial cycle left tracked=%d members=%d", p.Tracked(), reg.Len())
	}
}
