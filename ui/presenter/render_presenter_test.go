package presenter

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/soocke/overlay-go/domain/capture"
	"github.com/soocke/overlay-go/domain/overlay"
	"github.com/soocke/overlay-go/ui/model"
)

type fakeSource struct {
	pending bool
	renders int
	members int
}

func (s *fakeSource) RedrawPending() bool {
	p := s.pending
	s.pending = false
	return p
}

func (s *fakeSource) Render(surf overlay.Surface) int {
	s.renders++
	surf.DrawCircle(5, 5, 2, overlay.Paint{Color: color.RGBA{255, 0, 0, 255}, Style: overlay.PaintFill})
	return s.members
}

func (s *fakeSource) Stats() overlay.RenderStats {
	return overlay.RenderStats{Members: s.members, Passes: uint64(s.renders)}
}

type fakeFrames struct {
	running bool
	snap    capture.FrameSnapshot
}

func (f *fakeFrames) Running() bool                      { return f.running }
func (f *fakeFrames) LatestFrame() capture.FrameSnapshot { return f.snap }

type fakeRenderView struct {
	images []image.Image
	stats  model.RenderValues
}

func (v *fakeRenderView) UpdateOverlay(img image.Image)       { v.images = append(v.images, img) }
func (v *fakeRenderView) SetRenderStats(s model.RenderValues) { v.stats = s }

func TestRenderPresenter_RendersOnlyWhenDue(t *testing.T) {
	src := &fakeSource{members: 2}
	view := &fakeRenderView{}
	p := NewRenderPresenter(src, nil, view, model.NewRenderModel(), nil, 40, 30, nil)
	now := time.Unix(100, 0)

	if !p.Tick(now) {
		t.Fatalf("first tick should render the initial frame")
	}
	if p.Tick(now.Add(time.Millisecond)) {
		t.Fatalf("idle tick rendered")
	}
	src.pending = true
	if !p.Tick(now.Add(2 * time.Millisecond)) {
		t.Fatalf("pending redraw not rendered")
	}
	p.Invalidate()
	if !p.Tick(now.Add(3 * time.Millisecond)) {
		t.Fatalf("invalidate not honoured")
	}
	if src.renders != 3 || len(view.images) != 3 {
		t.Fatalf("renders=%d images=%d", src.renders, len(view.images))
	}
	if view.stats.Passes != 3 || view.stats.Overlays != 2 {
		t.Fatalf("stats=%+v", view.stats)
	}
	img := view.images[0]
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds=%v", b)
	}
	r, _, _, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 {
		t.Fatalf("marker missing r=%d", r>>8)
	}
	r, g, b, a := img.At(30, 20).RGBA()
	if uint8(r>>8) != blankBackground.R || uint8(g>>8) != blankBackground.G || uint8(b>>8) != blankBackground.B || a>>8 != 255 {
		t.Fatalf("blank background not filled")
	}
}

func TestRenderPresenter_NewFrameTriggersPass(t *testing.T) {
	src := &fakeSource{}
	frame := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for i := range frame.Pix {
		frame.Pix[i] = 200
	}
	frames := &fakeFrames{running: true, snap: capture.FrameSnapshot{Image: frame, Sequence: 1}}
	view := &fakeRenderView{}
	p := NewRenderPresenter(src, frames, view, model.NewRenderModel(), nil, 16, 12, nil)
	now := time.Unix(0, 0)

	p.Tick(now)
	if p.Tick(now) {
		t.Fatalf("same frame sequence rendered twice")
	}
	frames.snap.Sequence = 2
	if !p.Tick(now) {
		t.Fatalf("new frame did not trigger a pass")
	}
	r, _, _, _ := view.images[1].At(12, 10).RGBA()
	if r>>8 != 200 {
		t.Fatalf("background frame not used r=%d", r>>8)
	}
}

func TestLoop_TickSchedules(t *testing.T) {
	src := &fakeSource{}
	view := &fakeRenderView{}
	scheduled := 0
	l := NewLoop(NewRenderPresenter(src, nil, view, model.NewRenderModel(), nil, 4, 4, nil), func() { scheduled++ })
	l.Tick()
	l.Tick()
	if scheduled != 2 || src.renders != 1 {
		t.Fatalf("scheduled=%d renders=%d", scheduled, src.renders)
	}
	var nilLoop *Loop
	nilLoop.Tick()
	(&Loop{}).Tick()
}
