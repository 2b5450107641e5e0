package capture

import (
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestService_PublishesLatestFrame(t *testing.T) {
	var regions atomic.Int32
	grab := func(r image.Rectangle) (*image.RGBA, error) {
		if r == image.Rect(0, 0, 8, 4) {
			regions.Add(1)
		}
		img := image.NewRGBA(image.Rect(0, 0, 8, 4))
		img.Pix[0] = 7
		return img, nil
	}
	s := NewService(nil, time.Millisecond, grab)
	s.SetRegionProvider(func() image.Rectangle { return image.Rect(0, 0, 8, 4) })
	if s.LatestFrame().Image != nil {
		t.Fatalf("frame before start")
	}
	s.Start()
	s.Start()
	waitFor(t, func() bool { return s.LatestFrame().Sequence >= 2 })
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatalf("still running after stop")
	}
	snap := s.LatestFrame()
	if snap.Image == nil || snap.Image.Pix[0] != 7 || snap.Image.Bounds().Dx() != 8 {
		t.Fatalf("unexpected frame %+v", snap)
	}
	if regions.Load() == 0 {
		t.Fatalf("region provider not consulted")
	}
	st := s.Stats()
	if st.Captures < 2 || st.Sequence != snap.Sequence {
		t.Fatalf("stats=%+v", st)
	}
}

func TestService_CountsFailures(t *testing.T) {
	s := NewService(nil, time.Millisecond, func(image.Rectangle) (*image.RGBA, error) {
		return nil, errors.New("no display")
	})
	s.Start()
	waitFor(t, func() bool { return s.Stats().Failures >= 3 })
	s.Stop()
	if s.LatestFrame().Image != nil {
		t.Fatalf("failed grabs must not publish frames")
	}
}

func TestCopyFrame_UsesPoolAndCopiesRows(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	dst := copyFrame(src)
	if dst == src || dst.Bounds() != src.Bounds() {
		t.Fatalf("copy bounds=%v", dst.Bounds())
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d differs", i)
		}
	}
	RecycleFrame(dst)
	RecycleFrame(nil)
}
