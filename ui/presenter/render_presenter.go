package presenter

import (
	"image"
	"image/color"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/soocke/overlay-go/domain/canvas"
	"github.com/soocke/overlay-go/domain/capture"
	"github.com/soocke/overlay-go/domain/overlay"
	"github.com/soocke/overlay-go/ui/model"
)

// FrameSource supplies the most recent background frame.
type FrameSource interface {
	Running() bool
	LatestFrame() capture.FrameSnapshot
}

// OverlaySource is the consumer side of an overlay registry.
type OverlaySource interface {
	RedrawPending() bool
	Render(s overlay.Surface) int
	Stats() overlay.RenderStats
}

var _ OverlaySource = (*overlay.Registry)(nil)

// RenderView displays finished overlay frames and their statistics.
type RenderView interface {
	UpdateOverlay(img image.Image)
	SetRenderStats(v model.RenderValues)
}

const statsLogInterval = 10 * time.Second

var blankBackground = color.RGBA{R: 18, G: 18, B: 24, A: 255}

// RenderPresenter runs render passes on the UI thread. A pass happens only
// when the registry asked for a redraw, a new background frame arrived or
// Invalidate was called; otherwise Tick is a no-op apart from stats.
type RenderPresenter struct {
	source OverlaySource
	frames FrameSource
	view   RenderView
	model  *model.RenderModel
	cache  *canvas.ResizeCache
	logger *slog.Logger

	width, height int
	force         atomic.Bool
	lastSeq       uint64
	lastLog       time.Time
}

// NewRenderPresenter constructs a presenter drawing width x height frames.
// frames may be nil, in which case passes draw onto a blank frame.
func NewRenderPresenter(source OverlaySource, frames FrameSource, view RenderView, m *model.RenderModel, cache *canvas.ResizeCache, width, height int, logger *slog.Logger) *RenderPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	p := &RenderPresenter{
		source: source,
		frames: frames,
		view:   view,
		model:  m,
		cache:  cache,
		logger: logger,
		width:  max(width, 1),
		height: max(height, 1),
	}
	p.force.Store(true)
	return p
}

// Invalidate forces a pass on the next Tick.
func (p *RenderPresenter) Invalidate() {
	if p == nil {
		return
	}
	p.force.Store(true)
}

// Tick renders a pass if one is due and reports whether it did.
func (p *RenderPresenter) Tick(now time.Time) bool {
	if p == nil || p.source == nil || p.view == nil {
		return false
	}
	frame, seq := p.background()
	pending := p.source.RedrawPending()
	forced := p.force.Swap(false)
	fresh := seq != 0 && seq != p.lastSeq
	rendered := false
	if pending || forced || fresh {
		p.lastSeq = seq
		p.pass(frame, now)
		rendered = true
	}
	p.view.SetRenderStats(p.model.Values(now))
	p.maybeLogStats(now)
	return rendered
}

func (p *RenderPresenter) background() (*image.RGBA, uint64) {
	if p.frames == nil || !p.frames.Running() {
		return nil, 0
	}
	snap := p.frames.LatestFrame()
	if snap.Image == nil {
		return nil, 0
	}
	return snap.Image, snap.Sequence
}

func (p *RenderPresenter) pass(frame *image.RGBA, now time.Time) {
	start := time.Now()
	var c *canvas.Canvas
	if frame != nil {
		c = canvas.NewFromFrame(frame, p.width, p.height, p.cache)
	} else {
		c = canvas.NewBlank(p.width, p.height, p.cache)
		c.Fill(blankBackground)
	}
	n := p.source.Render(c)
	p.model.OnPass(n, time.Since(start), now)
	p.view.UpdateOverlay(c.Image())
}

func (p *RenderPresenter) maybeLogStats(now time.Time) {
	if !p.lastLog.IsZero() && now.Sub(p.lastLog) < statsLogInterval {
		return
	}
	p.lastLog = now
	st := p.source.Stats()
	v := p.model.Values(now)
	p.logger.Info("render.stats",
		"overlays", st.Members,
		"passes", humanize.Comma(int64(st.Passes)),
		"requested", humanize.Comma(int64(st.Requested)),
		"coalesced", humanize.Comma(int64(st.Coalesced)),
		"fps", v.FPS,
		"last_pass", v.LastDuration,
	)
}
