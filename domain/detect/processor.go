package detect

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/soocke/overlay-go/domain/overlay"
)

const defaultMaxMissedFrames = 3

type track struct {
	overlay *overlay.ObjectOverlay
	missed  int
	visible bool
}

// Processor turns detection cycles into registry calls. Each object id gets
// its own overlay on first sight; an object missing from a cycle is hidden,
// and dropped once it has been missing for more than maxMissed cycles.
type Processor struct {
	reg       *overlay.Registry
	logger    *slog.Logger
	maxMissed int

	mu       sync.Mutex
	viewW    float64
	viewH    float64
	geom     overlay.FrameGeometry
	haveGeom bool
	tracks   map[int]*track
}

// NewProcessor binds a processor to reg and the display view size.
func NewProcessor(reg *overlay.Registry, viewW, viewH float64, maxMissed int, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if maxMissed < 0 {
		maxMissed = defaultMaxMissedFrames
	}
	return &Processor{
		reg:       reg,
		logger:    logger,
		maxMissed: maxMissed,
		viewW:     viewW,
		viewH:     viewH,
		tracks:    make(map[int]*track),
	}
}

// SetViewSize updates the display size used for the next geometry.
func (p *Processor) SetViewSize(w, h float64) {
	p.mu.Lock()
	p.viewW, p.viewH = w, h
	p.haveGeom = false
	p.mu.Unlock()
}

// Process applies one detection cycle.
func (p *Processor) Process(d Detections) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reg.Closed() {
		return overlay.ErrClosed
	}

	g := overlay.FrameGeometry{
		ImageWidth:  d.ImageWidth,
		ImageHeight: d.ImageHeight,
		ViewWidth:   p.viewW,
		ViewHeight:  p.viewH,
		Facing:      d.Facing,
	}
	if !p.haveGeom || g != p.geom {
		p.reg.SetFrameGeometry(g)
		p.geom, p.haveGeom = g, true
		p.logger.Debug("frame geometry", "image_w", g.ImageWidth, "image_h", g.ImageHeight, "facing", g.Facing.String())
	}

	seen := make(map[int]struct{}, len(d.Objects))
	for _, obj := range d.Objects {
		if obj == nil {
			continue
		}
		seen[obj.ID] = struct{}{}
		tr, ok := p.tracks[obj.ID]
		if !ok {
			tr = &track{overlay: p.reg.NewOverlay(obj.ID)}
			p.tracks[obj.ID] = tr
			p.logger.Debug("track new", "id", obj.ID)
		}
		tr.missed = 0
		if err := p.reg.Add(tr.overlay); err != nil {
			// The registry closed mid-cycle; its members are gone, so
			// drop every track instead of keeping a partial cycle.
			clear(p.tracks)
			return fmt.Errorf("track %d: %w", obj.ID, err)
		}
		tr.visible = true
		tr.overlay.Update(obj)
	}

	changed := false
	for id, tr := range p.tracks {
		if _, ok := seen[id]; ok {
			continue
		}
		tr.missed++
		if tr.visible {
			p.reg.Remove(tr.overlay)
			tr.visible = false
			changed = true
		}
		if tr.missed > p.maxMissed {
			delete(p.tracks, id)
			p.logger.Debug("track done", "id", id)
		}
	}
	if changed {
		p.reg.RequestRedraw()
	}
	return nil
}

// Done ends tracking: every overlay is removed.
func (p *Processor) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, tr := range p.tracks {
		p.reg.Remove(tr.overlay)
		delete(p.tracks, id)
	}
	p.reg.RequestRedraw()
}

// Tracked returns the number of ids currently tracked, visible or not.
func (p *Processor) Tracked() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tracks)
}
