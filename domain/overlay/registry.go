package overlay

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrClosed is returned when adding to a registry after Close.
var ErrClosed = errors.New("overlay: registry closed")

// Options configures a Registry and the overlays it creates.
type Options struct {
	Palette Palette
	// Decorations resolves optional per-object images. Nil disables the
	// decoration step.
	Decorations          DecorationResolver
	ShowDecoration       bool
	ShowLandmarks        bool
	RotationCompensation bool
	// OnRedraw is called after each RequestRedraw, in addition to the
	// Redraws channel. It must not block.
	OnRedraw func()
}

// RenderStats summarises registry activity for instrumentation.
type RenderStats struct {
	Members   int
	Passes    uint64
	Requested uint64
	Coalesced uint64
}

// Registry owns the renderable set of one overlay surface and the frame
// geometry used to project it.
//
// Membership is copy-on-write: writers build a new slice under mu and
// publish it atomically, so a render pass iterates an immutable slice and
// never holds a lock while drawing.
type Registry struct {
	id     string
	logger *slog.Logger
	opts   Options
	styles *StyleAllocator

	mu      sync.Mutex
	members atomic.Pointer[[]Renderable]
	geom    atomic.Pointer[FrameGeometry]

	redraw chan struct{}
	closed atomic.Bool

	passes    atomic.Uint64
	requested atomic.Uint64
	coalesced atomic.Uint64
}

// NewRegistry constructs an empty registry.
func NewRegistry(logger *slog.Logger, opts Options) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		id:     uuid.NewString(),
		opts:   opts,
		styles: NewStyleAllocator(opts.Palette),
		redraw: make(chan struct{}, 1),
	}
	r.logger = logger.With("registry", r.id)
	empty := []Renderable{}
	r.members.Store(&empty)
	return r
}

// ID returns the registry instance identifier used in logs.
func (r *Registry) ID() string { return r.id }

// Options returns the options the registry was built with.
func (r *Registry) Options() Options { return r.opts }

// Logger returns the registry scoped logger.
func (r *Registry) Logger() *slog.Logger { return r.logger }

// NewOverlay creates an ObjectOverlay bound to r with the next palette style.
// The overlay is not added; call Add when it should be drawn.
func (r *Registry) NewOverlay(id int) *ObjectOverlay {
	return NewObjectOverlay(r, id, r.styles.Next())
}

// SetFrameGeometry replaces the geometry used by subsequent render passes.
// It does not request a redraw.
func (r *Registry) SetFrameGeometry(g FrameGeometry) {
	r.geom.Store(&g)
}

// Geometry returns the current geometry, if one has been set.
func (r *Registry) Geometry() (FrameGeometry, bool) {
	g := r.geom.Load()
	if g == nil {
		return FrameGeometry{}, false
	}
	return *g, true
}

// Transform returns a Transform bound to the current geometry.
func (r *Registry) Transform() Transform {
	g := r.geom.Load()
	if g == nil {
		return Transform{}
	}
	return NewTransform(*g)
}

// Add appends el unless it is already a member.
func (r *Registry) Add(el Renderable) error {
	if el == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed.Load() {
		return ErrClosed
	}
	cur := *r.members.Load()
	for _, m := range cur {
		if m == el {
			return nil
		}
	}
	next := make([]Renderable, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, el)
	r.members.Store(&next)
	return nil
}

// Remove drops el. Removing a non-member is a no-op.
func (r *Registry) Remove(el Renderable) {
	if el == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := *r.members.Load()
	idx := -1
	for i, m := range cur {
		if m == el {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := make([]Renderable, 0, len(cur)-1)
	next = append(next, cur[:idx]...)
	next = append(next, cur[idx+1:]...)
	r.members.Store(&next)
}

// Clear removes every member.
func (r *Registry) Clear() {
	r.mu.Lock()
	empty := []Renderable{}
	r.members.Store(&empty)
	r.mu.Unlock()
}

// Len returns the current member count.
func (r *Registry) Len() int { return len(*r.members.Load()) }

// Members returns a copy of the current membership in insertion order.
func (r *Registry) Members() []Renderable {
	cur := *r.members.Load()
	out := make([]Renderable, len(cur))
	copy(out, cur)
	return out
}

// RequestRedraw asks the host for a render pass. It never blocks; requests
// made before the host drains Redraws collapse into one.
func (r *Registry) RequestRedraw() {
	if r.closed.Load() {
		return
	}
	r.requested.Add(1)
	select {
	case r.redraw <- struct{}{}:
	default:
		r.coalesced.Add(1)
	}
	if r.opts.OnRedraw != nil {
		r.opts.OnRedraw()
	}
}

// Redraws delivers at most one pending redraw request.
func (r *Registry) Redraws() <-chan struct{} { return r.redraw }

// RedrawPending consumes a pending redraw request, if any.
func (r *Registry) RedrawPending() bool {
	select {
	case <-r.redraw:
		return true
	default:
		return false
	}
}

// Render draws every member onto s using the membership and geometry
// current when the pass starts. Changes made during the pass show up in the
// next one. It returns the number of members rendered.
func (r *Registry) Render(s Surface) int {
	if s == nil || r.closed.Load() {
		return 0
	}
	members := *r.members.Load()
	t := r.Transform()
	for _, m := range members {
		m.Render(s, t)
	}
	r.passes.Add(1)
	return len(members)
}

// Close tears the registry down. Later renders draw nothing and later
// Adds fail with ErrClosed.
func (r *Registry) Close() {
	if r.closed.Swap(true) {
		return
	}
	r.Clear()
	r.logger.Debug("registry closed")
}

// Closed reports whether Close has been called.
func (r *Registry) Closed() bool { return r.closed.Load() }

// Stats returns counters for instrumentation.
func (r *Registry) Stats() RenderStats {
	return RenderStats{
		Members:   r.Len(),
		Passes:    r.passes.Load(),
		Requested: r.requested.Load(),
		Coalesced: r.coalesced.Load(),
	}
}
