package overlay

// Renderable is an element owned by a Registry. Update is called from the
// producer goroutine only, Render from the render goroutine only.
// Implementations hand state across with an atomic reference swap so a
// render never sees a partially applied update.
type Renderable interface {
	Update(s *ObjectSnapshot)
	Render(s Surface, t Transform)
}
