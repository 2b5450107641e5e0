package overlay

// Facing identifies which way the sensor feeding the detector points.
type Facing int

const (
	FacingBack Facing = iota
	FacingFront
)

func (f Facing) String() string {
	if f == FacingFront {
		return "front"
	}
	return "back"
}

// ParseFacing maps "front" to FacingFront; anything else is FacingBack.
func ParseFacing(s string) Facing {
	if s == "front" {
		return FacingFront
	}
	return FacingBack
}

// FrameGeometry describes the detector frame and the display view it is
// projected onto. Values are replaced wholesale, never edited in place.
type FrameGeometry struct {
	ImageWidth  float64
	ImageHeight float64
	ViewWidth   float64
	ViewHeight  float64
	Facing      Facing
}

// Point is a position in detector or display space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in display space.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }
