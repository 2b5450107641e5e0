package overlay

type ring struct {
	radius float64
	paint  Paint
}

const landmarkStrokeWidth = 5

var (
	eyeRings = []ring{
		{70, Paint{Color: ColorYellow, Style: PaintStroke, StrokeWidth: landmarkStrokeWidth}},
		{60, Paint{Color: ColorBlue, Style: PaintFill}},
		{50, Paint{Color: ColorGreen, Style: PaintFill}},
		{40, Paint{Color: ColorYellow, Style: PaintStroke, StrokeWidth: landmarkStrokeWidth}},
		{30, Paint{Color: ColorYellow, Style: PaintStroke, StrokeWidth: landmarkStrokeWidth}},
	}
	mouthRings = []ring{
		{40, Paint{Color: ColorRed, Style: PaintStroke, StrokeWidth: landmarkStrokeWidth}},
	}
)

// landmarkRings returns the marker set for a landmark type. Unknown types
// get a small ring in the object's own style.
func landmarkRings(lt LandmarkType, style VisualStyle) []ring {
	switch lt {
	case LandmarkLeftEye, LandmarkRightEye:
		return eyeRings
	case LandmarkNoseBase, LandmarkLeftMouth, LandmarkRightMouth:
		return mouthRings
	default:
		return []ring{{positionRadius, Paint{Color: style.Stroke, Style: PaintStroke, StrokeWidth: 2}}}
	}
}

func drawLandmarks(s Surface, t Transform, lms []Landmark, style VisualStyle) {
	for _, lm := range lms {
		p := t.ToDisplay(lm.Position)
		for _, r := range landmarkRings(lm.Type, style) {
			s.DrawCircle(p.X, p.Y, r.radius, r.paint)
		}
	}
}
