package overlay

import "math"

// LandmarkType labels a landmark position reported by the detector.
type LandmarkType int

const (
	LandmarkUnknown LandmarkType = iota
	LandmarkLeftEye
	LandmarkRightEye
	LandmarkNoseBase
	LandmarkLeftMouth
	LandmarkRightMouth
	LandmarkBottomMouth
	LandmarkLeftCheek
	LandmarkRightCheek
	LandmarkLeftEar
	LandmarkRightEar
)

// Landmark is one labeled position in detector space.
type Landmark struct {
	Type     LandmarkType
	Position Point
}

// Metric is a named probability in [0,1]. Negative or NaN values mean the
// detector did not compute it.
type Metric struct {
	Name  string
	Value float64
}

// Available reports whether the metric carries data.
func (m Metric) Available() bool {
	return !math.IsNaN(m.Value) && m.Value >= 0
}

// Metric names used for face detections.
const (
	MetricSmiling      = "happiness"
	MetricRightEyeOpen = "right eye"
	MetricLeftEyeOpen  = "left eye"
)

// ObjectSnapshot is one detection cycle's description of a tracked object.
// It must not be modified after it has been handed to Update.
type ObjectSnapshot struct {
	ID       int
	Position Point // top-left corner in detector space
	Width    float64
	Height   float64
	// EulerY is the yaw and EulerZ the roll, in degrees.
	EulerY    float64
	EulerZ    float64
	Metrics   []Metric
	Landmarks []Landmark
}

// Center returns the detector-space center of the object.
func (s *ObjectSnapshot) Center() Point {
	return Point{X: s.Position.X + s.Width/2, Y: s.Position.Y + s.Height/2}
}

// Metric looks up a metric by name.
func (s *ObjectSnapshot) Metric(name string) (float64, bool) {
	for _, m := range s.Metrics {
		if m.Name == name && m.Available() {
			return m.Value, true
		}
	}
	return 0, false
}
