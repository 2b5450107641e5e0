package capture

import "image"

// FrameSource provides read-only access to background frames.
// LatestFrame returns the freshest snapshot while Running reports activity.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// GrabFunc captures the given screen region; an empty rect means the whole
// primary screen.
type GrabFunc func(region image.Rectangle) (*image.RGBA, error)
