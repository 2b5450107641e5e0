package detect

import "github.com/soocke/overlay-go/domain/overlay"

// Detections is the output of one detection cycle.
type Detections struct {
	Frame       uint64
	ImageWidth  float64
	ImageHeight float64
	Facing      overlay.Facing
	Objects     []*overlay.ObjectSnapshot
}

// Sink consumes detection cycles. Processor.Process satisfies it.
type Sink func(Detections) error
