package detect

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/soocke/overlay-go/domain/overlay"
)

// SimulatorConfig shapes the synthetic detector.
type SimulatorConfig struct {
	ImageWidth  float64
	ImageHeight float64
	Facing      overlay.Facing
	Objects     int
	// Lifetime is the number of cycles an object stays before it is
	// replaced by a new id. Zero keeps objects forever.
	Lifetime int
	Seed     uint64
}

type simObject struct {
	id     int
	x, y   float64
	vx, vy float64
	size   float64
	phase  float64
	age    int
}

// Simulator is a stand-in detector producing moving face-like objects with
// metrics and landmarks. Step is not safe for concurrent use.
type Simulator struct {
	cfg     SimulatorConfig
	rng     *rand.Rand
	logger  *slog.Logger
	objects []*simObject
	frame   uint64
	nextID  int
}

// NewSimulator seeds the object set.
func NewSimulator(cfg SimulatorConfig, logger *slog.Logger) *Simulator {
	if cfg.ImageWidth <= 0 {
		cfg.ImageWidth = 640
	}
	if cfg.ImageHeight <= 0 {
		cfg.ImageHeight = 480
	}
	if cfg.Objects < 0 {
		cfg.Objects = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Simulator{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
	for i := 0; i < cfg.Objects; i++ {
		s.objects = append(s.objects, s.spawn())
	}
	return s
}

func (s *Simulator) spawn() *simObject {
	size := s.cfg.ImageWidth * (0.12 + 0.1*s.rng.Float64())
	o := &simObject{
		id:    s.nextID,
		size:  size,
		x:     s.rng.Float64() * (s.cfg.ImageWidth - size),
		y:     s.rng.Float64() * (s.cfg.ImageHeight - size),
		vx:    (s.rng.Float64()*2 - 1) * 6,
		vy:    (s.rng.Float64()*2 - 1) * 4,
		phase: s.rng.Float64() * 2 * math.Pi,
	}
	s.nextID++
	return o
}

// Step advances one detection cycle.
func (s *Simulator) Step() Detections {
	s.frame++
	d := Detections{
		Frame:       s.frame,
		ImageWidth:  s.cfg.ImageWidth,
		ImageHeight: s.cfg.ImageHeight,
		Facing:      s.cfg.Facing,
		Objects:     make([]*overlay.ObjectSnapshot, 0, len(s.objects)),
	}
	for i, o := range s.objects {
		o.age++
		if s.cfg.Lifetime > 0 && o.age > s.cfg.Lifetime {
			o = s.spawn()
			s.objects[i] = o
		}
		s.move(o)
		d.Objects = append(d.Objects, s.snapshot(o))
	}
	return d
}

func (s *Simulator) move(o *simObject) {
	o.x += o.vx
	o.y += o.vy
	maxX := math.Max(s.cfg.ImageWidth-o.size, 0)
	maxY := math.Max(s.cfg.ImageHeight-o.size, 0)
	if o.x < 0 || o.x > maxX {
		o.vx = -o.vx
		o.x = math.Min(math.Max(o.x, 0), maxX)
	}
	if o.y < 0 || o.y > maxY {
		o.vy = -o.vy
		o.y = math.Min(math.Max(o.y, 0), maxY)
	}
}

func (s *Simulator) snapshot(o *simObject) *overlay.ObjectSnapshot {
	t := float64(s.frame)/15 + o.phase
	unit := func(v float64) float64 { return 0.5 + 0.5*math.Sin(v) }
	at := func(fx, fy float64) overlay.Point {
		return overlay.Point{X: o.x + fx*o.size, Y: o.y + fy*o.size}
	}
	return &overlay.ObjectSnapshot{
		ID:       o.id,
		Position: overlay.Point{X: o.x, Y: o.y},
		Width:    o.size,
		Height:   o.size,
		EulerY:   15 * math.Sin(t/2),
		EulerZ:   10 * math.Sin(t/3),
		Metrics: []overlay.Metric{
			{Name: overlay.MetricSmiling, Value: unit(t)},
			{Name: overlay.MetricRightEyeOpen, Value: unit(t * 1.7)},
			{Name: overlay.MetricLeftEyeOpen, Value: unit(t*1.7 + 0.3)},
		},
		Landmarks: []overlay.Landmark{
			{Type: overlay.LandmarkLeftEye, Position: at(0.3, 0.35)},
			{Type: overlay.LandmarkRightEye, Position: at(0.7, 0.35)},
			{Type: overlay.LandmarkNoseBase, Position: at(0.5, 0.6)},
			{Type: overlay.LandmarkLeftMouth, Position: at(0.35, 0.8)},
			{Type: overlay.LandmarkRightMouth, Position: at(0.65, 0.8)},
		},
	}
}

// Run steps the simulator every interval and hands each cycle to sink
// until ctx is done or sink fails.
func (s *Simulator) Run(ctx context.Context, interval time.Duration, sink Sink) error {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := sink(s.Step()); err != nil {
				s.logger.Warn("detector stopped", "error", err, "frame", s.frame)
				return err
			}
		}
	}
}
