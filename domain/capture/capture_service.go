package capture

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	statsLogInterval       = 5 * time.Second
	defaultCaptureInterval = 100 * time.Millisecond
)

// Service grabs background frames on its own goroutine and exposes the
// latest one. Consumers never block the capture loop.
type Service interface {
	FrameSource
	Start()
	Stop()
	SetRegionProvider(func() image.Rectangle)
	Stats() Stats
}

type service struct {
	running  atomic.Bool
	latest   atomic.Pointer[FrameSnapshot]
	regionMu sync.Mutex
	regionFn func() image.Rectangle
	grab     GrabFunc
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}

	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewService constructs a capture service. A nil grab uses ScreenGrab.
func NewService(logger *slog.Logger, interval time.Duration, grab GrabFunc) Service {
	if grab == nil {
		grab = ScreenGrab
	}
	if interval <= 0 {
		interval = defaultCaptureInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{grab: grab, interval: interval, logger: logger}
}

func (s *service) SetRegionProvider(fn func() image.Rectangle) {
	s.regionMu.Lock()
	s.regionFn = fn
	s.regionMu.Unlock()
}

func (s *service) region() image.Rectangle {
	s.regionMu.Lock()
	fn := s.regionFn
	s.regionMu.Unlock()
	if fn == nil {
		return image.Rectangle{}
	}
	return fn()
}

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Running() bool { return s.running.Load() }

func (s *service) Stats() Stats {
	captures := s.captures.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(s.captureNanos.Load() / captures)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		Captures:       captures,
		Failures:       s.failures.Load(),
		AvgCapture:     avg,
		LastCapture:    snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

func (s *service) Start() {
	if s.running.Swap(true) {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

// Stop ends the loop and waits for it to exit. Idempotent.
func (s *service) Stop() {
	if !s.running.Swap(false) {
		return
	}
	close(s.stop)
	<-s.done
}

func (s *service) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	var failLogged bool
	for {
		select {
		case <-stop:
			return
		case <-logTicker.C:
			s.logStats()
		case <-ticker.C:
			start := time.Now()
			img, err := s.grab(s.region())
			if err != nil || img == nil {
				s.failures.Add(1)
				if !failLogged {
					s.logger.Warn("capture failed", "error", err)
					failLogged = true
				}
				continue
			}
			frame := copyFrame(img)
			s.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
			s.captures.Add(1)
			seq := s.sequence.Add(1)
			s.latest.Store(&FrameSnapshot{Image: frame, CapturedAt: time.Now(), Sequence: seq})
		}
	}
}

func (s *service) logStats() {
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", humanize.Comma(int64(stats.Captures)),
		"failures", humanize.Comma(int64(stats.Failures)),
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
