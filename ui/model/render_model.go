package model

import (
	"sync"
	"time"
)

// fpsWindow is the span over which passes are counted for the rate.
const fpsWindow = time.Second

// RenderValues is a point-in-time copy of RenderModel.
type RenderValues struct {
	Passes       uint64
	Overlays     int
	LastDuration time.Duration
	FPS          float64
}

// RenderModel accumulates render pass statistics for the stats view.
// The zero value is ready to use.
type RenderModel struct {
	mu       sync.Mutex
	passes   uint64
	overlays int
	last     time.Duration
	window   []time.Time
}

// NewRenderModel returns a pointer to a ready-to-use RenderModel.
func NewRenderModel() *RenderModel { return &RenderModel{} }

// OnPass records one render pass finished at now.
func (m *RenderModel) OnPass(overlays int, took time.Duration, now time.Time) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passes++
	m.overlays = overlays
	m.last = took
	m.window = append(m.window, now)
	m.trim(now)
}

func (m *RenderModel) trim(now time.Time) {
	cut := 0
	for cut < len(m.window) && now.Sub(m.window[cut]) > fpsWindow {
		cut++
	}
	if cut > 0 {
		m.window = append(m.window[:0], m.window[cut:]...)
	}
}

// Values returns the current statistics. The rate counts passes within the
// last second before now.
func (m *RenderModel) Values(now time.Time) RenderValues {
	if m == nil {
		return RenderValues{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trim(now)
	return RenderValues{
		Passes:       m.passes,
		Overlays:     m.overlays,
		LastDuration: m.last,
		FPS:          float64(len(m.window)) / fpsWindow.Seconds(),
	}
}
