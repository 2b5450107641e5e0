package model

import (
	"sync/atomic"
)

// ToggleModel tracks whether a background feature (detector, capture) is
// enabled. The zero value is disabled and usable.
// Concurrency-safe via atomic Bool because UI callbacks and presenter ticks may race.
type ToggleModel struct{ enabled atomic.Bool }

// Enabled reports whether the feature is currently enabled.
func (m *ToggleModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag and reports whether it changed.
func (m *ToggleModel) SetEnabled(b bool) bool {
	if m == nil {
		return false
	}
	return m.enabled.Swap(b) != b
}
