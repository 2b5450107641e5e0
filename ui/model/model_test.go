package model

import (
	"testing"
	"time"
)

func TestToggleModel_ZeroValueAndChange(t *testing.T) {
	var m ToggleModel
	if m.Enabled() {
		t.Fatalf("zero value should be disabled")
	}
	if !m.SetEnabled(true) || !m.Enabled() {
		t.Fatalf("enable did not report change")
	}
	if m.SetEnabled(true) {
		t.Fatalf("repeated enable reported change")
	}
	var nilModel *ToggleModel
	if nilModel.Enabled() || nilModel.SetEnabled(true) {
		t.Fatalf("nil model should be inert")
	}
}

func TestRenderModel_RateWindow(t *testing.T) {
	m := NewRenderModel()
	base := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		m.OnPass(3, 2*time.Millisecond, base.Add(time.Duration(i)*100*time.Millisecond))
	}
	v := m.Values(base.Add(900 * time.Millisecond))
	if v.Passes != 10 || v.Overlays != 3 || v.LastDuration != 2*time.Millisecond {
		t.Fatalf("values=%+v", v)
	}
	if v.FPS != 10 {
		t.Fatalf("fps=%v want=10", v.FPS)
	}

	// Half a second later the first five passes fall out of the window.
	v = m.Values(base.Add(1450 * time.Millisecond))
	if v.FPS != 5 || v.Passes != 10 {
		t.Fatalf("after idle fps=%v passes=%d", v.FPS, v.Passes)
	}

	m.OnPass(0, time.Millisecond, base.Add(5*time.Second))
	v = m.Values(base.Add(5 * time.Second))
	if v.FPS != 1 || v.Overlays != 0 {
		t.Fatalf("after gap fps=%v overlays=%d", v.FPS, v.Overlays)
	}
}
