package presenter

import (
	"testing"

	"github.com/soocke/overlay-go/ui/model"
)

type mockService struct{ started, stopped int }

func (s *mockService) Start() { s.started++ }
func (s *mockService) Stop()  { s.stopped++ }

type mockToggleView struct {
	calls int
	name  string
	last  bool
}

func (v *mockToggleView) SetToggleState(name string, enabled bool) {
	v.calls++
	v.name = name
	v.last = enabled
}

var _ ToggleModel = (*model.ToggleModel)(nil)

func TestTogglePresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &model.ToggleModel{}
	svc := &mockService{}
	view := &mockToggleView{}
	var changes []bool
	p := NewTogglePresenter("detector", m, svc, view)
	p.OnChange = func(b bool) { changes = append(changes, b) }

	p.Enable()
	if !m.Enabled() || svc.started != 1 || view.calls != 1 || !view.last || view.name != "detector" {
		t.Fatalf("enable failed: enabled=%v started=%d calls=%d last=%v name=%q", m.Enabled(), svc.started, view.calls, view.last, view.name)
	}
	p.Enable()
	if svc.started != 1 || view.calls != 1 {
		t.Fatalf("enable not idempotent: started=%d calls=%d", svc.started, view.calls)
	}

	p.Disable()
	if m.Enabled() || svc.stopped != 1 || view.calls != 2 || view.last {
		t.Fatalf("disable failed: enabled=%v stopped=%d calls=%d last=%v", m.Enabled(), svc.stopped, view.calls, view.last)
	}
	p.Disable()
	if svc.stopped != 1 {
		t.Fatalf("disable not idempotent: stopped=%d", svc.stopped)
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Fatalf("changes=%v", changes)
	}
}

func TestTogglePresenter_Toggle(t *testing.T) {
	m := &model.ToggleModel{}
	svc := &mockService{}
	p := NewTogglePresenter("capture", m, svc, &mockToggleView{})
	p.Toggle()
	if !m.Enabled() || svc.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle()
	if m.Enabled() || svc.stopped != 1 {
		t.Fatalf("toggle disable failed")
	}
}

func TestTogglePresenter_NilSafe(t *testing.T) {
	var p *TogglePresenter
	p.Toggle()
	p.Enable()
	p.Disable()
	NewTogglePresenter("x", nil, nil, nil).Toggle()
}
