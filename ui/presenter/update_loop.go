package presenter

import "time"

// Loop drives periodic presenter updates from the UI thread.
//
// It calls Tick on the render presenter and then invokes a scheduler
// callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Render   *RenderPresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(render *RenderPresenter, schedule func()) *Loop {
	return &Loop{Render: render, Schedule: schedule, now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	if l.Render != nil {
		l.Render.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
