package presenter

// ToggleModel provides enabled state access.
type ToggleModel interface {
	Enabled() bool
	SetEnabled(bool) bool
}

// Lifecycle narrows what the presenter needs from a background service.
type Lifecycle interface {
	Start()
	Stop()
}

// ToggleView reflects the enabled state of one feature.
type ToggleView interface {
	SetToggleState(name string, enabled bool)
}

// TogglePresenter switches a background feature (detector, screen capture)
// on and off, keeping model, service and view in step. After each change
// the optional OnChange hook runs, e.g. to force a render pass.
type TogglePresenter struct {
	name     string
	model    ToggleModel
	service  Lifecycle
	view     ToggleView
	OnChange func(enabled bool)
}

func NewTogglePresenter(name string, model ToggleModel, service Lifecycle, view ToggleView) *TogglePresenter {
	return &TogglePresenter{name: name, model: model, service: service, view: view}
}

func (c *TogglePresenter) ready() bool {
	return c != nil && c.model != nil && c.service != nil && c.view != nil
}

// Enable starts the service. Idempotent.
func (c *TogglePresenter) Enable() {
	if !c.ready() || c.model.Enabled() {
		return
	}
	c.service.Start()
	c.model.SetEnabled(true)
	c.view.SetToggleState(c.name, true)
	if c.OnChange != nil {
		c.OnChange(true)
	}
}

// Disable stops the service. Idempotent.
func (c *TogglePresenter) Disable() {
	if !c.ready() || !c.model.Enabled() {
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	c.view.SetToggleState(c.name, false)
	if c.OnChange != nil {
		c.OnChange(false)
	}
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *TogglePresenter) Toggle() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
