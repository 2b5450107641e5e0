package view

import (
	"fmt"
	"image"
	"log/slog"
	"sort"
	"strings"

	"github.com/soocke/overlay-go/config"
	"github.com/soocke/overlay-go/ui/model"
	"github.com/soocke/overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats       RenderStats
	ConfigPanel ConfigPanel
	Preview     OverlayPreview

	// Widgets
	StateLabel *LabelWidget
	states     map[string]bool
	previewW   int
	previewH   int
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	UpdateOverlay(img image.Image)
	SetRenderStats(v model.RenderValues)
	SetToggleState(name string, enabled bool)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger, previewW, previewH int) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger, states: map[string]bool{}, previewW: previewW, previewH: previewH}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onToggleDetector, onToggleCapture, onExit func()) {
	if rv == nil {
		return
	}
	pal := theme.CurrentPalette()
	// Row 0: render stats, state label, buttons frame
	rv.Stats = NewRenderStats(0, 0)
	rv.StateLabel = Label(Txt("Detector: off  Capture: off"), Borderwidth(1), Relief("ridge"), Foreground(pal.Text))
	Grid(rv.StateLabel, Row(0), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	detectorBtn := Button(Txt("Toggle Detector"), Command(onToggleDetector))
	Grid(detectorBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	captureBtn := Button(Txt("Toggle Capture"), Command(onToggleCapture))
	Grid(captureBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit), Foreground(pal.Danger))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(1)

	rv.Preview = NewOverlayPreview(endRow, rv.previewW, rv.previewH)
}

// UpdateOverlay proxies to the preview view.
func (rv *RootView) UpdateOverlay(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateOverlay(img)
	}
}

// SetRenderStats proxies to the stats view.
func (rv *RootView) SetRenderStats(v model.RenderValues) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.Set(v)
	}
}

// SetToggleState records a feature state and refreshes the state label.
// The config panel is editable only while the detector is stopped.
func (rv *RootView) SetToggleState(name string, enabled bool) {
	if rv == nil {
		return
	}
	rv.states[name] = enabled
	if name == "detector" && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!enabled)
	}
	if rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(rv.stateText()))
	}
}

func (rv *RootView) stateText() string {
	names := make([]string, 0, len(rv.states))
	for n := range rv.states {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		state := "off"
		if rv.states[n] {
			state = "on"
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", strings.ToUpper(n[:1]), n[1:], state))
	}
	return strings.Join(parts, "  ")
}

// PreviewReset clears the overlay preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
