package view

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/overlay-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the form for the persisted overlay settings. The running
// registry keeps its options; saved values apply on restart.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // grids widgets from startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses the form into the config and persists it
}

// configField binds one form row to a config value.
type configField struct {
	id    string
	label string
	get   func(c *config.Config) string
	set   func(c *config.Config, s string) bool
}

func boolField(id, label string, ptr func(c *config.Config) *bool) configField {
	return configField{
		id: id, label: label + " (true/false)",
		get: func(c *config.Config) string { return strconv.FormatBool(*ptr(c)) },
		set: func(c *config.Config, s string) bool {
			b, ok := parseBoolLoose(s)
			if ok {
				*ptr(c) = b
			}
			return ok
		},
	}
}

func intField(id, label string, ptr func(c *config.Config) *int) configField {
	return configField{
		id: id, label: label,
		get: func(c *config.Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *config.Config, s string) bool {
			i, err := strconv.Atoi(s)
			if err == nil {
				*ptr(c) = i
			}
			return err == nil
		},
	}
}

var configFields = []configField{
	{
		id: "facing", label: "Facing (front/back)",
		get: func(c *config.Config) string { return c.Facing },
		set: func(c *config.Config, s string) bool { c.Facing = strings.ToLower(s); return s != "" },
	},
	boolField("showLandmarks", "Show Landmarks", func(c *config.Config) *bool { return &c.ShowLandmarks }),
	boolField("showDecoration", "Show Decoration", func(c *config.Config) *bool { return &c.ShowDecoration }),
	boolField("rotationCompensation", "Rotation Compensation", func(c *config.Config) *bool { return &c.RotationCompensation }),
	{
		id: "decorationDir", label: "Decoration Dir",
		get: func(c *config.Config) string { return c.DecorationDir },
		set: func(c *config.Config, s string) bool { c.DecorationDir = s; return true },
	},
	intField("simulatedObjects", "Simulated Objects", func(c *config.Config) *int { return &c.SimulatedObjects }),
	intField("objectLifetime", "Object Lifetime (cycles)", func(c *config.Config) *int { return &c.ObjectLifetime }),
	intField("maxMissedFrames", "Max Missed Frames", func(c *config.Config) *int { return &c.MaxMissedFrames }),
	intField("detectionIntervalMs", "Detection Interval ms", func(c *config.Config) *int { return &c.DetectionIntervalMs }),
	intField("renderIntervalMs", "Render Interval ms", func(c *config.Config) *int { return &c.RenderIntervalMs }),
	boolField("useScreenCapture", "Screen Capture Background", func(c *config.Config) *bool { return &c.UseScreenCapture }),
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) int {
	row := startRow
	for _, f := range configFields {
		lbl := Label(Txt(f.label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(18))
		Grid(w, Row(row), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Insert("1.0", f.get(v.cfg))
		v.widgets[f.id] = w
		row++
	}
	v.applyBtn = Button(Txt("Save Settings"), Command(v.ApplyChanges))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return row + 1
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		w.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	next := *v.cfg
	for _, f := range configFields {
		w := v.widgets[f.id]
		if w == nil {
			continue
		}
		raw := strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
		if !f.set(&next, raw) && v.logger != nil {
			v.logger.Warn("config field ignored", "field", f.id, "value", raw)
		}
	}
	if err := next.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("config rejected", "error", err)
		}
		return
	}
	*v.cfg = next
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved; overlay options apply on restart", "path", v.cfgPath)
	}
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
