package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/overlay-go/domain/overlay"
)

func TestValidate_ClampsOutOfRange(t *testing.T) {
	c := &Config{
		ViewWidth:        -1,
		ImageHeight:      0,
		RenderIntervalMs: 1,
		SimulatedObjects: 100,
		MaxMissedFrames:  -4,
		Facing:           "back",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	d := DefaultConfig()
	if c.ViewWidth != d.ViewWidth || c.ImageHeight != d.ImageHeight {
		t.Fatalf("dims not restored view_w=%d image_h=%d", c.ViewWidth, c.ImageHeight)
	}
	if c.RenderIntervalMs != d.RenderIntervalMs {
		t.Fatalf("render_interval_ms=%d", c.RenderIntervalMs)
	}
	if c.SimulatedObjects != 32 {
		t.Fatalf("simulated_objects=%d", c.SimulatedObjects)
	}
	if c.MaxMissedFrames != d.MaxMissedFrames {
		t.Fatalf("max_missed_frames=%d", c.MaxMissedFrames)
	}
	if c.FacingValue() != overlay.FacingBack {
		t.Fatalf("facing=%v", c.FacingValue())
	}
}

func TestValidate_UnknownFacing(t *testing.T) {
	c := DefaultConfig()
	c.Facing = "sideways"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for facing=sideways")
	}
	if c.Facing != "front" {
		t.Fatalf("facing not reset: %q", c.Facing)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_MalformedReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults on error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig()
	c.ShowDecoration = true
	c.Facing = "back"
	c.SimulatedObjects = 5
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *c {
		t.Fatalf("round trip mismatch got=%+v want=%+v", got, c)
	}
}
