package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/soocke/overlay-go/domain/overlay"
)

// Config holds runtime configuration for the overlay host.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug     bool `json:"debug"`
	DarkTheme bool `json:"dark_theme"`

	// Display and detector geometry
	ViewWidth   int    `json:"view_width"`
	ViewHeight  int    `json:"view_height"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
	Facing      string `json:"facing"`

	// Overlay features
	ShowLandmarks        bool   `json:"show_landmarks"`
	ShowDecoration       bool   `json:"show_decoration"`
	RotationCompensation bool   `json:"rotation_compensation"`
	DecorationDir        string `json:"decoration_dir"`

	// Loop timing
	RenderIntervalMs    int `json:"render_interval_ms"`
	DetectionIntervalMs int `json:"detection_interval_ms"`
	CaptureIntervalMs   int `json:"capture_interval_ms"`

	// Simulated detector
	SimulatedObjects int    `json:"simulated_objects"`
	ObjectLifetime   int    `json:"object_lifetime"`
	MaxMissedFrames  int    `json:"max_missed_frames"`
	Seed             uint64 `json:"seed"`

	UseScreenCapture bool `json:"use_screen_capture"`
	ResizeCacheSize  int  `json:"resize_cache_size"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		ViewWidth:            800,
		ViewHeight:           600,
		ImageWidth:           640,
		ImageHeight:          480,
		Facing:               overlay.FacingFront.String(),
		ShowLandmarks:        true,
		ShowDecoration:       false,
		RotationCompensation: false,
		RenderIntervalMs:     33,
		DetectionIntervalMs:  66,
		CaptureIntervalMs:    200,
		SimulatedObjects:     3,
		ObjectLifetime:       120,
		MaxMissedFrames:      3,
		Seed:                 1,
		UseScreenCapture:     false,
		ResizeCacheSize:      32,
	}
}

// Validate clamps/normalizes values to safe ranges. It reports an error
// only for values that cannot be repaired.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.ViewWidth <= 0 {
		c.ViewWidth = d.ViewWidth
	}
	if c.ViewHeight <= 0 {
		c.ViewHeight = d.ViewHeight
	}
	if c.ImageWidth <= 0 {
		c.ImageWidth = d.ImageWidth
	}
	if c.ImageHeight <= 0 {
		c.ImageHeight = d.ImageHeight
	}
	if c.RenderIntervalMs < 5 {
		c.RenderIntervalMs = d.RenderIntervalMs
	}
	if c.DetectionIntervalMs < 5 {
		c.DetectionIntervalMs = d.DetectionIntervalMs
	}
	if c.CaptureIntervalMs < 20 {
		c.CaptureIntervalMs = d.CaptureIntervalMs
	}
	if c.SimulatedObjects < 0 {
		c.SimulatedObjects = 0
	}
	if c.SimulatedObjects > 32 {
		c.SimulatedObjects = 32
	}
	if c.ObjectLifetime < 0 {
		c.ObjectLifetime = 0
	}
	if c.MaxMissedFrames < 0 {
		c.MaxMissedFrames = d.MaxMissedFrames
	}
	if c.ResizeCacheSize <= 0 {
		c.ResizeCacheSize = d.ResizeCacheSize
	}
	switch c.Facing {
	case overlay.FacingFront.String(), overlay.FacingBack.String():
	default:
		bad := c.Facing
		c.Facing = d.Facing
		return fmt.Errorf("config: unknown facing %q", bad)
	}
	return nil
}

// FacingValue returns the parsed sensor facing.
func (c *Config) FacingValue() overlay.Facing {
	return overlay.ParseFacing(c.Facing)
}

// DefaultPath returns the per-user config file location, creating the
// parent directory if needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("overlay-go", "config.json"))
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
