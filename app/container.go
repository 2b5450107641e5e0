package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/overlay-go/assets"
	"github.com/soocke/overlay-go/config"
	"github.com/soocke/overlay-go/domain/canvas"
	"github.com/soocke/overlay-go/domain/capture"
	"github.com/soocke/overlay-go/domain/detect"
	"github.com/soocke/overlay-go/domain/overlay"
	"github.com/soocke/overlay-go/ui/model"
	"github.com/soocke/overlay-go/ui/presenter"
	"github.com/soocke/overlay-go/ui/view"
)

// Container assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Registry    *overlay.Registry
	Decorations *assets.Resolver
	ResizeCache *canvas.ResizeCache
	Processor   *detect.Processor
	Simulator   *detect.Simulator
	Detector    *detect.Runner
	CaptureSvc  capture.Service

	DetectorModel *model.ToggleModel
	CaptureModel  *model.ToggleModel
	RenderModel   *model.RenderModel

	RootView *view.RootView
	UI       view.UI

	// Presenters
	RenderPresenter   *presenter.RenderPresenter
	DetectorPresenter *presenter.TogglePresenter
	CapturePresenter  *presenter.TogglePresenter
}

// BuildContainer constructs all components. Side-effects limited to asset
// loading; no goroutine is started and no widget is created.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, previewW, previewH int) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}

	opts := overlay.Options{
		Palette:              overlay.DefaultPalette(),
		ShowLandmarks:        cfg.ShowLandmarks,
		ShowDecoration:       cfg.ShowDecoration,
		RotationCompensation: cfg.RotationCompensation,
	}
	if cfg.ShowDecoration {
		res, err := assets.NewDefaultResolver(cfg.DecorationDir, cfg.ResizeCacheSize, logger)
		if err != nil {
			// Decorations are optional; overlays render without them.
			logger.Error("decoration assets unavailable", "error", err)
		} else {
			c.Decorations = res
			opts.Decorations = res
		}
	}
	c.Registry = overlay.NewRegistry(logger, opts)

	cache, err := canvas.NewResizeCache(cfg.ResizeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("resize cache: %w", err)
	}
	c.ResizeCache = cache

	c.Processor = detect.NewProcessor(c.Registry, float64(cfg.ViewWidth), float64(cfg.ViewHeight), cfg.MaxMissedFrames, logger)
	c.Simulator = detect.NewSimulator(detect.SimulatorConfig{
		ImageWidth:  float64(cfg.ImageWidth),
		ImageHeight: float64(cfg.ImageHeight),
		Facing:      cfg.FacingValue(),
		Objects:     cfg.SimulatedObjects,
		Lifetime:    cfg.ObjectLifetime,
		Seed:        cfg.Seed,
	}, logger)
	c.Detector = detect.NewRunner(c.Simulator, c.Processor, time.Duration(cfg.DetectionIntervalMs)*time.Millisecond, logger)
	c.CaptureSvc = capture.NewService(logger, time.Duration(cfg.CaptureIntervalMs)*time.Millisecond, capture.ScreenGrab)

	c.DetectorModel = &model.ToggleModel{}
	c.CaptureModel = &model.ToggleModel{}
	c.RenderModel = model.NewRenderModel()

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger, previewW, previewH)
	c.UI = c.RootView

	c.RenderPresenter = presenter.NewRenderPresenter(c.Registry, c.CaptureSvc, c.UI, c.RenderModel, c.ResizeCache, cfg.ViewWidth, cfg.ViewHeight, logger)
	c.DetectorPresenter = presenter.NewTogglePresenter("detector", c.DetectorModel, c.Detector, c.UI)
	c.CapturePresenter = presenter.NewTogglePresenter("capture", c.CaptureModel, c.CaptureSvc, c.UI)
	// A stopped source leaves a stale frame behind; redraw on every switch.
	invalidate := func(bool) { c.RenderPresenter.Invalidate() }
	c.DetectorPresenter.OnChange = invalidate
	c.CapturePresenter.OnChange = invalidate
	return c, nil
}

// Shutdown stops background work and closes the registry. Safe to call twice.
func (c *AppContainer) Shutdown() {
	if c == nil {
		return
	}
	c.DetectorPresenter.Disable()
	c.CapturePresenter.Disable()
	c.Registry.Close()
}
