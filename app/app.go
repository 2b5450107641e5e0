package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/overlay-go/config"
	"github.com/soocke/overlay-go/debug"
	"github.com/soocke/overlay-go/ui/presenter"
	"github.com/soocke/overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

type app struct {
	title   string
	width   int
	height  int
	tick    time.Duration
	afterID string
	c       *AppContainer
	loop    *presenter.Loop
	logger  *slog.Logger
	cancel  context.CancelFunc
}

// NewApp builds the container for a width x height window.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) (*app, error) {
	// Leave room for the stats row and the config form.
	previewW, previewH := max(width-40, 100), max(height-360, 100)
	c, err := BuildContainer(cfg, logger, cfgPath, previewW, previewH)
	if err != nil {
		return nil, err
	}
	return &app{
		title:  title,
		width:  width,
		height: height,
		tick:   time.Duration(cfg.RenderIntervalMs) * time.Millisecond,
		c:      c,
		logger: logger,
	}, nil
}

// Start builds the window, starts background work and blocks in the Tk
// event loop until the window is closed.
func (a *app) Start() {
	cfg := a.c.Config
	theme.SetDark(cfg.DarkTheme)
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))

	a.c.RootView.Build(a.c.DetectorPresenter.Toggle, a.c.CapturePresenter.Toggle, a.exitHandler)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
	}

	a.c.DetectorPresenter.Enable()
	if cfg.UseScreenCapture {
		a.c.CapturePresenter.Enable()
	}

	a.loop = presenter.NewLoop(a.c.RenderPresenter, a.scheduleUpdate)
	a.scheduleUpdate()
	a.logger.Info("overlay host started",
		"registry", a.c.Registry.ID(),
		"view", fmt.Sprintf("%dx%d", cfg.ViewWidth, cfg.ViewHeight),
		"image", fmt.Sprintf("%dx%d", cfg.ImageWidth, cfg.ImageHeight),
		"facing", cfg.Facing,
	)

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.c.Shutdown()
	if a.cancel != nil {
		a.cancel()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.loop.Tick() })
}
