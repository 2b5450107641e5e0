package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/overlay-go/app"
	"github.com/soocke/overlay-go/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to config JSON (default: user config dir)")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	width := flag.Int("width", 900, "window width")
	height := flag.Int("height", 900, "window height")
	flag.Parse()

	logger := NewLogger(os.Stdout, slog.LevelInfo)

	path := *cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no user config dir; using local file", "error", err)
			p = "config.json"
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("config load failed; using defaults", "path", path, "error", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		logger = NewLogger(os.Stdout, slog.LevelDebug)
	}

	application, err := app.NewApp("Overlay", *width, *height, cfg, path, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application.Start()
}
