//go:build sdl
// +build sdl

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/inkyblackness/pax-sdl-demos/internal/config"
	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/host"
	"github.com/inkyblackness/pax-sdl-demos/internal/imguidemo"
	"github.com/inkyblackness/pax-sdl-demos/internal/platforms"
	"github.com/inkyblackness/pax-sdl-demos/internal/renderers"
)

func main() {
	cfg, status := setup(os.Args[1:], os.Stderr)
	if cfg == nil {
		os.Exit(status)
	}
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitFatal)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	platform, err := platforms.NewSDL(platforms.WindowConfig{
		Title:       "PAX SDL",
		Width:       cfg.Width,
		Height:      cfg.Height,
		Resizable:   cfg.Resizable,
		VideoDriver: cfg.VideoDriver,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "mode", cfg.Mode)

	if demo.Mode(cfg.Mode) == demo.ModeImGui {
		return runImGui(platform, cfg, logger)
	}
	defer platform.Dispose()

	set, err := fonts.Load()
	if err != nil {
		return err
	}
	defer set.Close()

	payload, err := demo.New(demo.Mode(cfg.Mode), set, cfg.Options())
	if err != nil {
		return err
	}
	if c, ok := payload.(interface{ Close() error }); ok {
		defer c.Close()
	}

	h := host.New(platform, payload, host.Options{
		Fixed:  !cfg.Resizable,
		Width:  cfg.Width,
		Height: cfg.Height,
		Logger: logger,
	})
	defer h.Close()
	return h.Run(platform)
}

func runImGui(sdlPlatform *platforms.SDL, cfg *config.Config, logger *slog.Logger) error {
	context := imgui.CreateContext(nil)
	defer context.Destroy()
	io := imgui.CurrentIO()

	platform := platforms.NewImGui(sdlPlatform, io)
	defer platform.Dispose()

	rend, err := platform.CreateRenderer()
	if err != nil {
		return err
	}
	sdlRenderer, err := renderers.NewSDLRenderer(rend, logger)
	if err != nil {
		return err
	}
	defer sdlRenderer.Dispose()

	imguidemo.Run(platform, sdlRenderer, imguidemo.NewState(cfg.GUI.Children), cfg.FrametimeSamples, logger)
	return nil
}
