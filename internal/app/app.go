// Package app runs the visualizer: it wires the window, renderer and input
// adapter to the Controller and redraws only when something changed.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/internal/engine/capture"
	"github.com/Jamieson-H7/visualizations/internal/engine/input"
	"github.com/Jamieson-H7/visualizations/internal/engine/renderer"
	"github.com/Jamieson-H7/visualizations/internal/engine/window"
	"github.com/Jamieson-H7/visualizations/internal/logger"
)

// Title is the window title prefix.
const Title = "vecspace"

// waitTimeout bounds how long the loop sleeps waiting for input.
const waitTimeout = 250 * time.Millisecond

// App is the running visualizer.
type App struct {
	ctl      *Controller
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	frame    Frame
	shots    *capture.Screenshots
	log      *zap.Logger

	lastDebug string
}

// New creates the window, GL renderer and controller.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("theme", string(cfg.View.Theme)),
	)

	a := &App{
		log:   log,
		shots: capture.NewScreenshots(filepath.Join(config.ConfigDir(), "screenshots"), Title),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  dw,
		Height: dh,
		MSAA:   cfg.Graphics.MSAA > 0,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.ctl = NewController(cfg, log)
	a.ctl.SetViewport(a.window.Size())

	log.Info("initialized",
		zap.Int("vectors", a.ctl.Scene.Len()),
		zap.Int("rows", len(a.ctl.Scene.Rows())),
	)
	return a, nil
}

// Run processes events until quit. It blocks in the event queue between
// inputs and renders only when the controller is dirty.
func (a *App) Run() error {
	a.log.Info("starting event loop")

	for {
		w, h := a.window.Size()
		for _, ev := range a.input.Wait(waitTimeout, w, h) {
			if ev.Type == input.EventResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
			if a.ctl.HandleEvent(ev) {
				a.log.Info("quit requested")
				return nil
			}
		}
		if a.ctl.Dirty() {
			a.render()
		}
	}
}

func (a *App) render() {
	start := time.Now()
	a.ctl.BuildFrame(&a.frame)

	f := &a.frame
	a.renderer.Begin(f.Palette.Background)
	a.renderer.Draw(&f.Grid, renderer.Pass{MVP: f.ViewProj, Alpha: renderer.GridAlpha})
	a.renderer.Draw(&f.Scene, renderer.Pass{MVP: f.ViewProj})
	a.renderer.Draw(&f.Overlay, renderer.Pass{MVP: f.Screen, Overlay: true})
	a.renderer.Draw(&f.Panel, renderer.Pass{MVP: f.Screen, Overlay: true})
	if a.ctl.TakeScreenshot() {
		a.saveScreenshot()
	}
	a.window.SwapBuffers()

	a.showDebug()
	a.log.Debug("frame",
		zap.Duration("took", time.Since(start)),
		zap.Int("grid_vertices", len(f.Grid.Lines)),
		zap.Int("scene_vertices", len(f.Scene.Lines)),
		zap.Int("handles", a.ctl.Handles.Len()),
	)
}

func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Error("failed to save screenshot", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// showDebug mirrors the vector readout to the title bar and log when debug
// mode is on.
func (a *App) showDebug() {
	if !a.ctl.Config().View.DebugMode {
		if a.lastDebug != "" {
			a.lastDebug = ""
			a.window.SetTitle(Title)
		}
		return
	}
	lines := a.ctl.Scene.DebugLines()
	text := strings.Join(lines, "; ")
	if text == a.lastDebug {
		return
	}
	a.lastDebug = text
	a.window.SetTitle(Title + " | " + text)
	for _, l := range lines {
		a.log.Debug(l)
	}
}

// Close releases GL and SDL resources.
func (a *App) Close() {
	a.log.Info("closing")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
