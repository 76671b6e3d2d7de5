// Package app implements the demo loop: input, animation update, rendering.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/distortion/internal/config"
	"github.com/Faultbox/distortion/internal/engine/debug"
	"github.com/Faultbox/distortion/internal/engine/input"
	"github.com/Faultbox/distortion/internal/engine/renderer"
	"github.com/Faultbox/distortion/internal/engine/scene"
	"github.com/Faultbox/distortion/internal/engine/window"
	"github.com/Faultbox/distortion/internal/logger"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

// App is a running distortion demo.
type App struct {
	cfg     *config.Config
	variant scene.Variant
	state   *scene.State
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	cylinder *renderer.MeshHandle
	grid     *renderer.MeshHandle

	screenshots       *debug.ScreenshotCapture
	showGridLines     bool
	pendingScreenshot bool
	running           bool
}

// New creates the window, renderer and meshes for the configured variant.
// Tessellation failures are returned as *tessellate.ConsistencyError.
func New(cfg *config.Config) (*App, error) {
	v, err := scene.LookupVariant(cfg.Demo.Variant)
	if err != nil {
		return nil, err
	}
	v = v.WithResolution(cfg.Tessellation.Cylinder, cfg.Tessellation.Grid)

	format, err := debug.ParseFormat(cfg.Screenshots.Format)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:           cfg,
		variant:       v,
		log:           logger.Named("app"),
		screenshots:   debug.NewScreenshotCapture(cfg.Screenshots.Dir, v.Name, format),
		showGridLines: cfg.Demo.ShowGridLines,
	}

	// Tessellate before touching SDL so bad resolutions fail fast.
	meshes, err := buildMeshes(v)
	if err != nil {
		return nil, err
	}

	width, height := windowSize(cfg.Graphics, v)
	a.log.Info("initializing demo",
		zap.String("variant", v.Name),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("cylinder", v.CylinderRes),
	)

	a.window, err = window.New(window.Config{
		Title:         "Distortion - " + v.Name,
		Width:         width,
		Height:        height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		Multisampling: cfg.Graphics.Multisampling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable can differ from the requested size on high-DPI displays.
	width, height = a.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		LineWidth: cfg.Graphics.LineWidth,
		Offscreen: v.Offscreen(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.upload(meshes); err != nil {
		a.Close()
		return nil, err
	}

	a.state = scene.NewState(v, width, height)
	a.state.RadiansPerSecond = cfg.Demo.RadiansPerSecond
	a.input = input.New()

	a.log.Info("demo initialized")
	return a, nil
}

func (a *App) upload(m meshes) error {
	var err error
	a.cylinder, err = a.renderer.UploadMesh(m.cylinder)
	if err != nil {
		return err
	}
	if m.grid != nil {
		a.grid, err = a.renderer.UploadMesh(m.grid)
		if err != nil {
			return err
		}
	}
	return nil
}

// Run starts the main loop and returns when the user quits or a frame fails.
func (a *App) Run() error {
	a.running = true

	clock := newFrameClock(time.Now())
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting demo loop", zap.String("variant", a.variant.Name))

	for a.running {
		dt := clock.tick(time.Now())

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.resize()
			case input.EventAction:
				a.handleAction(event.Action)
			}
		}

		// 2. Update animation
		a.state.Update(dt)

		// 3. Render
		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.pendingScreenshot {
			a.pendingScreenshot = false
			a.captureScreenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			fields := []zap.Field{
				zap.Int("fps", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("theta", a.state.Theta),
			}
			if a.cfg.Demo.ShowFPS {
				a.log.Info("frame stats", fields...)
			} else {
				a.log.Debug("frame stats", fields...)
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GPU resources, then the window.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.renderer != nil {
		a.renderer.DeleteMesh(a.cylinder)
		a.renderer.DeleteMesh(a.grid)
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

func (a *App) resize() {
	width, height := a.window.GetSize()
	a.renderer.Resize(width, height)
	a.state.Resize(width, height)
}

// handleAction applies a keyboard command to the demo state.
func (a *App) handleAction(action input.Action) {
	switch action {
	case input.ActionQuit:
		a.running = false
	case input.ActionWarpUp:
		a.state.Warp.Adjust(1)
	case input.ActionWarpDown:
		a.state.Warp.Adjust(-1)
	case input.ActionToggleWarp:
		a.state.Warp.ToggleMode()
	case input.ActionToggleGrid:
		a.showGridLines = !a.showGridLines
	case input.ActionScreenshot:
		a.pendingScreenshot = true
	default:
		return
	}
	a.log.Debug("action",
		zap.Stringer("action", action),
		zap.Stringer("warp", a.state.Warp.Mode),
		zap.Float64("barrel_target", a.state.Warp.Target),
	)
}

// render draws one frame into the back buffer.
func (a *App) render() error {
	v := a.variant
	batch := a.state.Frame()

	a.renderer.BeginScene(v.ClearColor)
	if v.Instanced {
		a.renderer.DrawInstanced(a.cylinder, &batch)
	} else {
		a.renderer.DrawSingle(a.cylinder, &batch)
	}

	switch v.Composite {
	case scene.CompositeGrid:
		a.renderer.CompositeGrid(a.grid, a.showGridLines, v.ClearColor)
	case scene.CompositeBarrel:
		a.renderer.CompositeBarrel(a.state.Warp.Power)
	}

	return renderer.CheckError()
}

func (a *App) captureScreenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// LogFatal reports an error returned by New or Run. Tessellation errors carry
// the mesh and the mismatching count.
func LogFatal(err error) {
	var ce *tessellate.ConsistencyError
	if errors.As(err, &ce) {
		logger.Fatal("tessellation failed",
			zap.String("mesh", ce.Mesh),
			zap.String("what", ce.What),
			zap.Int("got", ce.Got),
			zap.Int("want", ce.Want),
		)
	}
	logger.Fatal("demo failed", zap.Error(err))
}
