package game

import (
	"time"

	"overworld/internal/config"
	"overworld/internal/graphics"
	"overworld/internal/graphics/renderer"
	"overworld/internal/input"
	"overworld/internal/logger"
	"overworld/internal/player"
	"overworld/internal/profiling"
	"overworld/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// App owns all per-run state: the window, input routing, the simulation
// (scene and player) and the renderer. Nothing game-related lives in
// package globals.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	camera   *graphics.Camera
	scene    *scene.Scene
	player   *player.Player
	renderer *renderer.Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp wires the simulation and renderer around an initialized window.
// The window's GL context must be current: renderables compile their
// shaders and upload their buffers here.
func NewApp(cfg *config.Config, window *glfw.Window, im *input.InputManager, rs ...renderer.Renderable) (*App, error) {
	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height, cfg.Graphics.FOV)

	r, err := renderer.NewRenderer(camera, rs...)
	if err != nil {
		return nil, err
	}

	p := player.New()
	p.Sensitivity = cfg.Controls.MouseSensitivity

	limit := cfg.Graphics.FPSLimit
	if cfg.Graphics.VSync {
		limit = 0 // the swap interval already paces frames
	}

	return &App{
		window:       window,
		inputManager: im,
		camera:       camera,
		scene:        scene.New(),
		player:       p,
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(limit),
	}, nil
}

// Run drives ticks until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time

	now := time.Now()
	var dt float32
	if !a.lastTime.IsZero() {
		dt = float32(now.Sub(a.lastTime).Seconds())
	}
	a.lastTime = now
	if dt < 0 {
		dt = 0
	}

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	// Look before walk so movement uses the newest camera basis.
	if events := a.inputManager.DrainCursorEvents(); events != nil {
		a.player.ApplyCursorEvents(events)
	}

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	func() {
		defer profiling.Track("scene.Update")()
		a.scene.Update(dt, a.inputManager)
	}()
	func() {
		defer profiling.Track("player.Step")()
		a.player.Step(dt, a.inputManager, a.scene.ObstacleBoxes())
	}()

	width, height := a.window.GetFramebufferSize()
	a.camera.SetAspect(width, height)

	func() {
		defer profiling.Track("renderer.Render")()
		a.renderer.Render(a.scene, a.player, dt)
	}()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long (> 16ms)
	if processing := time.Since(startTick); processing > 16*time.Millisecond {
		logger.Debug("Slow frame",
			zap.Duration("took", processing),
			zap.String("top", profiling.TopN(5)))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait()
}

// Dispose releases the renderer's GPU resources.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
