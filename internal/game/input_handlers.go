package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes GLFW callbacks into the input manager and keeps
// the viewport and camera aspect in step with the framebuffer.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Handle keyboard actions
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Mouse position callback. Positions queue up in the manager and are
	// drained once per tick so look changes land at one point in the frame.
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorEvent(xpos, ypos)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		app.camera.SetAspect(fbWidth, fbHeight)
	})
}
