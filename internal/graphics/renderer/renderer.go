package renderer

import (
	"overworld/internal/graphics"
	"overworld/internal/player"
	"overworld/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FogColor doubles as the clear color, so distant geometry fades into the
// background it is drawn over.
var FogColor = mgl32.Vec3{0.35, 0.45, 0.65}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a new renderer drawing through the given camera. The
// renderables are initialized and later drawn in the order given, so the
// skybox goes first.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render draws one frame of the scene as seen by the player.
func (r *Renderer) Render(s *scene.Scene, p *player.Player, dt float32) {
	gl.ClearColor(FogColor.X(), FogColor.Y(), FogColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Compute view and projection matrices
	view := p.ViewMatrix()
	projection := r.camera.ProjectionMatrix()

	// Create render context
	ctx := RenderContext{
		Camera: r.camera,
		Scene:  s,
		Player: p,
		DT:     dt,
		View:   view,
		Proj:   projection,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	// Dispose in reverse order
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
