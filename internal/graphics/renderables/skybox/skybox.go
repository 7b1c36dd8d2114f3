package skybox

import (
	"overworld/internal/graphics"
	renderer "overworld/internal/graphics/renderer"
	"overworld/internal/profiling"
	"overworld/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The cube is transformed with a view matrix whose translation is stripped,
// then gl_Position.z is forced to w so every fragment lands at the far plane.
const vertexShaderSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 view;
uniform mat4 projection;

out vec3 texDir;

void main() {
    texDir = aPos;
    vec4 pos = projection * view * vec4(aPos, 1.0);
    gl_Position = pos.xyww;
}
`

const fragmentShaderSrc = `
#version 410 core
in vec3 texDir;
out vec4 fragColor;

uniform samplerCube skyMap;

void main() {
    vec3 hdr = texture(skyMap, texDir).rgb;
    vec3 mapped = hdr / (hdr + vec3(1.0));
    mapped = pow(mapped, vec3(1.0 / 2.2));
    fragColor = vec4(mapped, 1.0);
}
`

// Skybox draws the HDR sky cubemap behind everything else. The cubemap
// handle is shared with the lit pass and owned by the caller.
type Skybox struct {
	shader      *graphics.Shader
	vao         uint32
	vbo         uint32
	cubemap     uint32
	vertexCount int32
}

// NewSkybox creates a skybox renderable around an already uploaded cubemap
func NewSkybox(cubemap uint32) *Skybox {
	return &Skybox{
		cubemap: cubemap,
	}
}

// Init compiles the sky shader and uploads the cube geometry
func (s *Skybox) Init() error {
	// Create shader
	var err error
	s.shader, err = graphics.NewShaderFromSource(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}

	s.setupCubeVAO()

	return nil
}

// Render draws the sky. Runs first in the frame: depth compare is relaxed to
// LEQUAL so far-plane fragments pass against the cleared depth, and depth
// writes are held off so geometry drawn afterwards never fights the sky.
func (s *Skybox) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderSky")()

	// Drop the translation column so the sky stays centered on the camera
	view := ctx.View.Mat3().Mat4()

	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	s.shader.Use()
	s.shader.SetMatrix4("view", &view[0])
	s.shader.SetMatrix4("projection", &ctx.Proj[0])
	s.shader.SetInt("skyMap", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Dispose cleans up OpenGL resources
func (s *Skybox) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// setupCubeVAO uploads the shared unit cube. Only the position attribute is
// wired; normals and UVs in the stream are skipped by the stride.
func (s *Skybox) setupCubeVAO() {
	vertexData := scene.CubeVertices()

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData)*4, gl.Ptr(vertexData), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	s.vertexCount = int32(len(vertexData) / 8)
}
