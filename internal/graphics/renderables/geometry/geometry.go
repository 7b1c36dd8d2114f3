package geometry

import (
	"overworld/internal/graphics"
	renderer "overworld/internal/graphics/renderer"
	"overworld/internal/profiling"
	"overworld/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const fogDensity = 0.03

// Directional light pointing mostly down; the fragment shader normalizes it.
var lightDir = mgl32.Vec3{-0.25, -1, -0.35}

const vertexShaderSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    fragPos = world.xyz;
    fragNormal = mat3(transpose(inverse(model))) * aNormal;
    fragUV = aUV;
    gl_Position = projection * view * world;
}
`

const fragmentShaderSrc = `
#version 410 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 fragColor;

uniform vec3 lightDir;
uniform vec3 viewPos;
uniform vec3 fogColor;
uniform float fogDensity;
uniform vec3 tint;
uniform sampler2D albedoMap;
uniform samplerCube envMap;

void main() {
    vec3 n = normalize(fragNormal);
    vec3 v = normalize(viewPos - fragPos);
    vec3 l = normalize(-lightDir);
    float ndl = dot(n, l);

    vec3 albedo = texture(albedoMap, fragUV).rgb * tint;

    // Hemisphere ambient: sky probe above, warm bounce below.
    vec3 skyLight = texture(envMap, n).rgb;
    vec3 groundBounce = vec3(0.25, 0.2, 0.15);
    vec3 ambient = mix(groundBounce, skyLight, n.y * 0.5 + 0.5) * 0.4;

    // Wrapped diffuse keeps faces just past the terminator from going flat black.
    float wrapped = max((ndl + 0.3) / 1.3, 0.0);
    vec3 diffuse = wrapped * 1.4 * vec3(1.0, 0.92, 0.78);

    // Blinn-Phong with Schlick fresnel, masked off on unlit faces.
    vec3 h = normalize(l + v);
    float fresnel = 0.04 + 0.96 * pow(1.0 - max(dot(h, v), 0.0), 5.0);
    float spec = pow(max(dot(n, h), 0.0), 64.0) * fresnel * smoothstep(0.0, 0.1, ndl);

    float rim = pow(1.0 - max(dot(v, n), 0.0), 3.0) * (1.0 - max(ndl, 0.0));

    vec3 color = albedo * (ambient + diffuse * (1.0 - 0.5 * fresnel));
    color += vec3(spec);
    color += rim * vec3(0.3, 0.4, 0.6) * 0.25;

    // Tone map, fog, then a light contrast push.
    color = color / (color + vec3(1.0));
    float dist = length(viewPos - fragPos);
    float fogF = exp(-pow(dist * fogDensity, 1.5));
    color = mix(fogColor, color, fogF);
    fragColor = vec4(pow(color, vec3(0.95)), 1.0);
}
`

// Geometry draws the ground quad and the rotating cubes with the lit shading
// model. The environment cubemap handle is shared with the skybox and owned
// by the caller; the checker albedo texture is owned here.
type Geometry struct {
	shader          *graphics.Shader
	cubeVAO         uint32
	cubeVBO         uint32
	quadVAO         uint32
	quadVBO         uint32
	checker         uint32
	envMap          uint32
	cubeVertexCount int32
	quadVertexCount int32
}

// NewGeometry creates the lit pass renderable around an uploaded cubemap
func NewGeometry(envMap uint32) *Geometry {
	return &Geometry{
		envMap: envMap,
	}
}

// Init compiles the lit shader and uploads both meshes and the albedo texture
func (g *Geometry) Init() error {
	// Create shader
	var err error
	g.shader, err = graphics.NewShaderFromSource(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}

	g.checker = graphics.NewCheckerTexture()

	g.cubeVAO, g.cubeVBO, g.cubeVertexCount = setupMesh(scene.CubeVertices())
	g.quadVAO, g.quadVBO, g.quadVertexCount = setupMesh(scene.QuadVertices())

	return nil
}

// Render draws the ground quad, then each cube with its own model matrix and
// tint. Shared uniforms are set once per pass.
func (g *Geometry) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderGeometry")()

	g.shader.Use()
	g.shader.SetMatrix4("view", &ctx.View[0])
	g.shader.SetMatrix4("projection", &ctx.Proj[0])
	g.shader.SetVector3("lightDir", lightDir.X(), lightDir.Y(), lightDir.Z())
	pos := ctx.Player.Position
	g.shader.SetVector3("viewPos", pos.X(), pos.Y(), pos.Z())
	g.shader.SetVector3("fogColor", renderer.FogColor.X(), renderer.FogColor.Y(), renderer.FogColor.Z())
	g.shader.SetFloat("fogDensity", fogDensity)
	g.shader.SetInt("albedoMap", 0)
	g.shader.SetInt("envMap", 1)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.checker)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, g.envMap)

	// Ground first
	ground := ctx.Scene.GroundMatrix()
	g.shader.SetMatrix4("model", &ground[0])
	g.shader.SetVector3("tint", ctx.Scene.GroundTint.X(), ctx.Scene.GroundTint.Y(), ctx.Scene.GroundTint.Z())
	gl.BindVertexArray(g.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, g.quadVertexCount)

	// Then every cube
	gl.BindVertexArray(g.cubeVAO)
	for i, c := range ctx.Scene.Cubes {
		model := ctx.Scene.CubeMatrix(i)
		g.shader.SetMatrix4("model", &model[0])
		g.shader.SetVector3("tint", c.Tint.X(), c.Tint.Y(), c.Tint.Z())
		gl.DrawArrays(gl.TRIANGLES, 0, g.cubeVertexCount)
	}
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (g *Geometry) Dispose() {
	if g.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &g.cubeVAO)
	}
	if g.cubeVBO != 0 {
		gl.DeleteBuffers(1, &g.cubeVBO)
	}
	if g.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &g.quadVAO)
	}
	if g.quadVBO != 0 {
		gl.DeleteBuffers(1, &g.quadVBO)
	}
	if g.checker != 0 {
		gl.DeleteTextures(1, &g.checker)
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}

// setupMesh uploads an interleaved pos/normal/uv vertex stream and wires
// attribute locations 0, 1, 2.
func setupMesh(vertexData []float32) (vao, vbo uint32, count int32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData)*4, gl.Ptr(vertexData), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, gl.PtrOffset(0))

	// Normal attribute (location = 1)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 8*4, gl.PtrOffset(3*4))

	// UV attribute (location = 2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, 8*4, gl.PtrOffset(6*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo, int32(len(vertexData) / 8)
}
