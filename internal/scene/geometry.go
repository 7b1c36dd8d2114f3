package scene

// Static vertex data for the two meshes the lit pass draws. Layout is
// position (3), normal (3), uv (2) interleaved, 8 floats per vertex,
// counter-clockwise winding seen from outside.

// CubeVertices returns 36 vertices for a unit cube spanning -0.5..0.5.
func CubeVertices() []float32 {
	return []float32{
		// Front face - normal: (0,0,1)
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
		0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,

		// Back face - normal: (0,0,-1)
		0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
		-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
		-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
		0.5, -0.5, -0.5, 0, 0, -1, 0, 0,

		// Left face - normal: (-1,0,0)
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
		-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,

		// Right face - normal: (1,0,0)
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,

		// Top face - normal: (0,1,0)
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
		0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,

		// Bottom face - normal: (0,-1,0)
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
		0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
		-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	}
}

// QuadVertices returns 6 vertices for a unit quad in the XZ plane at y=0
// facing +Y. UVs run 0..10 so the checker tiles across the scaled ground
// instead of stretching one cell over it.
func QuadVertices() []float32 {
	return []float32{
		-0.5, 0, 0.5, 0, 1, 0, 0, 0,
		0.5, 0, 0.5, 0, 1, 0, 10, 0,
		0.5, 0, -0.5, 0, 1, 0, 10, 10,
		0.5, 0, -0.5, 0, 1, 0, 10, 10,
		-0.5, 0, -0.5, 0, 1, 0, 0, 10,
		-0.5, 0, 0.5, 0, 1, 0, 0, 0,
	}
}
