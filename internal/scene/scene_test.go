package scene_test

import (
	"math"
	"testing"

	"overworld/internal/input"
	"overworld/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const tickDT = float32(1.0 / 60.0)

func TestSceneLayout(t *testing.T) {
	s := scene.New()

	if len(s.Cubes) != 5 {
		t.Fatalf("cube count = %d, want 5", len(s.Cubes))
	}
	if s.Cubes[0].Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("cube 0 at %v, want origin", s.Cubes[0].Position)
	}

	boxes := s.ObstacleBoxes()
	if len(boxes) != len(s.Cubes) {
		t.Fatalf("box count = %d, want %d", len(boxes), len(s.Cubes))
	}
	for i, b := range boxes {
		if b.Center != s.Cubes[i].Position {
			t.Errorf("box %d center = %v, want %v", i, b.Center, s.Cubes[i].Position)
		}
		if b.Half != (mgl32.Vec3{0.6, 0.6, 0.6}) {
			t.Errorf("box %d half = %v, want 0.6 on each axis", i, b.Half)
		}
	}
}

func TestSpinKeysAccumulate(t *testing.T) {
	// Each spin key held for one second moves its axis by 1.8 rad and
	// leaves the other two untouched.
	tests := []struct {
		name string
		key  glfw.Key
		axis int
		dir  float32
	}{
		{"R", glfw.KeyR, 0, -1},
		{"F", glfw.KeyF, 0, 1},
		{"Q", glfw.KeyQ, 1, -1},
		{"E", glfw.KeyE, 1, 1},
		{"Z", glfw.KeyZ, 2, -1},
		{"C", glfw.KeyC, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			im := input.NewInputManager()
			im.HandleKeyEvent(tt.key, glfw.Press)

			for i := 0; i < 60; i++ {
				s.Update(tickDT, im)
			}

			want := tt.dir * scene.RotationSpeed
			if got := s.Rotation[tt.axis]; math.Abs(float64(got-want)) > 1e-3 {
				t.Errorf("axis %d = %v, want %v", tt.axis, got, want)
			}
			for axis := 0; axis < 3; axis++ {
				if axis != tt.axis && s.Rotation[axis] != 0 {
					t.Errorf("axis %d = %v, want untouched", axis, s.Rotation[axis])
				}
			}
		})
	}
}

func TestOpposedSpinKeysCancel(t *testing.T) {
	s := scene.New()
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	im.HandleKeyEvent(glfw.KeyE, glfw.Press)

	for i := 0; i < 60; i++ {
		s.Update(tickDT, im)
	}

	if s.Rotation[1] != 0 {
		t.Errorf("ry = %v with Q and E both held, want 0", s.Rotation[1])
	}
}

func TestCubeMatrixComposesZThenXThenY(t *testing.T) {
	// The model transform applies Rz first, then Rx, then Ry with the
	// per-cube offset, then the translation.
	s := scene.New()
	s.Rotation = mgl32.Vec3{0.4, -0.7, 1.1}

	const i = 2
	probe := mgl32.Vec4{0.3, -0.2, 0.5, 1}

	step := mgl32.HomogRotate3DZ(1.1).Mul4x1(probe)
	step = mgl32.HomogRotate3DX(0.4).Mul4x1(step)
	step = mgl32.HomogRotate3DY(-0.7 + 0.6*i).Mul4x1(step)
	want := step.Vec3().Add(s.Cubes[i].Position)

	got := s.CubeMatrix(i).Mul4x1(probe).Vec3()
	if got.Sub(want).Len() > 1e-5 {
		t.Errorf("probe maps to %v, want %v", got, want)
	}
}

func TestCubeMatrixKeepsCenterFixed(t *testing.T) {
	// Rotation happens about the cube's own center, so the center never moves.
	s := scene.New()
	s.Rotation = mgl32.Vec3{2.1, -0.9, 0.35}

	origin := mgl32.Vec4{0, 0, 0, 1}
	for i := range s.Cubes {
		got := s.CubeMatrix(i).Mul4x1(origin).Vec3()
		if got.Sub(s.Cubes[i].Position).Len() > 1e-5 {
			t.Errorf("cube %d center maps to %v, want %v", i, got, s.Cubes[i].Position)
		}
	}
}

func TestGroundMatrix(t *testing.T) {
	s := scene.New()
	m := s.GroundMatrix()

	// Quad corner (0.5, 0, 0.5) lands at the far corner of the 40x40 floor.
	corner := m.Mul4x1(mgl32.Vec4{0.5, 0, 0.5, 1}).Vec3()
	if corner.Sub(mgl32.Vec3{20, -1, 20}).Len() > 1e-5 {
		t.Errorf("corner maps to %v, want (20,-1,20)", corner)
	}

	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if center.Sub(mgl32.Vec3{0, -1, 0}).Len() > 1e-5 {
		t.Errorf("center maps to %v, want (0,-1,0)", center)
	}
}

func TestCubeVerticesLayout(t *testing.T) {
	verts := scene.CubeVertices()
	if len(verts) != 36*8 {
		t.Fatalf("len = %d, want %d", len(verts), 36*8)
	}

	for v := 0; v < 36; v++ {
		base := v * 8
		pos := mgl32.Vec3{verts[base], verts[base+1], verts[base+2]}
		normal := mgl32.Vec3{verts[base+3], verts[base+4], verts[base+5]}

		for axis := 0; axis < 3; axis++ {
			if math.Abs(float64(pos[axis])) != 0.5 {
				t.Fatalf("vertex %d pos[%d] = %v, want +-0.5", v, axis, pos[axis])
			}
		}
		if math.Abs(float64(normal.Len()-1)) > 1e-6 {
			t.Fatalf("vertex %d normal %v not unit", v, normal)
		}
		// The normal points out through the face the vertex lies on.
		if normal.Dot(pos) != 0.5 {
			t.Fatalf("vertex %d normal %v does not face outward from %v", v, normal, pos)
		}

		u, uvV := verts[base+6], verts[base+7]
		if u < 0 || u > 1 || uvV < 0 || uvV > 1 {
			t.Fatalf("vertex %d uv (%v,%v) outside 0..1", v, u, uvV)
		}
	}
}

func TestQuadVerticesLayout(t *testing.T) {
	verts := scene.QuadVertices()
	if len(verts) != 6*8 {
		t.Fatalf("len = %d, want %d", len(verts), 6*8)
	}

	for v := 0; v < 6; v++ {
		base := v * 8
		if verts[base+1] != 0 {
			t.Errorf("vertex %d y = %v, want 0", v, verts[base+1])
		}
		normal := mgl32.Vec3{verts[base+3], verts[base+4], verts[base+5]}
		if normal != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d normal = %v, want +Y", v, normal)
		}
		for _, uv := range []float32{verts[base+6], verts[base+7]} {
			if uv != 0 && uv != 10 {
				t.Errorf("vertex %d uv value = %v, want 0 or 10", v, uv)
			}
		}
	}
}
