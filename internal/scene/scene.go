package scene

import (
	"overworld/internal/input"
	"overworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// RotationSpeed is how fast the spin keys turn the cubes, in radians per second.
	RotationSpeed = 1.8

	groundY    = -1.0
	groundSpan = 40.0

	// Collision half extent per cube. Wider than the drawn half extent (0.5)
	// so the walk stops before the camera clips a spinning corner.
	obstacleHalf = 0.6

	// Per-cube Y rotation offset so the cubes do not spin in lockstep.
	yawOffsetStep = 0.6
)

// Cube is one rotating obstacle: where it sits and how the lit pass tints it.
type Cube struct {
	Position mgl32.Vec3
	Tint     mgl32.Vec3
}

// Scene holds the static world content: the ground plane, the obstacle cubes,
// and the rotation triple the spin keys drive. Everything except Rotation is
// fixed after New.
type Scene struct {
	Cubes      []Cube
	GroundTint mgl32.Vec3

	// Rotation accumulates (rx, ry, rz) in radians, shared by all cubes.
	Rotation mgl32.Vec3

	boxes []physics.Box
}

// New builds the demo scene: a 40x40 ground plane and five cubes scattered
// around the spawn point.
func New() *Scene {
	s := &Scene{
		Cubes: []Cube{
			{Position: mgl32.Vec3{0, 0, 0}, Tint: mgl32.Vec3{0.2, 0.7, 1.0}},
			{Position: mgl32.Vec3{2.4, 0, -2.2}, Tint: mgl32.Vec3{1.0, 0.45, 0.35}},
			{Position: mgl32.Vec3{-2.6, 0, -1.8}, Tint: mgl32.Vec3{0.45, 0.85, 0.45}},
			{Position: mgl32.Vec3{1.8, 0, 1.6}, Tint: mgl32.Vec3{0.95, 0.8, 0.3}},
			{Position: mgl32.Vec3{-2.0, 0, 2.4}, Tint: mgl32.Vec3{0.8, 0.5, 0.95}},
		},
		GroundTint: mgl32.Vec3{0.6, 0.7, 0.5},
	}

	half := mgl32.Vec3{obstacleHalf, obstacleHalf, obstacleHalf}
	s.boxes = make([]physics.Box, 0, len(s.Cubes))
	for _, c := range s.Cubes {
		s.boxes = append(s.boxes, physics.NewBox(c.Position, half))
	}
	return s
}

// Update advances the rotation triple from whichever spin keys are held.
// Opposite keys held together cancel out.
func (s *Scene) Update(dt float32, im *input.InputManager) {
	step := float32(RotationSpeed) * dt
	if im.IsActive(input.ActionSpinXNeg) {
		s.Rotation[0] -= step
	}
	if im.IsActive(input.ActionSpinXPos) {
		s.Rotation[0] += step
	}
	if im.IsActive(input.ActionSpinYNeg) {
		s.Rotation[1] -= step
	}
	if im.IsActive(input.ActionSpinYPos) {
		s.Rotation[1] += step
	}
	if im.IsActive(input.ActionSpinZNeg) {
		s.Rotation[2] -= step
	}
	if im.IsActive(input.ActionSpinZPos) {
		s.Rotation[2] += step
	}
}

// CubeMatrix builds the model matrix for cube i: translate to the cube's
// position, then rotate Y (with the per-cube offset), X, Z applied in
// reverse order to column vectors.
func (s *Scene) CubeMatrix(i int) mgl32.Mat4 {
	p := s.Cubes[i].Position
	m := mgl32.Translate3D(p.X(), p.Y(), p.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(s.Rotation.Y() + yawOffsetStep*float32(i)))
	m = m.Mul4(mgl32.HomogRotate3DX(s.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DZ(s.Rotation.Z()))
	return m
}

// GroundMatrix places the unit quad at the floor height and stretches it
// across the play area.
func (s *Scene) GroundMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, groundY, 0).Mul4(mgl32.Scale3D(groundSpan, 1, groundSpan))
}

// ObstacleBoxes returns the collision volumes for the cubes. The slice is
// built once in New; callers must not mutate it.
func (s *Scene) ObstacleBoxes() []physics.Box {
	return s.boxes
}
