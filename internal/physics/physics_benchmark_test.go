package physics_test

import (
	"testing"

	"overworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func obstacleField() []physics.Box {
	half := mgl32.Vec3{0.6, 0.6, 0.6}
	centers := []mgl32.Vec3{
		{0, 0, 0},
		{2.4, 0, -2.2},
		{-2.6, 0, -1.8},
		{1.8, 0, 1.6},
		{-2.0, 0, 2.4},
	}
	boxes := make([]physics.Box, 0, len(centers))
	for _, c := range centers {
		boxes = append(boxes, physics.NewBox(c, half))
	}
	return boxes
}

func BenchmarkStepAcceptedClear(b *testing.B) {
	boxes := obstacleField()
	candidate := mgl32.Vec3{0, 0.6, 10}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.StepAccepted(candidate, physics.PlayerRadius, boxes)
	}
}

func BenchmarkStepAcceptedBlocked(b *testing.B) {
	boxes := obstacleField()
	candidate := mgl32.Vec3{0, 0.6, 0.8}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.StepAccepted(candidate, physics.PlayerRadius, boxes)
	}
}
